// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sync/atomic"
	"time"

	"github.com/MKhiriev/go-note-sync/internal/logger"
	"github.com/MKhiriev/go-note-sync/internal/utils"
	"github.com/MKhiriev/go-note-sync/models"
	"github.com/coder/websocket"
)

const (
	watchReadLimit       = 8 << 20
	watchBackoffInitial  = 500 * time.Millisecond
	watchBackoffMaxDelay = 10 * time.Second
)

// Watch implements [DocumentStore]. The initial handshake runs on ctx so a
// rejected subscription (bad token, foreign scope) is reported to the
// caller directly. Once established the stream lives until the returned
// token is cancelled, reconnecting with exponential backoff when the
// connection drops.
func (h *httpServerAdapter) Watch(ctx context.Context, scope models.Scope, onSnapshot func(models.Snapshot), onError func(error)) (models.CancelToken, error) {
	conn, err := h.dialWatch(ctx, scope)
	if err != nil {
		return nil, err
	}

	watchCtx, cancel := context.WithCancel(context.Background())
	w := &watcher{
		adapter:    h,
		scope:      scope,
		onSnapshot: onSnapshot,
		onError:    onError,
		logger:     h.logger.WithStr("scope", scope.String()),
	}
	go w.run(watchCtx, conn)

	return models.NewCancelToken(func() {
		w.stopped.Store(true)
		cancel()
	}), nil
}

func (h *httpServerAdapter) dialWatch(ctx context.Context, scope models.Scope) (*websocket.Conn, error) {
	wsURL := utils.WebSocketURL(h.baseURL) + "/api/watch?scope=" + url.QueryEscape(scope.String())

	header := http.Header{}
	if token := h.Token(); token != "" {
		header.Set("Authorization", "Bearer "+token)
	}

	conn, resp, err := websocket.Dial(ctx, wsURL, &websocket.DialOptions{HTTPHeader: header})
	if err != nil {
		if resp != nil && resp.StatusCode != http.StatusSwitchingProtocols {
			var body []byte
			if resp.Body != nil {
				body, _ = io.ReadAll(resp.Body)
			}
			if mapped := mapStatus(resp.StatusCode, body); mapped != nil {
				return nil, mapped
			}
		}
		return nil, fmt.Errorf("watch dial: %w", err)
	}
	conn.SetReadLimit(watchReadLimit)

	return conn, nil
}

type watcher struct {
	adapter    *httpServerAdapter
	scope      models.Scope
	onSnapshot func(models.Snapshot)
	onError    func(error)
	stopped    atomic.Bool
	logger     *logger.Logger
}

func (w *watcher) run(ctx context.Context, conn *websocket.Conn) {
	for {
		err := w.readLoop(ctx, conn)
		conn.CloseNow()
		if ctx.Err() != nil {
			return
		}

		w.logger.Warn().Err(err).Msg("watch stream interrupted")
		w.reportError(err)

		conn = w.redial(ctx)
		if conn == nil {
			return
		}
	}
}

func (w *watcher) readLoop(ctx context.Context, conn *websocket.Conn) error {
	for {
		_, data, err := conn.Read(ctx)
		if err != nil {
			if websocket.CloseStatus(err) == websocket.StatusNormalClosure {
				return ErrStreamClosed
			}
			return err
		}

		var event models.SnapshotEvent
		if err = json.Unmarshal(data, &event); err != nil {
			w.logger.Err(err).Msg("skipping malformed snapshot event")
			continue
		}

		if w.stopped.Load() {
			return context.Canceled
		}
		snapshot := models.Snapshot(event.Records)
		if snapshot == nil {
			snapshot = models.Snapshot{}
		}
		w.onSnapshot(snapshot)
	}
}

// redial reconnects until it succeeds or ctx ends. A nil result means the
// watch was cancelled.
func (w *watcher) redial(ctx context.Context) *websocket.Conn {
	delay := watchBackoffInitial
	for {
		timer := time.NewTimer(delay)
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil
		case <-timer.C:
		}

		conn, err := w.adapter.dialWatch(ctx, w.scope)
		if err == nil {
			w.logger.Info().Msg("watch stream re-established")
			return conn
		}
		if ctx.Err() != nil {
			return nil
		}

		w.logger.Warn().Err(err).Dur("retry_in", delay).Msg("watch redial failed")
		if errors.Is(err, ErrUnauthorized) || errors.Is(err, ErrNotFound) {
			w.reportError(err)
		}

		delay = min(delay*2, watchBackoffMaxDelay)
	}
}

func (w *watcher) reportError(err error) {
	if w.onError != nil && !w.stopped.Load() {
		w.onError(err)
	}
}
