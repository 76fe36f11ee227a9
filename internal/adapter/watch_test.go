package adapter

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/MKhiriev/go-note-sync/models"
	"github.com/coder/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// snapshotServer pushes every event sent on events to each connected client.
func snapshotServer(t *testing.T, events <-chan models.SnapshotEvent) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer tok" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}
		assert.Equal(t, "/api/watch", r.URL.Path)
		assert.Equal(t, testScope.String(), r.URL.Query().Get("scope"))

		conn, err := websocket.Accept(w, r, nil)
		if err != nil {
			return
		}
		defer conn.CloseNow()

		for {
			select {
			case <-r.Context().Done():
				return
			case ev, ok := <-events:
				if !ok {
					_ = conn.Close(websocket.StatusNormalClosure, "")
					return
				}
				data, _ := json.Marshal(ev)
				if err := conn.Write(r.Context(), websocket.MessageText, data); err != nil {
					return
				}
			}
		}
	}))
}

type snapshotRecorder struct {
	mu        sync.Mutex
	snapshots []models.Snapshot
	arrived   chan struct{}
}

func newSnapshotRecorder() *snapshotRecorder {
	return &snapshotRecorder{arrived: make(chan struct{}, 16)}
}

func (r *snapshotRecorder) record(s models.Snapshot) {
	r.mu.Lock()
	r.snapshots = append(r.snapshots, s)
	r.mu.Unlock()
	r.arrived <- struct{}{}
}

func (r *snapshotRecorder) wait(t *testing.T) {
	t.Helper()
	select {
	case <-r.arrived:
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for snapshot")
	}
}

func (r *snapshotRecorder) all() []models.Snapshot {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]models.Snapshot(nil), r.snapshots...)
}

func TestWatch_DeliversSnapshotsInOrder(t *testing.T) {
	events := make(chan models.SnapshotEvent, 2)
	srv := snapshotServer(t, events)
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	a.SetToken("tok")
	rec := newSnapshotRecorder()

	token, err := a.Watch(context.Background(), testScope, rec.record, nil)
	require.NoError(t, err)
	defer token.Cancel()

	events <- models.SnapshotEvent{Scope: testScope}
	rec.wait(t)
	events <- models.SnapshotEvent{Scope: testScope, Records: []models.Record{{ID: "n1", Fields: models.Fields{"title": "x"}}}}
	rec.wait(t)

	got := rec.all()
	require.Len(t, got, 2)
	assert.NotNil(t, got[0])
	assert.Empty(t, got[0])
	assert.Equal(t, "n1", got[1][0].ID)
}

func TestWatch_RejectedHandshake(t *testing.T) {
	events := make(chan models.SnapshotEvent)
	srv := snapshotServer(t, events)
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.Watch(context.Background(), testScope, func(models.Snapshot) {}, nil)

	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestWatch_CancelStopsDelivery(t *testing.T) {
	events := make(chan models.SnapshotEvent, 4)
	srv := snapshotServer(t, events)
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	a.SetToken("tok")
	rec := newSnapshotRecorder()

	token, err := a.Watch(context.Background(), testScope, rec.record, nil)
	require.NoError(t, err)

	events <- models.SnapshotEvent{Scope: testScope}
	rec.wait(t)

	token.Cancel()
	token.Cancel()
	events <- models.SnapshotEvent{Scope: testScope, Records: []models.Record{{ID: "late"}}}

	select {
	case <-rec.arrived:
		t.Fatal("snapshot delivered after cancel")
	case <-time.After(200 * time.Millisecond):
	}
	assert.Len(t, rec.all(), 1)
}

func TestWatch_ReportsServerClose(t *testing.T) {
	events := make(chan models.SnapshotEvent)
	srv := snapshotServer(t, events)
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	a.SetToken("tok")

	errs := make(chan error, 4)
	token, err := a.Watch(context.Background(), testScope, func(models.Snapshot) {}, func(err error) {
		select {
		case errs <- err:
		default:
		}
	})
	require.NoError(t, err)
	defer token.Cancel()

	close(events)

	select {
	case err := <-errs:
		assert.ErrorIs(t, err, ErrStreamClosed)
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for stream error")
	}
}
