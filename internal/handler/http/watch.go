package http

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/MKhiriev/go-note-sync/internal/logger"
	"github.com/MKhiriev/go-note-sync/internal/utils"
	"github.com/MKhiriev/go-note-sync/models"
	"github.com/coder/websocket"
)

const watchWriteTimeout = 10 * time.Second

// watch upgrades to a websocket and streams the full membership of one scope:
// first the current snapshot, then a new one after every committed write.
// The stream ends when the peer goes away or the server shuts down.
func (h *Handler) watch(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	scope, err := models.ParseScope(r.URL.Query().Get("scope"))
	if err != nil {
		writeError(w, r, err, "invalid watch scope")
		return
	}

	subject, _ := utils.GetSubjectFromContext(r.Context())
	if scope.Owner() != subject {
		log.Warn().Str("scope", scope.String()).Str("subject", subject).Msg("watch of foreign scope")
		http.Error(w, http.StatusText(http.StatusNotFound), http.StatusNotFound)
		return
	}

	snapshots, token, err := h.services.DocumentService.Watch(r.Context(), scope)
	if err != nil {
		writeError(w, r, err, "error opening watch")
		return
	}
	defer token.Cancel()

	conn, err := websocket.Accept(w, r, nil)
	if err != nil {
		log.Err(err).Str("scope", scope.String()).Msg("websocket upgrade failed")
		return
	}
	defer conn.CloseNow()

	// Clients never send; CloseRead handles control frames and cancels ctx
	// once the peer disconnects.
	ctx := conn.CloseRead(r.Context())

	log.Info().Str("scope", scope.String()).Msg("watch opened")
	defer log.Info().Str("scope", scope.String()).Msg("watch closed")

	for {
		select {
		case <-ctx.Done():
			conn.Close(websocket.StatusGoingAway, "")
			return
		case snapshot := <-snapshots:
			if err = writeSnapshot(ctx, conn, scope, snapshot); err != nil {
				log.Err(err).Str("scope", scope.String()).Msg("error writing snapshot")
				return
			}
		}
	}
}

func writeSnapshot(ctx context.Context, conn *websocket.Conn, scope models.Scope, snapshot models.Snapshot) error {
	if snapshot == nil {
		snapshot = models.Snapshot{}
	}
	data, err := json.Marshal(models.SnapshotEvent{Scope: scope, Records: snapshot})
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, watchWriteTimeout)
	defer cancel()
	return conn.Write(ctx, websocket.MessageText, data)
}
