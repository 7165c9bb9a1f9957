package http

import (
	"net/http"

	"github.com/MKhiriev/go-device-sync/internal/app"
	"github.com/MKhiriev/go-device-sync/internal/logger"
	"github.com/MKhiriev/go-device-sync/internal/utils"
)

type syncResponse struct {
	Status string `json:"status"`
}

// triggerSync queues an out-of-band sync cycle. 202 when queued, 409 when a
// cycle is already waiting to run.
func (h *Handler) triggerSync(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	if !h.syncTrigger.Trigger() {
		log.Info().Msg("sync already pending")
		utils.WriteError(w, app.MsgSyncAlreadyPending, http.StatusConflict)
		return
	}

	log.Info().Msg("sync queued")
	utils.WriteJSON(w, syncResponse{Status: app.MsgSyncQueued}, http.StatusAccepted)
}
