package handlers

import (
	"log/slog"
	"net/http"

	"weezsync/internal/transport/httpServer/handlers/dto"
	"weezsync/internal/utils"
	"weezsync/internal/utils/logger/sl"
)

type SyncHandler struct {
	syncService SyncService
	log         *slog.Logger
}

func NewSyncHandler(log *slog.Logger, syncService SyncService) *SyncHandler {
	return &SyncHandler{
		syncService: syncService,
		log:         log,
	}
}

// StartSync handles POST /api/v1/sync. The run executes in the background;
// a request while another run is in flight is rejected with 409 and the
// caller should poll the status endpoint.
func (h *SyncHandler) StartSync(w http.ResponseWriter, r *http.Request) {
	op := "httpServer.handlers.SyncHandler.StartSync()"
	log := h.log.With(slog.String("op", op))

	requestID, started := h.syncService.TriggerSync()
	if !started {
		response := dto.SyncStartedResponse{Status: "already_running"}
		if err := utils.Json(w, http.StatusConflict, response); err != nil {
			log.Error("error encoding response", sl.Err(err))
		}
		return
	}

	log.Info("sync run triggered", slog.String("requestID", requestID.String()))

	response := dto.SyncStartedResponse{
		Status:    "started",
		RequestID: requestID.String(),
	}
	if err := utils.Json(w, http.StatusAccepted, response); err != nil {
		log.Error("error encoding response", sl.Err(err))
	}
}

// GetStatus handles GET /api/v1/sync/status.
func (h *SyncHandler) GetStatus(w http.ResponseWriter, r *http.Request) {
	op := "httpServer.handlers.SyncHandler.GetStatus()"
	log := h.log.With(slog.String("op", op))

	response := dto.SyncStatusResponse{Running: h.syncService.IsRunning()}
	if err := utils.Json(w, http.StatusOK, response); err != nil {
		log.Error("error encoding response", sl.Err(err))
	}
}
