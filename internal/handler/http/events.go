package http

import (
	"net/http"

	"github.com/MKhiriev/go-wallet-dapp/internal/logger"
	"github.com/MKhiriev/go-wallet-dapp/internal/utils"
	"github.com/MKhiriev/go-wallet-dapp/models"
	"github.com/go-chi/chi/v5"
)

type acceptedResponse struct {
	Event  string `json:"event"`
	Status string `json:"status"`
}

const statusAccepted = "accepted"

// postEvent forwards one of the wallet events to the coordinator. The
// outcome arrives later through /api/state and /api/messages.
func (h *Handler) postEvent(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	name := chi.URLParam(r, "event")
	event, err := models.ParseEventSink(name)
	if err != nil {
		log.Warn().Str("event", name).Msg("unknown event")
		utils.WriteJSON(w, errorResponse{Error: err.Error() + ": " + name}, http.StatusBadRequest)
		return
	}

	h.coordinator.Handle(event)
	utils.WriteJSON(w, acceptedResponse{Event: event.String(), Status: statusAccepted}, http.StatusAccepted)
}

func (h *Handler) refreshBalance(w http.ResponseWriter, r *http.Request) {
	h.coordinator.UpdateBalance()
	utils.WriteJSON(w, acceptedResponse{Event: "update-balance", Status: statusAccepted}, http.StatusAccepted)
}
