package http

import (
	"net/http"

	"github.com/MKhiriev/go-wallet-dapp/internal/logger"
	"github.com/MKhiriev/go-wallet-dapp/internal/utils"
)

type stateResponse struct {
	IsConnecting bool   `json:"isConnecting"`
	Balance      string `json:"balance"`
	Address      string `json:"address"`
}

func (h *Handler) getState(w http.ResponseWriter, r *http.Request) {
	state := h.coordinator.State()

	if _, err := utils.WriteJSON(w, stateResponse{
		IsConnecting: state.IsConnecting,
		Balance:      state.Balance,
		Address:      h.coordinator.SelectedAddress(),
	}, http.StatusOK); err != nil {
		logger.FromRequest(r).Err(err).Msg("writing state")
	}
}
