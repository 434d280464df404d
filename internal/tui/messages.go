package tui

import "github.com/MKhiriev/go-wallet-dapp/models"

type stateMsg struct {
	state models.UIState
}

type statesClosedMsg struct{}

type eventMsg struct {
	event models.UIEvent
}

type copiedMsg struct {
	what string
}

type copyFailedMsg struct {
	err error
}

type clearStatusMsg struct{}
