package service

import "fmt"

// User-facing message texts.
const (
	MsgDisconnected       = "Disconnected!"
	MsgFetchingBalance    = "Fetching the wallet balance"
	MsgWalletNotConnected = "The wallet is not connected!"
)

// Outcome labels reported to [EventRecorder].
const (
	OutcomeOK       = "ok"
	OutcomeError    = "error"
	OutcomeFallback = "fallback"
	OutcomeInvalid  = "invalid"
	OutcomeRejected = "rejected"
)

// BalanceUnit is appended to every formatted balance.
const BalanceUnit = "ETH"

// UpdateBalanceEvent is the label used for updateBalance calls in metrics.
const UpdateBalanceEvent = "update-balance"

func invalidBalanceMessage(value string) string {
	return fmt.Sprintf("invalid balance value %q", value)
}
