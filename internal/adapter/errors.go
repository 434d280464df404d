package adapter

import "errors"

// Construction errors returned by [NewJSONRPCWalletClient].
var (
	ErrEmptyAPIKey        = errors.New("empty api key")
	ErrInvalidNodeAddress = errors.New("invalid node address")
)

// Session and transport errors. They never leave the package as Go errors;
// their text ends up in [models.RequestError.Message].
var (
	ErrNoAccounts      = errors.New("wallet has no accounts")
	ErrInvalidAccount  = errors.New("invalid account")
	ErrUnauthorized    = errors.New("node rejected the api key")
	ErrRateLimited     = errors.New("node rate limit exceeded")
	ErrNodeUnavailable = errors.New("node unavailable")
	ErrMalformedReply  = errors.New("malformed node reply")
)

// Error codes used in [models.RequestError], following EIP-1193 and
// JSON-RPC 2.0.
const (
	CodeUnauthorized  = 4100
	CodeInvalidParams = -32602
	CodeInternal      = -32603
)

// Outcome labels reported to [RequestObserver].
const (
	OutcomeOK             = "ok"
	OutcomeRPCError       = "rpc_error"
	OutcomeHTTPError      = "http_error"
	OutcomeTransportError = "transport_error"
)
