package adapter

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/MKhiriev/go-wallet-dapp/internal/config"
	"github.com/MKhiriev/go-wallet-dapp/internal/logger"
	"github.com/MKhiriev/go-wallet-dapp/internal/utils"
	"github.com/MKhiriev/go-wallet-dapp/models"
)

const jsonRPCVersion = "2.0"

type jsonRPCWalletClient struct {
	client   *utils.HTTPClient
	ids      *utils.UUIDGenerator
	endpoint string
	account  string
	observer RequestObserver

	mu       sync.RWMutex
	selected string
	chainID  string

	logger *logger.Logger
}

// Option customises a client built by [NewJSONRPCWalletClient].
type Option func(*jsonRPCWalletClient)

// WithRequestObserver reports every node round trip to obs.
func WithRequestObserver(obs RequestObserver) Option {
	return func(c *jsonRPCWalletClient) {
		c.observer = obs
	}
}

// NewJSONRPCWalletClient constructs a [WalletClient] bound to metadata and
// apiKey. Requests go to "{adapterCfg.NodeURL}/v3/{apiKey}". The DApp URL is
// sent as the Origin header so the provider can attribute traffic.
//
// Returns [ErrEmptyAPIKey] or [ErrInvalidNodeAddress] (wrapped) when the
// handle cannot be built.
func NewJSONRPCWalletClient(metadata models.DappMetadata, apiKey string, adapterCfg config.ClientAdapter, log *logger.Logger, opts ...Option) (WalletClient, error) {
	apiKey = strings.TrimSpace(apiKey)
	if apiKey == "" {
		return nil, ErrEmptyAPIKey
	}

	baseURL, err := normalizeBaseURL(adapterCfg.NodeURL)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidNodeAddress, err)
	}

	client := utils.NewHTTPClient().WithTimeout(adapterCfg.RequestTimeout)
	client.
		SetBaseURL(baseURL).
		SetHeader("Origin", metadata.URL).
		SetHeader("User-Agent", metadata.Name+"/go-wallet-dapp")

	c := &jsonRPCWalletClient{
		client:   client,
		ids:      utils.NewUUIDGenerator(),
		endpoint: "/v3/" + url.PathEscape(apiKey),
		account:  strings.TrimSpace(adapterCfg.Account),
		logger:   log.WithComponent("wallet-client"),
	}
	for _, opt := range opts {
		opt(c)
	}

	c.logger.Info().Str("node", baseURL).Str("dapp", metadata.Name).Msg("wallet client created")
	return c, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "https://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// Connect implements [WalletClient]. It performs an eth_chainId handshake,
// then selects the configured account or, when none is configured, the first
// account reported by eth_accounts.
func (c *jsonRPCWalletClient) Connect(ctx context.Context) models.Result {
	chainResult := c.call(ctx, models.EthereumRequest{Method: models.EthChainID})
	chain, ok := chainResult.(models.ResultItem)
	if !ok {
		if errResult, isErr := chainResult.(models.ResultError); isErr {
			return errResult
		}
		return errorResult(CodeInternal, fmt.Errorf("%w: unexpected chain id shape", ErrMalformedReply))
	}

	accounts, result := c.resolveAccounts(ctx)
	if result != nil {
		return result
	}

	selected, err := utils.ChecksumAddress(accounts[0])
	if err != nil {
		return errorResult(CodeInvalidParams, fmt.Errorf("%w: %s", ErrInvalidAccount, accounts[0]))
	}

	c.mu.Lock()
	c.selected = selected
	c.chainID = chain.Value
	c.mu.Unlock()

	c.logger.Info().Str("address", selected).Str("chain_id", chain.Value).Msg("wallet connected")

	value := make([]any, len(accounts))
	for i, account := range accounts {
		value[i] = account
	}
	return models.ResultItems{Value: value}
}

func (c *jsonRPCWalletClient) resolveAccounts(ctx context.Context) ([]string, models.Result) {
	if c.account != "" {
		return []string{c.account}, nil
	}

	result := c.call(ctx, models.EthereumRequest{Method: models.EthAccounts, Params: []any{}})
	switch r := result.(type) {
	case models.ResultError:
		return nil, r
	case models.ResultItems:
		accounts := make([]string, 0, len(r.Value))
		for _, v := range r.Value {
			if s, ok := v.(string); ok && s != "" {
				accounts = append(accounts, s)
			}
		}
		if len(accounts) == 0 {
			return nil, errorResult(CodeUnauthorized, ErrNoAccounts)
		}
		return accounts, nil
	default:
		return nil, errorResult(CodeInternal, fmt.Errorf("%w: unexpected accounts shape", ErrMalformedReply))
	}
}

// SendRequest implements [WalletClient].
func (c *jsonRPCWalletClient) SendRequest(ctx context.Context, req models.EthereumRequest) models.Result {
	return c.call(ctx, req)
}

// Disconnect implements [WalletClient].
func (c *jsonRPCWalletClient) Disconnect(force bool) {
	c.mu.Lock()
	c.selected = ""
	c.chainID = ""
	c.mu.Unlock()

	if force {
		c.client.CloseIdleConnections()
	}

	c.logger.Info().Bool("force", force).Msg("wallet disconnected")
}

// SelectedAddress implements [WalletClient].
func (c *jsonRPCWalletClient) SelectedAddress() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.selected
}

// ChainID returns the chain id reported during the last successful connect.
func (c *jsonRPCWalletClient) ChainID() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.chainID
}

func (c *jsonRPCWalletClient) call(ctx context.Context, req models.EthereumRequest) models.Result {
	if req.ID == "" {
		req.ID = c.ids.Generate()
	}
	if req.Params == nil {
		req.Params = []any{}
	}

	start := time.Now()
	result, outcome := c.roundTrip(ctx, req)
	if c.observer != nil {
		c.observer.ObserveRequest(string(req.Method), outcome, time.Since(start))
	}

	event := c.logger.Debug()
	if outcome != OutcomeOK {
		event = c.logger.Warn()
	}
	event.Str("method", string(req.Method)).
		Str("request_id", req.ID).
		Str("outcome", outcome).
		Dur("duration", time.Since(start)).
		Msg("node request")

	return result
}

func (c *jsonRPCWalletClient) roundTrip(ctx context.Context, req models.EthereumRequest) (models.Result, string) {
	resp, err := c.client.R().
		SetContext(ctx).
		SetBody(models.RPCRequest{
			JSONRPC: jsonRPCVersion,
			ID:      req.ID,
			Method:  string(req.Method),
			Params:  req.Params,
		}).
		Post(c.endpoint)
	if err != nil {
		return errorResult(CodeInternal, fmt.Errorf("%w: %w", ErrNodeUnavailable, err)), OutcomeTransportError
	}
	if err = mapHTTPError(resp); err != nil {
		return errorResult(CodeInternal, err), OutcomeHTTPError
	}

	var rpcResp models.RPCResponse
	if err = json.Unmarshal(resp.Body(), &rpcResp); err != nil {
		return errorResult(CodeInternal, fmt.Errorf("%w: %w", ErrMalformedReply, err)), OutcomeHTTPError
	}
	if rpcResp.Error != nil {
		return models.ResultError{Error: *rpcResp.Error}, OutcomeRPCError
	}

	result, err := decodeResult(rpcResp.Result)
	if err != nil {
		return errorResult(CodeInternal, fmt.Errorf("%w: %w", ErrMalformedReply, err)), OutcomeHTTPError
	}
	return result, OutcomeOK
}

// decodeResult maps a raw JSON-RPC result onto a Result shape: strings
// become ResultItem, objects ResultItemMap, arrays ResultItems. Other
// scalars (numbers, booleans, null) become ResultItem with their JSON text.
func decodeResult(raw json.RawMessage) (models.Result, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 {
		return models.ResultItem{Value: "null"}, nil
	}

	switch trimmed[0] {
	case '"':
		var s string
		if err := json.Unmarshal(trimmed, &s); err != nil {
			return nil, err
		}
		return models.ResultItem{Value: s}, nil
	case '{':
		var m map[string]any
		if err := json.Unmarshal(trimmed, &m); err != nil {
			return nil, err
		}
		return models.ResultItemMap{Value: m}, nil
	case '[':
		var items []any
		if err := json.Unmarshal(trimmed, &items); err != nil {
			return nil, err
		}
		return models.ResultItems{Value: items}, nil
	default:
		return models.ResultItem{Value: string(trimmed)}, nil
	}
}
