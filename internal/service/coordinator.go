package service

import (
	"context"
	"sync"

	"github.com/MKhiriev/go-wallet-dapp/internal/adapter"
	"github.com/MKhiriev/go-wallet-dapp/internal/logger"
	"github.com/MKhiriev/go-wallet-dapp/internal/utils"
	"github.com/MKhiriev/go-wallet-dapp/models"
)

type eventCoordinator struct {
	client   adapter.WalletClient
	state    *stateCell
	events   *eventBus
	recorder EventRecorder

	// Client calls never get a deadline from here; the adapter applies its
	// own request timeout.
	ctx context.Context
	wg  sync.WaitGroup

	logger *logger.Logger
}

// Option customises an [EventCoordinator] built by [NewEventCoordinator].
type Option func(*eventCoordinator)

// WithEventRecorder reports every processed event to rec.
func WithEventRecorder(rec EventRecorder) Option {
	return func(c *eventCoordinator) {
		c.recorder = rec
	}
}

// NewEventCoordinator creates a coordinator around client. The initial state
// is not connecting with an empty balance.
func NewEventCoordinator(client adapter.WalletClient, log *logger.Logger, opts ...Option) EventCoordinator {
	c := &eventCoordinator{
		client: client,
		state:  newStateCell(models.UIState{}),
		events: newEventBus(),
		ctx:    context.Background(),
		logger: log.WithComponent("coordinator"),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *eventCoordinator) Handle(event models.EventSink) {
	c.launch(func() { c.handle(event) })
}

func (c *eventCoordinator) UpdateBalance() {
	c.launch(c.updateBalance)
}

func (c *eventCoordinator) State() models.UIState {
	return c.state.Load()
}

func (c *eventCoordinator) SelectedAddress() string {
	return c.client.SelectedAddress()
}

func (c *eventCoordinator) SubscribeState() (<-chan models.UIState, func()) {
	return c.state.Subscribe()
}

func (c *eventCoordinator) SubscribeEvents() (<-chan models.UIEvent, func()) {
	return c.events.Subscribe()
}

func (c *eventCoordinator) Wait() {
	c.wg.Wait()
}

func (c *eventCoordinator) launch(task func()) {
	c.wg.Add(1)
	go func() {
		defer c.wg.Done()
		task()
	}()
}

func (c *eventCoordinator) handle(event models.EventSink) {
	c.logger.Debug().Str("event", event.String()).Msg("handling event")

	switch event {
	case models.Connect:
		c.handleConnect()
	case models.GetBalance:
		c.handleGetBalance()
	case models.Disconnect:
		c.handleDisconnect()
	default:
		c.logger.Warn().Int("event", int(event)).Msg("ignoring unknown event")
	}
}

func (c *eventCoordinator) handleConnect() {
	result := c.client.Connect(c.ctx)

	if errResult, ok := result.(models.ResultError); ok {
		c.state.Update(func(s models.UIState) models.UIState {
			s.IsConnecting = false
			return s
		})
		c.logger.Warn().Int("code", errResult.Error.Code).Str("error", errResult.Error.Message).Msg("connect failed")
		c.emit(errResult.Error.Message)
		c.record(models.Connect, OutcomeError)
		return
	}

	c.state.Update(func(s models.UIState) models.UIState {
		s.IsConnecting = true
		return s
	})
	c.record(models.Connect, OutcomeOK)
}

func (c *eventCoordinator) handleGetBalance() {
	result := c.client.SendRequest(c.ctx, models.EthereumRequest{
		Method: models.EthGetBalance,
		Params: []any{c.client.SelectedAddress(), models.BlockTagLatest},
	})

	switch r := result.(type) {
	case models.ResultError:
		c.logger.Warn().Int("code", r.Error.Code).Str("error", r.Error.Message).Msg("balance query failed")
		c.emit(r.Error.Message)
		c.record(models.GetBalance, OutcomeError)
	case models.ResultItem:
		amount, err := utils.ParseHexQuantity(r.Value)
		if err != nil {
			c.logger.Warn().Err(err).Str("value", r.Value).Msg("balance is not a hex quantity")
			c.emit(invalidBalanceMessage(r.Value))
			c.record(models.GetBalance, OutcomeInvalid)
			return
		}
		c.setBalance(amount.String() + " " + BalanceUnit)
		c.record(models.GetBalance, OutcomeOK)
	case models.ResultItemMap, models.ResultItems:
		c.setBalance(models.BalanceNotAvailable)
		c.record(models.GetBalance, OutcomeFallback)
	default:
		c.logger.Error().Msgf("unexpected result type %T", result)
	}
}

func (c *eventCoordinator) handleDisconnect() {
	c.state.Update(func(s models.UIState) models.UIState {
		s.IsConnecting = false
		return s
	})
	c.client.Disconnect(true)
	c.emit(MsgDisconnected)
	c.record(models.Disconnect, OutcomeOK)
}

func (c *eventCoordinator) updateBalance() {
	if c.client.SelectedAddress() == "" {
		c.emit(MsgWalletNotConnected)
		c.recordLabel(UpdateBalanceEvent, OutcomeRejected)
		return
	}

	c.Handle(models.GetBalance)
	c.emit(MsgFetchingBalance)
	c.recordLabel(UpdateBalanceEvent, OutcomeOK)
}

func (c *eventCoordinator) setBalance(balance string) {
	c.state.Update(func(s models.UIState) models.UIState {
		s.Balance = balance
		return s
	})
}

func (c *eventCoordinator) emit(text string) {
	c.events.Emit(models.Message{Text: text})
}

func (c *eventCoordinator) record(event models.EventSink, outcome string) {
	c.recordLabel(event.String(), outcome)
}

func (c *eventCoordinator) recordLabel(event, outcome string) {
	if c.recorder != nil {
		c.recorder.RecordEvent(event, outcome)
	}
}
