// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/go-wallet-dapp/internal/logger"
)

type balanceRefresher struct {
	updater  BalanceUpdater
	interval time.Duration

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup

	logger *logger.Logger
}

// NewBalanceRefresher creates a worker that calls updater.UpdateBalance every
// interval while a wallet address is selected. It returns nil when interval
// is not positive, which disables the refresher.
func NewBalanceRefresher(updater BalanceUpdater, interval time.Duration, log *logger.Logger) Worker {
	if interval <= 0 {
		return nil
	}
	return &balanceRefresher{
		updater:  updater,
		interval: interval,
		logger:   log.WithComponent("balance-refresher"),
	}
}

// Start implements Worker. A running job is stopped first.
func (r *balanceRefresher) Start(ctx context.Context) {
	r.Stop()

	r.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	r.cancel = cancel
	r.wg.Add(1)
	r.mu.Unlock()

	r.logger.Info().Dur("interval", r.interval).Msg("balance refresher started")

	go func() {
		defer r.wg.Done()
		t := time.NewTicker(r.interval)
		defer t.Stop()

		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				r.tick()
			}
		}
	}()
}

// tick skips disconnected sessions so the UI is not flooded with
// "not connected" messages.
func (r *balanceRefresher) tick() {
	if r.updater.SelectedAddress() == "" {
		r.logger.Debug().Msg("no wallet session, skipping refresh")
		return
	}
	r.updater.UpdateBalance()
}

// Stop implements Worker.
func (r *balanceRefresher) Stop() {
	r.mu.Lock()
	cancel := r.cancel
	r.cancel = nil
	r.mu.Unlock()

	if cancel != nil {
		cancel()
		r.logger.Info().Msg("balance refresher stopped")
	}
	r.wg.Wait()
}
