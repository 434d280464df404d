package service

import (
	"sync"

	"github.com/MKhiriev/go-wallet-dapp/models"
)

const eventBufferSize = 16

type eventSubscriber struct {
	ch   chan models.UIEvent
	done chan struct{}
	once sync.Once
}

func (s *eventSubscriber) stop() {
	s.once.Do(func() { close(s.done) })
}

// eventBus broadcasts messages to the subscribers present at emission time.
// Emit blocks per subscriber until the message is buffered or the
// subscriber has gone away.
type eventBus struct {
	mu     sync.Mutex
	nextID int
	subs   map[int]*eventSubscriber
}

func newEventBus() *eventBus {
	return &eventBus{subs: make(map[int]*eventSubscriber)}
}

func (b *eventBus) Emit(event models.UIEvent) int {
	b.mu.Lock()
	targets := make([]*eventSubscriber, 0, len(b.subs))
	for _, s := range b.subs {
		targets = append(targets, s)
	}
	b.mu.Unlock()

	delivered := 0
	for _, s := range targets {
		select {
		case s.ch <- event:
			delivered++
		case <-s.done:
		}
	}
	return delivered
}

func (b *eventBus) Subscribe() (<-chan models.UIEvent, func()) {
	s := &eventSubscriber{
		ch:   make(chan models.UIEvent, eventBufferSize),
		done: make(chan struct{}),
	}

	b.mu.Lock()
	id := b.nextID
	b.nextID++
	b.subs[id] = s
	b.mu.Unlock()

	return s.ch, func() {
		b.mu.Lock()
		delete(b.subs, id)
		b.mu.Unlock()
		s.stop()
	}
}
