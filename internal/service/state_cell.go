package service

import (
	"sync"

	"github.com/MKhiriev/go-wallet-dapp/models"
)

// stateCell holds the current UIState. Writes are serialised; every
// subscriber has a one-slot channel that always carries the newest value.
type stateCell struct {
	mu     sync.Mutex
	value  models.UIState
	nextID int
	subs   map[int]chan models.UIState
}

func newStateCell(initial models.UIState) *stateCell {
	return &stateCell{
		value: initial,
		subs:  make(map[int]chan models.UIState),
	}
}

func (s *stateCell) Load() models.UIState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.value
}

// Update applies fn to the latest snapshot and publishes the result.
func (s *stateCell) Update(fn func(models.UIState) models.UIState) models.UIState {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.value = fn(s.value)
	for _, ch := range s.subs {
		offerLatest(ch, s.value)
	}
	return s.value
}

func (s *stateCell) Subscribe() (<-chan models.UIState, func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextID
	s.nextID++

	ch := make(chan models.UIState, 1)
	ch <- s.value
	s.subs[id] = ch

	var once sync.Once
	return ch, func() {
		once.Do(func() {
			s.mu.Lock()
			defer s.mu.Unlock()
			delete(s.subs, id)
			close(ch)
		})
	}
}

// offerLatest replaces whatever is buffered in ch with v. The caller holds
// the cell lock, so ch has no other writer.
func offerLatest(ch chan models.UIState, v models.UIState) {
	select {
	case <-ch:
	default:
	}
	select {
	case ch <- v:
	default:
	}
}
