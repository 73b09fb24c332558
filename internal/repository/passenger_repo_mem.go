package repository

import (
	"context"
	"fmt"
	"sync"

	"github.com/Domenick1991/flightbooking/internal/domain"
)

type PassengerRepository interface {
	Add(ctx context.Context, passenger *domain.Passenger) error
	GetByID(ctx context.Context, id string) (*domain.Passenger, error)
	List(ctx context.Context) ([]*domain.Passenger, error)
}

// MemPassengerRepository stores passengers keyed by id in insertion order.
// Ids are assigned here when the caller leaves them empty.
type MemPassengerRepository struct {
	mu    sync.RWMutex
	byID  map[string]*domain.Passenger
	order []string
	seq   int
}

func NewPassengerRepository() *MemPassengerRepository {
	return &MemPassengerRepository{byID: make(map[string]*domain.Passenger)}
}

// Add registers a passenger, minting a sequential id (P1, P2, ...) when none
// is set. An existing id is overwritten in place.
func (r *MemPassengerRepository) Add(_ context.Context, passenger *domain.Passenger) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if passenger.ID == "" {
		for {
			r.seq++
			id := fmt.Sprintf("P%d", r.seq)
			if _, taken := r.byID[id]; !taken {
				passenger.ID = id
				break
			}
		}
	}
	if _, ok := r.byID[passenger.ID]; !ok {
		r.order = append(r.order, passenger.ID)
	}
	r.byID[passenger.ID] = passenger
	return nil
}

func (r *MemPassengerRepository) GetByID(_ context.Context, id string) (*domain.Passenger, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	passenger, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrPassengerNotFound
	}
	return passenger, nil
}

func (r *MemPassengerRepository) List(_ context.Context) ([]*domain.Passenger, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	passengers := make([]*domain.Passenger, 0, len(r.order))
	for _, id := range r.order {
		passengers = append(passengers, r.byID[id])
	}
	return passengers, nil
}

var _ PassengerRepository = (*MemPassengerRepository)(nil)
