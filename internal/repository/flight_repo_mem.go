package repository

import (
	"context"
	"strings"
	"sync"

	"github.com/Domenick1991/flightbooking/internal/domain"
)

type FlightRepository interface {
	Add(ctx context.Context, flight *domain.Flight) error
	List(ctx context.Context) ([]*domain.Flight, error)
	GetByNumber(ctx context.Context, number string) (*domain.Flight, error)
	SearchByRoute(ctx context.Context, originCity, destinationCity string) ([]*domain.Flight, error)
}

// MemFlightRepository is the in-memory flight catalog, keyed by flight
// number and iterated in insertion order.
type MemFlightRepository struct {
	mu       sync.RWMutex
	byNumber map[string]*domain.Flight
	order    []string
}

func NewFlightRepository() *MemFlightRepository {
	return &MemFlightRepository{byNumber: make(map[string]*domain.Flight)}
}

// Add registers a flight under its number. Re-adding an existing number
// replaces the flight in place, keeping its position in the catalog.
func (r *MemFlightRepository) Add(_ context.Context, flight *domain.Flight) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byNumber[flight.Number]; !ok {
		r.order = append(r.order, flight.Number)
	}
	r.byNumber[flight.Number] = flight
	return nil
}

func (r *MemFlightRepository) List(_ context.Context) ([]*domain.Flight, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	flights := make([]*domain.Flight, 0, len(r.order))
	for _, number := range r.order {
		flights = append(flights, r.byNumber[number])
	}
	return flights, nil
}

func (r *MemFlightRepository) GetByNumber(_ context.Context, number string) (*domain.Flight, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	flight, ok := r.byNumber[number]
	if !ok {
		return nil, domain.ErrFlightNotFound
	}
	return flight, nil
}

// SearchByRoute matches origin and destination city names case-insensitively
// and returns hits in the order flights were added.
func (r *MemFlightRepository) SearchByRoute(_ context.Context, originCity, destinationCity string) ([]*domain.Flight, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	matches := make([]*domain.Flight, 0)
	for _, number := range r.order {
		f := r.byNumber[number]
		if strings.EqualFold(f.Origin.City, originCity) && strings.EqualFold(f.Destination.City, destinationCity) {
			matches = append(matches, f)
		}
	}
	return matches, nil
}

var _ FlightRepository = (*MemFlightRepository)(nil)
