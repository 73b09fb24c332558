package flights

import (
	"context"

	"github.com/Domenick1991/flightbooking/internal/domain"
	"github.com/Domenick1991/flightbooking/internal/repository"
	"github.com/rs/zerolog"
)

type FlightUseCase interface {
	List(ctx context.Context) ([]domain.FlightSummary, error)
	GetByNumber(ctx context.Context, number string) (*domain.Flight, error)
	Search(ctx context.Context, originCity, destinationCity string) ([]*domain.Flight, error)
	AvailableSeats(ctx context.Context, number string) ([]domain.SeatID, error)
}

// FlightCache is the catalog-cache slice of the redis adapter. A nil cache
// means every List goes to the repository.
type FlightCache interface {
	GetFlights(ctx context.Context) ([]domain.FlightSummary, error)
	SetFlights(ctx context.Context, flights []domain.FlightSummary) error
}

type FlightService struct {
	repo  repository.FlightRepository
	cache FlightCache
	log   zerolog.Logger
}

func NewFlightService(repo repository.FlightRepository, cache FlightCache, log zerolog.Logger) *FlightService {
	return &FlightService{repo: repo, cache: cache, log: log}
}

func (s *FlightService) List(ctx context.Context) ([]domain.FlightSummary, error) {
	if s.cache != nil {
		if cached, err := s.cache.GetFlights(ctx); err == nil && cached != nil {
			return cached, nil
		} else if err != nil {
			s.log.Warn().Err(err).Msg("flight cache read failed")
		}
	}

	flights, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	summaries := make([]domain.FlightSummary, 0, len(flights))
	for _, f := range flights {
		summaries = append(summaries, f.Summary())
	}

	if s.cache != nil {
		if err := s.cache.SetFlights(ctx, summaries); err != nil {
			s.log.Warn().Err(err).Msg("flight cache write failed")
		}
	}
	return summaries, nil
}

func (s *FlightService) GetByNumber(ctx context.Context, number string) (*domain.Flight, error) {
	return s.repo.GetByNumber(ctx, number)
}

// Search matches both city names case-insensitively and preserves catalog
// order. An unknown route yields an empty slice, not an error.
func (s *FlightService) Search(ctx context.Context, originCity, destinationCity string) ([]*domain.Flight, error) {
	return s.repo.SearchByRoute(ctx, originCity, destinationCity)
}

func (s *FlightService) AvailableSeats(ctx context.Context, number string) ([]domain.SeatID, error) {
	flight, err := s.repo.GetByNumber(ctx, number)
	if err != nil {
		return nil, err
	}
	return flight.AvailableSeats(), nil
}

var _ FlightUseCase = (*FlightService)(nil)
