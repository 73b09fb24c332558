package booking

import (
	"context"
	"time"

	"github.com/Domenick1991/flightbooking/internal/domain"
	"github.com/Domenick1991/flightbooking/internal/kafka"
	"github.com/Domenick1991/flightbooking/internal/repository"
	"github.com/rs/zerolog"
)

type BookingUseCase interface {
	RegisterPassenger(ctx context.Context, input RegisterPassengerInput) (*domain.Passenger, error)
	GetPassenger(ctx context.Context, id string) (*domain.Passenger, error)
	PassengerTickets(ctx context.Context, id string) ([]*domain.Ticket, error)
	BookFlight(ctx context.Context, input BookFlightInput) (*domain.Ticket, error)
	GetTicket(ctx context.Context, number string) (*domain.Ticket, error)
}

// Cache is the seat-lock slice of the redis adapter. With a nil cache the
// in-process seat map is the only serialization point, which is enough for
// a single instance.
type Cache interface {
	AcquireSeatLock(ctx context.Context, flightNumber string, seat domain.SeatID, ttl time.Duration) (bool, error)
	ReleaseSeatLock(ctx context.Context, flightNumber string, seat domain.SeatID) error
}

type Producer interface {
	Publish(ctx context.Context, topic, key string, value interface{}) error
}

type BookingService struct {
	passengers         repository.PassengerRepository
	flights            repository.FlightRepository
	tickets            repository.TicketRepository
	cache              Cache
	producer           Producer
	ticketTopic        string
	notificationsTopic string
	seatLockTTL        time.Duration
	log                zerolog.Logger
}

type RegisterPassengerInput struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

type BookFlightInput struct {
	PassengerID   string `json:"passenger_id"`
	FlightNumber  string `json:"flight_number"`
	Seat          string `json:"seat"`
	PaymentMethod string `json:"payment_method"`
}

type BookingServiceOption func(*BookingService)

func WithNotificationsTopic(topic string) BookingServiceOption {
	return func(s *BookingService) {
		s.notificationsTopic = topic
	}
}

func WithSeatLockTTL(ttl time.Duration) BookingServiceOption {
	return func(s *BookingService) {
		s.seatLockTTL = ttl
	}
}

func NewBookingService(
	passengers repository.PassengerRepository,
	flights repository.FlightRepository,
	tickets repository.TicketRepository,
	cache Cache,
	producer Producer,
	ticketTopic string,
	log zerolog.Logger,
	opts ...BookingServiceOption,
) *BookingService {
	service := &BookingService{
		passengers:  passengers,
		flights:     flights,
		tickets:     tickets,
		cache:       cache,
		producer:    producer,
		ticketTopic: ticketTopic,
		seatLockTTL: 30 * time.Second,
		log:         log,
	}
	for _, opt := range opts {
		opt(service)
	}
	return service
}

func (s *BookingService) RegisterPassenger(ctx context.Context, input RegisterPassengerInput) (*domain.Passenger, error) {
	passenger := domain.NewPassenger("", input.Name, input.Email, input.Phone)
	if err := s.passengers.Add(ctx, passenger); err != nil {
		return nil, err
	}
	s.log.Info().Str("passenger_id", passenger.ID).Msg("passenger registered")
	return passenger, nil
}

func (s *BookingService) GetPassenger(ctx context.Context, id string) (*domain.Passenger, error) {
	return s.passengers.GetByID(ctx, id)
}

func (s *BookingService) PassengerTickets(ctx context.Context, id string) ([]*domain.Ticket, error) {
	passenger, err := s.passengers.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return passenger.Tickets(), nil
}

func (s *BookingService) GetTicket(ctx context.Context, number string) (*domain.Ticket, error) {
	return s.tickets.GetByNumber(ctx, number)
}

// BookFlight runs the booking transaction: lookups, seat pre-check, payment,
// seat commit, ticket issue. It either returns a stored ticket or an error
// with no visible state change. The one exception is a lost seat-commit race,
// where the simulated payment has already completed; that loss is logged and
// surfaced as ErrSeatConflict.
func (s *BookingService) BookFlight(ctx context.Context, input BookFlightInput) (*domain.Ticket, error) {
	method := domain.PaymentMethod(input.PaymentMethod)
	if !method.Valid() {
		return nil, domain.ErrInvalidPaymentMethod
	}

	seat, err := domain.ParseSeatID(input.Seat)
	if err != nil {
		return nil, domain.ErrSeatUnavailable
	}

	passenger, err := s.passengers.GetByID(ctx, input.PassengerID)
	if err != nil {
		return nil, err
	}
	flight, err := s.flights.GetByNumber(ctx, input.FlightNumber)
	if err != nil {
		return nil, err
	}

	// Pre-check before payment so a seat that cannot be reserved is never
	// charged for.
	if !flight.IsSeatAvailable(seat) {
		return nil, domain.ErrSeatUnavailable
	}

	if s.cache != nil {
		ok, err := s.cache.AcquireSeatLock(ctx, flight.Number, seat, s.seatLockTTL)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, domain.ErrSeatLocked
		}
		defer func() {
			if err := s.cache.ReleaseSeatLock(ctx, flight.Number, seat); err != nil {
				s.log.Warn().Err(err).Str("flight", flight.Number).Str("seat", string(seat)).Msg("seat lock release failed")
			}
		}()
	}

	payment := domain.NewPayment(flight.FareCents, method)
	if !payment.Process() {
		return nil, domain.ErrPaymentFailed
	}

	// Commit point. The pre-check above makes failure impossible in a single
	// instance; losing the race to another instance leaves a completed
	// payment with no ticket.
	if !flight.BookSeat(seat) {
		s.log.Warn().
			Str("flight", flight.Number).
			Str("seat", string(seat)).
			Str("payment_id", payment.ID).
			Msg("seat commit lost after payment completed")
		return nil, domain.ErrSeatConflict
	}

	number := s.tickets.NextNumber(ctx)
	ticket := domain.NewTicket(number, flight, passenger, seat, payment)
	if err := s.tickets.Store(ctx, ticket); err != nil {
		return nil, err
	}
	passenger.AddTicket(ticket)

	if err := s.publish(ctx, "ticket_issued", ticket, passenger.Email); err != nil {
		s.log.Warn().Err(err).Str("ticket", ticket.Number).Msg("ticket event publish failed")
	}

	s.log.Info().
		Str("ticket", ticket.Number).
		Str("flight", flight.Number).
		Str("seat", string(seat)).
		Str("passenger_id", passenger.ID).
		Msg("ticket issued")
	return ticket, nil
}

func (s *BookingService) publish(ctx context.Context, eventType string, ticket *domain.Ticket, email string) error {
	if s.producer == nil || s.ticketTopic == "" {
		return nil
	}
	event := kafka.TicketEvent{
		Type:           eventType,
		TicketNumber:   ticket.Number,
		FlightNumber:   ticket.FlightNumber,
		PassengerID:    ticket.PassengerID,
		PassengerEmail: email,
		Seat:           string(ticket.Seat),
		Status:         string(ticket.Status),
		AmountCents:    ticket.Payment.AmountCents,
		IssuedAt:       ticket.IssuedAt,
	}
	if err := s.producer.Publish(ctx, s.ticketTopic, ticket.Number, event); err != nil {
		return err
	}
	if s.notificationsTopic != "" {
		return s.producer.Publish(ctx, s.notificationsTopic, ticket.Number, event)
	}
	return nil
}

var _ BookingUseCase = (*BookingService)(nil)
