package repository

import (
	"context"
	"fmt"
	"sync"

	"github.com/Domenick1991/flightbooking/internal/domain"
)

type TicketRepository interface {
	// NextNumber mints a sequential ticket number, unique across
	// concurrent bookings.
	NextNumber(ctx context.Context) string
	Store(ctx context.Context, ticket *domain.Ticket) error
	GetByNumber(ctx context.Context, number string) (*domain.Ticket, error)
	List(ctx context.Context) ([]*domain.Ticket, error)
}

type MemTicketRepository struct {
	mu       sync.RWMutex
	byNumber map[string]*domain.Ticket
	order    []string
	seq      int
}

func NewTicketRepository() *MemTicketRepository {
	return &MemTicketRepository{byNumber: make(map[string]*domain.Ticket)}
}

func (r *MemTicketRepository) NextNumber(_ context.Context) string {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.seq++
	return fmt.Sprintf("TKT%d", r.seq)
}

func (r *MemTicketRepository) Store(_ context.Context, ticket *domain.Ticket) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byNumber[ticket.Number]; ok {
		return fmt.Errorf("ticket %s already stored", ticket.Number)
	}
	r.byNumber[ticket.Number] = ticket
	r.order = append(r.order, ticket.Number)
	return nil
}

func (r *MemTicketRepository) GetByNumber(_ context.Context, number string) (*domain.Ticket, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	ticket, ok := r.byNumber[number]
	if !ok {
		return nil, domain.ErrTicketNotFound
	}
	return ticket, nil
}

func (r *MemTicketRepository) List(_ context.Context) ([]*domain.Ticket, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	tickets := make([]*domain.Ticket, 0, len(r.order))
	for _, number := range r.order {
		tickets = append(tickets, r.byNumber[number])
	}
	return tickets, nil
}

var _ TicketRepository = (*MemTicketRepository)(nil)
