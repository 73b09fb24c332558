package domain

import "sync"

// Passenger keeps its own booking history. Tickets are appended, never removed.
type Passenger struct {
	ID    string
	Name  string
	Email string
	Phone string

	mu      sync.Mutex
	tickets []*Ticket
}

func NewPassenger(id, name, email, phone string) *Passenger {
	return &Passenger{ID: id, Name: name, Email: email, Phone: phone}
}

func (p *Passenger) AddTicket(t *Ticket) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.tickets = append(p.tickets, t)
}

// Tickets returns a copy of the booking history in issue order.
func (p *Passenger) Tickets() []*Ticket {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]*Ticket, len(p.tickets))
	copy(out, p.tickets)
	return out
}
