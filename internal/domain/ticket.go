package domain

import "time"

type TicketStatus string

const (
	TicketStatusConfirmed TicketStatus = "CONFIRMED"
	TicketStatusPending   TicketStatus = "PENDING"
)

// Ticket is the immutable record of a completed booking. Flight and
// passenger are referenced by key only; their lifetime belongs to the
// registry, not to the ticket.
type Ticket struct {
	Number       string       `json:"number"`
	FlightNumber string       `json:"flight_number"`
	PassengerID  string       `json:"passenger_id"`
	Seat         SeatID       `json:"seat"`
	Payment      *Payment     `json:"payment"`
	Status       TicketStatus `json:"status"`
	IssuedAt     time.Time    `json:"issued_at"`
}

// NewTicket derives the ticket status from the payment outcome at
// construction time: CONFIRMED only when the payment completed.
func NewTicket(number string, flight *Flight, passenger *Passenger, seat SeatID, payment *Payment) *Ticket {
	status := TicketStatusPending
	if payment != nil && payment.Status == PaymentStatusCompleted {
		status = TicketStatusConfirmed
	}
	return &Ticket{
		Number:       number,
		FlightNumber: flight.Number,
		PassengerID:  passenger.ID,
		Seat:         seat,
		Payment:      payment,
		Status:       status,
		IssuedAt:     time.Now(),
	}
}
