package email

import (
	"context"
	"fmt"

	"github.com/Domenick1991/flightbooking/internal/kafka"
)

// Sender delivers booking confirmations. There is no SMTP behind it yet,
// it prints what a real sender would deliver.
type Sender struct{}

func NewSender() *Sender {
	return &Sender{}
}

func (s *Sender) Send(_ context.Context, event kafka.TicketEvent) error {
	fmt.Printf("send email to %s: ticket %s (%s) for flight %s seat %s\n",
		event.PassengerEmail, event.TicketNumber, event.Status, event.FlightNumber, event.Seat)
	return nil
}
