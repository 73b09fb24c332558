package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPayment_Process(t *testing.T) {
	payment := NewPayment(20000, PaymentMethodCreditCard)
	require.NotEmpty(t, payment.ID)
	assert.Equal(t, PaymentStatusPending, payment.Status)

	assert.True(t, payment.Process())
	assert.Equal(t, PaymentStatusCompleted, payment.Status)

	// A payment is processed at most once; the second call reports the
	// earlier outcome.
	first := payment.Timestamp
	assert.True(t, payment.Process())
	assert.Equal(t, first, payment.Timestamp)
}

func TestPaymentMethod_Valid(t *testing.T) {
	assert.True(t, PaymentMethodCreditCard.Valid())
	assert.True(t, PaymentMethodDebitCard.Valid())
	assert.True(t, PaymentMethodPayPal.Valid())
	assert.False(t, PaymentMethod("bitcoin").Valid())
	assert.False(t, PaymentMethod("").Valid())
}

func TestNewTicket_StatusFromPayment(t *testing.T) {
	flight := newTestFlight()
	passenger := NewPassenger("P1", "Ada", "ada@example.com", "+100")

	completed := NewPayment(20000, PaymentMethodPayPal)
	require.True(t, completed.Process())
	ticket := NewTicket("TKT1", flight, passenger, "12A", completed)
	assert.Equal(t, TicketStatusConfirmed, ticket.Status)
	assert.Equal(t, "FL101", ticket.FlightNumber)
	assert.Equal(t, "P1", ticket.PassengerID)

	pending := NewPayment(20000, PaymentMethodPayPal)
	ticket = NewTicket("TKT2", flight, passenger, "12B", pending)
	assert.Equal(t, TicketStatusPending, ticket.Status)
}

func TestPassenger_Tickets(t *testing.T) {
	flight := newTestFlight()
	passenger := NewPassenger("P1", "Ada", "ada@example.com", "+100")
	assert.Empty(t, passenger.Tickets())

	payment := NewPayment(20000, PaymentMethodCreditCard)
	payment.Process()
	first := NewTicket("TKT1", flight, passenger, "1A", payment)
	second := NewTicket("TKT2", flight, passenger, "1B", payment)
	passenger.AddTicket(first)
	passenger.AddTicket(second)

	history := passenger.Tickets()
	require.Len(t, history, 2)
	assert.Equal(t, first, history[0])
	assert.Equal(t, second, history[1])

	// History is a copy, not a live view.
	history[0] = nil
	assert.Equal(t, first, passenger.Tickets()[0])
}
