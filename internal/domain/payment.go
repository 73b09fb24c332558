package domain

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

type PaymentStatus string

const (
	PaymentStatusPending   PaymentStatus = "PENDING"
	PaymentStatusCompleted PaymentStatus = "COMPLETED"
	PaymentStatusFailed    PaymentStatus = "FAILED"
)

type PaymentMethod string

const (
	PaymentMethodCreditCard PaymentMethod = "credit_card"
	PaymentMethodDebitCard  PaymentMethod = "debit_card"
	PaymentMethodPayPal     PaymentMethod = "paypal"
)

func (m PaymentMethod) Valid() bool {
	switch m {
	case PaymentMethodCreditCard, PaymentMethodDebitCard, PaymentMethodPayPal:
		return true
	}
	return false
}

// Payment is a single payment attempt. Process moves it to a terminal
// status exactly once; there is no gateway behind it, it always succeeds.
type Payment struct {
	ID          string        `json:"id"`
	AmountCents int64         `json:"amount_cents"`
	Method      PaymentMethod `json:"method"`
	Status      PaymentStatus `json:"status"`
	Timestamp   time.Time     `json:"timestamp"`

	mu sync.Mutex
}

func NewPayment(amountCents int64, method PaymentMethod) *Payment {
	return &Payment{
		ID:          uuid.NewString(),
		AmountCents: amountCents,
		Method:      method,
		Status:      PaymentStatusPending,
		Timestamp:   time.Now(),
	}
}

// Process transitions PENDING to COMPLETED and reports success. Calling it
// again returns the outcome of the first call without reprocessing.
func (p *Payment) Process() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.Status != PaymentStatusPending {
		return p.Status == PaymentStatusCompleted
	}
	p.Status = PaymentStatusCompleted
	p.Timestamp = time.Now()
	return true
}
