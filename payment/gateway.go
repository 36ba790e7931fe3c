// Package payment simulates the card processor. There is no real money
// movement anywhere in the system; the gateway exists so checkout has a
// realistic settlement delay and a reference to print on the invoice.
package payment

import (
	"context"
	"time"

	"github.com/google/uuid"
)

type Receipt struct {
	Ref       string    `json:"ref"`
	Amount    float64   `json:"amount"`
	Method    string    `json:"method"`
	ChargedAt time.Time `json:"charged_at"`
}

type Gateway struct {
	delay time.Duration
}

// New builds a gateway that takes delay to settle each charge. Tests
// pass zero.
func New(delay time.Duration) *Gateway {
	return &Gateway{delay: delay}
}

// Charge settles a mock payment after the configured delay. The context
// lets the server abandon the wait on shutdown or client disconnect; a
// started charge otherwise always settles.
func (g *Gateway) Charge(ctx context.Context, amount float64, method string) (Receipt, error) {
	if g.delay > 0 {
		timer := time.NewTimer(g.delay)
		defer timer.Stop()
		select {
		case <-timer.C:
		case <-ctx.Done():
			return Receipt{}, ctx.Err()
		}
	}

	return Receipt{
		Ref:       "pay_" + uuid.NewString(),
		Amount:    amount,
		Method:    method,
		ChargedAt: time.Now().UTC(),
	}, nil
}
