package payment

import (
	"context"
	"time"

	"github.com/shashinthakamunasinghe/eco-cycle-hub/internal/model"

	"github.com/rs/zerolog"
)

// Processor authorises a payment for an order total. No retry policy:
// a declined charge surfaces to the caller, who may resubmit.
type Processor interface {
	// Charge authorises a payment of amount using the given method.
	// Returns ErrPaymentDeclined or ErrInvalidPayment on failure.
	Charge(ctx context.Context, amount float64, method string) error
}

// simulatedProcessor implements Processor without a real gateway. It
// waits a configured delay standing in for gateway latency, then
// approves any positive amount on a supported method.
type simulatedProcessor struct {
	delay  time.Duration
	logger zerolog.Logger
}

// NewSimulatedProcessor creates the simulated payment processor.
func NewSimulatedProcessor(delay time.Duration, logger zerolog.Logger) Processor {
	return &simulatedProcessor{
		delay:  delay,
		logger: logger.With().Str("component", "payment-processor").Logger(),
	}
}

// Charge authorises a payment of amount using the given method.
func (p *simulatedProcessor) Charge(ctx context.Context, amount float64, method string) error {
	if !model.ValidPaymentMethod(method) {
		p.logger.Warn().Str("method", method).Msg("unsupported payment method")
		return model.ErrInvalidPayment
	}

	if amount <= 0 {
		p.logger.Warn().Float64("amount", amount).Msg("non-positive charge amount declined")
		return model.ErrPaymentDeclined
	}

	if p.delay > 0 {
		select {
		case <-time.After(p.delay):
		case <-ctx.Done():
			return ctx.Err()
		}
	}

	p.logger.Info().
		Float64("amount", amount).
		Str("method", method).
		Msg("payment authorised")

	return nil
}
