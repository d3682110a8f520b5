package email

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/sony/gobreaker/v2"
)

type BreakerSettings struct {
	// Số lần fail liên tiếp trước khi mở breaker
	MaxConsecutiveFailures uint32
	// Thời gian giữ trạng thái open trước khi thử lại (half-open)
	OpenTimeout time.Duration
}

func DefaultBreakerSettings() BreakerSettings {
	return BreakerSettings{
		MaxConsecutiveFailures: 5,
		OpenTimeout:            30 * time.Second,
	}
}

// breakerSender fails fast while the SMTP relay is down
type breakerSender struct {
	next Sender
	cb   *gobreaker.CircuitBreaker[struct{}]
}

func NewBreakerSender(next Sender, settings BreakerSettings) Sender {
	cb := gobreaker.NewCircuitBreaker[struct{}](gobreaker.Settings{
		Name:        "smtp",
		MaxRequests: 1,
		Timeout:     settings.OpenTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= settings.MaxConsecutiveFailures
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			log.Warn().
				Str("breaker", name).
				Str("from", from.String()).
				Str("to", to.String()).
				Msg("⚠️ Email circuit breaker state changed")
		},
	})

	return &breakerSender{next: next, cb: cb}
}

func (b *breakerSender) Send(ctx context.Context, req EmailRequest) error {
	_, err := b.cb.Execute(func() (struct{}, error) {
		return struct{}{}, b.next.Send(ctx, req)
	})
	return err
}
