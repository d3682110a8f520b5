package job

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/hibiken/asynq"
	"github.com/rs/zerolog/log"

	"storefront-backend/internal/domains/checkout/service"
	"storefront-backend/internal/shared"
)

// RecoverySweepHandler chạy sweep khi asynq scheduler enqueue task theo cron
type RecoverySweepHandler struct {
	service service.ServiceInterface
}

func NewRecoverySweepHandler(s service.ServiceInterface) *RecoverySweepHandler {
	return &RecoverySweepHandler{service: s}
}

func (h *RecoverySweepHandler) ProcessTask(ctx context.Context, task *asynq.Task) error {
	var payload shared.RecoverySweepPayload
	if len(task.Payload()) > 0 {
		if err := json.Unmarshal(task.Payload(), &payload); err != nil {
			log.Error().Err(err).Msg("Failed to unmarshal RecoverySweep payload")
			return fmt.Errorf("unmarshal payload: %w: %w", err, asynq.SkipRetry)
		}
	}

	log.Info().Str("triggered_by", payload.TriggeredBy).Msg("Processing abandoned checkout recovery sweep")

	report, err := h.service.RunRecoverySweep(ctx)
	if err != nil {
		log.Error().Err(err).Msg("Recovery sweep failed")
		return fmt.Errorf("run recovery sweep: %w", err)
	}

	failed := report.Processed - report.Sent
	event := log.Info()
	if failed > 0 {
		event = log.Warn()
	}
	event.
		Int("processed", report.Processed).
		Int("sent", report.Sent).
		Int("failed", failed).
		Msg("Recovery sweep completed")

	return nil
}
