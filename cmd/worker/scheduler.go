package main

import (
	"github.com/hibiken/asynq"
	"github.com/rs/zerolog/log"

	"storefront-backend/internal/infrastructure/queue"
)

// asynqScheduler wraps queue.Scheduler
type asynqScheduler struct {
	*queue.Scheduler
}

// setupScheduler đăng ký periodic recovery sweep rồi start scheduler
func setupScheduler(redisOpt asynq.RedisClientOpt, recoveryCron string) *asynqScheduler {
	scheduler := queue.NewScheduler(redisOpt)

	entryID, err := scheduler.RegisterRecoveryJobs(recoveryCron)
	if err != nil {
		log.Fatal().Err(err).Msg("[Scheduler] Failed to register")
	}
	log.Info().Str("entry_id", entryID).Str("cron", recoveryCron).Msg("[Scheduler] Recovery sweep registered")

	log.Info().Msg("[Scheduler] Starting...")
	if err := scheduler.Start(); err != nil {
		log.Fatal().Err(err).Msg("[Scheduler] Failed")
	}

	return &asynqScheduler{Scheduler: scheduler}
}

func (s *asynqScheduler) Shutdown() {
	log.Info().Msg("[Scheduler] Shutting down...")
	s.Scheduler.Shutdown()
	log.Info().Msg("[Scheduler] ✓ Stopped")
}
