package queue

import (
	"encoding/json"
	"time"

	"github.com/hibiken/asynq"

	"storefront-backend/internal/shared"
	"storefront-backend/pkg/logger"
)

type Scheduler struct {
	scheduler *asynq.Scheduler
}

func NewScheduler(redisOpt asynq.RedisClientOpt) *Scheduler {
	scheduler := asynq.NewScheduler(
		redisOpt,
		&asynq.SchedulerOpts{
			Location: time.UTC,
			LogLevel: asynq.InfoLevel,
		},
	)

	return &Scheduler{scheduler: scheduler}
}

// RegisterRecoveryJobs đăng ký sweep abandoned checkout theo cron spec
func (s *Scheduler) RegisterRecoveryJobs(cronSpec string) (string, error) {
	payload, err := json.Marshal(shared.RecoverySweepPayload{TriggeredBy: "scheduler"})
	if err != nil {
		return "", err
	}

	task := asynq.NewTask(shared.TypeAbandonedRecoverySweep, payload)

	entryID, err := s.scheduler.Register(
		cronSpec,
		task,
		asynq.Queue(shared.QueueCheckout),
		asynq.MaxRetry(0), // không retry, tránh gửi email 2 lần
		asynq.Timeout(5*time.Minute),
		asynq.Unique(55*time.Minute),
	)
	if err != nil {
		logger.Error("Failed to register AbandonedRecoverySweep job", err)
		return "", err
	}

	logger.Info("✓ Registered AbandonedRecoverySweep", map[string]interface{}{
		"cron":     cronSpec,
		"entry_id": entryID,
	})
	return entryID, nil
}

// Start không block, signal do caller xử lý
func (s *Scheduler) Start() error {
	return s.scheduler.Start()
}

func (s *Scheduler) Shutdown() {
	s.scheduler.Shutdown()
}
