package queue

import (
	appconfig "go-planner-api/core/config"
	"go-planner-api/core/logger"

	"github.com/hibiken/asynq"
)

// Task type names handled by the background worker.
const (
	TypeDeadlineScan = "notification:deadline_scan"
)

// Queue bundles the asynq client, worker server and periodic scheduler that
// back the deadline-reminder pipeline.
type Queue struct {
	client    *asynq.Client
	server    *asynq.Server
	scheduler *asynq.Scheduler
}

func Init(cfg appconfig.RedisConfig) *Queue {
	redisOpt := asynq.RedisClientOpt{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	}

	client := asynq.NewClient(redisOpt)
	server := asynq.NewServer(redisOpt, asynq.Config{
		Concurrency: 2,
	})
	scheduler := asynq.NewScheduler(redisOpt, nil)

	return &Queue{
		client:    client,
		server:    server,
		scheduler: scheduler,
	}
}

func (q *Queue) Client() *asynq.Client {
	return q.client
}

// Start registers handlers and cron entries and runs worker and scheduler in
// background goroutines.
func (q *Queue) Start(mux *asynq.ServeMux) {
	// Daily deadline scan at 07:00
	if _, err := q.scheduler.Register("0 7 * * *", asynq.NewTask(TypeDeadlineScan, nil)); err != nil {
		logger.Error("Queue:Start:RegisterDeadlineScan:Error", "error", err)
	}

	go func() {
		if err := q.server.Run(mux); err != nil {
			logger.Error("Queue:Start:ServerRun:Error", "error", err)
		}
	}()
	go func() {
		if err := q.scheduler.Run(); err != nil {
			logger.Error("Queue:Start:SchedulerRun:Error", "error", err)
		}
	}()

	logger.Info("Queue worker and scheduler started")
}

func (q *Queue) Shutdown() {
	q.scheduler.Shutdown()
	q.server.Shutdown()
	if err := q.client.Close(); err != nil {
		logger.Error("Queue:Shutdown:ClientClose:Error", "error", err)
	}
}
