package audit

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"
	"github.com/jackc/pgx/v5/pgxpool"

	"shopfront_backend/platform/config"
	"shopfront_backend/platform/logger"
)

// Worker consumes the audit queue and persists failure records.
type Worker struct {
	server *asynq.Server
	mux    *asynq.ServeMux
	repo   *Repository
	log    *logger.Logger
}

// NewWorker creates the audit worker bound to the configured Redis queue.
func NewWorker(cfg config.WorkerConfig, pool *pgxpool.Pool, log *logger.Logger) (*Worker, error) {
	redisURL := cfg.GetRedisURL()
	if redisURL == "" {
		return nil, fmt.Errorf("redis url not configured")
	}

	opt, err := redisClientOpt(redisURL)
	if err != nil {
		return nil, err
	}

	queue := cfg.GetAuditQueueName()
	if queue == "" {
		queue = "default"
	}

	concurrency := cfg.GetAuditConcurrency()
	if concurrency < 1 {
		concurrency = 10
	}

	server := asynq.NewServer(opt, asynq.Config{
		Concurrency: concurrency,
		Queues: map[string]int{
			queue: 1,
		},
	})

	mux := asynq.NewServeMux()
	w := &Worker{
		server: server,
		mux:    mux,
		repo:   NewRepository(pool),
		log:    log,
	}

	mux.HandleFunc(TaskBundleAddFailed, w.handleBundleAddFailed)

	return w, nil
}

// Run blocks serving the queue until Shutdown is called.
func (w *Worker) Run() error {
	return w.server.Run(w.mux)
}

// Shutdown stops the worker gracefully.
func (w *Worker) Shutdown() {
	w.server.Shutdown()
}

func (w *Worker) handleBundleAddFailed(ctx context.Context, task *asynq.Task) error {
	payload, err := ParseBundleAddFailedPayload(task)
	if err != nil {
		return err
	}

	cartID, err := uuid.Parse(payload.CartID)
	if err != nil {
		return err
	}

	if err := w.repo.InsertBundleAddFailure(ctx, cartID, payload.TargetHandle, payload.Reason); err != nil {
		w.log.DatabaseError("insert bundle add failure", err)
		return err
	}

	w.log.Info("bundle add failure recorded", "cartId", payload.CartID, "targetHandle", payload.TargetHandle)
	return nil
}
