package audit

import (
	"context"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"
	"github.com/redis/go-redis/v9"

	"shopfront_backend/platform/config"
	"shopfront_backend/platform/logger"
)

// Recorder accepts bundle-add failure records. Recording is best-effort:
// implementations never return an error to the caller.
type Recorder interface {
	RecordBundleAddFailure(ctx context.Context, cartID uuid.UUID, targetHandle, reason string)
}

// Client enqueues failure records on the audit queue.
type Client struct {
	client *asynq.Client
	queue  string
	log    *logger.Logger
}

// NewClient creates an audit queue client. Returns an error when Redis is
// not configured; callers fall back to NewNopRecorder.
func NewClient(cfg config.WorkerConfig, log *logger.Logger) (*Client, error) {
	opt, err := redisClientOpt(cfg.GetRedisURL())
	if err != nil {
		return nil, err
	}

	queue := cfg.GetAuditQueueName()
	if queue == "" {
		queue = "default"
	}

	return &Client{
		client: asynq.NewClient(opt),
		queue:  queue,
		log:    log,
	}, nil
}

// Close releases the underlying asynq client.
func (c *Client) Close() error {
	if c == nil || c.client == nil {
		return nil
	}
	return c.client.Close()
}

// RecordBundleAddFailure enqueues the failure. An enqueue error is itself
// swallowed and logged; auditing must never affect the popup flow.
func (c *Client) RecordBundleAddFailure(ctx context.Context, cartID uuid.UUID, targetHandle, reason string) {
	task, err := NewBundleAddFailedTask(BundleAddFailedPayload{
		CartID:       cartID.String(),
		TargetHandle: targetHandle,
		Reason:       reason,
	})
	if err != nil {
		c.log.Error("audit task build failed", "error", err.Error())
		return
	}

	if _, err := c.client.EnqueueContext(ctx, task, asynq.Queue(c.queue)); err != nil {
		c.log.Error("audit enqueue failed", "error", err.Error())
	}
}

// NopRecorder discards failure records; used when Redis is not configured.
type NopRecorder struct{}

// NewNopRecorder creates a recorder that drops everything.
func NewNopRecorder() NopRecorder { return NopRecorder{} }

// RecordBundleAddFailure does nothing.
func (NopRecorder) RecordBundleAddFailure(context.Context, uuid.UUID, string, string) {}

var (
	_ Recorder = (*Client)(nil)
	_ Recorder = NopRecorder{}
)

func redisClientOpt(redisURL string) (asynq.RedisClientOpt, error) {
	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return asynq.RedisClientOpt{}, err
	}

	return asynq.RedisClientOpt{
		Network:   opt.Network,
		Addr:      opt.Addr,
		Username:  opt.Username,
		Password:  opt.Password,
		DB:        opt.DB,
		TLSConfig: opt.TLSConfig,
	}, nil
}
