// Package audit records swallowed bundle-add failures for later review.
// Failures are enqueued on Redis and persisted by the worker binary; the
// popup flow itself never blocks on them.
package audit

import (
	"encoding/json"

	"github.com/hibiken/asynq"
)

// TaskBundleAddFailed is the task type for a swallowed bundle add failure.
const TaskBundleAddFailed = "shop.bundle_add_failed"

// BundleAddFailedPayload describes one swallowed bundle add failure.
type BundleAddFailedPayload struct {
	CartID       string `json:"cartId"`
	TargetHandle string `json:"targetHandle"`
	Reason       string `json:"reason"`
}

// NewBundleAddFailedTask builds the asynq task for a bundle add failure.
func NewBundleAddFailedTask(payload BundleAddFailedPayload) (*asynq.Task, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TaskBundleAddFailed, data), nil
}

// ParseBundleAddFailedPayload decodes the task payload.
func ParseBundleAddFailedPayload(task *asynq.Task) (BundleAddFailedPayload, error) {
	var payload BundleAddFailedPayload
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		return BundleAddFailedPayload{}, err
	}
	return payload, nil
}
