package tasks

import (
	"context"
	"encoding/json"
	"time"

	"lablink/models"

	"github.com/hibiken/asynq"
)

const TypeBookingReconcile = "booking:reconcile"

func NewReconcileTask(payload models.ReconcilePayload) (*asynq.Task, []asynq.Option, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, nil, err
	}
	task := asynq.NewTask(TypeBookingReconcile, b)
	opts := []asynq.Option{
		asynq.MaxRetry(10),
		asynq.Timeout(30 * time.Second),
	}

	return task, opts, nil
}

// AsynqEnqueuer schedules reconcile tasks on the shared queue. It satisfies
// the checkout service's ReconcileEnqueuer.
type AsynqEnqueuer struct {
	Client *asynq.Client
}

func (e *AsynqEnqueuer) EnqueueReconcile(ctx context.Context, partnerID, bookingID string) error {
	task, opts, err := NewReconcileTask(models.ReconcilePayload{
		PartnerID: partnerID,
		BookingID: bookingID,
	})
	if err != nil {
		return err
	}
	_, err = e.Client.EnqueueContext(ctx, task, opts...)
	return err
}
