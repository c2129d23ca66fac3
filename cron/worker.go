package cron

import (
	"context"
	"encoding/json"
	"time"

	"lablink/config"
	"lablink/database/repository"
	"lablink/models"
	"lablink/services/checkout"
	"lablink/services/commission"
	"lablink/services/tasks"
	"lablink/utils"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

// ReconcileDeps are the stores the reconcile handler replays against.
type ReconcileDeps struct {
	Fallback    checkout.FallbackStore
	PartnerRepo repository.PartnerRepository
	BookingRepo repository.BookingRepository
}

// InitReconcileWorker runs the async worker in background. It drains fallback
// bookings into durable storage as connectivity allows.
func InitReconcileWorker(deps ReconcileDeps) {
	redisOpts := asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	}

	srv := asynq.NewServer(
		redisOpts,
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(tasks.TypeBookingReconcile, handleReconcileTask(deps))

	go func() {
		logger := utils.GetLogger()
		logger.Info("starting reconcile worker")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			if err := srv.Run(mux); err != nil {
				logger.Error("reconcile worker failed to start",
					zap.Int("attempt", attempts), zap.Error(err))

				if attempts == maxAttempts {
					logger.Fatal("reconcile worker exhausted start attempts")
				}
				time.Sleep(time.Duration(attempts*2) * time.Second)
			} else {
				break
			}
		}
	}()
}

// handleReconcileTask replays one fallback booking into Mongo. The booking keeps
// its original identifier so confirmation links minted during the outage stay
// valid; the commission is re-rated at the partner's configured percentage.
func handleReconcileTask(deps ReconcileDeps) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		logger := utils.GetLogger()

		var p models.ReconcilePayload
		if err := json.Unmarshal(task.Payload(), &p); err != nil {
			logger.Error("invalid reconcile payload", zap.Error(err))
			return err
		}

		fallbacks, err := deps.Fallback.List(ctx, p.PartnerID)
		if err != nil {
			return err
		}
		var booking *models.Booking
		for i := range fallbacks {
			if fallbacks[i].ID == p.BookingID {
				booking = &fallbacks[i]
				break
			}
		}
		if booking == nil {
			// Already reconciled or removed; nothing to replay.
			logger.Debug("fallback booking absent, skipping",
				zap.String("bookingID", p.BookingID))
			return nil
		}

		partner, err := deps.PartnerRepo.GetByID(ctx, p.PartnerID)
		if err != nil {
			return err
		}

		now := time.Now()
		patient := &models.Patient{
			ID:           uuid.New().String(),
			PartnerID:    partner.ID,
			FullName:     booking.Patient.FullName,
			Age:          booking.Patient.Age,
			Gender:       booking.Patient.Gender,
			Phone:        booking.Patient.Phone,
			Email:        booking.Patient.Email,
			Relationship: booking.Patient.Relationship,
			CreatedAt:    booking.CreatedAt,
		}

		amount := commission.Amount(booking.TotalAmount, partner.CommissionPercentage)
		durable := *booking
		durable.PatientID = patient.ID
		durable.PartnerCommission = amount
		durable.UpdatedAt = now

		comm := &models.Commission{
			ID:        uuid.New().String(),
			PartnerID: partner.ID,
			BookingID: booking.ID,
			Amount:    amount,
			Status:    models.CommissionStatusPending,
			CreatedAt: now,
		}

		if err := deps.BookingRepo.CreateBundle(ctx, patient, &durable, comm); err != nil {
			logger.Warn("reconcile replay failed, will retry",
				zap.String("bookingID", booking.ID), zap.Error(err))
			return err
		}

		if err := deps.Fallback.Remove(ctx, p.PartnerID, booking.ID); err != nil {
			logger.Warn("failed to drop reconciled fallback entry",
				zap.String("bookingID", booking.ID), zap.Error(err))
		}

		logger.Info("fallback booking reconciled",
			zap.String("bookingID", booking.ID),
			zap.String("partnerID", p.PartnerID),
			zap.Float64("commission", amount))
		return nil
	}
}
