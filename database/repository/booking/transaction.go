package bookingRepo

import (
	"context"
	"fmt"

	"lablink/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// CreateBundle performs the three linked inserts of a booking commit inside a single
// Mongo transaction. Any failure aborts the whole bundle so the caller can treat the
// commit as one unit.
func (r *mongoBookingRepo) CreateBundle(
	ctx context.Context,
	patient *models.Patient,
	booking *models.Booking,
	commission *models.Commission,
) error {
	client := r.bookingColl.Database().Client()
	sess, err := client.StartSession()
	if err != nil {
		return fmt.Errorf("could not start mongo session: %w", err)
	}
	defer sess.EndSession(ctx)

	txnFn := func(sc mongo.SessionContext) error {
		if _, err := r.patientColl.InsertOne(sc, patient); err != nil {
			return fmt.Errorf("insert patient failed: %w", err)
		}
		if _, err := r.bookingColl.InsertOne(sc, booking); err != nil {
			return fmt.Errorf("insert booking failed: %w", err)
		}
		if _, err := r.commissionColl.InsertOne(sc, commission); err != nil {
			return fmt.Errorf("insert commission failed: %w", err)
		}
		return nil
	}

	if err := mongo.WithSession(ctx, sess, func(sc mongo.SessionContext) error {
		if err := sc.StartTransaction(); err != nil {
			return err
		}
		if err := txnFn(sc); err != nil {
			_ = sc.AbortTransaction(sc)
			return err
		}
		return sc.CommitTransaction(sc)
	}); err != nil {
		return fmt.Errorf("booking commit transaction failed: %w", err)
	}

	return nil
}
