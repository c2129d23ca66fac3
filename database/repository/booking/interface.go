package bookingRepo

import (
	"context"

	"lablink/database"
	"lablink/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// BookingRepository defines methods for booking data access, including the
// transactional commit bundle (patient + booking + commission as one unit).
type BookingRepository interface {
	// CreateBundle inserts the patient, booking and commission records inside a
	// single Mongo transaction; either all three land or none do.
	CreateBundle(ctx context.Context, patient *models.Patient, booking *models.Booking, commission *models.Commission) error
	GetByID(ctx context.Context, id string) (*models.Booking, error)
	GetByPartnerID(ctx context.Context, partnerID string) ([]models.Booking, error)
	GetAll(ctx context.Context, status string) ([]models.Booking, error)
	UpdateStatus(ctx context.Context, id, status string) error
	Count(ctx context.Context) (int64, error)
}

type mongoBookingRepo struct {
	bookingColl    *mongo.Collection
	patientColl    *mongo.Collection
	commissionColl *mongo.Collection
}

// NewMongoBookingRepo returns a BookingRepository backed by MongoDB.
func NewMongoBookingRepo() BookingRepository {
	db := database.DB()
	return &mongoBookingRepo{
		bookingColl:    db.Collection("bookings"),
		patientColl:    db.Collection("patients"),
		commissionColl: db.Collection("commissions"),
	}
}
