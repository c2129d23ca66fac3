package models

import "time"

// Partner types recognised by the platform.
const (
	PartnerTypePharmacist = "pharmacist"
	PartnerTypeNurse      = "nurse"
	PartnerTypeAshaWorker = "asha_worker"
	PartnerTypeTechnician = "technician"
	PartnerTypeMedRep     = "medical_representative"
	PartnerTypeOther      = "other"
)

// Partner is a healthcare-affiliated intermediary who books diagnostic services on
// behalf of patients and earns a commission on each booking.
type Partner struct {
	ID                   string    `bson:"id" json:"id"`
	Email                string    `bson:"email" json:"email"`
	PasswordHash         string    `bson:"password_hash" json:"-"`
	FullName             string    `bson:"full_name" json:"fullName"`
	Phone                string    `bson:"phone" json:"phone"`
	PartnerType          string    `bson:"partner_type" json:"partnerType"`
	Address              string    `bson:"address,omitempty" json:"address,omitempty"`
	City                 string    `bson:"city,omitempty" json:"city,omitempty"`
	State                string    `bson:"state,omitempty" json:"state,omitempty"`
	Pincode              string    `bson:"pincode,omitempty" json:"pincode,omitempty"`
	CommissionPercentage float64   `bson:"commission_percentage" json:"commissionPercentage"`
	Active               bool      `bson:"active" json:"active"`
	CreatedAt            time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt            time.Time `bson:"updated_at" json:"updatedAt"`
}

// PartnerRegistration is the signup payload.
type PartnerRegistration struct {
	Email       string `json:"email" validate:"required,email"`
	Password    string `json:"password" validate:"required,min=8"`
	FullName    string `json:"fullName" validate:"required"`
	Phone       string `json:"phone" validate:"required,len=10,numeric"`
	PartnerType string `json:"partnerType" validate:"required,oneof=pharmacist nurse asha_worker technician medical_representative other"`
	City        string `json:"city,omitempty"`
	State       string `json:"state,omitempty"`
	Pincode     string `json:"pincode,omitempty"`
}

// PartnerEarning is one row of the earnings view: a booking with the commission it
// earned at the partner's configured rate.
type PartnerEarning struct {
	BookingID   string    `json:"bookingId"`
	TotalAmount float64   `json:"totalAmount"`
	Commission  float64   `json:"commission"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"createdAt"`
}
