package models

import "time"

// PatientDetails is the checkout wizard's step-one payload. Immutable once the
// booking it belongs to is committed.
type PatientDetails struct {
	FullName     string `json:"fullName" validate:"required"`
	Age          int    `json:"age" validate:"required,min=1,max=120"`
	Gender       string `json:"gender" validate:"required,oneof=male female other"`
	Phone        string `json:"phone" validate:"required,len=10,numeric"`
	Email        string `json:"email,omitempty" validate:"omitempty,email"`
	Relationship string `json:"relationship" validate:"required,oneof=self mother father spouse child other"`
}

// Patient is the durable patient record created at commit time.
type Patient struct {
	ID           string    `bson:"id" json:"id"`
	PartnerID    string    `bson:"partner_id" json:"partnerId"`
	FullName     string    `bson:"full_name" json:"fullName"`
	Age          int       `bson:"age" json:"age"`
	Gender       string    `bson:"gender" json:"gender"`
	Phone        string    `bson:"phone" json:"phone"`
	Email        string    `bson:"email,omitempty" json:"email,omitempty"`
	Relationship string    `bson:"relationship" json:"relationship"`
	CreatedAt    time.Time `bson:"created_at" json:"createdAt"`
}
