package models

import "time"

// DiagnosticCentre is a service provider location offering tests, scans and packages
// at its own price point.
type DiagnosticCentre struct {
	ID        string    `bson:"id" json:"id"`
	Name      string    `bson:"name" json:"name"`
	Address   string    `bson:"address" json:"address"`
	City      string    `bson:"city" json:"city"`
	Pincode   string    `bson:"pincode" json:"pincode"`
	Phone     string    `bson:"phone" json:"phone"`
	Email     string    `bson:"email,omitempty" json:"email,omitempty"`
	Active    bool      `bson:"active" json:"active"`
	CreatedAt time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt time.Time `bson:"updated_at" json:"updatedAt"`
}

// CentrePricing overrides a service's base price and report turnaround at a
// specific centre.
type CentrePricing struct {
	ID                 string    `bson:"id" json:"id"`
	CentreID           string    `bson:"centre_id" json:"centreId"`
	ServiceType        string    `bson:"service_type" json:"serviceType"` // "test", "scan" or "package"
	ServiceID          string    `bson:"service_id" json:"serviceId"`
	Price              float64   `bson:"price" json:"price"`
	ReportDeliveryTime string    `bson:"report_delivery_time" json:"reportDeliveryTime"`
	CreatedAt          time.Time `bson:"created_at" json:"createdAt"`
}
