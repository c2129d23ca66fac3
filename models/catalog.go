package models

import "time"

// Test is a single diagnostic lab test.
type Test struct {
	ID                      string    `bson:"id" json:"id"`
	Name                    string    `bson:"name" json:"name"`
	Description             string    `bson:"description,omitempty" json:"description,omitempty"`
	Category                string    `bson:"category" json:"category"` // e.g. "blood", "urine"
	Price                   float64   `bson:"price" json:"price"`
	CommissionPercentage    float64   `bson:"commission_percentage" json:"commissionPercentage"`
	PreparationInstructions string    `bson:"preparation_instructions,omitempty" json:"preparationInstructions,omitempty"`
	ReportDeliveryTime      string    `bson:"report_delivery_time" json:"reportDeliveryTime"`
	Active                  bool      `bson:"active" json:"active"`
	CreatedAt               time.Time `bson:"created_at" json:"createdAt"`
}

// Scan is a single imaging service.
type Scan struct {
	ID                      string    `bson:"id" json:"id"`
	Name                    string    `bson:"name" json:"name"`
	Description             string    `bson:"description,omitempty" json:"description,omitempty"`
	Category                string    `bson:"category" json:"category"` // e.g. "xray", "ultrasound", "ct", "mri"
	Price                   float64   `bson:"price" json:"price"`
	CommissionPercentage    float64   `bson:"commission_percentage" json:"commissionPercentage"`
	PreparationInstructions string    `bson:"preparation_instructions,omitempty" json:"preparationInstructions,omitempty"`
	ReportDeliveryTime      string    `bson:"report_delivery_time" json:"reportDeliveryTime"`
	Active                  bool      `bson:"active" json:"active"`
	CreatedAt               time.Time `bson:"created_at" json:"createdAt"`
}

// Package bundles tests and scans at a discounted price.
type Package struct {
	ID                   string    `bson:"id" json:"id"`
	Name                 string    `bson:"name" json:"name"`
	Description          string    `bson:"description,omitempty" json:"description,omitempty"`
	TestIDs              []string  `bson:"test_ids" json:"testIds"`
	ScanIDs              []string  `bson:"scan_ids,omitempty" json:"scanIds,omitempty"`
	OriginalPrice        float64   `bson:"original_price" json:"originalPrice"`
	DiscountedPrice      float64   `bson:"discounted_price" json:"discountedPrice"`
	CommissionPercentage float64   `bson:"commission_percentage" json:"commissionPercentage"`
	Active               bool      `bson:"active" json:"active"`
	CreatedAt            time.Time `bson:"created_at" json:"createdAt"`
}
