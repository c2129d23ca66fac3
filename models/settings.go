package models

import "time"

// Setting is a key-addressed configuration document managed by the back office
// (e.g. whatsapp_config, razorpay_config). Values are stored and served opaquely.
type Setting struct {
	Key       string         `bson:"key" json:"key"`
	Value     map[string]any `bson:"value" json:"value"`
	UpdatedAt time.Time      `bson:"updated_at" json:"updatedAt"`
}

// DashboardStats are the back-office landing counters.
type DashboardStats struct {
	Partners           int64 `json:"partners"`
	Bookings           int64 `json:"bookings"`
	PendingCommissions int64 `json:"pendingCommissions"`
}
