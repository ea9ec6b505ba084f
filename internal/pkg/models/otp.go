package models

import (
	"time"
)

// OTP is a short-lived login code for a phone number. Stored in Redis with
// the expiry as the key TTL.
type OTP struct {
	Phone     string    `json:"phone"`
	Code      string    `json:"code"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

// Event payloads published on NATS.

// BookingConfirmedEvent is published when a rider confirms a quote
type BookingConfirmedEvent struct {
	BookingID     string `json:"booking_id"`
	CustomerID    string `json:"customer_id"`
	PaymentMethod string `json:"payment_method"`
	QuotedFare    int    `json:"quoted_fare"`
}

// MatchFoundEvent is published when a driver is assigned to a booking
type MatchFoundEvent struct {
	BookingID string `json:"booking_id"`
	DriverID  string `json:"driver_id"`
	Passcode  string `json:"passcode"`
}

// RideCompletedEvent is published after settlement
type RideCompletedEvent struct {
	BookingID     string `json:"booking_id"`
	CustomerID    string `json:"customer_id"`
	DriverID      string `json:"driver_id"`
	FinalFare     int    `json:"final_fare"`
	PaymentMethod string `json:"payment_method"`
}

// BookingCancelledEvent is published when a booking is cancelled
type BookingCancelledEvent struct {
	BookingID string `json:"booking_id"`
	Actor     string `json:"actor"`
	Reason    string `json:"reason"`
	Fee       int    `json:"fee"`
}
