package models

import (
	"time"

	"github.com/google/uuid"
)

// BookingStatus represents the current state of a booking
type BookingStatus string

const (
	BookingStatusConfirming BookingStatus = "CONFIRMING"
	BookingStatusSearching  BookingStatus = "SEARCHING"
	BookingStatusMatched    BookingStatus = "MATCHED"
	BookingStatusInProgress BookingStatus = "IN_PROGRESS"
	BookingStatusCompleted  BookingStatus = "COMPLETED"
	BookingStatusCancelled  BookingStatus = "CANCELLED"
	BookingStatusFailed     BookingStatus = "FAILED"
)

// Payment methods a rider can confirm a booking with
const (
	PaymentMethodWallet = "wallet"
	PaymentMethodCash   = "cash"
)

// BookingTransitions encodes the rider workflow as data. A transition
// absent from this table is invalid no matter who asks for it.
var BookingTransitions = map[BookingStatus][]BookingStatus{
	BookingStatusConfirming: {BookingStatusSearching, BookingStatusCancelled},
	BookingStatusSearching:  {BookingStatusMatched, BookingStatusCancelled, BookingStatusFailed},
	BookingStatusMatched:    {BookingStatusInProgress, BookingStatusCancelled},
	BookingStatusInProgress: {BookingStatusCompleted},
}

// CanTransition reports whether moving from one status to another is allowed
func CanTransition(from, to BookingStatus) bool {
	for _, next := range BookingTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// IsTerminal reports whether a booking in this status can never move again
func (s BookingStatus) IsTerminal() bool {
	return len(BookingTransitions[s]) == 0
}

// Booking represents one rider's trip request and its lifecycle state
type Booking struct {
	ID             uuid.UUID         `json:"id" db:"id"`
	CustomerID     uuid.UUID         `json:"customer_id" db:"customer_id"`
	PickupLocation string            `json:"pickup_location" db:"pickup_location"`
	DropLocation   string            `json:"drop_location" db:"drop_location"`
	PickupLat      float64           `json:"pickup_lat" db:"pickup_lat"`
	PickupLng      float64           `json:"pickup_lng" db:"pickup_lng"`
	VehicleClassID string            `json:"vehicle_class_id" db:"vehicle_class_id"`
	TripTypeID     string            `json:"trip_type_id" db:"trip_type_id"`
	DistanceKm     float64           `json:"distance_km" db:"distance_km"`
	DurationMin    float64           `json:"duration_min" db:"duration_min"`
	PaymentMethod  string            `json:"payment_method" db:"payment_method"`
	Status         BookingStatus     `json:"status" db:"status"`
	StatusVersion  int               `json:"status_version" db:"status_version"`
	Driver         *DriverAssignment `json:"driver,omitempty"`
	Passcode       string            `json:"-" db:"passcode"`
	QuotedFare     int               `json:"quoted_fare" db:"quoted_fare"`
	FinalFare      int               `json:"final_fare" db:"final_fare"`
	CreatedAt      time.Time         `json:"created_at" db:"created_at"`
	ConfirmedAt    *time.Time        `json:"confirmed_at,omitempty" db:"confirmed_at"`
	MatchedAt      *time.Time        `json:"matched_at,omitempty" db:"matched_at"`
	StartedAt      *time.Time        `json:"started_at,omitempty" db:"started_at"`
	CompletedAt    *time.Time        `json:"completed_at,omitempty" db:"completed_at"`
	CancelledAt    *time.Time        `json:"cancelled_at,omitempty" db:"cancelled_at"`
	CancelReason   string            `json:"cancel_reason,omitempty" db:"cancel_reason"`
	UpdatedAt      time.Time         `json:"updated_at" db:"updated_at"`
}

// BookingEvent is one row of the per-booking transition log
type BookingEvent struct {
	ID         int64         `json:"id" db:"id"`
	BookingID  uuid.UUID     `json:"booking_id" db:"booking_id"`
	FromStatus BookingStatus `json:"from_status" db:"from_status"`
	ToStatus   BookingStatus `json:"to_status" db:"to_status"`
	Actor      string        `json:"actor" db:"actor"`
	Note       string        `json:"note,omitempty" db:"note"`
	CreatedAt  time.Time     `json:"created_at" db:"created_at"`
}

// CreateBookingRequest is the rider's initial trip request
type CreateBookingRequest struct {
	PickupLocation string  `json:"pickup_location" validate:"required"`
	DropLocation   string  `json:"drop_location" validate:"required"`
	PickupLat      float64 `json:"pickup_lat"`
	PickupLng      float64 `json:"pickup_lng"`
	VehicleClassID string  `json:"vehicle_class_id" validate:"required"`
	TripTypeID     string  `json:"trip_type_id"`
	DistanceKm     float64 `json:"distance_km"`
	DurationMin    float64 `json:"duration_min"`
}

// ConfirmBookingRequest locks in the payment method and starts the search
type ConfirmBookingRequest struct {
	PaymentMethod string `json:"payment_method" validate:"required"`
}

// StartRideRequest carries the passcode the driver read back to the rider
type StartRideRequest struct {
	Passcode string `json:"passcode" validate:"required"`
}

// CancelBookingRequest carries who cancelled and why
type CancelBookingRequest struct {
	Reason string `json:"reason"`
}

// CompleteRideResponse returns the settled bill alongside the booking
type CompleteRideResponse struct {
	Booking *Booking `json:"booking"`
	Bill    *Bill    `json:"bill"`
}
