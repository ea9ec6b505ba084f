package models

import (
	"time"

	"github.com/google/uuid"
)

// DriverStatus represents the driver-side workflow state
type DriverStatus string

const (
	DriverStatusOffline DriverStatus = "OFFLINE"
	DriverStatusOnline  DriverStatus = "ONLINE"
	DriverStatusOffered DriverStatus = "OFFERED"
	DriverStatusOnTrip  DriverStatus = "ON_TRIP"
)

// Location is a geographic coordinate pair
type Location struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// DriverAssignment is the driver record attached to a booking once matched.
// It is owned by that booking for the booking's lifetime.
type DriverAssignment struct {
	DriverID      uuid.UUID `json:"driver_id" db:"driver_id"`
	Name          string    `json:"name" db:"driver_name"`
	Phone         string    `json:"phone" db:"driver_phone"`
	Rating        float64   `json:"rating" db:"driver_rating"`
	VehicleNumber string    `json:"vehicle_number" db:"vehicle_number"`
	VehicleModel  string    `json:"vehicle_model" db:"vehicle_model"`
	PhotoURL      string    `json:"photo_url,omitempty" db:"photo_url"`
}

// AvailabilityRequest toggles a driver in or out of the dispatch pool
type AvailabilityRequest struct {
	Online   bool     `json:"online"`
	Location Location `json:"location"`
}

// NearbyDriver is a pool entry returned by a radius search
type NearbyDriver struct {
	DriverID   string   `json:"driver_id"`
	Location   Location `json:"location"`
	DistanceKm float64  `json:"distance_km"`
}

// RideOffer is a booking offered to one driver, open until accepted,
// rejected or expired.
type RideOffer struct {
	ID             uuid.UUID `json:"offer_id"`
	BookingID      uuid.UUID `json:"booking_id"`
	DriverID       string    `json:"driver_id"`
	CustomerName   string    `json:"customer_name"`
	PickupLocation string    `json:"pickup_location"`
	DropLocation   string    `json:"drop_location"`
	DistanceKm     float64   `json:"distance_km"`
	Fare           int       `json:"fare"`
	ExpiresAt      time.Time `json:"expires_at"`
}

// OfferResult is a driver's answer to an offer
type OfferResult struct {
	OfferID  uuid.UUID `json:"offer_id"`
	DriverID string    `json:"driver_id"`
	Accepted bool      `json:"accepted"`
}

// DispatchRequest is what the booking workflow hands to dispatch when a
// rider confirms.
type DispatchRequest struct {
	BookingID      uuid.UUID `json:"booking_id"`
	CustomerName   string    `json:"customer_name"`
	PickupLocation string    `json:"pickup_location"`
	DropLocation   string    `json:"drop_location"`
	Pickup         Location  `json:"pickup"`
	VehicleClassID string    `json:"vehicle_class_id"`
	DistanceKm     float64   `json:"distance_km"`
	Fare           int       `json:"fare"`
}
