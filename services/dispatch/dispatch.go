package dispatch

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/deveshjhaq/gaddi24x7/internal/pkg/models"
)

var (
	// ErrRideUnavailable means another driver already claimed the booking.
	// First accept wins; every later accept gets this.
	ErrRideUnavailable = errors.New("ride no longer available")
	// ErrOfferExpired means the offer's window closed before the driver
	// answered
	ErrOfferExpired = errors.New("offer expired")
	// ErrOfferNotFound means no open offer matches the given id
	ErrOfferNotFound = errors.New("offer not found")
	// ErrDriverOffline means the operation needs the driver in the pool
	ErrDriverOffline = errors.New("driver is offline")
)

// DispatchUC runs the driver side of the workflow: the availability pool,
// ride offers, and the search loop the booking workflow blocks on.
type DispatchUC interface {
	SetAvailability(ctx context.Context, driverID uuid.UUID, req models.AvailabilityRequest) error
	UpdateLocation(ctx context.Context, driverID uuid.UUID, loc models.Location) error
	GetCurrentOffer(ctx context.Context, driverID uuid.UUID) (*models.RideOffer, error)
	AcceptOffer(ctx context.Context, driverID, offerID uuid.UUID) error
	RejectOffer(ctx context.Context, driverID, offerID uuid.UUID) error
	FindDriver(ctx context.Context, req models.DispatchRequest) (*models.DriverAssignment, error)
	ReleaseDriver(ctx context.Context, driverID uuid.UUID) error
}

// DispatchRepo stores the availability pool, driver statuses, open offers
// and booking claims in Redis
type DispatchRepo interface {
	AddToPool(ctx context.Context, driverID uuid.UUID, vehicleClassID string, loc models.Location) error
	RemoveFromPool(ctx context.Context, driverID uuid.UUID, vehicleClassID string) error
	NearbyDrivers(ctx context.Context, vehicleClassID string, center models.Location, radiusKm float64) ([]models.NearbyDriver, error)
	// CellOccupancy counts pool drivers in and around the location's
	// geohash cell, a cheap emptiness check before a radius scan.
	CellOccupancy(ctx context.Context, vehicleClassID string, center models.Location) (int64, error)
	SetDriverStatus(ctx context.Context, driverID uuid.UUID, status models.DriverStatus) error
	GetDriverStatus(ctx context.Context, driverID uuid.UUID) (models.DriverStatus, error)
	StoreOffer(ctx context.Context, offer *models.RideOffer, ttlSeconds int) error
	GetOfferForDriver(ctx context.Context, driverID uuid.UUID) (*models.RideOffer, error)
	DeleteOffer(ctx context.Context, offer *models.RideOffer) error
	// ClaimBooking reserves a booking for a driver. The first claim wins;
	// it reports false when the booking is already claimed.
	ClaimBooking(ctx context.Context, bookingID, driverID uuid.UUID) (bool, error)
	ReleaseClaim(ctx context.Context, bookingID uuid.UUID) error
}

// DispatchGW notifies drivers about offers
type DispatchGW interface {
	PublishOffer(ctx context.Context, offer *models.RideOffer) error
	PublishOfferClosed(ctx context.Context, offer *models.RideOffer) error
}

// UserService is the slice of the users service dispatch needs to build a
// driver assignment from an accepted offer.
type UserService interface {
	GetProfile(ctx context.Context, userID uuid.UUID) (*models.User, error)
}
