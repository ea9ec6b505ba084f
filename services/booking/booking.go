package booking

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/deveshjhaq/gaddi24x7/internal/pkg/models"
)

var (
	// ErrBookingNotFound means no booking exists with the given id
	ErrBookingNotFound = errors.New("booking not found")
	// ErrInvalidTransition means the requested operation is not allowed
	// from the booking's current status
	ErrInvalidTransition = errors.New("invalid booking state transition")
	// ErrBookingConflict means another writer changed the booking between
	// read and update; the caller should re-read and retry or give up
	ErrBookingConflict = errors.New("booking was modified concurrently")
	// ErrNoDriverAvailable means the driver search exhausted its window
	// without an accepted offer
	ErrNoDriverAvailable = errors.New("no driver available")
	// ErrInvalidPasscode means the driver-entered passcode does not match
	// the one issued to the rider
	ErrInvalidPasscode = errors.New("invalid ride passcode")
	// ErrActiveBookingExists means the rider already has a booking in a
	// non-terminal state
	ErrActiveBookingExists = errors.New("an active booking already exists")
	// ErrNotBookingOwner means the caller is neither the rider nor the
	// assigned driver for this booking
	ErrNotBookingOwner = errors.New("booking does not belong to caller")
	// ErrInvalidBookingInput covers missing locations and non-positive
	// trip dimensions on a create request
	ErrInvalidBookingInput = errors.New("invalid booking request")
)

// BookingUC defines the trip workflow operations
type BookingUC interface {
	CreateBooking(ctx context.Context, customerID uuid.UUID, req models.CreateBookingRequest) (*models.Booking, error)
	ConfirmBooking(ctx context.Context, customerID, bookingID uuid.UUID, req models.ConfirmBookingRequest) (*models.Booking, error)
	GetBooking(ctx context.Context, callerID uuid.UUID, bookingID uuid.UUID) (*models.Booking, error)
	ListBookings(ctx context.Context, customerID uuid.UUID) ([]models.Booking, error)
	ListBookingEvents(ctx context.Context, callerID, bookingID uuid.UUID) ([]models.BookingEvent, error)
	AssignDriver(ctx context.Context, bookingID uuid.UUID, driver *models.DriverAssignment) (*models.Booking, error)
	StartRide(ctx context.Context, driverID, bookingID uuid.UUID, passcode string) (*models.Booking, error)
	CompleteRide(ctx context.Context, driverID, bookingID uuid.UUID) (*models.CompleteRideResponse, error)
	CancelBooking(ctx context.Context, callerID uuid.UUID, bookingID uuid.UUID, reason string) (*models.Booking, error)
}

// BookingRepo persists bookings and their transition log
type BookingRepo interface {
	Create(ctx context.Context, booking *models.Booking) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Booking, error)
	GetActiveByCustomer(ctx context.Context, customerID uuid.UUID) (*models.Booking, error)
	ListByCustomer(ctx context.Context, customerID uuid.UUID) ([]models.Booking, error)
	// UpdateStatus moves the booking from one status to another with an
	// optimistic guard on the current status and version. It persists the
	// booking's mutable fields, bumps StatusVersion, and appends a
	// transition event. Returns ErrBookingConflict when the row no longer
	// matches the expected status and version.
	UpdateStatus(ctx context.Context, booking *models.Booking, from, to models.BookingStatus, actor, note string) error
	ListEvents(ctx context.Context, bookingID uuid.UUID) ([]models.BookingEvent, error)
}

// BookingGW publishes booking lifecycle events for other services
type BookingGW interface {
	PublishBookingConfirmed(ctx context.Context, booking *models.Booking) error
	PublishMatchFound(ctx context.Context, booking *models.Booking) error
	PublishRideStarted(ctx context.Context, booking *models.Booking) error
	PublishRideCompleted(ctx context.Context, booking *models.Booking, bill *models.Bill) error
	PublishBookingFailed(ctx context.Context, booking *models.Booking) error
	PublishBookingCancelled(ctx context.Context, booking *models.Booking, actor string, fee int) error
}

// DispatchService is the slice of the dispatch service the trip workflow
// needs: a blocking driver search bounded by the caller's context.
type DispatchService interface {
	FindDriver(ctx context.Context, req models.DispatchRequest) (*models.DriverAssignment, error)
	ReleaseDriver(ctx context.Context, driverID uuid.UUID) error
}

// FareService is the slice of the pricing service the trip workflow needs
type FareService interface {
	Quote(ctx context.Context, req models.QuoteRequest) (*models.Quote, error)
	GenerateBill(ctx context.Context, booking *models.Booking) (*models.Bill, error)
}

// WalletService settles ride payments against rider and driver wallets
type WalletService interface {
	Debit(ctx context.Context, userID uuid.UUID, amount int, txType models.TransactionType, reference string) error
	Credit(ctx context.Context, userID uuid.UUID, amount int, txType models.TransactionType, reference string) error
}
