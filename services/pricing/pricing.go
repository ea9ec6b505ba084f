package pricing

import (
	"context"
	"errors"

	"github.com/deveshjhaq/gaddi24x7/internal/pkg/models"
)

// DefaultTripTypeID is applied when a quote request omits the trip type
const DefaultTripTypeID = "one-way"

var (
	// ErrUnknownVehicleClass means the quote referenced a vehicle class that
	// is not in the reference tables. Callers must treat this as "no quote
	// available", never as a zero fare.
	ErrUnknownVehicleClass = errors.New("unknown vehicle class")
	// ErrUnknownTripType means the quote referenced an unconfigured trip type
	ErrUnknownTripType = errors.New("unknown trip type")
	// ErrInvalidQuoteInput covers negative distances and durations
	ErrInvalidQuoteInput = errors.New("distance and duration must be non-negative")
)

// PricingUC defines the fare engine operations
type PricingUC interface {
	Quote(ctx context.Context, req models.QuoteRequest) (*models.Quote, error)
	QuoteAllClasses(ctx context.Context, tripTypeID string, distanceKm, durationMin float64) ([]models.ClassQuote, error)
	GenerateBill(ctx context.Context, booking *models.Booking) (*models.Bill, error)
	ListVehicleClasses(ctx context.Context) ([]models.VehicleClass, error)
	ListTripTypes(ctx context.Context) ([]models.TripType, error)
	UpdateVehicleClass(ctx context.Context, class models.VehicleClass) error
	UpdateTripType(ctx context.Context, tripType models.TripType) error
}

// PricingRepo provides access to the fare reference tables. Reads go to the
// live store on every call so admin edits apply to the next quote.
type PricingRepo interface {
	GetVehicleClass(ctx context.Context, id string) (*models.VehicleClass, error)
	ListVehicleClasses(ctx context.Context) ([]models.VehicleClass, error)
	GetTripType(ctx context.Context, id string) (*models.TripType, error)
	ListTripTypes(ctx context.Context) ([]models.TripType, error)
	UpsertVehicleClass(ctx context.Context, class models.VehicleClass) error
	UpsertTripType(ctx context.Context, tripType models.TripType) error
}
