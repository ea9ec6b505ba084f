package usecase

import (
	"context"
	"fmt"
	"math"

	"github.com/deveshjhaq/gaddi24x7/internal/pkg/models"
	"github.com/deveshjhaq/gaddi24x7/services/pricing"
)

// pricingUC implements the pricing.PricingUC interface
type pricingUC struct {
	cfg  *models.Config
	repo pricing.PricingRepo
}

// NewPricingUC creates a new pricing use case
func NewPricingUC(cfg *models.Config, repo pricing.PricingRepo) pricing.PricingUC {
	return &pricingUC{
		cfg:  cfg,
		repo: repo,
	}
}

// Quote computes a fare: raw = base + distance*perKm + duration*perMin,
// floored at the class minimum, multiplied by the trip type, rounded to
// whole rupees. The multiplier applies to the floored amount.
func (uc *pricingUC) Quote(ctx context.Context, req models.QuoteRequest) (*models.Quote, error) {
	if req.DistanceKm < 0 || req.DurationMin < 0 {
		return nil, pricing.ErrInvalidQuoteInput
	}

	class, err := uc.repo.GetVehicleClass(ctx, req.VehicleClassID)
	if err != nil {
		return nil, err
	}

	tripTypeID := req.TripTypeID
	if tripTypeID == "" {
		tripTypeID = pricing.DefaultTripTypeID
	}
	tripType, err := uc.repo.GetTripType(ctx, tripTypeID)
	if err != nil {
		return nil, err
	}

	raw := class.BasePrice + req.DistanceKm*class.PricePerKm + req.DurationMin*class.PricePerMin
	floored := math.Max(raw, class.MinimumFare)
	amount := int(math.Round(floored * tripType.Multiplier))

	return &models.Quote{
		VehicleClassID: class.ID,
		TripTypeID:     tripType.ID,
		DistanceKm:     req.DistanceKm,
		DurationMin:    req.DurationMin,
		Amount:         amount,
		Currency:       uc.cfg.Pricing.Currency,
	}, nil
}

// QuoteAllClasses quotes every vehicle class at once for the fare calculator
func (uc *pricingUC) QuoteAllClasses(ctx context.Context, tripTypeID string, distanceKm, durationMin float64) ([]models.ClassQuote, error) {
	classes, err := uc.repo.ListVehicleClasses(ctx)
	if err != nil {
		return nil, err
	}

	quotes := make([]models.ClassQuote, 0, len(classes))
	for _, class := range classes {
		quote, err := uc.Quote(ctx, models.QuoteRequest{
			VehicleClassID: class.ID,
			TripTypeID:     tripTypeID,
			DistanceKm:     distanceKm,
			DurationMin:    durationMin,
		})
		if err != nil {
			return nil, err
		}
		quotes = append(quotes, models.ClassQuote{Class: class, Quote: *quote})
	}

	return quotes, nil
}

// GenerateBill produces the itemized settlement document for a booking. The
// total equals the fare engine quote; GST is shown as an included portion,
// fares are tax-inclusive.
func (uc *pricingUC) GenerateBill(ctx context.Context, booking *models.Booking) (*models.Bill, error) {
	class, err := uc.repo.GetVehicleClass(ctx, booking.VehicleClassID)
	if err != nil {
		return nil, err
	}

	tripTypeID := booking.TripTypeID
	if tripTypeID == "" {
		tripTypeID = pricing.DefaultTripTypeID
	}
	tripType, err := uc.repo.GetTripType(ctx, tripTypeID)
	if err != nil {
		return nil, err
	}

	baseFare := class.BasePrice
	distanceFare := booking.DistanceKm * class.PricePerKm
	timeFare := booking.DurationMin * class.PricePerMin
	raw := baseFare + distanceFare + timeFare
	floored := math.Max(raw, class.MinimumFare)

	items := []models.BillItem{
		{Description: "Base Fare", Amount: round2(baseFare)},
		{Description: fmt.Sprintf("Distance Charge (%.1f km)", booking.DistanceKm), Amount: round2(distanceFare)},
		{Description: fmt.Sprintf("Time Charge (%.0f min)", booking.DurationMin), Amount: round2(timeFare)},
	}
	if floored > raw {
		items = append(items, models.BillItem{
			Description: "Minimum Fare Adjustment",
			Amount:      round2(floored - raw),
		})
	}

	subtotal := floored * tripType.Multiplier
	if tripType.Multiplier != 1.0 {
		items = append(items, models.BillItem{
			Description: fmt.Sprintf("%s Charge", tripType.Name),
			Amount:      round2(floored * (tripType.Multiplier - 1)),
		})
	}

	gst := uc.cfg.Pricing.GSTPercent
	taxIncluded := round2(subtotal - subtotal/(1+gst/100))
	items = append(items, models.BillItem{
		Description: fmt.Sprintf("GST (%.0f%%, included)", gst),
		Amount:      taxIncluded,
	})

	return &models.Bill{
		BookingID: booking.ID.String(),
		Items:     items,
		Subtotal:  round2(subtotal),
		Tax:       taxIncluded,
		Total:     int(math.Round(subtotal)),
		Currency:  uc.cfg.Pricing.Currency,
	}, nil
}

// ListVehicleClasses returns the current vehicle class table
func (uc *pricingUC) ListVehicleClasses(ctx context.Context) ([]models.VehicleClass, error) {
	return uc.repo.ListVehicleClasses(ctx)
}

// ListTripTypes returns the current trip type table
func (uc *pricingUC) ListTripTypes(ctx context.Context) ([]models.TripType, error) {
	return uc.repo.ListTripTypes(ctx)
}

// UpdateVehicleClass stores an admin edit; the next quote sees it
func (uc *pricingUC) UpdateVehicleClass(ctx context.Context, class models.VehicleClass) error {
	if class.ID == "" {
		return fmt.Errorf("vehicle class id is required")
	}
	if class.BasePrice < 0 || class.PricePerKm < 0 || class.PricePerMin < 0 || class.MinimumFare < 0 {
		return fmt.Errorf("vehicle class prices must be non-negative")
	}
	return uc.repo.UpsertVehicleClass(ctx, class)
}

// UpdateTripType stores an admin edit to a trip type multiplier
func (uc *pricingUC) UpdateTripType(ctx context.Context, tripType models.TripType) error {
	if tripType.ID == "" {
		return fmt.Errorf("trip type id is required")
	}
	if tripType.Multiplier <= 0 {
		return fmt.Errorf("trip type multiplier must be positive")
	}
	return uc.repo.UpsertTripType(ctx, tripType)
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
