package usecase

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deveshjhaq/gaddi24x7/internal/pkg/models"
	"github.com/deveshjhaq/gaddi24x7/services/pricing"
	"github.com/deveshjhaq/gaddi24x7/services/pricing/mocks"
)

func testConfig() *models.Config {
	return &models.Config{
		Pricing: models.PricingFileConfig{
			Currency:   "INR",
			GSTPercent: 5.0,
		},
	}
}

func sedanClass() *models.VehicleClass {
	return &models.VehicleClass{
		ID:          "sedan",
		Name:        "Sedan",
		Capacity:    4,
		BasePrice:   80,
		PricePerKm:  20,
		PricePerMin: 3,
		MinimumFare: 100,
	}
}

func oneWay() *models.TripType {
	return &models.TripType{ID: "one-way", Name: "One Way", Multiplier: 1.0}
}

func roundTrip() *models.TripType {
	return &models.TripType{ID: "round-trip", Name: "Round Trip", Multiplier: 1.8}
}

func TestQuote_OneWay(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mocks.NewMockPricingRepo(ctrl)
	repo.EXPECT().GetVehicleClass(gomock.Any(), "sedan").Return(sedanClass(), nil)
	repo.EXPECT().GetTripType(gomock.Any(), "one-way").Return(oneWay(), nil)

	uc := NewPricingUC(testConfig(), repo)
	quote, err := uc.Quote(context.Background(), models.QuoteRequest{
		VehicleClassID: "sedan",
		TripTypeID:     "one-way",
		DistanceKm:     10,
		DurationMin:    20,
	})

	require.NoError(t, err)
	// 80 + 10*20 + 20*3 = 340
	assert.Equal(t, 340, quote.Amount)
	assert.Equal(t, "INR", quote.Currency)
	assert.Equal(t, "sedan", quote.VehicleClassID)
}

func TestQuote_RoundTripMultiplier(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mocks.NewMockPricingRepo(ctrl)
	repo.EXPECT().GetVehicleClass(gomock.Any(), "sedan").Return(sedanClass(), nil)
	repo.EXPECT().GetTripType(gomock.Any(), "round-trip").Return(roundTrip(), nil)

	uc := NewPricingUC(testConfig(), repo)
	quote, err := uc.Quote(context.Background(), models.QuoteRequest{
		VehicleClassID: "sedan",
		TripTypeID:     "round-trip",
		DistanceKm:     10,
		DurationMin:    20,
	})

	require.NoError(t, err)
	// 340 * 1.8 = 612
	assert.Equal(t, 612, quote.Amount)
}

func TestQuote_MinimumFareFloorsBeforeMultiplier(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mocks.NewMockPricingRepo(ctrl)
	repo.EXPECT().GetVehicleClass(gomock.Any(), "sedan").Return(sedanClass(), nil).Times(2)
	repo.EXPECT().GetTripType(gomock.Any(), "one-way").Return(oneWay(), nil)
	repo.EXPECT().GetTripType(gomock.Any(), "round-trip").Return(roundTrip(), nil)

	uc := NewPricingUC(testConfig(), repo)

	short := models.QuoteRequest{
		VehicleClassID: "sedan",
		TripTypeID:     "one-way",
		DistanceKm:     0.5,
		DurationMin:    2,
	}
	// 80 + 10 + 6 = 96 -> floored to 100
	quote, err := uc.Quote(context.Background(), short)
	require.NoError(t, err)
	assert.Equal(t, 100, quote.Amount)

	// the multiplier applies to the floored amount: 100 * 1.8 = 180
	short.TripTypeID = "round-trip"
	quote, err = uc.Quote(context.Background(), short)
	require.NoError(t, err)
	assert.Equal(t, 180, quote.Amount)
}

func TestQuote_MonotonicInDistance(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mocks.NewMockPricingRepo(ctrl)
	repo.EXPECT().GetVehicleClass(gomock.Any(), "sedan").Return(sedanClass(), nil).AnyTimes()
	repo.EXPECT().GetTripType(gomock.Any(), "one-way").Return(oneWay(), nil).AnyTimes()

	uc := NewPricingUC(testConfig(), repo)

	prev := 0
	for _, km := range []float64{1, 2, 5, 10, 25, 50, 120} {
		quote, err := uc.Quote(context.Background(), models.QuoteRequest{
			VehicleClassID: "sedan",
			TripTypeID:     "one-way",
			DistanceKm:     km,
			DurationMin:    km * 2,
		})
		require.NoError(t, err)
		assert.GreaterOrEqual(t, quote.Amount, prev, "fare dropped at %.0f km", km)
		prev = quote.Amount
	}
}

func TestQuote_UnknownVehicleClass(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mocks.NewMockPricingRepo(ctrl)
	repo.EXPECT().GetVehicleClass(gomock.Any(), "limo").Return(nil, pricing.ErrUnknownVehicleClass)

	uc := NewPricingUC(testConfig(), repo)
	quote, err := uc.Quote(context.Background(), models.QuoteRequest{
		VehicleClassID: "limo",
		TripTypeID:     "one-way",
		DistanceKm:     10,
		DurationMin:    20,
	})

	assert.ErrorIs(t, err, pricing.ErrUnknownVehicleClass)
	assert.Nil(t, quote)
}

func TestQuote_UnknownTripType(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mocks.NewMockPricingRepo(ctrl)
	repo.EXPECT().GetVehicleClass(gomock.Any(), "sedan").Return(sedanClass(), nil)
	repo.EXPECT().GetTripType(gomock.Any(), "weekly").Return(nil, pricing.ErrUnknownTripType)

	uc := NewPricingUC(testConfig(), repo)
	_, err := uc.Quote(context.Background(), models.QuoteRequest{
		VehicleClassID: "sedan",
		TripTypeID:     "weekly",
		DistanceKm:     10,
		DurationMin:    20,
	})

	assert.ErrorIs(t, err, pricing.ErrUnknownTripType)
}

func TestQuote_EmptyTripTypeDefaultsToOneWay(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mocks.NewMockPricingRepo(ctrl)
	repo.EXPECT().GetVehicleClass(gomock.Any(), "sedan").Return(sedanClass(), nil)
	repo.EXPECT().GetTripType(gomock.Any(), pricing.DefaultTripTypeID).Return(oneWay(), nil)

	uc := NewPricingUC(testConfig(), repo)
	quote, err := uc.Quote(context.Background(), models.QuoteRequest{
		VehicleClassID: "sedan",
		DistanceKm:     10,
		DurationMin:    20,
	})

	require.NoError(t, err)
	assert.Equal(t, "one-way", quote.TripTypeID)
	assert.Equal(t, 340, quote.Amount)
}

func TestQuote_NegativeInput(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mocks.NewMockPricingRepo(ctrl)
	uc := NewPricingUC(testConfig(), repo)

	_, err := uc.Quote(context.Background(), models.QuoteRequest{
		VehicleClassID: "sedan",
		TripTypeID:     "one-way",
		DistanceKm:     -3,
		DurationMin:    20,
	})
	assert.ErrorIs(t, err, pricing.ErrInvalidQuoteInput)

	_, err = uc.Quote(context.Background(), models.QuoteRequest{
		VehicleClassID: "sedan",
		TripTypeID:     "one-way",
		DistanceKm:     3,
		DurationMin:    -20,
	})
	assert.ErrorIs(t, err, pricing.ErrInvalidQuoteInput)
}

func TestQuote_ReadsTablesFreshEachCall(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	before := sedanClass()
	after := sedanClass()
	after.PricePerKm = 25

	repo := mocks.NewMockPricingRepo(ctrl)
	gomock.InOrder(
		repo.EXPECT().GetVehicleClass(gomock.Any(), "sedan").Return(before, nil),
		repo.EXPECT().GetVehicleClass(gomock.Any(), "sedan").Return(after, nil),
	)
	repo.EXPECT().GetTripType(gomock.Any(), "one-way").Return(oneWay(), nil).Times(2)

	uc := NewPricingUC(testConfig(), repo)
	req := models.QuoteRequest{
		VehicleClassID: "sedan",
		TripTypeID:     "one-way",
		DistanceKm:     10,
		DurationMin:    20,
	}

	first, err := uc.Quote(context.Background(), req)
	require.NoError(t, err)
	second, err := uc.Quote(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, 340, first.Amount)
	// 80 + 10*25 + 20*3 = 390, the admin edit applied without a restart
	assert.Equal(t, 390, second.Amount)
}

func TestQuoteAllClasses(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	auto := models.VehicleClass{ID: "auto", Name: "Auto", Capacity: 3, BasePrice: 30, PricePerKm: 12, PricePerMin: 2, MinimumFare: 40}
	sedan := *sedanClass()

	repo := mocks.NewMockPricingRepo(ctrl)
	repo.EXPECT().ListVehicleClasses(gomock.Any()).Return([]models.VehicleClass{auto, sedan}, nil)
	repo.EXPECT().GetVehicleClass(gomock.Any(), "auto").Return(&auto, nil)
	repo.EXPECT().GetVehicleClass(gomock.Any(), "sedan").Return(&sedan, nil)
	repo.EXPECT().GetTripType(gomock.Any(), "one-way").Return(oneWay(), nil).Times(2)

	uc := NewPricingUC(testConfig(), repo)
	quotes, err := uc.QuoteAllClasses(context.Background(), "one-way", 10, 20)

	require.NoError(t, err)
	require.Len(t, quotes, 2)
	// auto: 30 + 120 + 40 = 190
	assert.Equal(t, "auto", quotes[0].Class.ID)
	assert.Equal(t, 190, quotes[0].Quote.Amount)
	assert.Equal(t, "sedan", quotes[1].Class.ID)
	assert.Equal(t, 340, quotes[1].Quote.Amount)
}

func TestGenerateBill_TotalMatchesQuote(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mocks.NewMockPricingRepo(ctrl)
	repo.EXPECT().GetVehicleClass(gomock.Any(), "sedan").Return(sedanClass(), nil)
	repo.EXPECT().GetTripType(gomock.Any(), "round-trip").Return(roundTrip(), nil)

	uc := NewPricingUC(testConfig(), repo)
	booking := &models.Booking{
		ID:             uuid.New(),
		VehicleClassID: "sedan",
		TripTypeID:     "round-trip",
		DistanceKm:     10,
		DurationMin:    20,
	}

	bill, err := uc.GenerateBill(context.Background(), booking)
	require.NoError(t, err)

	assert.Equal(t, 612, bill.Total)
	assert.Equal(t, booking.ID.String(), bill.BookingID)
	assert.Equal(t, "INR", bill.Currency)

	var gstLine bool
	for _, item := range bill.Items {
		if item.Description == "GST (5%, included)" {
			gstLine = true
		}
	}
	assert.True(t, gstLine, "bill should show the included GST portion")
}

func TestGenerateBill_MinimumFareLine(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mocks.NewMockPricingRepo(ctrl)
	repo.EXPECT().GetVehicleClass(gomock.Any(), "sedan").Return(sedanClass(), nil)
	repo.EXPECT().GetTripType(gomock.Any(), "one-way").Return(oneWay(), nil)

	uc := NewPricingUC(testConfig(), repo)
	booking := &models.Booking{
		ID:             uuid.New(),
		VehicleClassID: "sedan",
		TripTypeID:     "one-way",
		DistanceKm:     0.5,
		DurationMin:    2,
	}

	bill, err := uc.GenerateBill(context.Background(), booking)
	require.NoError(t, err)

	assert.Equal(t, 100, bill.Total)
	var adjustment bool
	for _, item := range bill.Items {
		if item.Description == "Minimum Fare Adjustment" {
			adjustment = true
			assert.InDelta(t, 4.0, item.Amount, 0.001)
		}
	}
	assert.True(t, adjustment, "short trips should carry the minimum fare line")
}

func TestUpdateVehicleClass_Validation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mocks.NewMockPricingRepo(ctrl)
	uc := NewPricingUC(testConfig(), repo)

	err := uc.UpdateVehicleClass(context.Background(), models.VehicleClass{})
	assert.Error(t, err)

	err = uc.UpdateVehicleClass(context.Background(), models.VehicleClass{ID: "sedan", BasePrice: -1})
	assert.Error(t, err)

	repo.EXPECT().UpsertVehicleClass(gomock.Any(), gomock.Any()).Return(nil)
	err = uc.UpdateVehicleClass(context.Background(), *sedanClass())
	assert.NoError(t, err)
}

func TestUpdateTripType_Validation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mocks.NewMockPricingRepo(ctrl)
	uc := NewPricingUC(testConfig(), repo)

	err := uc.UpdateTripType(context.Background(), models.TripType{ID: "round-trip", Multiplier: 0})
	assert.Error(t, err)

	repo.EXPECT().UpsertTripType(gomock.Any(), gomock.Any()).Return(nil)
	err = uc.UpdateTripType(context.Background(), *roundTrip())
	assert.NoError(t, err)
}
