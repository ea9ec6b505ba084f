package usecase

import (
	"context"
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/deveshjhaq/gaddi24x7/internal/pkg/logger"
	"github.com/deveshjhaq/gaddi24x7/internal/pkg/models"
	"github.com/deveshjhaq/gaddi24x7/internal/utils"
	"github.com/deveshjhaq/gaddi24x7/services/booking"
)

const passcodeLength = 4

// UserService is the slice of the users service the workflow needs to put
// a rider's name on a dispatch request.
type UserService interface {
	GetProfile(ctx context.Context, userID uuid.UUID) (*models.User, error)
}

// bookingUC implements the booking.BookingUC interface
type bookingUC struct {
	cfg      *models.Config
	repo     booking.BookingRepo
	gw       booking.BookingGW
	dispatch booking.DispatchService
	fares    booking.FareService
	wallet   booking.WalletService
	users    UserService

	// searches maps a booking id to the cancel func of its in-flight
	// driver search, so a rider cancellation can stop the timer.
	searchMu sync.Mutex
	searches map[uuid.UUID]context.CancelFunc
}

// NewBookingUC creates a new booking use case
func NewBookingUC(
	cfg *models.Config,
	repo booking.BookingRepo,
	gw booking.BookingGW,
	dispatch booking.DispatchService,
	fares booking.FareService,
	wallet booking.WalletService,
	users UserService,
) booking.BookingUC {
	return &bookingUC{
		cfg:      cfg,
		repo:     repo,
		gw:       gw,
		dispatch: dispatch,
		fares:    fares,
		wallet:   wallet,
		users:    users,
		searches: make(map[uuid.UUID]context.CancelFunc),
	}
}

// CreateBooking quotes the trip and stores a CONFIRMING booking. Nothing is
// dispatched until the rider confirms.
func (uc *bookingUC) CreateBooking(ctx context.Context, customerID uuid.UUID, req models.CreateBookingRequest) (*models.Booking, error) {
	if req.PickupLocation == "" || req.DropLocation == "" {
		return nil, fmt.Errorf("%w: pickup and drop locations are required", booking.ErrInvalidBookingInput)
	}
	if req.DistanceKm <= 0 || req.DurationMin <= 0 {
		return nil, fmt.Errorf("%w: trip distance and duration are required", booking.ErrInvalidBookingInput)
	}

	active, err := uc.repo.GetActiveByCustomer(ctx, customerID)
	if err != nil {
		return nil, fmt.Errorf("failed to check active bookings: %w", err)
	}
	if active != nil {
		return nil, booking.ErrActiveBookingExists
	}

	quote, err := uc.fares.Quote(ctx, models.QuoteRequest{
		VehicleClassID: req.VehicleClassID,
		TripTypeID:     req.TripTypeID,
		DistanceKm:     req.DistanceKm,
		DurationMin:    req.DurationMin,
	})
	if err != nil {
		return nil, err
	}

	now := time.Now()
	b := &models.Booking{
		ID:             uuid.New(),
		CustomerID:     customerID,
		PickupLocation: req.PickupLocation,
		DropLocation:   req.DropLocation,
		PickupLat:      req.PickupLat,
		PickupLng:      req.PickupLng,
		VehicleClassID: req.VehicleClassID,
		TripTypeID:     quote.TripTypeID,
		DistanceKm:     req.DistanceKm,
		DurationMin:    req.DurationMin,
		Status:         models.BookingStatusConfirming,
		StatusVersion:  1,
		QuotedFare:     quote.Amount,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	if err := uc.repo.Create(ctx, b); err != nil {
		return nil, fmt.Errorf("failed to create booking: %w", err)
	}

	logger.Info("Booking created",
		logger.String("booking_id", b.ID.String()),
		logger.String("customer_id", customerID.String()),
		logger.Int("quoted_fare", b.QuotedFare))
	return b, nil
}

// ConfirmBooking locks in the payment method and kicks off the driver
// search in the background.
func (uc *bookingUC) ConfirmBooking(ctx context.Context, customerID, bookingID uuid.UUID, req models.ConfirmBookingRequest) (*models.Booking, error) {
	b, err := uc.repo.GetByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if b.CustomerID != customerID {
		return nil, booking.ErrNotBookingOwner
	}
	if b.Status != models.BookingStatusConfirming {
		return nil, booking.ErrInvalidTransition
	}

	now := time.Now()
	b.PaymentMethod = req.PaymentMethod
	b.ConfirmedAt = &now

	if err := uc.repo.UpdateStatus(ctx, b, models.BookingStatusConfirming, models.BookingStatusSearching, "customer", "booking confirmed"); err != nil {
		return nil, err
	}

	if err := uc.gw.PublishBookingConfirmed(ctx, b); err != nil {
		logger.Warn("Failed to publish booking confirmed event", logger.Err(err))
	}

	go uc.runDriverSearch(b)

	return b, nil
}

// runDriverSearch owns a booking's search window. It blocks on dispatch
// until a driver accepts, the window expires, or the rider cancels.
func (uc *bookingUC) runDriverSearch(b *models.Booking) {
	timeout := time.Duration(uc.cfg.Dispatch.SearchTimeout) * time.Second
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	uc.registerSearch(b.ID, cancel)
	defer uc.unregisterSearch(b.ID)
	defer cancel()

	req := models.DispatchRequest{
		BookingID:      b.ID,
		PickupLocation: b.PickupLocation,
		DropLocation:   b.DropLocation,
		Pickup:         models.Location{Latitude: b.PickupLat, Longitude: b.PickupLng},
		VehicleClassID: b.VehicleClassID,
		DistanceKm:     b.DistanceKm,
		Fare:           b.QuotedFare,
	}
	if profile, err := uc.users.GetProfile(ctx, b.CustomerID); err == nil {
		req.CustomerName = profile.FullName
	}

	driver, err := uc.dispatch.FindDriver(ctx, req)
	if err != nil {
		uc.failSearch(b.ID, err)
		return
	}

	if _, err := uc.AssignDriver(context.Background(), b.ID, driver); err != nil {
		// the rider cancelled between accept and assignment; put the
		// driver back in the pool
		logger.Warn("Driver assignment rejected",
			logger.String("booking_id", b.ID.String()),
			logger.Err(err))
		if relErr := uc.dispatch.ReleaseDriver(context.Background(), driver.DriverID); relErr != nil {
			logger.Error("Failed to release driver", logger.Err(relErr))
		}
	}
}

// failSearch marks a booking FAILED after its search window closed empty.
// A booking the rider already cancelled is left alone.
func (uc *bookingUC) failSearch(bookingID uuid.UUID, cause error) {
	ctx := context.Background()
	b, err := uc.repo.GetByID(ctx, bookingID)
	if err != nil {
		logger.Error("Failed to load booking after search window",
			logger.String("booking_id", bookingID.String()),
			logger.Err(err))
		return
	}
	if b.Status != models.BookingStatusSearching {
		return
	}

	if err := uc.repo.UpdateStatus(ctx, b, models.BookingStatusSearching, models.BookingStatusFailed, "system", "no driver available"); err != nil {
		logger.Warn("Failed to mark booking failed",
			logger.String("booking_id", bookingID.String()),
			logger.Err(err))
		return
	}

	if err := uc.gw.PublishBookingFailed(ctx, b); err != nil {
		logger.Warn("Failed to publish booking failed event",
			logger.String("booking_id", bookingID.String()),
			logger.Err(err))
	}

	logger.Info("Driver search failed",
		logger.String("booking_id", bookingID.String()),
		logger.Err(cause))
}

// AssignDriver attaches an accepted driver to a SEARCHING booking and
// issues the ride passcode the driver must collect from the rider.
func (uc *bookingUC) AssignDriver(ctx context.Context, bookingID uuid.UUID, driver *models.DriverAssignment) (*models.Booking, error) {
	b, err := uc.repo.GetByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if b.Status != models.BookingStatusSearching {
		return nil, booking.ErrInvalidTransition
	}

	passcode, err := utils.GeneratePasscode(passcodeLength)
	if err != nil {
		return nil, fmt.Errorf("failed to generate passcode: %w", err)
	}

	now := time.Now()
	b.Driver = driver
	b.Passcode = passcode
	b.MatchedAt = &now

	if err := uc.repo.UpdateStatus(ctx, b, models.BookingStatusSearching, models.BookingStatusMatched, "system", "driver accepted"); err != nil {
		return nil, err
	}

	if err := uc.gw.PublishMatchFound(ctx, b); err != nil {
		logger.Warn("Failed to publish match found event", logger.Err(err))
	}

	logger.Info("Driver matched",
		logger.String("booking_id", b.ID.String()),
		logger.String("driver_id", driver.DriverID.String()))
	return b, nil
}

// StartRide transitions a MATCHED booking to IN_PROGRESS after the driver
// enters the passcode the rider was issued at match time.
func (uc *bookingUC) StartRide(ctx context.Context, driverID, bookingID uuid.UUID, passcode string) (*models.Booking, error) {
	b, err := uc.repo.GetByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if b.Driver == nil || b.Driver.DriverID != driverID {
		return nil, booking.ErrNotBookingOwner
	}
	if b.Status != models.BookingStatusMatched {
		return nil, booking.ErrInvalidTransition
	}
	if passcode == "" || passcode != b.Passcode {
		return nil, booking.ErrInvalidPasscode
	}

	now := time.Now()
	b.StartedAt = &now

	if err := uc.repo.UpdateStatus(ctx, b, models.BookingStatusMatched, models.BookingStatusInProgress, "driver", "passcode verified"); err != nil {
		return nil, err
	}

	if err := uc.gw.PublishRideStarted(ctx, b); err != nil {
		logger.Warn("Failed to publish ride started event", logger.Err(err))
	}

	return b, nil
}

// CompleteRide settles an IN_PROGRESS booking: the bill is generated, the
// rider's wallet is debited when paying by wallet, the driver is credited
// their share, and the booking moves to COMPLETED. An insufficient wallet
// leaves the booking IN_PROGRESS so the rider can top up and retry.
func (uc *bookingUC) CompleteRide(ctx context.Context, driverID, bookingID uuid.UUID) (*models.CompleteRideResponse, error) {
	b, err := uc.repo.GetByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if b.Driver == nil || b.Driver.DriverID != driverID {
		return nil, booking.ErrNotBookingOwner
	}
	if b.Status != models.BookingStatusInProgress {
		return nil, booking.ErrInvalidTransition
	}

	bill, err := uc.fares.GenerateBill(ctx, b)
	if err != nil {
		return nil, fmt.Errorf("failed to generate bill: %w", err)
	}
	b.FinalFare = bill.Total

	if b.PaymentMethod == models.PaymentMethodWallet {
		if err := uc.wallet.Debit(ctx, b.CustomerID, b.FinalFare, models.TransactionRidePayment, b.ID.String()); err != nil {
			return nil, err
		}

		commission := int(math.Round(float64(b.FinalFare) * uc.cfg.Booking.CommissionRate))
		earning := b.FinalFare - commission
		if err := uc.wallet.Credit(ctx, driverID, earning, models.TransactionDriverEarning, b.ID.String()); err != nil {
			logger.Error("Failed to credit driver earning",
				logger.String("booking_id", b.ID.String()),
				logger.String("driver_id", driverID.String()),
				logger.Err(err))
		}
	}

	now := time.Now()
	b.CompletedAt = &now

	if err := uc.repo.UpdateStatus(ctx, b, models.BookingStatusInProgress, models.BookingStatusCompleted, "driver", "ride completed"); err != nil {
		return nil, err
	}

	if err := uc.dispatch.ReleaseDriver(ctx, driverID); err != nil {
		logger.Warn("Failed to release driver after ride", logger.Err(err))
	}
	if err := uc.gw.PublishRideCompleted(ctx, b, bill); err != nil {
		logger.Warn("Failed to publish ride completed event", logger.Err(err))
	}

	logger.Info("Ride completed",
		logger.String("booking_id", b.ID.String()),
		logger.Int("final_fare", b.FinalFare))
	return &models.CompleteRideResponse{Booking: b, Bill: bill}, nil
}

// CancelBooking cancels a booking on behalf of the rider or the assigned
// driver. Cancelling during an active search stops its timer. Past the
// free window a flat fee is charged to wallet payers.
func (uc *bookingUC) CancelBooking(ctx context.Context, callerID uuid.UUID, bookingID uuid.UUID, reason string) (*models.Booking, error) {
	b, err := uc.repo.GetByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	actor := "customer"
	switch {
	case b.CustomerID == callerID:
	case b.Driver != nil && b.Driver.DriverID == callerID:
		actor = "driver"
	default:
		return nil, booking.ErrNotBookingOwner
	}

	from := b.Status
	if !models.CanTransition(from, models.BookingStatusCancelled) {
		return nil, booking.ErrInvalidTransition
	}

	if from == models.BookingStatusSearching {
		uc.cancelSearch(bookingID)
	}

	fee := uc.cancellationFee(b, actor)
	now := time.Now()
	b.CancelledAt = &now
	b.CancelReason = reason

	if err := uc.repo.UpdateStatus(ctx, b, from, models.BookingStatusCancelled, actor, reason); err != nil {
		return nil, err
	}

	if fee > 0 {
		// a failed debit leaves the fee due; the event still carries it
		if err := uc.wallet.Debit(ctx, b.CustomerID, fee, models.TransactionCancellationFee, b.ID.String()); err != nil {
			logger.Warn("Failed to charge cancellation fee",
				logger.String("booking_id", b.ID.String()),
				logger.Err(err))
		}
	}

	if b.Driver != nil {
		if err := uc.dispatch.ReleaseDriver(ctx, b.Driver.DriverID); err != nil {
			logger.Warn("Failed to release driver after cancellation", logger.Err(err))
		}
	}
	if err := uc.gw.PublishBookingCancelled(ctx, b, actor, fee); err != nil {
		logger.Warn("Failed to publish booking cancelled event", logger.Err(err))
	}

	logger.Info("Booking cancelled",
		logger.String("booking_id", b.ID.String()),
		logger.String("actor", actor),
		logger.Int("fee", fee))
	return b, nil
}

// cancellationFee applies only to rider cancellations of wallet bookings
// once the free window after confirmation has passed.
func (uc *bookingUC) cancellationFee(b *models.Booking, actor string) int {
	if actor != "customer" || b.PaymentMethod != models.PaymentMethodWallet {
		return 0
	}
	if b.ConfirmedAt == nil {
		return 0
	}
	window := time.Duration(uc.cfg.Booking.FreeCancelWindow) * time.Second
	if time.Since(*b.ConfirmedAt) <= window {
		return 0
	}
	return uc.cfg.Booking.CancellationFee
}

// GetBooking returns a booking to its rider or its assigned driver
func (uc *bookingUC) GetBooking(ctx context.Context, callerID uuid.UUID, bookingID uuid.UUID) (*models.Booking, error) {
	b, err := uc.repo.GetByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if b.CustomerID != callerID && (b.Driver == nil || b.Driver.DriverID != callerID) {
		return nil, booking.ErrNotBookingOwner
	}
	return b, nil
}

// ListBookings returns a rider's booking history, newest first
func (uc *bookingUC) ListBookings(ctx context.Context, customerID uuid.UUID) ([]models.Booking, error) {
	return uc.repo.ListByCustomer(ctx, customerID)
}

// ListBookingEvents returns the transition log for a booking
func (uc *bookingUC) ListBookingEvents(ctx context.Context, callerID, bookingID uuid.UUID) ([]models.BookingEvent, error) {
	if _, err := uc.GetBooking(ctx, callerID, bookingID); err != nil {
		return nil, err
	}
	return uc.repo.ListEvents(ctx, bookingID)
}

func (uc *bookingUC) registerSearch(bookingID uuid.UUID, cancel context.CancelFunc) {
	uc.searchMu.Lock()
	defer uc.searchMu.Unlock()
	uc.searches[bookingID] = cancel
}

func (uc *bookingUC) unregisterSearch(bookingID uuid.UUID) {
	uc.searchMu.Lock()
	defer uc.searchMu.Unlock()
	delete(uc.searches, bookingID)
}

func (uc *bookingUC) cancelSearch(bookingID uuid.UUID) {
	uc.searchMu.Lock()
	cancel, ok := uc.searches[bookingID]
	uc.searchMu.Unlock()
	if ok {
		cancel()
	}
}
