package usecase

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/deveshjhaq/gaddi24x7/internal/pkg/logger"
	"github.com/deveshjhaq/gaddi24x7/internal/pkg/models"
	"github.com/deveshjhaq/gaddi24x7/services/booking"
	"github.com/deveshjhaq/gaddi24x7/services/dispatch"
)

// errOfferDeclined is internal to the search loop; the loop moves on to
// the next candidate when a driver rejects or lets the offer lapse.
var errOfferDeclined = errors.New("offer declined")

const rescanDelay = 2 * time.Second

// dispatchUC implements the dispatch.DispatchUC interface
type dispatchUC struct {
	cfg   *models.Config
	repo  dispatch.DispatchRepo
	gw    dispatch.DispatchGW
	users dispatch.UserService

	// pending maps an open offer to the search goroutine waiting on its
	// answer. An accept or reject with no pending entry arrived too late.
	pendingMu sync.Mutex
	pending   map[uuid.UUID]chan models.OfferResult
}

// NewDispatchUC creates a new dispatch use case
func NewDispatchUC(cfg *models.Config, repo dispatch.DispatchRepo, gw dispatch.DispatchGW, users dispatch.UserService) dispatch.DispatchUC {
	return &dispatchUC{
		cfg:     cfg,
		repo:    repo,
		gw:      gw,
		users:   users,
		pending: make(map[uuid.UUID]chan models.OfferResult),
	}
}

// SetAvailability moves a driver in or out of the dispatch pool
func (uc *dispatchUC) SetAvailability(ctx context.Context, driverID uuid.UUID, req models.AvailabilityRequest) error {
	profile, err := uc.users.GetProfile(ctx, driverID)
	if err != nil {
		return err
	}
	if profile.DriverInfo == nil {
		return fmt.Errorf("user %s has no vehicle registered", driverID)
	}
	vehicleClass := profile.DriverInfo.VehicleClass

	if !req.Online {
		if err := uc.repo.RemoveFromPool(ctx, driverID, vehicleClass); err != nil {
			return err
		}
		return uc.repo.SetDriverStatus(ctx, driverID, models.DriverStatusOffline)
	}

	if err := uc.repo.AddToPool(ctx, driverID, vehicleClass, req.Location); err != nil {
		return err
	}
	if err := uc.repo.SetDriverStatus(ctx, driverID, models.DriverStatusOnline); err != nil {
		return err
	}

	logger.Info("Driver online",
		logger.String("driver_id", driverID.String()),
		logger.String("vehicle_class", vehicleClass))
	return nil
}

// UpdateLocation refreshes an online driver's position in the pool
func (uc *dispatchUC) UpdateLocation(ctx context.Context, driverID uuid.UUID, loc models.Location) error {
	status, err := uc.repo.GetDriverStatus(ctx, driverID)
	if err != nil {
		return err
	}
	if status == models.DriverStatusOffline {
		return dispatch.ErrDriverOffline
	}

	profile, err := uc.users.GetProfile(ctx, driverID)
	if err != nil {
		return err
	}
	if profile.DriverInfo == nil {
		return fmt.Errorf("user %s has no vehicle registered", driverID)
	}
	return uc.repo.AddToPool(ctx, driverID, profile.DriverInfo.VehicleClass, loc)
}

// GetCurrentOffer returns the driver's open offer for polling clients
func (uc *dispatchUC) GetCurrentOffer(ctx context.Context, driverID uuid.UUID) (*models.RideOffer, error) {
	return uc.repo.GetOfferForDriver(ctx, driverID)
}

// FindDriver walks the availability pool nearest-first, offering the trip
// to one driver at a time, until someone accepts or the caller's context
// closes the search window. Drivers who decline are not asked again.
func (uc *dispatchUC) FindDriver(ctx context.Context, req models.DispatchRequest) (*models.DriverAssignment, error) {
	attempts := uc.cfg.Dispatch.SearchRetries + 1
	asked := make(map[string]bool)

	for attempt := 0; attempt < attempts; attempt++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		// the cell sets give an O(1) emptiness check; skip the radius
		// scan when nobody is in or around the pickup cell
		if occupancy, err := uc.repo.CellOccupancy(ctx, req.VehicleClassID, req.Pickup); err == nil && occupancy == 0 {
			if attempt < attempts-1 {
				select {
				case <-ctx.Done():
					return nil, ctx.Err()
				case <-time.After(rescanDelay):
				}
			}
			continue
		}

		candidates, err := uc.repo.NearbyDrivers(ctx, req.VehicleClassID, req.Pickup, uc.cfg.Dispatch.SearchRadiusKm)
		if err != nil {
			return nil, err
		}

		for _, cand := range candidates {
			if asked[cand.DriverID] {
				continue
			}
			driverID, err := uuid.Parse(cand.DriverID)
			if err != nil {
				continue
			}
			status, err := uc.repo.GetDriverStatus(ctx, driverID)
			if err != nil || status != models.DriverStatusOnline {
				continue
			}
			asked[cand.DriverID] = true

			assignment, err := uc.offerToDriver(ctx, req, cand, driverID)
			if err == nil {
				return assignment, nil
			}
			if errors.Is(err, errOfferDeclined) {
				continue
			}
			return nil, err
		}

		if attempt < attempts-1 {
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(rescanDelay):
			}
		}
	}

	return nil, booking.ErrNoDriverAvailable
}

// offerToDriver opens one offer and blocks until the driver answers, the
// offer window lapses, or the search is cancelled.
func (uc *dispatchUC) offerToDriver(ctx context.Context, req models.DispatchRequest, cand models.NearbyDriver, driverID uuid.UUID) (*models.DriverAssignment, error) {
	ttl := uc.cfg.Dispatch.OfferTTL
	offer := &models.RideOffer{
		ID:             uuid.New(),
		BookingID:      req.BookingID,
		DriverID:       cand.DriverID,
		CustomerName:   req.CustomerName,
		PickupLocation: req.PickupLocation,
		DropLocation:   req.DropLocation,
		DistanceKm:     cand.DistanceKm,
		Fare:           req.Fare,
		ExpiresAt:      time.Now().Add(time.Duration(ttl) * time.Second),
	}

	answer := make(chan models.OfferResult, 1)
	uc.pendingMu.Lock()
	uc.pending[offer.ID] = answer
	uc.pendingMu.Unlock()
	defer func() {
		uc.pendingMu.Lock()
		delete(uc.pending, offer.ID)
		uc.pendingMu.Unlock()
	}()

	if err := uc.repo.StoreOffer(ctx, offer, ttl); err != nil {
		return nil, err
	}
	if err := uc.repo.SetDriverStatus(ctx, driverID, models.DriverStatusOffered); err != nil {
		return nil, err
	}
	if err := uc.gw.PublishOffer(ctx, offer); err != nil {
		logger.Warn("Failed to publish offer", logger.Err(err))
	}

	logger.Info("Offer sent",
		logger.String("offer_id", offer.ID.String()),
		logger.String("booking_id", offer.BookingID.String()),
		logger.String("driver_id", cand.DriverID))

	select {
	case result := <-answer:
		if !result.Accepted {
			uc.closeOffer(offer, driverID)
			return nil, errOfferDeclined
		}
		return uc.assignDriver(ctx, req, offer, driverID)

	case <-time.After(time.Duration(ttl) * time.Second):
		uc.closeOffer(offer, driverID)
		if err := uc.gw.PublishOfferClosed(context.Background(), offer); err != nil {
			logger.Debug("Failed to publish offer closed", logger.Err(err))
		}
		return nil, errOfferDeclined

	case <-ctx.Done():
		uc.closeOffer(offer, driverID)
		if err := uc.gw.PublishOfferClosed(context.Background(), offer); err != nil {
			logger.Debug("Failed to publish offer closed", logger.Err(err))
		}
		return nil, ctx.Err()
	}
}

// closeOffer withdraws an open offer and puts the driver back online
func (uc *dispatchUC) closeOffer(offer *models.RideOffer, driverID uuid.UUID) {
	ctx := context.Background()
	if err := uc.repo.DeleteOffer(ctx, offer); err != nil {
		logger.Debug("Failed to delete offer", logger.Err(err))
	}
	if err := uc.repo.SetDriverStatus(ctx, driverID, models.DriverStatusOnline); err != nil {
		logger.Debug("Failed to reset driver status", logger.Err(err))
	}
}

// assignDriver finalizes an accepted offer into a driver assignment
func (uc *dispatchUC) assignDriver(ctx context.Context, req models.DispatchRequest, offer *models.RideOffer, driverID uuid.UUID) (*models.DriverAssignment, error) {
	profile, err := uc.users.GetProfile(ctx, driverID)
	if err != nil {
		return nil, fmt.Errorf("failed to load driver profile: %w", err)
	}

	assignment := &models.DriverAssignment{
		DriverID: driverID,
		Name:     profile.FullName,
		Phone:    profile.Phone,
		Rating:   profile.Rating,
	}
	vehicleClass := ""
	if profile.DriverInfo != nil {
		assignment.VehicleNumber = profile.DriverInfo.VehicleNumber
		assignment.VehicleModel = profile.DriverInfo.VehicleModel
		vehicleClass = profile.DriverInfo.VehicleClass
	}

	if vehicleClass != "" {
		if err := uc.repo.RemoveFromPool(ctx, driverID, vehicleClass); err != nil {
			logger.Warn("Failed to remove matched driver from pool", logger.Err(err))
		}
	}
	if err := uc.repo.SetDriverStatus(ctx, driverID, models.DriverStatusOnTrip); err != nil {
		logger.Warn("Failed to mark driver on trip", logger.Err(err))
	}
	if err := uc.repo.DeleteOffer(ctx, offer); err != nil {
		logger.Debug("Failed to delete accepted offer", logger.Err(err))
	}

	return assignment, nil
}

// AcceptOffer is the driver's side of first-accept-wins. The booking claim
// is a single atomic reservation: exactly one accept ever gets it.
func (uc *dispatchUC) AcceptOffer(ctx context.Context, driverID, offerID uuid.UUID) error {
	offer, err := uc.repo.GetOfferForDriver(ctx, driverID)
	if err != nil {
		return err
	}
	if offer.ID != offerID {
		return dispatch.ErrOfferNotFound
	}
	if time.Now().After(offer.ExpiresAt) {
		return dispatch.ErrOfferExpired
	}

	won, err := uc.repo.ClaimBooking(ctx, offer.BookingID, driverID)
	if err != nil {
		return err
	}
	if !won {
		return dispatch.ErrRideUnavailable
	}

	answer := uc.takePending(offerID)
	if answer == nil {
		// the search already moved on; give the claim back
		if err := uc.repo.ReleaseClaim(ctx, offer.BookingID); err != nil {
			logger.Warn("Failed to release stale claim", logger.Err(err))
		}
		return dispatch.ErrOfferExpired
	}

	answer <- models.OfferResult{OfferID: offerID, DriverID: driverID.String(), Accepted: true}
	return nil
}

// RejectOffer declines the driver's open offer so the search can move on
func (uc *dispatchUC) RejectOffer(ctx context.Context, driverID, offerID uuid.UUID) error {
	offer, err := uc.repo.GetOfferForDriver(ctx, driverID)
	if err != nil {
		return err
	}
	if offer.ID != offerID {
		return dispatch.ErrOfferNotFound
	}

	if answer := uc.takePending(offerID); answer != nil {
		answer <- models.OfferResult{OfferID: offerID, DriverID: driverID.String(), Accepted: false}
		return nil
	}

	// no search is waiting anymore; just clean up
	return uc.repo.DeleteOffer(ctx, offer)
}

// ReleaseDriver puts a driver back to ONLINE once their trip is over or
// their assignment fell through. The driver re-announces their location to
// rejoin the pool.
func (uc *dispatchUC) ReleaseDriver(ctx context.Context, driverID uuid.UUID) error {
	return uc.repo.SetDriverStatus(ctx, driverID, models.DriverStatusOnline)
}

// takePending removes and returns the waiter for an offer, if one is
// still there
func (uc *dispatchUC) takePending(offerID uuid.UUID) chan models.OfferResult {
	uc.pendingMu.Lock()
	defer uc.pendingMu.Unlock()
	ch, ok := uc.pending[offerID]
	if !ok {
		return nil
	}
	delete(uc.pending, offerID)
	return ch
}
