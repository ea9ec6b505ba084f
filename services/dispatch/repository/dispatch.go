package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"github.com/mmcloughlin/geohash"

	"github.com/deveshjhaq/gaddi24x7/internal/pkg/database"
	"github.com/deveshjhaq/gaddi24x7/internal/pkg/logger"
	"github.com/deveshjhaq/gaddi24x7/internal/pkg/models"
	"github.com/deveshjhaq/gaddi24x7/services/dispatch"
)

const (
	poolKeyPrefix        = "dispatch:pool:"   // + vehicleClassID, geo set of driver ids
	statusKeyPrefix      = "dispatch:status:" // + driverID
	offerKeyPrefix       = "dispatch:offer:"  // + driverID, the driver's open offer
	claimKeyPrefix       = "dispatch:claim:"  // + bookingID
	cellKeyPrefix        = "dispatch:cell:"   // + vehicleClassID:geohash, set of driver ids
	cellOfKeyPrefix      = "dispatch:cellof:" // + driverID, the cell set the driver sits in
	geohashCellPrecision = 6                  // ~1.2km cells
	claimTTL             = time.Hour
	statusTTL            = 12 * time.Hour
)

// DispatchRepo implements dispatch.DispatchRepo backed by Redis
type DispatchRepo struct {
	redisClient *database.RedisClient
}

// NewDispatchRepo creates a new dispatch repository
func NewDispatchRepo(redisClient *database.RedisClient) *DispatchRepo {
	return &DispatchRepo{redisClient: redisClient}
}

// AddToPool puts a driver into their vehicle class's geo pool and into the
// occupancy set of the geohash cell their location falls in. The cell sets
// let a search cheaply tell an empty neighbourhood from a populated one
// without a radius scan.
func (r *DispatchRepo) AddToPool(ctx context.Context, driverID uuid.UUID, vehicleClassID string, loc models.Location) error {
	key := poolKeyPrefix + vehicleClassID
	if err := r.redisClient.GeoAdd(ctx, key, loc.Longitude, loc.Latitude, driverID.String()); err != nil {
		return fmt.Errorf("failed to add driver to pool: %w", err)
	}

	cell := geohash.EncodeWithPrecision(loc.Latitude, loc.Longitude, geohashCellPrecision)
	cellKey := cellKeyPrefix + vehicleClassID + ":" + cell
	rdb := r.redisClient.GetClient()

	// the driver may have crossed into a new cell since the last update
	prevKey := cellOfKeyPrefix + driverID.String()
	if prev, err := rdb.Get(ctx, prevKey).Result(); err == nil && prev != cellKey {
		if err := rdb.SRem(ctx, prev, driverID.String()).Err(); err != nil {
			logger.Debug("Failed to leave previous cell", logger.String("cell", prev), logger.Err(err))
		}
	}
	if err := rdb.SAdd(ctx, cellKey, driverID.String()).Err(); err != nil {
		logger.Debug("Failed to join cell", logger.String("cell", cell), logger.Err(err))
		return nil
	}
	if err := rdb.Set(ctx, prevKey, cellKey, statusTTL).Err(); err != nil {
		logger.Debug("Failed to record driver cell", logger.Err(err))
	}
	return nil
}

// RemoveFromPool takes a driver out of their vehicle class's geo pool and
// out of their occupancy cell
func (r *DispatchRepo) RemoveFromPool(ctx context.Context, driverID uuid.UUID, vehicleClassID string) error {
	key := poolKeyPrefix + vehicleClassID
	if err := r.redisClient.ZRem(ctx, key, driverID.String()); err != nil {
		return fmt.Errorf("failed to remove driver from pool: %w", err)
	}

	rdb := r.redisClient.GetClient()
	prevKey := cellOfKeyPrefix + driverID.String()
	if prev, err := rdb.Get(ctx, prevKey).Result(); err == nil {
		if err := rdb.SRem(ctx, prev, driverID.String()).Err(); err != nil {
			logger.Debug("Failed to leave cell", logger.String("cell", prev), logger.Err(err))
		}
		if err := rdb.Del(ctx, prevKey).Err(); err != nil {
			logger.Debug("Failed to clear driver cell", logger.Err(err))
		}
	}
	return nil
}

// CellOccupancy counts pool drivers in the pickup's geohash cell and its
// eight neighbours. Zero means a radius scan cannot find anyone either.
func (r *DispatchRepo) CellOccupancy(ctx context.Context, vehicleClassID string, center models.Location) (int64, error) {
	cell := geohash.EncodeWithPrecision(center.Latitude, center.Longitude, geohashCellPrecision)
	cells := append([]string{cell}, geohash.Neighbors(cell)...)

	rdb := r.redisClient.GetClient()
	var total int64
	for _, c := range cells {
		n, err := rdb.SCard(ctx, cellKeyPrefix+vehicleClassID+":"+c).Result()
		if err != nil {
			return 0, fmt.Errorf("failed to read cell occupancy: %w", err)
		}
		total += n
	}
	return total, nil
}

// NearbyDrivers returns pool members within the radius, nearest first
func (r *DispatchRepo) NearbyDrivers(ctx context.Context, vehicleClassID string, center models.Location, radiusKm float64) ([]models.NearbyDriver, error) {
	key := poolKeyPrefix + vehicleClassID
	locations, err := r.redisClient.GeoRadius(ctx, key, center.Longitude, center.Latitude, radiusKm, "km")
	if err != nil {
		return nil, fmt.Errorf("failed to search driver pool: %w", err)
	}

	drivers := make([]models.NearbyDriver, 0, len(locations))
	for _, loc := range locations {
		drivers = append(drivers, models.NearbyDriver{
			DriverID:   loc.Name,
			Location:   models.Location{Latitude: loc.Latitude, Longitude: loc.Longitude},
			DistanceKm: loc.Dist,
		})
	}
	return drivers, nil
}

// SetDriverStatus records where the driver sits in their workflow
func (r *DispatchRepo) SetDriverStatus(ctx context.Context, driverID uuid.UUID, status models.DriverStatus) error {
	if err := r.redisClient.Set(ctx, statusKeyPrefix+driverID.String(), string(status), statusTTL); err != nil {
		return fmt.Errorf("failed to set driver status: %w", err)
	}
	return nil
}

// GetDriverStatus returns the driver's workflow state, OFFLINE when unknown
func (r *DispatchRepo) GetDriverStatus(ctx context.Context, driverID uuid.UUID) (models.DriverStatus, error) {
	val, err := r.redisClient.Get(ctx, statusKeyPrefix+driverID.String())
	if errors.Is(err, redis.Nil) {
		return models.DriverStatusOffline, nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to get driver status: %w", err)
	}
	return models.DriverStatus(val), nil
}

// StoreOffer stores the driver's open offer with the offer window as TTL
func (r *DispatchRepo) StoreOffer(ctx context.Context, offer *models.RideOffer, ttlSeconds int) error {
	data, err := json.Marshal(offer)
	if err != nil {
		return fmt.Errorf("failed to marshal offer: %w", err)
	}
	key := offerKeyPrefix + offer.DriverID
	if err := r.redisClient.Set(ctx, key, data, time.Duration(ttlSeconds)*time.Second); err != nil {
		return fmt.Errorf("failed to store offer: %w", err)
	}
	return nil
}

// GetOfferForDriver returns the driver's open offer, if any
func (r *DispatchRepo) GetOfferForDriver(ctx context.Context, driverID uuid.UUID) (*models.RideOffer, error) {
	val, err := r.redisClient.Get(ctx, offerKeyPrefix+driverID.String())
	if errors.Is(err, redis.Nil) {
		return nil, dispatch.ErrOfferNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get offer: %w", err)
	}

	var offer models.RideOffer
	if err := json.Unmarshal([]byte(val), &offer); err != nil {
		return nil, fmt.Errorf("failed to unmarshal offer: %w", err)
	}
	return &offer, nil
}

// DeleteOffer removes a driver's open offer
func (r *DispatchRepo) DeleteOffer(ctx context.Context, offer *models.RideOffer) error {
	return r.redisClient.Delete(ctx, offerKeyPrefix+offer.DriverID)
}

// ClaimBooking reserves a booking for a driver atomically. The SETNX only
// succeeds for the first driver to accept.
func (r *DispatchRepo) ClaimBooking(ctx context.Context, bookingID, driverID uuid.UUID) (bool, error) {
	won, err := r.redisClient.SetNX(ctx, claimKeyPrefix+bookingID.String(), driverID.String(), claimTTL)
	if err != nil {
		return false, fmt.Errorf("failed to claim booking: %w", err)
	}
	return won, nil
}

// ReleaseClaim frees a booking claim after a cancelled assignment
func (r *DispatchRepo) ReleaseClaim(ctx context.Context, bookingID uuid.UUID) error {
	return r.redisClient.Delete(ctx, claimKeyPrefix+bookingID.String())
}
