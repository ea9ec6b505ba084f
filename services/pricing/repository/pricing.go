package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"

	"github.com/go-redis/redis/v8"

	"github.com/deveshjhaq/gaddi24x7/internal/pkg/config"
	"github.com/deveshjhaq/gaddi24x7/internal/pkg/database"
	"github.com/deveshjhaq/gaddi24x7/internal/pkg/models"
	"github.com/deveshjhaq/gaddi24x7/services/pricing"
)

const (
	vehicleClassKeyPrefix = "pricing:vehicle:"
	tripTypeKeyPrefix     = "pricing:triptype:"
)

// PricingRepo serves the fare reference tables. Admin edits live in Redis;
// anything not edited falls through to the yaml defaults the binary shipped
// with. Reads hit Redis on every call, so an edit is visible to the very
// next quote.
type PricingRepo struct {
	redisClient     *database.RedisClient
	defaultClasses  map[string]models.VehicleClass
	defaultTrips    map[string]models.TripType
}

// NewPricingRepo creates a pricing repository over Redis with yaml defaults
func NewPricingRepo(redisClient *database.RedisClient, defaults *config.PricingDefaults) *PricingRepo {
	classes := make(map[string]models.VehicleClass, len(defaults.VehicleClasses))
	for _, vc := range defaults.VehicleClasses {
		classes[vc.ID] = vc
	}
	trips := make(map[string]models.TripType, len(defaults.TripTypes))
	for _, tt := range defaults.TripTypes {
		trips[tt.ID] = tt
	}

	return &PricingRepo{
		redisClient:    redisClient,
		defaultClasses: classes,
		defaultTrips:   trips,
	}
}

// GetVehicleClass returns the current pricing for one vehicle class
func (r *PricingRepo) GetVehicleClass(ctx context.Context, id string) (*models.VehicleClass, error) {
	data, err := r.redisClient.Get(ctx, vehicleClassKeyPrefix+id)
	if err == nil {
		var class models.VehicleClass
		if err := json.Unmarshal([]byte(data), &class); err != nil {
			return nil, fmt.Errorf("failed to decode vehicle class %s: %w", id, err)
		}
		return &class, nil
	}
	if err != redis.Nil {
		return nil, fmt.Errorf("failed to read vehicle class %s: %w", id, err)
	}

	if class, ok := r.defaultClasses[id]; ok {
		return &class, nil
	}
	return nil, pricing.ErrUnknownVehicleClass
}

// ListVehicleClasses returns every vehicle class, defaults merged with edits
func (r *PricingRepo) ListVehicleClasses(ctx context.Context) ([]models.VehicleClass, error) {
	classes := make([]models.VehicleClass, 0, len(r.defaultClasses))
	for id := range r.defaultClasses {
		class, err := r.GetVehicleClass(ctx, id)
		if err != nil {
			return nil, err
		}
		classes = append(classes, *class)
	}
	sort.Slice(classes, func(i, j int) bool { return classes[i].BasePrice < classes[j].BasePrice })
	return classes, nil
}

// GetTripType returns the current multiplier for one trip type
func (r *PricingRepo) GetTripType(ctx context.Context, id string) (*models.TripType, error) {
	data, err := r.redisClient.Get(ctx, tripTypeKeyPrefix+id)
	if err == nil {
		var tripType models.TripType
		if err := json.Unmarshal([]byte(data), &tripType); err != nil {
			return nil, fmt.Errorf("failed to decode trip type %s: %w", id, err)
		}
		return &tripType, nil
	}
	if err != redis.Nil {
		return nil, fmt.Errorf("failed to read trip type %s: %w", id, err)
	}

	if tripType, ok := r.defaultTrips[id]; ok {
		return &tripType, nil
	}
	return nil, pricing.ErrUnknownTripType
}

// ListTripTypes returns every trip type, defaults merged with edits
func (r *PricingRepo) ListTripTypes(ctx context.Context) ([]models.TripType, error) {
	tripTypes := make([]models.TripType, 0, len(r.defaultTrips))
	for id := range r.defaultTrips {
		tripType, err := r.GetTripType(ctx, id)
		if err != nil {
			return nil, err
		}
		tripTypes = append(tripTypes, *tripType)
	}
	sort.Slice(tripTypes, func(i, j int) bool { return tripTypes[i].Multiplier < tripTypes[j].Multiplier })
	return tripTypes, nil
}

// UpsertVehicleClass stores an admin pricing edit
func (r *PricingRepo) UpsertVehicleClass(ctx context.Context, class models.VehicleClass) error {
	data, err := json.Marshal(class)
	if err != nil {
		return fmt.Errorf("failed to encode vehicle class %s: %w", class.ID, err)
	}
	if err := r.redisClient.Set(ctx, vehicleClassKeyPrefix+class.ID, data, 0); err != nil {
		return fmt.Errorf("failed to store vehicle class %s: %w", class.ID, err)
	}
	return nil
}

// UpsertTripType stores an admin trip type edit
func (r *PricingRepo) UpsertTripType(ctx context.Context, tripType models.TripType) error {
	data, err := json.Marshal(tripType)
	if err != nil {
		return fmt.Errorf("failed to encode trip type %s: %w", tripType.ID, err)
	}
	if err := r.redisClient.Set(ctx, tripTypeKeyPrefix+tripType.ID, data, 0); err != nil {
		return fmt.Errorf("failed to store trip type %s: %w", tripType.ID, err)
	}
	return nil
}
