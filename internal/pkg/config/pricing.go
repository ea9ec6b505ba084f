package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/deveshjhaq/gaddi24x7/internal/pkg/models"
)

// PricingDefaults holds the fare tables shipped with the binary. They seed
// the pricing repository; admin edits live in Redis on top of these.
type PricingDefaults struct {
	VehicleClasses []models.VehicleClass `mapstructure:"vehicle_classes"`
	TripTypes      []models.TripType     `mapstructure:"trip_types"`
}

// LoadPricingDefaults reads the yaml fare tables, allowing env overrides
// (PRICING_ prefixed) for individual values.
func LoadPricingDefaults(path string) (*PricingDefaults, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetEnvPrefix("PRICING")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read pricing defaults: %w", err)
	}

	var defaults PricingDefaults
	if err := v.Unmarshal(&defaults); err != nil {
		return nil, fmt.Errorf("failed to parse pricing defaults: %w", err)
	}

	if len(defaults.VehicleClasses) == 0 {
		return nil, fmt.Errorf("pricing defaults contain no vehicle classes")
	}
	for _, vc := range defaults.VehicleClasses {
		if vc.ID == "" {
			return nil, fmt.Errorf("vehicle class with empty id in pricing defaults")
		}
		// a class that decoded to zero prices would quote zero fares
		if vc.BasePrice <= 0 || vc.MinimumFare <= 0 {
			return nil, fmt.Errorf("vehicle class %q has no base price or minimum fare", vc.ID)
		}
	}
	for _, tt := range defaults.TripTypes {
		if tt.Multiplier <= 0 {
			return nil, fmt.Errorf("trip type %q has non-positive multiplier", tt.ID)
		}
	}

	return &defaults, nil
}
