package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writePricingYAML(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "pricing.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadPricingDefaults_DecodesSnakeCaseFields(t *testing.T) {
	path := writePricingYAML(t, `
vehicle_classes:
  - id: sedan
    name: Sedan
    capacity: 4
    base_price: 80
    price_per_km: 20
    price_per_min: 3
    minimum_fare: 100

trip_types:
  - id: one-way
    name: One Way
    multiplier: 1.0
  - id: round-trip
    name: Round Trip
    multiplier: 1.8
`)

	defaults, err := LoadPricingDefaults(path)
	require.NoError(t, err)

	require.Len(t, defaults.VehicleClasses, 1)
	sedan := defaults.VehicleClasses[0]
	assert.Equal(t, "sedan", sedan.ID)
	assert.Equal(t, 4, sedan.Capacity)
	assert.Equal(t, 80.0, sedan.BasePrice)
	assert.Equal(t, 20.0, sedan.PricePerKm)
	assert.Equal(t, 3.0, sedan.PricePerMin)
	assert.Equal(t, 100.0, sedan.MinimumFare)

	require.Len(t, defaults.TripTypes, 2)
	assert.Equal(t, 1.8, defaults.TripTypes[1].Multiplier)
}

func TestLoadPricingDefaults_RejectsZeroedClass(t *testing.T) {
	// a class whose prices did not decode must fail at boot, not quote zero
	path := writePricingYAML(t, `
vehicle_classes:
  - id: sedan
    name: Sedan
    capacity: 4

trip_types:
  - id: one-way
    multiplier: 1.0
`)

	_, err := LoadPricingDefaults(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "sedan")
}

func TestLoadPricingDefaults_RejectsNonPositiveMultiplier(t *testing.T) {
	path := writePricingYAML(t, `
vehicle_classes:
  - id: auto
    base_price: 30
    price_per_km: 12
    price_per_min: 2
    minimum_fare: 40

trip_types:
  - id: one-way
    multiplier: 0
`)

	_, err := LoadPricingDefaults(path)
	require.Error(t, err)
}

func TestLoadPricingDefaults_MissingFile(t *testing.T) {
	_, err := LoadPricingDefaults(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}
