package services

import (
	"testing"

	"roadtrip/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestEstimateTripCostPetrol(t *testing.T) {
	breakdown := EstimateTripCost(100000, nil, models.VehicleTypePetrol, 1, 0)

	assert.Equal(t, 100.0, breakdown.DistanceKM)
	assert.Equal(t, 17.43, breakdown.FuelOrCharging)
	assert.Equal(t, 6.0, breakdown.Tolls)
	assert.Equal(t, 0.0, breakdown.Food)
	assert.Equal(t, 0.0, breakdown.Tickets)
	assert.Equal(t, 0.0, breakdown.Buffer)
	assert.Equal(t, 23.43, breakdown.Total)
	assert.Equal(t, "AUD", breakdown.Currency)
}

func TestEstimateTripCostEV(t *testing.T) {
	breakdown := EstimateTripCost(100000, nil, models.VehicleTypeEV, 1, 0)

	assert.Equal(t, 8.1, breakdown.FuelOrCharging)
	assert.Equal(t, 5.0, breakdown.Tolls)
	assert.Equal(t, 13.1, breakdown.Total)
}

func TestEstimateTripCostStops(t *testing.T) {
	itinerary := []models.ItineraryItem{
		{Type: models.ItineraryTypeFood},
		{Type: models.ItineraryTypeFood},
		{Type: models.ItineraryTypeAttractions},
		{Type: models.ItineraryTypeFuel},
	}

	breakdown := EstimateTripCost(0, itinerary, models.VehicleTypePetrol, 3, 0)

	assert.Equal(t, 0.0, breakdown.FuelOrCharging)
	assert.Equal(t, 0.0, breakdown.Tolls)
	assert.Equal(t, 132.0, breakdown.Food)
	assert.Equal(t, 36.0, breakdown.Tickets)
	assert.Equal(t, 168.0, breakdown.Total)
}

func TestEstimateTripCostClampsInputs(t *testing.T) {
	// Negative buffer is treated as zero
	breakdown := EstimateTripCost(100000, nil, models.VehicleTypePetrol, 1, -5)
	assert.Equal(t, 0.0, breakdown.Buffer)

	// Buffer above the cap is reduced to 30 percent
	breakdown = EstimateTripCost(100000, nil, models.VehicleTypePetrol, 1, 99)
	assert.Equal(t, 7.03, breakdown.Buffer)
	assert.Equal(t, 30.46, breakdown.Total)

	// Zero passengers behaves like one passenger
	itinerary := []models.ItineraryItem{{Type: models.ItineraryTypeFood}}
	breakdown = EstimateTripCost(0, itinerary, models.VehicleTypePetrol, 0, 0)
	assert.Equal(t, 22.0, breakdown.Food)
}

func TestEstimateTripCostBufferCoversBase(t *testing.T) {
	itinerary := []models.ItineraryItem{
		{Type: models.ItineraryTypeFood},
		{Type: models.ItineraryTypeAttractions},
	}

	breakdown := EstimateTripCost(250000, itinerary, models.VehicleTypeEV, 2, 10)

	base := breakdown.FuelOrCharging + breakdown.Food + breakdown.Tickets + breakdown.Tolls
	assert.InDelta(t, base+breakdown.Buffer, breakdown.Total, 0.01)
}

func TestEstimateTripCostIsDeterministic(t *testing.T) {
	itinerary := []models.ItineraryItem{{Type: models.ItineraryTypeFood}}

	first := EstimateTripCost(123456, itinerary, models.VehicleTypeEV, 2, 15)
	second := EstimateTripCost(123456, itinerary, models.VehicleTypeEV, 2, 15)

	assert.Equal(t, first, second)
}

func TestEstimateTripCostUnknownVehicleFallsBackToPetrol(t *testing.T) {
	petrol := EstimateTripCost(50000, nil, models.VehicleTypePetrol, 1, 0)
	unknown := EstimateTripCost(50000, nil, "hovercraft", 1, 0)

	assert.Equal(t, petrol.FuelOrCharging, unknown.FuelOrCharging)
	assert.Equal(t, petrol.Tolls, unknown.Tolls)
}
