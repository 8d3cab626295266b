package services

import (
	"math"

	"roadtrip/internal/models"
	"roadtrip/internal/utils"
)

// Consumption and rate constants for the cost model. Currency is AUD.
const (
	evConsumptionKWhPer100KM     = 18.0
	evTariffPerKWh               = 0.45
	petrolConsumptionLPer100KM   = 8.5
	petrolPricePerLiter          = 2.05
	foodCostPerStopPerPassenger  = 22.0
	ticketCostPerStopPerPerson   = 12.0
	tollRatePerKMPetrol          = 0.06
	tollRatePerKMEV              = 0.05
)

// EstimateTripCost is a pure function: identical inputs always produce an
// identical breakdown. Distance 0 means "no route yet" and estimates food and
// tickets only. Passenger count is coerced to >= 1 and buffer percent clamped
// to [0, 30] regardless of whether the values came from the request or from
// stored trip preferences.
func EstimateTripCost(distanceM float64, itinerary []models.ItineraryItem, vehicleType string, passengers, bufferPct int) models.CostBreakdown {
	km := distanceM / 1000.0

	if passengers < 1 {
		passengers = utils.DefaultPassengers
	}
	if bufferPct < 0 {
		bufferPct = 0
	}
	if bufferPct > utils.MaxBufferPct {
		bufferPct = utils.MaxBufferPct
	}

	var fuel, tolls float64
	if vehicleType == models.VehicleTypeEV {
		kwh := km * evConsumptionKWhPer100KM / 100.0
		fuel = round2(kwh * evTariffPerKWh)
		tolls = round2(km * tollRatePerKMEV)
	} else {
		liters := km * petrolConsumptionLPer100KM / 100.0
		fuel = round2(liters * petrolPricePerLiter)
		tolls = round2(km * tollRatePerKMPetrol)
	}

	foodStops := countItineraryType(itinerary, models.ItineraryTypeFood)
	attractionStops := countItineraryType(itinerary, models.ItineraryTypeAttractions)

	food := round2(float64(foodStops) * float64(passengers) * foodCostPerStopPerPassenger)
	tickets := round2(float64(attractionStops) * float64(passengers) * ticketCostPerStopPerPerson)

	base := fuel + food + tickets + tolls
	buffer := round2(base * float64(bufferPct) / 100.0)

	return models.CostBreakdown{
		DistanceKM:     round1(km),
		FuelOrCharging: fuel,
		Food:           food,
		Tickets:        tickets,
		Tolls:          tolls,
		Buffer:         buffer,
		Total:          round2(base + buffer),
		Currency:       utils.DefaultCurrency,
	}
}

func countItineraryType(items []models.ItineraryItem, itemType string) int {
	count := 0
	for _, item := range items {
		if item.Type == itemType {
			count++
		}
	}
	return count
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
