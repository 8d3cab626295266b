package models

// CostBreakdown is derived per request from route + itinerary + parameters and
// never persisted. Invariant: total = fuel_or_charging + food + tickets +
// tolls + buffer, each rounded to cents.
type CostBreakdown struct {
	DistanceKM     float64 `json:"distance_km"`
	FuelOrCharging float64 `json:"fuel_or_charging"`
	Food           float64 `json:"food"`
	Tickets        float64 `json:"tickets"`
	Tolls          float64 `json:"tolls"`
	Buffer         float64 `json:"buffer"`
	Total          float64 `json:"total"`
	Currency       string  `json:"currency"`
}
