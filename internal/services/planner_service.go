package services

import (
	"context"

	"roadtrip/internal/models"
	"roadtrip/internal/repositories/interfaces"
	"roadtrip/internal/utils"
	"roadtrip/pkg/logger"
	"roadtrip/pkg/maps"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// PlannerService drives the route -> POI -> itinerary -> estimate pipeline.
type PlannerService struct {
	trips    interfaces.TripRepository
	routes   maps.RouteProvider
	pois     maps.POIProvider
	geocoder maps.Geocoder
	log      *logger.Logger
}

func NewPlannerService(trips interfaces.TripRepository, routes maps.RouteProvider, pois maps.POIProvider, geocoder maps.Geocoder, log *logger.Logger) *PlannerService {
	return &PlannerService{
		trips:    trips,
		routes:   routes,
		pois:     pois,
		geocoder: geocoder,
		log:      log,
	}
}

// FetchRoute resolves coordinates from the request, falling back to those
// stored on the trip, fetches driving directions and replaces the trip's
// route snapshot.
func (s *PlannerService) FetchRoute(ctx context.Context, tripID, userID primitive.ObjectID, req *models.RouteRequest) (*models.RouteSnapshot, error) {
	trip, err := s.trips.GetByOwner(ctx, tripID, userID)
	if err != nil {
		return nil, err
	}

	start := maps.Location{Latitude: coalesce(req.StartLat, trip.StartLat), Longitude: coalesce(req.StartLon, trip.StartLon)}
	dest := maps.Location{Latitude: coalesce(req.DestLat, trip.DestLat), Longitude: coalesce(req.DestLon, trip.DestLon)}

	// Zero is "missing", not a coordinate.
	if start.Latitude == 0 || start.Longitude == 0 || dest.Latitude == 0 || dest.Longitude == 0 {
		return nil, utils.NewValidationError("lat/lon required")
	}
	if !maps.IsValidCoordinates(start.Latitude, start.Longitude) || !maps.IsValidCoordinates(dest.Latitude, dest.Longitude) {
		return nil, utils.NewValidationError("coordinates out of range")
	}

	result, err := s.routes.GetRoute(ctx, start, dest)
	if err != nil {
		return nil, &utils.UpstreamError{Service: "routing", Err: err}
	}

	snapshot := &models.RouteSnapshot{
		DistanceM: result.DistanceM,
		DurationS: result.DurationS,
		Geometry:  result.Geometry,
	}

	if err := s.trips.UpdateRoute(ctx, tripID, userID, snapshot); err != nil {
		return nil, err
	}

	s.log.WithField("trip_id", tripID.Hex()).
		WithField("distance_m", snapshot.DistanceM).
		Info("route snapshot updated")

	return snapshot, nil
}

// FetchPOIs pads a bounding box around the trip's route geometry and queries
// the map-feature service. Results are returned, not persisted; only the
// curated itinerary is saved.
func (s *PlannerService) FetchPOIs(ctx context.Context, tripID, userID primitive.ObjectID, pad float64) ([]maps.POI, error) {
	trip, err := s.trips.GetByOwner(ctx, tripID, userID)
	if err != nil {
		return nil, err
	}

	if trip.Route == nil || len(trip.Route.Geometry) == 0 {
		return nil, utils.NewValidationError("generate route first")
	}

	if pad == 0 {
		pad = utils.DefaultPOIPadding
	}

	box, err := maps.BoundingBox(trip.Route.Geometry, pad)
	if err != nil {
		return nil, utils.NewValidationError("generate route first")
	}

	pois, err := s.pois.SearchBox(ctx, box)
	if err != nil {
		return nil, &utils.UpstreamError{Service: "poi search", Err: err}
	}

	return pois, nil
}

// SaveItinerary persists the ordered stop list verbatim.
func (s *PlannerService) SaveItinerary(ctx context.Context, tripID, userID primitive.ObjectID, items []models.ItineraryItem) error {
	if items == nil {
		items = []models.ItineraryItem{}
	}
	return s.trips.UpdateItinerary(ctx, tripID, userID, items)
}

// Estimate computes the itemized cost breakdown. Request overrides win over
// stored preferences; both go through the estimator's coercion rules.
func (s *PlannerService) Estimate(ctx context.Context, tripID, userID primitive.ObjectID, req *models.EstimateRequest) (*models.CostBreakdown, error) {
	trip, err := s.trips.GetByOwner(ctx, tripID, userID)
	if err != nil {
		return nil, err
	}

	vehicle := req.VehicleType
	if vehicle == "" {
		vehicle = trip.Preferences.VehicleType
	}
	if vehicle == "" {
		vehicle = utils.DefaultVehicleType
	}

	passengers := req.Passengers
	if passengers == 0 {
		passengers = trip.Preferences.Passengers
	}
	if passengers == 0 {
		passengers = utils.DefaultPassengers
	}

	bufferPct := req.BufferPct
	if bufferPct == 0 {
		bufferPct = trip.Preferences.BufferPct
	}
	if bufferPct == 0 {
		bufferPct = utils.DefaultBufferPct
	}

	var distanceM float64
	if trip.Route != nil {
		distanceM = trip.Route.DistanceM
	}

	breakdown := EstimateTripCost(distanceM, trip.Itinerary, vehicle, passengers, bufferPct)
	return &breakdown, nil
}

// Geocode resolves a place name through the configured provider.
func (s *PlannerService) Geocode(ctx context.Context, query string) ([]maps.GeocodeResult, error) {
	if query == "" {
		return nil, utils.NewValidationError("query required")
	}
	if s.geocoder == nil {
		return nil, &utils.UnavailableError{Capability: "geocoding", Reason: "no provider configured"}
	}

	results, err := s.geocoder.Geocode(ctx, query)
	if err != nil {
		return nil, &utils.UpstreamError{Service: "geocoding", Err: err}
	}

	return results, nil
}

func coalesce(override, stored float64) float64 {
	if override != 0 {
		return override
	}
	return stored
}
