package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Visibility values
const (
	VisibilityPrivate = "private"
	VisibilityPublic  = "public"
)

// Vehicle types for cost estimation
const (
	VehicleTypeEV     = "ev"
	VehicleTypePetrol = "petrol"
)

// Trip accumulates planning state across sequential calls: route fetch, POI
// curation, cost estimation, publishing.
type Trip struct {
	ID          primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	UserID      primitive.ObjectID `json:"user_id" bson:"user_id"`
	Name        string             `json:"name" bson:"name"`
	Start       string             `json:"start" bson:"start"`
	Dest        string             `json:"dest" bson:"dest"`
	StartLat    float64            `json:"start_lat,omitempty" bson:"start_lat,omitempty"`
	StartLon    float64            `json:"start_lon,omitempty" bson:"start_lon,omitempty"`
	DestLat     float64            `json:"dest_lat,omitempty" bson:"dest_lat,omitempty"`
	DestLon     float64            `json:"dest_lon,omitempty" bson:"dest_lon,omitempty"`
	Preferences TripPreferences    `json:"preferences" bson:"preferences"`
	Food        map[string]string  `json:"food" bson:"food"`
	Route       *RouteSnapshot     `json:"route,omitempty" bson:"route,omitempty"`
	Itinerary   []ItineraryItem    `json:"itinerary" bson:"itinerary"`
	Published   bool               `json:"published" bson:"published"`
	Visibility  string             `json:"visibility" bson:"visibility"`
	CreatedAt   time.Time          `json:"created_at" bson:"created_at"`
}

type TripPreferences struct {
	VehicleType string `json:"vehicle_type,omitempty" bson:"vehicle_type,omitempty"`
	Passengers  int    `json:"passengers,omitempty" bson:"passengers,omitempty"`
	BufferPct   int    `json:"buffer_pct,omitempty" bson:"buffer_pct,omitempty"`
}

// RouteSnapshot caches the most recent directions result. Geometry is the raw
// longitude-first coordinate sequence from the routing service. Overwritten
// wholesale on refetch.
type RouteSnapshot struct {
	DistanceM float64     `json:"distance_m" bson:"distance_m"`
	DurationS float64     `json:"duration_s" bson:"duration_s"`
	Geometry  [][]float64 `json:"geometry" bson:"geometry"`
}

// ItineraryItem is one planned stop. Sequence order is travel order and is
// preserved verbatim through save/load.
type ItineraryItem struct {
	ID   string            `json:"id" bson:"id"`
	Type string            `json:"type" bson:"type"`
	Name string            `json:"name" bson:"name"`
	Lat  float64           `json:"lat" bson:"lat"`
	Lon  float64           `json:"lon" bson:"lon"`
	Tags map[string]string `json:"tags,omitempty" bson:"tags,omitempty"`
}

// Itinerary item types
const (
	ItineraryTypeFuel        = "fuel"
	ItineraryTypeEV          = "ev"
	ItineraryTypeFood        = "food"
	ItineraryTypeAttractions = "attractions"
	ItineraryTypeOther       = "other"
)

// TripSummary is the listing shape for own-trips and the public feed.
type TripSummary struct {
	ID    primitive.ObjectID `json:"id"`
	Name  string             `json:"name"`
	Start string             `json:"start"`
	Dest  string             `json:"dest"`
}

type CreateTripRequest struct {
	Name        string            `json:"name"`
	Start       string            `json:"start" binding:"required"`
	Dest        string            `json:"dest" binding:"required"`
	StartLat    float64           `json:"start_lat"`
	StartLon    float64           `json:"start_lon"`
	DestLat     float64           `json:"dest_lat"`
	DestLon     float64           `json:"dest_lon"`
	Preferences TripPreferences   `json:"preferences"`
	Food        map[string]string `json:"food"`
}

type RouteRequest struct {
	StartLat float64 `json:"start_lat"`
	StartLon float64 `json:"start_lon"`
	DestLat  float64 `json:"dest_lat"`
	DestLon  float64 `json:"dest_lon"`
}

type POIRequest struct {
	Pad float64 `json:"pad"`
}

type ItineraryRequest struct {
	Itinerary []ItineraryItem `json:"itinerary"`
}

// EstimateRequest overrides stored trip preferences per call. Zero values fall
// back to preferences, then to defaults.
type EstimateRequest struct {
	VehicleType string `json:"vehicle_type"`
	Passengers  int    `json:"passengers"`
	BufferPct   int    `json:"buffer_pct"`
}

func (t *Trip) Summary() TripSummary {
	return TripSummary{ID: t.ID, Name: t.Name, Start: t.Start, Dest: t.Dest}
}
