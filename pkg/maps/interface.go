package maps

import "context"

// RouteProvider returns a driving route between two coordinates.
type RouteProvider interface {
	GetRoute(ctx context.Context, start, dest Location) (*RouteResult, error)
}

// POIProvider searches a bounding box for classified points of interest.
type POIProvider interface {
	SearchBox(ctx context.Context, box Box) ([]POI, error)
}

// Geocoder resolves a free-form place name to coordinates.
type Geocoder interface {
	Geocode(ctx context.Context, query string) ([]GeocodeResult, error)
}

type Location struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// RouteResult is the raw directions response: distance, duration and the
// geometry as longitude-first coordinate pairs, exactly as returned upstream.
type RouteResult struct {
	DistanceM float64     `json:"distance_m"`
	DurationS float64     `json:"duration_s"`
	Geometry  [][]float64 `json:"geometry"`
}

type Box struct {
	MinLat float64 `json:"min_lat"`
	MinLon float64 `json:"min_lon"`
	MaxLat float64 `json:"max_lat"`
	MaxLon float64 `json:"max_lon"`
}

type POI struct {
	ID   string            `json:"id"`
	Type string            `json:"type"`
	Name string            `json:"name"`
	Lat  float64           `json:"lat"`
	Lon  float64           `json:"lon"`
	Tags map[string]string `json:"tags"`
}

type GeocodeResult struct {
	PlaceID     string   `json:"place_id"`
	Address     string   `json:"formatted_address"`
	Coordinates Location `json:"coordinates"`
	Types       []string `json:"types"`
}

// POI type tags
const (
	POITypeFuel        = "fuel"
	POITypeEV          = "ev"
	POITypeFood        = "food"
	POITypeAttractions = "attractions"
	POITypeOther       = "other"
)
