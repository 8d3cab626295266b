package maps

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const DefaultOverpassBaseURL = "https://overpass-api.de/api/interpreter"

const maxPOIResults = 200
const maxPOINameLength = 140

// OverpassProvider queries an Overpass map-feature server for fuel stations,
// EV chargers, cafes/restaurants and tourism features inside a bounding box.
type OverpassProvider struct {
	baseURL    string
	httpClient *http.Client
}

func NewOverpassProvider(baseURL string) *OverpassProvider {
	if baseURL == "" {
		baseURL = DefaultOverpassBaseURL
	}
	return &OverpassProvider{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: 40 * time.Second},
	}
}

func (p *OverpassProvider) SearchBox(ctx context.Context, box Box) ([]POI, error) {
	query := buildOverpassQuery(box)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.baseURL, strings.NewReader(query))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "text/plain; charset=utf-8")

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("Overpass API error: status %d: %s", resp.StatusCode, string(body))
	}

	var overpassResp struct {
		Elements []struct {
			Type   string  `json:"type"`
			ID     int64   `json:"id"`
			Lat    float64 `json:"lat"`
			Lon    float64 `json:"lon"`
			Center *struct {
				Lat float64 `json:"lat"`
				Lon float64 `json:"lon"`
			} `json:"center"`
			Tags map[string]string `json:"tags"`
		} `json:"elements"`
	}

	if err := json.Unmarshal(body, &overpassResp); err != nil {
		return nil, fmt.Errorf("failed to unmarshal response: %w", err)
	}

	pois := make([]POI, 0, len(overpassResp.Elements))
	for _, el := range overpassResp.Elements {
		poiType := classifyTags(el.Tags)
		if poiType == "" {
			continue
		}

		lat, lon := el.Lat, el.Lon
		// Area and way features carry a centroid instead of a direct position.
		if lat == 0 && lon == 0 && el.Center != nil {
			lat, lon = el.Center.Lat, el.Center.Lon
		}

		pois = append(pois, POI{
			ID:   fmt.Sprintf("osm:%s:%d", el.Type, el.ID),
			Type: poiType,
			Name: resolveName(el.Tags, poiType),
			Lat:  lat,
			Lon:  lon,
			Tags: el.Tags,
		})
	}

	return pois, nil
}

func buildOverpassQuery(box Box) string {
	bbox := fmt.Sprintf("(%f,%f,%f,%f)", box.MinLat, box.MinLon, box.MaxLat, box.MaxLon)
	var b strings.Builder
	b.WriteString("[out:json][timeout:25];\n(\n")
	b.WriteString(` node["amenity"="fuel"]` + bbox + ";\n")
	b.WriteString(` node["amenity"="charging_station"]` + bbox + ";\n")
	b.WriteString(` node["amenity"="cafe"]` + bbox + ";\n")
	b.WriteString(` node["amenity"="restaurant"]` + bbox + ";\n")
	b.WriteString(` node["tourism"]` + bbox + ";\n")
	b.WriteString(");\n")
	b.WriteString(fmt.Sprintf("out center %d;", maxPOIResults))
	return b.String()
}

// classifyTags maps raw feature tags to a POI type. Unrecognized features are
// dropped, not tagged "other".
func classifyTags(tags map[string]string) string {
	switch tags["amenity"] {
	case "fuel":
		return POITypeFuel
	case "charging_station":
		return POITypeEV
	case "cafe", "restaurant":
		return POITypeFood
	}
	if tags["tourism"] != "" {
		return POITypeAttractions
	}
	return ""
}

// resolveName prefers the name tag, then brand, then a synthesized label.
func resolveName(tags map[string]string, poiType string) string {
	name := strings.TrimSpace(tags["name"])
	if name == "" {
		name = strings.TrimSpace(tags["brand"])
	}
	if name == "" {
		name = titleCase(poiType) + " Spot"
	}
	if runes := []rune(name); len(runes) > maxPOINameLength {
		name = string(runes[:maxPOINameLength])
	}
	return name
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
