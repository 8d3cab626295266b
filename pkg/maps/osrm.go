package maps

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

const DefaultOSRMBaseURL = "https://router.project-osrm.org"

// OSRMProvider fetches driving directions from an OSRM routing server.
// A single timed call per invocation, no retries.
type OSRMProvider struct {
	baseURL    string
	httpClient *http.Client
}

func NewOSRMProvider(baseURL string) *OSRMProvider {
	if baseURL == "" {
		baseURL = DefaultOSRMBaseURL
	}
	return &OSRMProvider{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: 25 * time.Second},
	}
}

func (o *OSRMProvider) GetRoute(ctx context.Context, start, dest Location) (*RouteResult, error) {
	apiURL := fmt.Sprintf("%s/route/v1/driving/%f,%f;%f,%f?overview=full&geometries=geojson&steps=false",
		o.baseURL, start.Longitude, start.Latitude, dest.Longitude, dest.Latitude)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, apiURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := o.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("OSRM API error: status %d: %s", resp.StatusCode, string(body))
	}

	var osrmResp struct {
		Routes []struct {
			Distance float64 `json:"distance"`
			Duration float64 `json:"duration"`
			Geometry struct {
				Coordinates [][]float64 `json:"coordinates"`
			} `json:"geometry"`
		} `json:"routes"`
	}

	if err := json.Unmarshal(body, &osrmResp); err != nil {
		return nil, fmt.Errorf("failed to unmarshal response: %w", err)
	}

	if len(osrmResp.Routes) == 0 {
		return nil, fmt.Errorf("no route between %f,%f and %f,%f",
			start.Latitude, start.Longitude, dest.Latitude, dest.Longitude)
	}

	rt := osrmResp.Routes[0]
	return &RouteResult{
		DistanceM: rt.Distance,
		DurationS: rt.Duration,
		Geometry:  rt.Geometry.Coordinates,
	}, nil
}
