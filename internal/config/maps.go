package config

type MapsConfig struct {
	OSRM       *OSRMConfig       `yaml:"osrm"`
	Overpass   *OverpassConfig   `yaml:"overpass"`
	GoogleMaps *GoogleMapsConfig `yaml:"google_maps"`
}

type OSRMConfig struct {
	BaseURL string `yaml:"base_url"`
}

type OverpassConfig struct {
	BaseURL string `yaml:"base_url"`
}

type GoogleMapsConfig struct {
	APIKey string `yaml:"api_key"`
}

func loadMapsConfig() *MapsConfig {
	return &MapsConfig{
		OSRM: &OSRMConfig{
			BaseURL: getEnv("OSRM_BASE_URL", "https://router.project-osrm.org"),
		},
		Overpass: &OverpassConfig{
			BaseURL: getEnv("OVERPASS_BASE_URL", "https://overpass-api.de/api/interpreter"),
		},
		GoogleMaps: &GoogleMapsConfig{
			APIKey: getEnv("GOOGLE_MAPS_API_KEY", ""),
		},
	}
}
