package config

type MediaConfig struct {
	Provider  string `yaml:"provider"`
	FrameRate int    `yaml:"frame_rate"`
}

func loadMediaConfig() *MediaConfig {
	return &MediaConfig{
		Provider:  getEnv("MEDIA_PROVIDER", "ffmpeg"),
		FrameRate: getEnvAsInt("MEDIA_FRAME_RATE", 24),
	}
}
