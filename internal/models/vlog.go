package models

// VlogPrompt is one filming suggestion for a phase of the travel day.
type VlogPrompt struct {
	Phase  string `json:"phase"`
	Prompt string `json:"prompt"`
}

type PromptsResponse struct {
	Template string       `json:"template"`
	Prompts  []VlogPrompt `json:"prompts"`
}

type RenderRequest struct {
	Day             int     `json:"day"`
	SecondsPerImage float64 `json:"seconds_per_image"`
}

type RenderResponse struct {
	Video string `json:"video"`
}
