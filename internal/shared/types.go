package shared

import (
	"time"
)

// Coordinates is a pair of decimal-degree WGS84 coordinates.
type Coordinates struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// TokenUsage tracks the tokens consumed by a request.
type TokenUsage struct {
	PromptTokens     int
	CompletionTokens int
	TotalTokens      int
	Model            string
}

// RequestMeta holds operational metadata for a single gateway call.
type RequestMeta struct {
	Call    string
	Usage   TokenUsage
	Latency time.Duration
}
