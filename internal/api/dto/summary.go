package dto

// SummaryRequest carries route records for summarization when the
// client posts JSON instead of plain text lines.
type SummaryRequest struct {
	Routes []string `json:"routes"`
}

// RouteInfo is a normalized route in API responses.
type RouteInfo struct {
	Route        string `json:"route"`
	Address      string `json:"address"`
	PrefixLength int    `json:"prefixLength"`
	Country      string `json:"country,omitempty"`
}

// SummaryResponse pairs the normalized member routes with their
// covering supernet.
type SummaryResponse struct {
	Routes  []RouteInfo `json:"routes"`
	Summary RouteInfo   `json:"summary"`
}
