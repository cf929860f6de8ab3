package models

// HealthResponse is the payload of the health-check endpoint.
type HealthResponse struct {
	Status    string `json:"status"`
	Message   string `json:"message"`
	Timestamp string `json:"timestamp"`
}

// APIInfoResponse is the static capability listing served at the root.
type APIInfoResponse struct {
	Message   string   `json:"message"`
	Version   string   `json:"version"`
	Endpoints []string `json:"endpoints"`
}

// ErrorResponse is the structured body produced by the terminal error
// responder. Error and Detail are populated only outside production mode;
// clients in production receive the generic Message alone.
type ErrorResponse struct {
	Message string `json:"message"`
	Error   string `json:"error,omitempty"`
	Detail  string `json:"detail,omitempty"`
}

// NotFoundResponse is the structured body for unmatched routes. It echoes
// the offending request and lists the endpoint families the API does serve.
type NotFoundResponse struct {
	Message            string   `json:"message"`
	Method             string   `json:"method"`
	Path               string   `json:"path"`
	AvailableEndpoints []string `json:"available_endpoints"`
}

// RateLimitResponse is the advisory body returned with HTTP 429.
type RateLimitResponse struct {
	Message string `json:"message"`
}

// Snapshot is the export/import exchange format: a full dump of the
// registry-backed resources as plain JSON.
type Snapshot struct {
	Participants []Participant `json:"participants"`
	Programs     []Program     `json:"programs"`
	Staff        []StaffMember `json:"staff"`
}

// ImportResult reports how many records an import merged per resource.
type ImportResult struct {
	Participants int `json:"participants"`
	Programs     int `json:"programs"`
	Staff        int `json:"staff"`
}
