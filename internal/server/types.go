package server

// ErrorResponse is the body of every non-2xx response.
type ErrorResponse struct {
	// Explanation is a short human-readable summary.
	Explanation string `json:"explanation"`
	// Detail carries the underlying error text.
	Detail string `json:"detail"`
	// RequestID correlates the response with server logs.
	RequestID string `json:"request_id,omitempty"`
}

// LoadGraphRequest names a graph file on the server's filesystem.
type LoadGraphRequest struct {
	FileName string `json:"file_name"`
}

// FindPathRequest is the body of POST /find-path.
type FindPathRequest struct {
	Source      string `json:"source" binding:"required"`
	Destination string `json:"destination" binding:"required"`

	// Annex holds extra edges for this query only; they shadow served edges
	// for the same ordered pair.
	Annex map[string]map[string]float64 `json:"annex,omitempty"`

	// TurnPenalty overrides the server default when present. Zero disables it.
	TurnPenalty *float64 `json:"turn_penalty,omitempty"`
}

// PathResponse is the body of a successful POST /find-path.
type PathResponse struct {
	Nodes   []string  `json:"nodes"`
	Weights []float64 `json:"weights"`
	Costs   []float64 `json:"costs"`
	Total   float64   `json:"total"`
}

// EdgeResponse is the body of GET /get-edge/:u/:v.
type EdgeResponse struct {
	From   string  `json:"u"`
	To     string  `json:"v"`
	Weight float64 `json:"weight"`
}

// HealthResponse is the body of GET /healthz.
type HealthResponse struct {
	Status string `json:"status"`
}
