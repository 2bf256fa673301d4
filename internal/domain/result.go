package domain

// ChartResult is the single value returned across the system boundary.
// A failed computation is reported here, never as an escaped error.
type ChartResult struct {
	Success     bool     `json:"success"`
	Positions   []string `json:"positions,omitempty"`
	Location    string   `json:"location,omitempty"`
	Coordinates string   `json:"coordinates,omitempty"`
	Error       string   `json:"error,omitempty"`
}

// Failure builds an unsuccessful result with the given error text.
func Failure(msg string) ChartResult {
	return ChartResult{Success: false, Error: msg}
}
