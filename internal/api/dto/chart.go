package dto

// ChartRequest is the JSON body of POST /api/charts. Date/time fields
// are strings on purpose: parsing and range checking belong to the
// validation service, which reports domain-specific messages.
type ChartRequest struct {
	Name     string `json:"name"`
	Year     string `json:"year" validate:"required"`
	Month    string `json:"month" validate:"required"`
	Day      string `json:"day" validate:"required"`
	Hour     string `json:"hour" validate:"required"`
	Minute   string `json:"minute" validate:"required"`
	District string `json:"district" validate:"required"`
	State    string `json:"state" validate:"required"`
	Country  string `json:"country" validate:"required"`
}

// ChartResponse mirrors the calculation result across the HTTP boundary.
type ChartResponse struct {
	Success     bool     `json:"success"`
	Positions   []string `json:"positions,omitempty"`
	Location    string   `json:"location,omitempty"`
	Coordinates string   `json:"coordinates,omitempty"`
	Error       string   `json:"error,omitempty"`
}
