package dto

// LocationData describes detected client location.
type LocationData struct {
	CountryCode string `json:"country_code"`
	CountryName string `json:"country_name"`
	Currency    string `json:"currency"`
	IP          string `json:"ip"`
	City        string `json:"city,omitempty"`
	Region      string `json:"region,omitempty"`
}

// LocationResponse always carries usable data, even when detection failed.
type LocationResponse struct {
	Success bool         `json:"success"`
	Data    LocationData `json:"data"`
	Error   string       `json:"error,omitempty"`
}
