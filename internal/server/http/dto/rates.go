package dto

// RatesResponse carries USD based rates or, on failure, the static fallback.
type RatesResponse struct {
	Success       bool               `json:"success"`
	Rates         map[string]float64 `json:"rates,omitempty"`
	Error         string             `json:"error,omitempty"`
	FallbackRates map[string]float64 `json:"fallback_rates,omitempty"`
}
