package model

import "time"

// BaseCurrency is the currency every stored rate is quoted against.
const BaseCurrency = "USD"

// RateMode selects how the rate cache answers a request.
type RateMode string

const (
	RateModeGet    RateMode = "get"
	RateModeUpdate RateMode = "update"
)

// ExchangeRate is a persisted conversion rate from BaseCurrency to TargetCurrency.
type ExchangeRate struct {
	BaseCurrency   string
	TargetCurrency string
	Rate           float64
	LastUpdated    time.Time
}

// Rates maps a currency code to the number of its units per one USD.
type Rates map[string]float64

// TrackedCurrencies lists currencies refreshed from the FX provider.
var TrackedCurrencies = []string{"INR", "AUD", "EUR", "GBP", "CAD"}

// DefaultRates holds static fallbacks used when the provider omits a currency.
var DefaultRates = Rates{
	"INR": 83.25,
	"AUD": 1.52,
	"EUR": 0.92,
	"GBP": 0.79,
	"CAD": 1.36,
}

// FallbackRates returns the static mapping served when the rate cache fails.
func FallbackRates() Rates {
	rates := Rates{BaseCurrency: 1}
	for code, rate := range DefaultRates {
		rates[code] = rate
	}
	return rates
}
