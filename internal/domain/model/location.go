package model

// Location is the result of resolving a client IP address.
type Location struct {
	CountryCode string
	CountryName string
	Currency    string
	IP          string
	City        string
	Region      string
}

// FallbackLocation is served whenever geolocation fails.
func FallbackLocation(ip string) Location {
	if ip == "" {
		ip = "unknown"
	}
	return Location{
		CountryCode: "US",
		CountryName: "United States",
		Currency:    BaseCurrency,
		IP:          ip,
	}
}
