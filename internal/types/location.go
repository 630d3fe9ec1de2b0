package types

// Place is a single reverse-geocoding candidate
type Place struct {
	City        string `json:"city"`
	District    string `json:"district,omitempty"`
	Region      string `json:"region,omitempty"`
	Country     string `json:"country,omitempty"`
	CountryCode string `json:"countryCode,omitempty"`
	DisplayName string `json:"displayName,omitempty"`
}
