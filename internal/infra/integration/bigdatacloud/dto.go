package bigdatacloud

type reverseGeocodeResponse struct {
	Latitude    float64 `json:"latitude"`
	Longitude   float64 `json:"longitude"`
	CountryCode string  `json:"countryCode"`
	CountryName string  `json:"countryName"`
	City        string  `json:"city"`
	Locality    string  `json:"locality"`
}
