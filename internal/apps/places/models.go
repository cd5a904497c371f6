package places

import "github.com/ahmetcoskunkizilkaya/profilehub/internal/geocode"

type ReverseResponse struct {
	Latitude  float64          `json:"latitude"`
	Longitude float64          `json:"longitude"`
	Results   []geocode.Result `json:"results"`
	MapURL    string           `json:"map_url"`
}
