package dto

type DistrictDTO struct {
	Code      string   `json:"code"`
	Name      string   `json:"name"`
	CenterLat *float64 `json:"center_lat"`
	CenterLon *float64 `json:"center_lon"`
}

// CityDTO is one city-level centroid averaged over the legal-dong rows
// beneath it. Key is stable for client-side selection state.
type CityDTO struct {
	City string  `json:"city"`
	Lat  float64 `json:"lat"`
	Lon  float64 `json:"lon"`
	Key  string  `json:"key"`
}

type ProvinceDTO struct {
	Province string  `json:"province"`
	Lat      float64 `json:"lat"`
	Lon      float64 `json:"lon"`
}
