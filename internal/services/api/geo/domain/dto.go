// Package domain holds DTOs for geo http and service contracts
package domain

// Stats summarizes the geography dictionary
type Stats struct {
	TotalRegions   int `json:"total_regions" example:"8"`
	TotalProvinces int `json:"total_provinces" example:"63"`
	DataPoints     int `json:"data_points" example:"112"`
}

// Atlas is the combined geography dictionary across all content domains
type Atlas struct {
	Regions           []string            `json:"regions"`
	Provinces         []string            `json:"provinces"`
	RegionProvinceMap map[string][]string `json:"region_province_map"`
	Statistics        Stats               `json:"statistics"`
}
