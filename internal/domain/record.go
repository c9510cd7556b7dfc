package domain

import "time"

// Geo is a WGS84 coordinate pair.
type Geo struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// Record is the canonical shape every SDS dataset is mapped onto. Datasets
// differ in which columns they publish; fields a dataset lacks stay at their
// zero value (or nil for Age). Total is the victim count the row contributes,
// never the row count.
type Record struct {
	Date  time.Time `json:"date,omitempty"`
	Year  int       `json:"year,omitempty"`
	Month int       `json:"month,omitempty"`
	Day   int       `json:"day,omitempty"`

	Municipality string `json:"municipality"`
	Region       string `json:"region,omitempty"`

	Sex     string `json:"sex,omitempty"`
	Age     *int   `json:"age,omitempty"`
	AgeBand string `json:"age_band,omitempty"`
	Nature  string `json:"nature,omitempty"`

	Total int `json:"total"`
}
