package domain

import (
	"strconv"
	"strings"
	"time"
)

// RegionUnknown replaces the literal zero that SDS exports use for rows
// without a geographic region.
const RegionUnknown = "NÃO INFORMADO"

// dateLayouts are the date formats observed in SDS spreadsheet exports.
// Cells read as text can carry any of these; purely numeric cells are Excel
// serial dates handled separately.
var dateLayouts = []string{
	"2006-01-02",
	"2006-01-02 15:04:05",
	time.RFC3339,
	"02/01/2006",
	"02/01/2006 15:04:05",
	"02-01-2006",
}

// excelEpoch is day zero of the 1900 date system used by XLSX serial dates.
// It is Dec 30 (not 31) to absorb the historical Lotus 1-2-3 leap-year bug.
var excelEpoch = time.Date(1899, time.December, 30, 0, 0, 0, 0, time.UTC)

// NormalizeMunicipality uppercases and trims a municipality name so it can be
// matched against the coordinate table. Accents are preserved; the table keys
// carry them the way the SDS exports do.
func NormalizeMunicipality(name string) string {
	return strings.ToUpper(strings.TrimSpace(name))
}

// NormalizeRegion cleans the region column. SDS files encode missing regions
// as the number 0.
func NormalizeRegion(region string) string {
	region = strings.TrimSpace(region)
	if region == "" || region == "0" {
		return RegionUnknown
	}
	return region
}

// ParseDate parses a spreadsheet date cell. Text cells are tried against the
// known layouts; numeric cells are interpreted as Excel serial dates.
// Returns the zero time when the cell cannot be parsed.
func ParseDate(value string) time.Time {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}
	}

	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t
		}
	}

	if serial, err := strconv.ParseFloat(value, 64); err == nil && serial > 0 {
		return excelEpoch.AddDate(0, 0, int(serial))
	}

	return time.Time{}
}

// ageBandBounds mirrors the fixed brackets used across the analytical views.
var ageBandBounds = []struct {
	max   int
	label string
}{
	{12, "0-12"},
	{17, "13-17"},
	{24, "18-24"},
	{29, "25-29"},
	{39, "30-39"},
	{49, "40-49"},
	{59, "50-59"},
}

// AgeBandLabels lists the band labels in ascending order, for stable
// presentation of age-band breakdowns.
var AgeBandLabels = []string{"0-12", "13-17", "18-24", "25-29", "30-39", "40-49", "50-59", "60+"}

// DeriveAgeBand maps an age in years to its band label. Negative ages return
// an empty band (unparseable source value).
func DeriveAgeBand(age int) string {
	if age < 0 {
		return ""
	}
	for _, b := range ageBandBounds {
		if age <= b.max {
			return b.label
		}
	}
	return "60+"
}

// ParseCount parses a victim/case count cell. Counts arrive as integers but
// occasionally as "3.0" style floats after spreadsheet round-trips.
// Returns 0 for blank or unparseable cells.
func ParseCount(value string) int {
	value = strings.TrimSpace(value)
	if value == "" {
		return 0
	}
	if n, err := strconv.Atoi(value); err == nil {
		return n
	}
	if f, err := strconv.ParseFloat(value, 64); err == nil {
		return int(f)
	}
	return 0
}

// ParseAge parses an age cell into a pointer, nil when blank or unparseable.
func ParseAge(value string) *int {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil
	}
	f, err := strconv.ParseFloat(value, 64)
	if err != nil || f < 0 {
		return nil
	}
	age := int(f)
	return &age
}
