package domain

import (
	"sort"
	"strconv"
	"strings"
	"time"
)

// Summary holds the headline indicators shown as metric cards.
type Summary struct {
	Records        int      `json:"records"`
	TotalCases     int      `json:"total_cases"`
	AnnualAverage  float64  `json:"annual_average"`
	Municipalities int      `json:"municipalities"`
	MeanAge        *float64 `json:"mean_age,omitempty"`
	PctMale        *float64 `json:"pct_male,omitempty"`
}

// Summarize computes the headline indicators over a record set. MeanAge and
// PctMale are nil when the dataset carries no age or sex information.
func Summarize(records []Record) Summary {
	s := Summary{Records: len(records)}

	years := make(map[int]int)
	municipalities := make(map[string]struct{})
	var ageSum, ageCount int
	var maleRows, sexedRows int

	for i := range records {
		r := &records[i]
		s.TotalCases += r.Total
		if r.Year > 0 {
			years[r.Year] += r.Total
		}
		if r.Municipality != "" {
			municipalities[r.Municipality] = struct{}{}
		}
		if r.Age != nil {
			ageSum += *r.Age
			ageCount++
		}
		if r.Sex != "" {
			sexedRows++
			if strings.Contains(strings.ToUpper(r.Sex), "MASC") {
				maleRows++
			}
		}
	}

	s.Municipalities = len(municipalities)
	if len(years) > 0 {
		var total int
		for _, t := range years {
			total += t
		}
		s.AnnualAverage = float64(total) / float64(len(years))
	}
	if ageCount > 0 {
		mean := float64(ageSum) / float64(ageCount)
		s.MeanAge = &mean
	}
	if sexedRows > 0 {
		pct := float64(maleRows) / float64(sexedRows) * 100
		s.PctMale = &pct
	}
	return s
}

// MunicipalityStats is one row of the municipality ranking table.
type MunicipalityStats struct {
	Municipality string   `json:"municipality"`
	Total        int      `json:"total"`
	MeanAge      *float64 `json:"mean_age,omitempty"`
}

// MunicipalityRanking aggregates totals and mean victim age per municipality,
// ordered by total descending (ties by name) and truncated to n.
func MunicipalityRanking(records []Record, n int) []MunicipalityStats {
	type acc struct {
		total    int
		ageSum   int
		ageCount int
	}
	byName := make(map[string]*acc)
	for i := range records {
		r := &records[i]
		a := byName[r.Municipality]
		if a == nil {
			a = &acc{}
			byName[r.Municipality] = a
		}
		a.total += r.Total
		if r.Age != nil {
			a.ageSum += *r.Age
			a.ageCount++
		}
	}

	out := make([]MunicipalityStats, 0, len(byName))
	for name, a := range byName {
		row := MunicipalityStats{Municipality: name, Total: a.total}
		if a.ageCount > 0 {
			mean := float64(a.ageSum) / float64(a.ageCount)
			row.MeanAge = &mean
		}
		out = append(out, row)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Total != out[j].Total {
			return out[i].Total > out[j].Total
		}
		return out[i].Municipality < out[j].Municipality
	})
	if n > 0 && len(out) > n {
		out = out[:n]
	}
	return out
}

// RegionStat summarizes one geographic region.
type RegionStat struct {
	Region         string   `json:"region"`
	Total          int      `json:"total"`
	Municipalities int      `json:"municipalities"`
	MeanAge        *float64 `json:"mean_age,omitempty"`
}

// RegionStats aggregates per region, ordered by total descending.
func RegionStats(records []Record) []RegionStat {
	type acc struct {
		total          int
		ageSum         int
		ageCount       int
		municipalities map[string]struct{}
	}
	byRegion := make(map[string]*acc)
	for i := range records {
		r := &records[i]
		a := byRegion[r.Region]
		if a == nil {
			a = &acc{municipalities: make(map[string]struct{})}
			byRegion[r.Region] = a
		}
		a.total += r.Total
		a.municipalities[r.Municipality] = struct{}{}
		if r.Age != nil {
			a.ageSum += *r.Age
			a.ageCount++
		}
	}

	out := make([]RegionStat, 0, len(byRegion))
	for region, a := range byRegion {
		row := RegionStat{Region: region, Total: a.total, Municipalities: len(a.municipalities)}
		if a.ageCount > 0 {
			mean := float64(a.ageSum) / float64(a.ageCount)
			row.MeanAge = &mean
		}
		out = append(out, row)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Total != out[j].Total {
			return out[i].Total > out[j].Total
		}
		return out[i].Region < out[j].Region
	})
	return out
}

// SeriesPoint is one point of a temporal series.
type SeriesPoint struct {
	Key   int    `json:"key"`   // year, or month number
	Label string `json:"label"` // "2023", or "Jan"
	Total int    `json:"total"`
}

// SeriesByYear sums totals per year in ascending year order.
func SeriesByYear(records []Record) []SeriesPoint {
	sums := make(map[int]int)
	for i := range records {
		if records[i].Year > 0 {
			sums[records[i].Year] += records[i].Total
		}
	}
	out := make([]SeriesPoint, 0, len(sums))
	for year, total := range sums {
		out = append(out, SeriesPoint{Key: year, Label: strconv.Itoa(year), Total: total})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Key < out[j].Key })
	return out
}

// SeriesByMonth sums totals per calendar month, January through December.
// Records without a known month are omitted.
func SeriesByMonth(records []Record) []SeriesPoint {
	var sums [13]int
	for i := range records {
		if m := records[i].Month; m >= 1 && m <= 12 {
			sums[m] += records[i].Total
		}
	}
	out := make([]SeriesPoint, 0, 12)
	for m := 1; m <= 12; m++ {
		out = append(out, SeriesPoint{Key: m, Label: monthAbbr(m), Total: sums[m]})
	}
	return out
}

// GridRow is one year row of the year-by-month heat-map matrix.
type GridRow struct {
	Year   int     `json:"year"`
	Months [12]int `json:"months"`
}

// YearMonthGrid builds the year-by-month matrix used for the temporal heat
// map, years ascending. Cells with no data are zero.
func YearMonthGrid(records []Record) []GridRow {
	byYear := make(map[int]*GridRow)
	for i := range records {
		r := &records[i]
		if r.Year <= 0 || r.Month < 1 || r.Month > 12 {
			continue
		}
		row := byYear[r.Year]
		if row == nil {
			row = &GridRow{Year: r.Year}
			byYear[r.Year] = row
		}
		row.Months[r.Month-1] += r.Total
	}
	out := make([]GridRow, 0, len(byYear))
	for _, row := range byYear {
		out = append(out, *row)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Year < out[j].Year })
	return out
}

// CategoryTotal is one slice of a categorical breakdown.
type CategoryTotal struct {
	Category string `json:"category"`
	Total    int    `json:"total"`
}

// Dimension selects the categorical column for TotalsBy.
type Dimension string

const (
	ByRegion  Dimension = "region"
	ByNature  Dimension = "nature"
	BySex     Dimension = "sex"
	ByAgeBand Dimension = "age_band"
)

// TotalsBy sums totals per category of the given dimension, ordered total
// descending (ties by category name). Age-band breakdowns keep the fixed band
// order instead. Empty categories are reported as "NÃO INFORMADO".
func TotalsBy(records []Record, dim Dimension) []CategoryTotal {
	sums := make(map[string]int)
	for i := range records {
		r := &records[i]
		var key string
		switch dim {
		case ByRegion:
			key = r.Region
		case ByNature:
			key = r.Nature
		case BySex:
			key = r.Sex
		case ByAgeBand:
			key = r.AgeBand
		default:
			return nil
		}
		if key == "" {
			key = RegionUnknown
		}
		sums[key] += r.Total
	}

	if dim == ByAgeBand {
		out := make([]CategoryTotal, 0, len(AgeBandLabels)+1)
		for _, label := range AgeBandLabels {
			if total, ok := sums[label]; ok {
				out = append(out, CategoryTotal{Category: label, Total: total})
				delete(sums, label)
			}
		}
		for key, total := range sums {
			out = append(out, CategoryTotal{Category: key, Total: total})
		}
		return out
	}

	out := make([]CategoryTotal, 0, len(sums))
	for key, total := range sums {
		out = append(out, CategoryTotal{Category: key, Total: total})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Total != out[j].Total {
			return out[i].Total > out[j].Total
		}
		return out[i].Category < out[j].Category
	})
	return out
}

func monthAbbr(m int) string {
	return time.Month(m).String()[:3]
}
