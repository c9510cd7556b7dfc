package domain

import (
	"fmt"
	"sort"
	"strconv"
	"time"
)

// StateCenter is the geographic center of Pernambuco, used when a heat map has
// no markers to anchor on.
var StateCenter = Geo{Lat: -8.0476, Lon: -35.8770}

// DefaultZoom frames the whole state.
const DefaultZoom = 7

// Tier classifies a municipality's aggregated value relative to the maximum
// value in the current result set.
type Tier string

const (
	TierVeryHigh Tier = "very_high" // ratio > 0.70
	TierHigh     Tier = "high"     // ratio > 0.40
	TierMedium   Tier = "medium"   // ratio > 0.20
	TierLow      Tier = "low"      // everything else
)

// tierColors maps each tier to its marker color, darkest first.
var tierColors = map[Tier]string{
	TierVeryHigh: "#8B0000",
	TierHigh:     "#DC143C",
	TierMedium:   "#FF6347",
	TierLow:      "#FFA07A",
}

// Marker is one weighted circle on the map.
type Marker struct {
	Municipality string  `json:"municipality"`
	Geo          Geo     `json:"geo"`
	Value        int     `json:"value"`
	Ratio        float64 `json:"ratio"`  // value / max value among kept groups
	Radius       float64 `json:"radius"` // meters
	Tier         Tier    `json:"tier"`
	Color        string  `json:"color"`
	Tooltip      string  `json:"tooltip"` // persistent label
	Detail       string  `json:"detail"`  // click-revealed label
}

// LegendEntry describes one intensity tier in the fixed legend.
type LegendEntry struct {
	Tier  Tier   `json:"tier"`
	Color string `json:"color"`
	Label string `json:"label"`
}

// MapScene is the renderable output of the heat-map aggregator: an ordered
// marker list plus a static legend. Any map library that can draw weighted
// circles and an overlay can display it.
type MapScene struct {
	Center      Geo           `json:"center"`
	Zoom        int           `json:"zoom"`
	Markers     []Marker      `json:"markers"`
	Legend      []LegendEntry `json:"legend"`
	GeneratedAt time.Time     `json:"generated_at"`
}

// CoordinateLookup resolves a normalized municipality name to a coordinate.
type CoordinateLookup interface {
	Lookup(name string) (Geo, bool)
}

// HeatMapOptions control the heat-map aggregation. Zero Year/Month mean no
// filter; TopN must be positive.
type HeatMapOptions struct {
	Year  int
	Month int
	TopN  int
}

// legend is identical for every scene regardless of which tiers are present.
var legend = []LegendEntry{
	{Tier: TierVeryHigh, Color: tierColors[TierVeryHigh], Label: "Muito Alta (>70%)"},
	{Tier: TierHigh, Color: tierColors[TierHigh], Label: "Alta (40-70%)"},
	{Tier: TierMedium, Color: tierColors[TierMedium], Label: "Média (20-40%)"},
	{Tier: TierLow, Color: tierColors[TierLow], Label: "Baixa (<20%)"},
}

// Legend returns the static intensity legend.
func Legend() []LegendEntry {
	out := make([]LegendEntry, len(legend))
	copy(out, legend)
	return out
}

// TierFor classifies a value ratio. Boundaries are exclusive-lower: a ratio of
// exactly 0.70 is "high", not "very_high".
func TierFor(ratio float64) Tier {
	switch {
	case ratio > 0.70:
		return TierVeryHigh
	case ratio > 0.40:
		return TierHigh
	case ratio > 0.20:
		return TierMedium
	default:
		return TierLow
	}
}

// RenderHeatMap aggregates records by municipality and produces a MapScene.
//
// Optional year/month filters are applied first, then records are grouped by
// municipality summing totals, ranked descending (ties broken by name), and
// truncated to TopN. The maximum is taken over all kept groups before
// coordinate resolution, so a group whose municipality is absent from the
// lookup still shapes the relative scale of the others even though it gets no
// marker. The input slice is never mutated.
func RenderHeatMap(records []Record, lookup CoordinateLookup, opts HeatMapOptions) MapScene {
	scene := MapScene{
		Center:      StateCenter,
		Zoom:        DefaultZoom,
		Legend:      Legend(),
		GeneratedAt: clock.Now(),
	}

	groups := TopMunicipalities(records, Filter{YearFrom: opts.Year, YearTo: opts.Year, Months: monthFilter(opts.Month)}, opts.TopN)
	if len(groups) == 0 {
		return scene
	}

	maxValue := groups[0].Total
	for _, g := range groups[1:] {
		if g.Total > maxValue {
			maxValue = g.Total
		}
	}
	if maxValue <= 0 {
		// Cannot happen with non-negative counts, but guards the division below.
		return scene
	}

	for _, g := range groups {
		geo, ok := lookup.Lookup(NormalizeMunicipality(g.Municipality))
		if !ok {
			continue
		}

		ratio := float64(g.Total) / float64(maxValue)
		tier := TierFor(ratio)
		scene.Markers = append(scene.Markers, Marker{
			Municipality: g.Municipality,
			Geo:          geo,
			Value:        g.Total,
			Ratio:        ratio,
			Radius:       ratio*30000 + 5000,
			Tier:         tier,
			Color:        tierColors[tier],
			Tooltip:      fmt.Sprintf("%s: %s", g.Municipality, groupDigits(g.Total)),
			Detail:       fmt.Sprintf("%s, total: %s", g.Municipality, groupDigits(g.Total)),
		})
	}

	return scene
}

// MunicipalityTotal is one (municipality, summed value) group.
type MunicipalityTotal struct {
	Municipality string `json:"municipality"`
	Total        int    `json:"total"`
}

// TopMunicipalities filters, groups by municipality summing totals, and
// returns up to n groups ordered by total descending. Ties are broken by
// municipality name ascending so the ranking is deterministic. Groups whose
// sum is not positive are dropped.
func TopMunicipalities(records []Record, f Filter, n int) []MunicipalityTotal {
	sums := make(map[string]int)
	for i := range records {
		if !f.Matches(&records[i]) {
			continue
		}
		sums[records[i].Municipality] += records[i].Total
	}

	groups := make([]MunicipalityTotal, 0, len(sums))
	for name, total := range sums {
		if total <= 0 {
			continue
		}
		groups = append(groups, MunicipalityTotal{Municipality: name, Total: total})
	}

	sort.Slice(groups, func(i, j int) bool {
		if groups[i].Total != groups[j].Total {
			return groups[i].Total > groups[j].Total
		}
		return groups[i].Municipality < groups[j].Municipality
	})

	if n > 0 && len(groups) > n {
		groups = groups[:n]
	}
	return groups
}

func monthFilter(month int) []int {
	if month == 0 {
		return nil
	}
	return []int{month}
}

// groupDigits formats n with comma thousand separators, e.g. 85240 -> "85,240".
func groupDigits(n int) string {
	s := strconv.Itoa(n)
	neg := false
	if s[0] == '-' {
		neg = true
		s = s[1:]
	}
	for i := len(s) - 3; i > 0; i -= 3 {
		s = s[:i] + "," + s[i:]
	}
	if neg {
		return "-" + s
	}
	return s
}
