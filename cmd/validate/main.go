// Command validate checks SDS spreadsheet files against the canonical schema
// before they are published to the dashboard: required columns, date quality,
// and coordinate-table coverage of the municipality names.
//
// Usage:
//
//	go run ./cmd/validate -data-dir dados [-dataset mvi]
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sort"

	"github.com/filipe4ndrade/dados-sds-provisorios/internal/dataset"
	"github.com/filipe4ndrade/dados-sds-provisorios/internal/domain"
	"github.com/filipe4ndrade/dados-sds-provisorios/internal/geo"
)

func main() {
	dataDir := flag.String("data-dir", "dados", "directory containing dataset XLSX files")
	only := flag.String("dataset", "", "validate a single dataset id (default: all)")
	flag.Parse()

	var failed bool
	for _, d := range dataset.Catalog() {
		if *only != "" && d.ID != *only {
			continue
		}
		if err := validate(*dataDir, d); err != nil {
			log.Printf("%s: FAILED: %v", d.ID, err)
			failed = true
		}
	}
	if failed {
		os.Exit(1)
	}
}

func validate(dataDir string, d dataset.Descriptor) error {
	records, err := dataset.Load(filepath.Join(dataDir, d.File), d)
	if err != nil {
		return err
	}

	var noDate, noMunicipality, zeroTotal int
	unknown := make(map[string]int)

	for i := range records {
		r := &records[i]
		if r.Year == 0 {
			noDate++
		}
		if r.Municipality == "" {
			noMunicipality++
			continue
		}
		if r.Total == 0 {
			zeroTotal++
		}
		if _, ok := geo.Municipalities.Lookup(r.Municipality); !ok {
			unknown[domain.NormalizeMunicipality(r.Municipality)]++
		}
	}

	fmt.Printf("=== %s (%d records) ===\n", d.ID, len(records))
	fmt.Printf("  rows without a usable date/year: %d\n", noDate)
	fmt.Printf("  rows without a municipality:     %d\n", noMunicipality)
	fmt.Printf("  rows with a zero total:          %d\n", zeroTotal)

	if len(unknown) > 0 {
		fmt.Printf("  municipalities missing from the coordinate table (%d):\n", len(unknown))
		for _, name := range sortedKeys(unknown) {
			fmt.Printf("    %-32s %d rows\n", name, unknown[name])
		}
	}
	return nil
}

func sortedKeys(m map[string]int) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	// Most affected names first so the worst gaps lead the report.
	sort.Slice(keys, func(i, j int) bool {
		if m[keys[i]] != m[keys[j]] {
			return m[keys[i]] > m[keys[j]]
		}
		return keys[i] < keys[j]
	})
	return keys
}
