// Command genmock generates synthetic SDS-style XLSX fixtures for local
// development and test data. It writes one spreadsheet per cataloged dataset
// using the real column maps, then loads them back through the actual loader
// and prints aggregate stats for updating test assertions.
//
// Usage:
//
//	go run ./cmd/genmock -out dados -rows 500 -seed 42
package main

import (
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/tealeg/xlsx/v2"

	"github.com/filipe4ndrade/dados-sds-provisorios/internal/dataset"
	"github.com/filipe4ndrade/dados-sds-provisorios/internal/domain"
	"github.com/filipe4ndrade/dados-sds-provisorios/internal/geo"
)

var municipalities = []string{
	"RECIFE", "OLINDA", "JABOATÃO DOS GUARARAPES", "CARUARU", "PETROLINA",
	"PAULISTA", "CABO DE SANTO AGOSTINHO", "GARANHUNS", "VITÓRIA DE SANTO ANTÃO",
	"SERRA TALHADA", "ARARIPINA", "GOIANA", "SANTA CRUZ DO CAPIBARIBE",
	"FERNANDO DE NORONHA", // deliberately absent from the coordinate table
}

var regions = []string{
	"REGIÃO METROPOLITANA", "AGRESTE", "ZONA DA MATA", "SERTÃO", "SÃO FRANCISCO",
}

var natures = []string{
	"HOMICIDIO", "LATROCINIO", "FEMINICIDIO", "LESAO CORPORAL SEGUIDA DE MORTE",
}

var sexes = []string{"MASCULINO", "FEMININO"}

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	out := flag.String("out", "dados", "output directory for XLSX fixtures")
	rows := flag.Int("rows", 500, "data rows per dataset")
	seed := flag.Int64("seed", 42, "random seed for reproducible fixtures")
	flag.Parse()

	if err := os.MkdirAll(*out, 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}

	rng := rand.New(rand.NewSource(*seed))

	for _, d := range dataset.Catalog() {
		path := filepath.Join(*out, d.File)
		if err := writeFixture(path, d, *rows, rng); err != nil {
			return fmt.Errorf("writing %s: %w", d.ID, err)
		}

		records, err := dataset.Load(path, d)
		if err != nil {
			return fmt.Errorf("reloading %s: %w", d.ID, err)
		}
		printStats(d, records)
	}
	return nil
}

func writeFixture(path string, d dataset.Descriptor, rows int, rng *rand.Rand) error {
	f := xlsx.NewFile()
	sheet, err := f.AddSheet(d.Sheet)
	if err != nil {
		return err
	}

	header := headerFor(d)
	hr := sheet.AddRow()
	for _, h := range header {
		hr.AddCell().Value = h
	}

	start := time.Date(2015, time.January, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < rows; i++ {
		date := start.AddDate(0, 0, rng.Intn(365*10))
		values := map[string]string{
			d.Columns.Municipality: municipalities[rng.Intn(len(municipalities))],
			d.Columns.Region:       regions[rng.Intn(len(regions))],
			d.Columns.Date:         date.Format("2006-01-02"),
			d.Columns.Year:         strconv.Itoa(date.Year()),
			d.Columns.Total:        strconv.Itoa(1 + rng.Intn(3)),
		}
		if d.Columns.Sex != "" {
			values[d.Columns.Sex] = sexes[rng.Intn(len(sexes))]
		}
		if d.Columns.Age != "" {
			values[d.Columns.Age] = strconv.Itoa(rng.Intn(90))
		}
		if d.Columns.AgeBand != "" {
			values[d.Columns.AgeBand] = domain.DeriveAgeBand(rng.Intn(90))
		}
		if d.Columns.Nature != "" {
			values[d.Columns.Nature] = natures[rng.Intn(len(natures))]
		}

		row := sheet.AddRow()
		for _, h := range header {
			row.AddCell().Value = values[h]
		}
	}

	log.Printf("%s: wrote %d rows to %s", d.ID, rows, path)
	return f.Save(path)
}

// headerFor lists the dataset's mapped columns in a stable order.
func headerFor(d dataset.Descriptor) []string {
	candidates := []string{
		d.Columns.Date,
		d.Columns.Year,
		d.Columns.Municipality,
		d.Columns.Region,
		d.Columns.Sex,
		d.Columns.Age,
		d.Columns.AgeBand,
		d.Columns.Nature,
		d.Columns.Total,
	}
	header := make([]string, 0, len(candidates))
	for _, c := range candidates {
		if c != "" {
			header = append(header, c)
		}
	}
	return header
}

func printStats(d dataset.Descriptor, records []domain.Record) {
	summary := domain.Summarize(records)
	fmt.Printf("\n=== %s ===\n", d.ID)
	fmt.Printf("Records: %d, total cases: %d, municipalities: %d\n",
		summary.Records, summary.TotalCases, summary.Municipalities)

	top := domain.TopMunicipalities(records, domain.Filter{}, 5)
	var resolved int
	for _, g := range top {
		_, ok := geo.Municipalities.Lookup(g.Municipality)
		fmt.Printf("  %-28s %6d  on map: %v\n", g.Municipality, g.Total, ok)
		if ok {
			resolved++
		}
	}
	fmt.Printf("Top-5 with coordinates: %d/%d\n", resolved, len(top))
}
