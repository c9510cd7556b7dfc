// Package export serializes filtered record sets as downloadable CSV.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/jonboulle/clockwork"
	"github.com/rotisserie/eris"

	"github.com/filipe4ndrade/dados-sds-provisorios/internal/domain"
)

// header lists the canonical columns in export order.
var header = []string{
	"date", "year", "month", "day",
	"municipality", "region",
	"sex", "age", "age_band", "nature",
	"total",
}

// Exporter writes record sets as UTF-8 CSV. The clock is injectable so tests
// get deterministic filenames.
type Exporter struct {
	clock clockwork.Clock
}

// NewExporter creates an Exporter. Pass nil to use the real clock.
func NewExporter(clock clockwork.Clock) *Exporter {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &Exporter{clock: clock}
}

// Filename builds the download name for a dataset export:
// <dataset>_<YYYYMMDD>.csv, dated with the exporter's clock.
func (e *Exporter) Filename(datasetID string) string {
	return fmt.Sprintf("%s_%s.csv", datasetID, e.clock.Now().Format("20060102"))
}

// Write streams the records to w as CSV with the canonical header row.
// The record set is written as-is; filtering happens before export.
func (e *Exporter) Write(w io.Writer, records []domain.Record) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(header); err != nil {
		return eris.Wrap(err, "export: write header")
	}

	row := make([]string, len(header))
	for i := range records {
		r := &records[i]

		date := ""
		if !r.Date.IsZero() {
			date = r.Date.Format("2006-01-02")
		}
		age := ""
		if r.Age != nil {
			age = strconv.Itoa(*r.Age)
		}

		row[0] = date
		row[1] = intOrEmpty(r.Year)
		row[2] = intOrEmpty(r.Month)
		row[3] = intOrEmpty(r.Day)
		row[4] = r.Municipality
		row[5] = r.Region
		row[6] = r.Sex
		row[7] = age
		row[8] = r.AgeBand
		row[9] = r.Nature
		row[10] = strconv.Itoa(r.Total)

		if err := cw.Write(row); err != nil {
			return eris.Wrap(err, "export: write row")
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return eris.Wrap(err, "export: flush")
	}
	return nil
}

func intOrEmpty(n int) string {
	if n == 0 {
		return ""
	}
	return strconv.Itoa(n)
}
