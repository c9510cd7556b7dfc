package dataset

import (
	"strings"

	"github.com/rotisserie/eris"
	"github.com/tealeg/xlsx/v2"

	"github.com/filipe4ndrade/dados-sds-provisorios/internal/domain"
)

// Load reads a dataset's XLSX file and maps every data row onto the canonical
// record shape. The first row of the sheet is the header; required columns
// (municipality, total, and a date or year source) must be present or the
// load fails. Individual cells are parsed leniently: unparseable dates leave
// Year/Month at zero, unparseable counts become 0.
func Load(path string, d Descriptor) ([]domain.Record, error) {
	f, err := xlsx.OpenFile(path)
	if err != nil {
		return nil, eris.Wrapf(err, "dataset %s: open file", d.ID)
	}

	sheet, ok := f.Sheet[d.Sheet]
	if !ok {
		return nil, eris.Errorf("dataset %s: sheet %q not found", d.ID, d.Sheet)
	}
	if len(sheet.Rows) == 0 {
		return nil, eris.Errorf("dataset %s: sheet %q is empty", d.ID, d.Sheet)
	}

	idx, err := headerIndex(rowToStrings(sheet.Rows[0]), d)
	if err != nil {
		return nil, err
	}

	records := make([]domain.Record, 0, len(sheet.Rows)-1)
	for _, row := range sheet.Rows[1:] {
		cells := rowToStrings(row)
		rec := parseRow(cells, idx)
		if rec.Municipality == "" && rec.Total == 0 {
			continue // trailing blank rows
		}
		records = append(records, rec)
	}
	return records, nil
}

// columnIndex holds the resolved cell positions per canonical field.
// -1 means the dataset has no such column.
type columnIndex struct {
	municipality int
	region       int
	date         int
	year         int
	sex          int
	age          int
	ageBand      int
	nature       int
	total        int
}

func headerIndex(header []string, d Descriptor) (columnIndex, error) {
	pos := make(map[string]int, len(header))
	for i, h := range header {
		pos[strings.TrimSpace(h)] = i
	}

	find := func(name string) int {
		if name == "" {
			return -1
		}
		if i, ok := pos[name]; ok {
			return i
		}
		return -1
	}

	idx := columnIndex{
		municipality: find(d.Columns.Municipality),
		region:       find(d.Columns.Region),
		date:         find(d.Columns.Date),
		year:         find(d.Columns.Year),
		sex:          find(d.Columns.Sex),
		age:          find(d.Columns.Age),
		ageBand:      find(d.Columns.AgeBand),
		nature:       find(d.Columns.Nature),
		total:        find(d.Columns.Total),
	}

	if idx.municipality < 0 {
		return idx, eris.Errorf("dataset %s: required column %q not found", d.ID, d.Columns.Municipality)
	}
	if idx.total < 0 {
		return idx, eris.Errorf("dataset %s: required column %q not found", d.ID, d.Columns.Total)
	}
	if idx.date < 0 && idx.year < 0 {
		return idx, eris.Errorf("dataset %s: neither date column %q nor year column %q found", d.ID, d.Columns.Date, d.Columns.Year)
	}
	return idx, nil
}

func parseRow(cells []string, idx columnIndex) domain.Record {
	rec := domain.Record{
		Municipality: strings.TrimSpace(cell(cells, idx.municipality)),
		Region:       domain.NormalizeRegion(cell(cells, idx.region)),
		Sex:          strings.TrimSpace(cell(cells, idx.sex)),
		AgeBand:      strings.TrimSpace(cell(cells, idx.ageBand)),
		Nature:       strings.TrimSpace(cell(cells, idx.nature)),
		Total:        domain.ParseCount(cell(cells, idx.total)),
	}

	if t := domain.ParseDate(cell(cells, idx.date)); !t.IsZero() {
		rec.Date = t
		rec.Year = t.Year()
		rec.Month = int(t.Month())
		rec.Day = t.Day()
	}
	// An explicit year column wins over the date-derived year; SDS files
	// occasionally carry corrected years next to uncorrected dates.
	if y := domain.ParseCount(cell(cells, idx.year)); y > 0 {
		rec.Year = y
	}

	if rec.Age = domain.ParseAge(cell(cells, idx.age)); rec.Age != nil && rec.AgeBand == "" {
		rec.AgeBand = domain.DeriveAgeBand(*rec.Age)
	}
	return rec
}

func cell(cells []string, i int) string {
	if i < 0 || i >= len(cells) {
		return ""
	}
	return cells[i]
}

func rowToStrings(row *xlsx.Row) []string {
	cells := make([]string, len(row.Cells))
	for j, c := range row.Cells {
		cells[j] = c.String()
	}
	return cells
}
