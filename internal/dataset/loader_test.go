package dataset

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tealeg/xlsx/v2"
)

var testDescriptor = Descriptor{
	ID:    "test",
	Name:  "Test Dataset",
	File:  "test.xlsx",
	Sheet: "Plan1",
	Columns: ColumnMap{
		Municipality: "MUNICIPIO",
		Region:       "REGIAO_GEOGRAFICA",
		Date:         "DATA",
		Year:         "ANO",
		Sex:          "SEXO",
		Age:          "IDADE",
		Nature:       "NATUREZA JURIDICA",
		Total:        "TOTAL DE VITIMAS",
	},
}

// writeSheet builds an XLSX fixture with a single sheet of string cells.
func writeSheet(t *testing.T, path, sheet string, rows [][]string) {
	t.Helper()

	f := xlsx.NewFile()
	s, err := f.AddSheet(sheet)
	require.NoError(t, err)

	for _, cells := range rows {
		row := s.AddRow()
		for _, v := range cells {
			row.AddCell().SetString(v)
		}
	}
	require.NoError(t, f.Save(path))
}

func TestLoad(t *testing.T) {
	header := []string{"MUNICIPIO", "REGIAO_GEOGRAFICA", "DATA", "ANO", "SEXO", "IDADE", "NATUREZA JURIDICA", "TOTAL DE VITIMAS"}

	t.Run("maps rows onto canonical records", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "test.xlsx")
		writeSheet(t, path, "Plan1", [][]string{
			header,
			{"RECIFE", "REGIÃO METROPOLITANA", "2024-05-17", "2024", "MASCULINO", "27", "HOMICIDIO", "2"},
			{"OLINDA", "0", "17/05/2024", "2024", "FEMININO", "", "FEMINICIDIO", "1"},
		})

		records, err := Load(path, testDescriptor)
		require.NoError(t, err)
		require.Len(t, records, 2)

		first := records[0]
		assert.Equal(t, "RECIFE", first.Municipality)
		assert.Equal(t, "REGIÃO METROPOLITANA", first.Region)
		assert.Equal(t, time.Date(2024, time.May, 17, 0, 0, 0, 0, time.UTC), first.Date)
		assert.Equal(t, 2024, first.Year)
		assert.Equal(t, 5, first.Month)
		assert.Equal(t, 17, first.Day)
		assert.Equal(t, "MASCULINO", first.Sex)
		require.NotNil(t, first.Age)
		assert.Equal(t, 27, *first.Age)
		assert.Equal(t, "25-29", first.AgeBand)
		assert.Equal(t, "HOMICIDIO", first.Nature)
		assert.Equal(t, 2, first.Total)

		second := records[1]
		assert.Equal(t, "NÃO INFORMADO", second.Region)
		assert.Nil(t, second.Age)
		assert.Empty(t, second.AgeBand)
		assert.Equal(t, 5, second.Month)
	})

	t.Run("explicit year column wins over the date", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "test.xlsx")
		writeSheet(t, path, "Plan1", [][]string{
			header,
			{"RECIFE", "", "2023-12-31", "2024", "", "", "", "1"},
		})

		records, err := Load(path, testDescriptor)
		require.NoError(t, err)
		require.Len(t, records, 1)
		assert.Equal(t, 2024, records[0].Year)
		assert.Equal(t, 12, records[0].Month)
	})

	t.Run("skips trailing blank rows", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "test.xlsx")
		writeSheet(t, path, "Plan1", [][]string{
			header,
			{"RECIFE", "", "2024-01-01", "2024", "", "", "", "1"},
			{"", "", "", "", "", "", "", ""},
			{""},
		})

		records, err := Load(path, testDescriptor)
		require.NoError(t, err)
		assert.Len(t, records, 1)
	})

	t.Run("unparseable cells degrade instead of failing", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "test.xlsx")
		writeSheet(t, path, "Plan1", [][]string{
			header,
			{"RECIFE", "", "not a date", "", "", "abc", "", "xyz"},
		})

		records, err := Load(path, testDescriptor)
		require.NoError(t, err)
		require.Len(t, records, 1)
		assert.Zero(t, records[0].Year)
		assert.Nil(t, records[0].Age)
		assert.Zero(t, records[0].Total)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "absent.xlsx"), testDescriptor)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "open file")
	})

	t.Run("missing sheet", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "test.xlsx")
		writeSheet(t, path, "WrongSheet", [][]string{header})

		_, err := Load(path, testDescriptor)
		require.Error(t, err)
		assert.Contains(t, err.Error(), `sheet "Plan1" not found`)
	})

	t.Run("missing required column", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "test.xlsx")
		writeSheet(t, path, "Plan1", [][]string{
			{"CIDADE", "DATA", "TOTAL DE VITIMAS"},
			{"RECIFE", "2024-01-01", "1"},
		})

		_, err := Load(path, testDescriptor)
		require.Error(t, err)
		assert.Contains(t, err.Error(), `required column "MUNICIPIO" not found`)
	})

	t.Run("needs a date or year column", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "test.xlsx")
		writeSheet(t, path, "Plan1", [][]string{
			{"MUNICIPIO", "TOTAL DE VITIMAS"},
			{"RECIFE", "1"},
		})

		_, err := Load(path, testDescriptor)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "neither date column")
	})

	t.Run("header whitespace is tolerated", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "test.xlsx")
		writeSheet(t, path, "Plan1", [][]string{
			{" MUNICIPIO ", "REGIAO_GEOGRAFICA", "DATA", "ANO", "SEXO", "IDADE", "NATUREZA JURIDICA", " TOTAL DE VITIMAS"},
			{"RECIFE", "", "2024-01-01", "2024", "", "", "", "3"},
		})

		records, err := Load(path, testDescriptor)
		require.NoError(t, err)
		require.Len(t, records, 1)
		assert.Equal(t, 3, records[0].Total)
	})
}

func TestCatalog(t *testing.T) {
	cat := Catalog()
	require.Len(t, cat, 4)

	ids := make([]string, len(cat))
	for i, d := range cat {
		ids[i] = d.ID
		assert.NotEmpty(t, d.Name, d.ID)
		assert.NotEmpty(t, d.File, d.ID)
		assert.NotEmpty(t, d.Sheet, d.ID)
		assert.NotEmpty(t, d.Columns.Municipality, d.ID)
		assert.NotEmpty(t, d.Columns.Total, d.ID)
	}
	assert.Equal(t, []string{"mvi", "estupro", "cvp", "violencia-domestica"}, ids)
}

func TestByID(t *testing.T) {
	d, ok := ByID("cvp")
	require.True(t, ok)
	assert.Equal(t, "microdados cvp", d.Sheet)

	_, ok = ByID("nope")
	assert.False(t, ok)
}
