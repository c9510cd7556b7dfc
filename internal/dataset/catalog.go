// Package dataset loads SDS microdata spreadsheets into canonical records and
// caches them per dataset for the lifetime of the process.
package dataset

// ColumnMap names the source spreadsheet columns that feed each canonical
// record field. Empty means the dataset has no such column.
type ColumnMap struct {
	Municipality string
	Region       string
	Date         string
	Year         string
	Sex          string
	Age          string
	AgeBand      string
	Nature       string
	Total        string
}

// Descriptor describes one SDS dataset: where its spreadsheet lives and how
// its columns map onto the canonical record.
type Descriptor struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	File   string `json:"file"`
	Sheet  string `json:"sheet"`
	Period string `json:"period"`
	Color  string `json:"color"` // accent color used by the frontend

	Columns ColumnMap `json:"-"`
}

// catalog lists the four published SDS microdata bases. File and sheet names
// are exactly as distributed by the SDS open-data portal.
var catalog = []Descriptor{
	{
		ID:     "mvi",
		Name:   "Mortes Violentas Intencionais (MVI)",
		File:   "MICRODADOS_DE_MVI_JAN_2004_A_NOV_2025.xlsx",
		Sheet:  "Plan1",
		Period: "Janeiro/2004 a Novembro/2025",
		Color:  "#d62728",
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
	},
	{
		ID:     "estupro",
		Name:   "Estupro e Crimes Sexuais",
		File:   "MICRODADOS_ESTUPRO_JAN_2015_A_NOV_2025.xlsx",
		Sheet:  "Plan1",
		Period: "Janeiro/2015 a Novembro/2025",
		Color:  "#ff7f0e",
		Columns: ColumnMap{
			Municipality: "MUNICÍPIO DO FATO",
			Region:       "REGIAO GEOGRÁFICA",
			Date:         "DATA DO FATO",
			Year:         "ANO",
			Sex:          "SEXO",
			AgeBand:      "IDADE SENASP",
			Nature:       "NATUREZA",
			Total:        "TOTAL DE VÍTIMAS",
		},
	},
	{
		ID:     "cvp",
		Name:   "Crimes Violentos contra o Patrimônio (CVP)",
		File:   "Microdados_de_CVP_-_Disponível_janeiro_de_2014_a_novembro_de_2025.xlsx",
		Sheet:  "microdados cvp",
		Period: "Janeiro/2014 a Novembro/2025",
		Color:  "#2ca02c",
		Columns: ColumnMap{
			Municipality: "MUNICÍPIO",
			Region:       "REGIÃO GEOGRÁFICA",
			Date:         "DATA",
			Year:         "ANO",
			Total:        "TOTAL",
		},
	},
	{
		ID:     "violencia-domestica",
		Name:   "Violência Doméstica",
		File:   "MICRODADOS_DE_VIOLÊNCIA_DOMÉSTICA_JAN_2015_A_NOV_2025.xlsx",
		Sheet:  "Plan1",
		Period: "Janeiro/2015 a Novembro/2025",
		Color:  "#9467bd",
		Columns: ColumnMap{
			Municipality: "MUNICÍPIO DO FATO",
			Region:       "REGIAO GEOGRÁFICA",
			Date:         "DATA DO FATO",
			Year:         "ANO",
			Sex:          "SEXO",
			AgeBand:      "IDADE SENASP",
			Nature:       "NATUREZA",
			Total:        "TOTAL DE VÍTIMAS",
		},
	},
}

// Catalog returns the dataset descriptors in presentation order.
func Catalog() []Descriptor {
	out := make([]Descriptor, len(catalog))
	copy(out, catalog)
	return out
}

// ByID finds a descriptor by its dataset identifier.
func ByID(id string) (Descriptor, bool) {
	for _, d := range catalog {
		if d.ID == id {
			return d, true
		}
	}
	return Descriptor{}, false
}
