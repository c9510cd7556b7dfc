// Package domain models Pernambuco SDS public-safety incident microdata.
//
// # Data Source
//
// Records come from the Secretaria de Defesa Social (SDS) open-data
// spreadsheets, one XLSX file per dataset: intentional violent deaths (MVI),
// rape and sexual crimes, violent crimes against property (CVP), and domestic
// violence. Each row is one incident (or one victim, for victim-level files)
// with a date, municipality, geographic region, and a victim/case count,
// plus dataset-specific columns.
//
// # SDS Data Conventions
//
// Column names vary per dataset and are mapped to the canonical [Record] by
// the loader:
//
//	MUNICÍPIO / MUNICÍPIO DO FATO        → Municipality
//	REGIAO_GEOGRAFICA / REGIÃO GEOGRÁFICA → Region
//	DATA / DATA DO FATO                  → Date (Year, Month, Day derived)
//	TOTAL / TOTAL DE VITIMAS / TOTAL DE VÍTIMAS → Total
//	NATUREZA / NATUREZA JURIDICA         → Nature
//	IDADE                                → Age (MVI only, per-victim years)
//	IDADE SENASP                         → AgeBand (pre-bucketed by SENASP)
//
// Missing regions are encoded upstream as the number 0 and normalized to
// "NÃO INFORMADO". Municipality names are free text and must be uppercased
// and trimmed before coordinate lookup; names absent from the coordinate
// table are an accepted data-quality gap, not an error.
//
// # Magnitude Tiers
//
// Heat-map markers are classified relative to the maximum aggregated value in
// the current result set:
//
//	ratio > 0.70  very_high  dark red
//	ratio > 0.40  high       crimson
//	ratio > 0.20  medium     tomato
//	otherwise     low        light salmon
//
// Boundaries are exclusive-lower: a municipality at exactly 70% of the maximum
// is "high". The legend is static and lists all four tiers regardless of which
// are present.
package domain
