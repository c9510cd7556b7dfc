// Package geo bundles the static municipality coordinate table used by the
// heat-map renderer. The table is reference data compiled from IBGE municipal
// seat coordinates, keyed by uppercase municipality name exactly as the SDS
// exports spell them. It is immutable for the lifetime of the process.
package geo

import (
	"github.com/filipe4ndrade/dados-sds-provisorios/internal/domain"
)

// StaticLookup resolves normalized municipality names to coordinates.
type StaticLookup map[string]domain.Geo

// Lookup returns the coordinate for a municipality name. The name is
// normalized (uppercase, trimmed) before matching, so callers may pass either
// raw or pre-normalized names. Misses are reported via ok, never an error:
// source data is not guaranteed to match the table's key set.
func (t StaticLookup) Lookup(name string) (domain.Geo, bool) {
	g, ok := t[domain.NormalizeMunicipality(name)]
	return g, ok
}

// Municipalities is the bundled Pernambuco coordinate table.
var Municipalities = StaticLookup{
	"RECIFE":                    {Lat: -8.0476, Lon: -34.8770},
	"OLINDA":                    {Lat: -8.0089, Lon: -34.8553},
	"JABOATÃO DOS GUARARAPES":   {Lat: -8.1128, Lon: -35.0147},
	"PAULISTA":                  {Lat: -7.9407, Lon: -34.8728},
	"ABREU E LIMA":              {Lat: -7.9117, Lon: -34.9028},
	"IGARASSU":                  {Lat: -7.8342, Lon: -34.9064},
	"ITAPISSUMA":                {Lat: -7.7764, Lon: -34.8922},
	"ILHA DE ITAMARACÁ":         {Lat: -7.7478, Lon: -34.8256},
	"CAMARAGIBE":                {Lat: -8.0236, Lon: -34.9781},
	"SÃO LOURENÇO DA MATA":      {Lat: -8.0022, Lon: -35.0181},
	"CABO DE SANTO AGOSTINHO":   {Lat: -8.2828, Lon: -35.0353},
	"IPOJUCA":                   {Lat: -8.3989, Lon: -35.0639},
	"MORENO":                    {Lat: -8.1186, Lon: -35.0922},
	"GOIANA":                    {Lat: -7.5606, Lon: -35.0025},
	"TIMBAÚBA":                  {Lat: -7.5053, Lon: -35.3183},
	"CARPINA":                   {Lat: -7.8508, Lon: -35.2547},
	"PAUDALHO":                  {Lat: -7.8967, Lon: -35.1800},
	"LIMOEIRO":                  {Lat: -7.8744, Lon: -35.4503},
	"NAZARÉ DA MATA":            {Lat: -7.7417, Lon: -35.2278},
	"VITÓRIA DE SANTO ANTÃO":    {Lat: -8.1186, Lon: -35.2917},
	"GLÓRIA DO GOITÁ":           {Lat: -8.0047, Lon: -35.2928},
	"POMBOS":                    {Lat: -8.1411, Lon: -35.3958},
	"CHÃ GRANDE":                {Lat: -8.2392, Lon: -35.4617},
	"ESCADA":                    {Lat: -8.3592, Lon: -35.2236},
	"AMARAJI":                   {Lat: -8.3828, Lon: -35.4517},
	"RIBEIRÃO":                  {Lat: -8.5122, Lon: -35.3786},
	"GAMELEIRA":                 {Lat: -8.5844, Lon: -35.3869},
	"PALMARES":                  {Lat: -8.6836, Lon: -35.5919},
	"ÁGUA PRETA":                {Lat: -8.7072, Lon: -35.5306},
	"CATENDE":                   {Lat: -8.6656, Lon: -35.7169},
	"MARAIAL":                   {Lat: -8.7828, Lon: -35.8253},
	"QUIPAPÁ":                   {Lat: -8.8278, Lon: -36.0119},
	"BARREIROS":                 {Lat: -8.8181, Lon: -35.1864},
	"SIRINHAÉM":                 {Lat: -8.5906, Lon: -35.1164},
	"RIO FORMOSO":               {Lat: -8.6642, Lon: -35.1581},
	"TAMANDARÉ":                 {Lat: -8.7597, Lon: -35.1047},
	"SÃO JOSÉ DA COROA GRANDE":  {Lat: -8.8978, Lon: -35.1478},
	"GRAVATÁ":                   {Lat: -8.2014, Lon: -35.5647},
	"BEZERROS":                  {Lat: -8.2333, Lon: -35.7969},
	"CAMOCIM DE SÃO FÉLIX":      {Lat: -8.3594, Lon: -35.7622},
	"BONITO":                    {Lat: -8.4703, Lon: -35.7286},
	"SÃO JOAQUIM DO MONTE":      {Lat: -8.4322, Lon: -35.8044},
	"AGRESTINA":                 {Lat: -8.4592, Lon: -35.9442},
	"CUPIRA":                    {Lat: -8.6167, Lon: -35.9500},
	"PANELAS":                   {Lat: -8.6644, Lon: -36.0067},
	"CARUARU":                   {Lat: -8.2828, Lon: -35.9758},
	"TORITAMA":                  {Lat: -8.0067, Lon: -36.0564},
	"SANTA CRUZ DO CAPIBARIBE":  {Lat: -7.9575, Lon: -36.2047},
	"TAQUARITINGA DO NORTE":     {Lat: -7.9033, Lon: -36.0433},
	"VERTENTES":                 {Lat: -7.9028, Lon: -35.9878},
	"SURUBIM":                   {Lat: -7.8308, Lon: -35.7544},
	"PASSIRA":                   {Lat: -7.9947, Lon: -35.5808},
	"JOÃO ALFREDO":              {Lat: -7.8556, Lon: -35.5886},
	"BOM JARDIM":                {Lat: -7.7958, Lon: -35.5872},
	"OROBÓ":                     {Lat: -7.7450, Lon: -35.6022},
	"MACHADOS":                  {Lat: -7.6883, Lon: -35.5103},
	"SÃO VICENTE FÉRRER":        {Lat: -7.5908, Lon: -35.4903},
	"VICÊNCIA":                  {Lat: -7.6569, Lon: -35.3264},
	"ALIANÇA":                   {Lat: -7.6025, Lon: -35.2306},
	"CONDADO":                   {Lat: -7.5858, Lon: -35.1058},
	"ITAQUITINGA":               {Lat: -7.6672, Lon: -35.1017},
	"ARAÇOIABA":                 {Lat: -7.7842, Lon: -35.0908},
	"TRACUNHAÉM":                {Lat: -7.8050, Lon: -35.2400},
	"FEIRA NOVA":                {Lat: -7.9508, Lon: -35.3889},
	"LAGOA DE ITAENGA":          {Lat: -7.9358, Lon: -35.2903},
	"LAGOA DO CARRO":            {Lat: -7.8447, Lon: -35.3119},
	"BREJO DA MADRE DE DEUS":    {Lat: -8.1458, Lon: -36.3711},
	"BELO JARDIM":               {Lat: -8.3356, Lon: -36.4244},
	"SANHARÓ":                   {Lat: -8.3608, Lon: -36.5653},
	"PESQUEIRA":                 {Lat: -8.3578, Lon: -36.6953},
	"SÃO CAITANO":               {Lat: -8.3364, Lon: -36.1428},
	"ALTINHO":                   {Lat: -8.4894, Lon: -36.0608},
	"ARCOVERDE":                 {Lat: -8.4189, Lon: -37.0539},
	"BUÍQUE":                    {Lat: -8.6231, Lon: -37.1556},
	"SERTÂNIA":                  {Lat: -8.0736, Lon: -37.2644},
	"CUSTÓDIA":                  {Lat: -8.0875, Lon: -37.6433},
	"IBIMIRIM":                  {Lat: -8.5408, Lon: -37.6894},
	"GARANHUNS":                 {Lat: -8.8903, Lon: -36.4928},
	"SÃO BENTO DO UNA":          {Lat: -8.5244, Lon: -36.4442},
	"LAJEDO":                    {Lat: -8.6639, Lon: -36.3197},
	"CANHOTINHO":                {Lat: -8.8817, Lon: -36.1911},
	"ÁGUAS BELAS":               {Lat: -9.1117, Lon: -37.1231},
	"BOM CONSELHO":              {Lat: -9.1697, Lon: -36.6797},
	"CORRENTES":                 {Lat: -9.1269, Lon: -36.3289},
	"SALGUEIRO":                 {Lat: -8.0742, Lon: -39.1192},
	"SERRA TALHADA":             {Lat: -7.9858, Lon: -38.2964},
	"TRIUNFO":                   {Lat: -7.8378, Lon: -38.1017},
	"FLORES":                    {Lat: -7.8661, Lon: -37.9747},
	"FLORESTA":                  {Lat: -8.6011, Lon: -38.5686},
	"PETROLÂNDIA":               {Lat: -8.9656, Lon: -38.2192},
	"TACARATU":                  {Lat: -9.1031, Lon: -38.1514},
	"ITACURUBA":                 {Lat: -8.7256, Lon: -38.6953},
	"BELÉM DO SÃO FRANCISCO":    {Lat: -8.7536, Lon: -38.9658},
	"CABROBÓ":                   {Lat: -8.5142, Lon: -39.3103},
	"OROCÓ":                     {Lat: -8.6103, Lon: -39.6031},
	"SANTA MARIA DA BOA VISTA":  {Lat: -8.8078, Lon: -39.8253},
	"LAGOA GRANDE":              {Lat: -8.9967, Lon: -40.2717},
	"PETROLINA":                 {Lat: -9.3891, Lon: -40.5028},
	"AFRÂNIO":                   {Lat: -8.5111, Lon: -41.0097},
	"DORMENTES":                 {Lat: -8.4419, Lon: -40.7683},
	"ARARIPINA":                 {Lat: -7.5761, Lon: -40.4983},
	"OURICURI":                  {Lat: -7.8825, Lon: -40.0817},
	"TRINDADE":                  {Lat: -7.7622, Lon: -40.2678},
	"IPUBI":                     {Lat: -7.6519, Lon: -40.1489},
	"BODOCÓ":                    {Lat: -7.7778, Lon: -39.9411},
	"EXU":                       {Lat: -7.5117, Lon: -39.7239},
	"MOREILÂNDIA":               {Lat: -7.6236, Lon: -39.5542},
	"SÃO JOSÉ DO EGITO":         {Lat: -7.4789, Lon: -37.2744},
	"AFOGADOS DA INGAZEIRA":     {Lat: -7.7433, Lon: -37.6392},
	"TABIRA":                    {Lat: -7.5903, Lon: -37.5389},
	"ITAPETIM":                  {Lat: -7.3772, Lon: -37.1903},
	"TUPARETAMA":                {Lat: -7.6017, Lon: -37.3139},
	"CARNAÍBA":                  {Lat: -7.8044, Lon: -37.7944},
}
