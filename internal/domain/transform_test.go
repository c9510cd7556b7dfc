package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeMunicipality(t *testing.T) {
	tests := []struct {
		name     string
		in       string
		expected string
	}{
		{"already normalized", "RECIFE", "RECIFE"},
		{"lowercase", "recife", "RECIFE"},
		{"surrounding whitespace", "  Olinda \t", "OLINDA"},
		{"accents preserved", "jaboatão dos guararapes", "JABOATÃO DOS GUARARAPES"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, NormalizeMunicipality(tt.in))
		})
	}
}

func TestNormalizeRegion(t *testing.T) {
	assert.Equal(t, "AGRESTE", NormalizeRegion(" AGRESTE "))
	assert.Equal(t, RegionUnknown, NormalizeRegion("0"))
	assert.Equal(t, RegionUnknown, NormalizeRegion(""))
	assert.Equal(t, RegionUnknown, NormalizeRegion("  "))
}

func TestParseDate(t *testing.T) {
	t.Run("iso date", func(t *testing.T) {
		got := ParseDate("2024-05-17")
		assert.Equal(t, time.Date(2024, time.May, 17, 0, 0, 0, 0, time.UTC), got)
	})

	t.Run("iso datetime", func(t *testing.T) {
		got := ParseDate("2024-05-17 00:00:00")
		assert.Equal(t, 2024, got.Year())
		assert.Equal(t, time.May, got.Month())
	})

	t.Run("brazilian date", func(t *testing.T) {
		got := ParseDate("17/05/2024")
		assert.Equal(t, time.Date(2024, time.May, 17, 0, 0, 0, 0, time.UTC), got)
	})

	t.Run("excel serial", func(t *testing.T) {
		// Serial 45428 is 2024-05-16 in the 1900 date system.
		got := ParseDate("45428")
		assert.Equal(t, time.Date(2024, time.May, 16, 0, 0, 0, 0, time.UTC), got)
	})

	t.Run("garbage returns zero time", func(t *testing.T) {
		assert.True(t, ParseDate("not a date").IsZero())
		assert.True(t, ParseDate("").IsZero())
		assert.True(t, ParseDate("-3").IsZero())
	})
}

func TestDeriveAgeBand(t *testing.T) {
	tests := []struct {
		age      int
		expected string
	}{
		{0, "0-12"},
		{12, "0-12"},
		{13, "13-17"},
		{17, "13-17"},
		{18, "18-24"},
		{24, "18-24"},
		{25, "25-29"},
		{29, "25-29"},
		{30, "30-39"},
		{39, "30-39"},
		{40, "40-49"},
		{50, "50-59"},
		{59, "50-59"},
		{60, "60+"},
		{95, "60+"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.expected, DeriveAgeBand(tt.age), "age %d", tt.age)
	}

	assert.Empty(t, DeriveAgeBand(-1))
}

func TestParseCount(t *testing.T) {
	assert.Equal(t, 3, ParseCount("3"))
	assert.Equal(t, 3, ParseCount(" 3 "))
	assert.Equal(t, 3, ParseCount("3.0"))
	assert.Equal(t, 0, ParseCount(""))
	assert.Equal(t, 0, ParseCount("n/a"))
}

func TestParseAge(t *testing.T) {
	age := ParseAge("27")
	require.NotNil(t, age)
	assert.Equal(t, 27, *age)

	age = ParseAge("27.0")
	require.NotNil(t, age)
	assert.Equal(t, 27, *age)

	assert.Nil(t, ParseAge(""))
	assert.Nil(t, ParseAge("unknown"))
	assert.Nil(t, ParseAge("-4"))
}
