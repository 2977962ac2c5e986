package parser

import (
	"testing"
	"time"

	"github.com/carloss4dv/agro-precios/pkg/precios/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestResolveDate(t *testing.T) {
	tests := []struct {
		in       string
		year     int
		want     time.Time
		encoding DateEncoding
	}{
		{"25/12 - 31/12", 2023, date(2023, time.December, 31), EncodingRangeWithDash},
		{"30/12 - 05/01", 2023, date(2024, time.January, 5), EncodingRangeWithDash},
		{"01/01-07/01", 2024, date(2024, time.January, 7), EncodingRangeWithDash},
		{"29/12/2025 - 04/01/2026", 2025, date(2026, time.January, 4), EncodingRangeWithDash},
		{"01/01 - 07/01 (*)", 2024, date(2024, time.January, 7), EncodingRangeWithDash},
		{"Semana 2: 08/01 - 14/01", 2024, date(2024, time.January, 14), EncodingRangeWithDash},
		{"Del 01/01 al 07/01", 2024, date(2024, time.January, 7), EncodingRangeWithDash},
		{"15/03/2022", 2024, date(2022, time.March, 15), EncodingRangeWithYear},
		{"45298", 2024, date(2024, time.January, 7), EncodingSerialNumber},
		{"02-08/01", 2024, date(2024, time.January, 8), EncodingSharedMonthRange},
		{"14/01", 2024, date(2024, time.January, 14), EncodingDayMonth},
		{"31/02", 2024, date(2024, time.February, 29), EncodingDayMonth},
		{"31/02", 2023, date(2023, time.February, 28), EncodingDayMonth},
		{"07-ene", 2024, date(2024, time.January, 7), EncodingDayMonthName},
		{"14-Feb.", 2024, date(2024, time.February, 14), EncodingDayMonthName},
		{"Semana del 21 de abril", 2024, date(2024, time.April, 21), EncodingMonthNameScan},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			tok := ClassifyDate(tt.in)
			assert.Equal(t, tt.encoding, tok.Encoding)

			got, ok := ResolveDate(tt.in, tt.year)
			require.True(t, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestResolveDateUnrecognized(t *testing.T) {
	for _, in := range []string{"", "n.d.", "32/13", "Semana"} {
		_, ok := ResolveDate(in, 2024)
		assert.False(t, ok, in)
	}
}

func TestSerialRoundTrip(t *testing.T) {
	for _, d := range []time.Time{
		date(2024, time.January, 7),
		date(2024, time.February, 29),
		date(2019, time.December, 29),
		date(2000, time.March, 1),
	} {
		serial := DateToSerial(d)

		got, ok := SerialToDate(serial)
		require.True(t, ok)
		assert.Equal(t, d, got)

		got, ok = ClassifyCell(models.Number(serial)).Resolve(1990)
		require.True(t, ok)
		assert.Equal(t, d, got)
	}
	assert.Equal(t, float64(45298), DateToSerial(date(2024, time.January, 7)))
}

func TestResolveWeekDates(t *testing.T) {
	row := models.NewRow("", "", "", "01/01 - 07/01", "08/01 - 14/01", "ilegible", 45312, "22/01 - 28/01")
	weeks := ResolveWeekDates(row, 2024)
	require.Len(t, weeks, 5)

	want := []time.Time{
		date(2024, time.January, 7),
		date(2024, time.January, 14),
		date(2024, time.January, 21),
		date(2024, time.January, 21),
		date(2024, time.January, 28),
	}
	for i, w := range weeks {
		assert.Equal(t, FirstValueColumn+i, w.Col)
		assert.Equal(t, want[i], w.Date, "column %d", w.Col)
	}
	assert.True(t, weeks[2].Estimated)
	assert.Equal(t, EncodingUnrecognized, weeks[2].Encoding)
	assert.Equal(t, EncodingSerialNumber, weeks[3].Encoding)
}

func TestResolveWeekDatesEstimatesFromJanuary(t *testing.T) {
	row := models.NewRow("", "", "", "?", "?", "15/01 - 21/01")
	weeks := ResolveWeekDates(row, 2024)
	require.Len(t, weeks, 3)
	assert.Equal(t, date(2024, time.January, 1), weeks[0].Date)
	assert.Equal(t, date(2024, time.January, 8), weeks[1].Date)
	assert.Equal(t, date(2024, time.January, 21), weeks[2].Date)
}

func TestResolveWeekDatesCadence(t *testing.T) {
	row := models.NewRow("", "", "",
		"02/12 - 08/12", "09/12 - 15/12", "16/12 - 22/12", "23/12 - 29/12", "30/12 - 05/01")
	weeks := ResolveWeekDates(row, 2024)
	require.Len(t, weeks, 5)
	assert.Equal(t, date(2025, time.January, 5), weeks[4].Date)

	for i := 1; i < len(weeks); i++ {
		days := weeks[i].Date.Sub(weeks[i-1].Date).Hours() / 24
		assert.GreaterOrEqual(t, days, 6.0)
		assert.LessOrEqual(t, days, 8.0)
	}
}
