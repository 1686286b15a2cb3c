package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func TestParseDate(t *testing.T) {
	parsed, err := ParseDate("2024-03-15")
	assert.NoError(t, err)
	assert.Equal(t, date(2024, time.March, 15), *parsed)

	_, err = ParseDate("15/03/2024")
	assert.Error(t, err)

	// Data ausente é rejeitada em vez de virar o tempo zero
	_, err = ParseDate("")
	assert.Error(t, err)
}

func TestWeekStart(t *testing.T) {
	tests := []struct {
		name     string
		ref      time.Time
		expected time.Time
	}{
		{
			name:     "Quarta-feira recua para a segunda da mesma semana",
			ref:      date(2024, time.January, 17),
			expected: date(2024, time.January, 15),
		},
		{
			name:     "Segunda-feira permanece na própria data",
			ref:      date(2024, time.January, 15),
			expected: date(2024, time.January, 15),
		},
		{
			name:     "Domingo pertence à semana iniciada seis dias antes",
			ref:      date(2024, time.January, 21),
			expected: date(2024, time.January, 15),
		},
		{
			name:     "Semana atravessando a virada do ano",
			ref:      date(2025, time.January, 1),
			expected: date(2024, time.December, 30),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, WeekStart(tt.ref))
			assert.Equal(t, time.Monday, WeekStart(tt.ref).Weekday())
		})
	}
}

func TestWeekEnd(t *testing.T) {
	end := WeekEnd(date(2024, time.January, 17))
	assert.Equal(t, date(2024, time.January, 21), end)
	assert.Equal(t, time.Sunday, end.Weekday())
}

func TestMonthBounds(t *testing.T) {
	start, end := MonthBounds(2024, time.February)
	assert.Equal(t, date(2024, time.February, 1), start)
	assert.Equal(t, date(2024, time.February, 29), end) // Ano bissexto

	start, end = MonthBounds(2023, time.February)
	assert.Equal(t, date(2023, time.February, 1), start)
	assert.Equal(t, date(2023, time.February, 28), end)

	start, end = MonthBounds(2024, time.December)
	assert.Equal(t, date(2024, time.December, 1), start)
	assert.Equal(t, date(2024, time.December, 31), end)
}

func TestDaysBetween(t *testing.T) {
	assert.Equal(t, 1, DaysBetween(date(2024, time.March, 10), date(2024, time.March, 10)))
	assert.Equal(t, 7, DaysBetween(date(2024, time.March, 4), date(2024, time.March, 10)))
	assert.Equal(t, 0, DaysBetween(date(2024, time.March, 10), date(2024, time.March, 4)))
}

func TestDateRange(t *testing.T) {
	dates := DateRange(date(2024, time.March, 30), date(2024, time.April, 2))

	assert.Len(t, dates, 4)
	assert.Equal(t, date(2024, time.March, 30), dates[0])
	assert.Equal(t, date(2024, time.April, 2), dates[3])

	// Ordem sempre ascendente
	for i := 1; i < len(dates); i++ {
		assert.True(t, dates[i].After(dates[i-1]))
	}
}
