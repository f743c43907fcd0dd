package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func mustBirthday(t *testing.T, s string) Birthday {
	t.Helper()
	b, err := NewBirthday(s)
	require.NoError(t, err)
	return b
}

func TestNextOccurrence(t *testing.T) {
	ref := date(2024, time.March, 20)

	tests := []struct {
		birthday string
		want     time.Time
	}{
		{"23.03.1998", date(2024, time.March, 23)},
		{"20.03.1990", date(2024, time.March, 20)},
		{"19.03.1990", date(2025, time.March, 19)},
		{"01.01.1980", date(2025, time.January, 1)},
		{"31.12.1980", date(2024, time.December, 31)},
	}

	for _, tt := range tests {
		t.Run(tt.birthday, func(t *testing.T) {
			got := mustBirthday(t, tt.birthday).NextOccurrence(ref)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNextOccurrence_IgnoresClockAndZone(t *testing.T) {
	loc := time.FixedZone("UTC+3", 3*60*60)
	ref := time.Date(2024, time.March, 20, 23, 59, 0, 0, loc)

	got := mustBirthday(t, "20.03.1990").NextOccurrence(ref)
	assert.Equal(t, date(2024, time.March, 20), got)
}

func TestAnniversary_LeapDay(t *testing.T) {
	b := mustBirthday(t, "29.02.2000")

	assert.Equal(t, date(2024, time.February, 29), b.Anniversary(2024))
	assert.Equal(t, date(2023, time.February, 28), b.Anniversary(2023))
	assert.Equal(t, date(2100, time.February, 28), b.Anniversary(2100))
	assert.Equal(t, date(2000, time.February, 29), b.Anniversary(2000))
}

func TestCongratulationDate(t *testing.T) {
	tests := []struct {
		name string
		in   time.Time
		want time.Time
	}{
		{"saturday", date(2024, time.March, 23), date(2024, time.March, 25)},
		{"sunday", date(2024, time.March, 24), date(2024, time.March, 25)},
		{"monday", date(2024, time.March, 25), date(2024, time.March, 25)},
		{"friday", date(2024, time.March, 22), date(2024, time.March, 22)},
		{"saturday across month", date(2024, time.March, 30), date(2024, time.April, 1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CongratulationDate(tt.in))
		})
	}
}

func TestDaysBetween(t *testing.T) {
	assert.Equal(t, 0, DaysBetween(date(2024, time.March, 20), date(2024, time.March, 20)))
	assert.Equal(t, 7, DaysBetween(date(2024, time.March, 20), date(2024, time.March, 27)))
	assert.Equal(t, 2, DaysBetween(date(2024, time.February, 28), date(2024, time.March, 1)))
	assert.Equal(t, -1, DaysBetween(date(2024, time.January, 1), date(2023, time.December, 31)))
}
