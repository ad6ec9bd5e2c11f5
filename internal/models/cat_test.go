package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestAgeString(t *testing.T) {
	today := date(2026, time.April, 15)

	tests := []struct {
		name      string
		birthdate *time.Time
		want      string
	}{
		{"no birthdate", nil, ""},
		{"two years three months", ptr(date(2024, time.January, 10)), "2 ans, 3 mois"},
		{"under a year", ptr(date(2025, time.September, 20)), "6 mois"},
		{"exact birthday", ptr(date(2023, time.April, 15)), "3 ans, 0 mois"},
		{"day before birthday", ptr(date(2023, time.April, 16)), "2 ans, 11 mois"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cat := Cat{Birthdate: tt.birthdate}
			assert.Equal(t, tt.want, cat.AgeString(today))
		})
	}
}

func TestAgeStringFollowsCalendarNotFixedDays(t *testing.T) {
	// 2024 is a leap year: 366 days after 2024-01-10 is still "1 an, 0 mois",
	// which a fixed 365-day year would already call one year plus a day.
	cat := Cat{Birthdate: ptr(date(2024, time.January, 10))}
	assert.Equal(t, "1 ans, 0 mois", cat.AgeString(date(2025, time.January, 10)))
	assert.Equal(t, "11 mois", cat.AgeString(date(2025, time.January, 9)))
}

func TestVaccineRecordNextDue(t *testing.T) {
	record := VaccineRecord{Date: date(2025, time.June, 10)}
	assert.Equal(t, date(2026, time.June, 10), record.NextDue())

	leap := VaccineRecord{Date: date(2024, time.February, 29)}
	assert.Equal(t, date(2025, time.March, 1), leap.NextDue())
}

func ptr(t time.Time) *time.Time { return &t }
