// Package vaccine computes vaccination renewal status for the shelter's
// cats. Everything here is a pure function over a roster snapshot; results
// are recomputed on every request and never cached.
package vaccine

import (
	"sort"
	"strings"
	"time"

	"cat-shelter-server/internal/models"
)

// DefaultHorizonDays is the alert window used when no horizon is supplied.
const DefaultHorizonDays = 30

// Alert flags one cat/vaccine pair whose renewal is due or overdue.
type Alert struct {
	CatID       string    `json:"catId"`
	CatName     string    `json:"catName"`
	VaccineName string    `json:"vaccineName"`
	LastDate    time.Time `json:"lastDate"`
	NextDue     time.Time `json:"nextDue"`
}

// Evaluate classifies every vaccinated cat/vaccine pair against today and
// the horizon. A cat never vaccinated against a disease raises no alert for
// it: the shelter only tracks renewals of started protocols. The renewal
// interval is one calendar year after the latest dose.
//
// Vaccine names are grouped case-insensitively. When two doses share the
// same latest date, the first record in roster order is kept.
func Evaluate(cats []models.Cat, today time.Time, horizonDays int) (overdue, dueSoon []Alert) {
	if horizonDays <= 0 {
		horizonDays = DefaultHorizonDays
	}
	today = dateOnly(today)
	horizonEnd := today.AddDate(0, 0, horizonDays)

	for _, cat := range cats {
		latest := latestDoses(cat.Vaccinations)

		names := make([]string, 0, len(latest))
		for name := range latest {
			names = append(names, name)
		}
		sort.Strings(names)

		for _, name := range names {
			record := latest[name]
			nextDue := dateOnly(record.NextDue())

			alert := Alert{
				CatID:       cat.ID,
				CatName:     cat.Name,
				VaccineName: record.VaccineName,
				LastDate:    dateOnly(record.Date),
				NextDue:     nextDue,
			}

			switch {
			case nextDue.Before(today):
				overdue = append(overdue, alert)
			case !nextDue.After(horizonEnd):
				dueSoon = append(dueSoon, alert)
			}
		}
	}

	return overdue, dueSoon
}

// MissingVaccine reports whether the cat has no dose of the named vaccine
// within the trailing calendar year. Unlike Evaluate, cats that never
// received the vaccine at all count as missing it.
func MissingVaccine(cat models.Cat, vaccineName string, today time.Time) bool {
	cutoff := dateOnly(today).AddDate(-1, 0, 0)
	for _, record := range cat.Vaccinations {
		if record.Date.IsZero() {
			continue
		}
		if !strings.EqualFold(record.VaccineName, vaccineName) {
			continue
		}
		if !dateOnly(record.Date).Before(cutoff) {
			return false
		}
	}
	return true
}

// latestDoses picks, per case-insensitive vaccine name, the record with the
// latest administration date. Records without a usable date are skipped so
// they can never produce a due date.
func latestDoses(records []models.VaccineRecord) map[string]models.VaccineRecord {
	latest := make(map[string]models.VaccineRecord)
	for _, record := range records {
		if record.Date.IsZero() || record.VaccineName == "" {
			continue
		}
		key := strings.ToLower(record.VaccineName)
		current, ok := latest[key]
		if !ok || record.Date.After(current.Date) {
			latest[key] = record
		}
	}
	return latest
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
