package models

import (
	"fmt"
	"time"
)

// CatStatus represents the care status of a cat
type CatStatus string

const (
	StatusNormal     CatStatus = "normal"
	StatusAdoptable  CatStatus = "adoptable"
	StatusUnderCare  CatStatus = "under-care"
	StatusQuarantine CatStatus = "quarantine"
)

// Cat represents a cat housed by the shelter
type Cat struct {
	BaseModel
	Name          string     `gorm:"size:100;not null" json:"name"`
	Birthdate     *time.Time `json:"birthdate,omitempty"`
	Status        CatStatus  `gorm:"size:50;default:'normal'" json:"status"`
	PhotoFilename string     `gorm:"size:200" json:"photo,omitempty"`

	// Relations. Notes and vaccination records are owned by the cat and
	// removed with it; appointment links are value references only.
	Vaccinations []VaccineRecord  `gorm:"foreignKey:CatID" json:"vaccinations,omitempty"`
	Notes        []Note           `gorm:"foreignKey:CatID" json:"notes,omitempty"`
	Appointments []AppointmentCat `gorm:"foreignKey:CatID" json:"-"`
}

// AgeString renders the cat's age as elapsed calendar years and months,
// e.g. "2 ans, 3 mois". Returns "" when the birthdate is unknown.
func (c *Cat) AgeString(today time.Time) string {
	if c.Birthdate == nil || c.Birthdate.IsZero() {
		return ""
	}

	birth := *c.Birthdate
	if birth.After(today) {
		return "0 mois"
	}

	// Step whole calendar years, then whole calendar months, so that the
	// result follows the calendar rather than a fixed 365-day year.
	years := 0
	for !birth.AddDate(years+1, 0, 0).After(today) {
		years++
	}
	months := 0
	for !birth.AddDate(years, months+1, 0).After(today) {
		months++
	}

	if years == 0 {
		return fmt.Sprintf("%d mois", months)
	}
	return fmt.Sprintf("%d ans, %d mois", years, months)
}
