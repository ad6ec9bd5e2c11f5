package models

import (
	"time"
)

// VaccineType is a catalog entry for the vaccines the shelter administers.
// Records reference vaccines by name, not by foreign key; the catalog is a
// pick-list only.
type VaccineType struct {
	BaseModel
	Name string `gorm:"size:100;uniqueIndex;not null" json:"name"`
}

// VaccineRecord represents one administered dose for a cat.
type VaccineRecord struct {
	BaseModel
	CatID        string    `gorm:"size:36;index;not null" json:"catId"`
	VaccineName  string    `gorm:"size:100;not null" json:"vaccineName"`
	Date         time.Time `json:"date"`
	Lot          string    `gorm:"size:100" json:"lot,omitempty"`
	Veterinarian string    `gorm:"size:100" json:"veterinarian,omitempty"`
	Reaction     string    `gorm:"size:255" json:"reaction,omitempty"`

	Cat Cat `gorm:"foreignKey:CatID" json:"-"`
}

// NextDue returns the renewal date for this dose: one calendar year after
// administration. A Feb 29 dose falls due Mar 1 on non-leap years.
func (r *VaccineRecord) NextDue() time.Time {
	return r.Date.AddDate(1, 0, 0)
}
