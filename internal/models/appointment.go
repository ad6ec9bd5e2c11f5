package models

import (
	"time"
)

// Appointment represents a scheduled visit (veterinarian, adoption meeting,
// transport...). Cats and employees are linked through explicit join rows;
// deleting an appointment removes the links but never the cats or employees.
type Appointment struct {
	BaseModel
	Date     time.Time `gorm:"not null" json:"date"`
	Location string    `gorm:"size:200" json:"location,omitempty"`
	Notes    string    `gorm:"type:text" json:"notes,omitempty"`

	Cats      []AppointmentCat      `gorm:"foreignKey:AppointmentID" json:"-"`
	Employees []AppointmentEmployee `gorm:"foreignKey:AppointmentID" json:"-"`
}

// AppointmentCat links an appointment to a participating cat.
type AppointmentCat struct {
	BaseModel
	AppointmentID string `gorm:"size:36;index;not null" json:"appointmentId"`
	CatID         string `gorm:"size:36;index;not null" json:"catId"`

	Appointment Appointment `gorm:"foreignKey:AppointmentID" json:"-"`
	Cat         Cat         `gorm:"foreignKey:CatID" json:"-"`
}

// AppointmentEmployee links an appointment to an attending employee.
type AppointmentEmployee struct {
	BaseModel
	AppointmentID string `gorm:"size:36;index;not null" json:"appointmentId"`
	EmployeeID    string `gorm:"size:36;index;not null" json:"employeeId"`

	Appointment Appointment `gorm:"foreignKey:AppointmentID" json:"-"`
	Employee    Employee    `gorm:"foreignKey:EmployeeID" json:"-"`
}
