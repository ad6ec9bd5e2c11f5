package models

import (
	"golang.org/x/crypto/bcrypt"
)

// Employee represents a staff member of the shelter
type Employee struct {
	BaseModel
	Name         string `gorm:"size:100;not null" json:"name"`
	Role         string `gorm:"size:100" json:"role,omitempty"`
	Email        string `gorm:"size:255;index" json:"email,omitempty"`
	PasswordHash string `gorm:"size:255" json:"-"`

	Appointments []AppointmentEmployee `gorm:"foreignKey:EmployeeID" json:"-"`
}

// SetPassword hashes a password and sets it on the employee
func (e *Employee) SetPassword(password string) error {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	e.PasswordHash = string(hashedPassword)
	return nil
}

// CheckPassword compares a password with the employee's hashed password
func (e *Employee) CheckPassword(password string) bool {
	if e.PasswordHash == "" {
		return false
	}
	err := bcrypt.CompareHashAndPassword([]byte(e.PasswordHash), []byte(password))
	return err == nil
}
