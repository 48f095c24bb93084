package models

import (
	"time"
)

type User struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	UUID         string    `gorm:"uniqueIndex;size:36" json:"uuid"` // Public ID carried in session tokens
	FirstName    string    `gorm:"size:100" json:"first_name"`
	LastName     string    `gorm:"size:100" json:"last_name"`
	Username     string    `gorm:"uniqueIndex;size:32" json:"username"` // Login name, equal to Phone
	PasswordHash string    `json:"-"`                                   // Bcrypt hash, never serialized
	Phone        string    `gorm:"uniqueIndex;size:32" json:"phone"`
	Email        string    `gorm:"size:255" json:"email"`
	Address1     string    `json:"address1"`
	Address2     string    `json:"address2"`
	DOB          time.Time `gorm:"type:date" json:"dob"`
	PanNumber    string    `gorm:"size:16" json:"pan_number"` // Tax id
	PinCode      string    `gorm:"size:12" json:"pin_code"`   // Postal code
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// DisplayName joins the name parts the way statements and login summaries show them.
func (u *User) DisplayName() string {
	return u.FirstName + " " + u.LastName
}
