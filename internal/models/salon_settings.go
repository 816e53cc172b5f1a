package models

import "time"

// SalonSettingsID is the primary key of the single settings row.
const SalonSettingsID uint = 1

type SalonSettings struct {
	ID               uint      `gorm:"primaryKey" json:"id"`
	NumberOfStylists int       `gorm:"not null;default:1" json:"number_of_stylists"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}
