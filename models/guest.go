package models

import (
	"time"
)

type Guest struct {
	ID uint `gorm:"primaryKey;autoIncrement" json:"id"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	FirstName string `json:"firstName" gorm:"column:first_name;size:100;index"`
	LastName  string `json:"lastName" gorm:"column:last_name;size:100;index"`
	Email     string `json:"email" gorm:"size:255"`
	Phone     string `json:"phone" gorm:"size:50"`

	Address        string     `json:"address"`
	City           string     `json:"city" gorm:"size:100"`
	Country        string     `json:"country" gorm:"size:100"`
	PassportNumber string     `json:"passportNumber" gorm:"column:passport_number;size:64"`
	DateOfBirth    *time.Time `json:"dateOfBirth" gorm:"column:date_of_birth"`
}
