package models

import (
	"time"

	"gorm.io/gorm"
)

// RoomType is static reference data; the core never mutates it.
type RoomType struct {
	ID uint `gorm:"primaryKey" json:"id"`

	TypeName    string  `json:"typeName" gorm:"column:type_name;size:100"`
	Description string  `json:"description"`
	BasePrice   float64 `json:"basePrice" gorm:"column:base_price"`
	MaxGuests   uint    `json:"maxGuests" gorm:"column:max_guests"`

	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
