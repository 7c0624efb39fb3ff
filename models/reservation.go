package models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Reservation statuses. A reservation starts out confirmed; checked-out and
// cancelled are terminal. Every status write co-updates the owning room's
// flags inside one transaction (see services.ReservationService.SetStatus).
const (
	ReservationStatusConfirmed  = "confirmed"
	ReservationStatusCheckedIn  = "checked-in"
	ReservationStatusCheckedOut = "checked-out"
	ReservationStatusCancelled  = "cancelled"
)

// ValidReservationStatus reports whether s is one of the known statuses.
func ValidReservationStatus(s string) bool {
	switch s {
	case ReservationStatusConfirmed, ReservationStatusCheckedIn,
		ReservationStatusCheckedOut, ReservationStatusCancelled:
		return true
	}
	return false
}

type Reservation struct {
	ID uint `gorm:"primaryKey" json:"id"`

	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	ReferenceCode string `gorm:"column:reference_code;size:64;uniqueIndex" json:"referenceCode"`

	GuestID uint `gorm:"column:guest_id;index" json:"guestId"`
	RoomID  uint `gorm:"column:room_id;index" json:"roomId"`

	// Date-only values normalized to UTC midnight; the interval is half-open,
	// the check-out day itself is free for a new check-in.
	CheckInDate  time.Time `gorm:"column:check_in_date;type:date" json:"checkInDate"`
	CheckOutDate time.Time `gorm:"column:check_out_date;type:date" json:"checkOutDate"`

	Adults   int `gorm:"column:adults;default:1" json:"adults"`
	Children int `gorm:"column:children;default:0" json:"children"`

	SpecialRequests string `gorm:"column:special_requests;type:text" json:"specialRequests,omitempty"`

	// Draft list of accompanying guest names captured at booking time.
	AccompanyingGuests datatypes.JSON `gorm:"column:accompanying_guests" json:"accompanyingGuests,omitempty"`

	Status string `gorm:"column:status;size:32;index" json:"status"`

	Guest Guest `gorm:"foreignKey:GuestID;references:ID" json:"guest,omitempty"`
	Room  Room  `gorm:"foreignKey:RoomID;references:ID" json:"room,omitempty"`
}
