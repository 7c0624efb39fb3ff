package models

import (
	"time"

	"gorm.io/gorm"
)

// Derived room statuses. Never persisted; computed on read from the
// maintenance flag plus live reservation coverage (see services.RoomService).
const (
	RoomStatusAvailable   = "Available"
	RoomStatusOccupied    = "Occupied"
	RoomStatusMaintenance = "Maintenance"
)

type Room struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	// Nullable so an insert without a valid FK doesn't try to write 0.
	RoomTypeID *uint `json:"roomTypeId,omitempty" gorm:"column:room_type_id;index"`

	RoomNumber  string `json:"roomNumber" gorm:"column:room_number;uniqueIndex;type:varchar(50)"`
	FloorNumber int    `json:"floorNumber" gorm:"column:floor_number"`

	// Availability tracks occupancy, MaintenanceStatus marks a room out of
	// service. Both are written only by the reservation lifecycle and the
	// explicit room-status actions.
	Availability      bool `json:"availability" gorm:"column:availability;default:true"`
	MaintenanceStatus bool `json:"maintenanceStatus" gorm:"column:maintenance_status;default:false"`

	RoomType RoomType `gorm:"foreignKey:RoomTypeID" json:"roomType,omitempty"`
}

// DeriveRoomStatus maps the maintenance flag and today's reservation coverage
// to the displayed status. Maintenance wins over Occupied, Occupied over
// Available. The stored availability flag does not participate once
// reservations are consulted.
func DeriveRoomStatus(maintenance, occupiedToday bool) string {
	if maintenance {
		return RoomStatusMaintenance
	}
	if occupiedToday {
		return RoomStatusOccupied
	}
	return RoomStatusAvailable
}
