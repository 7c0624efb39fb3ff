package services

import (
	"fmt"
	"time"

	"hotel-management/models"

	"gorm.io/gorm"
)

// AvailabilityService answers two read-only questions: which rooms are free
// for a date range, and what each room's derived status is right now. It
// never writes.
type AvailabilityService struct {
	DB *gorm.DB

	// Now supplies "today" so callers and tests can pin the clock.
	Now func() time.Time
}

func NewAvailabilityService(db *gorm.DB) *AvailabilityService {
	return &AvailabilityService{DB: db, Now: time.Now}
}

// RoomSummary is a row of the availability search result.
type RoomSummary struct {
	RoomID      uint    `json:"roomId" gorm:"column:room_id"`
	RoomNumber  string  `json:"roomNumber" gorm:"column:room_number"`
	TypeName    string  `json:"typeName" gorm:"column:type_name"`
	BasePrice   float64 `json:"basePrice" gorm:"column:base_price"`
	FloorNumber int     `json:"floorNumber" gorm:"column:floor_number"`
}

// RoomRow is a room with its derived status attached, as shown in the room
// list and counted by the dashboard.
type RoomRow struct {
	RoomID      uint    `json:"roomId" gorm:"column:room_id"`
	RoomNumber  string  `json:"roomNumber" gorm:"column:room_number"`
	TypeName    string  `json:"typeName" gorm:"column:type_name"`
	BasePrice   float64 `json:"basePrice" gorm:"column:base_price"`
	FloorNumber int     `json:"floorNumber" gorm:"column:floor_number"`
	Status      string  `json:"status" gorm:"-"`

	Maintenance bool `json:"-" gorm:"column:maintenance_status"`
}

// OccupancySummary holds the dashboard counts.
type OccupancySummary struct {
	Available   int `json:"available"`
	Occupied    int `json:"occupied"`
	Maintenance int `json:"maintenance"`
	Total       int `json:"total"`
}

// dateOnly normalizes t to UTC midnight so stored and queried date values
// compare consistently across drivers.
func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// activeStatuses are the reservation states that block a room.
func activeStatuses() []string {
	return []string{models.ReservationStatusConfirmed, models.ReservationStatusCheckedIn}
}

// ListAvailableRooms returns rooms with no conflicting reservation for the
// half-open range [checkIn, checkOut), excluding rooms under maintenance,
// ordered by room number. Two ranges [a,b) and [c,d) conflict iff a < d and
// c < b, so a checkout on day X never blocks a check-in on day X. The caller
// is expected to have validated checkOut > checkIn.
func (s *AvailabilityService) ListAvailableRooms(checkIn, checkOut time.Time) ([]RoomSummary, error) {
	ci := dateOnly(checkIn)
	co := dateOnly(checkOut)

	conflicting := s.DB.Model(&models.Reservation{}).
		Select("room_id").
		Where("status IN ?", activeStatuses()).
		Where("check_in_date < ? AND check_out_date > ?", co, ci)

	var rooms []RoomSummary
	err := s.DB.Model(&models.Room{}).
		Select("rooms.id AS room_id, rooms.room_number, room_types.type_name, room_types.base_price, rooms.floor_number").
		Joins("JOIN room_types ON room_types.id = rooms.room_type_id").
		Where("rooms.maintenance_status = ?", false).
		Where("rooms.id NOT IN (?)", conflicting).
		Order("rooms.room_number ASC").
		Scan(&rooms).Error
	if err != nil {
		return nil, fmt.Errorf("failed to query available rooms: %w", err)
	}
	return rooms, nil
}

// OccupiedRoomIDs returns the ids of rooms covered today by a confirmed or
// checked-in reservation. Coverage is half-open: a reservation checking out
// today no longer occupies the room.
func (s *AvailabilityService) OccupiedRoomIDs() (map[uint]bool, error) {
	today := dateOnly(s.Now())

	var ids []uint
	err := s.DB.Model(&models.Reservation{}).
		Where("status IN ?", activeStatuses()).
		Where("check_in_date <= ? AND check_out_date > ?", today, today).
		Pluck("room_id", &ids).Error
	if err != nil {
		return nil, fmt.Errorf("failed to query occupied rooms: %w", err)
	}

	occupied := make(map[uint]bool, len(ids))
	for _, id := range ids {
		occupied[id] = true
	}
	return occupied, nil
}

// ListRoomsWithStatus returns every room with its derived status. The status
// is recomputed on each call and never written back.
func (s *AvailabilityService) ListRoomsWithStatus() ([]RoomRow, error) {
	var rooms []RoomRow
	err := s.DB.Model(&models.Room{}).
		Select("rooms.id AS room_id, rooms.room_number, room_types.type_name, room_types.base_price, rooms.floor_number, rooms.maintenance_status").
		Joins("JOIN room_types ON room_types.id = rooms.room_type_id").
		Order("rooms.room_number ASC").
		Scan(&rooms).Error
	if err != nil {
		return nil, fmt.Errorf("failed to query rooms: %w", err)
	}

	occupied, err := s.OccupiedRoomIDs()
	if err != nil {
		return nil, err
	}

	for i := range rooms {
		rooms[i].Status = models.DeriveRoomStatus(rooms[i].Maintenance, occupied[rooms[i].RoomID])
	}
	return rooms, nil
}

// Summary counts rooms per derived status for the dashboard.
func (s *AvailabilityService) Summary() (OccupancySummary, error) {
	rooms, err := s.ListRoomsWithStatus()
	if err != nil {
		return OccupancySummary{}, err
	}

	var out OccupancySummary
	out.Total = len(rooms)
	for _, r := range rooms {
		switch r.Status {
		case models.RoomStatusMaintenance:
			out.Maintenance++
		case models.RoomStatusOccupied:
			out.Occupied++
		default:
			out.Available++
		}
	}
	return out, nil
}
