package services

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"hotel-management/models"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// ReservationService owns the reservation lifecycle. It is the only component
// that mutates room flags as a side effect of a status change, and it always
// does so in the same transaction as the status write.
type ReservationService struct {
	DB *gorm.DB

	// Now supplies "today" for the check-in search; tests pin it.
	Now func() time.Time
}

func NewReservationService(db *gorm.DB) *ReservationService {
	return &ReservationService{DB: db, Now: time.Now}
}

// CreateReservationInput carries the booking form fields.
type CreateReservationInput struct {
	GuestID            uint
	RoomID             uint
	CheckIn            time.Time
	CheckOut           time.Time
	Adults             int
	Children           int
	SpecialRequests    string
	AccompanyingGuests []string
}

// CheckinCandidate is the row returned by the check-in/check-out searches,
// with the guest and room display fields joined in.
type CheckinCandidate struct {
	ReservationID uint      `json:"reservationId" gorm:"column:reservation_id"`
	RoomID        uint      `json:"roomId" gorm:"column:room_id"`
	RoomNumber    string    `json:"roomNumber" gorm:"column:room_number"`
	GuestID       uint      `json:"guestId" gorm:"column:guest_id"`
	FirstName     string    `json:"firstName" gorm:"column:first_name"`
	LastName      string    `json:"lastName" gorm:"column:last_name"`
	CheckInDate   time.Time `json:"checkInDate" gorm:"column:check_in_date"`
	CheckOutDate  time.Time `json:"checkOutDate" gorm:"column:check_out_date"`
	Status        string    `json:"status" gorm:"column:status"`
}

// Create inserts a new reservation with status confirmed and returns it.
// The guest and room must exist and the dates must form a non-empty range.
// Availability is not re-checked here: the caller queried it beforehand, and
// a concurrent booking can still slip between that check and this insert.
func (s *ReservationService) Create(in CreateReservationInput) (*models.Reservation, error) {
	ci := dateOnly(in.CheckIn)
	co := dateOnly(in.CheckOut)
	if !co.After(ci) {
		return nil, ErrInvalidDateRange
	}
	if in.Adults < 1 {
		return nil, fmt.Errorf("validation: adults must be at least 1")
	}
	if in.Children < 0 {
		return nil, fmt.Errorf("validation: children must not be negative")
	}

	var guest models.Guest
	if err := s.DB.First(&guest, in.GuestID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrGuestNotFound
		}
		return nil, fmt.Errorf("db error checking guest %d: %w", in.GuestID, err)
	}

	var room models.Room
	if err := s.DB.First(&room, in.RoomID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRoomNotFound
		}
		return nil, fmt.Errorf("db error checking room %d: %w", in.RoomID, err)
	}

	var accompanying datatypes.JSON
	if len(in.AccompanyingGuests) > 0 {
		raw, err := json.Marshal(in.AccompanyingGuests)
		if err != nil {
			return nil, fmt.Errorf("failed to encode accompanying guests: %w", err)
		}
		accompanying = datatypes.JSON(raw)
	}

	res := &models.Reservation{
		ReferenceCode:      uuid.NewString(),
		GuestID:            guest.ID,
		RoomID:             room.ID,
		CheckInDate:        ci,
		CheckOutDate:       co,
		Adults:             in.Adults,
		Children:           in.Children,
		SpecialRequests:    strings.TrimSpace(in.SpecialRequests),
		AccompanyingGuests: accompanying,
		Status:             models.ReservationStatusConfirmed,
	}

	if err := s.DB.Create(res).Error; err != nil {
		return nil, fmt.Errorf("failed to create reservation: %w", err)
	}
	return res, nil
}

// roomFlagsFor maps a new reservation status to the paired room flag update.
// A checked-out room goes into the cleaning queue, which is why it stays
// unavailable and gains the maintenance flag.
func roomFlagsFor(status string) map[string]interface{} {
	switch status {
	case models.ReservationStatusCheckedIn:
		return map[string]interface{}{"availability": false}
	case models.ReservationStatusCheckedOut:
		return map[string]interface{}{"availability": false, "maintenance_status": true}
	case models.ReservationStatusCancelled:
		return map[string]interface{}{"availability": true, "maintenance_status": false}
	}
	return nil
}

// SetStatus writes the new reservation status and the paired room flags as a
// single all-or-nothing unit. The only precondition is that the reservation
// exists; the legacy flow deliberately does not enforce transition order.
func (s *ReservationService) SetStatus(reservationID uint, newStatus string) error {
	if !models.ValidReservationStatus(newStatus) {
		return ErrInvalidStatus
	}

	return s.DB.Transaction(func(tx *gorm.DB) error {
		var res models.Reservation
		if err := tx.First(&res, reservationID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrReservationNotFound
			}
			return fmt.Errorf("db error loading reservation %d: %w", reservationID, err)
		}

		if err := tx.Model(&res).Update("status", newStatus).Error; err != nil {
			return fmt.Errorf("failed to update reservation status: %w", err)
		}

		flags := roomFlagsFor(newStatus)
		if flags == nil {
			return nil
		}

		var room models.Room
		if err := tx.First(&room, res.RoomID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				// Paired write impossible; roll the status write back too.
				return ErrRoomNotFound
			}
			return fmt.Errorf("db error loading room %d: %w", res.RoomID, err)
		}

		if err := tx.Model(&room).Updates(flags).Error; err != nil {
			return fmt.Errorf("failed to update room %d flags: %w", room.ID, err)
		}

		return nil
	})
}

// CheckIn transitions a reservation to checked-in.
func (s *ReservationService) CheckIn(reservationID uint) error {
	return s.SetStatus(reservationID, models.ReservationStatusCheckedIn)
}

// CheckOut transitions a reservation to checked-out.
func (s *ReservationService) CheckOut(reservationID uint) error {
	return s.SetStatus(reservationID, models.ReservationStatusCheckedOut)
}

// Cancel transitions a reservation to cancelled.
func (s *ReservationService) Cancel(reservationID uint) error {
	return s.SetStatus(reservationID, models.ReservationStatusCancelled)
}

// FindForCheckin looks for a confirmed reservation due today whose room
// number matches the search token exactly, or whose guest first/last name
// matches it partially. At most one row comes back; ties break on the lowest
// reservation id. A missing match is (nil, nil), not an error.
func (s *ReservationService) FindForCheckin(searchToken string) (*CheckinCandidate, error) {
	token := strings.TrimSpace(searchToken)
	if token == "" {
		return nil, nil
	}
	today := dateOnly(s.Now())
	pattern := "%" + token + "%"

	var row CheckinCandidate
	err := s.DB.Table("reservations").
		Select("reservations.id AS reservation_id, reservations.room_id, rooms.room_number, guests.id AS guest_id, guests.first_name, guests.last_name, reservations.check_in_date, reservations.check_out_date, reservations.status").
		Joins("JOIN guests ON guests.id = reservations.guest_id").
		Joins("JOIN rooms ON rooms.id = reservations.room_id").
		Where("reservations.deleted_at IS NULL").
		Where("reservations.status = ?", models.ReservationStatusConfirmed).
		Where("reservations.check_in_date = ?", today).
		Where("rooms.room_number = ? OR guests.first_name LIKE ? OR guests.last_name LIKE ?", token, pattern, pattern).
		Order("reservations.id ASC").
		Limit(1).
		Scan(&row).Error
	if err != nil {
		return nil, fmt.Errorf("failed to search reservations for check-in: %w", err)
	}
	if row.ReservationID == 0 {
		return nil, nil
	}
	return &row, nil
}

// FindForCheckout looks for the checked-in reservation occupying the given
// room number. A missing match is (nil, nil), not an error.
func (s *ReservationService) FindForCheckout(roomNumber string) (*CheckinCandidate, error) {
	number := strings.TrimSpace(roomNumber)
	if number == "" {
		return nil, nil
	}

	var row CheckinCandidate
	err := s.DB.Table("reservations").
		Select("reservations.id AS reservation_id, reservations.room_id, rooms.room_number, guests.id AS guest_id, guests.first_name, guests.last_name, reservations.check_in_date, reservations.check_out_date, reservations.status").
		Joins("JOIN guests ON guests.id = reservations.guest_id").
		Joins("JOIN rooms ON rooms.id = reservations.room_id").
		Where("reservations.deleted_at IS NULL").
		Where("reservations.status = ?", models.ReservationStatusCheckedIn).
		Where("rooms.room_number = ?", number).
		Order("reservations.id ASC").
		Limit(1).
		Scan(&row).Error
	if err != nil {
		return nil, fmt.Errorf("failed to search reservations for check-out: %w", err)
	}
	if row.ReservationID == 0 {
		return nil, nil
	}
	return &row, nil
}

// GetByID loads a reservation with its guest and room.
func (s *ReservationService) GetByID(id uint) (*models.Reservation, error) {
	var res models.Reservation
	if err := s.DB.Preload("Guest").Preload("Room.RoomType").First(&res, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrReservationNotFound
		}
		return nil, fmt.Errorf("failed to load reservation %d: %w", id, err)
	}
	return &res, nil
}

// GetAllWithRelations lists reservations newest first with guest and room
// preloaded, for the back-office list view.
func (s *ReservationService) GetAllWithRelations() ([]models.Reservation, error) {
	var list []models.Reservation
	err := s.DB.
		Preload("Guest").
		Preload("Room").
		Preload("Room.RoomType").
		Order("created_at DESC").
		Find(&list).Error
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve reservations: %w", err)
	}
	log.Printf("ReservationService.GetAllWithRelations: %d reservations", len(list))
	return list, nil
}
