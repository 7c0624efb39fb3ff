package services

import (
	"errors"
	"fmt"
	"strings"

	"hotel-management/models"

	"gorm.io/gorm"
)

type RoomService struct {
	DB *gorm.DB
}

func NewRoomService(db *gorm.DB) *RoomService {
	return &RoomService{DB: db}
}

func (s *RoomService) Create(room *models.Room) error {
	room.RoomNumber = strings.TrimSpace(room.RoomNumber)
	if room.RoomNumber == "" {
		return fmt.Errorf("validation: room number is required")
	}

	if room.RoomTypeID != nil {
		var rt models.RoomType
		if err := s.DB.First(&rt, *room.RoomTypeID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrRoomTypeNotFound
			}
			return fmt.Errorf("db error checking room type %d: %w", *room.RoomTypeID, err)
		}
	}

	if err := s.DB.Create(room).Error; err != nil {
		// unique index on room_number
		msg := strings.ToLower(err.Error())
		if strings.Contains(msg, "duplicate") || strings.Contains(msg, "unique") {
			return ErrDuplicateRoom
		}
		return fmt.Errorf("failed to create room: %w", err)
	}
	return nil
}

func (s *RoomService) GetByID(id uint) (*models.Room, error) {
	var room models.Room
	if err := s.DB.Preload("RoomType").First(&room, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRoomNotFound
		}
		return nil, fmt.Errorf("failed to load room %d: %w", id, err)
	}
	return &room, nil
}

// SetFlags partially updates the availability and/or maintenance flag. Nil
// pointers leave the corresponding flag alone. This backs the "mark for
// maintenance" and "mark as available" room actions.
func (s *RoomService) SetFlags(roomID uint, availability, maintenance *bool) error {
	if availability == nil && maintenance == nil {
		return ErrNoFlagsGiven
	}

	var room models.Room
	if err := s.DB.First(&room, roomID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrRoomNotFound
		}
		return fmt.Errorf("db error loading room %d: %w", roomID, err)
	}

	updates := map[string]interface{}{}
	if availability != nil {
		updates["availability"] = *availability
	}
	if maintenance != nil {
		updates["maintenance_status"] = *maintenance
	}

	if err := s.DB.Model(&room).Updates(updates).Error; err != nil {
		return fmt.Errorf("failed to update room %d flags: %w", roomID, err)
	}
	return nil
}

// Update writes arbitrary room columns from a sanitized map.
func (s *RoomService) Update(roomID uint, updates map[string]interface{}) error {
	delete(updates, "id")
	delete(updates, "created_at")
	delete(updates, "updated_at")
	delete(updates, "deleted_at")

	res := s.DB.Model(&models.Room{}).Where("id = ?", roomID).Updates(updates)
	if res.Error != nil {
		return fmt.Errorf("failed to update room %d: %w", roomID, res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrRoomNotFound
	}
	return nil
}

func (s *RoomService) Delete(roomID uint) error {
	res := s.DB.Delete(&models.Room{}, roomID)
	if res.Error != nil {
		return fmt.Errorf("failed to delete room %d: %w", roomID, res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrRoomNotFound
	}
	return nil
}
