package services

import (
	"errors"
	"fmt"
	"log"
	"strings"

	"hotel-management/models"

	"gorm.io/gorm"
)

type GuestService struct {
	DB *gorm.DB
}

func NewGuestService(db *gorm.DB) *GuestService {
	return &GuestService{DB: db}
}

// Create inserts a guest; the pointer gets the new ID filled back in.
func (s *GuestService) Create(guest *models.Guest) error {
	guest.FirstName = strings.TrimSpace(guest.FirstName)
	guest.LastName = strings.TrimSpace(guest.LastName)
	if guest.FirstName == "" || guest.LastName == "" {
		return fmt.Errorf("validation: first and last name are required")
	}

	if err := s.DB.Create(guest).Error; err != nil {
		return fmt.Errorf("failed to create guest: %w", err)
	}
	log.Printf("GuestService.Create: guest_id=%d", guest.ID)
	return nil
}

// GetAll lists guests ordered by last then first name, matching the registry
// view of the front desk.
func (s *GuestService) GetAll() ([]models.Guest, error) {
	var guests []models.Guest
	err := s.DB.
		Order("last_name ASC, first_name ASC").
		Find(&guests).Error
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve guests: %w", err)
	}
	return guests, nil
}

// FindByName returns guests whose first or last name contains the search
// term. An empty result is not an error.
func (s *GuestService) FindByName(namePart string) ([]models.Guest, error) {
	pattern := "%" + strings.TrimSpace(namePart) + "%"

	var guests []models.Guest
	err := s.DB.
		Where("first_name LIKE ? OR last_name LIKE ?", pattern, pattern).
		Order("last_name ASC, first_name ASC").
		Find(&guests).Error
	if err != nil {
		return nil, fmt.Errorf("failed to search guests: %w", err)
	}
	return guests, nil
}

func (s *GuestService) GetByID(id uint) (*models.Guest, error) {
	var guest models.Guest
	if err := s.DB.First(&guest, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrGuestNotFound
		}
		return nil, fmt.Errorf("failed to load guest %d: %w", id, err)
	}
	return &guest, nil
}

// Update writes the non-zero fields of guest.
func (s *GuestService) Update(guest *models.Guest) error {
	res := s.DB.Model(&models.Guest{}).
		Where("id = ?", guest.ID).
		Updates(guest)
	if res.Error != nil {
		return fmt.Errorf("failed to update guest %d: %w", guest.ID, res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrGuestNotFound
	}
	return nil
}
