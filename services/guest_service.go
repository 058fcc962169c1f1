package services

import (
	"errors"

	"hotel-reservation/models"

	"gorm.io/gorm"
)

type GuestService struct {
	DB *gorm.DB
}

func NewGuestService(db *gorm.DB) *GuestService {
	return &GuestService{DB: db}
}

func (s *GuestService) Create(guest *models.Guest) error {
	if err := s.DB.Create(guest).Error; err != nil {
		if isDuplicateKeyErr(err) {
			return ErrDuplicate
		}
		return err
	}
	return nil
}

func (s *GuestService) GetAll() ([]models.Guest, error) {
	var guests []models.Guest
	err := s.DB.Order("guests.id").Find(&guests).Error
	return guests, err
}

func (s *GuestService) GetByID(id uint) (models.Guest, error) {
	var guest models.Guest
	if err := s.DB.First(&guest, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Guest{}, ErrNotFound
		}
		return models.Guest{}, err
	}
	return guest, nil
}

func (s *GuestService) GetByEmail(email string) (models.Guest, error) {
	var guest models.Guest
	if err := s.DB.Where("email = ?", email).First(&guest).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Guest{}, ErrNotFound
		}
		return models.Guest{}, err
	}
	return guest, nil
}

// FindOrCreateByEmail is the self-provisioning primitive: it returns the
// guest identified by email, creating a placeholder row ("Guest" / email)
// on first sight. Called once at the top of reservation create for
// non-admin requesters.
func (s *GuestService) FindOrCreateByEmail(email string) (models.Guest, error) {
	var guest models.Guest
	err := s.DB.Where(models.Guest{Email: email}).
		Attrs(models.Guest{FirstName: "Guest", LastName: email}).
		FirstOrCreate(&guest).Error
	return guest, err
}

func (s *GuestService) Update(guest *models.Guest) error {
	var existing models.Guest
	if err := s.DB.First(&existing, guest.ID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	if err := s.DB.Model(&existing).Updates(map[string]interface{}{
		"first_name": guest.FirstName,
		"last_name":  guest.LastName,
		"email":      guest.Email,
	}).Error; err != nil {
		if isDuplicateKeyErr(err) {
			return ErrDuplicate
		}
		return err
	}
	return nil
}

func (s *GuestService) Delete(id uint) error {
	result := s.DB.Delete(&models.Guest{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
