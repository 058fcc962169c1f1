package services

import (
	"errors"

	"hotel-reservation/models"

	"gorm.io/gorm"
)

type RoomTypeService struct {
	DB *gorm.DB
}

func NewRoomTypeService(db *gorm.DB) *RoomTypeService {
	return &RoomTypeService{DB: db}
}

func (s *RoomTypeService) Create(rt *models.RoomType) error {
	return s.DB.Create(rt).Error
}

func (s *RoomTypeService) GetAll() ([]models.RoomType, error) {
	var types []models.RoomType
	err := s.DB.Order("room_types.name").Find(&types).Error
	return types, err
}

func (s *RoomTypeService) GetByID(id uint) (models.RoomType, error) {
	var rt models.RoomType
	if err := s.DB.First(&rt, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.RoomType{}, ErrNotFound
		}
		return models.RoomType{}, err
	}
	return rt, nil
}

func (s *RoomTypeService) Update(rt *models.RoomType) error {
	var existing models.RoomType
	if err := s.DB.First(&existing, rt.ID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	return s.DB.Model(&existing).Updates(map[string]interface{}{
		"name":       rt.Name,
		"base_price": rt.BasePrice,
	}).Error
}

func (s *RoomTypeService) Delete(id uint) error {
	result := s.DB.Delete(&models.RoomType{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
