package services

import (
	"errors"

	"hotel-reservation/models"

	"gorm.io/gorm"
)

type RoomService struct {
	DB *gorm.DB
}

func NewRoomService(db *gorm.DB) *RoomService {
	return &RoomService{DB: db}
}

func (s *RoomService) GetAll() ([]models.Room, error) {
	var rooms []models.Room
	err := s.DB.Preload("RoomType").Order("rooms.room_number").Find(&rooms).Error
	return rooms, err
}

// GetAvailable returns the rooms offered on the reservation create form.
func (s *RoomService) GetAvailable() ([]models.Room, error) {
	var rooms []models.Room
	err := s.DB.Preload("RoomType").
		Where("is_available = ?", true).
		Order("rooms.room_number").
		Find(&rooms).Error
	return rooms, err
}

func (s *RoomService) GetByID(id uint) (models.Room, error) {
	var room models.Room
	if err := s.DB.Preload("RoomType").First(&room, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Room{}, ErrNotFound
		}
		return models.Room{}, err
	}
	return room, nil
}

func (s *RoomService) Create(room *models.Room) error {
	var rt models.RoomType
	if err := s.DB.First(&rt, room.RoomTypeID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &ValidationError{Messages: []string{"Selected room type does not exist."}}
		}
		return err
	}

	if err := s.DB.Create(room).Error; err != nil {
		if isDuplicateKeyErr(err) {
			return ErrDuplicate
		}
		return err
	}
	return nil
}

func (s *RoomService) Update(room *models.Room) error {
	var existing models.Room
	if err := s.DB.First(&existing, room.ID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}

	var rt models.RoomType
	if err := s.DB.First(&rt, room.RoomTypeID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &ValidationError{Messages: []string{"Selected room type does not exist."}}
		}
		return err
	}

	if err := s.DB.Model(&existing).Updates(map[string]interface{}{
		"room_number":  room.RoomNumber,
		"room_type_id": room.RoomTypeID,
		"is_available": room.IsAvailable,
	}).Error; err != nil {
		if isDuplicateKeyErr(err) {
			return ErrDuplicate
		}
		return err
	}
	return nil
}

func (s *RoomService) Delete(id uint) error {
	result := s.DB.Delete(&models.Room{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
