package controllers

import (
	"errors"
	"net/http"

	"hotel-reservation/models"
	"hotel-reservation/services"
	"hotel-reservation/utils"

	"github.com/gin-gonic/gin"
)

type RoomController struct {
	Service *services.RoomService
}

func NewRoomController(service *services.RoomService) *RoomController {
	return &RoomController{Service: service}
}

type roomPayload struct {
	RoomNumber  string `json:"roomNumber" binding:"required"`
	RoomTypeID  uint   `json:"roomTypeId" binding:"required"`
	IsAvailable *bool  `json:"isAvailable"`
}

func (p roomPayload) toModel() models.Room {
	available := true
	if p.IsAvailable != nil {
		available = *p.IsAvailable
	}
	return models.Room{
		RoomNumber:  p.RoomNumber,
		RoomTypeID:  p.RoomTypeID,
		IsAvailable: available,
	}
}

func (rc *RoomController) GetRooms(c *gin.Context) {
	rooms, err := rc.Service.GetAll()
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, rooms)
}

func (rc *RoomController) GetRoom(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	room, err := rc.Service.GetByID(id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, room)
}

func (rc *RoomController) CreateRoom(c *gin.Context) {
	var payload roomPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request payload: "+err.Error())
		return
	}

	room := payload.toModel()
	if err := rc.Service.Create(&room); err != nil {
		var vErr *services.ValidationError
		if errors.As(err, &vErr) {
			utils.JSONValidation(c, vErr.Messages, payload)
			return
		}
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, room)
}

func (rc *RoomController) UpdateRoom(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var payload roomPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request payload: "+err.Error())
		return
	}

	room := payload.toModel()
	room.ID = id
	if err := rc.Service.Update(&room); err != nil {
		var vErr *services.ValidationError
		if errors.As(err, &vErr) {
			utils.JSONValidation(c, vErr.Messages, payload)
			return
		}
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"message": "Room updated"})
}

func (rc *RoomController) DeleteRoom(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := rc.Service.Delete(id); err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"message": "Room deleted"})
}
