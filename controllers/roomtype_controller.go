package controllers

import (
	"net/http"

	"hotel-reservation/models"
	"hotel-reservation/services"
	"hotel-reservation/utils"

	"github.com/gin-gonic/gin"
)

type RoomTypeController struct {
	Service *services.RoomTypeService
}

func NewRoomTypeController(service *services.RoomTypeService) *RoomTypeController {
	return &RoomTypeController{Service: service}
}

type roomTypePayload struct {
	Name      string   `json:"name" binding:"required"`
	BasePrice *float64 `json:"basePrice" binding:"required,gte=0"`
}

func (rtc *RoomTypeController) GetRoomTypes(c *gin.Context) {
	types, err := rtc.Service.GetAll()
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, types)
}

func (rtc *RoomTypeController) CreateRoomType(c *gin.Context) {
	var payload roomTypePayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request payload: "+err.Error())
		return
	}

	rt := models.RoomType{Name: payload.Name, BasePrice: *payload.BasePrice}
	if err := rtc.Service.Create(&rt); err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, rt)
}

func (rtc *RoomTypeController) UpdateRoomType(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var payload roomTypePayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request payload: "+err.Error())
		return
	}

	rt := models.RoomType{ID: id, Name: payload.Name, BasePrice: *payload.BasePrice}
	if err := rtc.Service.Update(&rt); err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"message": "Room type updated"})
}

func (rtc *RoomTypeController) DeleteRoomType(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := rtc.Service.Delete(id); err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"message": "Room type deleted"})
}
