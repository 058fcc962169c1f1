package controllers

import (
	"errors"
	"net/http"
	"time"

	"hotel-reservation/models"
	"hotel-reservation/services"
	"hotel-reservation/utils"

	"github.com/gin-gonic/gin"
)

type ReservationController struct {
	Service *services.ReservationService
	Rooms   *services.RoomService
	Guests  *services.GuestService
}

func NewReservationController(service *services.ReservationService, rooms *services.RoomService, guests *services.GuestService) *ReservationController {
	return &ReservationController{Service: service, Rooms: rooms, Guests: guests}
}

// reservationPayload is what the forms submit. Dates travel as YYYY-MM-DD
// strings; version comes from the edit form and backs optimistic locking.
type reservationPayload struct {
	ID        uint   `json:"id"`
	StartDate string `json:"startDate" binding:"required"`
	EndDate   string `json:"endDate" binding:"required"`
	RoomID    uint   `json:"roomId" binding:"required"`
	GuestID   uint   `json:"guestId"`
	Version   uint   `json:"version"`
}

func (p reservationPayload) toModel() (models.Reservation, error) {
	start, err := time.Parse("2006-01-02", p.StartDate)
	if err != nil {
		return models.Reservation{}, err
	}
	end, err := time.Parse("2006-01-02", p.EndDate)
	if err != nil {
		return models.Reservation{}, err
	}
	return models.Reservation{
		ID:        p.ID,
		StartDate: start,
		EndDate:   end,
		RoomID:    p.RoomID,
		GuestID:   p.GuestID,
		Version:   p.Version,
	}, nil
}

// List: GET /api/reservations
func (rc *ReservationController) List(c *gin.Context) {
	reservations, err := rc.Service.List(requesterFrom(c))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, reservations)
}

// Details: GET /api/reservations/:id
func (rc *ReservationController) Details(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	reservation, err := rc.Service.GetByID(requesterFrom(c), id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, reservation)
}

// NewForm: GET /api/reservations/create — the data the create form needs:
// bookable rooms, plus the guest choices for admins or the caller's own
// guest id otherwise.
func (rc *ReservationController) NewForm(c *gin.Context) {
	req := requesterFrom(c)

	rooms, err := rc.Rooms.GetAvailable()
	if err != nil {
		respondServiceError(c, err)
		return
	}
	data := gin.H{"rooms": rooms}

	if req.IsAdmin() {
		guests, err := rc.Guests.GetAll()
		if err != nil {
			respondServiceError(c, err)
			return
		}
		data["guests"] = guests
	} else {
		currentGuestID := uint(0)
		guest, err := rc.Guests.GetByEmail(req.Email)
		if err != nil && !errors.Is(err, services.ErrNotFound) {
			respondServiceError(c, err)
			return
		}
		if err == nil {
			currentGuestID = guest.ID
		}
		data["currentGuestId"] = currentGuestID
	}

	utils.JSONSuccess(c, http.StatusOK, data)
}

// Create: POST /api/reservations
func (rc *ReservationController) Create(c *gin.Context) {
	var payload reservationPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request payload: "+err.Error())
		return
	}
	reservation, err := payload.toModel()
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "dates must use the YYYY-MM-DD format")
		return
	}
	reservation.ID = 0

	if err := rc.Service.Create(requesterFrom(c), &reservation); err != nil {
		var vErr *services.ValidationError
		if errors.As(err, &vErr) {
			utils.JSONValidation(c, vErr.Messages, payload)
			return
		}
		respondServiceError(c, err)
		return
	}

	utils.JSONSuccess(c, http.StatusCreated, reservation)
}

// EditForm: GET /api/reservations/:id/edit — the row plus the room/guest
// choices for pre-filling the edit form.
func (rc *ReservationController) EditForm(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	reservation, err := rc.Service.EditPrepare(id)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	rooms, err := rc.Rooms.GetAll()
	if err != nil {
		respondServiceError(c, err)
		return
	}
	guests, err := rc.Guests.GetAll()
	if err != nil {
		respondServiceError(c, err)
		return
	}

	utils.JSONSuccess(c, http.StatusOK, gin.H{
		"reservation": reservation,
		"rooms":       rooms,
		"guests":      guests,
	})
}

// Update: PUT /api/reservations/:id
func (rc *ReservationController) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var payload reservationPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request payload: "+err.Error())
		return
	}
	reservation, err := payload.toModel()
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "dates must use the YYYY-MM-DD format")
		return
	}

	if err := rc.Service.Update(requesterFrom(c), id, &reservation); err != nil {
		var vErr *services.ValidationError
		if errors.As(err, &vErr) {
			utils.JSONValidation(c, vErr.Messages, payload)
			return
		}
		respondServiceError(c, err)
		return
	}

	utils.JSONSuccess(c, http.StatusOK, reservation)
}

// DeleteConfirm: GET /api/reservations/:id/delete — the joined record for
// the confirmation screen.
func (rc *ReservationController) DeleteConfirm(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	reservation, err := rc.Service.DeletePrepare(id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, reservation)
}

// Delete: DELETE /api/reservations/:id — success whether or not the row
// still existed.
func (rc *ReservationController) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := rc.Service.Delete(id); err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"message": "Reservation deleted"})
}
