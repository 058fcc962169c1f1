package controllers

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"hotel-reservation/services"
	"hotel-reservation/utils"

	"github.com/gin-gonic/gin"
)

func requesterFrom(c *gin.Context) services.Requester {
	return services.Requester{
		Email: c.GetString("email"),
		Role:  c.GetString("role"),
	}
}

// parseID reads the :id path param. Non-numeric ids behave like missing
// rows, the same way an MVC route constraint would.
func parseID(c *gin.Context) (uint, bool) {
	id64, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.JSONError(c, http.StatusNotFound, "record not found")
		return 0, false
	}
	return uint(id64), true
}

func respondServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrNotFound):
		utils.JSONError(c, http.StatusNotFound, "record not found")
	case errors.Is(err, services.ErrForbidden):
		utils.JSONError(c, http.StatusForbidden, "you do not have access to this record")
	case errors.Is(err, services.ErrConflict):
		utils.JSONError(c, http.StatusConflict, "the record was modified concurrently; reload and try again")
	case errors.Is(err, services.ErrDuplicate):
		utils.JSONError(c, http.StatusConflict, "duplicate entry")
	default:
		log.Printf("internal error: %v", err)
		utils.JSONError(c, http.StatusInternalServerError, "internal server error")
	}
}
