package controllers_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"hotel-reservation/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHotelSettings_RoundTrip(t *testing.T) {
	env := setupEnv(t)
	adminTok := token(t, "admin@hotel.local", "admin")

	// nothing stored yet: an empty settings object, not an error
	w := env.do(t, http.MethodGet, "/api/settings/hotel", adminTok, nil)
	require.Equal(t, http.StatusOK, w.Code)

	body := gin.H{
		"name":    "Grand Hotel",
		"address": "1 Seaside Ave",
		"phone":   "555-0100",
		"email":   "front-desk@grand.example",
	}
	w = env.do(t, http.MethodPut, "/api/settings/hotel", adminTok, body)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = env.do(t, http.MethodGet, "/api/settings/hotel", token(t, "jane@example.com", "guest"), nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Data models.HotelSetting `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Grand Hotel", resp.Data.Name)
	assert.Equal(t, "1 Seaside Ave", resp.Data.Address)
}

func TestHotelSettings_UpdateIsAdminOnly(t *testing.T) {
	env := setupEnv(t)

	w := env.do(t, http.MethodPut, "/api/settings/hotel", token(t, "jane@example.com", "guest"), gin.H{"name": "X"})
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestHotelSettings_InternalErrorsAreOpaque(t *testing.T) {
	env := setupEnv(t)
	adminTok := token(t, "admin@hotel.local", "admin")

	// force a storage failure to make sure driver details never reach the client
	require.NoError(t, env.db.Migrator().DropTable(&models.HotelSetting{}))

	w := env.do(t, http.MethodGet, "/api/settings/hotel", adminTok, nil)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "internal server error")
	assert.NotContains(t, w.Body.String(), "no such table")

	w = env.do(t, http.MethodPut, "/api/settings/hotel", adminTok, gin.H{"name": "Grand Hotel"})
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NotContains(t, w.Body.String(), "no such table")
}
