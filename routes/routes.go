package routes

import (
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"hotel-reservation/controllers"
	"hotel-reservation/middleware"
)

func parseCorsOrigins() []string {
	raw := strings.TrimSpace(os.Getenv("CORS_ORIGINS"))
	if raw == "" {
		return []string{"*"}
	}

	parts := strings.Split(raw, ",")
	origins := make([]string, 0, len(parts))
	for _, part := range parts {
		origin := strings.TrimSpace(part)
		if origin != "" {
			origins = append(origins, origin)
		}
	}
	if len(origins) == 0 {
		return []string{"*"}
	}
	return origins
}

func SetupRouter(
	rc *controllers.ReservationController,
	roomController *controllers.RoomController,
	roomTypeController *controllers.RoomTypeController,
	guestController *controllers.GuestController,
	jwtSecret string,
) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), middleware.Logger())

	origins := parseCorsOrigins()
	allowCredentials := true
	for _, origin := range origins {
		if origin == "*" {
			allowCredentials = false
			break
		}
	}

	r.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: allowCredentials,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api")
	{
		api.POST("/auth/login", controllers.Login)

		authed := api.Group("", middleware.Auth(jwtSecret))
		{
			reservations := authed.Group("/reservations")
			{
				reservations.GET("", rc.List)
				// static route must be registered alongside /:id
				reservations.GET("/create", rc.NewForm)
				reservations.POST("", rc.Create)
				reservations.GET("/:id", rc.Details)

				adminOnly := reservations.Group("", middleware.RequireAdmin())
				{
					adminOnly.GET("/:id/edit", rc.EditForm)
					adminOnly.PUT("/:id", rc.Update)
					adminOnly.GET("/:id/delete", rc.DeleteConfirm)
					adminOnly.DELETE("/:id", rc.Delete)
				}
			}

			rooms := authed.Group("/rooms")
			{
				rooms.GET("", roomController.GetRooms)
				rooms.GET("/:id", roomController.GetRoom)

				adminRooms := rooms.Group("", middleware.RequireAdmin())
				{
					adminRooms.POST("", roomController.CreateRoom)
					adminRooms.PUT("/:id", roomController.UpdateRoom)
					adminRooms.DELETE("/:id", roomController.DeleteRoom)
				}
			}

			roomTypes := authed.Group("/room-types")
			{
				roomTypes.GET("", roomTypeController.GetRoomTypes)

				adminTypes := roomTypes.Group("", middleware.RequireAdmin())
				{
					adminTypes.POST("", roomTypeController.CreateRoomType)
					adminTypes.PUT("/:id", roomTypeController.UpdateRoomType)
					adminTypes.DELETE("/:id", roomTypeController.DeleteRoomType)
				}
			}

			guests := authed.Group("/guests", middleware.RequireAdmin())
			{
				guests.GET("", guestController.GetGuests)
				guests.GET("/:id", guestController.GetGuestByID)
				guests.POST("", guestController.CreateGuest)
				guests.PUT("/:id", guestController.UpdateGuest)
				guests.DELETE("/:id", guestController.DeleteGuest)
			}

			settings := authed.Group("/settings")
			{
				settings.GET("/hotel", controllers.GetHotelSettings)
				settings.PUT("/hotel", middleware.RequireAdmin(), controllers.UpdateHotelSettings)
			}
		}
	}

	return r
}
