package routes

import (
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"hotel-management/controllers"
	"hotel-management/middleware"
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

// SetupRouter wires the controller instances into the route tree.
func SetupRouter(
	ac *controllers.AuthController,
	gc *controllers.GuestController,
	rc *controllers.RoomController,
	rtc *controllers.RoomTypeController,
	resc *controllers.ReservationController,
	dc *controllers.DashboardController,
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
		auth := api.Group("/auth")
		{
			auth.POST("/login", ac.Login)
		}

		api.GET("/dashboard", dc.GetSummary)

		guests := api.Group("/guests")
		{
			guests.GET("", gc.GetGuests)
			guests.GET("/:id", gc.GetGuestByID)
			guests.POST("", gc.CreateGuest)
			guests.PATCH("/:id", gc.UpdateGuest)
		}

		rooms := api.Group("/rooms")
		{
			rooms.GET("", rc.GetRooms)
			rooms.GET("/available", rc.GetAvailableRooms)
			rooms.POST("", rc.CreateRoom)
			rooms.PATCH("/:id/status", rc.SetRoomStatus)
			rooms.PATCH("/:id", rc.UpdateRoom)
			rooms.DELETE("/:id", middleware.RequireAuth(), rc.DeleteRoom)
		}

		roomTypes := api.Group("/room-types")
		{
			roomTypes.GET("", rtc.GetRoomTypes)
			roomTypes.POST("", middleware.RequireAuth(), rtc.CreateRoomType)
			roomTypes.DELETE("/:id", middleware.RequireAuth(), rtc.DeleteRoomType)
		}

		reservations := api.Group("/reservations")
		{
			reservations.GET("", resc.GetReservations)
			reservations.POST("", resc.CreateReservation)
			reservations.GET("/checkin-search", resc.SearchCheckin)
			reservations.GET("/checkout-search", resc.SearchCheckout)
			reservations.GET("/:id", resc.GetReservationByID)
			reservations.PATCH("/:id/status", resc.SetStatus)
			reservations.POST("/:id/checkin", resc.CheckIn)
			reservations.POST("/:id/checkout", resc.CheckOut)
			reservations.POST("/:id/cancel", resc.Cancel)
		}
	}

	return r
}
