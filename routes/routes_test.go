package routes

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"hotel-management/controllers"
	"hotel-management/models"
	"hotel-management/services"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	gormsqlite "gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	_ "modernc.org/sqlite"
)

type apiResponse struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data,omitempty"`
	Error   string          `json:"error,omitempty"`
}

func setupAPI(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_time_format=sqlite", t.Name())
	db, err := gorm.Open(
		gormsqlite.New(gormsqlite.Config{DriverName: "sqlite", DSN: dsn}),
		&gorm.Config{Logger: logger.Default.LogMode(logger.Silent)},
	)
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&models.Admin{},
		&models.RoomType{},
		&models.Guest{},
		&models.Room{},
		&models.Reservation{},
	))

	hash, err := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)
	require.NoError(t, err)
	require.NoError(t, db.Create(&models.Admin{
		FullName: "Admin User",
		Username: "admin@hotel.local",
		Password: string(hash),
	}).Error)

	router := SetupRouter(
		controllers.NewAuthController(db),
		controllers.NewGuestController(services.NewGuestService(db)),
		controllers.NewRoomController(services.NewRoomService(db), services.NewAvailabilityService(db)),
		controllers.NewRoomTypeController(services.NewRoomTypeService(db)),
		controllers.NewReservationController(services.NewReservationService(db)),
		controllers.NewDashboardController(services.NewAvailabilityService(db)),
	)
	return router, db
}

func doJSON(t *testing.T, router *gin.Engine, method, path string, body interface{}, token string) (*httptest.ResponseRecorder, apiResponse) {
	t.Helper()

	var reader *bytes.Buffer
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewBuffer(raw)
	} else {
		reader = bytes.NewBuffer(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	var resp apiResponse
	if w.Body.Len() > 0 {
		_ = json.Unmarshal(w.Body.Bytes(), &resp)
	}
	return w, resp
}

func TestHealthEndpoint(t *testing.T) {
	router, _ := setupAPI(t)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestGuestAndBookingFlow(t *testing.T) {
	router, db := setupAPI(t)

	rt := models.RoomType{TypeName: "Standard", BasePrice: 90, MaxGuests: 2}
	require.NoError(t, db.Create(&rt).Error)
	room := models.Room{RoomTypeID: &rt.ID, RoomNumber: "101", FloorNumber: 1, Availability: true}
	require.NoError(t, db.Create(&room).Error)

	// Register a guest.
	w, resp := doJSON(t, router, http.MethodPost, "/api/guests", gin.H{
		"firstName": "Grace",
		"lastName":  "Hopper",
		"email":     "grace@example.com",
	}, "")
	require.Equal(t, http.StatusCreated, w.Code)
	require.True(t, resp.Success)

	var guest models.Guest
	require.NoError(t, json.Unmarshal(resp.Data, &guest))
	require.NotZero(t, guest.ID)

	// The room shows up as available for a future range.
	w, resp = doJSON(t, router, http.MethodGet,
		"/api/rooms/available?check_in=2030-06-01&check_out=2030-06-05", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	var available []services.RoomSummary
	require.NoError(t, json.Unmarshal(resp.Data, &available))
	require.Len(t, available, 1)
	assert.Equal(t, "101", available[0].RoomNumber)

	// Book it.
	w, resp = doJSON(t, router, http.MethodPost, "/api/reservations", gin.H{
		"guestId":  guest.ID,
		"roomId":   room.ID,
		"checkIn":  "2030-06-01",
		"checkOut": "2030-06-05",
		"adults":   2,
	}, "")
	require.Equal(t, http.StatusCreated, w.Code)

	var reservation models.Reservation
	require.NoError(t, json.Unmarshal(resp.Data, &reservation))
	assert.Equal(t, models.ReservationStatusConfirmed, reservation.Status)

	// The overlapping range no longer offers the room.
	w, resp = doJSON(t, router, http.MethodGet,
		"/api/rooms/available?check_in=2030-06-03&check_out=2030-06-08", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	available = nil
	require.NoError(t, json.Unmarshal(resp.Data, &available))
	assert.Empty(t, available)

	// Check in, then out; the room ends up flagged for cleaning.
	w, _ = doJSON(t, router, http.MethodPost,
		fmt.Sprintf("/api/reservations/%d/checkin", reservation.ID), nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	w, _ = doJSON(t, router, http.MethodPost,
		fmt.Sprintf("/api/reservations/%d/checkout", reservation.ID), nil, "")
	require.Equal(t, http.StatusOK, w.Code)

	var r models.Room
	require.NoError(t, db.First(&r, room.ID).Error)
	assert.False(t, r.Availability)
	assert.True(t, r.MaintenanceStatus)
}

func TestCheckinSearchNotFoundIsNotAnError(t *testing.T) {
	router, _ := setupAPI(t)

	w, resp := doJSON(t, router, http.MethodGet,
		"/api/reservations/checkin-search?search=Smith", nil, "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.False(t, resp.Success)
}

func TestProtectedRoutesRequireToken(t *testing.T) {
	router, db := setupAPI(t)

	rt := models.RoomType{TypeName: "Standard", BasePrice: 90}
	require.NoError(t, db.Create(&rt).Error)

	// No token: rejected.
	w, _ := doJSON(t, router, http.MethodDelete,
		fmt.Sprintf("/api/room-types/%d", rt.ID), nil, "")
	require.Equal(t, http.StatusUnauthorized, w.Code)

	// Wrong credentials: no token issued.
	w, _ = doJSON(t, router, http.MethodPost, "/api/auth/login", gin.H{
		"username": "admin@hotel.local",
		"password": "wrong",
	}, "")
	require.Equal(t, http.StatusUnauthorized, w.Code)

	// Login and retry.
	w, resp := doJSON(t, router, http.MethodPost, "/api/auth/login", gin.H{
		"username": "admin@hotel.local",
		"password": "admin123",
	}, "")
	require.Equal(t, http.StatusOK, w.Code)

	var login struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(resp.Data, &login))
	require.NotEmpty(t, login.Token)

	w, _ = doJSON(t, router, http.MethodDelete,
		fmt.Sprintf("/api/room-types/%d", rt.ID), nil, login.Token)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestDashboardSummary(t *testing.T) {
	router, db := setupAPI(t)

	rt := models.RoomType{TypeName: "Standard", BasePrice: 90}
	require.NoError(t, db.Create(&rt).Error)
	for _, n := range []string{"101", "102"} {
		require.NoError(t, db.Create(&models.Room{
			RoomTypeID: &rt.ID, RoomNumber: n, FloorNumber: 1, Availability: true,
		}).Error)
	}
	require.NoError(t, db.Model(&models.Room{}).
		Where("room_number = ?", "102").
		Update("maintenance_status", true).Error)

	w, resp := doJSON(t, router, http.MethodGet, "/api/dashboard", nil, "")
	require.Equal(t, http.StatusOK, w.Code)

	var summary services.OccupancySummary
	require.NoError(t, json.Unmarshal(resp.Data, &summary))
	assert.Equal(t, services.OccupancySummary{Available: 1, Maintenance: 1, Total: 2}, summary)
}
