package services

import (
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"hotel-management/models"

	"github.com/stretchr/testify/require"
	gormsqlite "gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	_ "modernc.org/sqlite"
)

// setupTestDB opens a private in-memory sqlite database (pure Go driver) and
// migrates the schema. Each test gets its own database, named after the test
// so pooled connections share it.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_time_format=sqlite", t.Name())
	db, err := gorm.Open(
		gormsqlite.New(gormsqlite.Config{DriverName: "sqlite", DSN: dsn}),
		&gorm.Config{Logger: logger.Default.LogMode(logger.Silent)},
	)
	require.NoError(t, err, "failed to open test database")

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&models.RoomType{},
		&models.Guest{},
		&models.Room{},
		&models.Reservation{},
	))
	return db
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func seedRoomType(t *testing.T, db *gorm.DB, name string, price float64) models.RoomType {
	t.Helper()
	rt := models.RoomType{TypeName: name, BasePrice: price, MaxGuests: 2}
	require.NoError(t, db.Create(&rt).Error)
	return rt
}

func seedRoom(t *testing.T, db *gorm.DB, number string, typeID uint, floor int) models.Room {
	t.Helper()
	room := models.Room{
		RoomTypeID:   &typeID,
		RoomNumber:   number,
		FloorNumber:  floor,
		Availability: true,
	}
	require.NoError(t, db.Create(&room).Error)
	return room
}

func seedGuest(t *testing.T, db *gorm.DB, first, last string) models.Guest {
	t.Helper()
	guest := models.Guest{FirstName: first, LastName: last, Email: first + "@example.com"}
	require.NoError(t, db.Create(&guest).Error)
	return guest
}

var refSeq atomic.Uint64

func seedReservation(t *testing.T, db *gorm.DB, guestID, roomID uint, checkIn, checkOut time.Time, status string) models.Reservation {
	t.Helper()
	res := models.Reservation{
		ReferenceCode: fmt.Sprintf("ref-%d", refSeq.Add(1)),
		GuestID:       guestID,
		RoomID:        roomID,
		CheckInDate:   checkIn,
		CheckOutDate:  checkOut,
		Adults:        1,
		Status:        status,
	}
	require.NoError(t, db.Create(&res).Error)
	return res
}
