package controllers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"hotel-management/models"
	"hotel-management/services"
	"hotel-management/utils"

	"github.com/gin-gonic/gin"
)

type RoomController struct {
	Rooms        *services.RoomService
	Availability *services.AvailabilityService
}

func NewRoomController(rooms *services.RoomService, availability *services.AvailabilityService) *RoomController {
	return &RoomController{Rooms: rooms, Availability: availability}
}

// GetRooms lists all rooms with their derived status.
func (rc *RoomController) GetRooms(c *gin.Context) {
	rooms, err := rc.Availability.ListRoomsWithStatus()
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to retrieve rooms")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, rooms)
}

// GetAvailableRooms answers ?check_in=YYYY-MM-DD&check_out=YYYY-MM-DD.
func (rc *RoomController) GetAvailableRooms(c *gin.Context) {
	checkIn, err := time.Parse("2006-01-02", c.Query("check_in"))
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid check_in date, expected YYYY-MM-DD")
		return
	}
	checkOut, err := time.Parse("2006-01-02", c.Query("check_out"))
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid check_out date, expected YYYY-MM-DD")
		return
	}
	if !checkOut.After(checkIn) {
		utils.JSONError(c, http.StatusBadRequest, "check_out must be after check_in")
		return
	}

	rooms, err := rc.Availability.ListAvailableRooms(checkIn, checkOut)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to query available rooms")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, rooms)
}

func (rc *RoomController) CreateRoom(c *gin.Context) {
	var room models.Room
	if err := c.ShouldBindJSON(&room); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request payload")
		return
	}

	if err := rc.Rooms.Create(&room); err != nil {
		switch {
		case errors.Is(err, services.ErrDuplicateRoom):
			utils.JSONError(c, http.StatusConflict, "room number '"+room.RoomNumber+"' already exists")
		case errors.Is(err, services.ErrRoomTypeNotFound):
			utils.JSONError(c, http.StatusBadRequest, "invalid room type id")
		case strings.HasPrefix(err.Error(), "validation:"):
			utils.JSONError(c, http.StatusBadRequest, err.Error())
		default:
			utils.JSONError(c, http.StatusInternalServerError, "failed to create room")
		}
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, room)
}

type roomStatusPayload struct {
	Availability *bool `json:"availability"`
	Maintenance  *bool `json:"maintenance"`
}

// SetRoomStatus backs the "mark for maintenance" / "mark as available" room
// actions. Omitted fields stay untouched.
func (rc *RoomController) SetRoomStatus(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid room id")
		return
	}

	var payload roomStatusPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request payload")
		return
	}

	if err := rc.Rooms.SetFlags(uint(id), payload.Availability, payload.Maintenance); err != nil {
		switch {
		case errors.Is(err, services.ErrRoomNotFound):
			utils.JSONError(c, http.StatusNotFound, "room not found")
		case errors.Is(err, services.ErrNoFlagsGiven):
			utils.JSONError(c, http.StatusBadRequest, "no flags to update")
		default:
			utils.JSONError(c, http.StatusInternalServerError, "failed to update room status")
		}
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"message": "room status updated"})
}

func (rc *RoomController) UpdateRoom(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid room id")
		return
	}

	var updates map[string]interface{}
	if err := c.ShouldBindJSON(&updates); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request payload")
		return
	}

	if err := rc.Rooms.Update(uint(id), updates); err != nil {
		if errors.Is(err, services.ErrRoomNotFound) {
			utils.JSONError(c, http.StatusNotFound, "room not found")
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "failed to update room")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"message": "room updated"})
}

func (rc *RoomController) DeleteRoom(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid room id")
		return
	}

	if err := rc.Rooms.Delete(uint(id)); err != nil {
		if errors.Is(err, services.ErrRoomNotFound) {
			utils.JSONError(c, http.StatusNotFound, "room not found")
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "failed to delete room")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"message": "room deleted"})
}
