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

type ReservationController struct {
	Service *services.ReservationService
}

func NewReservationController(service *services.ReservationService) *ReservationController {
	return &ReservationController{Service: service}
}

type createReservationPayload struct {
	GuestID            uint     `json:"guestId"`
	RoomID             uint     `json:"roomId"`
	CheckIn            string   `json:"checkIn"`
	CheckOut           string   `json:"checkOut"`
	Adults             int      `json:"adults"`
	Children           int      `json:"children"`
	SpecialRequests    string   `json:"specialRequests"`
	AccompanyingGuests []string `json:"accompanyingGuests"`
}

func (rc *ReservationController) GetReservations(c *gin.Context) {
	list, err := rc.Service.GetAllWithRelations()
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to retrieve reservations")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, list)
}

func (rc *ReservationController) GetReservationByID(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid reservation id")
		return
	}

	res, err := rc.Service.GetByID(uint(id))
	if err != nil {
		if errors.Is(err, services.ErrReservationNotFound) {
			utils.JSONError(c, http.StatusNotFound, "reservation not found")
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "failed to load reservation")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, res)
}

func (rc *ReservationController) CreateReservation(c *gin.Context) {
	var payload createReservationPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request payload")
		return
	}

	checkIn, err := time.Parse("2006-01-02", payload.CheckIn)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid checkIn date, expected YYYY-MM-DD")
		return
	}
	checkOut, err := time.Parse("2006-01-02", payload.CheckOut)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid checkOut date, expected YYYY-MM-DD")
		return
	}
	if payload.Adults == 0 {
		payload.Adults = 1
	}

	res, err := rc.Service.Create(services.CreateReservationInput{
		GuestID:            payload.GuestID,
		RoomID:             payload.RoomID,
		CheckIn:            checkIn,
		CheckOut:           checkOut,
		Adults:             payload.Adults,
		Children:           payload.Children,
		SpecialRequests:    payload.SpecialRequests,
		AccompanyingGuests: payload.AccompanyingGuests,
	})
	if err != nil {
		switch {
		case errors.Is(err, services.ErrGuestNotFound):
			utils.JSONError(c, http.StatusBadRequest, "guest not found")
		case errors.Is(err, services.ErrRoomNotFound):
			utils.JSONError(c, http.StatusBadRequest, "room not found")
		case errors.Is(err, services.ErrInvalidDateRange):
			utils.JSONError(c, http.StatusBadRequest, "check-out date must be after check-in date")
		case strings.HasPrefix(err.Error(), "validation:"):
			utils.JSONError(c, http.StatusBadRequest, err.Error())
		default:
			utils.JSONError(c, http.StatusInternalServerError, "failed to create reservation")
		}
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, res)
}

func (rc *ReservationController) transition(c *gin.Context, status string) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid reservation id")
		return
	}

	if err := rc.Service.SetStatus(uint(id), status); err != nil {
		switch {
		case errors.Is(err, services.ErrReservationNotFound):
			utils.JSONError(c, http.StatusNotFound, "reservation not found")
		case errors.Is(err, services.ErrRoomNotFound):
			utils.JSONError(c, http.StatusConflict, "reservation refers to a missing room")
		case errors.Is(err, services.ErrInvalidStatus):
			utils.JSONError(c, http.StatusBadRequest, "unknown reservation status")
		default:
			utils.JSONError(c, http.StatusInternalServerError, "failed to update reservation status")
		}
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"message": "reservation " + status})
}

func (rc *ReservationController) CheckIn(c *gin.Context) {
	rc.transition(c, models.ReservationStatusCheckedIn)
}

func (rc *ReservationController) CheckOut(c *gin.Context) {
	rc.transition(c, models.ReservationStatusCheckedOut)
}

func (rc *ReservationController) Cancel(c *gin.Context) {
	rc.transition(c, models.ReservationStatusCancelled)
}

type statusPayload struct {
	Status string `json:"status"`
}

// SetStatus is the generic transition endpoint; the named ones above cover
// the usual front-desk flow.
func (rc *ReservationController) SetStatus(c *gin.Context) {
	var payload statusPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request payload")
		return
	}
	rc.transition(c, payload.Status)
}

// SearchCheckin finds the confirmed reservation due today matching ?search=
// (exact room number or partial guest name). 404 means "no match", not an
// error.
func (rc *ReservationController) SearchCheckin(c *gin.Context) {
	token := c.Query("search")
	if strings.TrimSpace(token) == "" {
		utils.JSONError(c, http.StatusBadRequest, "search term required")
		return
	}

	row, err := rc.Service.FindForCheckin(token)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to search reservations")
		return
	}
	if row == nil {
		utils.JSONError(c, http.StatusNotFound, "no confirmed reservation for today matches the search")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, row)
}

// SearchCheckout finds the checked-in reservation for ?room=.
func (rc *ReservationController) SearchCheckout(c *gin.Context) {
	room := c.Query("room")
	if strings.TrimSpace(room) == "" {
		utils.JSONError(c, http.StatusBadRequest, "room number required")
		return
	}

	row, err := rc.Service.FindForCheckout(room)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to search reservations")
		return
	}
	if row == nil {
		utils.JSONError(c, http.StatusNotFound, "no checked-in reservation for that room")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, row)
}
