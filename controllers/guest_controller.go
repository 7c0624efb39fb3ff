package controllers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"hotel-management/models"
	"hotel-management/services"
	"hotel-management/utils"

	"github.com/gin-gonic/gin"
)

type GuestController struct {
	Service *services.GuestService
}

func NewGuestController(service *services.GuestService) *GuestController {
	return &GuestController{Service: service}
}

// GetGuests lists all guests, or filters by partial name when ?q= is given.
func (gc *GuestController) GetGuests(c *gin.Context) {
	q := strings.TrimSpace(c.Query("q"))

	var (
		guests []models.Guest
		err    error
	)
	if q != "" {
		guests, err = gc.Service.FindByName(q)
	} else {
		guests, err = gc.Service.GetAll()
	}
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to retrieve guests")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, guests)
}

func (gc *GuestController) GetGuestByID(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid guest id")
		return
	}

	guest, err := gc.Service.GetByID(uint(id))
	if err != nil {
		if errors.Is(err, services.ErrGuestNotFound) {
			utils.JSONError(c, http.StatusNotFound, "guest not found")
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "failed to load guest")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, guest)
}

func (gc *GuestController) CreateGuest(c *gin.Context) {
	var guest models.Guest
	if err := c.ShouldBindJSON(&guest); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request payload")
		return
	}

	if err := gc.Service.Create(&guest); err != nil {
		if strings.HasPrefix(err.Error(), "validation:") {
			utils.JSONError(c, http.StatusBadRequest, err.Error())
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "failed to create guest")
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, guest)
}

func (gc *GuestController) UpdateGuest(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid guest id")
		return
	}

	var guest models.Guest
	if err := c.ShouldBindJSON(&guest); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request payload")
		return
	}
	guest.ID = uint(id)

	if err := gc.Service.Update(&guest); err != nil {
		if errors.Is(err, services.ErrGuestNotFound) {
			utils.JSONError(c, http.StatusNotFound, "guest not found")
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "failed to update guest")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"message": "guest updated"})
}
