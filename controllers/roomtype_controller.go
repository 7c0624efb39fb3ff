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

type RoomTypeController struct {
	Service *services.RoomTypeService
}

func NewRoomTypeController(service *services.RoomTypeService) *RoomTypeController {
	return &RoomTypeController{Service: service}
}

func (rtc *RoomTypeController) GetRoomTypes(c *gin.Context) {
	types, err := rtc.Service.GetAll()
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to retrieve room types")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, types)
}

func (rtc *RoomTypeController) CreateRoomType(c *gin.Context) {
	var rt models.RoomType
	if err := c.ShouldBindJSON(&rt); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request payload")
		return
	}

	if err := rtc.Service.Create(&rt); err != nil {
		if strings.HasPrefix(err.Error(), "validation:") {
			utils.JSONError(c, http.StatusBadRequest, err.Error())
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "failed to create room type")
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, rt)
}

func (rtc *RoomTypeController) DeleteRoomType(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid room type id")
		return
	}

	if err := rtc.Service.Delete(uint(id)); err != nil {
		if errors.Is(err, services.ErrRoomTypeNotFound) {
			utils.JSONError(c, http.StatusNotFound, "room type not found")
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "failed to delete room type")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"message": "room type deleted"})
}
