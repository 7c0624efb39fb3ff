package controllers

import (
	"net/http"

	"hotel-management/services"
	"hotel-management/utils"

	"github.com/gin-gonic/gin"
)

type DashboardController struct {
	Availability *services.AvailabilityService
}

func NewDashboardController(availability *services.AvailabilityService) *DashboardController {
	return &DashboardController{Availability: availability}
}

// GetSummary returns the available/occupied/maintenance room counts.
func (dc *DashboardController) GetSummary(c *gin.Context) {
	summary, err := dc.Availability.Summary()
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to compute dashboard summary")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, summary)
}
