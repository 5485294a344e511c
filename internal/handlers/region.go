package handlers

import (
	"net/http"

	"realestate-valley/internal/models"

	"github.com/gin-gonic/gin"
)

type RegionHandler struct{}

func NewRegionHandler() *RegionHandler {
	return &RegionHandler{}
}

// ListRegions godoc
// @Summary Supported Seoul districts
// @Tags Regions
// @Produce json
// @Success 200 {array} models.Region
// @Router /regions [get]
func (h *RegionHandler) ListRegions(c *gin.Context) {
	c.JSON(http.StatusOK, models.Regions())
}

// ListZones godoc
// @Summary Seoul zones and their districts
// @Tags Regions
// @Produce json
// @Success 200 {array} models.Zone
// @Router /zones [get]
func (h *RegionHandler) ListZones(c *gin.Context) {
	c.JSON(http.StatusOK, models.Zones())
}
