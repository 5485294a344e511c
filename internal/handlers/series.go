package handlers

import (
	"fmt"
	"net/http"
	"time"

	apperrors "realestate-valley/internal/errors"
	"realestate-valley/internal/models"
	"realestate-valley/internal/services"
	"realestate-valley/internal/utils"
	"realestate-valley/internal/validators"
	"realestate-valley/pkg/config"

	"github.com/gin-gonic/gin"
)

// ServiceKeyChecker reports whether upstream credentials are configured.
type ServiceKeyChecker interface {
	HasServiceKey() bool
}

type SeriesHandler struct {
	series    *services.SeriesService
	forecast  *services.ForecastService
	validator validators.TransactionValidator
	keys      ServiceKeyChecker
	cfg       config.SeriesConfig
	now       func() time.Time
}

func NewSeriesHandler(
	series *services.SeriesService,
	forecast *services.ForecastService,
	validator validators.TransactionValidator,
	keys ServiceKeyChecker,
	cfg config.SeriesConfig,
) *SeriesHandler {
	return &SeriesHandler{
		series:    series,
		forecast:  forecast,
		validator: validator,
		keys:      keys,
		cfg:       cfg,
		now:       time.Now,
	}
}

// GetSeries godoc
// @Summary Monthly aggregates for a district
// @Description Average, median, min and max price per month, optionally for one apartment complex
// @Tags Series
// @Produce json
// @Param region query string true "District code or name"
// @Param months query int false "Trailing months including the current one" default(12)
// @Param periods query string false "Comma separated YYYYMM list, overrides months"
// @Param complex query string false "Exact apartment complex name"
// @Success 200 {object} models.SeriesResponse
// @Failure 400 {object} map[string]interface{}
// @Failure 500 {object} map[string]interface{}
// @Router /series [get]
func (h *SeriesHandler) GetSeries(c *gin.Context) {
	req, region, ok := h.bindSeriesRequest(c)
	if !ok {
		return
	}

	periods := h.resolvePeriods(req.Periods, req.Months)
	data := h.series.GetSeries(c.Request.Context(), services.SeriesQuery{
		Region:  region,
		Periods: periods,
		Complex: req.Complex,
	})

	c.JSON(http.StatusOK, models.SeriesResponse{
		Region:  region,
		Complex: req.Complex,
		Periods: periods,
		Data:    data,
	})
}

// GetForecast godoc
// @Summary Linear price trend and projection for a district
// @Description Fits a least squares line through monthly average prices and projects it forward
// @Tags Forecast
// @Produce json
// @Param region query string true "District code or name"
// @Param months query int false "Trailing months including the current one" default(12)
// @Param periods query string false "Comma separated YYYYMM list, overrides months"
// @Param complex query string false "Exact apartment complex name"
// @Param horizon query int false "Months to project (1-24)" default(6)
// @Success 200 {object} models.ForecastResponse
// @Failure 400 {object} map[string]interface{}
// @Failure 500 {object} map[string]interface{}
// @Router /forecast [get]
func (h *SeriesHandler) GetForecast(c *gin.Context) {
	req, region, ok := h.bindSeriesRequest(c)
	if !ok {
		return
	}

	horizon := req.Horizon
	if horizon == 0 {
		horizon = h.cfg.DefaultHorizon
	}

	series := h.series.GetSeries(c.Request.Context(), services.SeriesQuery{
		Region:  region,
		Periods: h.resolvePeriods(req.Periods, req.Months),
		Complex: req.Complex,
	})

	c.JSON(http.StatusOK, models.ForecastResponse{
		Region:   region,
		Complex:  req.Complex,
		Forecast: h.forecast.Forecast(series, horizon),
	})
}

// GetZoneSeries godoc
// @Summary Monthly aggregates for a Seoul zone
// @Description Merges the deals of every district in the zone before aggregating
// @Tags Series
// @Produce json
// @Param zone path string true "Zone id (dosim, dongbuk, seobuk, seonam, dongnam) or name"
// @Param months query int false "Trailing months including the current one" default(12)
// @Param periods query string false "Comma separated YYYYMM list, overrides months"
// @Success 200 {object} models.ZoneSeriesResponse
// @Failure 400 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /zones/{zone}/series [get]
func (h *SeriesHandler) GetZoneSeries(c *gin.Context) {
	if !h.requireServiceKey(c) {
		return
	}

	req := models.ZoneSeriesRequest{Zone: c.Param("zone")}
	if err := c.ShouldBindQuery(&req); err != nil {
		_ = c.Error(fmt.Errorf("%w: %v", apperrors.ErrInvalidParameters, err))
		return
	}
	if err := h.validator.ValidateZoneSeriesRequest(&req); err != nil {
		_ = c.Error(err)
		return
	}

	zone, _ := models.LookupZone(req.Zone)
	periods := h.resolvePeriods(req.Periods, req.Months)

	c.JSON(http.StatusOK, models.ZoneSeriesResponse{
		Zone:    zone,
		Periods: periods,
		Data:    h.series.GetZoneSeries(c.Request.Context(), zone, periods),
	})
}

func (h *SeriesHandler) bindSeriesRequest(c *gin.Context) (models.SeriesRequest, models.Region, bool) {
	var req models.SeriesRequest
	if !h.requireServiceKey(c) {
		return req, models.Region{}, false
	}
	if err := c.ShouldBindQuery(&req); err != nil {
		_ = c.Error(fmt.Errorf("%w: %v", apperrors.ErrInvalidParameters, err))
		return req, models.Region{}, false
	}
	if err := h.validator.ValidateSeriesRequest(&req); err != nil {
		_ = c.Error(err)
		return req, models.Region{}, false
	}
	region, _ := models.LookupRegion(req.Region)
	return req, region, true
}

func (h *SeriesHandler) requireServiceKey(c *gin.Context) bool {
	if h.keys != nil && !h.keys.HasServiceKey() {
		_ = c.Error(apperrors.ErrMissingServiceKey)
		return false
	}
	return true
}

func (h *SeriesHandler) resolvePeriods(csv string, months int) []string {
	if periods := utils.SplitPeriods(csv); len(periods) > 0 {
		return utils.SortPeriods(periods)
	}
	if months == 0 {
		months = h.cfg.DefaultMonths
	}
	return utils.RecentMonths(h.now(), months)
}
