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
	"realestate-valley/pkg/molit"

	"github.com/gin-gonic/gin"
)

type TransactionHandler struct {
	transactions *services.TransactionService
	validator    validators.TransactionValidator
	now          func() time.Time
}

func NewTransactionHandler(transactions *services.TransactionService, validator validators.TransactionValidator) *TransactionHandler {
	return &TransactionHandler{
		transactions: transactions,
		validator:    validator,
		now:          time.Now,
	}
}

// GetAptTrade godoc
// @Summary Apartment sales for one district and month
// @Description Fetches one page of the MOLIT apartment trade feed and returns normalized records
// @Tags Transactions
// @Produce json
// @Param region query string false "District code or name" default(11680)
// @Param year_month query string false "YYYYMM, defaults to the previous month"
// @Param page_no query int false "Feed page" default(1)
// @Param num_of_rows query int false "Rows per page" default(1000)
// @Success 200 {object} models.TransactionResponse
// @Failure 400 {object} map[string]interface{}
// @Failure 500 {object} map[string]interface{}
// @Failure 502 {object} map[string]interface{}
// @Router /apt-trade [get]
func (h *TransactionHandler) GetAptTrade(c *gin.Context) {
	req := models.TradeRequest{
		Region:    models.DefaultRegionCode,
		YearMonth: utils.PreviousMonth(h.now()),
	}
	if err := c.ShouldBindQuery(&req); err != nil {
		_ = c.Error(fmt.Errorf("%w: %v", apperrors.ErrInvalidParameters, err))
		return
	}
	if err := h.validator.ValidateTradeRequest(&req); err != nil {
		_ = c.Error(err)
		return
	}

	region, _ := models.LookupRegion(req.Region)
	feed, err := h.transactions.GetTransactionsPage(c.Request.Context(), molit.TradeQuery{
		RegionCode: region.Code,
		YearMonth:  req.YearMonth,
		PageNo:     req.PageNo,
		NumOfRows:  req.NumOfRows,
	})
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, models.TransactionResponse{
		Region:     region.Code,
		YearMonth:  req.YearMonth,
		Count:      len(feed.Records),
		TotalCount: feed.TotalCount,
		Truncated:  feed.Truncated,
		Data:       feed.Records,
	})
}
