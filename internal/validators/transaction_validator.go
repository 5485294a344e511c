package validators

import (
	"errors"
	"fmt"
	"strings"

	apperrors "realestate-valley/internal/errors"
	"realestate-valley/internal/models"
	"realestate-valley/internal/utils"

	"github.com/go-playground/validator/v10"
)

type transactionValidator struct {
	validate  *validator.Validate
	maxMonths int
}

// NewTransactionValidator registers the region, zone, yearmonth and
// periodlist tags. maxMonths bounds both months and the periods list.
func NewTransactionValidator(maxMonths int) TransactionValidator {
	v := validator.New()
	_ = v.RegisterValidation("region", func(fl validator.FieldLevel) bool {
		_, ok := models.LookupRegion(fl.Field().String())
		return ok
	})
	_ = v.RegisterValidation("zone", func(fl validator.FieldLevel) bool {
		_, ok := models.LookupZone(fl.Field().String())
		return ok
	})
	_ = v.RegisterValidation("yearmonth", func(fl validator.FieldLevel) bool {
		return utils.IsValidPeriod(fl.Field().String())
	})
	_ = v.RegisterValidation("periodlist", func(fl validator.FieldLevel) bool {
		periods := utils.SplitPeriods(fl.Field().String())
		if len(periods) == 0 || len(periods) > maxMonths {
			return false
		}
		seen := make(map[string]bool, len(periods))
		for _, p := range periods {
			if !utils.IsValidPeriod(p) || seen[p] {
				return false
			}
			seen[p] = true
		}
		return true
	})

	return &transactionValidator{validate: v, maxMonths: maxMonths}
}

func (v *transactionValidator) ValidateTradeRequest(req *models.TradeRequest) error {
	return v.check(req)
}

func (v *transactionValidator) ValidateSeriesRequest(req *models.SeriesRequest) error {
	if err := v.check(req); err != nil {
		return err
	}
	return v.checkMonths(req.Months)
}

func (v *transactionValidator) ValidateZoneSeriesRequest(req *models.ZoneSeriesRequest) error {
	if err := v.check(req); err != nil {
		return err
	}
	return v.checkMonths(req.Months)
}

func (v *transactionValidator) checkMonths(months int) error {
	if months > v.maxMonths {
		return fmt.Errorf("%w: months must be at most %d", apperrors.ErrInvalidParameters, v.maxMonths)
	}
	return nil
}

// check runs struct validation and maps the first failing tag to a sentinel.
func (v *transactionValidator) check(req interface{}) error {
	err := v.validate.Struct(req)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return fmt.Errorf("%w: %v", apperrors.ErrInvalidParameters, err)
	}

	fe := fieldErrs[0]
	field := strings.ToLower(fe.Field())
	switch fe.Tag() {
	case "region":
		return fmt.Errorf("%w: %q is not a Seoul district code or name", apperrors.ErrInvalidRegion, fe.Value())
	case "zone":
		return fmt.Errorf("%w: %q", apperrors.ErrZoneNotFound, fe.Value())
	case "yearmonth", "periodlist":
		return fmt.Errorf("%w: %s=%q", apperrors.ErrInvalidPeriod, field, fe.Value())
	default:
		return fmt.Errorf("%w: %s failed %s=%s", apperrors.ErrInvalidParameters, field, fe.Tag(), fe.Param())
	}
}
