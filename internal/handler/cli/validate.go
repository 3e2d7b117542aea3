package cli

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"

	"ChartsAgent/internal/domain/models"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
}

type candleBatch struct {
	Candles []models.CandleRecord `validate:"required,min=1,dive"`
}

// validateBatch checks the decoded candle batch against the input contract:
// at least one candle, every required numeric field present.
func validateBatch(records []models.CandleRecord) *models.AppError {
	err := validate.Struct(candleBatch{Candles: records})
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		return fieldError(verrs[0])
	}
	return models.InvalidInput(err.Error()).WithError(err)
}

func fieldError(fe validator.FieldError) *models.AppError {
	if fe.Field() == "Candles" {
		return models.InvalidInput("empty candle batch")
	}
	switch fe.Tag() {
	case "required":
		return models.InvalidInputf("missing required candle field %q", strings.ToLower(fe.Field()))
	default:
		return models.InvalidInputf("candle field %q failed validation: %s", strings.ToLower(fe.Field()), fe.Tag())
	}
}
