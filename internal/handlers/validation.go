package handlers

import (
	"fmt"

	"github.com/SscSPs/analytic_margin_app/internal/core/domain"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// RegisterValidators adds the custom binding rules used by the request DTOs.
func RegisterValidators() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return fmt.Errorf("unexpected binding validator engine %T", binding.Validator.Engine())
	}
	return v.RegisterValidation("analytic_distribution", validateAnalyticDistribution)
}

// validateAnalyticDistribution accepts distributions whose keys are account ids and whose weights are non-negative.
func validateAnalyticDistribution(fl validator.FieldLevel) bool {
	dist, ok := fl.Field().Interface().(domain.AnalyticDistribution)
	if !ok {
		return false
	}
	return dist.Validate() == nil
}
