// Package validator provides custom validation functions for Gin's binding engine.
package validator

import (
	"regexp"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var hexColorRegex = regexp.MustCompile(`^#([0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)

// IFSC codes are four letters, a zero, and six alphanumerics.
var ifscRegex = regexp.MustCompile(`^[A-Z]{4}0[A-Z0-9]{6}$`)

// Register registers all custom validators with the Gin binding engine.
func Register() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("hex_color", validateHexColor)
		_ = v.RegisterValidation("budget_period", validateBudgetPeriod)
		_ = v.RegisterValidation("ifsc", validateIFSC)
		_ = v.RegisterValidation("limit_multiplier", validateLimitMultiplier)
	}
}

func validateHexColor(fl validator.FieldLevel) bool {
	return hexColorRegex.MatchString(fl.Field().String())
}

func validateBudgetPeriod(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "monthly", "weekly", "custom":
		return true
	}
	return false
}

func validateIFSC(fl validator.FieldLevel) bool {
	return ifscRegex.MatchString(fl.Field().String())
}

// Quick-adjust presets scale the current limit by 0.8x, 1.0x or 1.2x.
func validateLimitMultiplier(fl validator.FieldLevel) bool {
	switch fl.Field().Float() {
	case 0.8, 1.0, 1.2:
		return true
	}
	return false
}
