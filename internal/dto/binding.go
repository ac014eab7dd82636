package dto

import (
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// RegisterCustomValidations installs domain-specific validation tags on gin's
// binding engine. Must run once before any request binding.
func RegisterCustomValidations() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return nil
	}
	// gtzero: decimal.Decimal strictly greater than zero. The stock "gt"
	// tag cannot see through decimal's internal representation.
	return v.RegisterValidation("gtzero", func(fl validator.FieldLevel) bool {
		d, ok := fl.Field().Interface().(decimal.Decimal)
		if !ok {
			return false
		}
		return d.GreaterThan(decimal.Zero)
	})
}
