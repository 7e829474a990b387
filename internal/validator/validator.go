// Package validator provides custom validation functions for Gin's binding engine.
package validator

import (
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"invoicetrack/internal/pagination"
)

// Register registers all custom validators with the Gin binding engine.
func Register() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("sort_field", validateSortField)
		_ = v.RegisterValidation("sort_order", validateSortOrder)
	}
}

func validateSortField(fl validator.FieldLevel) bool {
	return pagination.IsSortField(fl.Field().String())
}

func validateSortOrder(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "asc", "desc":
		return true
	}
	return false
}
