package validators

import (
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
)

// Validate is a type alias for validator.Validate.
type Validate = validator.Validate

// ValidationErrors is a type alias for validator.ValidationErrors.
type ValidationErrors = validator.ValidationErrors

// FieldError is a type alias for validator.FieldError.
type FieldError = validator.FieldError

const tagLogLevel = "loglevel"

// New creates a new validator instance with the custom tags used by the config structs.
func New() *Validate {
	validate := validator.New()
	// registration only fails on an empty tag or nil func
	_ = validate.RegisterValidation(tagLogLevel, isLogLevel)
	return validate
}

// isLogLevel accepts any level zerolog can parse ("debug", "info", "warn", ...).
func isLogLevel(fl validator.FieldLevel) bool {
	_, err := zerolog.ParseLevel(fl.Field().String())
	return err == nil
}
