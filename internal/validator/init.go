package validator

import (
	"log/slog"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	// Initialize validation
	validate = validator.New(validator.WithRequiredStructEnabled())
	if err := validate.RegisterValidation("loglevel", validateLogLevel); err != nil {
		panic(err)
	}
}

func GetValidator() *validator.Validate {
	return validate
}

// validateLogLevel accepts anything slog.Level can parse, e.g. "debug" or "warn+2".
func validateLogLevel(fl validator.FieldLevel) bool {
	var level slog.Level
	return level.UnmarshalText([]byte(fl.Field().String())) == nil
}
