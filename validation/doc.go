// Package validation checks loaded settings before they are used.
//
// It supports both struct tag validation (using the validator library) and
// programmatic validation with error collection. Both report failures as an
// errors.AppError with code INVALID_INPUT and a "fields" detail.
//
// # Struct Tag Validation
//
//	type Parameters struct {
//	    BasePath string `mapstructure:"base_path" validate:"omitempty,url"`
//	}
//	err := validation.Validate(params)
//
// # Programmatic Validation
//
//	v := validation.New()
//	v.Required("api_key", key).OneOf("logger.format", format, []string{"json", "console"})
//	err := v.Validate()
package validation
