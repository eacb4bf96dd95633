// Package validator adapts go-playground/validator to Echo's Validator interface.
package validator

import (
	playground "github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
)

// RequestValidator validates bound request structs via `validate` tags.
type RequestValidator struct {
	validate *playground.Validate
}

// New creates a RequestValidator for use as echo.Echo#Validator.
func New() *RequestValidator {
	return &RequestValidator{validate: playground.New()}
}

// Validate implements echo.Validator.
func (v *RequestValidator) Validate(i any) error {
	if err := v.validate.Struct(i); err != nil {
		return errors.Wrap(err, "request validation failed")
	}

	return nil
}
