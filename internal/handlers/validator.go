package handlers

import (
	"dipadubank/internal/validation"

	"github.com/labstack/echo/v4"
)

// CustomValidator plugs the shared validator, with its custom rules and JSON field
// names, into c.Validate
type CustomValidator struct {
	*validation.Validator
}

func NewValidator() echo.Validator {
	return CustomValidator{Validator: validation.GetValidator()}
}

func (cv CustomValidator) Validate(i interface{}) error {
	return cv.Struct(i)
}
