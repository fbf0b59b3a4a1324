package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/nexushealth/hms-api/internal/core/ports"
)

// echoValidator lets handlers call c.Validate(req) with the shared rule set.
type echoValidator struct {
	v ports.Validator
}

// NewValidator returns an echo.Validator ready to be assigned to echo.Echo.Validator.
func NewValidator(v ports.Validator) echo.Validator {
	return &echoValidator{v: v}
}

func (ev *echoValidator) Validate(i any) error {
	return ev.v.Validate(i)
}
