package handler

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/labstack/echo/v4"

	"github.com/nexushealth/hms-api/internal/api/middleware"
	"github.com/nexushealth/hms-api/internal/core/domain"
	"github.com/nexushealth/hms-api/pkg/patch"
)

var bodyBinder = &echo.DefaultBinder{}

// bindBody decodes the JSON body only. Decode failures become field-level
// validation errors so they render as 400 with a stable reason.
func bindBody(c echo.Context, dst any) error {
	err := bodyBinder.BindBody(c, dst)
	if err == nil {
		return nil
	}

	var typeErr *json.UnmarshalTypeError
	switch {
	case errors.Is(err, patch.ErrNullNotAllowed):
		return &domain.ValidationError{Reason: patch.ErrNullNotAllowed.Error()}
	case errors.As(err, &typeErr) && typeErr.Field != "":
		return &domain.ValidationError{Reason: fmt.Sprintf("%s must be %s", typeErr.Field, typeErr.Type)}
	default:
		var he *echo.HTTPError
		if errors.As(err, &he) && he.Internal == nil {
			return he
		}
		return &domain.ValidationError{Reason: "invalid payload"}
	}
}

// callerID is the authenticated principal id, or "" for anonymous requests.
func callerID(c echo.Context) string {
	if p, ok := middleware.PrincipalFrom(c); ok {
		return p.ID
	}
	return ""
}
