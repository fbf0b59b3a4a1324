package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/nexushealth/hms-api/internal/api/metrics"
	"github.com/nexushealth/hms-api/internal/core/domain"
	"github.com/nexushealth/hms-api/internal/core/ports"
)

// PatientHandler adds the archive workflow on top of the generic patient routes.
type PatientHandler struct {
	*ResourceHandler[domain.Patient, domain.PatientInput, domain.PatientPatch]
	service ports.PatientService
}

func NewPatientHandler(service ports.PatientService) *PatientHandler {
	return &PatientHandler{
		ResourceHandler: NewResourceHandler(domain.PatientResource, service),
		service:         service,
	}
}

func (h *PatientHandler) Register(g *echo.Group, authn echo.MiddlewareFunc) {
	r := h.group(g, authn)
	r.PATCH("/:id/archive", h.Archive)
	r.PATCH("/:id/restore", h.Restore)
	h.mountItems(r)
}

// Archive lowers the patient's urgency and marks the condition as archived.
//
// @Summary      Archive a patient
// @Tags         Patient
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Patient ID"
// @Success      200  {object}  domain.Patient
// @Failure      401  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /api/patients/{id}/archive [patch]
func (h *PatientHandler) Archive(c echo.Context) error {
	p, err := h.service.Archive(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	metrics.RecordMutationsTotal.WithLabelValues(domain.PatientResource.Path, "archive").Inc()
	return c.JSON(http.StatusOK, p)
}

// Restore removes the archive marker from the patient's condition.
//
// @Summary      Restore an archived patient
// @Tags         Patient
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Patient ID"
// @Success      200  {object}  domain.Patient
// @Failure      401  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /api/patients/{id}/restore [patch]
func (h *PatientHandler) Restore(c echo.Context) error {
	p, err := h.service.Restore(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	metrics.RecordMutationsTotal.WithLabelValues(domain.PatientResource.Path, "restore").Inc()
	return c.JSON(http.StatusOK, p)
}
