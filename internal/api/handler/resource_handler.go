package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/nexushealth/hms-api/internal/api/metrics"
	"github.com/nexushealth/hms-api/internal/api/middleware"
	"github.com/nexushealth/hms-api/internal/core/domain"
	"github.com/nexushealth/hms-api/internal/core/ports"
)

// Routes is anything that mounts its endpoints under the /api group.
type Routes interface {
	Register(g *echo.Group, authn echo.MiddlewareFunc)
}

// ResourceHandler serves the five CRUD endpoints of one descriptor.
type ResourceHandler[T domain.Record, C any, P any] struct {
	desc    domain.Descriptor[T, C, P]
	service ports.ResourceService[T, C, P]
}

func NewResourceHandler[T domain.Record, C any, P any](
	desc domain.Descriptor[T, C, P],
	service ports.ResourceService[T, C, P],
) *ResourceHandler[T, C, P] {
	return &ResourceHandler[T, C, P]{desc: desc, service: service}
}

// Register mounts GET/POST on the collection and GET/PUT/DELETE on items, with
// and without a trailing slash. Every route needs a caller; writes and deletes
// are further limited by the descriptor policy.
func (h *ResourceHandler[T, C, P]) Register(g *echo.Group, authn echo.MiddlewareFunc) {
	r := h.group(g, authn)
	h.mountItems(r)
}

func (h *ResourceHandler[T, C, P]) group(g *echo.Group, authn echo.MiddlewareFunc) *echo.Group {
	return g.Group("/"+h.desc.Path, authn)
}

func (h *ResourceHandler[T, C, P]) mountItems(r *echo.Group) {
	write := policyGuard(h.desc.Policy.Write)
	del := policyGuard(h.desc.Policy.Delete)

	for _, root := range []string{"", "/"} {
		r.GET(root, h.List)
		r.POST(root, h.Create, write...)
	}
	for _, item := range []string{"/:id", "/:id/"} {
		r.GET(item, h.Get)
		r.PUT(item, h.Update, write...)
		r.DELETE(item, h.Delete, del...)
	}
}

func policyGuard(roles []domain.Role) []echo.MiddlewareFunc {
	if len(roles) == 0 {
		return nil
	}
	return []echo.MiddlewareFunc{middleware.RBAC(roles...)}
}

func (h *ResourceHandler[T, C, P]) List(c echo.Context) error {
	recs, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, recs)
}

func (h *ResourceHandler[T, C, P]) Get(c echo.Context) error {
	rec, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, rec)
}

func (h *ResourceHandler[T, C, P]) Create(c echo.Context) error {
	var in C
	if err := bindBody(c, &in); err != nil {
		return err
	}
	rec, err := h.service.Create(c.Request().Context(), in)
	if err != nil {
		return err
	}
	metrics.RecordMutationsTotal.WithLabelValues(h.desc.Path, "create").Inc()
	return c.JSON(http.StatusCreated, rec)
}

func (h *ResourceHandler[T, C, P]) Update(c echo.Context) error {
	var p P
	if err := bindBody(c, &p); err != nil {
		return err
	}
	rec, err := h.service.Update(c.Request().Context(), c.Param("id"), p)
	if err != nil {
		return err
	}
	metrics.RecordMutationsTotal.WithLabelValues(h.desc.Path, "update").Inc()
	return c.JSON(http.StatusOK, rec)
}

func (h *ResourceHandler[T, C, P]) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	metrics.RecordMutationsTotal.WithLabelValues(h.desc.Path, "delete").Inc()
	return c.JSON(http.StatusOK, map[string]string{"detail": "Deleted"})
}
