package controller

import (
	"net/http"

	"github.com/aouiniamine/sofia-ops/internal/features/health/service"
	"github.com/labstack/echo/v4"
)

type HealthController struct {
	service service.HealthService
}

func New(svc service.HealthService) *HealthController {
	return &HealthController{
		service: svc,
	}
}

func (h *HealthController) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", h.Health)
	e.GET("/status", h.Status)
}

func (h *HealthController) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, h.service.Health())
}

func (h *HealthController) Status(c echo.Context) error {
	return c.JSON(http.StatusOK, h.service.Status())
}
