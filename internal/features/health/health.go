package health

import (
	"time"

	"github.com/aouiniamine/sofia-ops/internal/config"
	"github.com/aouiniamine/sofia-ops/internal/features/health/controller"
	"github.com/aouiniamine/sofia-ops/internal/features/health/service"
	"github.com/labstack/echo/v4"
)

type Feature struct {
	Controller *controller.HealthController
	Service    service.HealthService
}

func New(cfg *config.Config) *Feature {
	return NewWithClock(cfg, time.Now)
}

func NewWithClock(cfg *config.Config, now func() time.Time) *Feature {
	svc := service.New(cfg, now)
	ctrl := controller.New(svc)

	return &Feature{
		Controller: ctrl,
		Service:    svc,
	}
}

func (f *Feature) RegisterRoutes(e *echo.Echo) {
	f.Controller.RegisterRoutes(e)
}
