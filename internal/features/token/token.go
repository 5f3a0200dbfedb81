package token

import (
	"github.com/aouiniamine/sofia-ops/internal/cache"
	"github.com/aouiniamine/sofia-ops/internal/config"
	"github.com/aouiniamine/sofia-ops/internal/features/token/controller"
	"github.com/aouiniamine/sofia-ops/internal/features/token/repository"
	"github.com/aouiniamine/sofia-ops/internal/features/token/service"
	"github.com/aouiniamine/sofia-ops/internal/metrics"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

type Feature struct {
	Controller *controller.TokenController
	Service    service.TokenService
	Repository repository.SessionRepository
}

func New(cfg *config.Config, redisCache *cache.Redis, m *metrics.Metrics, log *zap.Logger) *Feature {
	repo := repository.New(redisCache)
	signer := service.NewSigner(cfg.LiveKit.APIKey, cfg.LiveKit.APISecret, cfg.LiveKit.TokenTTL)
	svc := service.New(signer, repo, m, cfg.LiveKit.URL, log)
	ctrl := controller.New(svc)

	return &Feature{
		Controller: ctrl,
		Service:    svc,
		Repository: repo,
	}
}

func (f *Feature) RegisterRoutes(e *echo.Echo) {
	f.Controller.RegisterRoutes(e)
}
