package controller

import (
	"errors"
	"net/http"

	"github.com/aouiniamine/sofia-ops/internal/features/token/dto"
	"github.com/aouiniamine/sofia-ops/internal/features/token/service"
	"github.com/aouiniamine/sofia-ops/pkg/response"
	"github.com/labstack/echo/v4"
)

type TokenController struct {
	service service.TokenService
}

func New(svc service.TokenService) *TokenController {
	return &TokenController{service: svc}
}

func (c *TokenController) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", c.Health)
	e.GET("/ready", c.Ready)

	api := e.Group("/api/sofia")
	api.POST("/connect", c.Connect)
	api.GET("/sessions/:room", c.Sessions)
}

// Connect godoc
// @Summary Issue a room access token
// @Description Mint a LiveKit access token for a participant and return it with the media server URL
// @Tags sofia
// @Accept json
// @Produce json
// @Param request body dto.ConnectRequest true "Participant and room"
// @Success 200 {object} dto.ConnectResponse
// @Failure 400 {object} response.Response
// @Failure 503 {object} response.Response
// @Router /api/sofia/connect [post]
func (c *TokenController) Connect(ctx echo.Context) error {
	var req dto.ConnectRequest
	if err := ctx.Bind(&req); err != nil {
		return response.BadRequest(ctx, "invalid request body")
	}

	if err := ctx.Validate(&req); err != nil {
		return response.BadRequest(ctx, "participantName and roomName are required (max 128 characters)")
	}

	resp, err := c.service.Connect(ctx.Request().Context(), req)
	if err != nil {
		if errors.Is(err, service.ErrMissingCredentials) {
			return response.ServiceUnavailable(ctx, "livekit credentials are not configured")
		}
		return response.InternalError(ctx, "failed to generate token")
	}

	return ctx.JSON(http.StatusOK, resp)
}

// Sessions godoc
// @Summary List live sessions
// @Description List identities holding an unexpired token for a room
// @Tags sofia
// @Produce json
// @Param room path string true "Room name"
// @Success 200 {object} response.Response{data=dto.SessionListResponse}
// @Failure 500 {object} response.Response
// @Router /api/sofia/sessions/{room} [get]
func (c *TokenController) Sessions(ctx echo.Context) error {
	sessions, err := c.service.Sessions(ctx.Request().Context(), ctx.Param("room"))
	if err != nil {
		return response.InternalError(ctx, "failed to list sessions")
	}

	return response.Success(ctx, sessions)
}

func (c *TokenController) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, dto.HealthResponse{
		Status:  "healthy",
		Service: service.ServiceName,
	})
}

func (c *TokenController) Ready(ctx echo.Context) error {
	status := c.service.Ready(ctx.Request().Context())
	if status.Status != "healthy" {
		return ctx.JSON(http.StatusServiceUnavailable, status)
	}

	return response.Success(ctx, status)
}
