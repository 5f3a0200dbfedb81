package service

import (
	"context"
	"errors"

	"github.com/aouiniamine/sofia-ops/internal/features/token/dto"
	"github.com/aouiniamine/sofia-ops/internal/features/token/repository"
	"github.com/aouiniamine/sofia-ops/internal/metrics"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	statusHealthy   = "healthy"
	statusUnhealthy = "unhealthy"

	ServiceName = "token-server"
)

type TokenService interface {
	Connect(ctx context.Context, req dto.ConnectRequest) (*dto.ConnectResponse, error)
	Sessions(ctx context.Context, room string) (*dto.SessionListResponse, error)
	Ready(ctx context.Context) *dto.ReadyResponse
}

type tokenService struct {
	signer     *Signer
	sessions   repository.SessionRepository
	metrics    *metrics.Metrics
	livekitURL string
	log        *zap.Logger
}

var _ TokenService = (*tokenService)(nil)

func New(signer *Signer, sessions repository.SessionRepository, m *metrics.Metrics, livekitURL string, log *zap.Logger) TokenService {
	return &tokenService{
		signer:     signer,
		sessions:   sessions,
		metrics:    m,
		livekitURL: livekitURL,
		log:        log,
	}
}

func (s *tokenService) Connect(ctx context.Context, req dto.ConnectRequest) (*dto.ConnectResponse, error) {
	identity := NewIdentity(req.ParticipantName)

	token, expiry, err := s.signer.Sign(identity, req.ParticipantName, req.RoomName)
	if err != nil {
		if errors.Is(err, ErrMissingCredentials) {
			s.metrics.TokenFailed("missing_credentials")
		} else {
			s.metrics.TokenFailed("signing")
		}
		return nil, err
	}

	if err := s.sessions.Record(ctx, req.RoomName, identity, s.signer.TTL()); err != nil {
		s.log.Warn("failed to record session",
			zap.String("room", req.RoomName),
			zap.String("identity", identity),
			zap.Error(err),
		)
	}

	s.metrics.TokenIssued()
	s.log.Info("token issued",
		zap.String("room", req.RoomName),
		zap.String("identity", identity),
		zap.Time("expires_at", expiry),
	)

	return &dto.ConnectResponse{
		Token:     token,
		URL:       s.livekitURL,
		Room:      req.RoomName,
		Identity:  identity,
		ExpiresIn: int64(s.signer.TTL().Seconds()),
	}, nil
}

func (s *tokenService) Sessions(ctx context.Context, room string) (*dto.SessionListResponse, error) {
	identities, err := s.sessions.ListIdentities(ctx, room)
	if err != nil {
		return nil, err
	}
	return &dto.SessionListResponse{
		Room:       room,
		Identities: identities,
	}, nil
}

func (s *tokenService) Ready(ctx context.Context) *dto.ReadyResponse {
	status := &dto.ReadyResponse{
		Status:   statusHealthy,
		Services: make(map[string]string),
	}

	if err := s.sessions.Ping(ctx); err != nil {
		status.Status = statusUnhealthy
		status.Services["cache"] = statusUnhealthy
	} else {
		status.Services["cache"] = statusHealthy
	}

	if !s.signer.Configured() {
		status.Status = statusUnhealthy
		status.Services["livekit_credentials"] = "missing"
	} else {
		status.Services["livekit_credentials"] = "configured"
	}

	return status
}

// NewIdentity suffixes the display name with a short random tag so that two
// participants using the same name stay distinct inside a room.
func NewIdentity(participantName string) string {
	return participantName + "-" + uuid.NewString()[:8]
}
