package service

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/aouiniamine/sofia-ops/internal/config"
	healthdto "github.com/aouiniamine/sofia-ops/internal/features/health/dto"
	tokenservice "github.com/aouiniamine/sofia-ops/internal/features/token/service"
	"github.com/aouiniamine/sofia-ops/internal/livekit"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	checkRoom     = "credential-check"
	checkTokenTTL = 5 * time.Minute
)

var (
	ErrMissingCredentials = errors.New("required credentials are missing")
	ErrTokenMismatch      = errors.New("issued token does not carry the expected grant")
)

// Item is one credential as it may be shown to an operator: URLs verbatim,
// secrets only as configured/missing.
type Item struct {
	Name       string
	Display    string
	Configured bool
	Required   bool
}

type Report struct {
	Items         []Item
	TokenVerified bool
	Connected     bool
}

type CredentialService struct {
	cfg     *config.Config
	newRoom livekit.RoomFactory
	log     *zap.Logger
}

func New(cfg *config.Config, newRoom livekit.RoomFactory, log *zap.Logger) *CredentialService {
	return &CredentialService{
		cfg:     cfg,
		newRoom: newRoom,
		log:     log,
	}
}

// Check inspects the configured credentials, proves the key pair can mint a
// verifiable token and, when connect is set, joins a throwaway room with it.
// The report is returned even when err is non-nil.
func (s *CredentialService) Check(connect bool) (*Report, error) {
	report := &Report{Items: s.items()}

	var missing []string
	for _, item := range report.Items {
		if item.Required && !item.Configured {
			missing = append(missing, item.Name)
		}
	}
	if len(missing) > 0 {
		return report, fmt.Errorf("%w: %s", ErrMissingCredentials, strings.Join(missing, ", "))
	}

	signer := tokenservice.NewSigner(s.cfg.LiveKit.APIKey, s.cfg.LiveKit.APISecret, checkTokenTTL)
	identity := "credential-check-" + uuid.NewString()[:8]

	token, _, err := signer.Sign(identity, identity, checkRoom)
	if err != nil {
		return report, fmt.Errorf("failed to sign token: %w", err)
	}

	claims, err := signer.Verify(token)
	if err != nil {
		return report, fmt.Errorf("failed to verify token: %w", err)
	}
	if claims.Subject != identity || claims.Video.Room != checkRoom || !claims.Video.RoomJoin {
		return report, ErrTokenMismatch
	}
	report.TokenVerified = true
	s.log.Info("token round-trip verified", zap.String("identity", identity))

	if !connect {
		return report, nil
	}

	room := s.newRoom(livekit.Callbacks{})
	if err := room.Join(s.cfg.LiveKit.URL, token); err != nil {
		return report, fmt.Errorf("failed to join %s: %w", s.cfg.LiveKit.URL, err)
	}
	room.Disconnect()
	report.Connected = true
	s.log.Info("media server accepted credentials", zap.String("url", s.cfg.LiveKit.URL))

	return report, nil
}

func (s *CredentialService) items() []Item {
	return []Item{
		urlItem("LIVEKIT_URL", s.cfg.LiveKit.URL, true),
		secretItem("LIVEKIT_API_KEY", s.cfg.LiveKit.APIKey, true),
		secretItem("LIVEKIT_API_SECRET", s.cfg.LiveKit.APISecret, true),
		secretItem("GOOGLE_API_KEY", s.cfg.Google.APIKey, false),
		urlItem("CALENDAR_URL", s.cfg.Calendar.URL, false),
	}
}

func urlItem(name, value string, required bool) Item {
	item := Item{Name: name, Display: value, Configured: value != "", Required: required}
	if value == "" {
		item.Display = healthdto.NotSet
	}
	return item
}

func secretItem(name, value string, required bool) Item {
	item := Item{Name: name, Display: healthdto.Configured, Configured: value != "", Required: required}
	if value == "" {
		item.Display = healthdto.Missing
	}
	return item
}
