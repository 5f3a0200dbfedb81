package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	tokendto "github.com/aouiniamine/sofia-ops/internal/features/token/dto"
	"github.com/aouiniamine/sofia-ops/internal/livekit"
	"go.uber.org/zap"
)

var ErrInvalidOptions = errors.New("checks and interval must be positive")

type TokenSource interface {
	FetchToken(ctx context.Context, participant, room string) (*tokendto.ConnectResponse, error)
}

type Options struct {
	Participant string
	Room        string
	Checks      int
	Interval    time.Duration
}

// Report is what the probe observed while connected.
type Report struct {
	Room          string
	LocalIdentity string
	Initial       []string
	Checks        [][]string
}

type RoomProbe struct {
	tokens  TokenSource
	newRoom livekit.RoomFactory
	log     *zap.Logger
}

func New(tokens TokenSource, newRoom livekit.RoomFactory, log *zap.Logger) *RoomProbe {
	return &RoomProbe{
		tokens:  tokens,
		newRoom: newRoom,
		log:     log,
	}
}

// Run joins the room with a freshly issued token, samples the remote
// participants opts.Checks times and always disconnects before returning.
// A cancelled ctx ends sampling early and returns the partial report.
func (p *RoomProbe) Run(ctx context.Context, opts Options) (*Report, error) {
	if opts.Checks <= 0 || opts.Interval <= 0 {
		return nil, ErrInvalidOptions
	}

	p.log.Info("getting token from server", zap.String("participant", opts.Participant), zap.String("room", opts.Room))
	conn, err := p.tokens.FetchToken(ctx, opts.Participant, opts.Room)
	if err != nil {
		return nil, err
	}

	room := p.newRoom(livekit.Callbacks{
		OnParticipantConnected: func(identity string) {
			p.log.Info("participant connected", zap.String("identity", identity))
		},
		OnParticipantDisconnected: func(identity string) {
			p.log.Info("participant disconnected", zap.String("identity", identity))
		},
	})

	p.log.Info("got token, connecting", zap.String("url", conn.URL))
	if err := room.Join(conn.URL, conn.Token); err != nil {
		return nil, fmt.Errorf("failed to join room: %w", err)
	}
	defer func() {
		room.Disconnect()
		p.log.Info("disconnected from room")
	}()

	report := &Report{
		Room:          room.Name(),
		LocalIdentity: room.LocalIdentity(),
		Initial:       room.RemoteIdentities(),
	}
	p.log.Info("connected to room",
		zap.String("room", report.Room),
		zap.String("local", report.LocalIdentity),
		zap.Strings("remote", report.Initial),
	)

	ticker := time.NewTicker(opts.Interval)
	defer ticker.Stop()

	for i := 1; i <= opts.Checks; i++ {
		select {
		case <-ctx.Done():
			return report, ctx.Err()
		case <-ticker.C:
		}

		remote := room.RemoteIdentities()
		report.Checks = append(report.Checks, remote)
		p.log.Info("participant check", zap.Int("check", i), zap.Strings("remote", remote))
	}

	return report, nil
}
