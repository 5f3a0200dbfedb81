package service

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strings"
	"syscall"
	"time"

	"github.com/aouiniamine/sofia-ops/internal/features/webhook/dto"
	"github.com/google/uuid"
	"github.com/imroc/req/v3"
)

const (
	requestTimeout = 10 * time.Second
	userAgent      = "Sofia-Trigger/1.0"
)

var ErrAgentUnreachable = errors.New("could not connect to agent webhook endpoint")

// DeliveryError is returned when the agent answers with a non-200 status.
type DeliveryError struct {
	StatusCode int
	Body       string
}

func (e *DeliveryError) Error() string {
	return fmt.Sprintf("webhook rejected with status %d: %s", e.StatusCode, e.Body)
}

// WebhookSender posts synthetic room events to the agent's webhook receiver.
type WebhookSender struct {
	client *req.Client
	url    string
	now    func() time.Time
}

func NewWebhookSender(url string) *WebhookSender {
	return &WebhookSender{
		client: req.C().
			SetTimeout(requestTimeout).
			SetUserAgent(userAgent),
		url: url,
		now: time.Now,
	}
}

// NewRoomStartedEvent builds the event announcing that room was created at now.
func NewRoomStartedEvent(room string, now time.Time) dto.RoomStartedEvent {
	id := strings.ReplaceAll(uuid.NewString(), "-", "")[:12]
	ts := now.Unix()

	return dto.RoomStartedEvent{
		Event: dto.EventRoomStarted,
		Room: dto.RoomInfo{
			SID:          "RM_" + id,
			Name:         room,
			EmptyTimeout: dto.DefaultEmptyTimeout,
			CreationTime: ts,
			Metadata:     "",
		},
		ID:        "EV_" + id,
		CreatedAt: ts,
	}
}

// TriggerRoomStarted tells the agent that room exists so it joins it.
func (s *WebhookSender) TriggerRoomStarted(ctx context.Context, room string) (*dto.RoomStartedEvent, error) {
	event := NewRoomStartedEvent(room, s.now())

	resp, err := s.client.R().
		SetContext(ctx).
		SetHeader("X-Webhook-Event", dto.EventRoomStarted).
		SetBody(&event).
		Post(s.url)
	if err != nil {
		if isDialError(err) {
			return nil, fmt.Errorf("%w (%s): %v", ErrAgentUnreachable, s.url, err)
		}
		return nil, fmt.Errorf("failed to send webhook: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, &DeliveryError{StatusCode: resp.StatusCode, Body: resp.String()}
	}

	return &event, nil
}

func isDialError(err error) bool {
	if errors.Is(err, syscall.ECONNREFUSED) {
		return true
	}
	var opErr *net.OpError
	return errors.As(err, &opErr) && opErr.Op == "dial"
}
