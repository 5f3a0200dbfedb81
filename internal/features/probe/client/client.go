package client

import (
	"context"
	"fmt"
	"time"

	tokendto "github.com/aouiniamine/sofia-ops/internal/features/token/dto"
	"github.com/imroc/req/v3"
)

const requestTimeout = 10 * time.Second

// ConnectClient fetches room tokens from the connect API.
type ConnectClient struct {
	client *req.Client
	url    string
}

func New(url string) *ConnectClient {
	return &ConnectClient{
		client: req.C().SetTimeout(requestTimeout),
		url:    url,
	}
}

func (c *ConnectClient) FetchToken(ctx context.Context, participant, room string) (*tokendto.ConnectResponse, error) {
	var result tokendto.ConnectResponse

	resp, err := c.client.R().
		SetContext(ctx).
		SetBody(&tokendto.ConnectRequest{ParticipantName: participant, RoomName: room}).
		SetSuccessResult(&result).
		Post(c.url)
	if err != nil {
		return nil, fmt.Errorf("failed to request token: %w", err)
	}

	if !resp.IsSuccessState() {
		return nil, fmt.Errorf("failed to get token: status %d", resp.StatusCode)
	}

	if result.Token == "" || result.URL == "" {
		return nil, fmt.Errorf("connect API returned an incomplete response")
	}

	return &result, nil
}
