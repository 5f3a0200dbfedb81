package service

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/livekit/protocol/auth"
)

var (
	ErrMissingCredentials = errors.New("livekit api key and secret are not configured")
	ErrInvalidToken       = errors.New("invalid token")
)

// VideoGrant is the room permission block LiveKit expects under the "video" claim.
type VideoGrant struct {
	Room           string `json:"room,omitempty"`
	RoomJoin       bool   `json:"roomJoin,omitempty"`
	CanPublish     bool   `json:"canPublish"`
	CanSubscribe   bool   `json:"canSubscribe"`
	CanPublishData bool   `json:"canPublishData"`
}

type Claims struct {
	Name  string      `json:"name,omitempty"`
	Video *VideoGrant `json:"video,omitempty"`
	jwt.RegisteredClaims
}

// Signer mints and verifies LiveKit access tokens for one API key pair. Verify
// decodes into Claims, so a change in the minted layout fails loudly.
type Signer struct {
	apiKey    string
	apiSecret []byte
	ttl       time.Duration
	now       func() time.Time
}

func NewSigner(apiKey, apiSecret string, ttl time.Duration) *Signer {
	return &Signer{
		apiKey:    apiKey,
		apiSecret: []byte(apiSecret),
		ttl:       ttl,
		now:       time.Now,
	}
}

// Configured reports whether both halves of the key pair are present.
func (s *Signer) Configured() bool {
	return s.apiKey != "" && len(s.apiSecret) > 0
}

func (s *Signer) TTL() time.Duration {
	return s.ttl
}

// Sign returns a token letting identity join room with publish and subscribe
// rights, along with its expiry. The grant is built with the LiveKit protocol
// package so its claim layout matches what the media server parses.
func (s *Signer) Sign(identity, name, room string) (string, time.Time, error) {
	if !s.Configured() {
		return "", time.Time{}, ErrMissingCredentials
	}

	grant := &auth.VideoGrant{
		RoomJoin: true,
		Room:     room,
	}
	grant.SetCanPublish(true)
	grant.SetCanSubscribe(true)
	grant.SetCanPublishData(true)

	at := auth.NewAccessToken(s.apiKey, string(s.apiSecret)).
		SetIdentity(identity).
		SetName(name).
		SetValidFor(s.ttl).
		SetVideoGrant(grant)

	expiry := s.now().Add(s.ttl)
	tokenString, err := at.ToJWT()
	if err != nil {
		return "", time.Time{}, err
	}

	return tokenString, expiry, nil
}

// Verify checks signature, issuer and time window of a token minted for this
// key pair.
func (s *Signer) Verify(tokenString string) (*Claims, error) {
	if !s.Configured() {
		return nil, ErrMissingCredentials
	}

	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		return s.apiSecret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(s.apiKey),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid || claims.Video == nil {
		return nil, ErrInvalidToken
	}

	return claims, nil
}
