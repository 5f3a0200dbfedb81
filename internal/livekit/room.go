package livekit

import (
	lksdk "github.com/livekit/server-sdk-go/v2"
)

// Room is the slice of the media SDK room the tooling relies on.
type Room interface {
	Join(url, token string) error
	Name() string
	LocalIdentity() string
	RemoteIdentities() []string
	Disconnect()
}

// Callbacks receive participant identities as they join or leave.
type Callbacks struct {
	OnParticipantConnected    func(identity string)
	OnParticipantDisconnected func(identity string)
}

// RoomFactory creates a room that is not yet connected.
type RoomFactory func(cb Callbacks) Room

type sdkRoom struct {
	room *lksdk.Room
}

// NewRoom is the RoomFactory backed by the LiveKit Go SDK.
func NewRoom(cb Callbacks) Room {
	callback := &lksdk.RoomCallback{
		OnParticipantConnected: func(p *lksdk.RemoteParticipant) {
			if cb.OnParticipantConnected != nil {
				cb.OnParticipantConnected(p.Identity())
			}
		},
		OnParticipantDisconnected: func(p *lksdk.RemoteParticipant) {
			if cb.OnParticipantDisconnected != nil {
				cb.OnParticipantDisconnected(p.Identity())
			}
		},
	}
	return &sdkRoom{room: lksdk.NewRoom(callback)}
}

func (r *sdkRoom) Join(url, token string) error {
	return r.room.JoinWithToken(url, token)
}

func (r *sdkRoom) Name() string {
	return r.room.Name()
}

func (r *sdkRoom) LocalIdentity() string {
	return r.room.LocalParticipant.Identity()
}

func (r *sdkRoom) RemoteIdentities() []string {
	participants := r.room.GetRemoteParticipants()
	identities := make([]string, 0, len(participants))
	for _, p := range participants {
		identities = append(identities, p.Identity())
	}
	return identities
}

func (r *sdkRoom) Disconnect() {
	r.room.Disconnect()
}
