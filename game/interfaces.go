package game

import (
	"context"
	"time"
)

// NetworkSession is the transport-layer view of one connected participant.
type NetworkSession interface {
	Close(reason string)
	Write(data []byte) error
	Read() ([]byte, error)
	Ping() error
}

// Player is what the room engine needs from a connected participant.
type Player interface {
	Id() string
	Username() string
	Send(data []byte) error
	Ping() error
	SetRoom(r Room)
	CancelAndRelease()
}

type Room interface {
	GameLoop()
	Tick(now time.Time)
	PingPlayers()
	Send(ctx context.Context, e ClientEventEnvelope)
	RequestJoin(jreq RoomJoinRequest)
	RemoveMe(ctx context.Context, p Player)
	CloseAndRelease()
}

type Lobby interface {
	ForwardPlayerJoinRequestToRoom(ctx context.Context, jreq RoomJoinRequest)
	RemoveRoom(roomId string)
}

// randomizer exists so scenario tests can pin down role assignment and the
// quality draw.
type randomizer interface {
	Perm(n int) []int
	CoinFlip() bool
}

type PeriodicTickerChannelCreator interface {
	Create(duration time.Duration) <-chan time.Time
}
