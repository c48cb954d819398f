package game

import (
	"context"
	"log/slog"
	"time"

	"github.com/Shivani2173/signal-project/metrics"
)

// lobby owns every live room. Rooms are created lazily on the first join for
// an unseen room id, and only ever inside the lobby goroutine, so concurrent
// first-joins can never race two engines into existence for one id.
type lobby struct {
	rooms         map[string]Room
	newRoom       func(id string, parent Lobby) Room
	tickerCreator PeriodicTickerChannelCreator

	joinRoomReq    chan RoomJoinRequest
	removeRoomChan chan string
}

func NewLobby(tickerCreator PeriodicTickerChannelCreator) *lobby {
	return &lobby{
		rooms: map[string]Room{},
		newRoom: func(id string, parent Lobby) Room {
			return NewRoom(id, parent, newMathRandomizer())
		},
		tickerCreator:  tickerCreator,
		joinRoomReq:    make(chan RoomJoinRequest, 256),
		removeRoomChan: make(chan string, 32),
	}
}

func (l *lobby) ForwardPlayerJoinRequestToRoom(ctx context.Context, jreq RoomJoinRequest) {
	select {
	case l.joinRoomReq <- jreq:
	case <-ctx.Done():
	}
}

func (l *lobby) RemoveRoom(roomId string) {
	l.removeRoomChan <- roomId
}

// LobbyActor runs until process teardown. It is the only scheduler: rooms
// learn about elapsed time exclusively through the 1s tick fan-out.
func (l *lobby) LobbyActor(started chan struct{}) {
	ticker := l.tickerCreator.Create(time.Second)
	pingTicker := l.tickerCreator.Create(30 * time.Second)

	close(started)

	for {
		select {
		case now := <-ticker:
			for _, r := range l.rooms {
				r.Tick(now)
			}
		case <-pingTicker:
			for _, r := range l.rooms {
				r.PingPlayers()
			}
		case jreq := <-l.joinRoomReq:
			l.handleJoinReq(jreq)
		case roomId := <-l.removeRoomChan:
			l.handleRemoveRoom(roomId)
		}
	}
}

func (l *lobby) handleJoinReq(jreq RoomJoinRequest) {
	r, exists := l.rooms[jreq.roomId]
	if !exists {
		r = l.newRoom(jreq.roomId, l)
		l.rooms[jreq.roomId] = r
		go r.GameLoop()
		metrics.RoomsCreated.Inc()
		metrics.LiveRooms.Set(float64(len(l.rooms)))
		slog.Info("room created", "room_id", jreq.roomId)
	}
	r.RequestJoin(jreq)
}

func (l *lobby) handleRemoveRoom(roomId string) {
	r, exists := l.rooms[roomId]
	if !exists {
		return
	}
	delete(l.rooms, roomId)
	r.CloseAndRelease()
	metrics.LiveRooms.Set(float64(len(l.rooms)))
	slog.Info("room removed", "room_id", roomId)
}
