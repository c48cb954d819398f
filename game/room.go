package game

import (
	"context"
	"time"
)

// seat is one player's slot in a room. Seats are never removed: a
// disconnected player keeps their role, score and trust metric so the round
// still resolves, and broadcasts simply skip them.
type seat struct {
	player      Player
	role        Role
	score       int
	trustMetric int
	connected   bool
}

type RoomJoinRequest struct {
	roomId  string
	player  Player
	errChan chan error
}

func NewRoomJoinRequest(roomId string, player Player) RoomJoinRequest {
	return RoomJoinRequest{roomId: roomId, player: player, errChan: make(chan error, 1)}
}

type dataSendTask struct {
	to   Player
	data []byte
}

type pingSendTask struct {
	to Player
}

type room struct {
	id          string
	parentLobby Lobby
	rng         randomizer

	// Round state, owned exclusively by the GameLoop goroutine.
	phase         GamePhase
	round         int
	trueState     Quality
	currentSignal Signal
	votes         map[string]Vote
	history       []RoundMetrics
	seats         []*seat // join order

	// deadline is the single pending countdown; zero means no timer armed.
	// deadlinePhase is the transition target when it expires.
	deadline      time.Time
	deadlinePhase GamePhase
	lastCountdown int

	// expiry is the lifecycle cutoff (waiting room that never fills,
	// finished game lingering for the final chart). Not a countdown.
	expiry time.Time

	dataSendTasks []dataSendTask
	pingSendTasks []pingSendTask

	inbox       chan ClientEventEnvelope
	joinReqs    chan RoomJoinRequest
	removeMe    chan Player
	ticks       chan time.Time
	pingPlayers chan struct{}
	done        chan struct{}
}

func NewRoom(id string, parentLobby Lobby, rng randomizer) *room {
	return &room{
		id:            id,
		parentLobby:   parentLobby,
		rng:           rng,
		phase:         PHASE_WAITING,
		round:         1,
		votes:         make(map[string]Vote),
		history:       make([]RoundMetrics, 0, MAX_ROUNDS),
		seats:         make([]*seat, 0, MAX_PLAYERS),
		expiry:        time.Now().Add(WAITING_EXPIRY),
		dataSendTasks: make([]dataSendTask, 0),
		pingSendTasks: make([]pingSendTask, 0),
		inbox:         make(chan ClientEventEnvelope, 64),
		joinReqs:      make(chan RoomJoinRequest, 8),
		removeMe:      make(chan Player, 8),
		ticks:         make(chan time.Time, 4),
		pingPlayers:   make(chan struct{}, 1),
		done:          make(chan struct{}),
	}
}

func (r *room) Tick(now time.Time) {
	select {
	case r.ticks <- now:
	default:
	}
}

func (r *room) PingPlayers() {
	select {
	case r.pingPlayers <- struct{}{}:
	default:
	}
}

func (r *room) Send(ctx context.Context, e ClientEventEnvelope) {
	select {
	case r.inbox <- e:
	case <-ctx.Done():
	case <-r.done:
	}
}

func (r *room) RequestJoin(jreq RoomJoinRequest) {
	select {
	case r.joinReqs <- jreq:
	case <-r.done:
		jreq.errChan <- ErrRoomFull
	}
}

func (r *room) RemoveMe(ctx context.Context, p Player) {
	select {
	case r.removeMe <- p:
	case <-ctx.Done():
	case <-r.done:
	}
}

func (r *room) CloseAndRelease() {
	close(r.done)
	for _, s := range r.seats {
		if s.connected {
			s.player.CancelAndRelease()
		}
	}
}

func (r *room) seatById(id string) *seat {
	for _, s := range r.seats {
		if s.player.Id() == id {
			return s
		}
	}
	return nil
}

func (r *room) senderSeat() *seat {
	for _, s := range r.seats {
		if s.role == ROLE_SENDER {
			return s
		}
	}
	return nil
}

func (r *room) receiverCount() int {
	n := 0
	for _, s := range r.seats {
		if s.role == ROLE_RECEIVER {
			n++
		}
	}
	return n
}
