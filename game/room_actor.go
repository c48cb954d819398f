package game

import (
	"log/slog"
	"time"

	"github.com/Shivani2173/signal-project/metrics"
)

// GameLoop is the room's single execution context. Every mutation of room
// state happens on this goroutine: player actions, joins, disconnects and
// clock ticks are all serialized through the same select, so a vote racing a
// timer expiry resolves to exactly one winner.
func (r *room) GameLoop() {
	for {
		select {
		case <-r.done:
			return
		case now := <-r.ticks:
			r.handleTick(now)
		case e := <-r.inbox:
			r.handleClientEvent(e)
		case jreq := <-r.joinReqs:
			r.handleJoinRequest(jreq)
		case p := <-r.removeMe:
			r.handleRemovePlayer(p)
		case <-r.pingPlayers:
			r.handlePingPlayers()
		}
		r.flushSendTasks()
	}
}

func (r *room) handleJoinRequest(jreq RoomJoinRequest) {
	if len(r.seats) >= MAX_PLAYERS {
		jreq.errChan <- ErrRoomFull
		return
	}

	r.seats = append(r.seats, &seat{
		player:      jreq.player,
		role:        ROLE_UNASSIGNED,
		trustMetric: INITIAL_TRUST_METRIC,
		connected:   true,
	})
	jreq.player.SetRoom(r)
	jreq.errChan <- nil

	slog.Info("player joined",
		"room_id", r.id,
		"player", jreq.player.Username(),
		"count", len(r.seats),
	)

	if len(r.seats) == MAX_PLAYERS && r.phase == PHASE_WAITING {
		// The roster is full; the waiting-room expiry no longer applies and
		// the grace delay gives the UI a beat before roles shuffle.
		r.expiry = time.Time{}
		r.armDeadline(GRACE_DELAY, PHASE_ROLE_ASSIGNMENT)
	}

	r.broadcastState()
}

func (r *room) handleClientEvent(e ClientEventEnvelope) {
	switch e.Packet.Type {
	case PACKET_SEND_SIGNAL:
		r.handleSignalEnvelope(e.Packet.SignalType, e.From)
	case PACKET_SUBMIT_VOTE:
		r.handleVoteEnvelope(e.Packet.Decision, e.From)
	default:
		metrics.ActionsDiscarded.Inc()
	}
}

// handleSignalEnvelope records the sender's public claim and ends the signal
// phase early. Anything out of phase or out of role is a silent no-op.
func (r *room) handleSignalEnvelope(signalType string, from string) {
	if r.phase != PHASE_SIGNAL {
		metrics.ActionsDiscarded.Inc()
		return
	}
	s := r.seatById(from)
	if s == nil || s.role != ROLE_SENDER {
		metrics.ActionsDiscarded.Inc()
		return
	}

	r.currentSignal = normalizeSignal(signalType)
	slog.Info("sender broadcasted signal", "room_id", r.id, "signal", r.currentSignal)
	r.transition(PHASE_VOTING)
}

// handleVoteEnvelope records one receiver's vote, overwriting any earlier
// vote from the same receiver, and closes the voting phase once all three
// receivers are in.
func (r *room) handleVoteEnvelope(decision string, from string) {
	if r.phase != PHASE_VOTING {
		metrics.ActionsDiscarded.Inc()
		return
	}
	s := r.seatById(from)
	if s == nil || s.role != ROLE_RECEIVER {
		metrics.ActionsDiscarded.Inc()
		return
	}

	r.votes[from] = normalizeVote(decision)
	slog.Info("receiver voted", "room_id", r.id, "player", s.player.Username())

	// Everyone sees the vote count move; nobody sees its content.
	r.broadcastState()

	if len(r.votes) == r.receiverCount() {
		r.transition(PHASE_RESOLUTION)
	}
}

func (r *room) handleTick(now time.Time) {
	if !r.expiry.IsZero() && now.After(r.expiry) {
		slog.Info("room expired", "room_id", r.id, "phase", r.phase)
		r.expiry = time.Time{}
		r.parentLobby.RemoveRoom(r.id)
		return
	}

	if r.deadline.IsZero() {
		return
	}

	if remaining := r.deadline.Sub(now); remaining > 0 {
		secs := int((remaining + time.Second - 1) / time.Second)
		if secs != r.lastCountdown {
			r.lastCountdown = secs
			r.broadcastTimer(secs)
		}
		return
	}

	target := r.deadlinePhase
	r.disarmDeadline()
	r.broadcastTimer(0)
	r.transition(target)
}

func (r *room) handleRemovePlayer(p Player) {
	s := r.seatById(p.Id())
	if s == nil || !s.connected {
		return
	}
	s.connected = false
	slog.Info("player disconnected", "room_id", r.id, "player", p.Username())
	p.CancelAndRelease()

	for _, other := range r.seats {
		if other.connected {
			r.broadcastState()
			return
		}
	}
	slog.Info("room deserted, requesting removal", "room_id", r.id)
	r.parentLobby.RemoveRoom(r.id)
}

func (r *room) handlePingPlayers() {
	for _, s := range r.seats {
		if s.connected {
			r.pingSendTasks = append(r.pingSendTasks, pingSendTask{to: s.player})
		}
	}
}

// transition is the single entry point for phase changes, whether driven by
// a timer expiry or by an action that completed the phase's required input.
func (r *room) transition(phase GamePhase) {
	r.phase = phase
	slog.Info("phase transition", "room_id", r.id, "phase", phase, "round", r.round)

	switch phase {
	case PHASE_ROLE_ASSIGNMENT:
		r.assignRoles()
		r.broadcastState()
		r.armDeadline(ROLE_ASSIGNMENT_DURATION, PHASE_SIGNAL)
	case PHASE_SIGNAL:
		r.currentSignal = ""
		r.broadcastState()
		r.armDeadline(SIGNAL_DURATION, PHASE_VOTING)
	case PHASE_VOTING:
		r.votes = make(map[string]Vote)
		r.broadcastState()
		r.armDeadline(VOTING_DURATION, PHASE_RESOLUTION)
	case PHASE_RESOLUTION:
		resolveRound(r.trueState, r.currentSignal, r.seats, r.votes)
		r.history = append(r.history, trustSnapshot(r.round, r.seats))
		r.broadcastState()
		r.armDeadline(RESOLUTION_DURATION, PHASE_NEXT_ROUND)
	case PHASE_NEXT_ROUND:
		r.setupNextRound()
	case PHASE_END_GAME:
		r.disarmDeadline()
		r.expiry = time.Now().Add(END_GAME_LINGER)
		r.broadcastState()
	}
}

// assignRoles shuffles the roster uniformly, seats the first permuted player
// as sender, and draws the round's ground truth.
func (r *room) assignRoles() {
	perm := r.rng.Perm(len(r.seats))
	for i, idx := range perm {
		if i == 0 {
			r.seats[idx].role = ROLE_SENDER
		} else {
			r.seats[idx].role = ROLE_RECEIVER
		}
	}

	if r.rng.CoinFlip() {
		r.trueState = QUALITY_HIGH
	} else {
		r.trueState = QUALITY_LOW
	}
}

func (r *room) setupNextRound() {
	if r.round >= MAX_ROUNDS {
		r.transition(PHASE_END_GAME)
		return
	}
	r.round++
	r.trueState = ""
	r.currentSignal = ""
	r.votes = make(map[string]Vote)
	r.transition(PHASE_ROLE_ASSIGNMENT)
}

// armDeadline supersedes any previously armed countdown; there is never more
// than one pending deadline per room. The countdown value goes out
// immediately, then once per second from handleTick.
func (r *room) armDeadline(d time.Duration, target GamePhase) {
	r.deadline = time.Now().Add(d)
	r.deadlinePhase = target
	r.lastCountdown = int(d / time.Second)
	r.broadcastTimer(r.lastCountdown)
}

func (r *room) disarmDeadline() {
	r.deadline = time.Time{}
	r.lastCountdown = 0
}

func (r *room) broadcastState() {
	for _, s := range r.seats {
		if !s.connected {
			continue
		}
		r.dataSendTasks = append(r.dataSendTasks, dataSendTask{
			to:   s.player,
			data: makePacketGameState(r.sanitizedFor(s)),
		})
	}
}

func (r *room) broadcastTimer(secondsRemaining int) {
	data := makePacketTimerUpdate(secondsRemaining)
	for _, s := range r.seats {
		if !s.connected {
			continue
		}
		r.dataSendTasks = append(r.dataSendTasks, dataSendTask{to: s.player, data: data})
	}
}

// flushSendTasks delivers everything the last handler buffered. Writes are
// fire-and-forget: one dead connection never blocks the rest, and never
// rolls anything back.
func (r *room) flushSendTasks() {
	for _, task := range r.dataSendTasks {
		if task.data == nil {
			continue
		}
		if err := task.to.Send(task.data); err != nil {
			slog.Debug("dropping send to slow or dead connection",
				"room_id", r.id, "player", task.to.Username())
		}
	}
	for _, task := range r.pingSendTasks {
		if err := task.to.Ping(); err != nil {
			slog.Debug("ping failed", "room_id", r.id, "player", task.to.Username())
		}
	}
	r.dataSendTasks = r.dataSendTasks[:0]
	r.pingSendTasks = r.pingSendTasks[:0]
}
