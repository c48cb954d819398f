package game

// PlayerState is the public slice of one player: visible to every recipient.
// Vote content never appears here, only the hasVoted flag.
type PlayerState struct {
	Id          string `json:"id"`
	Username    string `json:"username"`
	Role        Role   `json:"role"`
	Score       int    `json:"score"`
	TrustMetric int    `json:"trustMetric"`
	HasVoted    bool   `json:"hasVoted"`
	Connected   bool   `json:"connected"`
}

// RoundMetrics is one appended-per-round trust snapshot; the client's trend
// chart consumes the whole history slice.
type RoundMetrics struct {
	Round   int            `json:"round"`
	Metrics map[string]int `json:"metrics"`
}

// SanitizedState is the per-recipient view of a room. The field names match
// the original client's expectations.
type SanitizedState struct {
	RoomId        string          `json:"roomId"`
	Phase         GamePhase       `json:"state"`
	Round         int             `json:"round"`
	MaxRounds     int             `json:"maxRounds"`
	TrueState     string          `json:"trueState"`
	CurrentSignal Signal          `json:"currentSignal"`
	Me            PlayerState     `json:"me"`
	Votes         map[string]Vote `json:"votes,omitempty"`
	History       []RoundMetrics  `json:"history"`
	Players       []PlayerState   `json:"players"`
}

// sanitizedFor builds the redacted view for one seat. The true state is
// exposed verbatim only to the sender, or to everyone once the round has
// resolved; the votes map is withheld until then so receivers can only see
// who has voted, not how.
func (r *room) sanitizedFor(recipient *seat) *SanitizedState {
	revealed := recipient.role == ROLE_SENDER ||
		r.phase == PHASE_RESOLUTION || r.phase == PHASE_END_GAME

	trueState := QUALITY_HIDDEN
	if revealed {
		trueState = string(r.trueState)
	}

	var votes map[string]Vote
	if r.phase == PHASE_RESOLUTION || r.phase == PHASE_END_GAME {
		votes = r.votes
	}

	players := make([]PlayerState, 0, len(r.seats))
	for _, s := range r.seats {
		players = append(players, r.playerStateOf(s))
	}

	return &SanitizedState{
		RoomId:        r.id,
		Phase:         r.phase,
		Round:         r.round,
		MaxRounds:     MAX_ROUNDS,
		TrueState:     trueState,
		CurrentSignal: r.currentSignal,
		Me:            r.playerStateOf(recipient),
		Votes:         votes,
		History:       r.history,
		Players:       players,
	}
}

func (r *room) playerStateOf(s *seat) PlayerState {
	_, hasVoted := r.votes[s.player.Id()]
	return PlayerState{
		Id:          s.player.Id(),
		Username:    s.player.Username(),
		Role:        s.role,
		Score:       s.score,
		TrustMetric: s.trustMetric,
		HasVoted:    hasVoted,
		Connected:   s.connected,
	}
}
