package game

import (
	"encoding/json"
	"log/slog"
)

// Client packet types.
const (
	PACKET_SEND_SIGNAL = "SEND_SIGNAL"
	PACKET_SUBMIT_VOTE = "SUBMIT_VOTE"
)

// Server packet types.
const (
	PACKET_GAME_STATE_UPDATE = "GAME_STATE_UPDATE"
	PACKET_TIMER_UPDATE      = "TIMER_UPDATE"
	PACKET_ERROR             = "ERROR"
)

// ClientPacket is every inbound message; Type selects which fields matter.
type ClientPacket struct {
	Type       string `json:"type"`
	SignalType string `json:"signalType,omitempty"`
	Decision   string `json:"decision,omitempty"`
}

// ClientEventEnvelope tags an inbound packet with the participant identity
// the transport layer established at join time.
type ClientEventEnvelope struct {
	Packet ClientPacket
	From   string
}

type statePacket struct {
	Type  string          `json:"type"`
	State *SanitizedState `json:"state"`
}

type timerPacket struct {
	Type             string `json:"type"`
	SecondsRemaining int    `json:"secondsRemaining"`
}

type errorPacket struct {
	Type  string `json:"type"`
	Error string `json:"error"`
}

func makePacketGameState(state *SanitizedState) []byte {
	return marshalPacket(statePacket{Type: PACKET_GAME_STATE_UPDATE, State: state})
}

func makePacketTimerUpdate(secondsRemaining int) []byte {
	return marshalPacket(timerPacket{Type: PACKET_TIMER_UPDATE, SecondsRemaining: secondsRemaining})
}

func makePacketError(reason string) []byte {
	return marshalPacket(errorPacket{Type: PACKET_ERROR, Error: reason})
}

func marshalPacket(packet any) []byte {
	data, err := json.Marshal(packet)
	if err != nil {
		slog.Error("failed to marshal server packet", "error", err)
		return nil
	}
	return data
}

// normalizeSignal is fail-closed: only the exact string COSTLY costs the
// sender anything.
func normalizeSignal(signalType string) Signal {
	if signalType == string(SIGNAL_COSTLY) {
		return SIGNAL_COSTLY
	}
	return SIGNAL_CHEAP
}

// normalizeVote is fail-closed the other way: a vote is never TRUST unless
// it says exactly TRUST.
func normalizeVote(decision string) Vote {
	if decision == string(VOTE_TRUST) {
		return VOTE_TRUST
	}
	return VOTE_DISTRUST
}
