package game

import "time"

// GamePhase values go over the wire verbatim, so they stay strings.
type GamePhase string

const (
	PHASE_WAITING         GamePhase = "WAITING"         // Waiting for the room to fill up.
	PHASE_ROLE_ASSIGNMENT GamePhase = "ROLE_ASSIGNMENT" // Roles shuffled, true state drawn.
	PHASE_SIGNAL          GamePhase = "SIGNAL_PHASE"    // The sender picks a public signal.
	PHASE_VOTING          GamePhase = "VOTING_PHASE"    // Receivers vote trust/distrust.
	PHASE_RESOLUTION      GamePhase = "RESOLUTION"      // Payoffs and trust metrics settle.
	PHASE_NEXT_ROUND      GamePhase = "NEXT_ROUND"      // Transient: advances or ends the game.
	PHASE_END_GAME        GamePhase = "END_GAME"        // Terminal.
)

type Role string

const (
	ROLE_UNASSIGNED Role = "UNASSIGNED"
	ROLE_SENDER     Role = "SENDER"
	ROLE_RECEIVER   Role = "RECEIVER"
)

// Quality is the ground truth of a round, known to the sender only until
// resolution.
type Quality string

const (
	QUALITY_HIGH Quality = "HIGH_QUALITY"
	QUALITY_LOW  Quality = "LOW_QUALITY"
)

// QUALITY_HIDDEN is what everyone who isn't allowed to see the true state
// gets in their snapshot.
const QUALITY_HIDDEN = "HIDDEN"

type Signal string

const (
	SIGNAL_CHEAP  Signal = "CHEAP"
	SIGNAL_COSTLY Signal = "COSTLY"
)

type Vote string

const (
	VOTE_TRUST    Vote = "TRUST"
	VOTE_DISTRUST Vote = "DISTRUST"
)

// --- Game Constants ---
const MAX_PLAYERS = 4 // A game is exactly 1 sender + 3 receivers.
const MAX_ROUNDS = 5

const GRACE_DELAY = time.Second // Lets the UI show the full roster before roles shuffle.
const ROLE_ASSIGNMENT_DURATION = 7 * time.Second
const SIGNAL_DURATION = 15 * time.Second
const VOTING_DURATION = 15 * time.Second
const RESOLUTION_DURATION = 8 * time.Second

const WAITING_EXPIRY = 10 * time.Minute // A room that never fills gets evicted.
const END_GAME_LINGER = 60 * time.Second

const INITIAL_TRUST_METRIC = 50
