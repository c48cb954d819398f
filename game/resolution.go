package game

// resolveRound settles one round's payoffs and trust updates. It touches
// nothing but its arguments, so the whole payoff matrix is testable without
// a running room.
//
// Sender side: a costly signal has a price (-5 when honest, -20 when it was
// a bluff), and every trusting receiver is worth +10. Receiver side: trusting
// a high-quality sender pays +15 and builds trust (+10); trusting a
// low-quality one costs -15 and burns it (-20). A receiver who never voted
// is treated as having voted DISTRUST.
func resolveRound(trueState Quality, signal Signal, seats []*seat, votes map[string]Vote) {
	senderPayoff := 0

	if signal == SIGNAL_COSTLY {
		if trueState == QUALITY_HIGH {
			senderPayoff -= 5
		} else {
			senderPayoff -= 20
		}
	}

	trustCount := 0
	for _, s := range seats {
		if s.role != ROLE_RECEIVER {
			continue
		}

		vote, ok := votes[s.player.Id()]
		if !ok {
			vote = VOTE_DISTRUST
		}
		if vote != VOTE_TRUST {
			continue
		}

		trustCount++
		senderPayoff += 10

		if trueState == QUALITY_HIGH {
			s.score += 15
			s.trustMetric = clampTrust(s.trustMetric + 10)
		} else {
			s.score -= 15
			s.trustMetric = clampTrust(s.trustMetric - 20)
		}
	}

	for _, s := range seats {
		if s.role != ROLE_SENDER {
			continue
		}
		s.score += senderPayoff
		if trustCount > 0 {
			if trueState == QUALITY_LOW {
				s.trustMetric = clampTrust(s.trustMetric - 15)
			} else if trueState == QUALITY_HIGH {
				s.trustMetric = clampTrust(s.trustMetric + 10)
			}
		}
	}
}

// trustSnapshot freezes every player's trust metric for the history feed.
func trustSnapshot(round int, seats []*seat) RoundMetrics {
	metrics := make(map[string]int, len(seats))
	for _, s := range seats {
		metrics[s.player.Id()] = s.trustMetric
	}
	return RoundMetrics{Round: round, Metrics: metrics}
}

func clampTrust(v int) int {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}
