package game

import "wizard-game/internal/shared"

// ScoreDelta returns the points earned for a round: 2 plus the bet when the
// bet was met exactly, otherwise minus one point per trick of difference.
func ScoreDelta(bet, tricks int) int {
	if bet == tricks {
		return 2 + bet
	}
	if bet > tricks {
		return tricks - bet
	}
	return bet - tricks
}

// ApplyScores adds each player's round result to their score and returns the deltas.
func ApplyScores(players []*shared.Player) []int {
	deltas := make([]int, len(players))
	for i, p := range players {
		deltas[i] = ScoreDelta(p.Bet, p.Tricks)
		p.Score += deltas[i]
	}
	return deltas
}

// FinalWinner returns the player with the highest score. Ties go to whichever
// tied player comes first in players.
func FinalWinner(players []*shared.Player) *shared.Player {
	if len(players) == 0 {
		return nil
	}
	winner := players[0]
	for _, p := range players[1:] {
		if p.Score > winner.Score {
			winner = p
		}
	}
	return winner
}
