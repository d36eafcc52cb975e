package game

import (
	"math/rand/v2"
	"time"

	"wizard-game/internal/shared"
)

// Decider supplies a player's choices. The match asks again whenever an answer
// is out of range, so an interactive implementation may re-prompt on its own
// or simply return what it read.
type Decider interface {
	// Bet returns how many tricks p expects to take, in [0, maxBet].
	Bet(p *shared.Player, maxBet int) (int, error)
	// TrumpSuit returns one of suits; asked of the dealer when a Wizard is flipped.
	TrumpSuit(p *shared.Player, suits []shared.Suit) (shared.Suit, error)
	// PlayCard returns the index into p.Hand of the card to play. legal reports
	// whether a given index respects the follow-suit rule.
	PlayCard(p *shared.Player, trick *shared.Trick, legal func(int) bool) (int, error)
}

// RandomDecider plays for the computer: uniform bets and trump suits, and the
// first card that follows the lead suit.
type RandomDecider struct {
	rng *rand.Rand
}

func NewRandomDecider(rng *rand.Rand) *RandomDecider {
	return &RandomDecider{rng: rng}
}

func (d *RandomDecider) Bet(p *shared.Player, maxBet int) (int, error) {
	return d.rng.IntN(maxBet + 1), nil
}

func (d *RandomDecider) TrumpSuit(p *shared.Player, suits []shared.Suit) (shared.Suit, error) {
	return suits[d.rng.IntN(len(suits))], nil
}

// PlayCard picks the first card of the lead suit, or the first card in hand if
// the player cannot follow.
func (d *RandomDecider) PlayCard(p *shared.Player, trick *shared.Trick, legal func(int) bool) (int, error) {
	if trick.LeadSuit != nil {
		for i, card := range p.Hand {
			if !card.Rank.IsSpecial() && card.Suit == *trick.LeadSuit {
				return i, nil
			}
		}
	}
	return 0, nil
}

// NewRand returns a generator for seed; 0 seeds from the clock.
func NewRand(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewPCG(uint64(seed), uint64(seed)>>1|1))
}
