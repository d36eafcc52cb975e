package shared

import "log"

// PlayedCard stores a card along with the canonical position of the player who played it.
type PlayedCard struct {
	Card     Card `json:"card"`
	Position int  `json:"position"`
}

// Trick represents a single trick of the Wizard game.
type Trick struct {
	Cards       []PlayedCard // Cards played in the current trick, in play order
	LeadSuit    *Suit        // Suit of the first ordinary card played, nil until one is
	WinnerIndex int          // Index into Cards of the winning play (-1 if not determined)
}

// NewTrick creates a new trick instance.
func NewTrick() *Trick {
	return &Trick{
		Cards:       []PlayedCard{},
		WinnerIndex: -1,
	}
}

// AddCard adds a card and the player's position to the trick.
func (t *Trick) AddCard(card Card, position int) {
	if t.LeadSuit == nil && card.HasSuit() && !card.Rank.IsSpecial() {
		suit := card.Suit
		t.LeadSuit = &suit
	}
	t.Cards = append(t.Cards, PlayedCard{Card: card, Position: position})
}

// DetermineWinner resolves the trick and returns the index of the winning play.
// trump is nil when the round has no trump suit.
//
// The first Wizard always wins. Jesters never win unless every card is a
// Jester, in which case the first one does. The first non-Jester after led
// Jesters sets the lead suit. Any trump beats every non-trump card, a higher
// trump beats a lower one, and otherwise only a higher card of the lead suit
// takes over.
func (t *Trick) DetermineWinner(trump *Suit) int {
	if len(t.Cards) == 0 {
		log.Panicf("Error: Cannot determine winner of an empty trick.")
	}

	isTrump := func(c Card) bool {
		return trump != nil && !c.Rank.IsSpecial() && c.Suit == *trump
	}

	winner := 0
	leadSuit := t.Cards[0].Card.Suit

	for i, played := range t.Cards {
		current := played.Card
		best := t.Cards[winner].Card

		if current.IsWizard() {
			winner = i
			break
		}
		if current.IsJester() {
			continue
		}
		if best.IsJester() {
			winner = i
			leadSuit = current.Suit
			continue
		}
		if isTrump(best) {
			if isTrump(current) && current.Rank.Value() > best.Rank.Value() {
				winner = i
			}
			continue
		}
		if isTrump(current) {
			winner = i
			continue
		}
		if current.Suit == leadSuit && current.Rank.Value() > best.Rank.Value() {
			winner = i
		}
	}

	t.WinnerIndex = winner
	return winner
}

// Winner returns the winning play. DetermineWinner must have been called.
func (t *Trick) Winner() PlayedCard {
	return t.Cards[t.WinnerIndex]
}
