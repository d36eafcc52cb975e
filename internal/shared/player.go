package shared

import (
	"fmt"

	"github.com/google/uuid"
)

// Operator tells whether a player's decisions come from a person or the computer.
type Operator int

const (
	Human Operator = iota
	Computer
)

func (o Operator) String() string {
	if o == Human {
		return "human"
	}
	return "computer"
}

func (o Operator) MarshalText() ([]byte, error) {
	return []byte(o.String()), nil
}

func (o *Operator) UnmarshalText(text []byte) error {
	switch string(text) {
	case "human":
		*o = Human
	case "computer":
		*o = Computer
	default:
		return fmt.Errorf("unknown operator %q", text)
	}
	return nil
}

// Player represents a player in the Wizard game.
type Player struct {
	ID               string   // Unique identifier for the player
	Name             string   // Player's chosen name, unique within a match
	Operator         Operator // Who makes this player's decisions
	OriginalPosition int      // Canonical seat, fixed once at match start
	Score            int      // Running score across rounds
	Bet              int      // Tricks the player bet on this round
	Tricks           int      // Tricks won this round
	Hand             []Card   // Cards currently held by the player
}

// NewPlayer creates a new player with a fresh ID.
func NewPlayer(name string, operator Operator) *Player {
	return &Player{
		ID:       uuid.NewString(),
		Name:     name,
		Operator: operator,
		Hand:     []Card{},
	}
}

// ResetForRound clears the per-round state. The score is kept.
func (p *Player) ResetForRound() {
	p.Hand = []Card{}
	p.Bet = 0
	p.Tricks = 0
}

// AddCard adds a card to the player's hand.
func (p *Player) AddCard(card Card) {
	p.Hand = append(p.Hand, card)
}

// RemoveCard removes the first copy of card from the player's hand.
func (p *Player) RemoveCard(card Card) bool {
	for i, c := range p.Hand {
		if c == card {
			p.Hand = append(p.Hand[:i], p.Hand[i+1:]...)
			return true
		}
	}
	return false
}

// RemoveAt removes and returns the card at index i of the hand.
func (p *Player) RemoveAt(i int) Card {
	card := p.Hand[i]
	p.Hand = append(p.Hand[:i], p.Hand[i+1:]...)
	return card
}

// HasSuit reports whether the hand holds a card of the given ordinary suit.
func (p *Player) HasSuit(suit Suit) bool {
	for _, card := range p.Hand {
		if card.Suit == suit && !card.Rank.IsSpecial() {
			return true
		}
	}
	return false
}

// CanPlay reports whether the card at index i may be played when lead is the
// established lead suit (nil if none yet). Wizards and Jesters are always playable;
// otherwise a player holding the lead suit must follow it.
func (p *Player) CanPlay(i int, lead *Suit) bool {
	if i < 0 || i >= len(p.Hand) {
		return false
	}
	card := p.Hand[i]
	if card.Rank.IsSpecial() || lead == nil {
		return true
	}
	if p.HasSuit(*lead) {
		return card.Suit == *lead
	}
	return true
}
