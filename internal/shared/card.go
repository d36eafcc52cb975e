package shared

import "fmt"

// Suit represents the suit of a card (Clubs, Diamonds, Hearts, Spades).
// The zero value is carried by Wizards and Jesters, which have no suit.
type Suit int

const (
	NoSuit Suit = iota
	Clubs
	Diamonds
	Hearts
	Spades
)

// Suits lists the four ordinary suits in deck order.
var Suits = []Suit{Clubs, Diamonds, Hearts, Spades}

var suitSymbols = map[Suit]string{
	NoSuit:   " ",
	Clubs:    "♣",
	Diamonds: "♦",
	Hearts:   "♥",
	Spades:   "♠",
}

var suitNames = map[Suit]string{
	NoSuit:   "",
	Clubs:    "Clubs",
	Diamonds: "Diamonds",
	Hearts:   "Hearts",
	Spades:   "Spades",
}

// Symbol returns the one-character display symbol of the suit.
func (s Suit) Symbol() string {
	return suitSymbols[s]
}

func (s Suit) String() string {
	return suitNames[s]
}

// MarshalText encodes the suit by name so events stay readable on the wire.
func (s Suit) MarshalText() ([]byte, error) {
	return []byte(suitNames[s]), nil
}

func (s *Suit) UnmarshalText(text []byte) error {
	for suit, name := range suitNames {
		if name == string(text) {
			*s = suit
			return nil
		}
	}
	return fmt.Errorf("unknown suit %q", text)
}

// Rank represents the rank of a card, including the two special ranks.
type Rank int

const (
	Two Rank = iota
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
	Ace
	Wizard
	Jester
)

// Ranks lists the thirteen ordinary ranks in deck order.
var Ranks = []Rank{Two, Three, Four, Five, Six, Seven, Eight, Nine, Ten, Jack, Queen, King, Ace}

var rankSymbols = map[Rank]string{
	Two:    "2",
	Three:  "3",
	Four:   "4",
	Five:   "5",
	Six:    "6",
	Seven:  "7",
	Eight:  "8",
	Nine:   "9",
	Ten:    "10",
	Jack:   "J",
	Queen:  "Q",
	King:   "K",
	Ace:    "A",
	Wizard: "W",
	Jester: "Je",
}

// Strength used to compare cards of the same relevant suit.
var rankValues = map[Rank]int{
	Two:    2,
	Three:  3,
	Four:   4,
	Five:   5,
	Six:    6,
	Seven:  7,
	Eight:  8,
	Nine:   9,
	Ten:    10,
	Jack:   11,
	Queen:  12,
	King:   13,
	Ace:    14,
	Wizard: 15,
	Jester: 0,
}

// Symbol returns the display symbol of the rank ("2".."10", "J", "Q", "K", "A", "W", "Je").
func (r Rank) Symbol() string {
	return rankSymbols[r]
}

// Value returns the comparison strength of the rank.
func (r Rank) Value() int {
	return rankValues[r]
}

// IsSpecial reports whether the rank is a Wizard or a Jester.
func (r Rank) IsSpecial() bool {
	return r == Wizard || r == Jester
}

func (r Rank) String() string {
	switch r {
	case Wizard:
		return "Wizard"
	case Jester:
		return "Jester"
	}
	return rankSymbols[r]
}

func (r Rank) MarshalText() ([]byte, error) {
	return []byte(r.String()), nil
}

func (r *Rank) UnmarshalText(text []byte) error {
	for rank := Two; rank <= Jester; rank++ {
		if rank.String() == string(text) {
			*r = rank
			return nil
		}
	}
	return fmt.Errorf("unknown rank %q", text)
}

// Card represents a single card in the Wizard deck.
type Card struct {
	Rank Rank `json:"rank"`
	Suit Suit `json:"suit"`
}

// WizardCard and JesterCard are the suitless special cards.
var (
	WizardCard = Card{Rank: Wizard, Suit: NoSuit}
	JesterCard = Card{Rank: Jester, Suit: NoSuit}
)

// IsWizard reports whether the card is a Wizard, whatever suit it stands in for.
func (c Card) IsWizard() bool {
	return c.Rank == Wizard
}

// IsJester reports whether the card is a Jester.
func (c Card) IsJester() bool {
	return c.Rank == Jester
}

// HasSuit reports whether the card carries one of the four ordinary suits.
func (c Card) HasSuit() bool {
	return c.Suit != NoSuit
}

// WithSuit returns a copy of the card standing in for the given suit.
// Only a Wizard flipped as trump is ever given a suit this way.
func (c Card) WithSuit(s Suit) Card {
	c.Suit = s
	return c
}

// String formats the card as a right-aligned two-character rank and a suit symbol.
func (c Card) String() string {
	return fmt.Sprintf("%2s%s", c.Rank.Symbol(), c.Suit.Symbol())
}
