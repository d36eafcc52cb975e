package shared

import (
	"fmt"
	"math/rand/v2"
)

// SpecialCardCount is the number of Wizards, and also the number of Jesters, in a deck.
const SpecialCardCount = 4

// DeckSize is the number of cards in a full Wizard deck.
const DeckSize = 13*4 + 2*SpecialCardCount

// Deck represents an ordered collection of cards. The top card is the last one.
type Deck struct {
	Cards []Card
}

// NewDeck creates the canonical 60-card Wizard deck: every suit from Two to
// Ace in suit order, then the Wizards, then the Jesters.
func NewDeck() *Deck {
	cards := make([]Card, 0, DeckSize)
	for _, suit := range Suits {
		for _, rank := range Ranks {
			cards = append(cards, Card{Rank: rank, Suit: suit})
		}
	}
	for i := 0; i < SpecialCardCount; i++ {
		cards = append(cards, WizardCard)
	}
	for i := 0; i < SpecialCardCount; i++ {
		cards = append(cards, JesterCard)
	}

	return &Deck{Cards: cards}
}

// Clone returns a deck with its own copy of the cards.
func (d *Deck) Clone() *Deck {
	cards := make([]Card, len(d.Cards))
	copy(cards, d.Cards)
	return &Deck{Cards: cards}
}

// Len returns the number of cards left in the deck.
func (d *Deck) Len() int {
	return len(d.Cards)
}

// Shuffle randomizes the order of cards in the deck.
func (d *Deck) Shuffle(rng *rand.Rand) {
	rng.Shuffle(len(d.Cards), func(i, j int) {
		d.Cards[i], d.Cards[j] = d.Cards[j], d.Cards[i]
	})
}

// Pop removes and returns the top card. It reports false when the deck is empty.
func (d *Deck) Pop() (Card, bool) {
	if len(d.Cards) == 0 {
		return Card{}, false
	}
	top := d.Cards[len(d.Cards)-1]
	d.Cards = d.Cards[:len(d.Cards)-1]
	return top, true
}

// Deal hands out cardsPerPlayer cards to each of numPlayers players, one card
// at a time in seat order.
func (d *Deck) Deal(numPlayers, cardsPerPlayer int) ([][]Card, error) {
	totalCardsNeeded := numPlayers * cardsPerPlayer
	if len(d.Cards) < totalCardsNeeded {
		return nil, fmt.Errorf("not enough cards in deck (%d) to deal %d cards to %d players", len(d.Cards), cardsPerPlayer, numPlayers)
	}

	dealt := make([][]Card, numPlayers)
	for i := range dealt {
		dealt[i] = make([]Card, 0, cardsPerPlayer)
	}
	for n := 0; n < cardsPerPlayer; n++ {
		for i := 0; i < numPlayers; i++ {
			card, _ := d.Pop()
			dealt[i] = append(dealt[i], card)
		}
	}
	return dealt, nil
}
