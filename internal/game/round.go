package game

import (
	"fmt"
	"log"

	"wizard-game/internal/protocol"
	"wizard-game/internal/shared"
)

// Trump is the card revealed after dealing and the suit it declares.
type Trump struct {
	Card     *shared.Card   // nil when the deck ran out before the reveal
	Suit     *shared.Suit   // nil when the round has no trump
	ChosenBy *shared.Player // dealer who named the suit for a flipped Wizard
}

// playRound plays round r: rotation, deal, trump, bets, tricks and scoring.
// The seating is back in canonical order when it returns.
func (m *Match) playRound(r int) error {
	m.Round = r
	m.Phase = Dealing

	n := len(m.Players)
	m.Seating.Reset()
	m.Seating.RotateLeft(r % n)
	dealer := m.playerAt(0)
	m.Seating.RotateLeft(1)
	leader := m.playerAt(0)

	log.Printf("Match %s: Round %d of %d. Dealer %s, leader %s.", m.ID, r, m.Rounds, dealer.Name, leader.Name)
	order := make([]string, n)
	for i, p := range m.seatOrder() {
		order[i] = p.ID
	}
	m.notify(protocol.RoundStart, protocol.RoundStartPayload{
		Round:  r,
		Dealer: playerInfo(dealer),
		Leader: playerInfo(leader),
		Order:  order,
	})

	for _, p := range m.Players {
		p.ResetForRound()
	}

	m.stock = m.Deck.Clone()
	m.stock.Shuffle(m.rng)
	if err := m.deal(r); err != nil {
		return err
	}

	trump, err := m.revealTrump(dealer)
	if err != nil {
		return err
	}
	m.Trump = trump

	m.Phase = Bidding
	if err := m.placeBets(); err != nil {
		return err
	}

	m.Phase = Playing
	for t := 1; t <= r; t++ {
		if err := m.playTrick(t); err != nil {
			return fmt.Errorf("trick %d: %w", t, err)
		}
	}

	m.Phase = RoundOver
	deltas := ApplyScores(m.Players)
	m.Seating.Reset()
	log.Printf("Match %s: Round %d scored.", m.ID, r)
	m.notify(protocol.RoundEnd, protocol.RoundEndPayload{
		Round:     r,
		Rounds:    m.Rounds,
		Standings: m.standings(deltas),
	})
	return nil
}

// deal gives every player r cards, one at a time in seat order.
func (m *Match) deal(r int) error {
	n := m.Seating.Len()
	hands, err := m.stock.Deal(n, r)
	if err != nil {
		return fmt.Errorf("dealing round %d: %w", r, err)
	}
	for i, hand := range hands {
		p := m.playerAt(i)
		p.Hand = hand
		m.notify(protocol.DealHand, protocol.DealHandPayload{Player: playerInfo(p), Hand: append([]shared.Card(nil), hand...)})
	}
	log.Printf("Match %s: Dealt %d cards to %d players, %d left.", m.ID, r, n, m.stock.Len())
	return nil
}

// revealTrump turns the next card. No card or a Jester means no trump; a
// Wizard lets the dealer name the suit.
func (m *Match) revealTrump(dealer *shared.Player) (Trump, error) {
	var trump Trump
	card, ok := m.stock.Pop()
	if !ok {
		log.Printf("Match %s: Deck exhausted, no trump this round.", m.ID)
		m.notify(protocol.TrumpReveal, protocol.TrumpPayload{Round: m.Round})
		return trump, nil
	}

	switch {
	case card.IsWizard():
		suit, err := m.chooseTrumpSuit(dealer)
		if err != nil {
			return trump, err
		}
		card = card.WithSuit(suit)
		trump.Suit = &suit
		trump.ChosenBy = dealer
	case card.IsJester():
	default:
		suit := card.Suit
		trump.Suit = &suit
	}
	trump.Card = &card

	payload := protocol.TrumpPayload{Round: m.Round, Card: trump.Card, Suit: trump.Suit}
	if trump.ChosenBy != nil {
		info := playerInfo(trump.ChosenBy)
		payload.ChosenBy = &info
	}
	log.Printf("Match %s: Trump card %v.", m.ID, card)
	m.notify(protocol.TrumpReveal, payload)
	return trump, nil
}

func (m *Match) chooseTrumpSuit(dealer *shared.Player) (shared.Suit, error) {
	decider := m.deciderFor(dealer)
	for attempt := 0; attempt < maxDecisionAttempts; attempt++ {
		m.think(dealer)
		suit, err := decider.TrumpSuit(dealer, shared.Suits)
		if err != nil {
			return shared.NoSuit, fmt.Errorf("trump suit from %s: %w", dealer.Name, err)
		}
		for _, s := range shared.Suits {
			if s == suit {
				return suit, nil
			}
		}
		m.invalid(dealer, "Gotta pick one of the four suits.")
	}
	return shared.NoSuit, InvalidDecisionError(fmt.Sprintf("%s never picked a valid trump suit", dealer.Name))
}

// placeBets asks every player in seat order for a bet in [0, hand size].
func (m *Match) placeBets() error {
	for _, p := range m.seatOrder() {
		maxBet := len(p.Hand)
		bet, err := m.askBet(p, maxBet)
		if err != nil {
			return err
		}
		p.Bet = bet
		log.Printf("Match %s: %s bet %d.", m.ID, p.Name, bet)
		m.notify(protocol.BetPlaced, protocol.BetPayload{Player: playerInfo(p), Bet: bet, MaxBet: maxBet})
	}
	return nil
}

func (m *Match) askBet(p *shared.Player, maxBet int) (int, error) {
	decider := m.deciderFor(p)
	for attempt := 0; attempt < maxDecisionAttempts; attempt++ {
		m.think(p)
		bet, err := decider.Bet(p, maxBet)
		if err != nil {
			return 0, fmt.Errorf("bet from %s: %w", p.Name, err)
		}
		if bet >= 0 && bet <= maxBet {
			return bet, nil
		}
		m.invalid(p, fmt.Sprintf("Bet must be in the range of 0 to %d.", maxBet))
	}
	return 0, InvalidDecisionError(fmt.Sprintf("%s never placed a bet in [0, %d]", p.Name, maxBet))
}

// playTrick collects one card from every seat, resolves the trick and rotates
// the seating so the winner leads the next one.
func (m *Match) playTrick(number int) error {
	trick := shared.NewTrick()
	for _, p := range m.seatOrder() {
		idx, err := m.askCard(p, trick)
		if err != nil {
			return err
		}
		card := p.RemoveAt(idx)
		trick.AddCard(card, p.OriginalPosition)
		m.notify(protocol.CardPlayed, protocol.CardPlayedPayload{
			Player:   playerInfo(p),
			Card:     card,
			Trick:    number,
			LeadSuit: trick.LeadSuit,
		})
	}

	seat := trick.DetermineWinner(m.Trump.Suit)
	winner := m.Players[trick.Winner().Position]
	winner.Tricks++
	log.Printf("Match %s: Trick %d won by %s with %v.", m.ID, number, winner.Name, trick.Winner().Card)
	m.notify(protocol.TrickEnd, protocol.TrickEndPayload{
		Trick:    number,
		Winner:   trick.Winner(),
		WinnerID: winner.ID,
		Name:     winner.Name,
		Cards:    trick.Cards,
	})

	// Plays happen in seat order, so the winning play index is the winner's seat.
	m.Seating.RotateLeft(seat)
	return nil
}

func (m *Match) askCard(p *shared.Player, trick *shared.Trick) (int, error) {
	decider := m.deciderFor(p)
	legal := func(i int) bool { return p.CanPlay(i, trick.LeadSuit) }
	for attempt := 0; attempt < maxDecisionAttempts; attempt++ {
		m.think(p)
		idx, err := decider.PlayCard(p, trick, legal)
		if err != nil {
			return 0, fmt.Errorf("card from %s: %w", p.Name, err)
		}
		if idx < 0 || idx >= len(p.Hand) {
			m.invalid(p, "Gotta pick what's offered!")
			continue
		}
		if !legal(idx) {
			m.invalid(p, "Gotta follow suit!")
			continue
		}
		return idx, nil
	}
	return 0, InvalidDecisionError(fmt.Sprintf("%s never played a legal card", p.Name))
}
