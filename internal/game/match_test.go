package game

import (
	"errors"
	"io"
	"log"
	"os"
	"testing"
	"time"

	"wizard-game/internal/protocol"
	"wizard-game/internal/shared"
)

func TestMain(m *testing.M) {
	log.SetOutput(io.Discard)
	os.Exit(m.Run())
}

// scriptedDecider answers from fixed queues, repeating the last answer once a
// queue runs dry.
type scriptedDecider struct {
	bets  []int
	suits []shared.Suit
	cards []int
	err   error
	calls int
}

func (d *scriptedDecider) Bet(p *shared.Player, maxBet int) (int, error) {
	d.calls++
	if d.err != nil {
		return 0, d.err
	}
	return next(&d.bets), nil
}

func (d *scriptedDecider) TrumpSuit(p *shared.Player, suits []shared.Suit) (shared.Suit, error) {
	d.calls++
	if len(d.suits) == 0 {
		return suits[0], nil
	}
	s := d.suits[0]
	if len(d.suits) > 1 {
		d.suits = d.suits[1:]
	}
	return s, nil
}

func (d *scriptedDecider) PlayCard(p *shared.Player, trick *shared.Trick, legal func(int) bool) (int, error) {
	d.calls++
	if len(d.cards) == 0 {
		for i := range p.Hand {
			if legal(i) {
				return i, nil
			}
		}
	}
	return next(&d.cards), nil
}

func next(q *[]int) int {
	v := (*q)[0]
	if len(*q) > 1 {
		*q = (*q)[1:]
	}
	return v
}

func computers(names ...string) []*shared.Player {
	players := make([]*shared.Player, len(names))
	for i, n := range names {
		players[i] = shared.NewPlayer(n, shared.Computer)
	}
	return players
}

func newTestMatch(t *testing.T, players []*shared.Player, cfg Config) *Match {
	t.Helper()
	if cfg.Rand == nil {
		cfg.Rand = NewRand(42)
	}
	m, err := NewMatch(players, cfg)
	if err != nil {
		t.Fatalf("NewMatch: %v", err)
	}
	return m
}

func TestNewMatchValidation(t *testing.T) {
	if _, err := NewMatch(computers("A", "B"), Config{}); !errors.Is(err, ErrPlayerCount) {
		t.Fatalf("two players: got %v", err)
	}
	if _, err := NewMatch(computers("A", "B", "C", "D", "E", "F", "G"), Config{}); !errors.Is(err, ErrPlayerCount) {
		t.Fatalf("seven players: got %v", err)
	}
	if _, err := NewMatch(computers("A", "B", "A"), Config{}); !errors.Is(err, ErrDuplicateName) {
		t.Fatalf("duplicate names: got %v", err)
	}
	players := computers("A", "B")
	players = append(players, shared.NewPlayer("Me", shared.Human))
	if _, err := NewMatch(players, Config{}); !errors.Is(err, ErrNoDecider) {
		t.Fatalf("human without decider: got %v", err)
	}
}

func TestNewMatchSeating(t *testing.T) {
	m := newTestMatch(t, computers("Merlin", "Oz", "Sarumon", "Gandalf", "Kvothe"), Config{})
	if m.Rounds != 12 {
		t.Fatalf("rounds = %d, want 60/5", m.Rounds)
	}
	for i, p := range m.Players {
		if p.OriginalPosition != i {
			t.Fatalf("player %s at index %d has position %d", p.Name, i, p.OriginalPosition)
		}
	}
	if m.Deck.Len() != shared.DeckSize {
		t.Fatalf("deck has %d cards", m.Deck.Len())
	}
	if m.Phase != Waiting {
		t.Fatalf("phase = %s", m.Phase)
	}
}

func TestMatchRoundInvariants(t *testing.T) {
	for _, n := range []int{3, 4, 5, 6} {
		names := []string{"Merlin", "Oz", "Sarumon", "Gandalf", "Kvothe", "Morgana"}[:n]

		var m *Match
		var events []protocol.Event
		dealt := map[int][]int{}
		trumpRevealed := map[int]bool{}
		roundEnds := 0

		observer := func(ev protocol.Event) {
			events = append(events, ev)
			switch p := ev.Payload.(type) {
			case protocol.RoundStartPayload:
				if p.Dealer.Position != p.Round%n || p.Leader.Position != (p.Round+1)%n {
					t.Errorf("n=%d round %d: dealer %d leader %d", n, p.Round, p.Dealer.Position, p.Leader.Position)
				}
			case protocol.DealHandPayload:
				dealt[m.Round] = append(dealt[m.Round], len(p.Hand))
			case protocol.TrumpPayload:
				trumpRevealed[p.Round] = p.Card != nil
				if p.Card != nil && p.Card.IsJester() && p.Suit != nil {
					t.Errorf("jester must not declare trump")
				}
				if p.Card != nil && p.Card.IsWizard() && (p.Suit == nil || p.ChosenBy == nil) {
					t.Errorf("wizard trump needs a chosen suit")
				}
			case protocol.RoundEndPayload:
				roundEnds++
				r := p.Round
				removed := shared.DeckSize - m.stock.Len()
				want := r * n
				if trumpRevealed[r] {
					want++
				}
				if removed != want {
					t.Errorf("n=%d round %d: removed %d cards, want %d", n, r, removed, want)
				}
				if r*n == shared.DeckSize && trumpRevealed[r] {
					t.Errorf("n=%d round %d: trump revealed from an exhausted deck", n, r)
				}
				tricks := 0
				for _, s := range p.Standings {
					tricks += s.Tricks
					if s.Delta != ScoreDelta(s.Bet, s.Tricks) {
						t.Errorf("delta %d for bet %d tricks %d", s.Delta, s.Bet, s.Tricks)
					}
					if s.Bet < 0 || s.Bet > r {
						t.Errorf("bet %d outside [0, %d]", s.Bet, r)
					}
				}
				if tricks != r {
					t.Errorf("n=%d round %d: %d tricks won, want %d", n, r, tricks, r)
				}
				for i, pos := range m.Seating.Order() {
					if pos != i {
						t.Errorf("seating not canonical after round %d: %v", r, m.Seating.Order())
						break
					}
				}
			}
		}

		m = newTestMatch(t, computers(names...), Config{Observers: []Observer{observer}})
		winner, err := m.Run()
		if err != nil {
			t.Fatalf("n=%d: Run: %v", n, err)
		}

		if roundEnds != shared.DeckSize/n {
			t.Fatalf("n=%d: played %d rounds", n, roundEnds)
		}
		for r, sizes := range dealt {
			if len(sizes) != n {
				t.Fatalf("n=%d round %d: dealt to %d players", n, r, len(sizes))
			}
			for _, size := range sizes {
				if size != r {
					t.Fatalf("n=%d round %d: hand size %d", n, r, size)
				}
			}
		}
		if winner != FinalWinner(m.Players) {
			t.Fatalf("winner %s does not match final standings", winner.Name)
		}
		last := events[len(events)-1]
		if last.Type != protocol.GameOver || last.MatchID != m.ID {
			t.Fatalf("last event = %+v", last)
		}
		if m.Phase != GameOver {
			t.Fatalf("phase = %s", m.Phase)
		}
	}
}

func TestMatchIsReproducibleWithSeed(t *testing.T) {
	run := func() []int {
		m := newTestMatch(t, computers("A", "B", "C", "D"), Config{Rand: NewRand(99)})
		if _, err := m.Run(); err != nil {
			t.Fatalf("Run: %v", err)
		}
		scores := make([]int, len(m.Players))
		for i, p := range m.Players {
			scores[i] = p.Score
		}
		return scores
	}
	a, b := run(), run()
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("same seed gave %v and %v", a, b)
		}
	}
}

func TestThinkDelayOnlyForComputers(t *testing.T) {
	human := &scriptedDecider{bets: []int{0}, suits: []shared.Suit{shared.Hearts}}
	players := append(computers("A", "B"), shared.NewPlayer("Me", shared.Human))

	computerDecisions := 0
	observer := func(ev protocol.Event) {
		switch p := ev.Payload.(type) {
		case protocol.BetPayload:
			if p.Player.Operator == shared.Computer {
				computerDecisions++
			}
		case protocol.CardPlayedPayload:
			if p.Player.Operator == shared.Computer {
				computerDecisions++
			}
		case protocol.TrumpPayload:
			if p.ChosenBy != nil && p.ChosenBy.Operator == shared.Computer {
				computerDecisions++
			}
		}
	}

	m := newTestMatch(t, players, Config{Human: human, ThinkDelay: time.Millisecond, Observers: []Observer{observer}})
	pauses := 0
	m.sleep = func(time.Duration) { pauses++ }
	if _, err := m.Run(); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if pauses != computerDecisions {
		t.Fatalf("paused %d times for %d computer decisions", pauses, computerDecisions)
	}
	if human.calls == 0 {
		t.Fatalf("human decider was never asked")
	}
}
