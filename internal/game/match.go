package game

import (
	"fmt"
	"log"
	"math/rand/v2"
	"time"

	"wizard-game/internal/protocol"
	"wizard-game/internal/shared"

	"github.com/google/uuid"
)

// Phase represents where the match currently is.
type Phase string

const (
	Waiting   Phase = "Waiting"   // Created, not yet started
	Dealing   Phase = "Dealing"   // Cards and trump are being dealt
	Bidding   Phase = "Bidding"   // Players are placing bets
	Playing   Phase = "Playing"   // Players are playing tricks
	RoundOver Phase = "RoundOver" // A round is scored
	GameOver  Phase = "GameOver"  // All rounds are played
)

const (
	MinPlayers = 3
	MaxPlayers = 6
)

// maxDecisionAttempts bounds how often a decider is asked again after an
// invalid answer before the match gives up.
const maxDecisionAttempts = 100

// Observer receives every event of a match as it happens.
type Observer func(protocol.Event)

// Config wires a match to its collaborators.
type Config struct {
	Human      Decider       // Decides for Human players
	Computer   Decider       // Decides for Computer players; defaults to a RandomDecider
	Rand       *rand.Rand    // Shuffles seats and cards; defaults to a clock-seeded generator
	ThinkDelay time.Duration // Pause before each computer decision
	Observers  []Observer
}

// Match runs a full game of Wizard.
type Match struct {
	ID      string
	Players []*shared.Player // Indexed by OriginalPosition
	Seating *shared.Seating
	Deck    *shared.Deck // Fresh deck, cloned every round
	Rounds  int
	Round   int
	Phase   Phase
	Trump   Trump

	human      Decider
	computer   Decider
	rng        *rand.Rand
	thinkDelay time.Duration
	observers  []Observer
	sleep      func(time.Duration)
	stock      *shared.Deck // Deck being dealt from in the current round
}

// NewMatch seats the players in a random order and prepares the deck. The
// order after shuffling becomes each player's OriginalPosition.
func NewMatch(players []*shared.Player, cfg Config) (*Match, error) {
	if len(players) < MinPlayers || len(players) > MaxPlayers {
		return nil, fmt.Errorf("%w: got %d", ErrPlayerCount, len(players))
	}
	names := make(map[string]bool, len(players))
	needHuman := false
	for _, p := range players {
		if names[p.Name] {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateName, p.Name)
		}
		names[p.Name] = true
		if p.Operator == shared.Human {
			needHuman = true
		}
	}
	if needHuman && cfg.Human == nil {
		return nil, ErrNoDecider
	}

	rng := cfg.Rand
	if rng == nil {
		rng = NewRand(0)
	}
	computer := cfg.Computer
	if computer == nil {
		computer = NewRandomDecider(rng)
	}

	seated := make([]*shared.Player, len(players))
	copy(seated, players)
	rng.Shuffle(len(seated), func(i, j int) {
		seated[i], seated[j] = seated[j], seated[i]
	})
	for i, p := range seated {
		p.OriginalPosition = i
		p.Score = 0
		p.ResetForRound()
	}

	deck := shared.NewDeck()
	return &Match{
		ID:         uuid.New().String(),
		Players:    seated,
		Seating:    shared.NewSeating(len(seated)),
		Deck:       deck,
		Rounds:     deck.Len() / len(seated),
		Phase:      Waiting,
		human:      cfg.Human,
		computer:   computer,
		rng:        rng,
		thinkDelay: cfg.ThinkDelay,
		observers:  cfg.Observers,
		sleep:      time.Sleep,
	}, nil
}

// Run plays every round and returns the winner.
func (m *Match) Run() (*shared.Player, error) {
	log.Printf("Match %s: Starting with %d players over %d rounds.", m.ID, len(m.Players), m.Rounds)

	infos := make([]protocol.PlayerInfo, len(m.Players))
	for i, p := range m.Players {
		infos[i] = playerInfo(p)
	}
	m.notify(protocol.MatchStart, protocol.MatchStartPayload{
		MatchID: m.ID,
		Players: infos,
		Rounds:  m.Rounds,
	})

	for r := 1; r <= m.Rounds; r++ {
		if err := m.playRound(r); err != nil {
			return nil, fmt.Errorf("round %d: %w", r, err)
		}
	}

	m.Phase = GameOver
	winner := FinalWinner(m.Players)
	log.Printf("Match %s: Game over. %s wins with %d points.", m.ID, winner.Name, winner.Score)
	m.notify(protocol.GameOver, protocol.GameOverPayload{
		Winner:    playerInfo(winner),
		Score:     winner.Score,
		Standings: m.standings(nil),
	})
	return winner, nil
}

// playerAt returns the player sitting at seat i of the current seating.
func (m *Match) playerAt(i int) *shared.Player {
	return m.Players[m.Seating.At(i)]
}

// seatOrder returns the players in current seat order.
func (m *Match) seatOrder() []*shared.Player {
	out := make([]*shared.Player, m.Seating.Len())
	for i := range out {
		out[i] = m.playerAt(i)
	}
	return out
}

func (m *Match) deciderFor(p *shared.Player) Decider {
	if p.Operator == shared.Human {
		return m.human
	}
	return m.computer
}

// think pauses before a computer decision so the table can follow along.
func (m *Match) think(p *shared.Player) {
	if p.Operator == shared.Computer && m.thinkDelay > 0 {
		m.sleep(m.thinkDelay)
	}
}

func (m *Match) standings(deltas []int) []protocol.Standing {
	out := make([]protocol.Standing, len(m.Players))
	for i, p := range m.Players {
		out[i] = protocol.Standing{
			Player: playerInfo(p),
			Bet:    p.Bet,
			Tricks: p.Tricks,
			Score:  p.Score,
		}
		if deltas != nil {
			out[i].Delta = deltas[i]
		}
	}
	return out
}

func (m *Match) notify(eventType string, payload interface{}) {
	ev := protocol.Event{MatchID: m.ID, Type: eventType, Payload: payload}
	for _, o := range m.observers {
		o(ev)
	}
}

func (m *Match) invalid(p *shared.Player, msg string) {
	log.Printf("Match %s: Invalid decision from %s: %s", m.ID, p.Name, msg)
	m.notify(protocol.InvalidMove, protocol.InvalidMovePayload{Player: playerInfo(p), Message: msg})
}

func playerInfo(p *shared.Player) protocol.PlayerInfo {
	return protocol.PlayerInfo{
		ID:       p.ID,
		Name:     p.Name,
		Position: p.OriginalPosition,
		Operator: p.Operator,
	}
}
