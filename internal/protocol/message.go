package protocol

import (
	"encoding/json"

	"wizard-game/internal/shared"
)

// Message represents the JSON envelope sent to spectators.
type Message struct {
	Type    string          `json:"type"`              // Type of the message (e.g., "trick_end", "ping")
	Payload json.RawMessage `json:"payload,omitempty"` // Raw JSON payload, allows flexible structures
}

// Event types reported by a match, in the order they usually occur.
const (
	MatchStart  = "match_start"
	RoundStart  = "round_start"
	DealHand    = "deal_hand"
	TrumpReveal = "trump"
	BetPlaced   = "bet"
	CardPlayed  = "card_played"
	InvalidMove = "invalid_move"
	TrickEnd    = "trick_end"
	RoundEnd    = "round_end"
	GameOver    = "game_over"
)

// Event is a single step of a match as seen by observers. Payload holds one of
// the payload structs below.
type Event struct {
	MatchID string
	Type    string
	Payload interface{}
}

// --- Match -> Observer Payload Structs ---

type PlayerInfo struct {
	ID       string          `json:"id"`
	Name     string          `json:"name"`
	Position int             `json:"position"` // Canonical seat (original position)
	Operator shared.Operator `json:"operator"`
}

type MatchStartPayload struct {
	MatchID string       `json:"match_id"`
	Players []PlayerInfo `json:"players"`
	Rounds  int          `json:"rounds"`
}

type RoundStartPayload struct {
	Round  int        `json:"round"`
	Dealer PlayerInfo `json:"dealer"`
	Leader PlayerInfo `json:"leader"`
	Order  []string   `json:"order"` // Player IDs in seat order for this round
}

type DealHandPayload struct {
	Player PlayerInfo    `json:"player"`
	Hand   []shared.Card `json:"hand"`
}

type TrumpPayload struct {
	Round    int          `json:"round"`
	Card     *shared.Card `json:"card,omitempty"` // nil when the deck ran out
	Suit     *shared.Suit `json:"suit,omitempty"` // nil when there is no trump this round
	ChosenBy *PlayerInfo  `json:"chosen_by,omitempty"`
}

type BetPayload struct {
	Player PlayerInfo `json:"player"`
	Bet    int        `json:"bet"`
	MaxBet int        `json:"max_bet"`
}

type CardPlayedPayload struct {
	Player   PlayerInfo   `json:"player"`
	Card     shared.Card  `json:"card"`
	Trick    int          `json:"trick"`
	LeadSuit *shared.Suit `json:"lead_suit,omitempty"`
}

type InvalidMovePayload struct {
	Player  PlayerInfo `json:"player"`
	Message string     `json:"message"`
}

type TrickEndPayload struct {
	Trick    int                 `json:"trick"`
	Winner   shared.PlayedCard   `json:"winner"`
	WinnerID string              `json:"winner_id"`
	Name     string              `json:"name"`
	Cards    []shared.PlayedCard `json:"cards"`
}

type Standing struct {
	Player PlayerInfo `json:"player"`
	Bet    int        `json:"bet"`
	Tricks int        `json:"tricks"`
	Delta  int        `json:"delta"`
	Score  int        `json:"score"`
}

type RoundEndPayload struct {
	Round     int        `json:"round"`
	Rounds    int        `json:"rounds"`
	Standings []Standing `json:"standings"`
}

type GameOverPayload struct {
	Winner    PlayerInfo `json:"winner"`
	Score     int        `json:"score"`
	Standings []Standing `json:"standings"`
}

type ErrorPayload struct {
	Message string `json:"message"`
}

// Helper function to create a JSON message
func NewMessage(msgType string, payload interface{}) ([]byte, error) {
	if payload == nil {
		msg := Message{
			Type:    msgType,
			Payload: nil,
		}
		return json.Marshal(msg)
	}

	payloadBytes, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	msg := Message{
		Type:    msgType,
		Payload: payloadBytes,
	}
	return json.Marshal(msg)
}

// Encode turns an event into its wire message.
func Encode(ev Event) ([]byte, error) {
	return NewMessage(ev.Type, ev.Payload)
}
