package game

import "errors"

var (
	ErrPlayerCount   = errors.New("wizard is played by 3 to 6 players")
	ErrDuplicateName = errors.New("player names must be unique")
	ErrNoDecider     = errors.New("no decider for human players")
)

// InvalidDecisionError is returned when a decider keeps answering outside the
// allowed choices.
type InvalidDecisionError string

func (e InvalidDecisionError) Error() string { return "invalid decision: " + string(e) }
