package console

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"wizard-game/internal/shared"
)

// Decider asks the person at the terminal for every decision, re-prompting
// until the answer is acceptable.
type Decider struct {
	in  *bufio.Scanner
	out io.Writer
	pal palette
}

func NewDecider(in io.Reader, out io.Writer) *Decider {
	return &Decider{
		in:  bufio.NewScanner(in),
		out: out,
		pal: newPalette(out),
	}
}

func (d *Decider) readLine() (string, error) {
	if !d.in.Scan() {
		if err := d.in.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return strings.TrimSpace(d.in.Text()), nil
}

// readNumber reads lines until one parses as an integer.
func (d *Decider) readNumber() (int, error) {
	for {
		line, err := d.readLine()
		if err != nil {
			return 0, err
		}
		n, err := strconv.Atoi(line)
		if err != nil {
			fmt.Fprintf(d.out, "%q is not a number, try again.\n", line)
			continue
		}
		return n, nil
	}
}

// AskName asks for the human player's name.
func (d *Decider) AskName() (string, error) {
	for {
		fmt.Fprintln(d.out, "Enter your name:")
		name, err := d.readLine()
		if err != nil {
			return "", err
		}
		if name != "" {
			return name, nil
		}
	}
}

func (d *Decider) Bet(p *shared.Player, maxBet int) (int, error) {
	fmt.Fprintln(d.out, "What is your bet?")
	for {
		bet, err := d.readNumber()
		if err != nil {
			return 0, err
		}
		if bet < 0 || bet > maxBet {
			fmt.Fprintf(d.out, "Yer a cocky one eh?\nBet must be in the range of 0 to %d.\n", maxBet)
			continue
		}
		return bet, nil
	}
}

func (d *Decider) TrumpSuit(p *shared.Player, suits []shared.Suit) (shared.Suit, error) {
	fmt.Fprintln(d.out, "Which suit do you select as trump?")
	for i, s := range suits {
		fmt.Fprintf(d.out, "  %d. %s\n", i+1, d.pal.suit(s))
	}
	for {
		selection, err := d.readNumber()
		if err != nil {
			return shared.NoSuit, err
		}
		if selection < 1 || selection > len(suits) {
			fmt.Fprintln(d.out, "Hey! Gotta pick what's offered here!")
			continue
		}
		return suits[selection-1], nil
	}
}

func (d *Decider) PlayCard(p *shared.Player, trick *shared.Trick, legal func(int) bool) (int, error) {
	fmt.Fprintln(d.out, "\nYour hand:")
	for i, c := range p.Hand {
		fmt.Fprintf(d.out, "  %d. %s\n", i+1, d.pal.card(c))
	}
	fmt.Fprintln(d.out, "Which card will you play?")
	for {
		selection, err := d.readNumber()
		if err != nil {
			return 0, err
		}
		idx := selection - 1
		if idx < 0 || idx >= len(p.Hand) {
			fmt.Fprintln(d.out, "Hey! Gotta pick what's offered!")
			continue
		}
		if !legal(idx) {
			fmt.Fprintln(d.out, "Hey! Gotta follow suit!")
			continue
		}
		return idx, nil
	}
}
