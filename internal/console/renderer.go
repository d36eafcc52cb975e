package console

import (
	"fmt"
	"io"
	"strings"

	"wizard-game/internal/protocol"
	"wizard-game/internal/shared"
)

// Renderer prints a match to the terminal as it is played. Only human hands
// are shown.
type Renderer struct {
	out   io.Writer
	pal   palette
	trick int
}

func NewRenderer(out io.Writer) *Renderer {
	return &Renderer{out: out, pal: newPalette(out)}
}

// Observe renders one match event. It has the signature of game.Observer.
func (r *Renderer) Observe(ev protocol.Event) {
	switch p := ev.Payload.(type) {
	case protocol.MatchStartPayload:
		names := make([]string, len(p.Players))
		for i, pl := range p.Players {
			names[i] = pl.Name
		}
		fmt.Fprintf(r.out, "%s\n", r.pal.title("Wizard"))
		fmt.Fprintf(r.out, "Seating: %s\n", strings.Join(names, ", "))
		fmt.Fprintf(r.out, "%d rounds to play.\n", p.Rounds)

	case protocol.RoundStartPayload:
		r.trick = 0
		fmt.Fprintf(r.out, "\n%s\n", r.pal.title(fmt.Sprintf("####### Round %d #######", p.Round)))
		fmt.Fprintf(r.out, " Dealer: %s\n", p.Dealer.Name)

	case protocol.DealHandPayload:
		if p.Player.Operator != shared.Human {
			return
		}
		cards := make([]string, len(p.Hand))
		for i, c := range p.Hand {
			cards[i] = r.pal.card(c)
		}
		fmt.Fprintf(r.out, " Your hand: %s\n", strings.Join(cards, " "))

	case protocol.TrumpPayload:
		switch {
		case p.Card == nil:
			fmt.Fprintln(r.out, " Trump: none, the deck is empty")
		case p.ChosenBy != nil:
			fmt.Fprintf(r.out, " Trump: %s\n\nTrump is a Wizard!\n %s selected %s\n", r.pal.card(shared.WizardCard), p.ChosenBy.Name, r.pal.suit(*p.Suit))
		case p.Suit == nil:
			fmt.Fprintf(r.out, " Trump: %s (no trump this round)\n", r.pal.card(*p.Card))
		default:
			fmt.Fprintf(r.out, " Trump: %s\n", r.pal.card(*p.Card))
		}

	case protocol.BetPayload:
		fmt.Fprintf(r.out, "%8s bet %d\n", p.Player.Name, p.Bet)

	case protocol.CardPlayedPayload:
		if p.Trick != r.trick {
			r.trick = p.Trick
			fmt.Fprintf(r.out, "======= Trick #%d =======\n", p.Trick)
		}
		fmt.Fprintf(r.out, "%8s: %s\n", p.Player.Name, r.pal.card(p.Card))

	case protocol.InvalidMovePayload:
		if p.Player.Operator == shared.Human {
			fmt.Fprintf(r.out, "Hey! %s\n", p.Message)
		}

	case protocol.TrickEndPayload:
		fmt.Fprintf(r.out, "\n  Winner: %s - %s\n========================\n", r.pal.card(p.Winner.Card), p.Name)

	case protocol.RoundEndPayload:
		fmt.Fprintf(r.out, "\n%s\n", r.pal.subtle(fmt.Sprintf("Standings after round %d of %d", p.Round, p.Rounds)))
		r.standings(p.Standings, true)

	case protocol.GameOverPayload:
		fmt.Fprintf(r.out, "\n%s\n", r.pal.title("Final scores"))
		r.standings(p.Standings, false)
		fmt.Fprintf(r.out, "\n%s\n", r.pal.gold(fmt.Sprintf("%s wins with %d points!", p.Winner.Name, p.Score)))
	}
}

func (r *Renderer) standings(rows []protocol.Standing, round bool) {
	for _, s := range rows {
		if round {
			fmt.Fprintf(r.out, "%8s  bet %d  took %d  %+d  => %d\n", s.Player.Name, s.Bet, s.Tricks, s.Delta, s.Score)
			continue
		}
		fmt.Fprintf(r.out, "%8s  %d\n", s.Player.Name, s.Score)
	}
}
