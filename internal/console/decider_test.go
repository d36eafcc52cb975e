package console

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"

	"wizard-game/internal/shared"
)

func TestDeciderBet(t *testing.T) {
	var out bytes.Buffer
	d := NewDecider(strings.NewReader("lots\n9\n-1\n 2 \n"), &out)

	bet, err := d.Bet(shared.NewPlayer("Me", shared.Human), 3)
	if err != nil {
		t.Fatalf("Bet: %v", err)
	}
	if bet != 2 {
		t.Fatalf("bet = %d, want 2", bet)
	}
	got := out.String()
	if !strings.Contains(got, `"lots" is not a number`) {
		t.Fatalf("missing non-numeric message in %q", got)
	}
	if strings.Count(got, "Bet must be in the range of 0 to 3.") != 2 {
		t.Fatalf("expected two range messages in %q", got)
	}
}

func TestDeciderTrumpSuit(t *testing.T) {
	var out bytes.Buffer
	d := NewDecider(strings.NewReader("0\n5\n4\n"), &out)

	s, err := d.TrumpSuit(shared.NewPlayer("Me", shared.Human), shared.Suits)
	if err != nil {
		t.Fatalf("TrumpSuit: %v", err)
	}
	if s != shared.Spades {
		t.Fatalf("suit = %v, want spades", s)
	}
	if strings.Count(out.String(), "Gotta pick what's offered here!") != 2 {
		t.Fatalf("expected two off-menu messages in %q", out.String())
	}
}

func TestDeciderPlayCard(t *testing.T) {
	var out bytes.Buffer
	d := NewDecider(strings.NewReader("3\n2\n1\n"), &out)

	p := shared.NewPlayer("Me", shared.Human)
	p.Hand = []shared.Card{{Rank: shared.Two, Suit: shared.Hearts}, {Rank: shared.Ace, Suit: shared.Clubs}}
	hearts := shared.Hearts
	legal := func(i int) bool { return p.CanPlay(i, &hearts) }

	idx, err := d.PlayCard(p, shared.NewTrick(), legal)
	if err != nil {
		t.Fatalf("PlayCard: %v", err)
	}
	if idx != 0 {
		t.Fatalf("index = %d, want 0", idx)
	}
	got := out.String()
	if !strings.Contains(got, "1.  2♥") || !strings.Contains(got, "2.  A♣") {
		t.Fatalf("hand not listed in %q", got)
	}
	if !strings.Contains(got, "Gotta pick what's offered!") || !strings.Contains(got, "Gotta follow suit!") {
		t.Fatalf("missing rejection messages in %q", got)
	}
}

func TestDeciderAskName(t *testing.T) {
	d := NewDecider(strings.NewReader("\n  Ged  \n"), io.Discard)
	name, err := d.AskName()
	if err != nil || name != "Ged" {
		t.Fatalf("AskName = %q, %v", name, err)
	}
}

func TestDeciderEOF(t *testing.T) {
	d := NewDecider(strings.NewReader("x\n"), io.Discard)
	if _, err := d.Bet(shared.NewPlayer("Me", shared.Human), 1); !errors.Is(err, io.EOF) {
		t.Fatalf("err = %v, want EOF", err)
	}
}
