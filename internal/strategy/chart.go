package strategy

import (
	"fmt"

	"github.com/lox/basicstrategy/internal/card"
	"github.com/lox/basicstrategy/internal/hand"
	"github.com/lox/basicstrategy/internal/mode"
)

// ChartRow is one player hand evaluated against every dealer upcard
type ChartRow struct {
	Label   string
	Hand    *hand.Hand
	Actions []Action
}

// Chart is the full strategy table: hard totals, soft totals and pairs
type Chart struct {
	Dealer []card.Card
	Hard   []ChartRow
	Soft   []ChartRow
	Pairs  []ChartRow
}

// chartDealer holds one upcard per dealer value, 2 through 9, ten and ace
var chartDealer = []card.Card{
	card.MustNew(card.Clubs, card.Two),
	card.MustNew(card.Clubs, card.Three),
	card.MustNew(card.Clubs, card.Four),
	card.MustNew(card.Clubs, card.Five),
	card.MustNew(card.Clubs, card.Six),
	card.MustNew(card.Clubs, card.Seven),
	card.MustNew(card.Clubs, card.Eight),
	card.MustNew(card.Clubs, card.Nine),
	card.MustNew(card.Clubs, card.Ten),
	card.MustNew(card.Clubs, card.Ace),
}

// BuildChart evaluates representative two card hands for every row
func BuildChart() Chart {
	c := Chart{Dealer: chartDealer}

	for total := 5; total <= 17; total++ {
		label := fmt.Sprintf("%d", total)
		if total == 17 {
			label = "17+"
		}
		c.Hard = append(c.Hard, buildRow(label, hardTotal(total), mode.Basic))
	}

	for r := card.Two; r <= card.Nine; r++ {
		h := hand.New(card.MustNew(card.Spades, card.Ace), card.MustNew(card.Hearts, r))
		c.Soft = append(c.Soft, buildRow("A"+r.String(), h, mode.Basic))
	}

	for r := card.Two; r <= card.Ten; r++ {
		h := hand.New(card.MustNew(card.Spades, r), card.MustNew(card.Hearts, r))
		c.Pairs = append(c.Pairs, buildRow(r.String()+r.String(), h, mode.Split))
	}
	aces := hand.New(card.MustNew(card.Spades, card.Ace), card.MustNew(card.Hearts, card.Ace))
	c.Pairs = append(c.Pairs, buildRow("AA", aces, mode.Split))

	return c
}

func buildRow(label string, h *hand.Hand, m mode.Mode) ChartRow {
	row := ChartRow{Label: label, Hand: h, Actions: make([]Action, len(chartDealer))}
	for i, d := range chartDealer {
		row.Actions[i] = Evaluate(h, d, m)
	}
	return row
}

// hardTotal builds a two card hand without aces or pairs for totals 5 to 19
func hardTotal(total int) *hand.Hand {
	lo, hi := card.Two, card.Rank(total-2)
	if total > 11 {
		lo, hi = card.Rank(total-10), card.Ten
	}
	return hand.New(card.MustNew(card.Spades, lo), card.MustNew(card.Diamonds, hi))
}
