package main

import (
	"fmt"

	"github.com/lox/basicstrategy/internal/deck"
	"github.com/lox/basicstrategy/internal/randutil"
	"github.com/lox/basicstrategy/internal/strategy"
)

type DealCmd struct {
	Mode   string `short:"m" help:"Training mode (basic, soft, hard, split); defaults to the config file"`
	Seed   *int64 `help:"Random seed for reproducible deals"`
	Count  int    `short:"n" default:"1" help:"Number of rounds to deal"`
	Answer bool   `help:"Show the basic strategy answer for each round"`
}

func (c *DealCmd) Run(g *Globals) error {
	cfg, err := g.loadConfig()
	if err != nil {
		return err
	}
	m, err := resolveMode(c.Mode, cfg)
	if err != nil {
		return err
	}
	if c.Count < 1 {
		return fmt.Errorf("count must be positive, got %d", c.Count)
	}

	seed := randutil.Seed(c.Seed)
	g.logger().Debug("dealing", "mode", m, "seed", seed, "count", c.Count)
	rng := randutil.New(seed)

	out := g.stdout()
	for i := 1; i <= c.Count; i++ {
		d := deck.DealSolo(rng, m)
		player, dealer := d.PlayerHand(), d.DealerHand()

		fmt.Fprintf(out, "#%d player %s (%d) %s  dealer %s %s\n",
			i, player, player.Value(), player.Glyphs(), d.Upcard().Pretty(), dealer.Glyphs())
		fmt.Fprintf(out, "   codes %s/%s face up %s/%s\n",
			player.CardString(), dealer.CardString(), player.FaceUpString(), dealer.FaceUpString())
		if c.Answer {
			fmt.Fprintf(out, "   answer %s\n", strategy.Evaluate(player, d.Upcard(), m).Describe())
		}
	}
	return nil
}
