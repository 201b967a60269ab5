package main

import (
	"fmt"

	"github.com/lox/basicstrategy/internal/card"
	"github.com/lox/basicstrategy/internal/hand"
	"github.com/lox/basicstrategy/internal/strategy"
)

type EvalCmd struct {
	Hand   string `arg:"" help:"Player cards as codes, e.g. 'As7h' or 'As 7h'"`
	Upcard string `arg:"" help:"Dealer upcard, e.g. '6c'"`
	Mode   string `short:"m" help:"Training mode (basic, soft, hard, split); defaults to the config file"`
}

func (c *EvalCmd) Run(g *Globals) error {
	cfg, err := g.loadConfig()
	if err != nil {
		return err
	}
	m, err := resolveMode(c.Mode, cfg)
	if err != nil {
		return err
	}

	h, err := hand.Parse(c.Hand, "")
	if err != nil {
		return fmt.Errorf("hand %q: %w", c.Hand, err)
	}
	if h.Len() < 2 {
		return fmt.Errorf("hand %q: need at least 2 cards, got %d", c.Hand, h.Len())
	}
	up, err := card.Parse(c.Upcard)
	if err != nil {
		return fmt.Errorf("upcard %q: %w", c.Upcard, err)
	}

	action := strategy.Evaluate(h, up, m)
	move := strategy.Resolve(h, up, m, cfg.TableRules())
	g.logger().Debug("evaluated", "hand", h.CardString(), "upcard", up, "mode", m, "action", action, "move", move)

	out := g.stdout()
	fmt.Fprintf(out, "hand:   %s (%s)\n", h, describeTotal(h))
	fmt.Fprintf(out, "upcard: %s\n", up.Pretty())
	fmt.Fprintf(out, "mode:   %s\n", m)
	fmt.Fprintf(out, "action: %s\n", action.Describe())
	fmt.Fprintf(out, "move:   %s\n", move)
	return nil
}

func describeTotal(h *hand.Hand) string {
	switch {
	case h.IsPair():
		return fmt.Sprintf("pair, %d", h.Value())
	case h.IsSoft():
		return fmt.Sprintf("soft %d", h.Value())
	default:
		return fmt.Sprintf("hard %d", h.Value())
	}
}
