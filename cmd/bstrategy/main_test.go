package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/alecthomas/kong"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/basicstrategy/internal/mode"
	"github.com/lox/basicstrategy/internal/statistics"
	"github.com/lox/basicstrategy/internal/strategy"
)

func testGlobals(t *testing.T) (*Globals, *bytes.Buffer) {
	t.Helper()
	var buf bytes.Buffer
	return &Globals{Config: filepath.Join(t.TempDir(), "missing.hcl"), Out: &buf}, &buf
}

func TestEvalCmd(t *testing.T) {
	tests := []struct {
		name   string
		hand   string
		upcard string
		mode   string
		action strategy.Action
		move   strategy.Move
	}{
		{"hard 16 surrenders", "Td6s", "Ah", "", strategy.Surrender, strategy.MoveSurrender},
		{"soft 18 doubles", "As7h", "6c", "", strategy.DoubleOrStand, strategy.MoveDouble},
		{"eights split", "8s 8d", "6c", "", strategy.Split, strategy.MoveSplit},
		{"eights surrender to a ten", "8s8d", "Tc", "", strategy.Surrender, strategy.MoveSurrender},
		{"eights in hard mode", "8s8d", "5c", "hard", strategy.Stand, strategy.MoveStand},
		{"eleven doubles", "5d6c", "Ah", "basic", strategy.Double, strategy.MoveDouble},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, buf := testGlobals(t)
			cmd := &EvalCmd{Hand: tt.hand, Upcard: tt.upcard, Mode: tt.mode}
			require.NoError(t, cmd.Run(g))

			out := buf.String()
			assert.Contains(t, out, "action: "+tt.action.Describe())
			assert.Contains(t, out, "move:   "+tt.move.String())
		})
	}
}

func TestEvalCmdErrors(t *testing.T) {
	tests := []struct {
		name string
		cmd  EvalCmd
	}{
		{"bad hand", EvalCmd{Hand: "AsX", Upcard: "6c"}},
		{"single card", EvalCmd{Hand: "As", Upcard: "6c"}},
		{"bad upcard", EvalCmd{Hand: "AsKd", Upcard: "1c"}},
		{"bad mode", EvalCmd{Hand: "AsKd", Upcard: "6c", Mode: "poker"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, _ := testGlobals(t)
			assert.Error(t, tt.cmd.Run(g))
		})
	}
}

func TestEvalUsesConfigFile(t *testing.T) {
	g, buf := testGlobals(t)
	g.Config = filepath.Join(t.TempDir(), "bstrategy.hcl")
	src := "trainer {\n  mode = \"hard\"\n}\nrules {\n  surrender = false\n}\n"
	require.NoError(t, os.WriteFile(g.Config, []byte(src), 0o600))

	require.NoError(t, (&EvalCmd{Hand: "Td6s", Upcard: "Ah"}).Run(g))
	out := buf.String()
	assert.Contains(t, out, "mode:   hard")
	assert.Contains(t, out, "action: "+strategy.Surrender.Describe())
	assert.Contains(t, out, "move:   "+strategy.MoveHit.String())
}

func TestDealCmd(t *testing.T) {
	g, buf := testGlobals(t)
	seed := int64(99)
	require.NoError(t, (&DealCmd{Mode: "split", Seed: &seed, Count: 3, Answer: true}).Run(g))

	out := buf.String()
	for _, prefix := range []string{"#1 ", "#2 ", "#3 "} {
		assert.Contains(t, out, prefix)
	}
	assert.Equal(t, 3, strings.Count(out, "face up 11/10"))
	assert.Equal(t, 3, strings.Count(out, "answer "))

	again, buf2 := testGlobals(t)
	require.NoError(t, (&DealCmd{Mode: "split", Seed: &seed, Count: 3, Answer: true}).Run(again))
	assert.Equal(t, out, buf2.String())
}

func TestDealCmdRejectsZeroCount(t *testing.T) {
	g, _ := testGlobals(t)
	assert.Error(t, (&DealCmd{Count: 0}).Run(g))
}

func TestChartCmd(t *testing.T) {
	g, buf := testGlobals(t)
	require.NoError(t, (&ChartCmd{NoColor: true}).Run(g))
	out := buf.String()
	assert.Contains(t, out, "Hard totals")
	assert.Contains(t, out, "Pairs")
	assert.Contains(t, out, strategy.SplitIfDAS.Describe())
}

func TestSimulateCmd(t *testing.T) {
	g, buf := testGlobals(t)
	seed := int64(5)
	require.NoError(t, (&SimulateCmd{Rounds: 2000, Workers: 2, Seed: &seed, Mode: "basic"}).Run(g))

	out := buf.String()
	assert.Contains(t, out, "2000 rounds, mode basic, 2 workers, seed 5")
	assert.Contains(t, out, "resolved moves")
}

func TestPrintTally(t *testing.T) {
	var buf bytes.Buffer
	printTally(&buf, statistics.NewTally())
	assert.Contains(t, buf.String(), "No rounds graded")

	tally := statistics.NewTally()
	tally.Add(statistics.Result{Mode: mode.Soft, Correct: strategy.Double, Guess: strategy.Double})
	tally.Add(statistics.Result{Mode: mode.Soft, Correct: strategy.Stand, Guess: strategy.Hit})

	buf.Reset()
	printTally(&buf, tally)
	out := buf.String()
	assert.Contains(t, out, "soft")
	assert.Contains(t, out, "50.0%")
	assert.Contains(t, out, "Weakest action: "+strategy.Stand.Describe())
}

func TestCLIParses(t *testing.T) {
	var cli CLI
	parser, err := kong.New(&cli, kong.Vars{"version": version})
	require.NoError(t, err)

	ctx, err := parser.Parse([]string{"--debug", "eval", "AsKd", "6c", "--mode", "soft"})
	require.NoError(t, err)
	assert.Equal(t, "eval <hand> <upcard>", ctx.Command())
	assert.True(t, cli.Debug)
	assert.Equal(t, "soft", cli.Eval.Mode)

	_, err = parser.Parse([]string{"simulate", "-n", "10", "-w", "2", "--seed", "3"})
	require.NoError(t, err)
	assert.Equal(t, 10, cli.Simulate.Rounds)
	require.NotNil(t, cli.Simulate.Seed)
	assert.Equal(t, int64(3), *cli.Simulate.Seed)
}

func TestDrillLogFileHelp(t *testing.T) {
	var cli CLI
	parser, err := kong.New(&cli, kong.Vars{"version": version})
	require.NoError(t, err)

	var help string
	for _, node := range parser.Model.Children {
		if node.Name != "drill" {
			continue
		}
		for _, flag := range node.Flags {
			if flag.Name == "log-file" {
				help = flag.Help
			}
		}
	}
	assert.Equal(t, "Write logs and graded outcomes to this file", help)
}
