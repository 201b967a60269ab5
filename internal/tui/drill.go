// Package tui renders the strategy chart and runs the interactive drill.
package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/lox/basicstrategy/internal/card"
	"github.com/lox/basicstrategy/internal/mode"
	"github.com/lox/basicstrategy/internal/strategy"
	"github.com/lox/basicstrategy/internal/trainer"
)

type phase int

const (
	answering phase = iota
	reviewing
)

// DrillModel is the Bubble Tea model for a training session
type DrillModel struct {
	ctx     context.Context
	session *trainer.Session
	logger  *log.Logger

	input textinput.Model

	phase    phase
	round    *trainer.Round
	outcome  *trainer.Outcome
	err      error
	rounds   int // stop after this many graded rounds, 0 for no limit
	played   int
	quitting bool
}

// NewDrillModel creates a drill over session. Outcomes are recorded with ctx.
func NewDrillModel(ctx context.Context, session *trainer.Session, rounds int, logger *log.Logger) *DrillModel {
	ti := textinput.New()
	ti.Placeholder = "h, s, d, ds, spl, das or sur"
	ti.Focus()
	ti.CharLimit = 8
	ti.Width = 40
	ti.PromptStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#04B575")).Bold(true)
	ti.TextStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#FAFAFA"))
	ti.Prompt = "> "

	m := &DrillModel{
		ctx:     ctx,
		session: session,
		logger:  logger.WithPrefix("tui"),
		input:   ti,
		rounds:  rounds,
	}
	m.deal()
	return m
}

// Init initializes the model
func (m *DrillModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *DrillModel) deal() {
	m.show(m.session.Deal())
}

func (m *DrillModel) show(r *trainer.Round) {
	m.round = r
	m.outcome = nil
	m.err = nil
	m.phase = answering
	m.input.SetValue("")
	m.input.Focus()
}

// Resume replaces the round on screen with a saved one
func (m *DrillModel) Resume(st trainer.State) error {
	r, err := m.session.Restore(st)
	if err != nil {
		return err
	}
	m.show(r)
	return nil
}

// Update handles messages
func (m *DrillModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "ctrl+c", "esc":
			m.quitting = true
			return m, tea.Quit
		case "tab":
			m.cycleMode()
			return m, nil
		}

		switch m.phase {
		case answering:
			if msg.Type == tea.KeyEnter {
				m.submit(m.input.Value())
				return m, nil
			}
		case reviewing:
			switch msg.String() {
			case "enter", "n", " ":
				if m.Finished() {
					m.quitting = true
					return m, tea.Quit
				}
				m.deal()
			case "q":
				m.quitting = true
				return m, tea.Quit
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *DrillModel) submit(text string) {
	guess, err := strategy.ParseAction(text)
	if err != nil {
		m.err = err
		m.input.SetValue("")
		return
	}

	o, err := m.session.Guess(m.ctx, guess)
	if err != nil {
		m.logger.Error("failed to record outcome", "error", err)
		m.err = err
		return
	}

	m.outcome = &o
	m.err = nil
	m.played++
	m.phase = reviewing
	m.input.Blur()
}

func (m *DrillModel) cycleMode() {
	modes := mode.All()
	next := modes[0]
	for i, md := range modes {
		if md == m.session.Mode() {
			next = modes[(i+1)%len(modes)]
			break
		}
	}
	m.session.SetMode(next)
	m.deal()
}

// Finished reports whether the round limit has been reached
func (m *DrillModel) Finished() bool {
	return m.rounds > 0 && m.played >= m.rounds
}

// Round returns the round on screen
func (m *DrillModel) Round() *trainer.Round {
	return m.round
}

// Outcome returns the last graded outcome while it is being reviewed
func (m *DrillModel) Outcome() *trainer.Outcome {
	return m.outcome
}

// Err returns the last input or recording error
func (m *DrillModel) Err() error {
	return m.err
}

// View renders the drill
func (m *DrillModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(HeaderStyle.Render(fmt.Sprintf(" Basic strategy drill: %s ", m.session.Mode())))
	b.WriteString("\n\n")

	b.WriteString(LabelStyle.Render("Dealer: "))
	b.WriteString(formatCards(m.round.Dealer.Cards()))
	b.WriteString("\n")
	b.WriteString(LabelStyle.Render("You:    "))
	b.WriteString(formatCards(m.round.Player.Cards()))
	b.WriteString(InfoStyle.Render(fmt.Sprintf("  (%d)", m.round.Player.Value())))
	b.WriteString("\n\n")

	switch m.phase {
	case answering:
		b.WriteString(m.input.View())
		b.WriteString("\n")
	case reviewing:
		b.WriteString(m.renderOutcome())
		b.WriteString("\n")
	}

	if m.err != nil {
		b.WriteString(ErrorStyle.Render(m.err.Error()))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.renderTally())
	b.WriteString("\n")
	b.WriteString(InfoStyle.Render(m.help()))
	return b.String()
}

func (m *DrillModel) renderOutcome() string {
	o := m.outcome
	if o.WasCorrect {
		return SuccessStyle.Render("Correct: ") + o.CorrectMove.Describe()
	}
	return ErrorStyle.Render("Wrong: ") + "you chose " + o.GuessedMove.Describe() +
		", the answer is " + ActionStyle(o.CorrectMove).Render(o.CorrectMove.String()) +
		" " + o.CorrectMove.Describe()
}

func (m *DrillModel) renderTally() string {
	t := m.session.Tally()
	if t.Rounds == 0 {
		return InfoStyle.Render("No rounds graded yet")
	}
	s := fmt.Sprintf("%d/%d correct (%.1f%%)", t.Right, t.Rounds, 100*t.Accuracy())
	if m.rounds > 0 {
		s += fmt.Sprintf(", round %d of %d", m.played, m.rounds)
	}
	return WarningStyle.Render(s)
}

func (m *DrillModel) help() string {
	if m.phase == reviewing {
		if m.Finished() {
			return "Enter to finish • Ctrl+C to quit"
		}
		return "Enter or n for the next hand • Tab to change mode • q to quit"
	}
	return "Enter to submit • Tab to change mode • Ctrl+C to quit"
}

func formatCards(cards []card.Card) string {
	formatted := make([]string, 0, len(cards))
	for _, c := range cards {
		formatted = append(formatted, FormatCard(c))
	}
	return "[" + strings.Join(formatted, " ") + "]"
}
