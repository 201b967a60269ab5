package trainer

import (
	"fmt"

	"github.com/lox/basicstrategy/internal/hand"
	"github.com/lox/basicstrategy/internal/mode"
)

// HandState is a hand serialised as card codes and face up flags
type HandState struct {
	Cards  string `json:"hands"`
	FaceUp string `json:"face_up"`
}

// State is the round awaiting a guess, in a form that can cross a session
// or storage boundary
type State struct {
	Mode   mode.Mode `json:"mode"`
	Dealer HandState `json:"dealer"`
	Player HandState `json:"player"`
}

func handState(h *hand.Hand) HandState {
	return HandState{Cards: h.CardString(), FaceUp: h.FaceUpString()}
}

// Snapshot returns the state of the current round; ok is false when no
// round is in progress
func (s *Session) Snapshot() (State, bool) {
	if s.current == nil {
		return State{}, false
	}
	return State{
		Mode:   s.current.Mode,
		Dealer: handState(s.current.Dealer),
		Player: handState(s.current.Player),
	}, true
}

// Restore makes the round described by st the current round. The answer is
// recomputed from the cards.
func (s *Session) Restore(st State) (*Round, error) {
	player, err := hand.Parse(st.Player.Cards, st.Player.FaceUp)
	if err != nil {
		return nil, fmt.Errorf("restore player hand: %w", err)
	}
	dealer, err := hand.Parse(st.Dealer.Cards, st.Dealer.FaceUp)
	if err != nil {
		return nil, fmt.Errorf("restore dealer hand: %w", err)
	}
	if player.Len() < 2 {
		return nil, fmt.Errorf("restore player hand: need 2 cards, got %d", player.Len())
	}
	s.current = s.newRound(st.Mode, player, dealer)
	return s.current, nil
}
