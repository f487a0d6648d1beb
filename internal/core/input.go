package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows games to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone       Action = iota
	ActionUp                // W, Up arrow - move one row up
	ActionDown              // S, Down arrow - move one row down
	ActionLeft              // A, Left arrow - move one column left
	ActionRight             // D, Right arrow - move one column right
	ActionHelp              // H - show allowed input
	ActionRestart           // R key - restart game after game over
	ActionPause             // P, Escape - pause/unpause game
	ActionBack              // B - leave the game screen
	ActionScoreboard        // Tab - open high scores
	ActionQuit              // Q, Ctrl+C - exit game/session
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionHelp:
		return "Help"
	case ActionRestart:
		return "Restart"
	case ActionPause:
		return "Pause"
	case ActionBack:
		return "Back"
	case ActionScoreboard:
		return "Scoreboard"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// InputFrame represents the input for a single simulation tick: the
// actions triggered during the frame, in the order they arrived.
type InputFrame struct {
	sequence []Action
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{}
}

// Set records an action for this frame. Repeats are kept.
func (f *InputFrame) Set(a Action) {
	f.sequence = append(f.sequence, a)
}

// Sequence returns the actions in arrival order, including repeats.
func (f InputFrame) Sequence() []Action {
	out := make([]Action, len(f.sequence))
	copy(out, f.sequence)
	return out
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	f.sequence = f.sequence[:0]
}
