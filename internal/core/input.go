package core

// Action represents a semantic game action, abstracted from physical key presses.
// Horizontal movement is not an action: it is tracked as held keys so that
// releasing one alias does not cancel another still held.
type Action int

const (
	ActionNone    Action = iota
	ActionStart          // Enter, Space - start from the title screen
	ActionRestart        // R, Enter, Space - play again after game over
	ActionScores         // Tab - toggle leaderboard on the game-over screen
	ActionQuit           // Q, Ctrl+C - exit
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionStart:
		return "Start"
	case ActionRestart:
		return "Restart"
	case ActionScores:
		return "Scores"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}
