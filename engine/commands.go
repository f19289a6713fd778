package engine

import "github.com/lixenwraith/glyph-rain/constants"

// Action is the loop outcome of a dispatched command
type Action int

const (
	ActionContinue Action = iota
	ActionQuit
)

// Command handles one key press
type Command func(s *Scheduler) Action

// Commands maps keys to handlers
// Placeholders can be replaced through Register without touching the frame loop
type Commands map[rune]Command

// DefaultCommands returns the stock key bindings
// Stats, save and reload are bound to Inert extension points
func DefaultCommands() Commands {
	return Commands{
		constants.KeyPause:    Pause,
		constants.KeySpeedUp:  SpeedUp,
		constants.KeySlowDown: SlowDown,
		constants.KeyQuit:     Quit,
		constants.KeyStats:    Inert,
		constants.KeySave:     Inert,
		constants.KeyReload:   Inert,
	}
}

// Register binds key to cmd, replacing any existing binding
func (c Commands) Register(key rune, cmd Command) {
	c[key] = cmd
}

// Dispatch runs the handler for key; unknown keys continue the loop
func (c Commands) Dispatch(key rune, s *Scheduler) Action {
	cmd, ok := c[key]
	if !ok || cmd == nil {
		return ActionContinue
	}
	return cmd(s)
}

// Pause toggles the pause state
func Pause(s *Scheduler) Action {
	s.session.TogglePause()
	return ActionContinue
}

// SpeedUp shortens the pacing delay
func SpeedUp(s *Scheduler) Action {
	s.session.SpeedUp()
	return ActionContinue
}

// SlowDown lengthens the pacing delay
func SlowDown(s *Scheduler) Action {
	s.session.SlowDown()
	return ActionContinue
}

// Quit ends the loop
func Quit(*Scheduler) Action {
	return ActionQuit
}

// Inert does nothing
func Inert(*Scheduler) Action {
	return ActionContinue
}
