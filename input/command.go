// Package input translates terminal events into paddle intents and driver commands
package input

// Command is a driver-level action outside paddle movement
type Command uint8

const (
	CommandNone Command = iota
	CommandQuit          // q, Esc, Ctrl+C
	CommandPause         // Space
	CommandRestart       // r, rally restart
	CommandNewMatch      // n
	CommandCycleBallType // t
	CommandToggleMute    // m
	CommandResize        // Terminal resize
)

var commandNames = [...]string{"none", "quit", "pause", "restart", "new_match", "cycle_ball", "mute", "resize"}

func (c Command) String() string {
	if int(c) >= len(commandNames) {
		return "unknown"
	}
	return commandNames[c]
}
