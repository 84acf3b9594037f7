package input

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/pong-arena/core"
)

// Direction of a held movement key
type Direction uint8

const (
	DirLeft Direction = iota
	DirRight
	dirCount
)

// Binding moves one side's paddle
type Binding struct {
	Side core.Side
	Dir  Direction
}

// KeyTable maps keys to movement bindings and commands
type KeyTable struct {
	MoveKeys  map[tcell.Key]Binding
	MoveRunes map[rune]Binding

	CommandKeys  map[tcell.Key]Command
	CommandRunes map[rune]Command
}

// DefaultKeyTable binds arrows to the bottom paddle and a/d to the top paddle
func DefaultKeyTable() *KeyTable {
	return &KeyTable{
		MoveKeys: map[tcell.Key]Binding{
			tcell.KeyLeft:  {core.SideBottom, DirLeft},
			tcell.KeyRight: {core.SideBottom, DirRight},
		},
		MoveRunes: map[rune]Binding{
			'a': {core.SideTop, DirLeft},
			'A': {core.SideTop, DirLeft},
			'd': {core.SideTop, DirRight},
			'D': {core.SideTop, DirRight},
		},
		CommandKeys: map[tcell.Key]Command{
			tcell.KeyEscape: CommandQuit,
			tcell.KeyCtrlC:  CommandQuit,
		},
		CommandRunes: map[rune]Command{
			'q': CommandQuit,
			'Q': CommandQuit,
			' ': CommandPause,
			'r': CommandRestart,
			'R': CommandRestart,
			'n': CommandNewMatch,
			'N': CommandNewMatch,
			't': CommandCycleBallType,
			'T': CommandCycleBallType,
			'm': CommandToggleMute,
			'M': CommandToggleMute,
		},
	}
}
