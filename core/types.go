package core

import "strings"

// BallType selects type-driven ball behavior on top paddle hits
type BallType uint8

const (
	BallNormal BallType = iota
	BallFire
	BallIce
	BallMagnetic
	BallSplit
	BallTypeCount
)

var ballTypeNames = [BallTypeCount]string{"normal", "fire", "ice", "magnetic", "split"}

func (t BallType) String() string {
	if t >= BallTypeCount {
		return "unknown"
	}
	return ballTypeNames[t]
}

// PowerUpType identifies a collectible effect, PowerUpNone is never spawned
type PowerUpType uint8

const (
	PowerUpNone PowerUpType = iota
	PowerUpBigPaddle
	PowerUpSlowBall
	PowerUpExtraPoints
	PowerUpSlowTime
	PowerUpFastPaddle
	PowerUpInvisibleBall
	PowerUpSplitBall
	PowerUpTypeCount
)

var powerUpNames = [PowerUpTypeCount]string{
	"none", "big_paddle", "slow_ball", "extra_points", "slow_time", "fast_paddle", "invisible_ball", "split_ball",
}

func (t PowerUpType) String() string {
	if t >= PowerUpTypeCount {
		return "unknown"
	}
	return powerUpNames[t]
}

// Side identifies a paddle
type Side uint8

const (
	SideBottom Side = iota
	SideTop
	SideCount
)

func (s Side) String() string {
	if s == SideTop {
		return "top"
	}
	return "bottom"
}

// Opponent returns the other side
func (s Side) Opponent() Side {
	if s == SideTop {
		return SideBottom
	}
	return SideTop
}

// Mode is the selected match type
type Mode uint8

const (
	ModePvP Mode = iota
	ModeVsAI
)

func (m Mode) String() string {
	if m == ModeVsAI {
		return "vs_ai"
	}
	return "pvp"
}

func (m Mode) Valid() bool { return m <= ModeVsAI }

// ParseMode accepts "pvp", "ai", "vs_ai", "pvc"
func ParseMode(s string) (Mode, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "pvp":
		return ModePvP, true
	case "ai", "vs_ai", "vsai", "pvc":
		return ModeVsAI, true
	}
	return ModePvP, false
}

// Difficulty selects AI tuning and session ball speed in vs-AI mode
type Difficulty uint8

const (
	DifficultyMedium Difficulty = iota
	DifficultyHard
)

func (d Difficulty) String() string {
	if d == DifficultyHard {
		return "hard"
	}
	return "medium"
}

func (d Difficulty) Valid() bool { return d <= DifficultyHard }

func ParseDifficulty(s string) (Difficulty, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "medium", "normal":
		return DifficultyMedium, true
	case "hard":
		return DifficultyHard, true
	}
	return DifficultyMedium, false
}

// ControlScheme selects how a paddle receives movement
type ControlScheme uint8

const (
	ControlKeys ControlScheme = iota
	ControlMouse
	ControlAI
)

func (c ControlScheme) String() string {
	switch c {
	case ControlMouse:
		return "mouse"
	case ControlAI:
		return "ai"
	default:
		return "keys"
	}
}

func (c ControlScheme) Valid() bool { return c <= ControlAI }

func ParseControlScheme(s string) (ControlScheme, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "keys", "keyboard":
		return ControlKeys, true
	case "mouse":
		return ControlMouse, true
	case "ai", "auto", "cpu":
		return ControlAI, true
	}
	return ControlKeys, false
}
