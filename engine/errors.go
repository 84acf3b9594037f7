package engine

import "errors"

// Precondition violations surfaced by Update; callers test with errors.Is
var (
	ErrNotStarted   = errors.New("session not started")
	ErrInvalidTick  = errors.New("invalid tick delta")
	ErrBallOverflow = errors.New("ball pool overflow")
)
