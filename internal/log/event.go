// Package log adapts the teacher's GameEvent/EventLogger split into a
// logger over the kernel's own event vectors: every committed batch, not
// a hand-described replay of one.
package log

import "github.com/tcgx-game/duelcore/internal/kernel"

// BatchRecord is one committed event batch as seen by a logger.
type BatchRecord struct {
	Seq     int // monotonic sequence number, assigned by the logger
	MatchID string
	Version int
	Events  []kernel.Event
}
