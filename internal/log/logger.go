package log

import (
	"fmt"
	"io"

	"github.com/tcgx-game/duelcore/internal/kernel"
)

// EventLogger is the interface every Service operation logs through.
type EventLogger interface {
	LogBatch(matchID string, version int, events []kernel.Event)
}

// NopLogger discards everything; the default when a Service is built
// without an explicit logger.
type NopLogger struct{}

func (NopLogger) LogBatch(string, int, []kernel.Event) {}

// --- MemoryLogger: stores batches in memory for test assertions ---

type MemoryLogger struct {
	batches []BatchRecord
	seq     int
}

func NewMemoryLogger() *MemoryLogger {
	return &MemoryLogger{}
}

func (l *MemoryLogger) LogBatch(matchID string, version int, events []kernel.Event) {
	l.seq++
	l.batches = append(l.batches, BatchRecord{Seq: l.seq, MatchID: matchID, Version: version, Events: events})
}

// Batches returns every batch logged so far, in commit order.
func (l *MemoryLogger) Batches() []BatchRecord {
	return l.batches
}

// BatchesForMatch returns only the batches logged for matchID.
func (l *MemoryLogger) BatchesForMatch(matchID string) []BatchRecord {
	var out []BatchRecord
	for _, b := range l.batches {
		if b.MatchID == matchID {
			out = append(out, b)
		}
	}
	return out
}

// LastBatch returns the most recently logged batch, or a zero value if
// none has been logged yet.
func (l *MemoryLogger) LastBatch() BatchRecord {
	if len(l.batches) == 0 {
		return BatchRecord{}
	}
	return l.batches[len(l.batches)-1]
}

// --- TextLogger: writes human-readable lines to an io.Writer ---

type TextLogger struct {
	MemoryLogger
	w io.Writer
}

func NewTextLogger(w io.Writer) *TextLogger {
	return &TextLogger{w: w}
}

func (l *TextLogger) LogBatch(matchID string, version int, events []kernel.Event) {
	l.MemoryLogger.LogBatch(matchID, version, events)
	for _, e := range events {
		fmt.Fprintln(l.w, FormatEvent(matchID, version, e))
	}
}

// FormatEvent formats a single kernel event as a human-readable line.
func FormatEvent(matchID string, version int, e kernel.Event) string {
	seat := string(e.Seat)
	if seat == "" {
		seat = "-"
	}
	return fmt.Sprintf("%s v%-3d %-6s %s%s", matchID, version, seat, e.Type, detail(e))
}

// FormatBatch formats every event in a batch, one line each.
func FormatBatch(matchID string, version int, events []kernel.Event) string {
	var out string
	for _, e := range events {
		out += FormatEvent(matchID, version, e) + "\n"
	}
	return out
}

func detail(e kernel.Event) string {
	switch {
	case e.CardID != "" && e.TargetID != "":
		return fmt.Sprintf(" %s -> %s", e.CardID, e.TargetID)
	case e.CardID != "":
		return " " + e.CardID
	case e.Winner != "":
		return fmt.Sprintf(" winner=%s reason=%s", e.Winner, e.WinReason)
	default:
		return ""
	}
}
