// Package tcpserver is a line-oriented JSON protocol over net.Conn,
// adapted from the teacher's internal/net: the same json.Encoder/Decoder
// pair wired directly to the connection, but driving the Service API
// (submitAction/getPlayerView/getLegalMoves/getRecentEvents) instead of
// blocking on a PlayerController interface.
package tcpserver

import "github.com/tcgx-game/duelcore/internal/kernel"

// ClientMessage is one request frame, JSON-encoded and newline-terminated.
type ClientMessage struct {
	Type string `json:"type"`

	MatchID         string          `json:"matchId,omitempty"`
	Seat            string          `json:"seat,omitempty"`
	CallerID        string          `json:"callerId,omitempty"`
	Command         kernel.Command  `json:"command,omitempty"`
	ExpectedVersion int             `json:"expectedVersion,omitempty"`
	SinceVersion    int             `json:"sinceVersion,omitempty"`
}

// Message types for ClientMessage.Type.
const (
	MsgSubmitAction   = "submit_action"
	MsgGetPlayerView  = "get_player_view"
	MsgGetLegalMoves  = "get_legal_moves"
	MsgGetRecentEvents = "get_recent_events"
)

// ServerMessage is one response frame.
type ServerMessage struct {
	Type string `json:"type"`

	Version int            `json:"version,omitempty"`
	Events  []kernel.Event `json:"events,omitempty"`

	View   any `json:"view,omitempty"`
	Moves  []kernel.Command `json:"moves,omitempty"`
	Error  string           `json:"error,omitempty"`
	ErrorKind string        `json:"errorKind,omitempty"`
}
