package tcpserver

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net"

	"github.com/tcgx-game/duelcore/internal/apperr"
	"github.com/tcgx-game/duelcore/internal/service"
	"github.com/tcgx-game/duelcore/internal/state"
)

// Server hosts the line-oriented JSON duel protocol on a single port,
// dispatching every connection's requests to svc.
type Server struct {
	Svc  *service.Service
	Port string
}

// Run listens on s.Port until ctx is cancelled, spawning one goroutine per
// accepted connection (mirrors the teacher's Server.Run accept loop, but
// serves many concurrent connections instead of exactly one opponent).
func (s *Server) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", ":"+s.Port)
	if err != nil {
		return fmt.Errorf("listen: %w", err)
	}
	go func() {
		<-ctx.Done()
		ln.Close()
	}()

	for {
		conn, err := ln.Accept()
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}
			return fmt.Errorf("accept: %w", err)
		}
		go s.handleConn(conn)
	}
}

func (s *Server) handleConn(conn net.Conn) {
	defer conn.Close()
	dec := json.NewDecoder(conn)
	enc := json.NewEncoder(conn)

	for {
		var req ClientMessage
		if err := dec.Decode(&req); err != nil {
			return
		}
		resp := s.Dispatch(req)
		if err := enc.Encode(resp); err != nil {
			log.Printf("tcpserver: write to %s: %v", conn.RemoteAddr(), err)
			return
		}
	}
}

// Dispatch executes a single request against s.Svc and builds its
// response frame. Exported so webserver can reuse the same envelope over
// a websocket connection instead of a raw net.Conn.
func (s *Server) Dispatch(req ClientMessage) ServerMessage {
	seat := state.Seat(req.Seat)

	switch req.Type {
	case MsgSubmitAction:
		res, err := s.Svc.SubmitAction(req.MatchID, seat, req.CallerID, req.Command, req.ExpectedVersion)
		if err != nil {
			return errMessage(req.Type, err)
		}
		return ServerMessage{Type: req.Type, Version: res.Version, Events: res.Events}

	case MsgGetPlayerView:
		view, err := s.Svc.GetPlayerView(req.MatchID, seat)
		if err != nil {
			return errMessage(req.Type, err)
		}
		return ServerMessage{Type: req.Type, View: view}

	case MsgGetLegalMoves:
		moves, err := s.Svc.GetLegalMoves(req.MatchID, seat)
		if err != nil {
			return errMessage(req.Type, err)
		}
		return ServerMessage{Type: req.Type, Moves: moves}

	case MsgGetRecentEvents:
		batches, err := s.Svc.GetRecentEvents(req.MatchID, req.SinceVersion)
		if err != nil {
			return errMessage(req.Type, err)
		}
		return ServerMessage{Type: req.Type, View: batches}

	default:
		return ServerMessage{Type: req.Type, Error: "unknown message type", ErrorKind: string(apperr.KindInternal)}
	}
}

func errMessage(msgType string, err error) ServerMessage {
	var ae *apperr.Error
	if errors.As(err, &ae) {
		return ServerMessage{Type: msgType, Error: ae.Msg, ErrorKind: string(ae.Kind)}
	}
	return ServerMessage{Type: msgType, Error: err.Error(), ErrorKind: string(apperr.KindInternal)}
}
