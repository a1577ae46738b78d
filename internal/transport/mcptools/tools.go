// Package mcptools registers the Service API as MCP tools, adapted from
// the teacher's internal/mcp (which drove a single blocking GameSession
// per stdio process via start_game/take_action/...). Here every call maps
// straight onto one Service operation, so an agent can hold any seat of
// any match the process's caller is authorized for.
package mcptools

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/tcgx-game/duelcore/internal/apperr"
	"github.com/tcgx-game/duelcore/internal/kernel"
	"github.com/tcgx-game/duelcore/internal/service"
	"github.com/tcgx-game/duelcore/internal/state"
)

// Registrar adds the duelcore tool set to an MCP server.
type Registrar struct {
	Svc *service.Service
}

// RegisterTools adds submit_action/get_player_view/get_legal_moves/
// get_recent_events to s (spec §4.5's "Agent/bot plugin" surface).
func (r *Registrar) RegisterTools(s *server.MCPServer) {
	s.AddTool(submitActionTool(), r.handleSubmitAction)
	s.AddTool(getPlayerViewTool(), r.handleGetPlayerView)
	s.AddTool(getLegalMovesTool(), r.handleGetLegalMoves)
	s.AddTool(getRecentEventsTool(), r.handleGetRecentEvents)
}

func submitActionTool() mcp.Tool {
	return mcp.NewTool("submit_action",
		mcp.WithDescription("Submit a command for a seat in an active match. The command must be one the kernel's decide function accepts for that seat in the current state; use get_legal_moves first to find one."),
		mcp.WithString("matchId", mcp.Required(), mcp.Description("Match id returned by createMatch")),
		mcp.WithString("seat", mcp.Required(), mcp.Description("host or away")),
		mcp.WithString("callerId", mcp.Required(), mcp.Description("Caller identity, must match the seat's registered user")),
		mcp.WithString("command", mcp.Required(), mcp.Description("JSON-encoded kernel.Command, e.g. {\"type\":\"advance_phase\"}")),
		mcp.WithNumber("expectedVersion", mcp.Required(), mcp.Description("Version the caller last observed; stale values fail VERSION_MISMATCH")),
	)
}

func getPlayerViewTool() mcp.Tool {
	return mcp.NewTool("get_player_view",
		mcp.WithDescription("Fetch the masked view of a match for one seat — opponent hand hidden, face-down cards hidden, decks shown as counts only."),
		mcp.WithString("matchId", mcp.Required(), mcp.Description("Match id")),
		mcp.WithString("seat", mcp.Required(), mcp.Description("host or away")),
	)
}

func getLegalMovesTool() mcp.Tool {
	return mcp.NewTool("get_legal_moves",
		mcp.WithDescription("Enumerate every command the given seat may legally submit right now."),
		mcp.WithString("matchId", mcp.Required(), mcp.Description("Match id")),
		mcp.WithString("seat", mcp.Required(), mcp.Description("host or away")),
	)
}

func getRecentEventsTool() mcp.Tool {
	return mcp.NewTool("get_recent_events",
		mcp.WithDescription("List every event batch committed after sinceVersion."),
		mcp.WithString("matchId", mcp.Required(), mcp.Description("Match id")),
		mcp.WithNumber("sinceVersion", mcp.Description("Version already observed by the caller; defaults to 0")),
	)
}

func (r *Registrar) handleSubmitAction(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	matchID := request.GetString("matchId", "")
	seat := state.Seat(request.GetString("seat", ""))
	callerID := request.GetString("callerId", "")
	expectedVersion := request.GetInt("expectedVersion", -1)

	var cmd kernel.Command
	if err := json.Unmarshal([]byte(request.GetString("command", "")), &cmd); err != nil {
		return mcp.NewToolResultErrorf("invalid command JSON: %v", err), nil
	}

	res, err := r.Svc.SubmitAction(matchID, seat, callerID, cmd, expectedVersion)
	if err != nil {
		return toolError(err), nil
	}
	return mcp.NewToolResultText(mustJSON(res)), nil
}

func (r *Registrar) handleGetPlayerView(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	matchID := request.GetString("matchId", "")
	seat := state.Seat(request.GetString("seat", ""))
	view, err := r.Svc.GetPlayerView(matchID, seat)
	if err != nil {
		return toolError(err), nil
	}
	return mcp.NewToolResultText(mustJSON(view)), nil
}

func (r *Registrar) handleGetLegalMoves(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	matchID := request.GetString("matchId", "")
	seat := state.Seat(request.GetString("seat", ""))
	moves, err := r.Svc.GetLegalMoves(matchID, seat)
	if err != nil {
		return toolError(err), nil
	}
	return mcp.NewToolResultText(mustJSON(moves)), nil
}

func (r *Registrar) handleGetRecentEvents(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	matchID := request.GetString("matchId", "")
	since := request.GetInt("sinceVersion", 0)
	batches, err := r.Svc.GetRecentEvents(matchID, since)
	if err != nil {
		return toolError(err), nil
	}
	return mcp.NewToolResultText(mustJSON(batches)), nil
}

func toolError(err error) *mcp.CallToolResult {
	if apperr.Is(err, apperr.KindNotFound) {
		return mcp.NewToolResultErrorf("not found: %v", err)
	}
	return mcp.NewToolResultErrorf("%v", err)
}

func mustJSON(v any) string {
	b, err := json.Marshal(v)
	if err != nil {
		return fmt.Sprintf("{\"error\":%q}", err.Error())
	}
	return string(b)
}
