// Command tcgx-mcp exposes the duel Service as MCP tools over stdio,
// adapted from the teacher's cmd/tcgx-mcp (which drove a single blocking
// GameSession per process instead of calling through service.Service).
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/mark3labs/mcp-go/server"

	"github.com/tcgx-game/duelcore/internal/catalog"
	"github.com/tcgx-game/duelcore/internal/log"
	"github.com/tcgx-game/duelcore/internal/service"
	"github.com/tcgx-game/duelcore/internal/store"
	"github.com/tcgx-game/duelcore/internal/transport/mcptools"
)

func main() {
	flag.String("decks", "decks.yaml", "path to decks YAML file (unused by the tool surface itself, reserved for future create_match tooling)")
	flag.Parse()

	svc := service.New(store.NewMemStore(), catalog.Default(), log.NewMemoryLogger())

	s := server.NewMCPServer("tcgx", "1.0.0")
	reg := &mcptools.Registrar{Svc: svc}
	reg.RegisterTools(s)

	if err := server.ServeStdio(s); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
