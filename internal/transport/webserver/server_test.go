package webserver

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/coder/websocket"

	"github.com/tcgx-game/duelcore/internal/catalog"
	"github.com/tcgx-game/duelcore/internal/log"
	"github.com/tcgx-game/duelcore/internal/service"
	"github.com/tcgx-game/duelcore/internal/setup"
	"github.com/tcgx-game/duelcore/internal/state"
	"github.com/tcgx-game/duelcore/internal/store"
	"github.com/tcgx-game/duelcore/internal/transport/tcpserver"
)

func someDeck(n int) []string {
	deck := make([]string, n)
	for i := range deck {
		deck[i] = "chrome_sentinel"
	}
	return deck
}

func writeDecksFile(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "decks.yaml")
	contents := "decks:\n  - name: starter\n    cards:\n      - id: chrome_sentinel\n        count: 3\n"
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("write decks file: %v", err)
	}
	return path
}

func TestHandleCards_ListsCatalogDefinitions(t *testing.T) {
	srv := NewServer(service.New(store.NewMemStore(), catalog.Default(), log.NewMemoryLogger()), catalog.Default(), "")
	ts := httptest.NewServer(srv.Handler())
	defer ts.Close()

	resp, err := http.Get(ts.URL + "/api/cards")
	if err != nil {
		t.Fatalf("GET /api/cards: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	var cards []CardInfo
	if err := json.NewDecoder(resp.Body).Decode(&cards); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(cards) == 0 {
		t.Fatal("expected a non-empty card list")
	}
}

func TestHandleDecks_ExpandsConfiguredDeckFile(t *testing.T) {
	path := writeDecksFile(t)
	srv := NewServer(service.New(store.NewMemStore(), catalog.Default(), log.NewMemoryLogger()), catalog.Default(), path)
	ts := httptest.NewServer(srv.Handler())
	defer ts.Close()

	resp, err := http.Get(ts.URL + "/api/decks")
	if err != nil {
		t.Fatalf("GET /api/decks: %v", err)
	}
	defer resp.Body.Close()
	var decks []DeckInfo
	if err := json.NewDecoder(resp.Body).Decode(&decks); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(decks) != 1 || decks[0].Name != "starter" || len(decks[0].Cards) != 1 {
		t.Fatalf("expected one starter deck with one distinct card, got %+v", decks)
	}
}

func TestHandleWebSocket_RoundTripsGetPlayerView(t *testing.T) {
	svc := service.New(store.NewMemStore(), catalog.Default(), log.NewMemoryLogger())
	matchID, err := svc.CreateMatch(service.CreateMatchInput{HostID: "host-1", Mode: "ranked", HostDeck: someDeck(12)})
	if err != nil {
		t.Fatalf("CreateMatch: %v", err)
	}
	if err := svc.JoinMatch(matchID, "away-1", someDeck(12)); err != nil {
		t.Fatalf("JoinMatch: %v", err)
	}
	gs := setup.NewInitialState(state.DefaultConfig(), catalog.Default(), 2026, someDeck(12), someDeck(12))
	initBytes, _ := json.Marshal(gs)
	if _, err := svc.StartMatch(matchID, initBytes); err != nil {
		t.Fatalf("StartMatch: %v", err)
	}

	srv := NewServer(svc, catalog.Default(), "")
	ts := httptest.NewServer(srv.Handler())
	defer ts.Close()

	ctx := context.Background()
	wsURL := "ws" + strings.TrimPrefix(ts.URL, "http") + "/ws"
	conn, _, err := websocket.Dial(ctx, wsURL, nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	defer conn.Close(websocket.StatusNormalClosure, "")

	reqBytes, _ := json.Marshal(tcpserver.ClientMessage{
		Type: tcpserver.MsgGetPlayerView, MatchID: matchID, Seat: "host",
	})
	if err := conn.Write(ctx, websocket.MessageText, reqBytes); err != nil {
		t.Fatalf("write: %v", err)
	}

	_, data, err := conn.Read(ctx)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	var resp tcpserver.ServerMessage
	if err := json.Unmarshal(data, &resp); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if resp.Error != "" {
		t.Fatalf("unexpected error: %s (%s)", resp.Error, resp.ErrorKind)
	}
	if resp.View == nil {
		t.Fatal("expected a non-nil view in the response")
	}
}
