// Package webserver serves the embedded static UI and upgrades browser
// connections to websockets that speak the same envelope as tcpserver,
// adapted from the teacher's internal/web.Server (which proxied a browser
// websocket to a second TCP connection; here the websocket talks to the
// Service directly, since there is no longer a blocking per-duel TCP
// process to proxy to).
package webserver

import (
	"embed"
	"encoding/json"
	"io"
	"io/fs"
	"log"
	"net/http"

	"github.com/coder/websocket"

	"github.com/tcgx-game/duelcore/internal/catalog"
	"github.com/tcgx-game/duelcore/internal/service"
	"github.com/tcgx-game/duelcore/internal/transport/tcpserver"
)

//go:embed static
var staticFiles embed.FS

// CardInfo is the /api/cards wire shape.
type CardInfo struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Type   string `json:"type"`
	Attack int    `json:"attack,omitempty"`
	Defense int   `json:"defense,omitempty"`
	Level  int    `json:"level,omitempty"`
}

// DeckInfo is the /api/decks wire shape.
type DeckInfo struct {
	Name  string   `json:"name"`
	Cards []string `json:"cards"`
}

// Server is the tcgx web UI + websocket server.
type Server struct {
	Svc       *service.Service
	Catalog   *catalog.Catalog
	DecksFile string
	mux       *http.ServeMux
}

// NewServer builds a Server ready to ListenAndServe.
func NewServer(svc *service.Service, cat *catalog.Catalog, decksFile string) *Server {
	s := &Server{Svc: svc, Catalog: cat, DecksFile: decksFile, mux: http.NewServeMux()}
	s.setupRoutes()
	return s
}

func (s *Server) Handler() http.Handler { return s.mux }

func (s *Server) setupRoutes() {
	staticFS, _ := fs.Sub(staticFiles, "static")

	s.mux.HandleFunc("GET /", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/" {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		f, err := staticFS.Open("index.html")
		if err != nil {
			http.Error(w, "not found", http.StatusNotFound)
			return
		}
		defer f.Close()
		io.Copy(w, f)
	})

	s.mux.Handle("GET /static/", http.StripPrefix("/static/", http.FileServer(http.FS(staticFS))))

	s.mux.HandleFunc("GET /api/cards", s.handleCards)
	s.mux.HandleFunc("GET /api/decks", s.handleDecks)
	s.mux.HandleFunc("GET /ws", s.handleWebSocket)
}

func (s *Server) handleCards(w http.ResponseWriter, r *http.Request) {
	var cards []CardInfo
	for _, def := range s.Catalog.All() {
		ci := CardInfo{ID: def.ID, Name: def.Name, Type: string(def.Type)}
		if def.Attack != nil {
			ci.Attack = *def.Attack
		}
		if def.Defense != nil {
			ci.Defense = *def.Defense
		}
		if def.Level != nil {
			ci.Level = *def.Level
		}
		cards = append(cards, ci)
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(cards)
}

func (s *Server) handleDecks(w http.ResponseWriter, r *http.Request) {
	decks, err := catalog.ParseDeckFile(s.Catalog, s.DecksFile)
	if err != nil {
		http.Error(w, "could not read decks file", http.StatusInternalServerError)
		return
	}
	var out []DeckInfo
	for name, ids := range decks {
		seen := make(map[string]bool)
		var unique []string
		for _, id := range ids {
			if !seen[id] {
				unique = append(unique, id)
				seen[id] = true
			}
		}
		out = append(out, DeckInfo{Name: name, Cards: unique})
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(out)
}

// handleWebSocket upgrades the connection and serves ClientMessage/
// ServerMessage frames (tcpserver's envelope) directly against s.Svc,
// the same way tcpserver.Server.handleConn does over a raw net.Conn.
func (s *Server) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := websocket.Accept(w, r, &websocket.AcceptOptions{InsecureSkipVerify: true})
	if err != nil {
		log.Printf("webserver: accept: %v", err)
		return
	}
	defer conn.CloseNow()

	ctx := r.Context()
	dispatcher := tcpserver.Server{Svc: s.Svc}
	for {
		_, data, err := conn.Read(ctx)
		if err != nil {
			return
		}
		var req tcpserver.ClientMessage
		if err := json.Unmarshal(data, &req); err != nil {
			conn.Close(websocket.StatusPolicyViolation, "malformed request")
			return
		}
		resp := dispatcher.Dispatch(req)
		out, err := json.Marshal(resp)
		if err != nil {
			return
		}
		if err := conn.Write(ctx, websocket.MessageText, out); err != nil {
			return
		}
	}
}
