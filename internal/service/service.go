// Package service implements the Match Service boundary (spec §4.5): the
// only surface transports are allowed to call. It owns authorization,
// optimistic-concurrency, and the decide/evolve/SBA composition; the
// transports (tcpserver, webserver, mcptools) never touch kernel or store
// directly.
package service

import (
	"encoding/json"

	"github.com/google/uuid"

	"github.com/tcgx-game/duelcore/internal/apperr"
	"github.com/tcgx-game/duelcore/internal/catalog"
	"github.com/tcgx-game/duelcore/internal/kernel"
	"github.com/tcgx-game/duelcore/internal/legalmoves"
	"github.com/tcgx-game/duelcore/internal/log"
	"github.com/tcgx-game/duelcore/internal/mask"
	"github.com/tcgx-game/duelcore/internal/state"
	"github.com/tcgx-game/duelcore/internal/store"
)

// Service wires the rules kernel to a Store, enforcing spec §4.5's
// lifecycle, authorization, and optimistic-concurrency rules.
type Service struct {
	store   store.Store
	catalog *catalog.Catalog
	log     log.EventLogger
}

// New builds a Service backed by st, resolving card definitions through
// cat and logging every committed batch through logger.
func New(st store.Store, cat *catalog.Catalog, logger log.EventLogger) *Service {
	if logger == nil {
		logger = log.NopLogger{}
	}
	return &Service{store: st, catalog: cat, log: logger}
}

// CreateMatchInput is the createMatch arg bundle (spec §6).
type CreateMatchInput struct {
	HostID       string
	AwayID       string
	Mode         string
	HostDeck     []string
	AwayDeck     []string
	IsAIOpponent bool
}

// CreateMatch validates both decks against the catalog and inserts a
// waiting match row. No snapshot exists until StartMatch.
func (s *Service) CreateMatch(in CreateMatchInput) (string, error) {
	if err := s.validateDeck(in.HostDeck); err != nil {
		return "", err
	}
	if len(in.AwayDeck) > 0 {
		if err := s.validateDeck(in.AwayDeck); err != nil {
			return "", err
		}
	}

	matchID := uuid.NewString()
	m := store.Match{
		MatchID:      matchID,
		HostID:       in.HostID,
		AwayID:       in.AwayID,
		Mode:         in.Mode,
		IsAIOpponent: in.IsAIOpponent,
		Status:       store.StatusWaiting,
	}
	if err := s.store.CreateMatch(m); err != nil {
		return "", apperr.Wrap(apperr.KindInternal, "create match", err)
	}
	return matchID, nil
}

// JoinMatch fills the away seat of a still-empty waiting match.
func (s *Service) JoinMatch(matchID, awayID string, awayDeck []string) error {
	m, ok, err := s.store.GetMatch(matchID)
	if err != nil {
		return apperr.Wrap(apperr.KindInternal, "load match", err)
	}
	if !ok {
		return apperr.New(apperr.KindNotFound, "match not found")
	}
	if m.Status != store.StatusWaiting {
		return apperr.New(apperr.KindNotWaiting, "match is not waiting for players")
	}
	if m.AwayID != "" {
		return apperr.New(apperr.KindSeatTaken, "away seat already taken")
	}
	if err := s.validateDeck(awayDeck); err != nil {
		return err
	}

	m.AwayID = awayID
	if err := s.store.UpdateMatch(m); err != nil {
		return apperr.Wrap(apperr.KindInternal, "update match", err)
	}
	return nil
}

// StartMatch admits a caller-provided serialized initial state (shuffles
// already applied from a seeded RNG) as the version-0 snapshot, emits
// TURN_STARTED, and flips the match active (spec §4.5).
func (s *Service) StartMatch(matchID string, initialState []byte) (int, error) {
	m, ok, err := s.store.GetMatch(matchID)
	if err != nil {
		return 0, apperr.Wrap(apperr.KindInternal, "load match", err)
	}
	if !ok {
		return 0, apperr.New(apperr.KindNotFound, "match not found")
	}
	if m.Status != store.StatusWaiting {
		return 0, apperr.New(apperr.KindNotWaiting, "match is not waiting")
	}
	if m.AwayID == "" {
		return 0, apperr.New(apperr.KindInitInvalid, "away seat is empty")
	}

	var gs state.GameState
	if err := json.Unmarshal(initialState, &gs); err != nil {
		return 0, apperr.Wrap(apperr.KindInitInvalid, "malformed initial state", err)
	}
	gs.Catalog = s.catalog
	if len(gs.Players) != 2 || gs.Players[state.Host] == nil || gs.Players[state.Away] == nil {
		return 0, apperr.New(apperr.KindInitInvalid, "initial state missing a seat")
	}

	start := kernel.Event{Type: kernel.EvtTurnStarted, Seat: gs.CurrentTurnPlayer, Turn: gs.TurnNumber, Phase: gs.CurrentPhase}
	next := kernel.Evolve(&gs, start)

	snapBytes, err := json.Marshal(next)
	if err != nil {
		return 0, apperr.Wrap(apperr.KindInternal, "marshal initial snapshot", err)
	}

	batch := store.EventBatch{MatchID: matchID, Version: 0, Events: []kernel.Event{start}, Seat: string(gs.CurrentTurnPlayer)}
	if err := s.store.AppendEventBatch(-1, store.Snapshot{MatchID: matchID, Version: 0, State: snapBytes}, batch); err != nil {
		return 0, apperr.Wrap(apperr.KindVersionMismatch, "match already started", err)
	}

	m.Status = store.StatusActive
	if err := s.store.UpdateMatch(m); err != nil {
		return 0, apperr.Wrap(apperr.KindInternal, "activate match", err)
	}
	s.log.LogBatch(matchID, 0, batch.Events)
	return 0, nil
}

// SubmitActionResult is submitAction's return value (spec §6).
type SubmitActionResult struct {
	Version int
	Events  []kernel.Event
}

// SubmitAction runs the spec §4.5 submitAction algorithm end to end.
func (s *Service) SubmitAction(matchID string, seat state.Seat, callerID string, cmd kernel.Command, expectedVersion int) (SubmitActionResult, error) {
	snap, ok, err := s.store.LatestSnapshot(matchID)
	if err != nil {
		return SubmitActionResult{}, apperr.Wrap(apperr.KindInternal, "load snapshot", err)
	}
	if ok && snap.Version != expectedVersion {
		return SubmitActionResult{}, apperr.New(apperr.KindVersionMismatch, "stale expected version")
	}

	gs, m, err := s.loadActiveState(matchID)
	if err != nil {
		return SubmitActionResult{}, err
	}
	if err := s.authorizeSeat(m, seat, callerID); err != nil {
		return SubmitActionResult{}, err
	}

	events := kernel.Decide(gs, cmd, seat)
	if len(events) == 0 {
		return SubmitActionResult{}, apperr.New(apperr.KindIllegalMove, "command is not legal in the current state")
	}

	next := kernel.EvolveAll(gs, events)
	events = append(events, kernel.ApplyStateBasedActions(next)...)
	next = kernel.EvolveAll(gs, events)

	return s.commit(matchID, m, expectedVersion, seat, cmd, next, events)
}

// Surrender submits an implicit surrender command for seat.
func (s *Service) Surrender(matchID string, seat state.Seat, callerID string, expectedVersion int) (SubmitActionResult, error) {
	return s.SubmitAction(matchID, seat, callerID, kernel.Command{Type: kernel.CmdSurrender}, expectedVersion)
}

func (s *Service) commit(matchID string, m store.Match, expectedVersion int, seat state.Seat, cmd kernel.Command, next *state.GameState, events []kernel.Event) (SubmitActionResult, error) {
	snapBytes, err := json.Marshal(next)
	if err != nil {
		return SubmitActionResult{}, apperr.Wrap(apperr.KindInternal, "marshal snapshot", err)
	}
	version := expectedVersion + 1
	batch := store.EventBatch{MatchID: matchID, Version: version, Events: events, Command: cmd, Seat: string(seat)}
	if err := s.store.AppendEventBatch(expectedVersion, store.Snapshot{MatchID: matchID, Version: version, State: snapBytes}, batch); err != nil {
		return SubmitActionResult{}, apperr.Wrap(apperr.KindVersionMismatch, "concurrent commit won the race", err)
	}

	if next.GameOver {
		m.Status = store.StatusEnded
		if err := s.store.UpdateMatch(m); err != nil {
			return SubmitActionResult{}, apperr.Wrap(apperr.KindInternal, "close match", err)
		}
	}
	s.log.LogBatch(matchID, version, events)
	return SubmitActionResult{Version: version, Events: events}, nil
}

// CancelMatch withdraws a still-waiting match before it ever activates.
func (s *Service) CancelMatch(matchID string) error {
	m, ok, err := s.store.GetMatch(matchID)
	if err != nil {
		return apperr.Wrap(apperr.KindInternal, "load match", err)
	}
	if !ok {
		return apperr.New(apperr.KindNotFound, "match not found")
	}
	if m.Status != store.StatusWaiting {
		return apperr.New(apperr.KindNotWaiting, "only a waiting match can be cancelled")
	}
	m.Status = store.StatusEnded
	if err := s.store.UpdateMatch(m); err != nil {
		return apperr.Wrap(apperr.KindInternal, "cancel match", err)
	}
	return nil
}

// GetPlayerView returns seat's masked view of the match's latest state.
// Pass an invalid seat for a spectator view (spec §4.5 authorization note).
func (s *Service) GetPlayerView(matchID string, seat state.Seat) (mask.PlayerView, error) {
	gs, err := s.loadState(matchID)
	if err != nil {
		return mask.PlayerView{}, err
	}
	return mask.Mask(gs, seat), nil
}

// GetLegalMoves enumerates seat's legal commands against the latest state.
func (s *Service) GetLegalMoves(matchID string, seat state.Seat) ([]kernel.Command, error) {
	gs, err := s.loadState(matchID)
	if err != nil {
		return nil, err
	}
	return legalmoves.LegalMoves(gs, seat), nil
}

// GetRecentEvents returns every event batch committed after sinceVersion.
func (s *Service) GetRecentEvents(matchID string, sinceVersion int) ([]store.EventBatch, error) {
	if _, ok, err := s.store.GetMatch(matchID); err != nil {
		return nil, apperr.Wrap(apperr.KindInternal, "load match", err)
	} else if !ok {
		return nil, apperr.New(apperr.KindNotFound, "match not found")
	}
	batches, err := s.store.EventsSince(matchID, sinceVersion)
	if err != nil {
		return nil, apperr.Wrap(apperr.KindInternal, "load events", err)
	}
	return batches, nil
}

// GetRecentEventsPaginated is GetRecentEvents capped to at most limit
// batches, returning the version callers should pass as sinceVersion on
// their next page request.
func (s *Service) GetRecentEventsPaginated(matchID string, sinceVersion, limit int) ([]store.EventBatch, int, error) {
	batches, err := s.GetRecentEvents(matchID, sinceVersion)
	if err != nil {
		return nil, sinceVersion, err
	}
	if limit > 0 && len(batches) > limit {
		batches = batches[:limit]
	}
	next := sinceVersion
	if len(batches) > 0 {
		next = batches[len(batches)-1].Version
	}
	return batches, next, nil
}

// GetLatestSnapshotVersion reports the version of the match's most recent
// committed snapshot.
func (s *Service) GetLatestSnapshotVersion(matchID string) (int, error) {
	snap, ok, err := s.store.LatestSnapshot(matchID)
	if err != nil {
		return 0, apperr.Wrap(apperr.KindInternal, "load snapshot", err)
	}
	if !ok {
		return 0, apperr.New(apperr.KindNotFound, "match not found")
	}
	return snap.Version, nil
}

func (s *Service) loadState(matchID string) (*state.GameState, error) {
	snap, ok, err := s.store.LatestSnapshot(matchID)
	if err != nil {
		return nil, apperr.Wrap(apperr.KindInternal, "load snapshot", err)
	}
	if !ok {
		return nil, apperr.New(apperr.KindNotFound, "match not found")
	}
	var gs state.GameState
	if err := json.Unmarshal(snap.State, &gs); err != nil {
		return nil, apperr.Wrap(apperr.KindInternal, "corrupt snapshot", err)
	}
	gs.Catalog = s.catalog
	return &gs, nil
}

func (s *Service) loadActiveState(matchID string) (*state.GameState, store.Match, error) {
	m, ok, err := s.store.GetMatch(matchID)
	if err != nil {
		return nil, store.Match{}, apperr.Wrap(apperr.KindInternal, "load match", err)
	}
	if !ok {
		return nil, store.Match{}, apperr.New(apperr.KindNotFound, "match not found")
	}
	if m.Status != store.StatusActive {
		return nil, store.Match{}, apperr.New(apperr.KindNotActive, "match is not active")
	}
	gs, err := s.loadState(matchID)
	if err != nil {
		return nil, store.Match{}, err
	}
	return gs, m, nil
}

func (s *Service) authorizeSeat(m store.Match, seat state.Seat, callerID string) error {
	var owner string
	switch seat {
	case state.Host:
		owner = m.HostID
	case state.Away:
		owner = m.AwayID
	default:
		return apperr.New(apperr.KindForbidden, "invalid seat")
	}
	if owner == "" || owner != callerID {
		return apperr.New(apperr.KindForbidden, "caller does not hold the submitted seat")
	}
	return nil
}

func (s *Service) validateDeck(deck []string) error {
	if len(deck) == 0 {
		return apperr.New(apperr.KindDeckInvalid, "deck is empty")
	}
	for _, id := range deck {
		if _, ok := s.catalog.Lookup(id); !ok {
			return apperr.New(apperr.KindDeckInvalid, "deck references unknown card "+id)
		}
	}
	return nil
}
