package kernel

import "github.com/tcgx-game/duelcore/internal/state"

// ApplyStateBasedActions evaluates SBAs to fixpoint (spec §4.1.6),
// returning every event the cascade produced. Callers fold a command's own
// events first, then call this against the resulting state and fold its
// output too — the full event batch is the concatenation of both.
func ApplyStateBasedActions(gs *state.GameState) []Event {
	var all []Event
	cur := gs
	for {
		fired := sbaPass(cur)
		if len(fired) == 0 {
			return all
		}
		all = append(all, fired...)
		cur = EvolveAll(cur, fired)
		if cur.GameOver {
			return all
		}
	}
}

func sbaPass(gs *state.GameState) []Event {
	for _, seat := range [2]state.Seat{state.Host, state.Away} {
		if gs.Players[seat].LifePoints <= 0 {
			return []Event{{Type: EvtGameEnded, Winner: seat.Opponent(), WinReason: WinReasonLPZero}}
		}
	}

	if gs.CurrentPhase == state.PhaseDraw {
		active := gs.CurrentTurnPlayer
		if len(gs.Players[active].Deck) == 0 {
			return []Event{
				{Type: EvtDeckOut, Seat: active},
				{Type: EvtGameEnded, Winner: active.Opponent(), WinReason: WinReasonDeckOut},
			}
		}
	}

	for _, seat := range [2]state.Seat{state.Host, state.Away} {
		if gs.Players[seat].BreakdownsCaused >= gs.Config.MaxBreakdownsToWin {
			return []Event{{Type: EvtGameEnded, Winner: seat, WinReason: WinReasonBreakdown}}
		}
	}

	if gs.CurrentPhase == state.PhaseEnd {
		for _, seat := range [2]state.Seat{state.Host, state.Away} {
			ps := gs.Players[seat]
			if excess := len(ps.Hand) - gs.Config.MaxHandSize; excess > 0 {
				var events []Event
				for i := 0; i < excess; i++ {
					cardID := ps.Hand[len(ps.Hand)-1-i]
					events = append(events, Event{Type: EvtCardSentToGraveyard, SourceSeat: seat, CardID: cardID, From: state.FromHand})
				}
				return events
			}
		}
	}

	for _, seat := range [2]state.Seat{state.Host, state.Away} {
		for _, b := range gs.Players[seat].Board {
			if b.ViceCounters >= gs.Config.BreakdownThreshold {
				return []Event{
					{Type: EvtBreakdownTriggered, Seat: seat, CardID: b.CardID},
					{Type: EvtCardDestroyed, SourceSeat: seat, CardID: b.CardID, Reason: "breakdown"},
					{Type: EvtCardSentToGraveyard, SourceSeat: seat, CardID: b.CardID, From: state.FromBoard},
				}
			}
		}
	}

	return nil
}
