// Package setup builds the seeded initial GameState a caller serializes
// and hands to service.StartMatch (spec §4.5: "deck shuffles already
// applied from a seeded RNG"). Grounded on the teacher's Duel.Run setup
// step — shuffle both decks, then deal InitialHandSize cards to each seat
// before the duel proper begins.
package setup

import (
	"github.com/tcgx-game/duelcore/internal/catalog"
	"github.com/tcgx-game/duelcore/internal/rng"
	"github.com/tcgx-game/duelcore/internal/state"
)

// InitialHandSize is the number of cards each seat draws before turn 1,
// unchanged from the teacher's constant of the same meaning.
const InitialHandSize = 5

// NewInitialState builds a fresh GameState for hostDeck/awayDeck (each a
// flat list of catalog definition ids, one entry per copy), shuffled with
// a stream seeded from seed, with opening hands already dealt.
func NewInitialState(cfg state.Config, cat *catalog.Catalog, seed int64, hostDeck, awayDeck []string) *state.GameState {
	gs := state.New(cfg, cat, seed)
	stream := rng.New(seed)

	host := append([]string(nil), hostDeck...)
	away := append([]string(nil), awayDeck...)
	stream.Shuffle(len(host), func(i, j int) { host[i], host[j] = host[j], host[i] })
	stream.Shuffle(len(away), func(i, j int) { away[i], away[j] = away[j], away[i] })

	decks := map[state.Seat][]string{state.Host: host, state.Away: away}
	for _, seat := range []state.Seat{state.Host, state.Away} {
		ps := gs.Players[seat]
		for _, defID := range decks[seat] {
			instanceID := gs.NextInstanceID(defID)
			gs.InstanceToDefinition[instanceID] = defID
			ps.Deck = append(ps.Deck, instanceID)
		}
	}

	for i := 0; i < InitialHandSize; i++ {
		for _, seat := range []state.Seat{state.Host, state.Away} {
			ps := gs.Players[seat]
			if len(ps.Deck) == 0 {
				continue
			}
			ps.Hand = append(ps.Hand, ps.Deck[len(ps.Deck)-1])
			ps.Deck = ps.Deck[:len(ps.Deck)-1]
		}
	}

	gs.RNGSeed = stream.Seed()
	gs.GameStarted = true
	return gs
}
