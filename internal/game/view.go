package game

import "pokerkernel/poker"

// Omniscient is the observer seat that sees every card.
const Omniscient = -1

// Snapshot is a read-only projection of the game for one observer.
type Snapshot struct {
	Actor    Actor
	Pot      int
	Board    []poker.Card
	Players  []PlayerSnapshot
	Terminal bool
}

// PlayerSnapshot mirrors one seat with hidden cards elided.
type PlayerSnapshot struct {
	Stack     int
	Bet       int
	Committed int
	Mucked    bool
	Shown     bool
	HoleCards []VisibleCard
}

// VisibleCard is a dealt card as one observer sees it: Card is zero
// while Hidden is set.
type VisibleCard struct {
	Card   poker.Card
	Hidden bool
}

// View projects the game state for the given observer seat, eliding
// the face-down hole cards of other seats. Pass Omniscient to see
// everything.
func (g *Game) View(observer int) Snapshot {
	snap := Snapshot{
		Actor:    g.Actor(),
		Pot:      g.pot,
		Board:    g.Board(),
		Players:  make([]PlayerSnapshot, len(g.players)),
		Terminal: g.terminal,
	}

	for seat, p := range g.players {
		ps := PlayerSnapshot{
			Stack:     p.Stack,
			Bet:       p.Bet,
			Committed: p.Committed,
			Mucked:    p.Mucked,
			Shown:     p.Shown,
			HoleCards: make([]VisibleCard, len(p.HoleCards)),
		}

		for i, hc := range p.HoleCards {
			visible := hc.Up || seat == observer || observer == Omniscient || p.Shown
			if visible {
				ps.HoleCards[i] = VisibleCard{Card: hc.Card}
			} else {
				ps.HoleCards[i] = VisibleCard{Hidden: true}
			}
		}
		snap.Players[seat] = ps
	}
	return snap
}
