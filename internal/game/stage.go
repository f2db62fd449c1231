package game

// stageKind tags the variants of the stage sum type.
type stageKind int

const (
	dealingStage stageKind = iota
	bettingStage
	showdownStage
)

// stage is one step of the hand pipeline. Dealing stages belong to
// nature; betting and showdown stages belong to a player.
type stage struct {
	kind stageKind

	// Dealing: exposure of each hole card dealt in this stage, and how
	// many board cards it adds. Targets are cumulative over all earlier
	// dealing stages, precomputed when the pipeline is built.
	holeStatuses []bool
	boardCount   int
	targetHole   int
	targetBoard  int

	// Betting: the running minimum-raise delta and the seat of the last
	// aggressor. The aggressor survives the stage close so the showdown
	// opener can be found later.
	maxDelta  int
	aggressor int

	opened bool
}

func newDealingStage(holeStatuses []bool, boardCount int) *stage {
	return &stage{kind: dealingStage, holeStatuses: holeStatuses, boardCount: boardCount, aggressor: noSeat}
}

func newBettingStage() *stage {
	return &stage{kind: bettingStage, aggressor: noSeat}
}

func newShowdownStage() *stage {
	return &stage{kind: showdownStage, aggressor: noSeat}
}

// buildStages fills in the cumulative deal targets.
func buildStages(stages []*stage) []*stage {
	hole, board := 0, 0
	for _, st := range stages {
		if st.kind != dealingStage {
			continue
		}
		hole += len(st.holeStatuses)
		board += st.boardCount
		st.targetHole = hole
		st.targetBoard = board
	}
	return stages
}

// skippable reports whether the stage has nothing left to decide. Any
// stage is skippable once at most one hand is live.
func (g *Game) skippable(st *stage) bool {
	if g.unmuckedCount() <= 1 {
		return true
	}

	switch st.kind {
	case dealingStage:
		return g.dealingDone(st)
	case bettingStage:
		return g.relevantCount() <= 1
	case showdownStage:
		for _, p := range g.players {
			if !p.Mucked && !p.Shown {
				return false
			}
		}
		return true
	}
	return false
}

// dealingDone reports whether the stage's cumulative hole and board
// targets are met.
func (g *Game) dealingDone(st *stage) bool {
	for _, p := range g.players {
		if !p.Mucked && len(p.HoleCards) != st.targetHole {
			return false
		}
	}
	return len(g.board) == st.targetBoard
}

// bettingOpener picks the first seat to act in a betting stage, or
// noSeat if nobody can. With live bets (blinds) the lowest (bet, seat)
// opens; otherwise action rotates to the first live seat with chips
// past the highest-bet seat.
func (g *Game) bettingOpener() int {
	anyBet := false
	for _, p := range g.players {
		if p.Bet > 0 {
			anyBet = true
			break
		}
	}

	if anyBet {
		opener := 0
		for seat, p := range g.players {
			if p.Bet < g.players[opener].Bet {
				opener = seat
			}
		}
		if g.hasChips(opener) {
			return opener
		}
		return g.nextWithChips(opener + 1)
	}

	highest := 0
	for seat, p := range g.players {
		if p.Bet >= g.players[highest].Bet {
			highest = seat
		}
	}
	return g.nextWithChips(highest + 1)
}

// nextWithChips walks clockwise from the given seat (inclusive, with
// wrap-around) to the first live seat with chips behind, or noSeat.
func (g *Game) nextWithChips(from int) int {
	n := len(g.players)
	for i := 0; i < n; i++ {
		seat := (from + i) % n
		if g.hasChips(seat) {
			return seat
		}
	}
	return noSeat
}

// showdownOpener picks who must show first: the most recent aggressor
// while anyone with chips behind is still live, else the first live
// seat in order.
func (g *Game) showdownOpener() int {
	chipsBehind := false
	for _, p := range g.players {
		if !p.Mucked && p.Stack > 0 {
			chipsBehind = true
			break
		}
	}

	if chipsBehind {
		for i := g.stageIdx - 1; i >= 0; i-- {
			st := g.stages[i]
			if st.kind == bettingStage && st.aggressor != noSeat {
				if !g.players[st.aggressor].Mucked {
					return st.aggressor
				}
				break
			}
		}
	}

	for seat, p := range g.players {
		if !p.Mucked {
			return seat
		}
	}
	return noSeat
}
