package script

import (
	"fmt"
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pokerkernel/internal/game"
	"pokerkernel/poker"
)

// playNLHE builds an ante-1, blinds-1/2 no-limit hold'em hand, deals
// the given hole cards, then interleaves player tokens with board
// deals the way a transcript replays: board sets are consumed whenever
// nature is to act. Any pending showdown resolves with non-forced
// reveals.
func playNLHE(t *testing.T, stacks []int, holes, boards []string, tokens string) *game.Game {
	t.Helper()

	g, err := game.NewNLHE(rand.New(rand.NewSource(1)), 1, []int{1, 2}, stacks)
	require.NoError(t, err)

	for seat, h := range holes {
		require.NoError(t, Run(g, fmt.Sprintf("dp %d %s", seat, h)))
	}

	toks := strings.Fields(tokens)
	ti, bi := 0, 0
	for {
		actor := g.Actor()
		if actor.Kind == game.ActorNature && bi < len(boards) {
			require.NoError(t, Run(g, "db "+boards[bi]))
			bi++
			continue
		}
		if actor.Kind == game.ActorPlayer && ti < len(toks) {
			la := g.LegalActions()
			if len(la) == 1 && la[0].Type == game.ActionShowdown {
				break
			}
			require.NoError(t, Run(g, toks[ti]))
			ti++
			continue
		}
		break
	}
	require.Equal(t, len(toks), ti, "unconsumed player tokens")
	require.Equal(t, len(boards), bi, "undealt board sets")

	require.NoError(t, Finish(g))
	return g
}

func stacksOf(g *game.Game) []int {
	stacks := make([]int, len(g.Players()))
	for i, p := range g.Players() {
		stacks[i] = p.Stack
	}
	return stacks
}

func showsOf(g *game.Game) []bool {
	shows := make([]bool, len(g.Players()))
	for i, p := range g.Players() {
		shows[i] = p.Shown
	}
	return shows
}

var holdemBoard = []string{"AcAsKc", "Qs", "Qc"}

func TestHoldemDistributionScenarios(t *testing.T) {
	t.Parallel()

	quadRace := []string{"QdQh", "AhAd"}
	fourWay := []string{"QdQh", "AhAd", "KsKh", "JsJd"}
	sixWay := []string{"QdQh", "AhAd", "KsKh", "JsJd", "JcJh", "TsTh"}

	tests := []struct {
		name   string
		stacks []int
		holes  []string
		boards []string
		tokens string
		want   []int
	}{
		{"all-in three bet", []int{200, 100}, quadRace, holdemBoard, "b6 b199 c", []int{100, 200}},
		{"all-in shove call", []int{200, 100}, quadRace, holdemBoard, "b99 c", []int{100, 200}},
		{"raised check-down", []int{200, 100}, quadRace, holdemBoard, "b6 c c c c c c c", []int{193, 107}},
		{"check-down", []int{200, 100}, quadRace, holdemBoard, "c c c c c c c c", []int{197, 103}},
		{"uncalled flop bet", []int{200, 100}, quadRace, []string{"AcAsKc"}, "b4 c b6 f", []int{205, 95}},
		{"covering shove", []int{200, 100, 300, 200}, fourWay, holdemBoard, "b299 c c c", []int{300, 400, 100, 0}},
		{"limped check-down", []int{200, 100, 300, 200}, fourWay, holdemBoard,
			"f b6 c c c c c c c c c c c", []int{193, 115, 299, 193}},
		{"bet fold lines", []int{200, 100, 300, 200}, fourWay, holdemBoard,
			"f b6 c c c c b10 b20 c f c c c b50 c", []int{123, 195, 299, 183}},
		{"flop all-in", []int{200, 100, 300, 200}, fourWay, holdemBoard,
			"b6 c c c c c b10 b20 c b93 c c c c c c c c c", []int{100, 400, 200, 100}},
		{"turn barrel", []int{200, 100, 300, 200}, fourWay, holdemBoard,
			"b6 c c c c c b10 b20 c b93 c c c b50 c c c c c", []int{200, 400, 150, 50}},
		{"side pot shove", []int{200, 100, 300, 200}, fourWay, holdemBoard, "f b199 c c", []int{200, 301, 299, 0}},
		{"four-way scoop", []int{100, 100, 100, 100}, fourWay, holdemBoard, "b99 c c c", []int{0, 400, 0, 0}},
		{"six-way all-in", []int{200, 100, 300, 200, 200, 150}, sixWay, holdemBoard,
			"c c c b149 c c c c c c c c c c c c c c c c c", []int{300, 600, 150, 50, 50, 0}},
		{"everyone folds", []int{200, 100, 300, 200, 200, 150}, sixWay, nil,
			"b50 f f f f f", []int{198, 97, 308, 199, 199, 149}},
		{"royal side pots", []int{200, 100, 300, 200, 200, 150},
			[]string{"QdQh", "AhAd", "KsKh", "JsJd", "TsTh", "JcTc"}, holdemBoard,
			"b50 b199 c c c c f", []int{150, 0, 249, 0, 0, 751}},
		{"both broke", []int{0, 0}, quadRace, holdemBoard, "", []int{0, 0}},
		{"one chip button", []int{1, 0}, quadRace, holdemBoard, "", []int{1, 0}},
		{"one chip blind", []int{0, 1}, quadRace, holdemBoard, "", []int{0, 1}},
		{"two and one", []int{2, 1}, quadRace, holdemBoard, "", []int{1, 2}},
		{"blind refund", []int{50, 1}, quadRace, holdemBoard, "", []int{49, 2}},
		{"four broke seats", []int{0, 0, 0, 0}, fourWay, holdemBoard, "", []int{0, 0, 0, 0}},
		{"micro stacks", []int{1, 1, 5, 5}, fourWay, holdemBoard, "b4 c", []int{0, 4, 8, 0}},
		{"fold around shorts", []int{7, 0, 9, 7},
			[]string{"4h8s", "AsQs", "Ac8d", "AhQh"}, []string{"Ad3s2h", "8h", "Ts"}, "f f", []int{9, 0, 8, 6}},
		{"forced bets only", []int{1, 17, 0, 1},
			[]string{"3d6c", "8sAh", "Ad8c", "KcQs"}, []string{"4c7h5s", "Ts", "3c"}, "", []int{3, 16, 0, 0}},
		{"blind side pot flush", []int{2, 16, 0, 1},
			[]string{"AcKs", "8h2c", "6h6c", "2dTd"}, []string{"8d5c4d", "Qh", "5d"}, "", []int{0, 16, 0, 3}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			g := playNLHE(t, tt.stacks, tt.holes, tt.boards, tt.tokens)
			require.True(t, g.Terminal())
			assert.Equal(t, tt.want, stacksOf(g))
			assert.Zero(t, g.Pot())

			total, start := 0, 0
			for i, p := range g.Players() {
				total += p.Stack
				start += tt.stacks[i]
			}
			assert.Equal(t, start, total, "chips conserved")
		})
	}
}

func TestHoldemShowdownScenarios(t *testing.T) {
	t.Parallel()

	quadRace := []string{"QdQh", "AhAd"}
	fourWay := []string{"QdQh", "AhAd", "KsKh", "JsJd"}

	tests := []struct {
		name   string
		stacks []int
		holes  []string
		boards []string
		tokens string
		want   []bool
	}{
		{"both all-in show", []int{200, 100}, quadRace, holdemBoard, "b6 b199 c", []bool{true, true}},
		{"beaten caller mucks", []int{200, 100}, quadRace, holdemBoard, "b99 c", []bool{false, true}},
		{"check-down shows", []int{200, 100}, quadRace, holdemBoard, "c c c c c c c c", []bool{true, true}},
		{"fold-out shows nothing", []int{200, 100}, quadRace, []string{"AcAsKc"}, "b4 c b6 f", []bool{false, false}},
		{"beaten side hands muck", []int{200, 100, 300, 200}, fourWay, holdemBoard,
			"b299 c c c", []bool{true, true, true, false}},
		{"dead stacks still show", []int{100, 100, 100, 100}, fourWay, holdemBoard,
			"b99 c c c", []bool{true, true, false, false}},
		{"tied ace high shows", []int{1, 17, 0, 1},
			[]string{"3d6c", "8sAh", "Ad8c", "KcQs"}, []string{"4c7h5s", "Ts", "3c"}, "",
			[]bool{true, true, true, false}},
		{"flush over two pair", []int{2, 16, 0, 1},
			[]string{"AcKs", "8h2c", "6h6c", "2dTd"}, []string{"8d5c4d", "Qh", "5d"}, "",
			[]bool{false, true, false, true}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			g := playNLHE(t, tt.stacks, tt.holes, tt.boards, tt.tokens)
			assert.Equal(t, tt.want, showsOf(g))
		})
	}
}

func TestTokenErrors(t *testing.T) {
	t.Parallel()

	g, err := game.NewNLHE(rand.New(rand.NewSource(1)), 1, []int{1, 2}, []int{200, 100})
	require.NoError(t, err)

	require.Error(t, Run(g, "xyz"), "unknown token")
	require.Error(t, Run(g, "br"), "missing amount")
	require.Error(t, Run(g, "br ten"), "non-numeric amount")
	require.Error(t, Run(g, "dp 0"), "missing cards")
	require.Error(t, Run(g, "dp zero QdQh"), "bad seat")
	require.Error(t, Run(g, "dp 0 Qx"), "bad cards")
	require.Error(t, Run(g, "f"), "player token while nature acts")
}

func TestTokenStreamDrivesWholeHand(t *testing.T) {
	t.Parallel()

	g, err := game.NewNLHE(rand.New(rand.NewSource(1)), 1, []int{1, 2}, []int{200, 100})
	require.NoError(t, err)

	stream := "dp 0 QdQh dp 1 AhAd b6 b199 c db AcAsKc db Qs db Qc s 0 s 0"
	require.NoError(t, Run(g, stream))
	require.True(t, g.Terminal())
	assert.Equal(t, []int{100, 200}, stacksOf(g))
	assert.Equal(t, []bool{true, true}, showsOf(g))
}

func TestRunStopsAtFirstError(t *testing.T) {
	t.Parallel()

	g, err := game.NewNLHE(rand.New(rand.NewSource(1)), 1, []int{1, 2}, []int{200, 100})
	require.NoError(t, err)
	require.NoError(t, Run(g, "dp 0 QdQh dp 1 AhAd"))

	// The raise below the minimum fails and the fold is never applied
	err = Run(g, "b3 f")
	require.Error(t, err)
	assert.ErrorIs(t, err, game.ErrInvalidAmount)
	assert.False(t, g.Players()[1].Mucked)
}

func TestHistoryReplayRoundTrip(t *testing.T) {
	t.Parallel()

	g := playNLHE(t, []int{200, 100, 300, 200},
		[]string{"QdQh", "AhAd", "KsKh", "JsJd"}, holdemBoard,
		"f b6 c c c c b10 b20 c f c c c b50 c")

	// Replaying the recorded history into a fresh game reproduces the
	// terminal state exactly.
	replay, err := game.NewNLHE(rand.New(rand.NewSource(99)), 1, []int{1, 2}, []int{200, 100, 300, 200})
	require.NoError(t, err)
	require.NoError(t, Run(replay, strings.Join(g.History(), " ")))

	require.True(t, replay.Terminal())
	assert.Equal(t, stacksOf(g), stacksOf(replay))
	assert.Equal(t, showsOf(g), showsOf(replay))
	assert.Equal(t, g.History(), replay.History())
}

func TestShortDeckPreflop(t *testing.T) {
	t.Parallel()

	stacks := []int{495000, 232000, 362000, 403000, 301000, 204000}
	g, err := game.NewShortDeck(rand.New(rand.NewSource(1)), 3000, 3000, stacks)
	require.NoError(t, err)

	deals := "dp 0 Th8h dp 1 QsJd dp 2 QhQd dp 3 8d7c dp 4 KhKs dp 5 8c7h"
	require.NoError(t, Run(g, deals))

	// Blind-only preflop: everyone calls the button blind and the flop
	// deal is pending.
	require.NoError(t, Run(g, "cc cc cc cc cc cc"))
	assert.Equal(t, game.ActorNature, g.Actor().Kind)
}

func TestShortDeckPreflopRaise(t *testing.T) {
	t.Parallel()

	stacks := []int{495000, 232000, 362000, 403000, 301000, 204000}
	g, err := game.NewShortDeck(rand.New(rand.NewSource(1)), 3000, 3000, stacks)
	require.NoError(t, err)

	require.NoError(t, Run(g, "dp 0 Th8h dp 1 QsJd dp 2 QhQd dp 3 8d7c dp 4 KhKs dp 5 8c7h"))
	require.NoError(t, Run(g, "cc cc cc cc cc br 35000 cc cc cc cc cc"))
	assert.Equal(t, game.ActorNature, g.Actor().Kind)
}

func TestShortDeckRejectsLowCards(t *testing.T) {
	t.Parallel()

	g, err := game.NewShortDeck(rand.New(rand.NewSource(1)), 1, 2, []int{200, 200})
	require.NoError(t, err)

	err = Run(g, "dp 0 2c3c")
	require.Error(t, err)
	assert.ErrorIs(t, err, game.ErrInvalidCards)
}

func TestFinishLeavesNonShowdownStatesAlone(t *testing.T) {
	t.Parallel()

	g, err := game.NewNLHE(rand.New(rand.NewSource(1)), 1, []int{1, 2}, []int{200, 100})
	require.NoError(t, err)

	require.NoError(t, Finish(g))
	assert.False(t, g.Terminal())
	assert.Equal(t, game.ActorNature, g.Actor().Kind)
}

func TestDealtCardLeavesDeck(t *testing.T) {
	t.Parallel()

	g, err := game.NewNLHE(rand.New(rand.NewSource(1)), 1, []int{1, 2}, []int{200, 100})
	require.NoError(t, err)
	require.NoError(t, Run(g, "dp 0 QdQh"))

	qd, err := poker.ParseCard("Qd")
	require.NoError(t, err)
	assert.False(t, g.Deck().Contains(qd))

	// The same card cannot be dealt twice
	err = Run(g, "dp 1 QdQs")
	require.Error(t, err)
	assert.ErrorIs(t, err, game.ErrInvalidCards)
}
