package game

import (
	"fmt"
	"math/rand"

	"pokerkernel/poker"
)

// Option overrides a collaborator at construction, mainly for tests
// and non-default limits.
type Option func(*options)

type options struct {
	deck  *poker.Deck
	eval  Evaluator
	limit Limit
}

// WithDeck replaces the game's card source, e.g. a deck built from a
// known seed.
func WithDeck(d *poker.Deck) Option {
	return func(o *options) { o.deck = d }
}

// WithEvaluator replaces the hand evaluator.
func WithEvaluator(e Evaluator) Option {
	return func(o *options) { o.eval = e }
}

// WithLimit replaces the bet-sizing policy, e.g. LazyNoLimit.
func WithLimit(l Limit) Option {
	return func(o *options) { o.limit = l }
}

func applyOptions(deck *poker.Deck, eval Evaluator, limit Limit, opts []Option) options {
	o := options{deck: deck, eval: eval, limit: limit}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// holeDown builds the face-down exposure bits for n hole cards.
func holeDown(n int) []bool {
	return make([]bool, n)
}

// boardStages is the flop-turn-river tail shared by the hold'em family.
func boardStages() []*stage {
	return []*stage{
		newDealingStage(nil, 3),
		newBettingStage(),
		newDealingStage(nil, 1),
		newBettingStage(),
		newDealingStage(nil, 1),
		newBettingStage(),
		newShowdownStage(),
	}
}

// NewNLHE creates a no-limit Texas hold'em hand: two private hole
// cards, four betting rounds, five board cards. Blinds are a sorted
// (small, big) pair.
func NewNLHE(rng *rand.Rand, ante int, blinds, stacks []int, opts ...Option) (*Game, error) {
	if len(blinds) != 2 {
		return nil, fmt.Errorf("%w: hold'em takes exactly 2 blinds, got %d", ErrInvalidParameter, len(blinds))
	}

	o := applyOptions(poker.NewDeck(rng), StandardEvaluator{}, NoLimit{}, opts)
	stages := append([]*stage{
		newDealingStage(holeDown(2), 0),
		newBettingStage(),
	}, boardStages()...)

	return newGame(o.deck, o.eval, o.limit, stages, ante, blinds, stacks)
}

// NewPLO creates a pot-limit Omaha hand: four private hole cards,
// pot-limit sizing, best hand from exactly two hole and three board
// cards.
func NewPLO(rng *rand.Rand, ante int, blinds, stacks []int, opts ...Option) (*Game, error) {
	if len(blinds) != 2 {
		return nil, fmt.Errorf("%w: omaha takes exactly 2 blinds, got %d", ErrInvalidParameter, len(blinds))
	}

	o := applyOptions(poker.NewDeck(rng), OmahaEvaluator{}, PotLimit{}, opts)
	stages := append([]*stage{
		newDealingStage(holeDown(4), 0),
		newBettingStage(),
	}, boardStages()...)

	return newGame(o.deck, o.eval, o.limit, stages, ante, blinds, stacks)
}

// NewShortDeck creates a no-limit six-plus hold'em hand: the deck
// drops ranks two through five and six-plus rankings apply. A single
// blind may be posted; with blind zero the game is ante-only and the
// ante sets the opening bet size.
func NewShortDeck(rng *rand.Rand, ante, blind int, stacks []int, opts ...Option) (*Game, error) {
	if blind < 0 {
		return nil, fmt.Errorf("%w: negative blind %d", ErrInvalidParameter, blind)
	}

	var blinds []int
	if blind > 0 {
		blinds = []int{blind}
	}

	o := applyOptions(poker.NewShortDeck(rng), ShortDeckEvaluator{}, NoLimit{}, opts)
	stages := append([]*stage{
		newDealingStage(holeDown(2), 0),
		newBettingStage(),
	}, boardStages()...)

	return newGame(o.deck, o.eval, o.limit, stages, ante, blinds, stacks)
}
