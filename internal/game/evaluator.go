package game

import "pokerkernel/poker"

// Evaluator ranks a seat's best 5-card hand. Higher values win; the
// engine never interprets the value beyond comparison.
type Evaluator interface {
	Rank(hole, board []poker.Card) poker.HandRank
}

// StandardEvaluator picks the best 5 cards from hole plus board.
type StandardEvaluator struct{}

func (StandardEvaluator) Rank(hole, board []poker.Card) poker.HandRank {
	h := poker.NewHand(hole...)
	for _, c := range board {
		h.AddCard(c)
	}
	return poker.Evaluate(h)
}

// OmahaEvaluator uses exactly two hole and three board cards.
type OmahaEvaluator struct{}

func (OmahaEvaluator) Rank(hole, board []poker.Card) poker.HandRank {
	return poker.EvaluateOmaha(hole, board)
}

// ShortDeckEvaluator applies six-plus rankings.
type ShortDeckEvaluator struct{}

func (ShortDeckEvaluator) Rank(hole, board []poker.Card) poker.HandRank {
	h := poker.NewHand(hole...)
	for _, c := range board {
		h.AddCard(c)
	}
	return poker.EvaluateShortDeck(h)
}
