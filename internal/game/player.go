package game

import "pokerkernel/poker"

// HoleCard is a dealt card along with its exposure: cards dealt face up
// are public information, face-down cards stay private until shown.
type HoleCard struct {
	Card poker.Card
	Up   bool
}

// Player holds one seat's state for the duration of a hand.
type Player struct {
	// Stack is the chips still behind.
	Stack int

	// Bet is the chips committed to the current betting round, not yet
	// swept into the pot.
	Bet int

	// Committed is the cumulative total put in across the hand,
	// including antes and blinds. Side-pot layering works off it.
	Committed int

	// HoleCards in deal order.
	HoleCards []HoleCard

	// Mucked means the hand is dead: folded, or surrendered face down
	// at showdown. A mucked player never wins a pot.
	Mucked bool

	// Shown means the cards were revealed at showdown.
	Shown bool
}

// Total returns the chips the player can still put in play this round.
func (p *Player) Total() int {
	return p.Bet + p.Stack
}

// holeHand returns the hole cards as plain cards.
func (p *Player) holeHand() []poker.Card {
	cards := make([]poker.Card, len(p.HoleCards))
	for i, hc := range p.HoleCards {
		cards[i] = hc.Card
	}
	return cards
}

// pay moves chips from the stack into the current bet.
func (p *Player) pay(amount int) {
	p.Stack -= amount
	p.Bet += amount
	p.Committed += amount
}

// post debits a forced bet, clamped to the stack.
func (p *Player) post(amount int) int {
	amount = min(amount, p.Stack)
	p.pay(amount)
	return amount
}
