package game

import (
	"fmt"

	"pokerkernel/poker"
)

// ActionType identifies an action verb.
type ActionType int

const (
	ActionFold ActionType = iota
	ActionCheckCall
	ActionBetRaise
	ActionShowdown
	ActionDealHole
	ActionDealBoard
)

func (t ActionType) String() string {
	return [...]string{"fold", "check-call", "bet-raise", "showdown", "deal-hole", "deal-board"}[t]
}

// LegalAction describes one applicable verb and its parameter range.
type LegalAction struct {
	Type ActionType

	// Seat is the acting seat, or the deal target for ActionDealHole.
	Seat int

	// Min and Max bound bet-raise totals. With Lazy set only the two
	// boundary amounts are accepted.
	Min, Max int
	Lazy     bool

	// Count is the number of cards for a deal action.
	Count int
}

func (g *Game) verifyPlayerAction(seat int) error {
	if g.terminal {
		return ErrTerminal
	}
	if g.actor == natureSeat {
		return fmt.Errorf("%w: nature is to act", ErrWrongActorKind)
	}
	if seat != g.actor {
		return fmt.Errorf("%w: seat %d cannot act, seat %d is to act", ErrOutOfTurn, seat, g.actor)
	}
	return nil
}

func (g *Game) verifyNatureAction() error {
	if g.terminal {
		return ErrTerminal
	}
	if g.actor != natureSeat {
		return fmt.Errorf("%w: seat %d is to act", ErrWrongActorKind, g.actor)
	}
	return nil
}

// Fold mucks the actor's hand. Folding is refused when checking is
// free, so a hand cannot be thrown away by accident.
func (g *Game) Fold(seat int) error {
	if err := g.verifyPlayerAction(seat); err != nil {
		return err
	}
	if g.currentStage().kind != bettingStage {
		return fmt.Errorf("%w: fold outside a betting round", ErrIrrelevantAction)
	}

	p := g.players[seat]
	if p.Bet >= g.maxBet() {
		return fmt.Errorf("%w: checking is free", ErrIrrelevantAction)
	}

	p.Mucked = true
	g.record("f")
	g.advanceBetting()
	return nil
}

// CheckCall matches the current bet, or checks when nothing is owed.
// Short stacks call all-in for less.
func (g *Game) CheckCall(seat int) error {
	if err := g.verifyPlayerAction(seat); err != nil {
		return err
	}
	if g.currentStage().kind != bettingStage {
		return fmt.Errorf("%w: check or call outside a betting round", ErrIrrelevantAction)
	}

	p := g.players[seat]
	target := min(g.maxBet(), p.Total())
	p.pay(target - p.Bet)
	g.record("cc")
	g.advanceBetting()
	return nil
}

// BetRaise sets the actor's total bet for the round to amount. The
// amount must fall within the limit's advertised range.
func (g *Game) BetRaise(seat, amount int) error {
	if err := g.verifyPlayerAction(seat); err != nil {
		return err
	}
	st := g.currentStage()
	if st.kind != bettingStage {
		return fmt.Errorf("%w: bet or raise outside a betting round", ErrIrrelevantAction)
	}
	if g.relevantCount() < 2 {
		return fmt.Errorf("%w: no opponent can respond to a raise", ErrIrrelevantAction)
	}

	p := g.players[seat]
	maxBet := g.maxBet()
	if maxBet >= p.Total() {
		return fmt.Errorf("%w: stack is covered, can only call", ErrIrrelevantAction)
	}

	minAmount, maxAmount := g.limit.Amounts(g)
	if g.limit.Lazy() {
		if amount != minAmount && amount != maxAmount {
			return fmt.Errorf("%w: %d is neither %d nor %d", ErrInvalidAmount, amount, minAmount, maxAmount)
		}
	} else if amount < minAmount || amount > maxAmount {
		return fmt.Errorf("%w: %d outside [%d, %d]", ErrInvalidAmount, amount, minAmount, maxAmount)
	}

	p.pay(amount - p.Bet)
	st.maxDelta = max(st.maxDelta, amount-maxBet)
	st.aggressor = seat
	g.record("br %d", amount)
	g.advanceBetting()
	return nil
}

// Showdown reveals or mucks the actor's hand. Without force the hand is
// shown only if it can still win a share of some pot against the hands
// already shown; otherwise it is surrendered face down.
func (g *Game) Showdown(seat int, force bool) error {
	if err := g.verifyPlayerAction(seat); err != nil {
		return err
	}
	if g.currentStage().kind != showdownStage {
		return fmt.Errorf("%w: showdown outside a showdown stage", ErrIrrelevantAction)
	}

	p := g.players[seat]
	if force || g.canWinShowing(seat) {
		p.Shown = true
	} else {
		p.Mucked = true
	}

	forced := 0
	if force {
		forced = 1
	}
	g.record("s %d", forced)
	g.advanceShowdown()
	return nil
}

// DealHole deals the stage's hole cards to one seat. Cards are taken
// from the deck; nil cards means draw at random. Each live seat is
// dealt once per dealing stage, in whatever order the caller picks.
func (g *Game) DealHole(seat int, cards []poker.Card) error {
	if err := g.verifyNatureAction(); err != nil {
		return err
	}
	if seat < 0 || seat >= len(g.players) {
		return fmt.Errorf("%w: no seat %d", ErrInvalidParameter, seat)
	}

	st := g.currentStage()
	if len(st.holeStatuses) == 0 {
		return fmt.Errorf("%w: no hole cards are dealt in this stage", ErrIrrelevantAction)
	}

	p := g.players[seat]
	if p.Mucked {
		return fmt.Errorf("%w: seat %d has mucked", ErrIrrelevantAction, seat)
	}
	needed := st.targetHole - len(p.HoleCards)
	if needed <= 0 {
		return fmt.Errorf("%w: seat %d already has its cards", ErrIrrelevantAction, seat)
	}

	var err error
	if cards == nil {
		if cards, err = g.deck.Draw(needed); err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidCards, err)
		}
	} else {
		if len(cards) != needed {
			return fmt.Errorf("%w: seat %d needs %d cards, got %d", ErrInvalidCards, seat, needed, len(cards))
		}
		if err = g.deck.Take(cards...); err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidCards, err)
		}
	}

	statuses := st.holeStatuses[len(st.holeStatuses)-needed:]
	for i, c := range cards {
		p.HoleCards = append(p.HoleCards, HoleCard{Card: c, Up: statuses[i]})
	}

	g.record("dp %d %s", seat, poker.NewHand(cards...))
	g.advanceDealing()
	return nil
}

// DealBoard deals the stage's board cards. Cards are taken from the
// deck; nil cards means draw at random.
func (g *Game) DealBoard(cards []poker.Card) error {
	if err := g.verifyNatureAction(); err != nil {
		return err
	}

	st := g.currentStage()
	if st.boardCount == 0 {
		return fmt.Errorf("%w: no board cards are dealt in this stage", ErrIrrelevantAction)
	}
	needed := st.targetBoard - len(g.board)
	if needed <= 0 {
		return fmt.Errorf("%w: the board is already dealt", ErrIrrelevantAction)
	}

	var err error
	if cards == nil {
		if cards, err = g.deck.Draw(needed); err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidCards, err)
		}
	} else {
		if len(cards) != needed {
			return fmt.Errorf("%w: board needs %d cards, got %d", ErrInvalidCards, needed, len(cards))
		}
		if err = g.deck.Take(cards...); err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidCards, err)
		}
	}

	g.board = append(g.board, cards...)
	g.record("db %s", poker.NewHand(cards...))
	g.advanceDealing()
	return nil
}

// LegalActions describes every applicable verb with its parameter
// range. An empty result means the hand is terminal.
func (g *Game) LegalActions() []LegalAction {
	if g.terminal {
		return nil
	}

	if g.actor == natureSeat {
		st := g.currentStage()
		var actions []LegalAction
		for seat, p := range g.players {
			if p.Mucked {
				continue
			}
			if needed := st.targetHole - len(p.HoleCards); needed > 0 {
				actions = append(actions, LegalAction{Type: ActionDealHole, Seat: seat, Count: needed})
			}
		}
		if st.boardCount > 0 && len(g.board) < st.targetBoard {
			actions = append(actions, LegalAction{Type: ActionDealBoard, Count: st.targetBoard - len(g.board)})
		}
		return actions
	}

	if g.currentStage().kind == showdownStage {
		return []LegalAction{{Type: ActionShowdown, Seat: g.actor}}
	}

	p := g.players[g.actor]
	actions := []LegalAction{{Type: ActionCheckCall, Seat: g.actor}}
	if p.Bet < g.maxBet() {
		actions = append(actions, LegalAction{Type: ActionFold, Seat: g.actor})
	}
	if g.relevantCount() >= 2 && g.maxBet() < p.Total() {
		minAmount, maxAmount := g.limit.Amounts(g)
		actions = append(actions, LegalAction{
			Type: ActionBetRaise,
			Seat: g.actor,
			Min:  minAmount,
			Max:  maxAmount,
			Lazy: g.limit.Lazy(),
		})
	}
	return actions
}
