package game

import "errors"

// Every failed action reports one of these sentinels, wrapped with call
// context. A failed action never mutates game state.
var (
	// ErrInvalidParameter reports construction-time misuse: fewer than
	// two players, unsorted blinds, or more blinds than seats.
	ErrInvalidParameter = errors.New("invalid parameter")

	// ErrTerminal reports an action attempted after the hand ended.
	ErrTerminal = errors.New("game is terminal")

	// ErrOutOfTurn reports an action by a seat other than the actor.
	ErrOutOfTurn = errors.New("out of turn")

	// ErrWrongActorKind reports a player action while nature is to act,
	// or a deal while a player is to act.
	ErrWrongActorKind = errors.New("wrong actor kind")

	// ErrIrrelevantAction reports an action that is never applicable in
	// the current state: folding when checking is free, raising when no
	// raise is possible, showing down outside a showdown stage.
	ErrIrrelevantAction = errors.New("irrelevant action")

	// ErrInvalidAmount reports a bet or raise outside the limit's
	// advertised amounts.
	ErrInvalidAmount = errors.New("invalid amount")

	// ErrInvalidCards reports a deal of the wrong card count or of a
	// card that is not in the deck.
	ErrInvalidCards = errors.New("invalid cards")
)
