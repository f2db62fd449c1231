// Package script drives a game from a whitespace-separated token
// stream, the notation used in hand transcripts:
//
//	f            fold
//	c, cc        check or call
//	b<n>, br <n> bet or raise to a total of n
//	s [0|1]      showdown, optionally forced
//	dp <i> <cs>  deal hole cards to seat i (dh is accepted too)
//	db <cs>      deal board cards
//
// Cards are concatenated two-character rank+suit strings ("AcAsKc").
package script

import (
	"fmt"
	"strconv"
	"strings"

	"pokerkernel/internal/game"
	"pokerkernel/poker"
)

// Run applies the token stream to the game, stopping at the first
// failing token.
func Run(g *game.Game, input string) error {
	toks := strings.Fields(input)

	for i := 0; i < len(toks); i++ {
		tok := toks[i]

		// Tokens with operands consume the following fields.
		take := func() (string, error) {
			if i+1 >= len(toks) {
				return "", fmt.Errorf("token %q is missing an operand", tok)
			}
			i++
			return toks[i], nil
		}

		var err error
		switch {
		case tok == "f":
			err = g.Fold(actorSeat(g))

		case tok == "c" || tok == "cc":
			err = g.CheckCall(actorSeat(g))

		case tok == "br":
			var operand string
			if operand, err = take(); err == nil {
				err = betRaise(g, operand)
			}

		case len(tok) > 1 && tok[0] == 'b' && digits(tok[1:]):
			err = betRaise(g, tok[1:])

		case tok == "s":
			force := false
			if i+1 < len(toks) && (toks[i+1] == "0" || toks[i+1] == "1") {
				i++
				force = toks[i] == "1"
			}
			err = g.Showdown(actorSeat(g), force)

		case tok == "dp" || tok == "dh":
			var seatTok, cardsTok string
			if seatTok, err = take(); err != nil {
				break
			}
			if cardsTok, err = take(); err != nil {
				break
			}
			var seat int
			if seat, err = strconv.Atoi(seatTok); err != nil {
				err = fmt.Errorf("invalid seat %q", seatTok)
				break
			}
			var cards []poker.Card
			if cards, err = poker.ParseCards(cardsTok); err != nil {
				break
			}
			err = g.DealHole(seat, cards)

		case tok == "db":
			var cardsTok string
			if cardsTok, err = take(); err != nil {
				break
			}
			var cards []poker.Card
			if cards, err = poker.ParseCards(cardsTok); err != nil {
				break
			}
			err = g.DealBoard(cards)

		default:
			err = fmt.Errorf("unknown token %q", tok)
		}

		if err != nil {
			return fmt.Errorf("token %d (%q): %w", i+1, tok, err)
		}
	}
	return nil
}

// Finish resolves a pending showdown with non-forced reveals so the
// hand reaches its terminal state. It stops quietly if the game is
// waiting for anything other than showdowns.
func Finish(g *game.Game) error {
	for !g.Terminal() {
		actor := g.Actor()
		if actor.Kind != game.ActorPlayer {
			return nil
		}
		actions := g.LegalActions()
		if len(actions) != 1 || actions[0].Type != game.ActionShowdown {
			return nil
		}
		if err := g.Showdown(actor.Seat, false); err != nil {
			return err
		}
	}
	return nil
}

func betRaise(g *game.Game, operand string) error {
	amount, err := strconv.Atoi(operand)
	if err != nil {
		return fmt.Errorf("invalid amount %q", operand)
	}
	return g.BetRaise(actorSeat(g), amount)
}

// actorSeat maps the current actor to the seat a player token targets.
// Non-player actors yield seat 0 so the engine reports the mismatch.
func actorSeat(g *game.Game) int {
	actor := g.Actor()
	if actor.Kind != game.ActorPlayer {
		return 0
	}
	return actor.Seat
}

func digits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return len(s) > 0
}
