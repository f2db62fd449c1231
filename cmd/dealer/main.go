package main

import (
	"bufio"
	"fmt"
	"math/rand"
	"os"
	"strings"
	"time"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/log"

	"pokerkernel/internal/config"
	"pokerkernel/internal/game"
	"pokerkernel/internal/script"
)

type CLI struct {
	Config   string `short:"c" default:"table.hcl" help:"Table configuration file"`
	LogLevel string `help:"Set the log-level" enum:"debug,info,warn,error" default:"info"`
	Seed     *int64 `help:"The seed for the random number generator"`
	Observer int    `default:"-1" help:"Seat whose view to render (-1 for all cards)"`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli)

	level, err := log.ParseLevel(cli.LogLevel)
	if err != nil {
		log.Fatal("Invalid log level", "error", err)
	}
	logger := log.NewWithOptions(os.Stderr, log.Options{Level: level, Prefix: "dealer"})

	cfg, err := config.Load(cli.Config)
	if err != nil {
		logger.Fatal("Failed to load config", "error", err)
	}

	seed := time.Now().UnixNano()
	if cli.Seed != nil {
		seed = *cli.Seed
	} else if cfg.Game.Seed != nil {
		seed = *cfg.Game.Seed
	}
	rng := rand.New(rand.NewSource(seed))
	logger.Info("Starting hand", "variant", cfg.Game.Variant, "seed", seed)

	g, err := cfg.Game.NewGame(rng)
	if err != nil {
		logger.Fatal("Failed to create game", "error", err)
	}

	if err := repl(g, cli.Observer, logger); err != nil {
		logger.Fatal("REPL failed", "error", err)
	}
	ctx.Exit(0)
}

// repl reads token lines from stdin and applies them until the hand is
// terminal or input runs out.
func repl(g *game.Game, observer int, logger *log.Logger) error {
	render(g, observer)

	scanner := bufio.NewScanner(os.Stdin)
	for !g.Terminal() {
		fmt.Print("> ")
		if !scanner.Scan() {
			break
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if line == "quit" || line == "exit" {
			break
		}

		if err := script.Run(g, line); err != nil {
			logger.Error("Action rejected", "error", err)
		}
		render(g, observer)
	}

	if g.Terminal() {
		fmt.Println("hand complete")
		fmt.Printf("history: %s\n", strings.Join(g.History(), " "))
	}
	return scanner.Err()
}

func render(g *game.Game, observer int) {
	snap := g.View(observer)

	board := "--"
	if len(snap.Board) > 0 {
		parts := make([]string, len(snap.Board))
		for i, c := range snap.Board {
			parts[i] = c.String()
		}
		board = strings.Join(parts, " ")
	}
	fmt.Printf("board: %s  pot: %d\n", board, snap.Pot)

	for seat, p := range snap.Players {
		marker := " "
		if snap.Actor.Kind == game.ActorPlayer && snap.Actor.Seat == seat {
			marker = "*"
		}
		status := ""
		if p.Mucked {
			status = " mucked"
		} else if p.Shown {
			status = " shown"
		}

		cards := make([]string, len(p.HoleCards))
		for i, vc := range p.HoleCards {
			if vc.Hidden {
				cards[i] = "??"
			} else {
				cards[i] = vc.Card.String()
			}
		}
		fmt.Printf("%s seat %d: stack=%d bet=%d committed=%d [%s]%s\n",
			marker, seat, p.Stack, p.Bet, p.Committed, strings.Join(cards, " "), status)
	}

	switch snap.Actor.Kind {
	case game.ActorNature:
		fmt.Println("to act: nature (dp/db)")
	case game.ActorPlayer:
		fmt.Printf("to act: seat %d (%s)\n", snap.Actor.Seat, describeActions(g))
	case game.ActorNone:
		fmt.Println("terminal")
	}
}

func describeActions(g *game.Game) string {
	var parts []string
	for _, la := range g.LegalActions() {
		switch la.Type {
		case game.ActionBetRaise:
			if la.Lazy {
				parts = append(parts, fmt.Sprintf("bet-raise {%d, %d}", la.Min, la.Max))
			} else {
				parts = append(parts, fmt.Sprintf("bet-raise %d..%d", la.Min, la.Max))
			}
		default:
			parts = append(parts, la.Type.String())
		}
	}
	return strings.Join(parts, " | ")
}
