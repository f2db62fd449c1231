package main

import (
	"fmt"
	"math/rand"
	"os"
	"sync/atomic"
	"time"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"

	"pokerkernel/internal/config"
	"pokerkernel/internal/game"
)

type CLI struct {
	Hands    int    `default:"10000" help:"Number of hands to simulate"`
	Workers  int    `default:"4" help:"Number of parallel workers"`
	Variant  string `default:"nlhe" enum:"nlhe,plo,shortdeck" help:"Game variant"`
	Players  int    `short:"p" default:"6" help:"Number of players at the table"`
	Chips    int    `default:"200" help:"Starting chips per player"`
	Ante     int    `default:"0" help:"Ante per player"`
	Seed     int64  `default:"0" help:"RNG seed (0 for random)"`
	LogLevel string `help:"Set the log-level" enum:"debug,info,warn,error" default:"info"`
}

type stats struct {
	hands     atomic.Int64
	showdowns atomic.Int64
	foldOuts  atomic.Int64
	actions   atomic.Int64
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli)

	level, err := log.ParseLevel(cli.LogLevel)
	if err != nil {
		log.Fatal("Invalid log level", "error", err)
	}
	logger := log.NewWithOptions(os.Stderr, log.Options{Level: level, Prefix: "simulate"})

	seed := cli.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	gc := gameConfig(&cli)
	logger.Info("Simulating", "variant", cli.Variant, "hands", cli.Hands, "workers", cli.Workers, "seed", seed)

	var st stats
	start := time.Now()

	var eg errgroup.Group
	for w := 0; w < cli.Workers; w++ {
		hands := cli.Hands / cli.Workers
		if w < cli.Hands%cli.Workers {
			hands++
		}
		rng := rand.New(rand.NewSource(seed + int64(w)))

		eg.Go(func() error {
			for h := 0; h < hands; h++ {
				if err := playHand(rng, gc, &st); err != nil {
					return err
				}
			}
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		logger.Fatal("Simulation failed", "error", err)
	}

	elapsed := time.Since(start)
	logger.Info("Done",
		"hands", st.hands.Load(),
		"showdowns", st.showdowns.Load(),
		"fold_outs", st.foldOuts.Load(),
		"actions", st.actions.Load(),
		"elapsed", elapsed,
		"hands_per_sec", fmt.Sprintf("%.0f", float64(st.hands.Load())/elapsed.Seconds()),
	)
	ctx.Exit(0)
}

func gameConfig(cli *CLI) *config.GameConfig {
	gc := &config.GameConfig{
		Variant: cli.Variant,
		Ante:    cli.Ante,
		Stacks:  make([]int, cli.Players),
	}
	for i := range gc.Stacks {
		gc.Stacks[i] = cli.Chips
	}
	if cli.Variant == "shortdeck" {
		gc.Blinds = []int{max(cli.Chips/100, 1)}
		if cli.Ante == 0 {
			gc.Ante = 1
		}
	} else {
		gc.Blinds = []int{1, 2}
	}
	return gc
}

// playHand drives one hand to terminal with uniformly random legal
// actions and checks the conservation invariants.
func playHand(rng *rand.Rand, gc *config.GameConfig, st *stats) error {
	g, err := gc.NewGame(rng)
	if err != nil {
		return err
	}

	starting := 0
	for _, s := range gc.Stacks {
		starting += s
	}

	sawShowdown := false
	for !g.Terminal() {
		actions := g.LegalActions()
		if len(actions) == 0 {
			return fmt.Errorf("no legal actions but hand is not terminal")
		}
		la := actions[rng.Intn(len(actions))]
		st.actions.Add(1)

		switch la.Type {
		case game.ActionDealHole:
			err = g.DealHole(la.Seat, nil)
		case game.ActionDealBoard:
			err = g.DealBoard(nil)
		case game.ActionFold:
			err = g.Fold(la.Seat)
		case game.ActionCheckCall:
			err = g.CheckCall(la.Seat)
		case game.ActionBetRaise:
			amount := la.Min
			if la.Lazy {
				if rng.Intn(2) == 1 {
					amount = la.Max
				}
			} else if la.Max > la.Min {
				amount += rng.Intn(la.Max - la.Min + 1)
			}
			err = g.BetRaise(la.Seat, amount)
		case game.ActionShowdown:
			sawShowdown = true
			err = g.Showdown(la.Seat, rng.Intn(4) == 0)
		}
		if err != nil {
			return fmt.Errorf("legal action %s failed: %w", la.Type, err)
		}
	}

	final := 0
	for _, p := range g.Players() {
		if p.Stack < 0 || p.Bet != 0 || p.Committed < 0 {
			return fmt.Errorf("invariant violation: stack=%d bet=%d committed=%d", p.Stack, p.Bet, p.Committed)
		}
		final += p.Stack
	}
	if final != starting || g.Pot() != 0 {
		return fmt.Errorf("chips not conserved: started %d, ended %d, pot %d", starting, final, g.Pot())
	}

	st.hands.Add(1)
	if sawShowdown {
		st.showdowns.Add(1)
	} else {
		st.foldOuts.Add(1)
	}
	return nil
}
