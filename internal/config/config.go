// Package config loads table configuration for the command-line tools.
package config

import (
	"fmt"
	"math/rand"
	"os"
	"strings"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"pokerkernel/internal/game"
)

// Config is the root of an HCL configuration file.
type Config struct {
	Game GameConfig `hcl:"game,block"`
}

// GameConfig describes one table: the variant label plus forced bets
// and starting stacks.
type GameConfig struct {
	Variant string `hcl:"variant,label"`
	Ante    int    `hcl:"ante,optional"`
	Blinds  []int  `hcl:"blinds,optional"`
	Stacks  []int  `hcl:"stacks"`
	Seed    *int64 `hcl:"seed,optional"`
}

// DefaultConfig returns a 1/2 no-limit hold'em table with two 200-chip
// stacks.
func DefaultConfig() *Config {
	return &Config{
		Game: GameConfig{
			Variant: "nlhe",
			Ante:    0,
			Blinds:  []int{1, 2},
			Stacks:  []int{200, 200},
		},
	}
}

// Load reads an HCL configuration file, falling back to the default
// configuration when the file does not exist.
func Load(filename string) (*Config, error) {
	if _, err := os.Stat(filename); os.IsNotExist(err) {
		return DefaultConfig(), nil
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var cfg Config
	if diags := gohcl.DecodeBody(file.Body, nil, &cfg); diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode config: %s", diags.Error())
	}

	if err := cfg.Game.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (gc *GameConfig) validate() error {
	switch strings.ToLower(gc.Variant) {
	case "nlhe", "plo", "shortdeck":
	default:
		return fmt.Errorf("unknown variant %q", gc.Variant)
	}
	if len(gc.Stacks) < 2 {
		return fmt.Errorf("at least 2 stacks required, got %d", len(gc.Stacks))
	}
	if gc.Variant == "shortdeck" && len(gc.Blinds) > 1 {
		return fmt.Errorf("shortdeck takes at most one blind, got %d", len(gc.Blinds))
	}
	return nil
}

// NewGame constructs the configured hand using the given RNG for the
// deck shuffle.
func (gc *GameConfig) NewGame(rng *rand.Rand, opts ...game.Option) (*game.Game, error) {
	switch strings.ToLower(gc.Variant) {
	case "nlhe":
		return game.NewNLHE(rng, gc.Ante, gc.Blinds, gc.Stacks, opts...)
	case "plo":
		return game.NewPLO(rng, gc.Ante, gc.Blinds, gc.Stacks, opts...)
	case "shortdeck":
		blind := 0
		if len(gc.Blinds) == 1 {
			blind = gc.Blinds[0]
		}
		return game.NewShortDeck(rng, gc.Ante, blind, gc.Stacks, opts...)
	default:
		return nil, fmt.Errorf("unknown variant %q", gc.Variant)
	}
}
