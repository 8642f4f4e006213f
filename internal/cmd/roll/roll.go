// Package roll parses roll command flags and prints Cortex rolls.
package roll

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"strconv"
	"strings"

	entrypoint "github.com/louisbranch/cortex-dice/internal/platform/cmd"
	apperrors "github.com/louisbranch/cortex-dice/internal/platform/errors"
	rollsvc "github.com/louisbranch/cortex-dice/internal/services/roll"
	"github.com/louisbranch/cortex-dice/internal/services/roll/render"
)

// Config holds roll command configuration.
type Config struct {
	Keep        int    `env:"CORTEX_KEEP"         envDefault:"2"`
	HitchOn     int    `env:"CORTEX_HITCH_ON"     envDefault:"1"`
	MaxDice     int    `env:"CORTEX_MAX_DICE"     envDefault:"30"`
	SuggestBest bool   `env:"CORTEX_SUGGEST_BEST" envDefault:"true"`
	Difficulty  int    `env:"CORTEX_DIFFICULTY"`
	Samples     int    `env:"CORTEX_SAMPLES"      envDefault:"1"`
	Locale      string `env:"CORTEX_LANG"         envDefault:"en-US"`

	// Seed replays a roll; nil draws a fresh seed.
	Seed *int64
	// Dice is the dice notation taken from the positional arguments.
	Dice string
}

// ParseConfig parses environment and flags into a Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := entrypoint.ParseConfig(&cfg); err != nil {
		return Config{}, err
	}

	fs.IntVar(&cfg.Keep, "keep", cfg.Keep, "number of dice summed into a total")
	fs.IntVar(&cfg.HitchOn, "hitch-on", cfg.HitchOn, "highest face that counts as a hitch")
	fs.IntVar(&cfg.MaxDice, "max-dice", cfg.MaxDice, "largest pool accepted (0 means the 1000 dice ceiling)")
	fs.BoolVar(&cfg.SuggestBest, "best", cfg.SuggestBest, "suggest the best total and effect")
	fs.IntVar(&cfg.Difficulty, "difficulty", cfg.Difficulty, "difficulty to check totals against (0 skips the check)")
	fs.IntVar(&cfg.Samples, "n", cfg.Samples, "number of times to roll the pool (at most 100)")
	fs.StringVar(&cfg.Locale, "lang", cfg.Locale, "output language: en-US or pt-BR")
	fs.Func("seed", "seed that replays a previous roll", func(value string) error {
		seed, err := strconv.ParseInt(strings.TrimSpace(value), 10, 64)
		if err != nil {
			return fmt.Errorf("invalid seed %q", value)
		}
		cfg.Seed = &seed
		return nil
	})
	if err := entrypoint.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}

	if cfg.Samples < 1 || cfg.Samples > rollsvc.MaxSamples {
		return Config{}, fmt.Errorf("number of rolls must be between 1 and %d, got %d", rollsvc.MaxSamples, cfg.Samples)
	}

	cfg.Dice = strings.Join(fs.Args(), " ")
	if strings.TrimSpace(cfg.Dice) == "" {
		return Config{}, errors.New("dice notation is required, for example: roll d6 2d8 d12")
	}
	return cfg, nil
}

// Rules returns the table rules described by cfg.
func (c Config) Rules() rollsvc.Rules {
	return rollsvc.Rules{
		Keep:        c.Keep,
		HitchOn:     c.HitchOn,
		MaxDice:     c.MaxDice,
		SuggestBest: c.SuggestBest,
		Difficulty:  c.Difficulty,
	}
}

// Run rolls the configured pool and writes the rendered result to out.
func Run(ctx context.Context, cfg Config, out io.Writer) error {
	if out == nil {
		out = io.Discard
	}
	return entrypoint.RunWithTelemetry(ctx, entrypoint.ServiceRoll, func(ctx context.Context) error {
		reports, err := rollsvc.NewService().RollSamples(ctx, rollsvc.Request{
			Dice:    cfg.Dice,
			Rules:   cfg.Rules(),
			Seed:    cfg.Seed,
			Samples: cfg.Samples,
		})
		if err != nil {
			return errors.New(apperrors.LocalizedMessage(err, cfg.Locale))
		}
		_, err = fmt.Fprintln(out, render.Samples(render.Printer(cfg.Locale), reports))
		return err
	})
}
