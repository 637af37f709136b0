// Package score implements the greed command: score a roll given on the
// command line or throw a seeded one.
package score

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"strconv"
	"strings"

	"go.opentelemetry.io/otel/attribute"

	"github.com/louisbranch/greed/internal/greed"
	entrypoint "github.com/louisbranch/greed/internal/platform/cmd"
	"github.com/louisbranch/greed/internal/platform/i18n"
	"github.com/louisbranch/greed/internal/platform/otel"
	"github.com/louisbranch/greed/internal/random"
)

// Config holds greed command configuration.
type Config struct {
	Dice    string `env:"DICE"`
	Roll    int    `env:"ROLL"`
	Seed    int64  `env:"SEED"`
	Explain bool   `env:"EXPLAIN"`
	Lang    string `env:"LANG" envDefault:"en"`
}

// ParseConfig parses environment and flags into a Config. Positional
// arguments are appended to the dice.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := entrypoint.ParseConfig(&cfg); err != nil {
		return Config{}, err
	}
	fs.StringVar(&cfg.Dice, "dice", cfg.Dice, "faces to score, e.g. \"1 1 1 5 1\"")
	fs.IntVar(&cfg.Roll, "roll", cfg.Roll, "throw this many dice instead of reading -dice")
	fs.Int64Var(&cfg.Seed, "seed", cfg.Seed, "seed for -roll (0 picks a random seed)")
	fs.BoolVar(&cfg.Explain, "explain", cfg.Explain, "print how the score was reached")
	fs.StringVar(&cfg.Lang, "lang", cfg.Lang, "language used to format numbers")
	if err := entrypoint.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}
	if rest := fs.Args(); len(rest) > 0 {
		cfg.Dice = strings.TrimSpace(cfg.Dice + " " + strings.Join(rest, " "))
	}
	return cfg, nil
}

// Run scores the configured roll and writes the result to out.
// seeds supplies entropy for unseeded rolls; nil means crypto/rand.
func Run(ctx context.Context, cfg Config, out io.Writer, seeds io.Reader) error {
	if out == nil {
		return errors.New("output is required")
	}
	return entrypoint.RunWithTelemetry(ctx, entrypoint.ServiceScore, func(ctx context.Context) error {
		return run(ctx, cfg, out, seeds)
	})
}

func run(ctx context.Context, cfg Config, out io.Writer, seeds io.Reader) error {
	printer := i18n.Printer(i18n.ResolveTag(cfg.Lang))

	dice, err := resolveDice(cfg, out, seeds)
	if err != nil {
		return err
	}

	_, span := otel.Tracer().Start(ctx, "greed.score")
	defer span.End()
	breakdown := greed.Explain(dice)
	span.SetAttributes(
		attribute.Int("greed.dice", len(dice)),
		attribute.Int("greed.score", breakdown.Total),
	)

	if _, err := printer.Fprintf(out, "score: %d\n", breakdown.Total); err != nil {
		return err
	}
	if cfg.Explain {
		if _, err := fmt.Fprintln(out, breakdown.String()); err != nil {
			return err
		}
	}
	return nil
}

func resolveDice(cfg Config, out io.Writer, seeds io.Reader) ([]int, error) {
	if cfg.Roll == 0 {
		dice, err := greed.ParseDice(cfg.Dice)
		if err != nil {
			return nil, fmt.Errorf("parse dice: %w", err)
		}
		return dice, nil
	}
	if strings.TrimSpace(cfg.Dice) != "" {
		return nil, errors.New("dice and roll cannot be combined")
	}

	seed := cfg.Seed
	if seed == 0 {
		var err error
		if seeds != nil {
			seed, err = random.SeedFrom(seeds)
		} else {
			seed, err = random.NewSeed()
		}
		if err != nil {
			return nil, err
		}
	}

	result, err := greed.Roll(greed.RollRequest{Count: cfg.Roll, Seed: seed})
	if err != nil {
		return nil, fmt.Errorf("roll dice: %w", err)
	}
	if _, err := fmt.Fprintf(out, "dice: %s (seed %d)\n", FormatDice(result.Dice), result.Seed); err != nil {
		return nil, err
	}
	return result.Dice, nil
}

// FormatDice renders faces separated by spaces.
func FormatDice(dice []int) string {
	parts := make([]string, len(dice))
	for i, face := range dice {
		parts[i] = strconv.Itoa(face)
	}
	return strings.Join(parts, " ")
}
