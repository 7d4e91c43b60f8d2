// Package config loads search settings from the environment and optional
// .env files.
//
// Recognised variables:
//
//	HIKEPATH_ALPHA              elevation weight (float ≥ 0, default 100)
//	HIKEPATH_PROGRESS_INTERVAL  expansions between progress reports (int > 0, default 100)
//	HIKEPATH_TIE_BREAK          fifo | lifo | lowest-h (default fifo)
//	HIKEPATH_DIAGONAL           exact | reference (default exact: √2; reference: 1.414)
//	HIKEPATH_HEURISTIC          euclidean | octile | zero (default euclidean)
//	HIKEPATH_MAX_EXPANSIONS     expansion cap (int ≥ 0, default 0 = unlimited)
//
// Variables already set in the process environment take precedence over
// values read from files.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"math"
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"github.com/katalvlaran/terrainpath/astar"
	"github.com/katalvlaran/terrainpath/cost"
	"github.com/katalvlaran/terrainpath/terrain"
)

// Environment variable names.
const (
	EnvAlpha            = "HIKEPATH_ALPHA"
	EnvProgressInterval = "HIKEPATH_PROGRESS_INTERVAL"
	EnvTieBreak         = "HIKEPATH_TIE_BREAK"
	EnvDiagonal         = "HIKEPATH_DIAGONAL"
	EnvHeuristic        = "HIKEPATH_HEURISTIC"
	EnvMaxExpansions    = "HIKEPATH_MAX_EXPANSIONS"
)

// Accepted values of HIKEPATH_DIAGONAL and HIKEPATH_HEURISTIC.
const (
	DiagonalExact     = "exact"
	DiagonalReference = "reference"

	HeuristicEuclidean = "euclidean"
	HeuristicOctile    = "octile"
	HeuristicZero      = "zero"
)

// ErrInvalid is wrapped by every malformed or out-of-range value.
var ErrInvalid = errors.New("config: invalid value")

// Config holds the resolved search settings.
type Config struct {
	Alpha            float64        // elevation weight
	ProgressInterval int            // expansions between progress reports
	TieBreak         astar.TieBreak // equal-f ordering
	Diagonal         float64        // diagonal step distance
	Heuristic        string         // heuristic name
	MaxExpansions    int            // expansion cap, 0 = unlimited
}

// Default returns the settings used when nothing is configured.
func Default() Config {
	return Config{
		Alpha:            cost.DefaultAlpha,
		ProgressInterval: 100,
		TieBreak:         astar.TieBreakFIFO,
		Diagonal:         terrain.Diagonal,
		Heuristic:        HeuristicEuclidean,
	}
}

// Load reads files (or ".env" when none are given, ignoring its absence)
// and resolves Config from the merged environment.
func Load(files ...string) (Config, error) {
	fileEnv, err := readFiles(files)
	if err != nil {
		return Config{}, err
	}
	lookup := func(key string) string {
		if v := os.Getenv(key); v != "" {
			return v
		}
		return fileEnv[key]
	}

	return resolve(lookup)
}

func readFiles(files []string) (map[string]string, error) {
	if len(files) == 0 {
		env, err := godotenv.Read()
		if errors.Is(err, fs.ErrNotExist) {
			return map[string]string{}, nil
		}
		if err != nil {
			return nil, fmt.Errorf("config: reading .env: %w", err)
		}
		return env, nil
	}
	env, err := godotenv.Read(files...)
	if err != nil {
		return nil, fmt.Errorf("config: reading %v: %w", files, err)
	}
	return env, nil
}

// resolve builds a Config from lookup, starting from Default.
func resolve(lookup func(string) string) (Config, error) {
	cfg := Default()

	if v := lookup(EnvAlpha); v != "" {
		alpha, err := strconv.ParseFloat(v, 64)
		if err != nil || math.IsNaN(alpha) || math.IsInf(alpha, 0) || alpha < 0 {
			return Config{}, fmt.Errorf("%w: %s=%q must be a finite non-negative number", ErrInvalid, EnvAlpha, v)
		}
		cfg.Alpha = alpha
	}

	if v := lookup(EnvProgressInterval); v != "" {
		every, err := strconv.Atoi(v)
		if err != nil || every <= 0 {
			return Config{}, fmt.Errorf("%w: %s=%q must be a positive integer", ErrInvalid, EnvProgressInterval, v)
		}
		cfg.ProgressInterval = every
	}

	if v := lookup(EnvTieBreak); v != "" {
		tb, err := astar.ParseTieBreak(v)
		if err != nil {
			return Config{}, fmt.Errorf("%w: %s=%q: %w", ErrInvalid, EnvTieBreak, v, err)
		}
		cfg.TieBreak = tb
	}

	if v := lookup(EnvMaxExpansions); v != "" {
		limit, err := strconv.Atoi(v)
		if err != nil || limit < 0 {
			return Config{}, fmt.Errorf("%w: %s=%q must be a non-negative integer", ErrInvalid, EnvMaxExpansions, v)
		}
		cfg.MaxExpansions = limit
	}

	switch v := lookup(EnvDiagonal); v {
	case "", DiagonalExact:
	case DiagonalReference:
		cfg.Diagonal = terrain.ReferenceDiagonal
	default:
		return Config{}, fmt.Errorf("%w: %s=%q must be %q or %q", ErrInvalid, EnvDiagonal, v, DiagonalExact, DiagonalReference)
	}

	switch v := lookup(EnvHeuristic); v {
	case "":
	case HeuristicEuclidean, HeuristicOctile, HeuristicZero:
		cfg.Heuristic = v
	default:
		return Config{}, fmt.Errorf("%w: %s=%q is not a known heuristic", ErrInvalid, EnvHeuristic, v)
	}

	return cfg, nil
}

// HeuristicFunc returns the cost.Heuristic named by c.Heuristic.
func (c Config) HeuristicFunc() cost.Heuristic {
	switch c.Heuristic {
	case HeuristicOctile:
		return cost.Octile(c.Diagonal)
	case HeuristicZero:
		return cost.Zero
	}
	return cost.Euclidean(c.Diagonal)
}

// EngineOptions converts c into astar options. The progress interval is
// applied by the caller together with its callback (astar.WithProgress).
func (c Config) EngineOptions() []astar.Option {
	return []astar.Option{
		astar.WithAlpha(c.Alpha),
		astar.WithDiagonal(c.Diagonal),
		astar.WithHeuristic(c.HeuristicFunc()),
		astar.WithTieBreak(c.TieBreak),
		astar.WithMaxExpansions(c.MaxExpansions),
	}
}
