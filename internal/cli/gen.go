package cli

import (
	"fmt"
	"hash/fnv"
	"log/slog"
	"math/rand"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/gifnksm/numelace/internal/board"
	"github.com/gifnksm/numelace/internal/domain"
	"github.com/gifnksm/numelace/internal/generator"
	"github.com/gifnksm/numelace/internal/store"
)

// GenOptions holds flags for the gen command.
type GenOptions struct {
	*RootOptions
	Count     int
	Seed      string
	Clues     string
	MaxTier   string
	Save      bool
	Solutions bool
}

// NewGenCommand creates the gen command.
func NewGenCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &GenOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "gen",
		Short: "Generate puzzles with a unique solution",
		Long: `Generate one or more puzzles. The same seed always produces the same
puzzle, so seeds double as shareable puzzle names.

Examples:
  numelace gen
  numelace gen -n 5 --clues 28:32
  numelace gen --seed kitchen-table --max-tier singles --save`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGen(cmd, opts)
		},
	}

	cmd.Flags().IntVarP(&opts.Count, "number", "n", 1, "number of puzzles to generate")
	cmd.Flags().StringVar(&opts.Seed, "seed", "", "seed number or phrase (default: current time)")
	cmd.Flags().StringVarP(&opts.Clues, "clues", "c", "", "target clue count 17-80 or range like 28:32")
	cmd.Flags().StringVar(&opts.MaxTier, "max-tier", "", "cap required techniques: singles|pairs|advanced|xwing")
	cmd.Flags().BoolVar(&opts.Save, "save", false, "persist generated puzzles to the store")
	cmd.Flags().BoolVar(&opts.Solutions, "solutions", false, "print solutions too")

	return cmd
}

func runGen(cmd *cobra.Command, opts *GenOptions) error {
	seed := parseSeed(opts.Seed)
	minClues, maxClues, err := parseClueRange(opts.Clues, opts.Config().Generator.TargetClues)
	if err != nil {
		return err
	}
	maxTier, err := parseTierFlag(firstNonEmpty(opts.MaxTier, opts.Config().Generator.MaxTier))
	if err != nil {
		return err
	}

	var st *store.Store
	if opts.Save {
		st, err = store.Open(opts.Config().Store.Path)
		if err != nil {
			return err
		}
		defer st.Close()
	}

	gen := generator.NewUniqueGenerator()
	// Derived seeds keep a multi-puzzle run reproducible from one seed.
	seeds := rand.New(rand.NewSource(seed))
	for i := 0; i < opts.Count; i++ {
		puzzleSeed := seed
		if opts.Count > 1 {
			puzzleSeed = seeds.Int63()
		}
		target := minClues
		if maxClues > minClues {
			target = minClues + seeds.Intn(maxClues-minClues+1)
		}
		p, stats, err := gen.Generate(cmd.Context(), domain.GenerateRequest{
			Seed:        puzzleSeed,
			TargetClues: target,
			MaxTier:     maxTier,
		})
		if err != nil {
			return err
		}
		slog.Info("generated",
			"seed", p.Seed,
			"clues", p.Clues,
			"difficulty", p.Difficulty,
			"attempts", stats.Nodes,
			"dur", stats.Duration.Round(time.Millisecond),
		)
		if st != nil {
			if err := st.Save(cmd.Context(), p); err != nil {
				return err
			}
			slog.Info("saved", "id", p.ID)
		}
		if err := printPuzzle(cmd, p, opts.Solutions); err != nil {
			return err
		}
	}
	return nil
}

func printPuzzle(cmd *cobra.Command, p *domain.Puzzle, solutions bool) error {
	grid, err := board.FromBytes(p.Givens.Cells)
	if err != nil {
		return err
	}
	cmd.Printf("seed %d  %s  %d clues\n%s", p.Seed, p.Difficulty, p.Clues, grid.Format())
	if solutions {
		sol, err := board.FromBytes(p.Solution.Cells)
		if err != nil {
			return err
		}
		cmd.Printf("solution\n%s", sol.Format())
	}
	cmd.Println()
	return nil
}

// parseSeed accepts a number, a phrase (hashed), or nothing (current time).
func parseSeed(s string) int64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Now().UnixNano()
	}
	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		return n
	}
	h := fnv.New64a()
	_, _ = h.Write([]byte(s))
	return int64(h.Sum64())
}

// parseClueRange parses "32" or "28:32". An empty string yields the
// configured default as a fixed target.
func parseClueRange(s string, fallback int) (min, max int, err error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return fallback, fallback, nil
	}
	parts := strings.Split(s, ":")
	switch len(parts) {
	case 1:
		v, err := strconv.Atoi(strings.TrimSpace(parts[0]))
		if err != nil {
			return 0, 0, fmt.Errorf("invalid clue count: %w", err)
		}
		return v, v, nil
	case 2:
		lo, err := strconv.Atoi(strings.TrimSpace(parts[0]))
		if err != nil {
			return 0, 0, fmt.Errorf("invalid clue count min: %w", err)
		}
		hi, err := strconv.Atoi(strings.TrimSpace(parts[1]))
		if err != nil {
			return 0, 0, fmt.Errorf("invalid clue count max: %w", err)
		}
		if lo > hi {
			return 0, 0, fmt.Errorf("clue count min (%d) cannot be greater than max (%d)", lo, hi)
		}
		return lo, hi, nil
	default:
		return 0, 0, fmt.Errorf("invalid clue count format: %s (use '32' or '28:32')", s)
	}
}

// parseTierFlag maps a tier name to a StrategyTier; empty means uncapped.
func parseTierFlag(s string) (domain.StrategyTier, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "":
		return domain.StrategyNone, nil
	case "singles":
		return domain.StrategySingles, nil
	case "pairs":
		return domain.StrategyPairs, nil
	case "advanced":
		return domain.StrategyAdvanced, nil
	case "xwing":
		return domain.StrategyXWing, nil
	default:
		return domain.StrategyNone, fmt.Errorf("invalid tier %q: must be singles, pairs, advanced, or xwing", s)
	}
}

func firstNonEmpty(a, b string) string {
	if a != "" {
		return a
	}
	return b
}
