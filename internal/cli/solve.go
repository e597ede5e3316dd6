package cli

import (
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/spf13/cobra"

	"github.com/gifnksm/numelace/internal/board"
	"github.com/gifnksm/numelace/internal/domain"
	"github.com/gifnksm/numelace/internal/solver"
)

// SolveOptions holds flags for the solve command.
type SolveOptions struct {
	*RootOptions
	MaxTier string
	Count   bool
}

// NewSolveCommand creates the solve command.
func NewSolveCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &SolveOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "solve <board>",
		Short: "Solve a board",
		Long: `Solve a board given as 81 characters in row-major order, '.' or '0' for
empty cells, or "-" to read it from stdin. Without a tier cap the solver
falls back to search when techniques stall; with one it stops at the
stall and shows the partial grid.

Examples:
  numelace solve '53..7....6..195....98....6.8...6...34..8.3..17...2...6.6....28....419..5....8..79'
  numelace solve --max-tier singles - < puzzle.txt`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSolve(cmd, opts, args[0])
		},
	}

	cmd.Flags().StringVar(&opts.MaxTier, "max-tier", "", "cap techniques and stop at a stall: singles|pairs|advanced|xwing")
	cmd.Flags().BoolVar(&opts.Count, "count", false, "count solutions (up to 2) instead of solving")

	return cmd
}

func runSolve(cmd *cobra.Command, opts *SolveOptions, arg string) error {
	b, err := readBoard(arg)
	if err != nil {
		return err
	}
	svc := solver.NewService()

	if opts.Count {
		n, stats, err := svc.CountSolutions(cmd.Context(), b, 2)
		if err != nil {
			return err
		}
		slog.Debug("counted", "dur", stats.Duration.Round(time.Millisecond))
		switch n {
		case 0:
			cmd.Println("no solutions")
		case 1:
			cmd.Println("exactly one solution")
		default:
			cmd.Println("more than one solution")
		}
		return nil
	}

	var res *domain.SolveResult
	if opts.MaxTier != "" {
		tier, err := parseTierFlag(opts.MaxTier)
		if err != nil {
			return err
		}
		r, st, err := svc.SolveWithTechniques(cmd.Context(), b, tier)
		if err != nil {
			return err
		}
		res = r
		slog.Info("solve", "status", r.Status, "dur", st.Duration.Round(time.Millisecond))
	} else {
		r, st, err := svc.Solve(cmd.Context(), b)
		if err != nil {
			return err
		}
		res = r
		slog.Info("solve", "status", r.Status, "nodes", st.Nodes, "dur", st.Duration.Round(time.Millisecond))
	}

	grid, gridErr := board.FromBytes(res.Grid.Cells)
	switch res.Status {
	case domain.SolveSolved, domain.SolveStalled:
		if gridErr != nil {
			return gridErr
		}
		cmd.Printf("%s\n%s", res.Status, grid.Format())
		printTechniques(cmd, res.Techniques)
	case domain.SolveContradiction:
		if res.Contradiction != nil {
			return fmt.Errorf("contradiction at r%dc%d", res.Contradiction.Row, res.Contradiction.Col)
		}
		return fmt.Errorf("contradiction")
	default:
		return fmt.Errorf("no solution exists")
	}
	return nil
}

func printTechniques(cmd *cobra.Command, counts map[string]int) {
	if len(counts) == 0 {
		return
	}
	names := make([]string, 0, len(counts))
	for name := range counts {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		cmd.Printf("%-20s %d\n", name, counts[name])
	}
}
