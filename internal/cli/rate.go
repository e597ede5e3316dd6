package cli

import (
	"github.com/spf13/cobra"

	"github.com/gifnksm/numelace/internal/solver"
)

// NewRateCommand creates the rate command.
func NewRateCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "rate <board>",
		Short: "Rate a board's difficulty",
		Long: `Rate a board by the hardest technique tier required to solve it without
guessing. Boards that defeat every technique rate as expert.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := readBoard(args[0])
			if err != nil {
				return err
			}
			d, err := solver.NewService().Grade(cmd.Context(), b)
			if err != nil {
				return err
			}
			cmd.Println(d.String())
			return nil
		},
	}
}
