package cli

import (
	"github.com/spf13/cobra"

	"github.com/gifnksm/numelace/internal/hint"
)

// HintOptions holds flags for the hint command.
type HintOptions struct {
	*RootOptions
	MaxTier string
}

// NewHintCommand creates the hint command.
func NewHintCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &HintOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "hint <board>",
		Short: "Show the next logical step",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := readBoard(args[0])
			if err != nil {
				return err
			}
			tier, err := parseTierFlag(opts.MaxTier)
			if err != nil {
				return err
			}
			h, ok, err := hint.New().Hint(cmd.Context(), b, tier)
			if err != nil {
				return err
			}
			if !ok {
				cmd.Println("no hint available at this tier")
				return nil
			}
			cmd.Println(h.Message)
			return nil
		},
	}

	cmd.Flags().StringVar(&opts.MaxTier, "max-tier", "", "cap hint techniques: singles|pairs|advanced|xwing")

	return cmd
}
