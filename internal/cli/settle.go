package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/fkhayef/tripsplit/internal/settlement"
)

func init() {
	rootCmd.AddCommand(settleCmd)

	settleCmd.Flags().StringP("mode", "m", string(settlement.WeightModeDays), "Weight mode: DAYS or EVEN")
	settleCmd.Flags().StringP("output", "o", OutputTable, "Output format: table, json or csv")
}

var settleCmd = &cobra.Command{
	Use:   "settle FILE",
	Short: "Compute balances and settlements for a trip file",
	Long: `Read a YAML trip file (name, dates, participants and payments) and print
each participant's balance and the transfers that settle the trip.
Use - to read the file from standard input.`,
	Args: cobra.ExactArgs(1),
	RunE: runSettle,
}

func runSettle(cmd *cobra.Command, args []string) error {
	mode, _ := cmd.Flags().GetString("mode")
	output, _ := cmd.Flags().GetString("output")

	strategy, err := settlement.NewFactory(string(settlement.WeightModeDays)).CreateFromString(mode)
	if err != nil {
		return err
	}

	in := cmd.InOrStdin()
	if args[0] != "-" {
		f, err := os.Open(args[0])
		if err != nil {
			return fmt.Errorf("failed to open trip file: %w", err)
		}
		defer f.Close()
		in = f
	}

	tf, err := LoadTripFile(in)
	if err != nil {
		return err
	}

	t, participants, payments, err := tf.Domain()
	if err != nil {
		return err
	}

	summary := settlement.BuildSummary(t, participants, payments, strategy)
	return Render(cmd.OutOrStdout(), output, summary)
}
