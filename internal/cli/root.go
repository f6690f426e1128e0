// Package cli implements the tripsplit command-line tool.
package cli

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "tripsplit",
	Short: "Split shared trip expenses and settle up",
	Long: `tripsplit computes who owes whom after a shared trip.
Each participant's share of the total is weighted by the days they attended
(or split evenly), and the resulting balances are settled with as few
transfers as the greedy matcher finds.`,
	SilenceUsage: true,
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}
