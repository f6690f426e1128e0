package cli

import (
	"fmt"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/fkhayef/tripsplit/internal/config"
	"github.com/fkhayef/tripsplit/internal/database"
)

func init() {
	rootCmd.AddCommand(migrateCmd)

	migrateCmd.Flags().String("database-url", "", "Postgres URL (defaults to DATABASE_URL)")
}

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply the database schema",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		_ = godotenv.Load()
		cfg := config.Load()

		url, _ := cmd.Flags().GetString("database-url")
		if url == "" {
			url = cfg.DatabaseURL
		}

		db, err := database.NewPostgresConnection(url)
		if err != nil {
			return err
		}
		defer db.Close()

		if err := database.Migrate(cmd.Context(), db); err != nil {
			return err
		}

		fmt.Fprintln(cmd.OutOrStdout(), "Schema is up to date.")
		return nil
	},
}
