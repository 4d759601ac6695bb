package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/msomdec/atelier/internal/config"
	"github.com/msomdec/atelier/internal/repository/sqlite"
)

var (
	migrateDatabase string
	migrateStatus   bool
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply pending schema migrations",
	Long: `Apply the embedded schema migrations to the closet database, or list the
pending ones with --status. serve also migrates on start.`,
	Args: cobra.NoArgs,
	RunE: runMigrate,
}

func init() {
	rootCmd.AddCommand(migrateCmd)

	def := os.Getenv("DATABASE_PATH")
	if def == "" {
		def = config.Default().DatabasePath
	}
	migrateCmd.Flags().StringVar(&migrateDatabase, "database", def, "Path to the SQLite database (env DATABASE_PATH)")
	migrateCmd.Flags().BoolVar(&migrateStatus, "status", false, "Only list pending migrations")
}

func runMigrate(cmd *cobra.Command, args []string) error {
	db, err := sqlite.New(migrateDatabase)
	if err != nil {
		return err
	}
	defer db.Close()

	out := cmd.OutOrStdout()
	pending, err := db.PendingMigrations(cmd.Context())
	if err != nil {
		return fmt.Errorf("check migrations: %w", err)
	}

	if migrateStatus {
		if len(pending) == 0 {
			fmt.Fprintln(out, "schema is up to date")
			return nil
		}
		for _, name := range pending {
			fmt.Fprintf(out, "pending\t%s\n", name)
		}
		return nil
	}

	if err := db.Migrate(cmd.Context()); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}
	fmt.Fprintf(out, "applied %d migration(s)\n", len(pending))
	return nil
}
