package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"replydesk.app/server/internal/store"
)

var sessionsCmd = &cobra.Command{
	Use:   "sessions",
	Short: "Manage dashboard sessions",
}

var sessionsPruneCmd = &cobra.Command{
	Use:   "prune",
	Short: "Delete expired sessions",
	RunE: func(cmd *cobra.Command, args []string) error {
		database, err := openDB(cmd.Context())
		if err != nil {
			return err
		}
		defer database.Close()

		n, err := store.NewStores(database.Queries()).Sessions().DeleteExpired(cmd.Context())
		if err != nil {
			return fmt.Errorf("deleting expired sessions: %w", err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Deleted %d expired session(s).\n", n)
		return nil
	},
}

func init() {
	sessionsCmd.AddCommand(sessionsPruneCmd)
}
