package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"replydesk.app/server/core/db"
)

var listMigrations bool

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply pending database migrations",
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()

		if listMigrations {
			migrations, err := db.Migrations()
			if err != nil {
				return err
			}
			for _, m := range migrations {
				fmt.Fprintln(out, m.Version)
			}
			return nil
		}

		database, err := openDB(cmd.Context())
		if err != nil {
			return err
		}
		defer database.Close()

		applied, err := database.Migrate(cmd.Context())
		if err != nil {
			return err
		}

		if len(applied) == 0 {
			fmt.Fprintln(out, "Schema is up to date.")
			return nil
		}
		for _, v := range applied {
			fmt.Fprintf(out, "Applied %s\n", v)
		}
		return nil
	},
}

func init() {
	migrateCmd.Flags().BoolVar(&listMigrations, "list", false, "List embedded migrations without touching the database")
}
