package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"replydesk.app/server/common/id"
	"replydesk.app/server/common/logger"
	"replydesk.app/server/core/config"
	"replydesk.app/server/core/db"
)

var version = "dev"

var cfg config.Config

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:           "replyctl",
	Short:         "Operator commands for ReplyDesk",
	Version:       version,
	SilenceUsage:  true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if cmd.Name() == "version" {
			return nil
		}

		var err error
		cfg, err = config.Load(config.ServiceTypeCLI)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
		logger.Setup(cfg)

		return id.Init(id.NodeCLI)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(migrateCmd)
	rootCmd.AddCommand(rulesCmd)
	rootCmd.AddCommand(sessionsCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), "replyctl", version)
	},
}

func openDB(ctx context.Context) (*db.DB, error) {
	database, err := db.New(ctx, cfg.DB)
	if err != nil {
		return nil, fmt.Errorf("connecting to database: %w", err)
	}
	return database, nil
}
