package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"replydesk.app/server/internal/automation"
	"replydesk.app/server/internal/model"
	"replydesk.app/server/internal/store"
)

var (
	rulesUserID  int64
	rulesChannel string
)

var rulesCmd = &cobra.Command{
	Use:   "rules",
	Short: "Inspect automation rules",
}

// rules test answers "which rule would reply to this?" against the live rule set.
var rulesTestCmd = &cobra.Command{
	Use:   "test <text>",
	Short: "Show which active rule matches a message",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ch := model.Channel(rulesChannel)
		if !ch.Valid() {
			return fmt.Errorf("--channel must be one of dm, comment")
		}
		if rulesUserID <= 0 {
			return fmt.Errorf("--user-id is required")
		}

		database, err := openDB(cmd.Context())
		if err != nil {
			return err
		}
		defer database.Close()

		rules, err := store.NewStores(database.Queries()).Rules().ListActiveForChannel(cmd.Context(), rulesUserID, ch)
		if err != nil {
			return fmt.Errorf("listing rules: %w", err)
		}

		printMatch(cmd.OutOrStdout(), strings.Join(args, " "), ch, rules)
		return nil
	},
}

func printMatch(out io.Writer, text string, ch model.Channel, rules []model.AutomationRule) {
	fmt.Fprintf(out, "Checked %d active rule(s) for %s\n", len(rules), ch)
	fmt.Fprintf(out, "Normalized: %q\n", automation.Normalize(text))

	rule := automation.Match(text, ch, rules)
	if rule == nil {
		fmt.Fprintln(out, "No rule matched.")
		return
	}

	fmt.Fprintf(out, "Matched rule %d (%s %q)\n", rule.ID, rule.MatchType, rule.TriggerText)
	fmt.Fprintf(out, "Reply: %s\n", rule.ReplyText)
}

func init() {
	rulesTestCmd.Flags().Int64Var(&rulesUserID, "user-id", 0, "Account whose rules to test")
	rulesTestCmd.Flags().StringVar(&rulesChannel, "channel", string(model.ChannelDM), "dm or comment")
	rulesCmd.AddCommand(rulesTestCmd)
}
