package cli

import (
	"fmt"

	"github.com/sandeepkv93/homemaint/internal/model"
	"github.com/spf13/cobra"
)

func newJournalCmd(root *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "journal",
		Short: "Maintain the activity journal",
		Long:  `journal trims or resets the SQLite activity journal named by --activity-db.`,
	}
	cmd.AddCommand(newJournalPurgeCmd(root), newJournalResetCmd(root))
	return cmd
}

func newJournalPurgeCmd(root *rootOptions) *cobra.Command {
	var before string
	cmd := &cobra.Command{
		Use:   "purge",
		Short: "Delete journal entries recorded before a day",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			day, err := model.ParseDate(before)
			if err != nil {
				return fmt.Errorf("--before: %w", err)
			}
			cfg, err := root.config()
			if err != nil {
				return err
			}
			a, err := newApp(cfg, false)
			if err != nil {
				return err
			}
			defer a.Close()

			n, err := a.tracker.PurgeActivity(cmd.Context(), day)
			if err != nil {
				return fmt.Errorf("purge journal: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Purged %d journal entries before %s.\n", n, day)
			return nil
		},
	}
	cmd.Flags().StringVar(&before, "before", "", "purge entries recorded before this YYYY-MM-DD day")
	_ = cmd.MarkFlagRequired("before")
	return cmd
}

func newJournalResetCmd(root *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "reset",
		Short: "Drop every journal entry and recreate the schema",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := root.config()
			if err != nil {
				return err
			}
			a, err := newApp(cfg, false)
			if err != nil {
				return err
			}
			defer a.Close()

			if err := a.journal.Reset(cmd.Context()); err != nil {
				return fmt.Errorf("reset journal: %w", err)
			}
			a.logger.Info("activity journal reset", "activity_db", cfg.ActivityDBPath)
			fmt.Fprintln(cmd.OutOrStdout(), "Journal reset.")
			return nil
		},
	}
}
