package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/sandeepkv93/homemaint/internal/config"
	"github.com/sandeepkv93/homemaint/internal/model"
	"github.com/spf13/cobra"
)

var version = "0.1.0"

// rootOptions are the persistent flags; set values win over HOMEMAINT_* env.
type rootOptions struct {
	activityDB string
	logFile    string
	logLevel   string
	frequency  string
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}
	root := &cobra.Command{
		Use:           "homemaint",
		Short:         "Home maintenance task scheduler",
		Long:          `homemaint keeps a session list of recurring home maintenance chores. Run it bare for the terminal UI or use "run" to drive it from a command script.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.config()
			if err != nil {
				return err
			}
			return runTUI(cmd.Context(), cfg)
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&opts.activityDB, "activity-db", "", "SQLite file for the activity journal (default in-memory)")
	pf.StringVar(&opts.logFile, "log-file", "", "append structured logs to this file")
	pf.StringVar(&opts.logLevel, "log-level", "", "log level: debug, info, warn, error")
	pf.StringVar(&opts.frequency, "frequency", "", "default frequency for new tasks")

	root.AddCommand(newRunCmd(opts), newJournalCmd(opts), newVersionCmd())
	return root
}

func (o *rootOptions) config() (config.RuntimeConfig, error) {
	cfg := config.RuntimeConfigFromEnv(config.DefaultRuntimeConfig())
	if o.activityDB != "" {
		cfg.ActivityDBPath = o.activityDB
	}
	if o.logFile != "" {
		cfg.LogFile = o.logFile
	}
	if o.logLevel != "" {
		lvl, err := config.ParseLevel(o.logLevel)
		if err != nil {
			return cfg, err
		}
		cfg.LogLevel = lvl
	}
	if o.frequency != "" {
		f, err := model.ParseFrequency(o.frequency)
		if err != nil {
			return cfg, err
		}
		cfg.DefaultFrequency = f
	}
	return cfg, nil
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "homemaint %s\n", version)
		},
	}
}

// Execute runs the root command.
func Execute() error {
	err := newRootCmd().Execute()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	}
	return err
}

// RunTUI starts the terminal UI with env configuration only.
func RunTUI() error {
	cfg, err := (&rootOptions{}).config()
	if err != nil {
		return err
	}
	return runTUI(context.Background(), cfg)
}
