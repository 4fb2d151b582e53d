package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/sandeepkv93/homemaint/internal/commands"
	"github.com/sandeepkv93/homemaint/internal/export"
	"github.com/spf13/cobra"
)

type runOptions struct {
	format string
	output string
	strict bool
}

// BatchSummary counts executed (non-blank, non-comment) lines.
type BatchSummary struct {
	Commands int
	Failed   int
}

func newRunCmd(root *rootOptions) *cobra.Command {
	opts := &runOptions{}
	cmd := &cobra.Command{
		Use:   "run [file]",
		Short: "Execute a command script against a fresh task list",
		Long: `Run reads one command per line from file, or stdin when file is omitted or "-".
Blank lines and lines starting with # are skipped. Failed commands are reported
and the script continues. With --format the final task list is exported.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runScript(cmd, args, root, opts)
		},
	}
	cmd.Flags().StringVar(&opts.format, "format", "", "export the final list as text, json, csv or pdf")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "write the export to this file instead of stdout")
	cmd.Flags().BoolVar(&opts.strict, "strict", false, "exit non-zero when any command fails")
	return cmd
}

func runScript(cmd *cobra.Command, args []string, root *rootOptions, opts *runOptions) error {
	cfg, err := root.config()
	if err != nil {
		return err
	}

	var format export.Format
	if opts.format != "" || opts.output != "" {
		raw := opts.format
		if raw == "" {
			raw = string(export.FormatText)
		}
		if format, err = export.ParseFormat(raw); err != nil {
			return err
		}
		if format.Binary() && opts.output == "" {
			return fmt.Errorf("%s export needs --output", format)
		}
	}

	in := cmd.InOrStdin()
	if len(args) == 1 && args[0] != "-" {
		f, err := os.Open(args[0])
		if err != nil {
			return fmt.Errorf("open script: %w", err)
		}
		defer f.Close()
		in = f
	}

	// Keep stdout clean for an export piped elsewhere.
	logOut := cmd.OutOrStdout()
	if format != "" && opts.output == "" {
		logOut = cmd.ErrOrStderr()
	}

	a, err := newApp(cfg, false)
	if err != nil {
		return err
	}
	defer a.Close()

	handlers := commands.Bind(cmd.Context(), a.tracker, commands.BindOptions{
		DefaultFrequency: cfg.DefaultFrequency,
		ActivityLimit:    cfg.ActivityLimit,
	})
	summary, err := RunBatch(in, logOut, handlers)
	if err != nil {
		return fmt.Errorf("read script: %w", err)
	}
	a.logger.Info("script finished", "commands", summary.Commands, "failed", summary.Failed)

	tw := tabwriter.NewWriter(logOut, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "COMMANDS\tFAILED\tSCHEDULED")
	fmt.Fprintf(tw, "%d\t%d\t%d\n", summary.Commands, summary.Failed, a.tracker.Len())
	if err := tw.Flush(); err != nil {
		return err
	}

	if format != "" {
		data, err := export.Render(format, a.tracker.List())
		if err != nil {
			return err
		}
		if opts.output == "" {
			if _, err := cmd.OutOrStdout().Write(data); err != nil {
				return err
			}
		} else if err := os.WriteFile(opts.output, data, 0o644); err != nil {
			return fmt.Errorf("write export: %w", err)
		}
	}

	if opts.strict && summary.Failed > 0 {
		return fmt.Errorf("%d of %d commands failed", summary.Failed, summary.Commands)
	}
	return nil
}

// RunBatch executes each command line from r, echoing it and its result to w.
// A failing line is reported as "error: ..." and does not stop the run.
func RunBatch(r io.Reader, w io.Writer, handlers commands.Handlers) (BatchSummary, error) {
	var summary BatchSummary
	sc := bufio.NewScanner(r)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		summary.Commands++
		fmt.Fprintf(w, "> %s\n", line)

		res, err := execLine(line, handlers)
		if err != nil {
			summary.Failed++
			fmt.Fprintf(w, "error: %s (line %d)\n", err, lineNo)
			continue
		}
		if res.Message != "" {
			fmt.Fprintln(w, res.Message)
		}
		for _, l := range res.Lines {
			fmt.Fprintf(w, "  %s\n", l)
		}
	}
	return summary, sc.Err()
}

func execLine(line string, handlers commands.Handlers) (commands.Result, error) {
	cmd, err := commands.Parse(line)
	if err != nil {
		return commands.Result{}, err
	}
	return commands.Execute(cmd, handlers)
}
