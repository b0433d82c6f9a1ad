package cli

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/roach88/qpusanity/internal/config"
	"github.com/roach88/qpusanity/internal/dataset"
	"github.com/roach88/qpusanity/internal/runner"
)

// NewCheckCommand creates the check command.
func NewCheckCommand(rootOpts *RootOptions) *cobra.Command {
	var (
		configPath string
		tolerance  float64
	)

	cmd := &cobra.Command{
		Use:   "check <dataset.csv>",
		Short: "Run the sanity checks against a lease dataset",
		Long: `Run the full validation rule set against a daily lease dataset.

Checks structural completeness, the six-month date span, per-day volume
bounds, the cumulative Atom/Photon/Spin balance, and the daily workload
assignment partition. All checks run regardless of earlier failures and
their diagnostics are cumulative; only an unparseable date aborts the run.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true, // Don't print usage on errors
		SilenceErrors: true, // Don't print errors - we handle our own error output
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(rootOpts, args[0], configPath, tolerance, cmd)
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "", "YAML file of check thresholds")
	cmd.Flags().Float64Var(&tolerance, "tolerance", 0, "distribution tolerance as a fraction (overrides config)")

	return cmd
}

func runCheck(opts *RootOptions, datasetPath, configPath string, tolerance float64, cmd *cobra.Command) error {
	formatter := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(), // Verbose logs go to stderr to avoid corrupting JSON
		Verbose:   opts.Verbose,
	}

	cfg := config.Default()
	if configPath != "" {
		loaded, err := config.Load(configPath)
		if err != nil {
			return outputCommandError(formatter, ErrCodeConfig, err.Error())
		}
		cfg = loaded
	}
	if tolerance != 0 {
		cfg.Checks.Tolerance = tolerance
		if err := cfg.Validate(); err != nil {
			return outputCommandError(formatter, ErrCodeConfig, err.Error())
		}
	}

	ds, err := dataset.LoadCSV(datasetPath)
	if err != nil {
		return outputCommandError(formatter, ErrCodeDataset, err.Error())
	}
	formatter.VerboseLog("loaded %d records from %s", ds.Len(), datasetPath)

	report, err := runner.New(cfg).Run(ds)
	if err != nil {
		// The only fatal check error is an unparseable date.
		return outputCommandError(formatter, ErrCodeParse, err.Error())
	}
	formatter.VerboseLog("run %s: %d checks, %d failed", report.RunID, len(report.Results), report.Failed())

	return outputReport(formatter, report)
}

// outputCommandError reports a command-level error (exit code 2).
func outputCommandError(formatter *OutputFormatter, code, message string) error {
	_ = formatter.Error(code, message, nil)
	return NewExitError(ExitCommandError, fmt.Sprintf("%s: %s", code, message))
}

// outputReport renders the aggregate report and maps the overall verdict to
// an exit code: 0 when every check passed, 1 otherwise.
func outputReport(formatter *OutputFormatter, report *runner.Report) error {
	if formatter.Format == "json" {
		if report.Passed {
			return formatter.Success(report)
		}
		response := CLIResponse{
			Status: "error",
			Data:   report,
			Error: &CLIError{
				Code:    ErrCodeChecks,
				Message: fmt.Sprintf("%d of %d checks failed", report.Failed(), len(report.Results)),
			},
		}
		if err := writeJSON(formatter, response); err != nil {
			return err
		}
		return NewExitError(ExitFailure, response.Error.Message)
	}

	// Text format
	var buf bytes.Buffer
	report.WriteText(&buf)
	fmt.Fprint(formatter.Writer, buf.String())

	if !report.Passed {
		return NewExitError(ExitFailure, fmt.Sprintf("%d of %d checks failed", report.Failed(), len(report.Results)))
	}
	return nil
}

func writeJSON(formatter *OutputFormatter, response CLIResponse) error {
	encoder := json.NewEncoder(formatter.Writer)
	encoder.SetIndent("", "  ")
	return encoder.Encode(response)
}
