package commands

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/ajwalkiewicz/tcomp/internal/bank"
	"github.com/ajwalkiewicz/tcomp/internal/config"
	"github.com/ajwalkiewicz/tcomp/internal/ingest"
	"github.com/ajwalkiewicz/tcomp/internal/logging"
	"github.com/ajwalkiewicz/tcomp/internal/recon"
	"github.com/ajwalkiewicz/tcomp/internal/render"
)

const defaultConfigFile = "tcomp.yaml"

func newCompareCommand() *cobra.Command {
	var bankID string
	var configPath string
	var verbose bool

	registry := bank.Default()

	cmd := &cobra.Command{
		Use:   "compare <file_a.json> <file_b.csv>",
		Short: "Diff a budgeting-service JSON export against a bank CSV statement",
		Long: "Compare reads transactions from a budgeting-service JSON export (file_a)\n" +
			"and a bank CSV statement (file_b), matches them by amount within a three\n" +
			"day date window, and prints the transactions unique to each file.\n\n" +
			"Supported banks: " + strings.Join(registry.Banks(), ", "),
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(configPath)
			if err != nil {
				return err
			}
			if verbose {
				cfg.Log.Level = "debug"
			}
			logging.Setup(cfg.Log.Level)

			if bankID == "" {
				bankID = cfg.DefaultBank
			}

			return runCompare(cmd, registry, cfg, args[0], args[1], bankID)
		},
	}

	cmd.Flags().StringVar(&bankID, "bank", "", "bank that produced the csv statement (default from config, millennium)")
	cmd.Flags().StringVar(&configPath, "config", "", "path to tcomp.yaml")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	return cmd
}

// resolveConfig loads an explicit --config path, falls back to a
// tcomp.yaml in the working directory, and otherwise uses defaults.
func resolveConfig(path string) (*config.Config, error) {
	if path != "" {
		return config.Load(path)
	}
	if _, err := os.Stat(defaultConfigFile); err == nil {
		return config.Load(defaultConfigFile)
	}
	return config.Default(), nil
}

func runCompare(cmd *cobra.Command, registry *bank.Registry, cfg *config.Config, fileA, fileB, bankID string) error {
	// Validate the bank selector before touching either file.
	parser, err := registry.Get(bankID)
	if err != nil {
		return fmt.Errorf("%w (supported: %s)", err, strings.Join(registry.Banks(), ", "))
	}

	start := time.Now()

	transactionsA, err := ingest.JSONFile(fileA)
	if err != nil {
		return err
	}
	slog.Debug("ingested budgeting export", "file", fileA, "transactions", len(transactionsA))

	transactionsB, err := ingest.CSVFile(fileB, parser)
	if err != nil {
		return err
	}
	slog.Debug("ingested bank statement", "file", fileB, "bank", parser.Bank(), "transactions", len(transactionsB))

	diff := recon.Compare(transactionsA, transactionsB)
	slog.Debug("compared transactions",
		"only_in_a", len(diff.OnlyInA),
		"only_in_b", len(diff.OnlyInB),
		"elapsed", time.Since(start))

	out := cmd.OutOrStdout()
	render.Table(out, fmt.Sprintf("In %s but not in %s", fileA, fileB), cfg.Output.DateLayout, diff.OnlyInA)
	fmt.Fprintln(out)
	render.Table(out, fmt.Sprintf("In %s but not in %s", fileB, fileA), cfg.Output.DateLayout, diff.OnlyInB)

	return nil
}
