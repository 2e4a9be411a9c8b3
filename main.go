//go:build !lambda

package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "mutagen-solver",
	Short: "Find reagent sequences that reproduce an exitus",
	Long: `mutagen-solver reads a reagent file (one reagent per line: name, then atoms;
the Exitus-1 line is the target) and searches for ordered reagent paths whose
combined atoms equal the exitus exactly. Atoms prefixed with "-" cancel a
previously applied atom.`,
	SilenceUsage: true,
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.String("config", "", "YAML config file")
	pf.BoolP("verbose", "v", false, "Print detailed search progress to stderr")
	pf.Int("max-depth", 0, "Longest reagent path to search (overrides config)")
	pf.Int("max-iterations", 0, "Frontier pops per start (overrides config)")
	pf.Int("workers", 0, "Concurrent searches, 0 = one per start (overrides config)")
	pf.String("exitus", "", "Name of the target line (overrides config)")
}

// loadCLIConfig loads --config and applies flags the user set explicitly.
func loadCLIConfig(cmd *cobra.Command) (Config, error) {
	flags := cmd.Flags()
	path, _ := flags.GetString("config")
	cfg, err := LoadConfig(path)
	if err != nil {
		return cfg, err
	}

	if flags.Changed("verbose") {
		cfg.Verbose, _ = flags.GetBool("verbose")
	}
	if flags.Changed("max-depth") {
		cfg.MaxDepth, _ = flags.GetInt("max-depth")
	}
	if flags.Changed("max-iterations") {
		cfg.MaxIterations, _ = flags.GetInt("max-iterations")
	}
	if flags.Changed("workers") {
		cfg.MaxWorkers, _ = flags.GetInt("workers")
	}
	if flags.Changed("exitus") {
		cfg.ExitusName, _ = flags.GetString("exitus")
	}
	return cfg, cfg.Validate()
}

func newLogger(verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
