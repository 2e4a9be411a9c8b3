//go:build !lambda

package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

const defaultReagentFile = "reagents.txt"

var solveCmd = &cobra.Command{
	Use:   "solve [file]",
	Short: "Search for reagent paths once and print the log",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadCLIConfig(cmd)
		if err != nil {
			return err
		}
		path := defaultReagentFile
		if len(args) > 0 {
			path = args[0]
		}
		jsonOut, _ := cmd.Flags().GetBool("json")
		traceOut, _ := cmd.Flags().GetBool("trace")

		ctx := cmd.Context()
		if traceOut {
			shutdown, err := InitTracing(os.Stderr)
			if err != nil {
				return fmt.Errorf("init tracing: %w", err)
			}
			defer shutdown(context.Background())
		}

		rep, err := solveFile(ctx, path, cfg)
		if err != nil {
			return err
		}
		if jsonOut {
			return rep.WriteJSON(cmd.OutOrStdout())
		}
		fmt.Fprint(cmd.OutOrStdout(), rep.String())
		return nil
	},
}

func solveFile(ctx context.Context, path string, cfg Config) (*Report, error) {
	logger := newLogger(cfg.Verbose)
	exitus, reagents, err := LoadReagents(path, cfg)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	logger.Info("loaded reagents", "file", path, "reagents", len(reagents), "exitus", exitus.String())
	return NewSolver(exitus, reagents, cfg).WithLogger(logger).Solve(ctx), nil
}

func init() {
	rootCmd.AddCommand(solveCmd)
	solveCmd.Flags().Bool("json", false, "Output the report as JSON")
	solveCmd.Flags().Bool("trace", false, "Write OpenTelemetry spans to stderr")

	rootCmd.RunE = solveCmd.RunE
	rootCmd.Args = solveCmd.Args
	rootCmd.Flags().AddFlagSet(solveCmd.Flags())
}
