//go:build !lambda

package main

import (
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

var watchCmd = &cobra.Command{
	Use:   "watch [file]",
	Short: "Solve, then solve again every time the reagent file changes",
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
		debounce, _ := cmd.Flags().GetDuration("debounce")
		logger := newLogger(cfg.Verbose)
		out := cmd.OutOrStdout()

		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		run := func() {
			rep, err := solveFile(ctx, path, cfg)
			if err != nil {
				// Keep watching: the next save may fix the file.
				logger.Error("solve failed", "err", err)
				return
			}
			fmt.Fprint(out, rep.String())
		}

		run()
		logger.Info("watching", "file", path)
		return watchFile(ctx, path, debounce, logger, run)
	},
}

func init() {
	rootCmd.AddCommand(watchCmd)
	watchCmd.Flags().Duration("debounce", defaultWatchDebounce, "Delay after the last change before solving")
}
