// Package main is the entry point for the tactics game
package main

import (
	"fmt"
	"io/fs"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-tactics/internal/errors"
)

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "tactics",
		Short: "Turn-based tactics on an 8x8 board",
		Long:  `Command two units against the computer's two on an 8x8 board, or let two greedy players fight it out.`,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if err := cfg.Validate(); err != nil {
				return err
			}
			slog.SetDefault(slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: cfg.slogLevel()})))
			return nil
		},
		SilenceUsage: true,
	}

	bindFlags(rootCmd)
	rootCmd.AddCommand(newPlayCmd())
	rootCmd.AddCommand(newSimulateCmd())
	rootCmd.AddCommand(newSavesCmd())

	return rootCmd
}

func main() {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		fmt.Fprintf(os.Stderr, "Error: failed to read .env: %v\n", err)
		os.Exit(1)
	}

	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
