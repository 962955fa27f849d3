package main

import (
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-tactics/internal/engine/grid"
	"github.com/KirkDiggler/rpg-tactics/internal/orchestrators/turn"
	"github.com/KirkDiggler/rpg-tactics/internal/ui"
)

func newPlayCmd() *cobra.Command {
	var (
		loadID   string
		logFile  string
		damageMS int
	)

	cmd := &cobra.Command{
		Use:   "play",
		Short: "Play a match in the terminal",
		Long: `Play against the computer with the mouse. Hover a cell to see what a click
would do, click your unit to select it, then click a cell to move or attack.
Keys: n starts a new game, s saves, q quits.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			// the screen owns the terminal, so logs go to a file or nowhere
			var out io.Writer = io.Discard
			if logFile != "" {
				f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
				if err != nil {
					return err
				}
				defer func() { _ = f.Close() }()
				out = f
			}
			slog.SetDefault(slog.New(slog.NewTextHandler(out, &slog.HandlerOptions{Level: cfg.slogLevel()})))

			defer setupTelemetry(ctx)()

			repo, closeRepo, err := openRepository(ctx)
			if err != nil {
				return err
			}
			defer closeRepo()

			screen, err := ui.NewScreen()
			if err != nil {
				return err
			}
			defer screen.Close()

			geo := grid.New(grid.DefaultSize)
			terminal, err := ui.NewTerminal(&ui.TerminalConfig{
				Screen:         screen,
				Geometry:       geo,
				DamageDuration: time.Duration(damageMS) * time.Millisecond,
			})
			if err != nil {
				return err
			}

			controller, err := newController(controllerDeps{
				Renderer:   terminal,
				Repository: repo,
				Seed:       cfg.Seed,
			})
			if err != nil {
				return err
			}
			defer controller.Wait()

			if loadID != "" {
				_, err = controller.Load(ctx, &turn.LoadInput{GameID: loadID})
			} else {
				_, err = controller.NewGame(ctx, &turn.NewGameInput{})
			}
			if err != nil {
				return err
			}

			loop, err := ui.NewLoop(&ui.LoopConfig{
				Screen:     screen,
				Controller: controller,
				Renderer:   terminal,
				Geometry:   geo,
			})
			if err != nil {
				return err
			}

			go func() {
				<-ctx.Done()
				screen.Interrupt()
			}()

			return loop.Run(ctx)
		},
	}

	cmd.Flags().StringVar(&loadID, "load", "", "resume a saved game by id")
	cmd.Flags().StringVar(&logFile, "log-file", "", "write logs to this file while playing")
	cmd.Flags().IntVar(&damageMS, "damage-ms", int(ui.DefaultDamageDuration/time.Millisecond), "how long damage numbers stay on screen")

	return cmd
}
