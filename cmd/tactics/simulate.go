package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-tactics/internal/engine/grid"
	"github.com/KirkDiggler/rpg-tactics/internal/entities"
	"github.com/KirkDiggler/rpg-tactics/internal/errors"
	"github.com/KirkDiggler/rpg-tactics/internal/orchestrators/turn"
	"github.com/KirkDiggler/rpg-tactics/internal/strategy"
	"github.com/KirkDiggler/rpg-tactics/internal/ui"
)

func newSimulateCmd() *cobra.Command {
	var (
		matches  int
		maxTurns int
		save     bool
	)

	cmd := &cobra.Command{
		Use:   "simulate",
		Short: "Let the greedy strategy play both sides",
		Long: `Run matches without a screen. The player's side is driven through the same
clicks a person would make, so every action goes through the normal rules.
With --seed set, match i uses seed+i and replays exactly.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			if matches < 1 {
				return errors.InvalidArgument("games must be at least 1")
			}

			defer setupTelemetry(ctx)()

			repo, closeRepo, err := openRepository(ctx)
			if err != nil {
				return err
			}
			defer closeRepo()

			out := cmd.OutOrStdout()
			wins := map[entities.Side]int{}

			for i := 0; i < matches; i++ {
				seed := cfg.Seed
				if seed != 0 {
					seed += int64(i)
				}

				controller, err := newController(controllerDeps{
					Renderer:   ui.NewHeadless(slog.Default()),
					Repository: repo,
					Seed:       seed,
					Sequential: seed != 0,
				})
				if err != nil {
					return err
				}

				started, err := controller.NewGame(ctx, &turn.NewGameInput{})
				if err != nil {
					return err
				}

				greedy, err := strategy.NewGreedy(&strategy.Config{BoardSize: grid.DefaultSize})
				if err != nil {
					return err
				}
				pilot, err := ui.NewAutopilot(&ui.AutopilotConfig{
					Controller: controller,
					Strategy:   greedy,
					MaxTurns:   maxTurns,
				})
				if err != nil {
					return err
				}

				result, err := pilot.Play(ctx)
				if err != nil {
					return errors.Wrapf(err, "match %d failed", i+1)
				}

				outcome := "unfinished"
				if result.Finished {
					outcome = string(result.Winner) + " wins"
					wins[result.Winner]++
				}
				fmt.Fprintf(out, "match %d (%s): %s after %d turns\n", i+1, started.State.ID, outcome, result.Turns)

				if save {
					saved, err := controller.Save(ctx)
					if err != nil {
						return err
					}
					fmt.Fprintf(out, "  saved as %s\n", saved.GameID)
				}
			}

			fmt.Fprintf(out, "player %d, computer %d, unfinished %d\n",
				wins[entities.SidePlayer], wins[entities.SideComputer],
				matches-wins[entities.SidePlayer]-wins[entities.SideComputer])
			return nil
		},
	}

	cmd.Flags().IntVar(&matches, "games", 1, "number of matches to play")
	cmd.Flags().IntVar(&maxTurns, "max-turns", ui.DefaultMaxTurns, "stop a match after this many turns")
	cmd.Flags().BoolVar(&save, "save", false, "save each finished match to the store")

	return cmd
}
