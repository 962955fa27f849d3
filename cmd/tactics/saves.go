package main

import (
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-tactics/internal/repositories/games"
)

func newSavesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "saves",
		Short: "Manage saved games",
	}

	cmd.AddCommand(newSavesListCmd())
	cmd.AddCommand(newSavesDeleteCmd())

	return cmd
}

func newSavesListCmd() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List saved games, newest first",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			repo, closeRepo, err := openRepository(ctx)
			if err != nil {
				return err
			}
			defer closeRepo()

			out, err := repo.List(ctx, games.ListInput{Limit: limit})
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tSAVED\tTURN\tTO ACT\tPHASE\tUNITS")
			for _, g := range out.Games {
				fmt.Fprintf(w, "%s\t%s\t%d\t%s\t%s\t%d\n",
					g.ID, g.SavedAt.Format(time.RFC3339), g.Turn, g.ActiveSide, g.Phase, len(g.Units))
			}
			return w.Flush()
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 20, "maximum number of games to show; 0 shows all")

	return cmd
}

func newSavesDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <game-id>",
		Short: "Delete a saved game",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			repo, closeRepo, err := openRepository(ctx)
			if err != nil {
				return err
			}
			defer closeRepo()

			if _, err := repo.Delete(ctx, games.DeleteInput{ID: args[0]}); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "deleted %s\n", args[0])
			return nil
		},
	}
}
