package cli

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/spf13/cobra"

	"github.com/starchase/starchase-go/internal/factory"
	"github.com/starchase/starchase-go/internal/model"
	"github.com/starchase/starchase-go/internal/services/game"
)

const simulationTimeout = 60 * time.Second

func newSimulateCmd() *cobra.Command {
	var players int

	cmd := &cobra.Command{
		Use:   "simulate",
		Short: "Run a bots-only game in process and print the outcome",
		RunE: func(cmd *cobra.Command, args []string) error {
			if players < 2 || players > 6 {
				return fmt.Errorf("players must be between 2 and 6, got %d", players)
			}

			logger := newLogger(cfg.LogLevel)

			// Timed phases shrink to near-zero so a full game runs in
			// well under a second
			app, err := factory.New(factory.Config{
				Logger: logger,
				GameConfig: game.Config{
					CountdownDelay: time.Millisecond,
					ResultsDelay:   time.Millisecond,
					TwistDelay:     time.Millisecond,
					RevealDelay:    time.Millisecond,
					PeekDelay:      time.Millisecond,
				},
			})
			if err != nil {
				return err
			}

			ctx, cancel := context.WithTimeout(cmd.Context(), simulationTimeout)
			defer cancel()

			sess, err := app.GameController.CreateSession(ctx, model.Settings{
				AutomatedPlayers: players,
			})
			if err != nil {
				return err
			}

			if err := app.AutoService.ProcessAutoActions(ctx, sess.ID); err != nil {
				return err
			}

			// Timers and the resume hook drive everything from here
			for {
				sess, err = app.GameController.GetSession(ctx, sess.ID)
				if err != nil {
					return err
				}
				if sess.Phase == model.PhaseFinished {
					break
				}
				select {
				case <-ctx.Done():
					return fmt.Errorf("simulation did not finish within %s", simulationTimeout)
				case <-time.After(5 * time.Millisecond):
				}
			}

			summary, err := app.GameController.Summary(ctx, sess.ID)
			if err != nil {
				return err
			}

			printOutcome(sess, summary)
			return nil
		},
	}

	cmd.Flags().IntVar(&players, "players", 3, "Number of automated players")
	return cmd
}

func printOutcome(sess *model.Session, summary *model.SessionSummary) {
	ranked := make([]model.Player, len(sess.Players))
	copy(ranked, sess.Players)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Score > ranked[j].Score
	})

	fmt.Printf("Game %s finished\n\n", sess.ID)
	for i, p := range ranked {
		marker := " "
		if p.ID == summary.Winner {
			marker = "*"
		}
		fmt.Printf("%s %d. %-12s %4d points  %d stars\n",
			marker, i+1, p.DisplayName, p.Score, p.Stars)
	}
	fmt.Printf("\nWinner: %s\n", summary.Winner)
}
