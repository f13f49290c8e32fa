package cli

import (
	"fmt"
	"net/url"

	"github.com/spf13/cobra"
)

func newLeaderboardCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "leaderboard",
		Short: "Leaderboard commands",
	}

	cmd.AddCommand(newLeaderboardGetCmd())
	cmd.AddCommand(newLeaderboardSubmitCmd())

	return cmd
}

func newLeaderboardGetCmd() *cobra.Command {
	var mode string

	cmd := &cobra.Command{
		Use:   "get",
		Short: "Show the leaderboard",
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "/api/v1/leaderboard"
			if mode != "" {
				path += "?mode=" + url.QueryEscape(mode)
			}

			var result []LeaderboardEntry
			if err := client.Get(path, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().StringVar(&mode, "mode", "", "Filter by game mode: walls, pass-through")

	return cmd
}

func newLeaderboardSubmitCmd() *cobra.Command {
	var score int
	var mode string

	cmd := &cobra.Command{
		Use:   "submit",
		Short: "Submit a score",
		RunE: func(cmd *cobra.Command, args []string) error {
			if mode == "" {
				return fmt.Errorf("--mode is required")
			}

			req := map[string]any{
				"score": score,
				"mode":  mode,
			}
			var result SubmitResult

			if err := client.Post("/api/v1/leaderboard", req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().IntVar(&score, "score", 0, "Score to submit (required)")
	cmd.Flags().StringVar(&mode, "mode", "", "Game mode: walls, pass-through (required)")
	_ = cmd.MarkFlagRequired("score")
	_ = cmd.MarkFlagRequired("mode")

	return cmd
}
