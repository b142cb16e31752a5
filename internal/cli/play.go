package cli

import (
	"bufio"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/rocketscienceinc/connectfour-backend/internal/apperror"
)

func newPlayCmd(manager gameManager, opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "play",
		Short: "Play a whole game in this terminal",
		Long: `Starts a new game and reads one column number per line from stdin.
Rejected moves are reported and the same player tries again. Enter "q" to stop.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			out := opts.out(cmd)

			game, err := manager.CreateGame(ctx)
			if err != nil {
				return err
			}

			out.PrintGame(game)

			scanner := bufio.NewScanner(cmd.InOrStdin())
			for !game.IsFinished() {
				out.Prompt(fmt.Sprintf("%s> ", game.Turn))

				if !scanner.Scan() {
					break
				}

				line := strings.TrimSpace(scanner.Text())
				if line == "" {
					continue
				}
				if line == "q" {
					break
				}

				column, err := parseColumn(line)
				if err != nil {
					out.PrintError(cmd.ErrOrStderr(), err)
					continue
				}

				updated, err := manager.MakeTurn(ctx, game.ID, column)
				if errors.Is(err, apperror.ErrNoSuchColumn) || errors.Is(err, apperror.ErrColumnIsFull) {
					out.PrintError(cmd.ErrOrStderr(), err)
					continue
				}
				if err != nil {
					return err
				}

				game = updated
				out.PrintGame(game)
			}

			if err = scanner.Err(); err != nil {
				return fmt.Errorf("failed to read moves: %w", err)
			}

			return nil
		},
	}
}
