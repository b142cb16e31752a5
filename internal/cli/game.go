package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

func newNewCmd(manager gameManager, opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "new",
		Short: "Start a new game",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			game, err := manager.CreateGame(cmd.Context())
			if err != nil {
				return err
			}

			opts.out(cmd).PrintGame(game)
			return nil
		},
	}
}

func newShowCmd(manager gameManager, opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Show a game",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			game, err := manager.GetGame(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			opts.out(cmd).PrintGame(game)
			return nil
		},
	}
}

func newDropCmd(manager gameManager, opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "drop <id> <column>",
		Short: "Drop the current player's token into a column",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			column, err := parseColumn(args[1])
			if err != nil {
				return err
			}

			game, err := manager.MakeTurn(cmd.Context(), args[0], column)
			if err != nil {
				return err
			}

			opts.out(cmd).PrintGame(game)
			return nil
		},
	}
}

func newListCmd(manager gameManager, opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List stored games",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			games, err := manager.ListGames(cmd.Context())
			if err != nil {
				return err
			}

			opts.out(cmd).PrintGames(games)
			return nil
		},
	}
}

func newDeleteCmd(manager gameManager, opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a stored game",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := manager.DeleteGame(cmd.Context(), args[0]); err != nil {
				return err
			}

			opts.out(cmd).PrintMessage(fmt.Sprintf("game %s deleted", args[0]))
			return nil
		},
	}
}

func parseColumn(raw string) (int, error) {
	column, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid column %q: %w", raw, err)
	}

	return column, nil
}
