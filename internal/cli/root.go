package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rocketscienceinc/connectfour-backend/internal/apperror"
	"github.com/rocketscienceinc/connectfour-backend/internal/entity"
)

// storedAnnotation marks commands that need games to outlive the process.
const storedAnnotation = "stored"

type gameManager interface {
	CreateGame(ctx context.Context) (*entity.Game, error)
	GetGame(ctx context.Context, id string) (*entity.Game, error)
	MakeTurn(ctx context.Context, id string, column int) (*entity.Game, error)
	ListGames(ctx context.Context) ([]*entity.Game, error)
	DeleteGame(ctx context.Context, id string) error
}

type options struct {
	output string
}

// NewRootCmd creates the root command.
// With playOnly set only "play" runs; the other commands fail because nothing
// keeps their games once the process exits.
func NewRootCmd(manager gameManager, playOnly bool) *cobra.Command {
	opts := &options{output: FormatText}

	rootCmd := &cobra.Command{
		Use:   "connectfour",
		Short: "Play connect four from the terminal",
		Long: `connectfour drives the connect four rules engine.

"play" runs a whole match in one terminal. With storage.type set to redis
games are also kept between invocations, so two players can take turns with
"new", "drop", "show", "list" and "delete".`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if playOnly && cmd.Annotations[storedAnnotation] != "" {
				return fmt.Errorf("%w: set storage.type to redis to use %q", apperror.ErrPlayOnly, cmd.Name())
			}

			return nil
		},
	}

	rootCmd.PersistentFlags().StringVarP(&opts.output, "output", "o", opts.output, "Output format: text, json")

	rootCmd.AddCommand(stored(newNewCmd(manager, opts)))
	rootCmd.AddCommand(stored(newShowCmd(manager, opts)))
	rootCmd.AddCommand(stored(newDropCmd(manager, opts)))
	rootCmd.AddCommand(stored(newListCmd(manager, opts)))
	rootCmd.AddCommand(stored(newDeleteCmd(manager, opts)))
	rootCmd.AddCommand(newPlayCmd(manager, opts))

	return rootCmd
}

func (that *options) out(cmd *cobra.Command) *Output {
	return NewOutput(that.output, cmd.OutOrStdout())
}

func stored(cmd *cobra.Command) *cobra.Command {
	cmd.Annotations = map[string]string{storedAnnotation: "true"}
	return cmd
}
