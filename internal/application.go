package application

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/rocketscienceinc/connectfour-backend/internal/cli"
	"github.com/rocketscienceinc/connectfour-backend/internal/config"
	"github.com/rocketscienceinc/connectfour-backend/internal/repository"
	"github.com/rocketscienceinc/connectfour-backend/internal/repository/storage"
	"github.com/rocketscienceinc/connectfour-backend/internal/usecase"
)

var ErrAddrNotFound = errors.New("redis address string is empty")

// IO holds the streams the command line reads from and writes to.
type IO struct {
	In  io.Reader
	Out io.Writer
	Err io.Writer
}

// RunApp - builds storage and the game manager, then runs the command line.
func RunApp(ctx context.Context, logger *slog.Logger, conf *config.Config, args []string, streams IO) error {
	log := logger.With("component", "app")

	gameRepo, closeRepo, err := newGameRepository(ctx, conf)
	if err != nil {
		return err
	}

	defer func() {
		if err := closeRepo(); err != nil {
			log.Error("could not close storage", "error", err)
		}
	}()

	gameManager, err := usecase.NewGameManager(logger, gameRepo, conf.Board.Size())
	if err != nil {
		return fmt.Errorf("could not create game manager: %w", err)
	}

	rootCmd := cli.NewRootCmd(gameManager, conf.Storage.Type != config.StorageRedis)
	rootCmd.SetArgs(args)
	rootCmd.SetIn(streams.In)
	rootCmd.SetOut(streams.Out)
	rootCmd.SetErr(streams.Err)

	log.Debug("running command", "args", args, "storage", conf.Storage.Type)

	return rootCmd.ExecuteContext(ctx)
}

func newGameRepository(ctx context.Context, conf *config.Config) (repository.GameRepository, func() error, error) {
	if conf.Storage.Type != config.StorageRedis {
		return repository.NewMemoryGameRepository(), func() error { return nil }, nil
	}

	if conf.Redis.Host == "" || conf.Redis.Port == "" {
		return nil, nil, ErrAddrNotFound
	}

	redisStorage, err := storage.NewRedisStorage(ctx, conf.Redis.GetRedisAddr())
	if err != nil {
		return nil, nil, fmt.Errorf("could not connect to redis storage: %w", err)
	}

	return repository.NewGameRepository(redisStorage, conf.Redis.TTL), redisStorage.Close, nil
}
