package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/rocketscienceinc/connectfour-backend/internal/apperror"
	"github.com/rocketscienceinc/connectfour-backend/internal/connectfour"
	"github.com/rocketscienceinc/connectfour-backend/internal/entity"
)

type gameRepo interface {
	CreateOrUpdate(ctx context.Context, game *entity.Game) error
	GetByID(ctx context.Context, id string) (*entity.Game, error)
	DeleteByID(ctx context.Context, id string) error
	List(ctx context.Context) ([]string, error)
}

// GameManager drives stored matches through the rules engine.
// Moves on the same match must not run concurrently.
type GameManager struct {
	logger   *slog.Logger
	gameRepo gameRepo
	size     connectfour.Size
	now      func() time.Time
}

func NewGameManager(logger *slog.Logger, gameRepo gameRepo, size connectfour.Size) (*GameManager, error) {
	if err := size.Validate(); err != nil {
		return nil, err
	}

	return &GameManager{
		logger:   logger.With("component", "game_manager"),
		gameRepo: gameRepo,
		size:     size,
		now:      time.Now,
	}, nil
}

// CreateGame - starts a new match on the configured board.
func (that *GameManager) CreateGame(ctx context.Context) (*entity.Game, error) {
	log := that.logger.With("method", "CreateGame")

	engine, err := connectfour.NewGame(that.size)
	if err != nil {
		return nil, fmt.Errorf("failed create game: %w", err)
	}

	game := engine.Snapshot()
	game.ID = uuid.NewString()
	game.CreatedAt = that.now().UTC()
	game.UpdatedAt = game.CreatedAt

	if err = that.gameRepo.CreateOrUpdate(ctx, game); err != nil {
		return nil, fmt.Errorf("failed save game: %w", err)
	}

	log.Info("game created", "game_id", game.ID, "width", game.Width, "height", game.Height, "win_length", game.WinLength)

	return game, nil
}

func (that *GameManager) GetGame(ctx context.Context, id string) (*entity.Game, error) {
	game, err := that.gameRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed get game by id: %w", err)
	}

	return game, nil
}

// MakeTurn - drops the current player's token into the column of the stored match.
// On a rejected move the stored game is returned unchanged together with the error.
func (that *GameManager) MakeTurn(ctx context.Context, id string, column int) (*entity.Game, error) {
	log := that.logger.With("method", "MakeTurn", "game_id", id)

	game, err := that.GetGame(ctx, id)
	if err != nil {
		return nil, err
	}

	engine, err := connectfour.Restore(game)
	if err != nil {
		return nil, fmt.Errorf("failed restore game: %w", err)
	}

	player := engine.CurrentTurn()
	if err = engine.MakeTurn(column); err != nil {
		log.Debug("turn rejected", "player", player.String(), "column", column, "error", err)
		return game, err
	}

	updated := engine.Snapshot()
	updated.ID = game.ID
	updated.CreatedAt = game.CreatedAt
	updated.UpdatedAt = that.now().UTC()

	if err = that.gameRepo.CreateOrUpdate(ctx, updated); err != nil {
		return nil, fmt.Errorf("failed update game: %w", err)
	}

	log.Info("turn made", "player", player.String(), "column", column, "turns", updated.Turns)

	if updated.IsFinished() {
		log.Info("game finished", "winner", updated.Winner.String(), "turns", updated.Turns)
	}

	return updated, nil
}

// ListGames - returns every stored match, skipping ones removed while listing.
func (that *GameManager) ListGames(ctx context.Context) ([]*entity.Game, error) {
	ids, err := that.gameRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed list games: %w", err)
	}

	games := make([]*entity.Game, 0, len(ids))
	for _, id := range ids {
		game, err := that.gameRepo.GetByID(ctx, id)
		if errors.Is(err, apperror.ErrGameNotFound) {
			continue
		}

		if err != nil {
			return nil, fmt.Errorf("failed get game by id: %w", err)
		}

		games = append(games, game)
	}

	return games, nil
}

func (that *GameManager) DeleteGame(ctx context.Context, id string) error {
	if err := that.gameRepo.DeleteByID(ctx, id); err != nil {
		return fmt.Errorf("failed delete game: %w", err)
	}

	that.logger.Info("game deleted", "game_id", id)

	return nil
}
