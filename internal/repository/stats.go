package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/gridplay/tictactoe-ai-backend/internal/entity"
	"github.com/gridplay/tictactoe-ai-backend/internal/tictactoe"
)

var ErrUnknownResult = errors.New("unknown game result")

type StatsRepository interface {
	RecordResult(ctx context.Context, winner string) error
	Totals(ctx context.Context) (*entity.Stats, error)
}

type statsRepository struct {
	conn *sql.DB
}

func NewStatsRepository(conn *sql.DB) StatsRepository {
	return &statsRepository{
		conn: conn,
	}
}

func (that *statsRepository) RecordResult(ctx context.Context, winner string) error {
	var column string

	switch winner {
	case tictactoe.PlayerX:
		column = "x_wins"
	case tictactoe.PlayerO:
		column = "o_wins"
	case tictactoe.Tie:
		column = "ties"
	default:
		return fmt.Errorf("%w: %q", ErrUnknownResult, winner)
	}

	query := fmt.Sprintf(`INSERT INTO stats (id, %[1]s) VALUES (1, 1)
		ON CONFLICT (id) DO UPDATE SET %[1]s = %[1]s + 1`, column)

	if _, err := that.conn.ExecContext(ctx, query); err != nil {
		return fmt.Errorf("can't record result: %w", err)
	}

	return nil
}

func (that *statsRepository) Totals(ctx context.Context) (*entity.Stats, error) {
	query := `SELECT x_wins, o_wins, ties FROM stats WHERE id = 1`

	var stats entity.Stats

	err := that.conn.QueryRowContext(ctx, query).Scan(&stats.XWins, &stats.OWins, &stats.Ties)
	if errors.Is(err, sql.ErrNoRows) {
		// no game has finished yet
		return &entity.Stats{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("can't read stats: %w", err)
	}

	return &stats, nil
}
