package service

import (
	"context"
	"fmt"

	"github.com/gridplay/tictactoe-ai-backend/internal/entity"
)

type StatsService interface {
	RecordResult(ctx context.Context, winner string) error
	Totals(ctx context.Context) (*entity.Stats, error)
}

type statsRepo interface {
	RecordResult(ctx context.Context, winner string) error
	Totals(ctx context.Context) (*entity.Stats, error)
}

type statsService struct {
	statsRepo statsRepo
}

func NewStatsService(statsRepo statsRepo) StatsService {
	return &statsService{
		statsRepo: statsRepo,
	}
}

func (that *statsService) RecordResult(ctx context.Context, winner string) error {
	if err := that.statsRepo.RecordResult(ctx, winner); err != nil {
		return fmt.Errorf("could not record result: %w", err)
	}

	return nil
}

func (that *statsService) Totals(ctx context.Context) (*entity.Stats, error) {
	stats, err := that.statsRepo.Totals(ctx)
	if err != nil {
		return nil, fmt.Errorf("could not read totals: %w", err)
	}

	return stats, nil
}
