package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/rocketscienceinc/bowling-kata/internal/entity"
)

const defaultKeyPrefix = "score:"

var ErrScoreReportNotFound = errors.New("score report not found")

type ScoreReportRepository interface {
	CreateOrUpdate(ctx context.Context, report *entity.ScoreReport) error
	GetByID(ctx context.Context, id string) (*entity.ScoreReport, error)
	DeleteByID(ctx context.Context, id string) error
}

type dbScoreReport struct {
	client    *redis.Client
	keyPrefix string
}

// NewScoreReportRepository - keys are built as keyPrefix + report ID, an empty prefix falls back to "score:".
func NewScoreReportRepository(client *redis.Client, keyPrefix string) ScoreReportRepository {
	if keyPrefix == "" {
		keyPrefix = defaultKeyPrefix
	}

	return &dbScoreReport{
		client:    client,
		keyPrefix: keyPrefix,
	}
}

func (that *dbScoreReport) CreateOrUpdate(ctx context.Context, report *entity.ScoreReport) error {
	reportJSON, err := json.Marshal(report)
	if err != nil {
		return fmt.Errorf("could not marshal score report: %w", err)
	}

	err = that.client.Set(ctx, that.key(report.ID), reportJSON, 0).Err()
	if err != nil {
		return fmt.Errorf("failed to set score report: %w", err)
	}

	return nil
}

func (that *dbScoreReport) GetByID(ctx context.Context, id string) (*entity.ScoreReport, error) {
	response, err := that.client.Get(ctx, that.key(id)).Result()

	if errors.Is(err, redis.Nil) {
		return &entity.ScoreReport{}, ErrScoreReportNotFound
	}

	if err != nil {
		return &entity.ScoreReport{}, fmt.Errorf("failed to get score report by id: %w", err)
	}

	var existingReport entity.ScoreReport
	if err = json.Unmarshal([]byte(response), &existingReport); err != nil {
		return &entity.ScoreReport{}, fmt.Errorf("failed to unmarshal score report: %w", err)
	}

	return &existingReport, nil
}

func (that *dbScoreReport) DeleteByID(ctx context.Context, id string) error {
	deleted, err := that.client.Del(ctx, that.key(id)).Result()
	if err != nil {
		return fmt.Errorf("failed to delete score report by ID: %w", err)
	}

	if deleted == 0 {
		return ErrScoreReportNotFound
	}

	return nil
}

func (that *dbScoreReport) key(id string) string {
	return that.keyPrefix + id
}
