package repository

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"droscher.com/LondonBrew/pkg/model"
)

var ErrScrapeRunNotFound = errors.New("scrape run not found")

type ScrapeRunRepository interface {
	SaveScrapeRun(ctx context.Context, run model.ScrapeRun) (*model.ScrapeRun, error)
	GetLatestScrapeRun(ctx context.Context, source string) (*model.ScrapeRun, error)
}

// SaveScrapeRun stores a run together with its brewery entries. Runs are
// only ever inserted.
func (r *Repository) SaveScrapeRun(ctx context.Context, run model.ScrapeRun) (*model.ScrapeRun, error) {
	if result := r.DB.WithContext(ctx).Create(&run); result.Error != nil {
		return nil, result.Error
	}

	r.Logger.Info("saved scrape run", zap.String("uuid", run.UUID.String()), zap.String("source", run.Source), zap.Int("breweries", len(run.Breweries)))

	return &run, nil
}

func (r *Repository) GetLatestScrapeRun(ctx context.Context, source string) (*model.ScrapeRun, error) {
	var run model.ScrapeRun

	result := r.DB.WithContext(ctx).
		Where("source = ?", source).
		Order("created_at DESC").
		Preload("Breweries", func(db *gorm.DB) *gorm.DB {
			return db.Order("position")
		}).
		First(&run)

	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrScrapeRunNotFound
		}

		return nil, result.Error
	}

	return &run, nil
}
