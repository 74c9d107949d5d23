package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/bufbuild/connect-go"
	"go.uber.org/zap"

	"droscher.com/LondonBrew/configs"
	"droscher.com/LondonBrew/pkg/integrations"
	"droscher.com/LondonBrew/pkg/model"
	"droscher.com/LondonBrew/pkg/repository"
)

const (
	BreweryServiceName = "londonbrew.v1.BreweryService"

	ListBreweriesProcedure    = "/londonbrew.v1.BreweryService/ListBreweries"
	RefreshBreweriesProcedure = "/londonbrew.v1.BreweryService/RefreshBreweries"
)

var (
	ErrNoSources      = errors.New("no brewery sources configured")
	ErrScrapeFailed   = errors.New("brewery list scrape failed")
	ErrSnapshotAbsent = errors.New("no brewery snapshot available")
)

type ListBreweriesRequest struct {
	Source string `json:"source,omitempty"`
}

type ListBreweriesResponse struct {
	RunID     string          `json:"runId"`
	Source    string          `json:"source"`
	URL       string          `json:"url"`
	ScrapedAt time.Time       `json:"scrapedAt"`
	Breweries []model.Brewery `json:"breweries"`
}

type RefreshBreweriesRequest struct {
	Source string `json:"source,omitempty"`
}

type RefreshBreweriesResponse struct {
	RunID        string `json:"runId"`
	Source       string `json:"source"`
	BreweryCount int    `json:"breweryCount"`
	SkippedRows  int    `json:"skippedRows"`
}

type IntegrationFinder func(name string) integrations.Integration

type BreweryServer struct {
	repository   repository.ScrapeRunRepository
	integrations IntegrationFinder
	logger       *zap.Logger
	config       *configs.Config
}

func NewBreweryServer(repo repository.ScrapeRunRepository, finder IntegrationFinder, logger *zap.Logger, config *configs.Config) *BreweryServer {
	return &BreweryServer{repository: repo, integrations: finder, logger: logger, config: config}
}

// NewBreweryServiceHandler mounts the brewery service procedures and returns
// the path prefix to register them under.
func NewBreweryServiceHandler(svc *BreweryServer, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = append(opts, connect.WithCodec(JSONCodec{}))

	mux := http.NewServeMux()
	mux.Handle(ListBreweriesProcedure, connect.NewUnaryHandler(ListBreweriesProcedure, svc.ListBreweries, opts...))
	mux.Handle(RefreshBreweriesProcedure, connect.NewUnaryHandler(RefreshBreweriesProcedure, svc.RefreshBreweries, opts...))

	return "/" + BreweryServiceName + "/", mux
}

func (b *BreweryServer) ListBreweries(ctx context.Context, request *connect.Request[ListBreweriesRequest]) (*connect.Response[ListBreweriesResponse], error) {
	source, err := b.source(request.Msg.Source)
	if err != nil {
		return nil, connect.NewError(connect.CodeInvalidArgument, err)
	}

	run, err := b.repository.GetLatestScrapeRun(ctx, source)
	if err != nil {
		if errors.Is(err, repository.ErrScrapeRunNotFound) {
			return nil, connect.NewError(connect.CodeNotFound, fmt.Errorf("%w: %s", ErrSnapshotAbsent, source))
		}

		b.logger.Error("error loading latest scrape run", zap.String("source", source), zap.Error(err))

		return nil, err
	}

	response := ListBreweriesResponse{
		RunID:     run.UUID.String(),
		Source:    run.Source,
		URL:       run.URL,
		ScrapedAt: run.CreatedAt,
		Breweries: run.BreweryRecords(),
	}

	return connect.NewResponse(&response), nil
}

func (b *BreweryServer) RefreshBreweries(ctx context.Context, request *connect.Request[RefreshBreweriesRequest]) (*connect.Response[RefreshBreweriesResponse], error) {
	source, err := b.source(request.Msg.Source)
	if err != nil {
		return nil, connect.NewError(connect.CodeInvalidArgument, err)
	}

	integration := b.integrations(source)
	if integration == nil {
		return nil, connect.NewError(connect.CodeInvalidArgument, fmt.Errorf("%w: %s", integrations.ErrUnknownIntegration, source))
	}

	result, err := integration.ScrapeBreweries()
	if err != nil {
		b.logger.Error("failed brewery scrape", zap.String("integration", source), zap.Error(err))

		return nil, connect.NewError(connect.CodeUnavailable, fmt.Errorf("%w: %w", ErrScrapeFailed, err))
	}

	run, err := b.repository.SaveScrapeRun(ctx, model.NewScrapeRun(result))
	if err != nil {
		b.logger.Error("error saving scrape run", zap.String("integration", source), zap.Error(err))

		return nil, err
	}

	response := RefreshBreweriesResponse{
		RunID:        run.UUID.String(),
		Source:       run.Source,
		BreweryCount: len(run.Breweries),
		SkippedRows:  run.SkippedRows,
	}

	return connect.NewResponse(&response), nil
}

func (b *BreweryServer) source(requested string) (string, error) {
	if len(requested) > 0 {
		return requested, nil
	}

	if len(b.config.Integrations.Breweries) == 0 {
		return "", ErrNoSources
	}

	return b.config.Integrations.Breweries[0], nil
}
