package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"go.uber.org/multierr"
	"go.uber.org/zap"

	"droscher.com/LondonBrew/configs"
	"droscher.com/LondonBrew/pkg/integrations"
	"droscher.com/LondonBrew/pkg/model"
	"droscher.com/LondonBrew/pkg/repository"
)

type ScrapeCmd struct {
	ConfigFile string `default:".LondonBrew.toml" help:"Path to config file" short:"c"`
	Save       bool   `help:"Archive each scrape in the database"`
}

type scrapeOutput struct {
	Source      string          `json:"source"`
	URL         string          `json:"url"`
	SkippedRows int             `json:"skippedRows"`
	Breweries   []model.Brewery `json:"breweries"`
}

func (s *ScrapeCmd) Run(ctx *Context) error {
	logger := newDevelopmentLogger(ctx)
	defer logger.Sync() //nolint:errcheck // we don't care about logger sync errors

	conf, err := configs.GetConfig(s.ConfigFile, logger)
	if err != nil {
		logger.Error("error loading config", zap.Error(err))

		return err
	}

	var scrapeRuns repository.ScrapeRunRepository

	if s.Save {
		repo, openErr := repository.Open(conf, logger)
		if openErr != nil {
			logger.Error("error connecting to database", zap.Error(openErr))

			return openErr
		}
		defer repo.Close()

		scrapeRuns = repo
	}

	finder := func(name string) integrations.Integration {
		return integrations.GetIntegration(name, conf, logger)
	}

	return runScrape(context.Background(), conf.Integrations.Breweries, finder, scrapeRuns, os.Stdout, logger)
}

// runScrape scrapes each source in turn and writes the results to out. A
// failing source is logged and does not stop the others.
func runScrape(ctx context.Context, sources []string, finder func(string) integrations.Integration,
	scrapeRuns repository.ScrapeRunRepository, out io.Writer, logger *zap.Logger,
) error {
	var errs error

	results := make([]scrapeOutput, 0, len(sources))

	for _, source := range sources {
		integration := finder(source)
		if integration == nil {
			logger.Error("unknown integration", zap.String("integration", source))
			multierr.AppendInto(&errs, fmt.Errorf("%w: %s", integrations.ErrUnknownIntegration, source))

			continue
		}

		result, err := integration.ScrapeBreweries()
		if err != nil {
			logger.Error("failed brewery scrape", zap.String("integration", source), zap.Error(err))
			multierr.AppendInto(&errs, err)

			continue
		}

		if scrapeRuns != nil {
			_, err = scrapeRuns.SaveScrapeRun(ctx, model.NewScrapeRun(result))
			if err != nil {
				logger.Error("error saving scrape run", zap.String("integration", source), zap.Error(err))
				multierr.AppendInto(&errs, err)
			}
		}

		results = append(results, scrapeOutput{
			Source:      result.Source,
			URL:         result.URL,
			SkippedRows: result.SkippedRows(),
			Breweries:   result.Breweries,
		})
	}

	encoder := json.NewEncoder(out)
	encoder.SetIndent("", "  ")

	if err := encoder.Encode(results); err != nil {
		return multierr.Append(errs, err)
	}

	return errs
}
