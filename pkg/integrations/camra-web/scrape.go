package camraweb

import (
	"errors"
	"fmt"
	"net/url"

	"github.com/PuerkitoBio/goquery"
	"github.com/gocolly/colly/v2"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"droscher.com/LondonBrew/pkg/model"
)

var (
	ErrFetch   = errors.New("failed to fetch brewery list")
	ErrNoTable = errors.New("no table found")
)

// ScrapeBreweries fetches the brewery list page and parses the first table on
// it. Fetch and structure failures abort the scrape; rows that fail to parse
// are logged, recorded in the result's RowErrors and skipped.
func (c *CamraWebIntegration) ScrapeBreweries() (*model.ScrapeResult, error) {
	target, err := url.Parse(c.url)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFetch, err)
	}

	options := []colly.CollectorOption{colly.AllowedDomains(target.Hostname())}
	if len(c.userAgent) > 0 {
		options = append(options, colly.UserAgent(c.userAgent))
	}

	collector := colly.NewCollector(options...)
	collector.SetRequestTimeout(c.timeout)

	result := model.ScrapeResult{Source: IntegrationName, URL: c.url}
	tableFound := false

	collector.OnHTML("html", func(element *colly.HTMLElement) {
		table := element.DOM.Find("table").First()
		if table.Length() == 0 {
			return
		}

		tableFound = true
		result.Breweries, result.RowErrors = c.parseTable(table)
	})

	collector.OnError(func(response *colly.Response, err error) {
		c.logger.Error("error while scraping brewery list", zap.String("url", response.Request.URL.String()), zap.Int("status", response.StatusCode), zap.Error(err))
	})

	c.logger.Info("scraping brewery list", zap.String("url", c.url))

	err = collector.Visit(c.url)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrFetch, c.url, err)
	}

	if !tableFound {
		return nil, fmt.Errorf("%w: %s", ErrNoTable, c.url)
	}

	c.logger.Info("finished scraping brewery list", zap.Int("breweries", len(result.Breweries)), zap.Int("skipped", result.SkippedRows()))

	return &result, nil
}

func (c *CamraWebIntegration) parseTable(table *goquery.Selection) ([]model.Brewery, error) {
	var errs error

	breweries := make([]model.Brewery, 0)

	table.Find("tr").Each(func(index int, row *goquery.Selection) {
		if index == 0 {
			return
		}

		brewery, err := ParseRow(row)
		if multierr.AppendInto(&errs, rowError(index, err)) {
			c.logger.Warn("skipping row", zap.Int("row", index), zap.Error(err))

			return
		}

		breweries = append(breweries, *brewery)
	})

	return breweries, errs
}

func rowError(index int, err error) error {
	if err == nil {
		return nil
	}

	return fmt.Errorf("row %d: %w", index, err)
}
