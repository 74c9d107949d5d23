package repository_test

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.openly.dev/pointy"

	"droscher.com/LondonBrew/pkg/model"
	"droscher.com/LondonBrew/pkg/repository"
)

type ScrapeRunTestSuite struct {
	RepositorySuite
}

func TestScrapeRunTestSuite(t *testing.T) {
	suite.Run(t, new(ScrapeRunTestSuite))
}

func (suite *ScrapeRunTestSuite) TearDownTest() {
	suite.NoError(suite.mock.ExpectationsWereMet())
}

func (suite *ScrapeRunTestSuite) TestSaveScrapeRun_SavesRunAndEntries() {
	runUUID := uuid.New()

	suite.mock.ExpectBegin()
	suite.mock.ExpectQuery(`^INSERT INTO "scrape_runs" (.+) RETURNING "id"`).
		WithArgs(sqlmock.AnyArg(), sqlmock.AnyArg(), nil, runUUID, "camra_web", "https://breweries.test/list", 1).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(uint(5)))
	suite.mock.ExpectQuery(`^INSERT INTO "brewery_entries" (.+)`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(uint(1)).AddRow(uint(2)))
	suite.mock.ExpectCommit()

	run := model.ScrapeRun{
		UUID:        runUUID,
		Source:      "camra_web",
		URL:         "https://breweries.test/list",
		SkippedRows: 1,
		Breweries: []model.BreweryEntry{
			{Position: 0, Name: "Five Points", Website: pointy.String("https://fivepointsbrew.co.uk/")},
			{Position: 1, Name: "The Kernel", TaproomLabel: pointy.String("Arch 7"), TaproomURL: pointy.String("https://thekernelbrewery.com/")},
		},
	}

	result, err := suite.repository.SaveScrapeRun(context.Background(), run)
	suite.Require().NoError(err)
	suite.Require().NotNil(result)

	suite.Equal(uint(5), result.ID)
	suite.Require().Len(result.Breweries, 2)
	suite.Equal(uint(1), result.Breweries[0].ID)
	suite.Equal(uint(5), result.Breweries[0].RunID)
	suite.Equal(uint(2), result.Breweries[1].ID)
	suite.Equal(uint(5), result.Breweries[1].RunID)
	suite.Equal(1, suite.observedLogs.FilterMessage("saved scrape run").Len())
}

func (suite *ScrapeRunTestSuite) TestSaveScrapeRun_ReturnsError() {
	suite.mock.ExpectBegin()
	suite.mock.ExpectQuery(`^INSERT INTO "scrape_runs"`).WillReturnError(errors.New("duplicate key value")) //nolint:err113 // test error
	suite.mock.ExpectRollback()

	result, err := suite.repository.SaveScrapeRun(context.Background(), model.ScrapeRun{UUID: uuid.New(), Source: "camra_web"})

	suite.Nil(result)
	suite.EqualError(err, "duplicate key value")
}

func (suite *ScrapeRunTestSuite) TestGetLatestScrapeRun_LoadsEntriesInOrder() {
	runUUID := uuid.New()

	suite.mock.ExpectQuery(`^SELECT \* FROM "scrape_runs" WHERE source = \$1 (.+) ORDER BY created_at DESC`).
		WithArgs("camra_web", 1).
		WillReturnRows(sqlmock.NewRows([]string{"id", "uuid", "source", "url", "skipped_rows"}).
			AddRow(uint(7), runUUID.String(), "camra_web", "https://breweries.test/list", 2))
	suite.mock.ExpectQuery(`^SELECT \* FROM "brewery_entries" WHERE "brewery_entries"."run_id" = \$1 (.+) ORDER BY position`).
		WithArgs(7).
		WillReturnRows(sqlmock.NewRows([]string{"id", "run_id", "position", "name", "website", "taproom_label", "taproom_url"}).
			AddRow(uint(10), uint(7), 0, "Five Points", "https://fivepointsbrew.co.uk/", nil, nil).
			AddRow(uint(11), uint(7), 1, "The Kernel", nil, "Arch 7", "https://thekernelbrewery.com/"))

	run, err := suite.repository.GetLatestScrapeRun(context.Background(), "camra_web")
	suite.Require().NoError(err)
	suite.Require().NotNil(run)

	suite.Equal(uint(7), run.ID)
	suite.Equal(runUUID, run.UUID)
	suite.Equal(2, run.SkippedRows)

	breweries := run.BreweryRecords()
	suite.Require().Len(breweries, 2)
	suite.Equal("Five Points", breweries[0].Name)
	suite.Equal("https://fivepointsbrew.co.uk/", *breweries[0].Website)
	suite.Nil(breweries[0].Taproom)
	suite.Equal("The Kernel", breweries[1].Name)
	suite.Nil(breweries[1].Website)
	suite.Equal(&model.Taproom{Label: "Arch 7", URL: "https://thekernelbrewery.com/"}, breweries[1].Taproom)
}

func (suite *ScrapeRunTestSuite) TestGetLatestScrapeRun_ReturnsErrorWhenNoRuns() {
	suite.mock.ExpectQuery(`^SELECT (.+) FROM "scrape_runs"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	run, err := suite.repository.GetLatestScrapeRun(context.Background(), "camra_web")

	suite.Require().ErrorIs(err, repository.ErrScrapeRunNotFound)
	suite.Nil(run)
}

func (suite *ScrapeRunTestSuite) TestGetLatestScrapeRun_ReturnsQueryError() {
	suite.mock.ExpectQuery(`^SELECT (.+) FROM "scrape_runs"`).
		WillReturnError(errors.New("connection reset")) //nolint:err113 // test error

	run, err := suite.repository.GetLatestScrapeRun(context.Background(), "camra_web")

	suite.Require().EqualError(err, "connection reset")
	suite.Nil(run)
}
