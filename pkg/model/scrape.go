package model

import (
	"github.com/google/uuid"
	"go.openly.dev/pointy"
	"go.uber.org/multierr"
	"gorm.io/gorm"
)

// ScrapeResult is the outcome of scraping one brewery list page. Breweries are
// in page order; RowErrors holds one error per skipped row.
type ScrapeResult struct {
	Source    string
	URL       string
	Breweries []Brewery
	RowErrors error
}

func (s *ScrapeResult) SkippedRows() int {
	return len(multierr.Errors(s.RowErrors))
}

type ScrapeRun struct {
	gorm.Model
	UUID        uuid.UUID `gorm:"type:uuid;uniqueIndex"`
	Source      string    `gorm:"index"`
	URL         string
	SkippedRows int
	Breweries   []BreweryEntry `gorm:"foreignKey:RunID"`
}

type BreweryEntry struct {
	gorm.Model
	RunID        uint `gorm:"index"`
	Position     int
	Name         string
	Location     string
	Type         string
	Website      *string
	Twitter      *string
	Facebook     *string
	Instagram    *string
	TaproomLabel *string
	TaproomURL   *string
	Cask         string
	Keg          string
	Tank         string
	Bottles      string
	Cans         string
	Branch       string
	Comments     string
}

func NewScrapeRun(result *ScrapeResult) ScrapeRun {
	run := ScrapeRun{
		UUID:        uuid.New(),
		Source:      result.Source,
		URL:         result.URL,
		SkippedRows: result.SkippedRows(),
		Breweries:   make([]BreweryEntry, 0, len(result.Breweries)),
	}

	for index, brewery := range result.Breweries {
		run.Breweries = append(run.Breweries, EntryFromBrewery(index, brewery))
	}

	return run
}

func EntryFromBrewery(position int, brewery Brewery) BreweryEntry {
	entry := BreweryEntry{
		Position:  position,
		Name:      brewery.Name,
		Location:  brewery.Location,
		Type:      brewery.Type,
		Website:   copyString(brewery.Website),
		Twitter:   copyString(brewery.Twitter),
		Facebook:  copyString(brewery.Facebook),
		Instagram: copyString(brewery.Instagram),
		Cask:      brewery.Cask,
		Keg:       brewery.Keg,
		Tank:      brewery.Tank,
		Bottles:   brewery.Bottles,
		Cans:      brewery.Cans,
		Branch:    brewery.Branch,
		Comments:  brewery.Comments,
	}

	if brewery.Taproom != nil {
		entry.TaproomLabel = pointy.String(brewery.Taproom.Label)
		entry.TaproomURL = pointy.String(brewery.Taproom.URL)
	}

	return entry
}

// Brewery converts a stored entry back into a record. Entries were validated
// when scraped, so no validation happens here.
func (e *BreweryEntry) Brewery() Brewery {
	brewery := Brewery{
		Name:      e.Name,
		Location:  e.Location,
		Type:      e.Type,
		Website:   copyString(e.Website),
		Twitter:   copyString(e.Twitter),
		Facebook:  copyString(e.Facebook),
		Instagram: copyString(e.Instagram),
		Cask:      e.Cask,
		Keg:       e.Keg,
		Tank:      e.Tank,
		Bottles:   e.Bottles,
		Cans:      e.Cans,
		Branch:    e.Branch,
		Comments:  e.Comments,
	}

	if e.TaproomURL != nil {
		brewery.Taproom = &Taproom{URL: *e.TaproomURL}
		if e.TaproomLabel != nil {
			brewery.Taproom.Label = *e.TaproomLabel
		}
	}

	return brewery
}

func (s *ScrapeRun) BreweryRecords() []Brewery {
	breweries := make([]Brewery, 0, len(s.Breweries))
	for index := range s.Breweries {
		breweries = append(breweries, s.Breweries[index].Brewery())
	}

	return breweries
}

func copyString(value *string) *string {
	if value == nil {
		return nil
	}

	return pointy.String(*value)
}
