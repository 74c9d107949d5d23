package camraweb

import (
	"errors"
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"droscher.com/LondonBrew/pkg/model"
)

// Column positions in the brewery table.
const (
	nameColumn = iota
	locationColumn
	typeColumn
	linksColumn
	taproomColumn
	caskColumn
	kegColumn
	tankColumn
	bottlesColumn
	cansColumn
	branchColumn
	commentsColumn

	minimumCells = branchColumn + 1
)

var ErrTooFewCells = errors.New("too few cells in row")

type socialLinks struct {
	website   string
	twitter   string
	facebook  string
	instagram string
}

// ParseRow converts one table row into a brewery. The row must have at least
// minimumCells td cells; the comments cell is optional.
func ParseRow(row *goquery.Selection) (*model.Brewery, error) {
	cells := row.Find("td")
	if cells.Length() < minimumCells {
		return nil, fmt.Errorf("%w: got %d, need at least %d", ErrTooFewCells, cells.Length(), minimumCells)
	}

	cell := func(index int) *goquery.Selection {
		return cells.Eq(index)
	}

	links := extractSocialLinks(cell(linksColumn))

	comments := ""
	if cells.Length() > commentsColumn {
		comments = cellText(cell(commentsColumn))
	}

	return model.NewBrewery(model.BreweryParams{
		Name:      cellText(cell(nameColumn)),
		Location:  cellText(cell(locationColumn)),
		Type:      cellText(cell(typeColumn)),
		Website:   links.website,
		Twitter:   links.twitter,
		Facebook:  links.facebook,
		Instagram: links.instagram,
		Taproom:   parseTaproom(cell(taproomColumn)),
		Cask:      cellText(cell(caskColumn)),
		Keg:       cellText(cell(kegColumn)),
		Tank:      cellText(cell(tankColumn)),
		Bottles:   cellText(cell(bottlesColumn)),
		Cans:      cellText(cell(cansColumn)),
		Branch:    cellText(cell(branchColumn)),
		Comments:  comments,
	})
}

// extractSocialLinks sorts every link in the cell into a slot by host
// substring. A later link replaces an earlier one in the same slot.
func extractSocialLinks(cell *goquery.Selection) socialLinks {
	var links socialLinks

	cell.Find("a").Each(func(_ int, link *goquery.Selection) {
		href, found := link.Attr("href")
		if !found || len(href) == 0 {
			return
		}

		switch {
		case strings.Contains(href, "twitter.com"):
			links.twitter = href
		case strings.Contains(href, "facebook.com"):
			links.facebook = href
		case strings.Contains(href, "instagram.com"):
			links.instagram = href
		default:
			links.website = href
		}
	})

	return links
}

// parseTaproom returns the cell text and the target of its first link. Cells
// without a usable link have no taproom, whatever text they contain.
func parseTaproom(cell *goquery.Selection) *model.Taproom {
	link := cell.Find("a").First()
	if link.Length() == 0 {
		return nil
	}

	href, found := link.Attr("href")
	if !found || len(href) == 0 {
		return nil
	}

	return &model.Taproom{Label: cellText(cell), URL: href}
}

func cellText(cell *goquery.Selection) string {
	return strings.TrimSpace(cell.Text())
}
