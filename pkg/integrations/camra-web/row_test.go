package camraweb_test

import (
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.openly.dev/pointy"

	. "droscher.com/LondonBrew/pkg/integrations/camra-web"
	"droscher.com/LondonBrew/pkg/model"
)

const productionCells = `<td>Y</td><td>Y</td><td>N</td><td>Y</td><td>N</td><td>South London</td>`

func rowFromHTML(t *testing.T, cells string) *goquery.Selection {
	t.Helper()

	doc, err := goquery.NewDocumentFromReader(strings.NewReader("<table><tr>" + cells + "</tr></table>"))
	require.NoError(t, err)

	row := doc.Find("tr").First()
	require.Equal(t, 1, row.Length())

	return row
}

func TestParseRow_MapsColumns(t *testing.T) {
	row := rowFromHTML(t, `
		<td>  Brick Brewery </td>
		<td>Peckham SE15</td>
		<td>Brewery</td>
		<td><a href="https://brickbrewery.co.uk">site</a></td>
		<td><a href="https://brickbrewery.co.uk/taproom">Peckham Rye arches</a></td>
		<td>Y</td><td>Y</td><td>N</td><td>8</td><td>12</td>
		<td>South East London</td>
		<td> Blenheim Grove taproom </td>`)

	brewery, err := ParseRow(row)

	require.NoError(t, err)
	assert.Equal(t, "Brick Brewery", brewery.Name)
	assert.Equal(t, "Peckham SE15", brewery.Location)
	assert.Equal(t, "Brewery", brewery.Type)
	assert.Equal(t, "https://brickbrewery.co.uk", *brewery.Website)
	assert.Nil(t, brewery.Twitter)
	assert.Nil(t, brewery.Facebook)
	assert.Nil(t, brewery.Instagram)
	assert.Equal(t, &model.Taproom{Label: "Peckham Rye arches", URL: "https://brickbrewery.co.uk/taproom"}, brewery.Taproom)
	assert.Equal(t, "Y", brewery.Cask)
	assert.Equal(t, "Y", brewery.Keg)
	assert.Equal(t, "N", brewery.Tank)
	assert.Equal(t, "8", brewery.Bottles)
	assert.Equal(t, "12", brewery.Cans)
	assert.Equal(t, "South East London", brewery.Branch)
	assert.Equal(t, "Blenheim Grove taproom", brewery.Comments)
}

func TestParseRow_MissingCommentsIsEmpty(t *testing.T) {
	row := rowFromHTML(t, `<td>Anspach &amp; Hobday</td><td>Bermondsey</td><td>Brewery</td><td></td><td></td>`+productionCells)

	brewery, err := ParseRow(row)

	require.NoError(t, err)
	assert.Equal(t, "Anspach & Hobday", brewery.Name)
	assert.Empty(t, brewery.Comments)
	assert.Nil(t, brewery.Website)
	assert.Nil(t, brewery.Taproom)
}

func TestParseRow_ClassifiesLinks(t *testing.T) {
	tests := []struct {
		name      string
		links     string
		website   *string
		twitter   *string
		facebook  *string
		instagram *string
	}{
		{
			name:    "last link wins within a slot",
			links:   `<a href="https://a.example/">A</a><a href="https://twitter.com/b">B</a><a href="https://twitter.com/c">C</a>`,
			website: pointy.String("https://a.example/"),
			twitter: pointy.String("https://twitter.com/c"),
		},
		{
			name:      "every slot",
			links:     `<a href="https://www.instagram.com/i">I</a><a href="https://facebook.com/f">F</a><a href="https://twitter.com/t">T</a><a href="https://w.example">W</a>`,
			website:   pointy.String("https://w.example"),
			twitter:   pointy.String("https://twitter.com/t"),
			facebook:  pointy.String("https://facebook.com/f"),
			instagram: pointy.String("https://www.instagram.com/i"),
		},
		{
			name:    "twitter takes priority over other substrings",
			links:   `<a href="https://twitter.com/facebook.com">T</a>`,
			twitter: pointy.String("https://twitter.com/facebook.com"),
		},
		{
			name:    "links without href are ignored",
			links:   `<a name="top">anchor</a><a href="">empty</a><a href="https://w.example">W</a>`,
			website: pointy.String("https://w.example"),
		},
		{
			name:  "text only",
			links: `see website`,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			row := rowFromHTML(t, `<td>Name</td><td>Loc</td><td>Type</td><td>`+test.links+`</td><td></td>`+productionCells)

			brewery, err := ParseRow(row)

			require.NoError(t, err)
			assert.Equal(t, test.website, brewery.Website)
			assert.Equal(t, test.twitter, brewery.Twitter)
			assert.Equal(t, test.facebook, brewery.Facebook)
			assert.Equal(t, test.instagram, brewery.Instagram)
		})
	}
}

func TestParseRow_Taproom(t *testing.T) {
	tests := []struct {
		name    string
		cell    string
		taproom *model.Taproom
	}{
		{
			name:    "label is the whole cell text",
			cell:    `Open weekends <a href="https://tap.example/">details</a>`,
			taproom: &model.Taproom{Label: "Open weekends details", URL: "https://tap.example/"},
		},
		{
			name:    "first link only",
			cell:    `<a href="https://first.example/">one</a><a href="https://second.example/">two</a>`,
			taproom: &model.Taproom{Label: "onetwo", URL: "https://first.example/"},
		},
		{
			name: "text without link is discarded",
			cell: `Yes, Fridays and Saturdays`,
		},
		{
			name: "first link without href",
			cell: `<a name="tap">Taproom</a><a href="https://tap.example/">details</a>`,
		},
		{
			name: "empty",
			cell: ``,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			row := rowFromHTML(t, `<td>Name</td><td>Loc</td><td>Type</td><td></td><td>`+test.cell+`</td>`+productionCells)

			brewery, err := ParseRow(row)

			require.NoError(t, err)
			assert.Equal(t, test.taproom, brewery.Taproom)
		})
	}
}

func TestParseRow_TooFewCells(t *testing.T) {
	row := rowFromHTML(t, `<td>Loc</td><td>Type</td><td></td><td></td>`+productionCells)

	brewery, err := ParseRow(row)

	require.ErrorIs(t, err, ErrTooFewCells)
	assert.EqualError(t, err, "too few cells in row: got 10, need at least 11")
	assert.Nil(t, brewery)
}

func TestParseRow_HeaderCellsAreNotDataCells(t *testing.T) {
	row := rowFromHTML(t, strings.Repeat("<th>Heading</th>", 12))

	brewery, err := ParseRow(row)

	require.ErrorIs(t, err, ErrTooFewCells)
	assert.Nil(t, brewery)
}

func TestParseRow_InvalidLinkFailsRow(t *testing.T) {
	row := rowFromHTML(t, `<td>Name</td><td>Loc</td><td>Type</td><td><a href="https://twitter.com/ok">T</a><a href="/relative">W</a></td><td></td>`+productionCells)

	brewery, err := ParseRow(row)

	require.ErrorIs(t, err, model.ErrInvalidURL)
	assert.ErrorContains(t, err, "website")
	assert.Nil(t, brewery)
}

func TestParseRow_InvalidTaproomLinkFailsRow(t *testing.T) {
	row := rowFromHTML(t, `<td>Name</td><td>Loc</td><td>Type</td><td></td><td><a href="taproom.html">Tap</a></td>`+productionCells)

	brewery, err := ParseRow(row)

	require.ErrorIs(t, err, model.ErrInvalidURL)
	assert.ErrorContains(t, err, "taproom")
	assert.Nil(t, brewery)
}

func TestParseRow_EmptyNameFailsRow(t *testing.T) {
	row := rowFromHTML(t, `<td> </td><td>Loc</td><td>Type</td><td></td><td></td>`+productionCells)

	brewery, err := ParseRow(row)

	require.ErrorIs(t, err, model.ErrMissingName)
	assert.Nil(t, brewery)
}

func TestParseRow_IsIdempotent(t *testing.T) {
	row := rowFromHTML(t, `<td>Name</td><td>Loc</td><td>Type</td>`+
		`<td><a href="https://w.example">W</a><a href="https://facebook.com/n">F</a></td>`+
		`<td><a href="https://tap.example">Tap</a></td>`+productionCells+`<td>note</td>`)

	first, err := ParseRow(row)
	require.NoError(t, err)

	second, err := ParseRow(row)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}
