package model

import (
	"errors"
	"fmt"
	"net/url"
	"strings"

	"go.openly.dev/pointy"
)

var (
	ErrInvalidURL  = errors.New("invalid URL")
	ErrMissingName = errors.New("brewery name is required")
)

// Brewery is one entry from a brewery list. Use NewBrewery to build one; a
// Brewery is not modified after construction.
type Brewery struct {
	Name      string   `json:"name"`
	Location  string   `json:"location"`
	Type      string   `json:"type"`
	Website   *string  `json:"website,omitempty"`
	Twitter   *string  `json:"twitter,omitempty"`
	Facebook  *string  `json:"facebook,omitempty"`
	Instagram *string  `json:"instagram,omitempty"`
	Taproom   *Taproom `json:"taproom,omitempty"`
	Cask      string   `json:"cask"`
	Keg       string   `json:"keg"`
	Tank      string   `json:"tank"`
	Bottles   string   `json:"bottles"`
	Cans      string   `json:"cans"`
	Branch    string   `json:"branch"`
	Comments  string   `json:"comments"`
}

type Taproom struct {
	Label string `json:"label"`
	URL   string `json:"url"`
}

// BreweryParams holds unvalidated brewery fields. Empty link fields and a nil
// Taproom mean the value is absent.
type BreweryParams struct {
	Name      string
	Location  string
	Type      string
	Website   string
	Twitter   string
	Facebook  string
	Instagram string
	Taproom   *Taproom
	Cask      string
	Keg       string
	Tank      string
	Bottles   string
	Cans      string
	Branch    string
	Comments  string
}

func NewBrewery(params BreweryParams) (*Brewery, error) {
	if len(strings.TrimSpace(params.Name)) == 0 {
		return nil, ErrMissingName
	}

	brewery := Brewery{
		Name:     params.Name,
		Location: params.Location,
		Type:     params.Type,
		Cask:     params.Cask,
		Keg:      params.Keg,
		Tank:     params.Tank,
		Bottles:  params.Bottles,
		Cans:     params.Cans,
		Branch:   params.Branch,
		Comments: params.Comments,
	}

	links := []struct {
		field  string
		raw    string
		target **string
	}{
		{"website", params.Website, &brewery.Website},
		{"twitter", params.Twitter, &brewery.Twitter},
		{"facebook", params.Facebook, &brewery.Facebook},
		{"instagram", params.Instagram, &brewery.Instagram},
	}

	for _, link := range links {
		if len(link.raw) == 0 {
			continue
		}

		valid, err := ValidateURL(link.field, link.raw)
		if err != nil {
			return nil, err
		}

		*link.target = pointy.String(valid)
	}

	if params.Taproom != nil {
		valid, err := ValidateURL("taproom", params.Taproom.URL)
		if err != nil {
			return nil, err
		}

		brewery.Taproom = &Taproom{Label: params.Taproom.Label, URL: valid}
	}

	return &brewery, nil
}

// ValidateURL checks that raw is an absolute http(s) URL with a host and
// returns its normalised form. The error names field.
func ValidateURL(field string, raw string) (string, error) {
	parsed, err := url.Parse(strings.TrimSpace(raw))
	if err != nil {
		return "", fmt.Errorf("%w: %s %q: %w", ErrInvalidURL, field, raw, err)
	}

	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return "", fmt.Errorf("%w: %s %q: scheme must be http or https", ErrInvalidURL, field, raw)
	}

	if len(parsed.Hostname()) == 0 {
		return "", fmt.Errorf("%w: %s %q: missing host", ErrInvalidURL, field, raw)
	}

	return parsed.String(), nil
}
