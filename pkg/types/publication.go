// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines the shared data structures for the pubgrab pipeline.
package types

import (
	"strings"
	"unicode"
)

// Contributor is one author or co-author credited on a publication.
// Constructed fresh from each raw registry record and never shared
// across publications.
type Contributor struct {
	// Surname is the family name as recorded in the registry.
	Surname string `json:"surname" yaml:"surname"`

	// GivenName holds the given names, space- or hyphen-separated.
	GivenName string `json:"given_name" yaml:"given_name"`
}

// Initials returns the first letter of each given-name token, uppercased
// and concatenated. Hyphens separate tokens, so "Odd-Even" yields "OE".
// An empty given-name field yields an empty string.
func (c Contributor) Initials() string {
	tokens := strings.Fields(strings.ReplaceAll(c.GivenName, "-", " "))
	var b strings.Builder
	for _, tok := range tokens {
		r := []rune(tok)
		b.WriteRune(unicode.ToUpper(r[0]))
	}
	return b.String()
}

// PageRange holds the registry's page locator block. From/To describe a
// page span; Count is a page count used when no span is given. The two
// shapes are mutually exclusive in registry data.
type PageRange struct {
	From  string `json:"from,omitempty" yaml:"from,omitempty"`
	To    string `json:"to,omitempty" yaml:"to,omitempty"`
	Count string `json:"count,omitempty" yaml:"count,omitempty"`
}

// Publication is one normalized journal-article record. It is immutable
// after normalization; optional fields are zero values when absent and
// render as empty strings.
type Publication struct {
	// ID is the registry identifier, globally unique per publication.
	// Two records with the same ID are the same publication regardless
	// of which author query returned them.
	ID string `json:"id" yaml:"id"`

	// Year is the four-digit publication year.
	Year string `json:"year" yaml:"year"`

	// Title is the publication title.
	Title string `json:"title" yaml:"title"`

	// Journal is the journal name.
	Journal string `json:"journal,omitempty" yaml:"journal,omitempty"`

	// Volume and Issue locate the article within the journal.
	Volume string `json:"volume,omitempty" yaml:"volume,omitempty"`
	Issue  string `json:"issue,omitempty" yaml:"issue,omitempty"`

	// ArticleNumber is used by journals that number articles instead of
	// paginating them (e.g. "e9379").
	ArticleNumber string `json:"article_number,omitempty" yaml:"article_number,omitempty"`

	// Pages is the page locator block, nil when the record has none.
	Pages *PageRange `json:"pages,omitempty" yaml:"pages,omitempty"`

	// DOI is the bare DOI without a resolver prefix.
	DOI string `json:"doi,omitempty" yaml:"doi,omitempty"`

	// Authors lists contributors in authorship order. The order is
	// significant and is never re-sorted.
	Authors []Contributor `json:"authors" yaml:"authors"`
}
