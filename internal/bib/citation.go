// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package bib

import (
	"fmt"

	"github.com/Roberthaf/Pub-Grab/pkg/types"
)

// Mode selects the citation rendering.
type Mode int

const (
	ModePlain Mode = iota
	ModeHTML
)

// doiResolverBase is the resolver URL prefixed to bare DOIs in HTML mode.
const doiResolverBase = "http://dx.doi.org/"

// Citation formats one publication as a citation string. Absent optional
// fields render as empty strings; a citation is always rendered in full
// or not at all. Registry text is emitted as-is, with no HTML escaping —
// an accepted limitation, not a safety guarantee.
func Citation(p types.Publication, mode Mode) string {
	authors := formatAuthors(p.Authors)
	pages := locator(p)

	if mode == ModeHTML {
		return fmt.Sprintf("%s (%s) %s. <em>%s</em> <strong>%s</strong>:%s doi:<a href=%q>%s</a>",
			authors, p.Year, p.Title, p.Journal, p.Volume, pages, doiResolverBase+p.DOI, p.DOI)
	}
	return fmt.Sprintf("%s (%s) %s. %s %s:%s, doi:%s",
		authors, p.Year, p.Title, p.Journal, p.Volume, pages, p.DOI)
}

// locator picks the page locator, first matching rule wins: a page range
// with a start page renders "start-end", a page count renders "N pages",
// an article number renders verbatim, otherwise empty.
func locator(p types.Publication) string {
	if p.Pages != nil {
		if p.Pages.From != "" {
			return p.Pages.From + "-" + p.Pages.To
		}
		if p.Pages.Count != "" {
			return p.Pages.Count + " pages"
		}
	}
	if p.ArticleNumber != "" {
		return p.ArticleNumber
	}
	return ""
}
