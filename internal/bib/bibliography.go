// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package bib builds deduplicated, sorted, rendered bibliographies from
// normalized registry records.
package bib

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/Roberthaf/Pub-Grab/internal/normalize"
	"github.com/Roberthaf/Pub-Grab/pkg/types"
)

// Source resolves author identifiers and fetches raw publication records.
// The registry client implements it; the cache layer decorates it. The
// pipeline places no ordering requirement on calls beyond needing all
// results before deduplication.
type Source interface {
	// PersonID resolves a free-text name or numeric identifier to a
	// registry person ID. found is false when no person matches; that is
	// not an error.
	PersonID(ctx context.Context, identifier string) (id int, found bool, err error)

	// PublicationsBy returns zero or more raw records for the person
	// within the inclusive year range, in the registry's nested shape.
	PublicationsBy(ctx context.Context, personID, fromYear, toYear int, category string) ([]map[string]any, error)
}

// Options bound a bibliography build.
type Options struct {
	FromYear int
	ToYear   int
	Category string
}

// SkippedRecord identifies a raw record excluded from the bibliography
// and why. Skips are enumerated rather than swallowed so callers can log
// or fail on them.
type SkippedRecord struct {
	Author string
	ID     string
	Reason string
}

// Output holds the rendered bibliography and everything that went wrong
// building it.
type Output struct {
	// HTML is the document fragment: one <p> block per publication,
	// most recent year first. Empty when no publications were found.
	HTML string

	// Publications are the deduplicated, sorted records behind HTML.
	Publications []types.Publication

	// Skipped enumerates malformed records excluded from the output.
	Skipped []SkippedRecord

	// AuthorErrors lists per-author lookup and fetch failures. A failing
	// author contributes zero publications but never aborts the batch.
	AuthorErrors []string
}

// Build compiles the bibliography for a list of author identifiers. For
// each author it resolves the person ID, fetches raw records, and
// normalizes them; the concatenated records are then deduplicated by
// registry ID, sorted most-recent-first, and rendered as HTML citations.
// Warnings are written to w as they happen. Empty input yields an empty
// fragment, not an error.
func Build(ctx context.Context, src Source, authors []string, opts Options, w io.Writer) (Output, error) {
	var out Output
	var pubs []types.Publication

	for _, author := range authors {
		id, found, err := src.PersonID(ctx, author)
		if err != nil {
			msg := fmt.Sprintf("%s: person lookup: %v", author, err)
			out.AuthorErrors = append(out.AuthorErrors, msg)
			fmt.Fprintf(w, "warning: %s\n", msg)
			continue
		}
		if !found {
			msg := fmt.Sprintf("%s: no matching person in registry", author)
			out.AuthorErrors = append(out.AuthorErrors, msg)
			fmt.Fprintf(w, "warning: %s\n", msg)
			continue
		}

		raws, err := src.PublicationsBy(ctx, id, opts.FromYear, opts.ToYear, opts.Category)
		if err != nil {
			msg := fmt.Sprintf("%s: fetching publications: %v", author, err)
			out.AuthorErrors = append(out.AuthorErrors, msg)
			fmt.Fprintf(w, "warning: %s\n", msg)
			continue
		}

		for _, raw := range raws {
			pub, err := normalize.Record(raw)
			if err != nil {
				skip := SkippedRecord{Author: author, Reason: err.Error()}
				if merr, ok := err.(*normalize.MalformedRecordError); ok {
					skip.ID = merr.ID
				}
				out.Skipped = append(out.Skipped, skip)
				fmt.Fprintf(w, "warning: skipping record for %s: %v\n", author, err)
				continue
			}
			pubs = append(pubs, pub)
		}
	}

	pubs = Deduplicate(pubs)
	Sort(pubs)
	out.Publications = pubs
	out.HTML = Fragment(pubs)
	return out, nil
}

// Fragment renders publications as an HTML fragment, one paragraph per
// citation, in the given order.
func Fragment(pubs []types.Publication) string {
	blocks := make([]string, len(pubs))
	for i, p := range pubs {
		blocks[i] = "<p>" + Citation(p, ModeHTML) + "</p>"
	}
	return strings.Join(blocks, "\n")
}

// PlainText renders publications as plain-text citations, one per line.
func PlainText(pubs []types.Publication) string {
	lines := make([]string, len(pubs))
	for i, p := range pubs {
		lines[i] = Citation(p, ModePlain)
	}
	return strings.Join(lines, "\n")
}
