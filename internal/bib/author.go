// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package bib

import (
	"strings"

	"github.com/Roberthaf/Pub-Grab/pkg/types"
)

// FormatAuthor renders one contributor as "Surname II", where II are the
// uppercase initials of the given names. A contributor without given
// names renders with an empty initials suffix.
func FormatAuthor(c types.Contributor) string {
	return strings.TrimRight(c.Surname+" "+c.Initials(), " ")
}

// formatAuthors comma-joins formatted contributors in authorship order.
func formatAuthors(authors []types.Contributor) string {
	parts := make([]string, len(authors))
	for i, a := range authors {
		parts[i] = FormatAuthor(a)
	}
	return strings.Join(parts, ", ")
}
