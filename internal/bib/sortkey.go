// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package bib

import (
	"sort"
	"strconv"

	"github.com/Roberthaf/Pub-Grab/pkg/types"
)

// Key is the composite ordering key for a publication: the negated year
// followed by the formatted author sequence. Negating the year makes a
// natural ascending sort run most-recent-first without a custom
// year comparator.
type Key struct {
	Year    int
	Authors []string
}

// KeyOf builds the sort key for a publication. The normalizer guarantees
// the year is numeric.
func KeyOf(p types.Publication) Key {
	year, _ := strconv.Atoi(p.Year)
	authors := make([]string, len(p.Authors))
	for i, a := range p.Authors {
		authors[i] = FormatAuthor(a)
	}
	return Key{Year: -year, Authors: authors}
}

// Less compares keys: year first, then the author sequence element-wise.
// Records identical in both compare equal and keep their relative order
// under a stable sort.
func (k Key) Less(other Key) bool {
	if k.Year != other.Year {
		return k.Year < other.Year
	}
	for i := 0; i < len(k.Authors) && i < len(other.Authors); i++ {
		if k.Authors[i] != other.Authors[i] {
			return k.Authors[i] < other.Authors[i]
		}
	}
	return len(k.Authors) < len(other.Authors)
}

// Sort orders publications most-recent year first, breaking ties by the
// formatted author sequence in authorship order.
func Sort(pubs []types.Publication) {
	sort.SliceStable(pubs, func(i, j int) bool {
		return KeyOf(pubs[i]).Less(KeyOf(pubs[j]))
	})
}
