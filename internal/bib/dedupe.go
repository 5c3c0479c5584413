// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package bib

import "github.com/Roberthaf/Pub-Grab/pkg/types"

// Deduplicate collapses publications sharing a registry ID into one record
// per ID. Queries for co-authors return overlapping lists, so the same
// publication routinely arrives once per queried author.
//
// Single pass, hash-keyed: linear in the input length. When the same ID
// appears with different content the last occurrence wins, at the position
// of the first occurrence. The result is deterministic whenever the input
// order is.
func Deduplicate(pubs []types.Publication) []types.Publication {
	seen := make(map[string]int, len(pubs)) // registry ID → index in out
	out := make([]types.Publication, 0, len(pubs))

	for _, p := range pubs {
		if idx, ok := seen[p.ID]; ok {
			out[idx] = p
			continue
		}
		seen[p.ID] = len(out)
		out = append(out, p)
	}
	return out
}
