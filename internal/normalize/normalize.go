// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package normalize flattens raw CRISTIN registry records into Publication
// values. The registry nests journal-article fields below shared
// "fellesdata" and per-category "kategoridata" blocks, and represents a
// single contributor as a bare object where multi-author records carry a
// list; both inconsistencies are resolved here so nothing downstream
// branches on record shape.
package normalize

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/Roberthaf/Pub-Grab/pkg/types"
)

// Registry field names from the old WS API
// (http://www.cristin.no/techdoc/xsd/resultater/1.0/).
const (
	fieldShared   = "fellesdata"
	fieldCategory = "kategoridata"
	fieldArticle  = "tidsskriftsartikkel"
)

// MalformedRecordError reports a raw record missing a required field.
// Distinct from "no publications" so callers can skip and enumerate
// rather than silently drop data.
type MalformedRecordError struct {
	// ID is the registry ID when known, empty when the ID itself is missing.
	ID string

	// Field is the registry name of the missing or invalid field.
	Field string
}

func (e *MalformedRecordError) Error() string {
	if e.ID == "" {
		return fmt.Sprintf("malformed record: missing required field %q", e.Field)
	}
	return fmt.Sprintf("malformed record %s: missing required field %q", e.ID, e.Field)
}

// Flatten merges the shared block, the category block, and the innermost
// journal-article block of a raw record into one flat mapping. Article
// fields take precedence on key collision; the nested article key is
// removed from the result. The input is not modified.
func Flatten(raw map[string]any) map[string]any {
	flat := make(map[string]any, len(raw))
	for _, block := range []string{fieldShared, fieldCategory} {
		if m, ok := raw[block].(map[string]any); ok {
			for k, v := range m {
				flat[k] = v
			}
		}
	}
	if m, ok := flat[fieldArticle].(map[string]any); ok {
		delete(flat, fieldArticle)
		for k, v := range m {
			flat[k] = v
		}
	}
	return flat
}

// Record converts one raw registry record into a Publication. It returns
// a *MalformedRecordError when a required field (id, year, title,
// contributors) is absent or the year is not numeric. Pure transform:
// equal input always yields an equal Publication.
func Record(raw map[string]any) (types.Publication, error) {
	flat := Flatten(raw)

	id := stringField(flat, "id")
	if id == "" {
		return types.Publication{}, &MalformedRecordError{Field: "id"}
	}
	year := stringField(flat, "ar")
	if year == "" {
		return types.Publication{}, &MalformedRecordError{ID: id, Field: "ar"}
	}
	if _, err := strconv.Atoi(year); err != nil {
		return types.Publication{}, &MalformedRecordError{ID: id, Field: "ar"}
	}
	title := stringField(flat, "tittel")
	if title == "" {
		return types.Publication{}, &MalformedRecordError{ID: id, Field: "tittel"}
	}

	persons := contributorList(flat["person"])
	if len(persons) == 0 {
		return types.Publication{}, &MalformedRecordError{ID: id, Field: "person"}
	}
	authors := make([]types.Contributor, 0, len(persons))
	for _, p := range persons {
		authors = append(authors, types.Contributor{
			Surname:   stringField(p, "etternavn"),
			GivenName: stringField(p, "fornavn"),
		})
	}

	pub := types.Publication{
		ID:            id,
		Year:          year,
		Title:         title,
		Volume:        stringField(flat, "volum"),
		Issue:         stringField(flat, "hefte"),
		ArticleNumber: stringField(flat, "artikkelnr"),
		DOI:           stringField(flat, "doi"),
		Authors:       authors,
	}
	if journal, ok := flat["tidsskrift"].(map[string]any); ok {
		pub.Journal = stringField(journal, "navn")
	}
	if sa, ok := flat["sideangivelse"].(map[string]any); ok {
		pub.Pages = &types.PageRange{
			From:  stringField(sa, "sideFra"),
			To:    stringField(sa, "sideTil"),
			Count: stringField(sa, "antallSider"),
		}
	}
	return pub, nil
}

// contributorList coerces the registry's person field to an ordered slice.
// Single-author records carry a bare object, multi-author records a list;
// both yield a slice so length-1 records are indistinguishable from a
// one-element list.
func contributorList(v any) []map[string]any {
	switch t := v.(type) {
	case map[string]any:
		return []map[string]any{t}
	case []any:
		out := make([]map[string]any, 0, len(t))
		for _, e := range t {
			if m, ok := e.(map[string]any); ok {
				out = append(out, m)
			}
		}
		return out
	default:
		return nil
	}
}

// stringField returns the field as a string, coercing the numeric forms
// JSON decoding can produce. The registry serves IDs and years as strings
// in most responses but as numbers in a few, so both must round-trip to
// the same value.
func stringField(m map[string]any, key string) string {
	switch t := m[key].(type) {
	case string:
		return t
	case json.Number:
		return t.String()
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case int:
		return strconv.Itoa(t)
	default:
		return ""
	}
}
