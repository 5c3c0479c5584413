// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package cache

import (
	"context"
	"encoding/json"
	"fmt"

	log "github.com/sirupsen/logrus"

	"github.com/Roberthaf/Pub-Grab/internal/bib"
)

// Operation names used as cache namespaces.
const (
	opPersonID     = "person_id"
	opPublications = "publications_by"
)

// Source decorates a bib.Source with disk-backed memoization. Cache
// trouble degrades to a live fetch rather than failing the build.
type Source struct {
	src   bib.Source
	store *Store
}

// NewSource wraps src with the given store.
func NewSource(src bib.Source, store *Store) *Source {
	return &Source{src: src, store: store}
}

type personIDEntry struct {
	ID    int  `json:"id"`
	Found bool `json:"found"`
}

// PersonID resolves through the cache. Negative results ("not found")
// are cached too: the registry answers them as authoritatively as hits.
func (c *Source) PersonID(ctx context.Context, identifier string) (int, bool, error) {
	if data, ok := c.lookup(opPersonID, identifier); ok {
		var e personIDEntry
		if err := json.Unmarshal(data, &e); err == nil {
			return e.ID, e.Found, nil
		}
	}

	id, found, err := c.src.PersonID(ctx, identifier)
	if err != nil {
		return 0, false, err
	}
	c.save(opPersonID, identifier, personIDEntry{ID: id, Found: found})
	return id, found, nil
}

// PublicationsBy fetches through the cache, keyed by the full argument
// tuple. Cached records round-trip through JSON, which the normalizer's
// string/number coercion already tolerates.
func (c *Source) PublicationsBy(ctx context.Context, personID, fromYear, toYear int, category string) ([]map[string]any, error) {
	key := fmt.Sprintf("%d|%d|%d|%s", personID, fromYear, toYear, category)

	if data, ok := c.lookup(opPublications, key); ok {
		var raws []map[string]any
		if err := json.Unmarshal(data, &raws); err == nil {
			return raws, nil
		}
	}

	raws, err := c.src.PublicationsBy(ctx, personID, fromYear, toYear, category)
	if err != nil {
		return nil, err
	}
	if raws == nil {
		raws = []map[string]any{}
	}
	c.save(opPublications, key, raws)
	return raws, nil
}

func (c *Source) lookup(op, key string) ([]byte, bool) {
	data, ok, err := c.store.Get(op, key)
	if err != nil {
		log.WithError(err).WithField("op", op).Warn("cache read failed, fetching live")
		return nil, false
	}
	if ok {
		log.WithFields(log.Fields{"op": op, "key": key}).Debug("cache hit")
	}
	return data, ok
}

func (c *Source) save(op, key string, v any) {
	data, err := json.Marshal(v)
	if err != nil {
		log.WithError(err).WithField("op", op).Warn("cache encode failed")
		return
	}
	if err := c.store.Put(op, key, data); err != nil {
		log.WithError(err).WithField("op", op).Warn("cache write failed")
	}
}
