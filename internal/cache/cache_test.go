// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package cache

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "cache.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

// --- Store ---

func TestStoreRoundTrip(t *testing.T) {
	s := openTestStore(t)

	_, ok, err := s.Get("op", "key")
	require.NoError(t, err)
	assert.False(t, ok, "fresh store should miss")

	require.NoError(t, s.Put("op", "key", []byte(`{"id":22311}`)))

	value, ok, err := s.Get("op", "key")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, []byte(`{"id":22311}`), value)
}

func TestStoreKeysAreNamespacedByOp(t *testing.T) {
	s := openTestStore(t)
	require.NoError(t, s.Put("person_id", "k", []byte("a")))
	require.NoError(t, s.Put("publications_by", "k", []byte("b")))

	value, ok, err := s.Get("publications_by", "k")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, []byte("b"), value)
}

func TestStorePutReplaces(t *testing.T) {
	s := openTestStore(t)
	require.NoError(t, s.Put("op", "k", []byte("old")))
	require.NoError(t, s.Put("op", "k", []byte("new")))

	value, _, err := s.Get("op", "k")
	require.NoError(t, err)
	assert.Equal(t, []byte("new"), value)
}

func TestStoreClear(t *testing.T) {
	s := openTestStore(t)
	require.NoError(t, s.Put("op", "k", []byte("v")))
	require.NoError(t, s.Clear())

	n, err := s.Len()
	require.NoError(t, err)
	assert.Zero(t, n)
}

// --- Source decorator ---

type countingSource struct {
	personCalls int
	pubCalls    int
}

func (c *countingSource) PersonID(_ context.Context, identifier string) (int, bool, error) {
	c.personCalls++
	if identifier == "Jon Olav Vik" {
		return 22311, true, nil
	}
	return 0, false, nil
}

func (c *countingSource) PublicationsBy(_ context.Context, personID, _, _ int, _ string) ([]map[string]any, error) {
	c.pubCalls++
	return []map[string]any{
		{"fellesdata": map[string]any{"id": "769189", "ar": "2010"}},
	}, nil
}

func TestSourceMemoizesPersonID(t *testing.T) {
	upstream := &countingSource{}
	src := NewSource(upstream, openTestStore(t))
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		id, found, err := src.PersonID(ctx, "Jon Olav Vik")
		require.NoError(t, err)
		assert.True(t, found)
		assert.Equal(t, 22311, id)
	}
	assert.Equal(t, 1, upstream.personCalls, "repeated lookups must hit the cache")
}

func TestSourceCachesNegativeLookups(t *testing.T) {
	upstream := &countingSource{}
	src := NewSource(upstream, openTestStore(t))
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		_, found, err := src.PersonID(ctx, "Does Not Exist")
		require.NoError(t, err)
		assert.False(t, found)
	}
	assert.Equal(t, 1, upstream.personCalls)
}

func TestSourceMemoizesPublications(t *testing.T) {
	upstream := &countingSource{}
	src := NewSource(upstream, openTestStore(t))
	ctx := context.Background()

	first, err := src.PublicationsBy(ctx, 22311, 2010, 2010, "TIDSSKRIFTPUBL")
	require.NoError(t, err)
	second, err := src.PublicationsBy(ctx, 22311, 2010, 2010, "TIDSSKRIFTPUBL")
	require.NoError(t, err)

	assert.Equal(t, 1, upstream.pubCalls)
	assert.Equal(t, first, second, "cached records must round-trip unchanged")
}

func TestSourceDistinguishesArguments(t *testing.T) {
	upstream := &countingSource{}
	src := NewSource(upstream, openTestStore(t))
	ctx := context.Background()

	_, err := src.PublicationsBy(ctx, 22311, 2010, 2010, "TIDSSKRIFTPUBL")
	require.NoError(t, err)
	_, err = src.PublicationsBy(ctx, 22311, 2000, 2020, "TIDSSKRIFTPUBL")
	require.NoError(t, err)

	assert.Equal(t, 2, upstream.pubCalls, "different year ranges are different cache keys")
}
