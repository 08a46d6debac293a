// Package storetest holds the behaviour every store.Store implementation
// must share. Backends call Run from their own tests.
package storetest

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/saxenaaman628/proposal-voting-system/internal/models"
	"github.com/saxenaaman628/proposal-voting-system/internal/store"
)

// Run exercises s. newStore must return an empty store on every call.
func Run(t *testing.T, newStore func(t *testing.T) store.Store) {
	t.Helper()
	ctx := context.Background()
	created := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

	sample := func(id string) models.Proposal {
		return models.Proposal{
			ID:          id,
			Owner:       "1",
			Title:       "Title " + id,
			Description: "Description " + id,
			Voters:      []string{},
			CreatedAt:   created,
		}
	}

	t.Run("get missing", func(t *testing.T) {
		s := newStore(t)
		_, ok, err := s.Get(ctx, "nope")
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("insert then get", func(t *testing.T) {
		s := newStore(t)
		require.NoError(t, s.Insert(ctx, sample("a")))

		got, ok, err := s.Get(ctx, "a")
		require.NoError(t, err)
		require.True(t, ok)
		assert.Equal(t, "a", got.ID)
		assert.Equal(t, "1", got.Owner)
		assert.Equal(t, "Title a", got.Title)
		assert.Equal(t, "Description a", got.Description)
		assert.Empty(t, got.Voters)
		assert.NotNil(t, got.Voters)
		assert.Zero(t, got.YesVotes)
		assert.Zero(t, got.NoVotes)
		assert.True(t, created.Equal(got.CreatedAt))
		assert.Nil(t, got.UpdatedAt)
	})

	t.Run("insert replaces whole record", func(t *testing.T) {
		s := newStore(t)
		require.NoError(t, s.Insert(ctx, sample("a")))

		updated := created.Add(time.Minute)
		p := sample("a")
		p.Title = "New"
		p.Voters = []string{"2", "3"}
		p.YesVotes = 1
		p.NoVotes = 1
		p.UpdatedAt = &updated
		require.NoError(t, s.Insert(ctx, p))

		got, ok, err := s.Get(ctx, "a")
		require.NoError(t, err)
		require.True(t, ok)
		assert.Equal(t, "New", got.Title)
		assert.Equal(t, []string{"2", "3"}, got.Voters)
		assert.Equal(t, int64(1), got.YesVotes)
		assert.Equal(t, int64(1), got.NoVotes)
		require.NotNil(t, got.UpdatedAt)
		assert.True(t, updated.Equal(*got.UpdatedAt))

		all, err := s.Values(ctx)
		require.NoError(t, err)
		assert.Len(t, all, 1)
	})

	t.Run("returned records are copies", func(t *testing.T) {
		s := newStore(t)
		p := sample("a")
		p.Voters = []string{"2"}
		require.NoError(t, s.Insert(ctx, p))
		p.Voters[0] = "mutated"

		got, _, err := s.Get(ctx, "a")
		require.NoError(t, err)
		got.Voters[0] = "mutated again"

		again, _, err := s.Get(ctx, "a")
		require.NoError(t, err)
		assert.Equal(t, []string{"2"}, again.Voters)
	})

	t.Run("values in insertion order", func(t *testing.T) {
		s := newStore(t)
		for i, id := range []string{"c", "a", "b"} {
			p := sample(id)
			p.CreatedAt = created.Add(time.Duration(i) * time.Second)
			require.NoError(t, s.Insert(ctx, p))
		}

		all, err := s.Values(ctx)
		require.NoError(t, err)
		ids := make([]string, 0, len(all))
		for _, p := range all {
			ids = append(ids, p.ID)
		}
		assert.Equal(t, []string{"c", "a", "b"}, ids)
	})

	t.Run("values in insertion order with equal timestamps", func(t *testing.T) {
		s := newStore(t)
		for _, id := range []string{"c", "a", "b"} {
			require.NoError(t, s.Insert(ctx, sample(id)))
		}
		// replacing a record keeps its position
		p := sample("c")
		p.Title = "Changed"
		require.NoError(t, s.Insert(ctx, p))

		all, err := s.Values(ctx)
		require.NoError(t, err)
		ids := make([]string, 0, len(all))
		for _, p := range all {
			ids = append(ids, p.ID)
		}
		assert.Equal(t, []string{"c", "a", "b"}, ids)
		assert.Equal(t, "Changed", all[0].Title)
	})

	t.Run("timestamps keep microseconds", func(t *testing.T) {
		s := newStore(t)
		p := sample("a")
		p.CreatedAt = created.Add(123456 * time.Microsecond)
		updated := created.Add(time.Second + 654321*time.Microsecond)
		p.UpdatedAt = &updated
		require.NoError(t, s.Insert(ctx, p))

		got, ok, err := s.Get(ctx, "a")
		require.NoError(t, err)
		require.True(t, ok)
		assert.True(t, p.CreatedAt.Equal(got.CreatedAt), "created_at %v != %v", p.CreatedAt, got.CreatedAt)
		require.NotNil(t, got.UpdatedAt)
		assert.True(t, updated.Equal(*got.UpdatedAt), "updated_at %v != %v", updated, *got.UpdatedAt)
	})

	t.Run("values empty", func(t *testing.T) {
		s := newStore(t)
		all, err := s.Values(ctx)
		require.NoError(t, err)
		assert.Empty(t, all)
	})

	t.Run("remove", func(t *testing.T) {
		s := newStore(t)
		require.NoError(t, s.Insert(ctx, sample("a")))
		require.NoError(t, s.Insert(ctx, sample("b")))

		removed, ok, err := s.Remove(ctx, "a")
		require.NoError(t, err)
		require.True(t, ok)
		assert.Equal(t, "a", removed.ID)
		assert.Equal(t, "Title a", removed.Title)

		_, ok, err = s.Get(ctx, "a")
		require.NoError(t, err)
		assert.False(t, ok)

		all, err := s.Values(ctx)
		require.NoError(t, err)
		require.Len(t, all, 1)
		assert.Equal(t, "b", all[0].ID)
	})

	t.Run("remove missing", func(t *testing.T) {
		s := newStore(t)
		require.NoError(t, s.Insert(ctx, sample("a")))

		_, ok, err := s.Remove(ctx, "nope")
		require.NoError(t, err)
		assert.False(t, ok)

		all, err := s.Values(ctx)
		require.NoError(t, err)
		assert.Len(t, all, 1)
	})
}
