package storage

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Shubham-Khatrii/budgetwise/internal/cli"
	"github.com/Shubham-Khatrii/budgetwise/internal/model"
)

func postByID(t *testing.T, store *Store, id string) model.CommunityPost {
	t.Helper()
	posts, err := store.Posts(context.Background())
	require.NoError(t, err)
	for _, p := range posts {
		if p.ID == id {
			return p
		}
	}
	t.Fatalf("post %q not found", id)
	return model.CommunityPost{}
}

func TestAddCommunityPost(t *testing.T) {
	ctx := context.Background()

	rec := &cli.Recorder{}
	store, err := Open(ctx,
		WithToaster(rec),
		WithCurrentUser(model.Author{Name: "Priya Sharma", Initials: "PS"}))
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	post, err := store.AddCommunityPost(ctx, "Hit my savings target this month!")
	require.NoError(t, err)
	assert.Equal(t, "Priya Sharma", post.Author.Name)
	assert.Equal(t, "PS", post.Author.Initials)
	assert.Equal(t, "Just now", post.Timestamp)
	assert.Zero(t, post.Likes)
	assert.Zero(t, post.Comments)
	assert.Zero(t, post.Shares)

	posts, err := store.Posts(ctx)
	require.NoError(t, err)
	assert.Equal(t, post.ID, posts[0].ID, "newest post first")

	require.Len(t, rec.Drain(), 1)
}

func TestLikePost(t *testing.T) {
	ctx := context.Background()

	t.Run("three likes increment by exactly three", func(t *testing.T) {
		store, _ := newTestStore(t)

		before := postByID(t, store, "p1").Likes
		for i := 0; i < 3; i++ {
			require.NoError(t, store.LikePost(ctx, "p1"))
		}
		assert.Equal(t, before+3, postByID(t, store, "p1").Likes)
	})

	t.Run("unknown post is a no-op", func(t *testing.T) {
		store, _ := newTestStore(t)
		require.NoError(t, store.LikePost(ctx, "missing"))
	})

	t.Run("comments and shares never move", func(t *testing.T) {
		store, _ := newTestStore(t)

		before := postByID(t, store, "p2")
		require.NoError(t, store.LikePost(ctx, "p2"))
		after := postByID(t, store, "p2")

		assert.Equal(t, before.Comments, after.Comments)
		assert.Equal(t, before.Shares, after.Shares)
	})
}
