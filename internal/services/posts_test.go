package services

import (
	"context"
	"testing"
	"time"

	"github.com/dmitrijs2005/novabiz/internal/common"
	"github.com/dmitrijs2005/novabiz/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var ada = &models.User{Id: "1", Name: "Ada", Email: "ada@x.com", Avatar: "a.png"}

func newPostService(t *testing.T) *postService {
	t.Helper()
	return NewPostService(newTestStore(t)).(*postService)
}

func TestPostCreate_SnapshotsAuthorAndParsesTags(t *testing.T) {
	s := newPostService(t)
	ctx := context.Background()

	post, err := s.Create(ctx, ada, "Hi", "a, b")
	require.NoError(t, err)
	assert.Equal(t, "ada@x.com", post.UserId)
	assert.Equal(t, "Ada", post.UserName)
	assert.Equal(t, "a.png", post.UserAvatar)
	assert.Equal(t, []string{"a", "b"}, post.Tags)
	assert.Equal(t, 0, post.Likes)
	assert.Empty(t, post.Comments)

	list, err := s.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, *post, list[0])
}

func TestPostCreate_Validation(t *testing.T) {
	s := newPostService(t)
	ctx := context.Background()

	_, err := s.Create(ctx, ada, "   ", "")
	require.ErrorIs(t, err, common.ErrorValidation)

	_, err = s.Create(ctx, nil, "hello", "")
	require.ErrorIs(t, err, common.ErrorNotAuthenticated)
}

func TestPostCreate_AuthorSnapshotIsNotUpdatedLater(t *testing.T) {
	s := newPostService(t)
	ctx := context.Background()

	author := &models.User{Id: "1", Name: "Ada", Email: "ada@x.com"}
	post, err := s.Create(ctx, author, "snapshot me", "")
	require.NoError(t, err)

	// later profile edits do not touch existing posts
	author.Name = "Ada L."

	list, err := s.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Ada", list[0].UserName)
	assert.Equal(t, post.Id, list[0].Id)
}

func TestPostList_NewestFirst(t *testing.T) {
	s := newPostService(t)
	ctx := context.Background()

	ts := int64(1000)
	s.now = func() time.Time { ts += 1000; return time.UnixMilli(ts) }

	first, err := s.Create(ctx, ada, "first", "")
	require.NoError(t, err)
	second, err := s.Create(ctx, ada, "second", "")
	require.NoError(t, err)

	list, err := s.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, second.Id, list[0].Id)
	assert.Equal(t, first.Id, list[1].Id)
}

func TestPostLike_IncrementsWithoutBound(t *testing.T) {
	s := newPostService(t)
	ctx := context.Background()

	post, err := s.Create(ctx, ada, "like me", "")
	require.NoError(t, err)

	for i := 0; i < 5; i++ {
		require.NoError(t, s.Like(ctx, post.Id))
	}

	list, err := s.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, 5, list[0].Likes, "no dedup by liker, every call counts")

	require.ErrorIs(t, s.Like(ctx, "nope"), common.ErrorNotFound)
}

func TestPostAddComment(t *testing.T) {
	s := newPostService(t)
	ctx := context.Background()

	post, err := s.Create(ctx, ada, "discuss", "")
	require.NoError(t, err)

	bob := &models.User{Id: "2", Name: "Bob", Email: "bob@x.com"}
	comment, err := s.AddComment(ctx, post.Id, bob, "Nice!")
	require.NoError(t, err)
	assert.Equal(t, "Bob", comment.UserName)

	list, err := s.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	require.Len(t, list[0].Comments, 1)
	assert.Equal(t, "Nice!", list[0].Comments[0].Content)

	_, err = s.AddComment(ctx, "nope", bob, "lost")
	require.ErrorIs(t, err, common.ErrorNotFound)

	_, err = s.AddComment(ctx, post.Id, bob, "  ")
	require.ErrorIs(t, err, common.ErrorValidation)
}
