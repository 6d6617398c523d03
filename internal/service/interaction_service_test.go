package service

import (
	"context"
	"strings"
	"testing"

	"glimpse/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// likeSetHarness backs the post repo stub with an in-memory like set so
// toggle semantics can be exercised end to end.
type likeSetHarness struct {
	repo  *postRepoStub
	likes map[uint]bool
}

func newLikeSetHarness(postID, authorID uint) *likeSetHarness {
	h := &likeSetHarness{likes: make(map[uint]bool)}
	repo := noopPostRepo()
	repo.getByIDFn = func(_ context.Context, id uint) (*models.Post, error) {
		if id != postID {
			return nil, models.NewNotFoundError("Post", id)
		}
		post := &models.Post{ID: postID, UserID: authorID, Title: "Sunset"}
		for userID, liked := range h.likes {
			if liked {
				post.Likes = append(post.Likes, models.Like{UserID: userID, PostID: postID})
			}
		}
		return post, nil
	}
	repo.isLikedFn = func(_ context.Context, userID, _ uint) (bool, error) {
		return h.likes[userID], nil
	}
	repo.likeFn = func(_ context.Context, userID, _ uint) error {
		h.likes[userID] = true
		return nil
	}
	repo.unlikeFn = func(_ context.Context, userID, _ uint) error {
		delete(h.likes, userID)
		return nil
	}
	h.repo = repo
	return h
}

func newTestInteractionService(postRepo *postRepoStub, commentRepo *commentRepoStub, userRepo *userRepoStub) *InteractionService {
	if commentRepo == nil {
		commentRepo = noopCommentRepo()
	}
	if userRepo == nil {
		userRepo = noopUserRepo()
	}
	return NewInteractionService(postRepo, commentRepo, NewProjector(userRepo))
}

func TestInteractionService_ToggleLike(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("missing post", func(t *testing.T) {
		t.Parallel()
		repo := noopPostRepo()
		repo.getByIDFn = func(_ context.Context, id uint) (*models.Post, error) {
			return nil, models.NewNotFoundError("Post", id)
		}
		svc := newTestInteractionService(repo, nil, nil)

		_, err := svc.ToggleLike(ctx, 2, 99)
		assertAppError(t, err, models.CodeNotFound)
	})

	t.Run("toggle twice restores the liker set", func(t *testing.T) {
		t.Parallel()
		h := newLikeSetHarness(5, 1)
		userRepo := noopUserRepo()
		userRepo.getByIDsFn = func(_ context.Context, ids []uint) ([]models.User, error) {
			users := make([]models.User, 0, len(ids))
			for _, id := range ids {
				users = append(users, models.User{ID: id, Username: "user"})
			}
			return users, nil
		}
		svc := newTestInteractionService(h.repo, nil, userRepo)

		view, err := svc.ToggleLike(ctx, 2, 5)
		require.NoError(t, err)
		require.Len(t, view.Likes, 1)
		assert.Equal(t, uint(2), view.Likes[0].ID)

		view, err = svc.ToggleLike(ctx, 2, 5)
		require.NoError(t, err)
		assert.Empty(t, view.Likes)
	})

	t.Run("author may like their own post", func(t *testing.T) {
		t.Parallel()
		h := newLikeSetHarness(5, 1)
		userRepo := noopUserRepo()
		userRepo.getByIDsFn = func(_ context.Context, ids []uint) ([]models.User, error) {
			users := make([]models.User, 0, len(ids))
			for _, id := range ids {
				users = append(users, models.User{ID: id})
			}
			return users, nil
		}
		svc := newTestInteractionService(h.repo, nil, userRepo)

		view, err := svc.ToggleLike(ctx, 1, 5)
		require.NoError(t, err)
		assert.Len(t, view.Likes, 1)
	})
}

func TestInteractionService_AddComment(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("empty text rejected", func(t *testing.T) {
		t.Parallel()
		svc := newTestInteractionService(noopPostRepo(), nil, nil)

		_, err := svc.AddComment(ctx, AddCommentInput{PostID: 5, UserID: 2, Username: "bob"})
		appErr := assertAppError(t, err, models.CodeValidation)
		assert.Equal(t, "Comment text is required", appErr.Message)
	})

	t.Run("oversized text rejected", func(t *testing.T) {
		t.Parallel()
		svc := newTestInteractionService(noopPostRepo(), nil, nil)

		_, err := svc.AddComment(ctx, AddCommentInput{
			PostID: 5, UserID: 2, Username: "bob",
			Text: strings.Repeat("x", 10001),
		})
		assertAppError(t, err, models.CodeValidation)
	})

	t.Run("missing post", func(t *testing.T) {
		t.Parallel()
		repo := noopPostRepo()
		repo.getByIDFn = func(_ context.Context, id uint) (*models.Post, error) {
			return nil, models.NewNotFoundError("Post", id)
		}
		svc := newTestInteractionService(repo, nil, nil)

		_, err := svc.AddComment(ctx, AddCommentInput{PostID: 99, UserID: 2, Username: "bob", Text: "hi"})
		assertAppError(t, err, models.CodeNotFound)
	})

	t.Run("stores the username snapshot", func(t *testing.T) {
		t.Parallel()
		repo := noopPostRepo()
		comments := noopCommentRepo()
		var stored *models.Comment
		comments.createFn = func(_ context.Context, comment *models.Comment) error {
			comment.ID = 11
			stored = comment
			return nil
		}
		svc := newTestInteractionService(repo, comments, nil)

		_, err := svc.AddComment(ctx, AddCommentInput{
			PostID: 5, UserID: 2, Username: "bob", Text: "nice",
		})
		require.NoError(t, err)
		require.NotNil(t, stored)
		assert.Equal(t, uint(5), stored.PostID)
		assert.Equal(t, uint(2), stored.UserID)
		assert.Equal(t, "bob", stored.Username)
		assert.Equal(t, "nice", stored.Text)
	})
}

func TestInteractionService_DeleteComment(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("non-author forbidden and comment kept", func(t *testing.T) {
		t.Parallel()
		comments := noopCommentRepo()
		comments.getByIDFn = func(_ context.Context, id uint) (*models.Comment, error) {
			return &models.Comment{ID: id, PostID: 5, UserID: 1, Username: "alice", Text: "nice"}, nil
		}
		deleted := false
		comments.deleteFn = func(_ context.Context, _ uint) error {
			deleted = true
			return nil
		}
		svc := newTestInteractionService(noopPostRepo(), comments, nil)

		_, err := svc.DeleteComment(ctx, DeleteCommentInput{PostID: 5, CommentID: 11, UserID: 2})
		assertAppError(t, err, models.CodeForbidden)
		assert.False(t, deleted)
	})

	t.Run("comment on a different post is not found", func(t *testing.T) {
		t.Parallel()
		comments := noopCommentRepo()
		comments.getByIDFn = func(_ context.Context, id uint) (*models.Comment, error) {
			return &models.Comment{ID: id, PostID: 8, UserID: 2}, nil
		}
		svc := newTestInteractionService(noopPostRepo(), comments, nil)

		_, err := svc.DeleteComment(ctx, DeleteCommentInput{PostID: 5, CommentID: 11, UserID: 2})
		assertAppError(t, err, models.CodeNotFound)
	})

	t.Run("author deletes own comment", func(t *testing.T) {
		t.Parallel()
		comments := noopCommentRepo()
		comments.getByIDFn = func(_ context.Context, id uint) (*models.Comment, error) {
			return &models.Comment{ID: id, PostID: 5, UserID: 2}, nil
		}
		var deletedID uint
		comments.deleteFn = func(_ context.Context, id uint) error {
			deletedID = id
			return nil
		}
		svc := newTestInteractionService(noopPostRepo(), comments, nil)

		_, err := svc.DeleteComment(ctx, DeleteCommentInput{PostID: 5, CommentID: 11, UserID: 2})
		require.NoError(t, err)
		assert.Equal(t, uint(11), deletedID)
	})
}
