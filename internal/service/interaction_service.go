package service

import (
	"context"

	"glimpse/internal/models"
	"glimpse/internal/observability"
	"glimpse/internal/repository"
)

// InteractionService manages likes and comments on posts. Every mutation
// returns the fully expanded post so clients can render the result without a
// second round trip.
type InteractionService struct {
	postRepo    repository.PostRepository
	commentRepo repository.CommentRepository
	projector   *Projector
}

type AddCommentInput struct {
	PostID   uint
	UserID   uint
	Username string // snapshot of the author's name at write time
	Text     string
}

type DeleteCommentInput struct {
	PostID    uint
	CommentID uint
	UserID    uint
}

func NewInteractionService(
	postRepo repository.PostRepository,
	commentRepo repository.CommentRepository,
	projector *Projector,
) *InteractionService {
	return &InteractionService{
		postRepo:    postRepo,
		commentRepo: commentRepo,
		projector:   projector,
	}
}

const maxCommentLen = 10000

// ToggleLike flips the user's like on the post: present becomes absent,
// absent becomes present. Any authenticated user may like any post,
// including their own. The read and the write are separate statements, so
// two overlapping toggles by the same user can land as a single net change;
// the like table's unique row per (user, post) keeps the set consistent
// either way.
func (s *InteractionService) ToggleLike(ctx context.Context, userID, postID uint) (*models.PostView, error) {
	if _, err := s.postRepo.GetByID(ctx, postID); err != nil {
		return nil, err
	}

	liked, err := s.postRepo.IsLiked(ctx, userID, postID)
	if err != nil {
		return nil, err
	}

	if liked {
		err = s.postRepo.Unlike(ctx, userID, postID)
	} else {
		err = s.postRepo.Like(ctx, userID, postID)
	}
	if err != nil {
		return nil, err
	}
	observability.LikesToggled.Inc()

	return s.expandedPost(ctx, postID)
}

// AddComment appends a comment to the post. The username snapshot is stored
// as-is and never re-synced with the account's current name.
func (s *InteractionService) AddComment(ctx context.Context, in AddCommentInput) (*models.PostView, error) {
	if in.Text == "" {
		return nil, models.NewValidationError("Comment text is required")
	}
	if len(in.Text) > maxCommentLen {
		return nil, models.NewValidationError("Comment too long (max 10000 characters)")
	}

	if _, err := s.postRepo.GetByID(ctx, in.PostID); err != nil {
		return nil, err
	}

	comment := &models.Comment{
		PostID:   in.PostID,
		UserID:   in.UserID,
		Username: in.Username,
		Text:     in.Text,
	}
	if err := s.commentRepo.Create(ctx, comment); err != nil {
		return nil, err
	}
	observability.CommentsAdded.Inc()

	return s.expandedPost(ctx, in.PostID)
}

// DeleteComment removes exactly the addressed comment, preserving the order
// of the rest. Only the comment's author may delete it; a comment ID that
// does not belong to the addressed post is treated as not found.
func (s *InteractionService) DeleteComment(ctx context.Context, in DeleteCommentInput) (*models.PostView, error) {
	if _, err := s.postRepo.GetByID(ctx, in.PostID); err != nil {
		return nil, err
	}

	comment, err := s.commentRepo.GetByID(ctx, in.CommentID)
	if err != nil {
		return nil, err
	}
	if comment.PostID != in.PostID {
		return nil, models.NewNotFoundError("Comment", in.CommentID)
	}

	if comment.UserID != in.UserID {
		return nil, models.NewForbiddenError("You can only delete your own comments")
	}

	if err := s.commentRepo.Delete(ctx, in.CommentID); err != nil {
		return nil, err
	}

	return s.expandedPost(ctx, in.PostID)
}

func (s *InteractionService) expandedPost(ctx context.Context, postID uint) (*models.PostView, error) {
	post, err := s.postRepo.GetByID(ctx, postID)
	if err != nil {
		return nil, err
	}
	return s.projector.ExpandPost(ctx, post)
}
