package service

import (
	"context"

	"glimpse/internal/models"
	"glimpse/internal/observability"
	"glimpse/internal/repository"
)

// PostService implements post lifecycle operations: creation with the
// per-author title uniqueness rule, listing, partial updates, and deletion.
// Mutations are owner-only; the caller's identity comes from the resolved
// session, never from the request body.
type PostService struct {
	postRepo  repository.PostRepository
	projector *Projector
}

type CreatePostInput struct {
	UserID  uint
	Title   string
	Caption string
	Image   string
}

type UpdatePostInput struct {
	UserID  uint
	PostID  uint
	Title   string
	Caption string
	Image   string
}

type DeletePostInput struct {
	UserID uint
	PostID uint
}

func NewPostService(postRepo repository.PostRepository, projector *Projector) *PostService {
	return &PostService{postRepo: postRepo, projector: projector}
}

const maxTitleLen = 300

// CreatePost validates input, enforces the per-author duplicate-title rule,
// and persists a new post. The duplicate check and the insert are separate
// statements with no transaction between them; a concurrent pair of creates
// can slip past the check. Known, accepted gap.
func (s *PostService) CreatePost(ctx context.Context, in CreatePostInput) (*models.Post, error) {
	if in.UserID == 0 || in.Title == "" || in.Caption == "" {
		return nil, models.NewValidationError("userId, title, and caption are required")
	}
	if len(in.Title) > maxTitleLen {
		return nil, models.NewValidationError("Title too long (max 300 characters)")
	}

	exists, err := s.postRepo.ExistsByAuthorTitle(ctx, in.UserID, in.Title, 0)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, models.NewDuplicateError("Post title already exists")
	}

	post := &models.Post{
		Title:   in.Title,
		Caption: in.Caption,
		Image:   in.Image,
		UserID:  in.UserID,
	}
	if err := s.postRepo.Create(ctx, post); err != nil {
		return nil, err
	}
	observability.PostsCreated.Inc()

	return s.postRepo.GetByID(ctx, post.ID)
}

func (s *PostService) GetPost(ctx context.Context, id uint) (*models.Post, error) {
	return s.postRepo.GetByID(ctx, id)
}

// ListMyPosts returns the author's posts, most recent first.
func (s *PostService) ListMyPosts(ctx context.Context, authorID uint) ([]*models.Post, error) {
	return s.postRepo.ListByAuthor(ctx, authorID)
}

// ListAllPosts returns every post, most recent first, with author, likers,
// and comment authors expanded into display summaries.
func (s *PostService) ListAllPosts(ctx context.Context) ([]*models.PostView, error) {
	posts, err := s.postRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	return s.projector.ExpandPosts(ctx, posts)
}

// UpdatePost applies a partial update: only non-empty fields overwrite the
// stored values. The duplicate-title check excludes the post being updated.
func (s *PostService) UpdatePost(ctx context.Context, in UpdatePostInput) (*models.Post, error) {
	post, err := s.postRepo.GetByID(ctx, in.PostID)
	if err != nil {
		return nil, err
	}

	if post.UserID != in.UserID {
		return nil, models.NewForbiddenError("You can only update your own posts")
	}

	if in.Title != "" && in.Title != post.Title {
		if len(in.Title) > maxTitleLen {
			return nil, models.NewValidationError("Title too long (max 300 characters)")
		}
		exists, err := s.postRepo.ExistsByAuthorTitle(ctx, in.UserID, in.Title, in.PostID)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, models.NewDuplicateError("Title already exists")
		}
		post.Title = in.Title
	}
	if in.Caption != "" {
		post.Caption = in.Caption
	}
	if in.Image != "" {
		post.Image = in.Image
	}

	if err := s.postRepo.Update(ctx, post); err != nil {
		return nil, err
	}
	return s.postRepo.GetByID(ctx, post.ID)
}

func (s *PostService) DeletePost(ctx context.Context, in DeletePostInput) error {
	post, err := s.postRepo.GetByID(ctx, in.PostID)
	if err != nil {
		return err
	}

	if post.UserID != in.UserID {
		return models.NewForbiddenError("You can only delete your own posts")
	}

	return s.postRepo.Delete(ctx, in.PostID)
}
