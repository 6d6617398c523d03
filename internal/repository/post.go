package repository

import (
	"context"
	"errors"

	"glimpse/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// PostRepository defines the interface for post data operations, including
// the like set on each post.
type PostRepository interface {
	Create(ctx context.Context, post *models.Post) error
	GetByID(ctx context.Context, id uint) (*models.Post, error)
	ListByAuthor(ctx context.Context, authorID uint) ([]*models.Post, error)
	List(ctx context.Context) ([]*models.Post, error)
	ExistsByAuthorTitle(ctx context.Context, authorID uint, title string, excludeID uint) (bool, error)
	Update(ctx context.Context, post *models.Post) error
	Delete(ctx context.Context, id uint) error
	IsLiked(ctx context.Context, userID, postID uint) (bool, error)
	Like(ctx context.Context, userID, postID uint) error
	Unlike(ctx context.Context, userID, postID uint) error
}

type postRepository struct {
	db *gorm.DB
}

// NewPostRepository creates a new post repository.
func NewPostRepository(db *gorm.DB) PostRepository {
	return &postRepository{db: db}
}

// withAssociations preloads likes in insertion order and comments in append
// order, which is the ordering contract of the post document.
func (r *postRepository) withAssociations(db *gorm.DB) *gorm.DB {
	return db.
		Preload("User").
		Preload("Likes", func(db *gorm.DB) *gorm.DB {
			return db.Order("likes.created_at ASC, likes.id ASC")
		}).
		Preload("Comments", func(db *gorm.DB) *gorm.DB {
			return db.Order("comments.created_at ASC, comments.id ASC")
		})
}

func (r *postRepository) Create(ctx context.Context, post *models.Post) error {
	if err := r.db.WithContext(ctx).Create(post).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *postRepository) GetByID(ctx context.Context, id uint) (*models.Post, error) {
	var post models.Post
	if err := r.withAssociations(r.db.WithContext(ctx)).First(&post, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Post", id)
		}
		return nil, models.NewInternalError(err)
	}
	return &post, nil
}

func (r *postRepository) ListByAuthor(ctx context.Context, authorID uint) ([]*models.Post, error) {
	var posts []*models.Post
	err := r.withAssociations(r.db.WithContext(ctx)).
		Where("user_id = ?", authorID).
		Order("created_at DESC, id DESC").
		Find(&posts).Error
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return posts, nil
}

func (r *postRepository) List(ctx context.Context) ([]*models.Post, error) {
	var posts []*models.Post
	err := r.withAssociations(r.db.WithContext(ctx)).
		Order("created_at DESC, id DESC").
		Find(&posts).Error
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return posts, nil
}

// ExistsByAuthorTitle reports whether the author already has a post with the
// given title, ignoring the post with excludeID (0 to exclude none). The
// check and the subsequent write are separate statements; the duplicate-title
// invariant is best-effort under concurrency.
func (r *postRepository) ExistsByAuthorTitle(ctx context.Context, authorID uint, title string, excludeID uint) (bool, error) {
	var count int64
	query := r.db.WithContext(ctx).
		Model(&models.Post{}).
		Where("user_id = ? AND title = ?", authorID, title)
	if excludeID != 0 {
		query = query.Where("id <> ?", excludeID)
	}
	if err := query.Count(&count).Error; err != nil {
		return false, models.NewInternalError(err)
	}
	return count > 0, nil
}

func (r *postRepository) Update(ctx context.Context, post *models.Post) error {
	// Save without touching associations; likes and comments have their own paths.
	if err := r.db.WithContext(ctx).Omit("Likes", "Comments", "User").Save(post).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *postRepository) Delete(ctx context.Context, id uint) error {
	if err := r.db.WithContext(ctx).Delete(&models.Post{}, id).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *postRepository) IsLiked(ctx context.Context, userID, postID uint) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Like{}).
		Where("user_id = ? AND post_id = ?", userID, postID).
		Count(&count).Error; err != nil {
		return false, models.NewInternalError(err)
	}
	return count > 0, nil
}

// Like inserts into the like set. The conflict clause makes the insert a
// no-op when the row already exists, so concurrent likes from the same user
// cannot produce duplicates.
func (r *postRepository) Like(ctx context.Context, userID, postID uint) error {
	like := models.Like{UserID: userID, PostID: postID}
	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&like).Error
	if err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

// Unlike hard-deletes the like row so a later re-like re-inserts it.
func (r *postRepository) Unlike(ctx context.Context, userID, postID uint) error {
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND post_id = ?", userID, postID).
		Delete(&models.Like{}).Error
	if err != nil {
		return models.NewInternalError(err)
	}
	return nil
}
