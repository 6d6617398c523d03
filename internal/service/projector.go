package service

import (
	"context"

	"glimpse/internal/models"
	"glimpse/internal/repository"
)

// Projector expands stored user references (author, likers, comment authors)
// into display-ready summaries. It only reads; stored rows are never mutated.
type Projector struct {
	userRepo repository.UserRepository
}

// NewProjector returns a new Projector.
func NewProjector(userRepo repository.UserRepository) *Projector {
	return &Projector{userRepo: userRepo}
}

// ExpandPost builds the expanded view of a single post. References to users
// that no longer exist resolve to a nil summary (author, comment authors) or
// are dropped from the liker list; a dangling reference never fails the
// whole projection.
func (p *Projector) ExpandPost(ctx context.Context, post *models.Post) (*models.PostView, error) {
	views, err := p.ExpandPosts(ctx, []*models.Post{post})
	if err != nil {
		return nil, err
	}
	return views[0], nil
}

// ExpandPosts expands a batch of posts with a single user lookup.
func (p *Projector) ExpandPosts(ctx context.Context, posts []*models.Post) ([]*models.PostView, error) {
	ids := collectUserIDs(posts)

	users, err := p.userRepo.GetByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	byID := make(map[uint]*models.UserSummary, len(users))
	for i := range users {
		byID[users[i].ID] = users[i].Summary()
	}

	views := make([]*models.PostView, 0, len(posts))
	for _, post := range posts {
		view := &models.PostView{
			ID:        post.ID,
			Title:     post.Title,
			Caption:   post.Caption,
			Image:     post.Image,
			User:      byID[post.UserID],
			Likes:     make([]models.UserSummary, 0, len(post.Likes)),
			Comments:  make([]models.CommentView, 0, len(post.Comments)),
			CreatedAt: post.CreatedAt,
			UpdatedAt: post.UpdatedAt,
		}
		for _, like := range post.Likes {
			if summary := byID[like.UserID]; summary != nil {
				view.Likes = append(view.Likes, *summary)
			}
		}
		for _, comment := range post.Comments {
			view.Comments = append(view.Comments, models.CommentView{
				ID:        comment.ID,
				User:      byID[comment.UserID],
				Username:  comment.Username,
				Text:      comment.Text,
				CreatedAt: comment.CreatedAt,
			})
		}
		views = append(views, view)
	}
	return views, nil
}

// collectUserIDs gathers the distinct user IDs referenced by the posts.
func collectUserIDs(posts []*models.Post) []uint {
	seen := make(map[uint]struct{})
	var ids []uint
	add := func(id uint) {
		if _, ok := seen[id]; !ok {
			seen[id] = struct{}{}
			ids = append(ids, id)
		}
	}
	for _, post := range posts {
		add(post.UserID)
		for _, like := range post.Likes {
			add(like.UserID)
		}
		for _, comment := range post.Comments {
			add(comment.UserID)
		}
	}
	return ids
}
