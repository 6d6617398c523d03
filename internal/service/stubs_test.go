package service

import (
	"context"

	"glimpse/internal/models"
)

// userRepoStub is a stub for repository.UserRepository.
type userRepoStub struct {
	getByIDFn       func(context.Context, uint) (*models.User, error)
	getByIDsFn      func(context.Context, []uint) ([]models.User, error)
	getByEmailFn    func(context.Context, string) (*models.User, error)
	getByUsernameFn func(context.Context, string) (*models.User, error)
	createFn        func(context.Context, *models.User) error
	updateFn        func(context.Context, *models.User) error
	deleteFn        func(context.Context, uint) error
	listFn          func(context.Context) ([]models.User, error)
}

func (s *userRepoStub) GetByID(ctx context.Context, id uint) (*models.User, error) {
	return s.getByIDFn(ctx, id)
}
func (s *userRepoStub) GetByIDs(ctx context.Context, ids []uint) ([]models.User, error) {
	return s.getByIDsFn(ctx, ids)
}
func (s *userRepoStub) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	return s.getByEmailFn(ctx, email)
}
func (s *userRepoStub) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	return s.getByUsernameFn(ctx, username)
}
func (s *userRepoStub) Create(ctx context.Context, user *models.User) error {
	return s.createFn(ctx, user)
}
func (s *userRepoStub) Update(ctx context.Context, user *models.User) error {
	return s.updateFn(ctx, user)
}
func (s *userRepoStub) Delete(ctx context.Context, id uint) error {
	return s.deleteFn(ctx, id)
}
func (s *userRepoStub) List(ctx context.Context) ([]models.User, error) {
	return s.listFn(ctx)
}

func noopUserRepo() *userRepoStub {
	return &userRepoStub{
		getByIDFn:       func(_ context.Context, id uint) (*models.User, error) { return &models.User{ID: id}, nil },
		getByIDsFn:      func(_ context.Context, _ []uint) ([]models.User, error) { return nil, nil },
		getByEmailFn:    func(_ context.Context, _ string) (*models.User, error) { return nil, nil },
		getByUsernameFn: func(_ context.Context, _ string) (*models.User, error) { return nil, nil },
		createFn:        func(_ context.Context, _ *models.User) error { return nil },
		updateFn:        func(_ context.Context, _ *models.User) error { return nil },
		deleteFn:        func(_ context.Context, _ uint) error { return nil },
		listFn:          func(_ context.Context) ([]models.User, error) { return nil, nil },
	}
}

// postRepoStub is a stub for repository.PostRepository.
type postRepoStub struct {
	createFn              func(context.Context, *models.Post) error
	getByIDFn             func(context.Context, uint) (*models.Post, error)
	listByAuthorFn        func(context.Context, uint) ([]*models.Post, error)
	listFn                func(context.Context) ([]*models.Post, error)
	existsByAuthorTitleFn func(context.Context, uint, string, uint) (bool, error)
	updateFn              func(context.Context, *models.Post) error
	deleteFn              func(context.Context, uint) error
	isLikedFn             func(context.Context, uint, uint) (bool, error)
	likeFn                func(context.Context, uint, uint) error
	unlikeFn              func(context.Context, uint, uint) error
}

func (s *postRepoStub) Create(ctx context.Context, post *models.Post) error {
	return s.createFn(ctx, post)
}
func (s *postRepoStub) GetByID(ctx context.Context, id uint) (*models.Post, error) {
	return s.getByIDFn(ctx, id)
}
func (s *postRepoStub) ListByAuthor(ctx context.Context, authorID uint) ([]*models.Post, error) {
	return s.listByAuthorFn(ctx, authorID)
}
func (s *postRepoStub) List(ctx context.Context) ([]*models.Post, error) {
	return s.listFn(ctx)
}
func (s *postRepoStub) ExistsByAuthorTitle(ctx context.Context, authorID uint, title string, excludeID uint) (bool, error) {
	return s.existsByAuthorTitleFn(ctx, authorID, title, excludeID)
}
func (s *postRepoStub) Update(ctx context.Context, post *models.Post) error {
	return s.updateFn(ctx, post)
}
func (s *postRepoStub) Delete(ctx context.Context, id uint) error {
	return s.deleteFn(ctx, id)
}
func (s *postRepoStub) IsLiked(ctx context.Context, userID, postID uint) (bool, error) {
	return s.isLikedFn(ctx, userID, postID)
}
func (s *postRepoStub) Like(ctx context.Context, userID, postID uint) error {
	return s.likeFn(ctx, userID, postID)
}
func (s *postRepoStub) Unlike(ctx context.Context, userID, postID uint) error {
	return s.unlikeFn(ctx, userID, postID)
}

func noopPostRepo() *postRepoStub {
	return &postRepoStub{
		createFn:              func(_ context.Context, _ *models.Post) error { return nil },
		getByIDFn:             func(_ context.Context, id uint) (*models.Post, error) { return &models.Post{ID: id}, nil },
		listByAuthorFn:        func(_ context.Context, _ uint) ([]*models.Post, error) { return nil, nil },
		listFn:                func(_ context.Context) ([]*models.Post, error) { return nil, nil },
		existsByAuthorTitleFn: func(_ context.Context, _ uint, _ string, _ uint) (bool, error) { return false, nil },
		updateFn:              func(_ context.Context, _ *models.Post) error { return nil },
		deleteFn:              func(_ context.Context, _ uint) error { return nil },
		isLikedFn:             func(_ context.Context, _, _ uint) (bool, error) { return false, nil },
		likeFn:                func(_ context.Context, _, _ uint) error { return nil },
		unlikeFn:              func(_ context.Context, _, _ uint) error { return nil },
	}
}

// commentRepoStub is a stub for repository.CommentRepository.
type commentRepoStub struct {
	createFn     func(context.Context, *models.Comment) error
	getByIDFn    func(context.Context, uint) (*models.Comment, error)
	listByPostFn func(context.Context, uint) ([]*models.Comment, error)
	deleteFn     func(context.Context, uint) error
}

func (s *commentRepoStub) Create(ctx context.Context, comment *models.Comment) error {
	return s.createFn(ctx, comment)
}
func (s *commentRepoStub) GetByID(ctx context.Context, id uint) (*models.Comment, error) {
	return s.getByIDFn(ctx, id)
}
func (s *commentRepoStub) ListByPost(ctx context.Context, postID uint) ([]*models.Comment, error) {
	return s.listByPostFn(ctx, postID)
}
func (s *commentRepoStub) Delete(ctx context.Context, id uint) error {
	return s.deleteFn(ctx, id)
}

func noopCommentRepo() *commentRepoStub {
	return &commentRepoStub{
		createFn:     func(_ context.Context, _ *models.Comment) error { return nil },
		getByIDFn:    func(_ context.Context, id uint) (*models.Comment, error) { return &models.Comment{ID: id}, nil },
		listByPostFn: func(_ context.Context, _ uint) ([]*models.Comment, error) { return nil, nil },
		deleteFn:     func(_ context.Context, _ uint) error { return nil },
	}
}
