package service

import (
	"context"

	"glimpse/internal/auth"
	"glimpse/internal/models"
	"glimpse/internal/observability"
	"glimpse/internal/repository"
	"glimpse/internal/validation"
)

// UserService implements account lifecycle and authentication flows.
type UserService struct {
	userRepo repository.UserRepository
	tokens   *auth.Manager
}

type RegisterInput struct {
	Username       string
	Email          string
	Password       string
	ProfilePicture string
}

type UpdateUserInput struct {
	UserID         uint
	Username       string
	Email          string
	Password       string
	ProfilePicture string
}

func NewUserService(userRepo repository.UserRepository, tokens *auth.Manager) *UserService {
	return &UserService{userRepo: userRepo, tokens: tokens}
}

// Register creates a new account with a hashed password. Email uniqueness is
// checked explicitly; the username unique index backstops the rest.
func (s *UserService) Register(ctx context.Context, in RegisterInput) (*models.User, error) {
	if in.Username == "" || in.Email == "" || in.Password == "" {
		return nil, models.NewValidationError("Username, email, and password are required")
	}
	if err := validation.ValidateUsername(in.Username); err != nil {
		return nil, models.NewValidationError(err.Error())
	}
	if err := validation.ValidateEmail(in.Email); err != nil {
		return nil, models.NewValidationError(err.Error())
	}
	if err := validation.ValidatePassword(in.Password); err != nil {
		return nil, models.NewValidationError(err.Error())
	}

	existing, err := s.userRepo.GetByEmail(ctx, in.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, models.NewDuplicateError("Email already exists")
	}

	hash, err := auth.HashPassword(in.Password)
	if err != nil {
		return nil, models.NewInternalError(err)
	}

	user := &models.User{
		Username:       in.Username,
		Email:          in.Email,
		Password:       hash,
		ProfilePicture: in.ProfilePicture,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}
	observability.UsersRegistered.Inc()
	return user, nil
}

// Login verifies the credentials and issues a session token. Unknown email
// and wrong password both fail with the unauthenticated class.
func (s *UserService) Login(ctx context.Context, email, password string) (*models.User, string, error) {
	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return nil, "", err
	}
	if user == nil {
		return nil, "", models.NewUnauthenticatedError("User not found")
	}

	if !auth.CheckPassword(password, user.Password) {
		return nil, "", models.NewUnauthenticatedError("Invalid user password")
	}

	token, err := s.tokens.IssueToken(user.ID)
	if err != nil {
		return nil, "", models.NewInternalError(err)
	}
	return user, token, nil
}

func (s *UserService) GetUserByID(ctx context.Context, id uint) (*models.User, error) {
	return s.userRepo.GetByID(ctx, id)
}

func (s *UserService) ListUsers(ctx context.Context) ([]models.User, error) {
	return s.userRepo.List(ctx)
}

// UpdateUser applies a partial update. Duplicate username/email checks
// exclude the user being updated; a new password is re-hashed.
func (s *UserService) UpdateUser(ctx context.Context, in UpdateUserInput) (*models.User, error) {
	user, err := s.userRepo.GetByID(ctx, in.UserID)
	if err != nil {
		return nil, err
	}

	if in.Username != "" && in.Username != user.Username {
		if err := validation.ValidateUsername(in.Username); err != nil {
			return nil, models.NewValidationError(err.Error())
		}
		existing, err := s.userRepo.GetByUsername(ctx, in.Username)
		if err != nil {
			return nil, err
		}
		if existing != nil && existing.ID != in.UserID {
			return nil, models.NewDuplicateError("Username already exists")
		}
		user.Username = in.Username
	}

	if in.Email != "" && in.Email != user.Email {
		if err := validation.ValidateEmail(in.Email); err != nil {
			return nil, models.NewValidationError(err.Error())
		}
		existing, err := s.userRepo.GetByEmail(ctx, in.Email)
		if err != nil {
			return nil, err
		}
		if existing != nil && existing.ID != in.UserID {
			return nil, models.NewDuplicateError("Email already exists")
		}
		user.Email = in.Email
	}

	if in.Password != "" {
		if err := validation.ValidatePassword(in.Password); err != nil {
			return nil, models.NewValidationError(err.Error())
		}
		hash, err := auth.HashPassword(in.Password)
		if err != nil {
			return nil, models.NewInternalError(err)
		}
		user.Password = hash
	}

	if in.ProfilePicture != "" {
		user.ProfilePicture = in.ProfilePicture
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// DeleteUser removes the account and returns the deleted record.
func (s *UserService) DeleteUser(ctx context.Context, id uint) (*models.User, error) {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.userRepo.Delete(ctx, id); err != nil {
		return nil, err
	}
	return user, nil
}
