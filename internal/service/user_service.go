package service

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"kriah-trainer/backend/internal/dto"
	"kriah-trainer/backend/internal/model"
	"kriah-trainer/backend/internal/repository"
)

// User service errors.
var (
	ErrForbidden   = errors.New("operation not allowed for this user")
	ErrInvalidRole = errors.New("unknown role")
)

// UserService covers account administration.
type UserService interface {
	List(ctx context.Context) ([]dto.UserResponse, error)
	Get(ctx context.Context, id string) (*dto.UserResponse, error)
	// Update edits a profile. Members may only edit themselves.
	Update(ctx context.Context, actorID, actorRole, targetID string, req *dto.UpdateUserRequest) (*dto.UserResponse, error)
	Delete(ctx context.Context, id string) error
	AssignRole(ctx context.Context, id, role string) (*dto.UserResponse, error)
}

type userService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewUserService creates a UserService.
func NewUserService(repo *repository.Repository, logger *zap.Logger) UserService {
	return &userService{repo: repo, logger: logger}
}

func (s *userService) List(ctx context.Context) ([]dto.UserResponse, error) {
	users, err := s.repo.User.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.UserResponse, 0, len(users))
	for i := range users {
		out = append(out, toUserResponse(&users[i]))
	}
	return out, nil
}

func (s *userService) Get(ctx context.Context, id string) (*dto.UserResponse, error) {
	user, err := s.getUser(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := toUserResponse(user)
	return &resp, nil
}

func (s *userService) Update(ctx context.Context, actorID, actorRole, targetID string, req *dto.UpdateUserRequest) (*dto.UserResponse, error) {
	if actorID != targetID && actorRole != model.RoleAdmin {
		return nil, ErrForbidden
	}

	user, err := s.getUser(ctx, targetID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		user.Name = *req.Name
	}
	if req.Email != nil && *req.Email != user.Email {
		if existing, err := s.repo.User.GetByEmail(ctx, *req.Email); err == nil && existing.UserID != user.UserID {
			return nil, ErrEmailTaken
		} else if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		user.Email = *req.Email
	}

	if err := s.repo.User.Update(ctx, user); err != nil {
		s.logger.Error("updating user failed", zap.String("user_id", targetID), zap.Error(err))
		return nil, err
	}
	resp := toUserResponse(user)
	return &resp, nil
}

func (s *userService) Delete(ctx context.Context, id string) error {
	if _, err := s.getUser(ctx, id); err != nil {
		return err
	}
	// sessions, preferences and stats go with the user via FK cascade
	return s.repo.User.Delete(ctx, id)
}

func (s *userService) AssignRole(ctx context.Context, id, role string) (*dto.UserResponse, error) {
	if role != model.RoleMember && role != model.RoleAdmin {
		return nil, ErrInvalidRole
	}

	user, err := s.getUser(ctx, id)
	if err != nil {
		return nil, err
	}
	user.Role = role
	if err := s.repo.User.Update(ctx, user); err != nil {
		return nil, err
	}
	resp := toUserResponse(user)
	return &resp, nil
}

func (s *userService) getUser(ctx context.Context, id string) (*model.User, error) {
	user, err := s.repo.User.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}
