package user

import (
	"context"
	"fmt"

	"github.com/calldesk/callcenter-backend-go/internal/domain/user"
)

type UserServiceImpl struct {
	user.UserRepository
}

func NewUserService(userRepository user.UserRepository) user.UserService {
	return &UserServiceImpl{UserRepository: userRepository}
}

// List implements user.UserService.
func (s *UserServiceImpl) List(ctx context.Context, actor user.Identity) ([]user.UserResponse, error) {
	if !actor.Can(user.PermissionUserViewAll) {
		return nil, user.ErrInsufficientPermissions
	}

	users, err := s.UserRepository.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}

	responses := make([]user.UserResponse, 0, len(users))
	for _, u := range users {
		responses = append(responses, user.ToResponse(u))
	}
	return responses, nil
}

// Me implements user.UserService.
func (s *UserServiceImpl) Me(ctx context.Context, actor user.Identity) (user.UserResponse, error) {
	u, err := s.UserRepository.GetByID(ctx, actor.ID)
	if err != nil {
		return user.UserResponse{}, fmt.Errorf("failed to get user: %w", err)
	}
	if u == nil {
		return user.UserResponse{}, user.ErrUserNotFound
	}
	return user.ToResponse(*u), nil
}
