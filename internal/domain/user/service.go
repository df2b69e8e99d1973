package user

import "context"

type UserService interface {
	// List returns the user directory for task assignment.
	List(ctx context.Context, actor Identity) ([]UserResponse, error)
	// Me returns the caller's own profile.
	Me(ctx context.Context, actor Identity) (UserResponse, error)
}
