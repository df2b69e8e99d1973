package user

import "errors"

var (
	ErrUserNotFound             = errors.New("user not found")
	ErrUserEmailExists          = errors.New("email already registered")
	ErrAdminAccessRequired      = errors.New("admin access required")
	ErrSupervisorAccessRequired = errors.New("supervisor access required")
	ErrInsufficientPermissions  = errors.New("insufficient permissions")
)
