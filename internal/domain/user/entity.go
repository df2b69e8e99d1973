package user

import "time"

type Role string

const (
	RoleAdmin      Role = "admin"      // Full access, settings and leave administration
	RoleSupervisor Role = "supervisor" // Can manage tasks and approve leave
	RoleMember     Role = "member"     // Regular call-center agent
)

type User struct {
	ID           string    `bson:"_id,omitempty"`
	Email        string    `bson:"email"`
	DisplayName  string    `bson:"display_name"`
	PasswordHash string    `bson:"password_hash"`
	Role         Role      `bson:"role"`
	TeamID       *string   `bson:"team_id,omitempty"`
	CreatedAt    time.Time `bson:"created_at"`
	UpdatedAt    time.Time `bson:"updated_at"`
}

// IsAdmin checks if user is an administrator
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// IsSupervisor checks if user is supervisor or admin
func (u *User) IsSupervisor() bool {
	return u.Role == RoleSupervisor || u.Role == RoleAdmin
}

// Name returns the display name, falling back to the email address.
func (u *User) Name() string {
	if u.DisplayName != "" {
		return u.DisplayName
	}
	return u.Email
}
