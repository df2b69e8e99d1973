package user

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/calldesk/callcenter-backend-go/internal/domain/user"
)

type fakeUserRepo struct {
	users []user.User
}

func (f *fakeUserRepo) GetByEmail(_ context.Context, email string) (*user.User, error) {
	return nil, nil
}

func (f *fakeUserRepo) GetByID(_ context.Context, id string) (*user.User, error) {
	for i := range f.users {
		if f.users[i].ID == id {
			return &f.users[i], nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) GetByIDs(_ context.Context, ids []string) ([]user.User, error) {
	return nil, nil
}

func (f *fakeUserRepo) Create(_ context.Context, newUser user.User) (user.User, error) {
	return newUser, nil
}

func (f *fakeUserRepo) List(_ context.Context) ([]user.User, error) {
	return f.users, nil
}

func TestListRequiresDirectoryPermission(t *testing.T) {
	svc := NewUserService(&fakeUserRepo{})
	member := user.Identity{ID: "u1", Role: user.RoleMember}

	_, err := svc.List(context.Background(), member)
	assert.ErrorIs(t, err, user.ErrInsufficientPermissions)
}

func TestListReturnsDirectory(t *testing.T) {
	svc := NewUserService(&fakeUserRepo{users: []user.User{
		{ID: "u1", Email: "kim@example.com", DisplayName: "Kim", Role: user.RoleMember},
		{ID: "u2", Email: "lee@example.com", DisplayName: "Lee", Role: user.RoleSupervisor},
	}})
	supervisor := user.Identity{ID: "u2", Role: user.RoleSupervisor}

	result, err := svc.List(context.Background(), supervisor)
	require.NoError(t, err)
	assert.Len(t, result, 2)
}

func TestMeReturnsOwnProfile(t *testing.T) {
	svc := NewUserService(&fakeUserRepo{users: []user.User{
		{ID: "u1", Email: "kim@example.com", DisplayName: "Kim", Role: user.RoleMember},
	}})
	actor := user.Identity{ID: "u1", Role: user.RoleMember}

	result, err := svc.Me(context.Background(), actor)
	require.NoError(t, err)
	assert.Equal(t, "kim@example.com", result.Email)
}

func TestMeUnknownUserFails(t *testing.T) {
	svc := NewUserService(&fakeUserRepo{})
	actor := user.Identity{ID: "ghost", Role: user.RoleMember}

	_, err := svc.Me(context.Background(), actor)
	assert.ErrorIs(t, err, user.ErrUserNotFound)
}
