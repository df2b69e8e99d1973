package settings

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/calldesk/callcenter-backend-go/internal/domain/settings"
	"github.com/calldesk/callcenter-backend-go/internal/domain/user"
)

type fakeSettingsRepo struct {
	stored *settings.ProjectTypes
}

func (f *fakeSettingsRepo) GetProjectTypes(_ context.Context) (*settings.ProjectTypes, error) {
	return f.stored, nil
}

func (f *fakeSettingsRepo) SetProjectTypes(_ context.Context, pt settings.ProjectTypes) error {
	f.stored = &pt
	return nil
}

func newTestService(repo *fakeSettingsRepo) *SettingsServiceImpl {
	return &SettingsServiceImpl{
		SettingsRepository: repo,
		now:                func() time.Time { return time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC) },
	}
}

func TestProjectTypesDefaultsWhenUnset(t *testing.T) {
	svc := newTestService(&fakeSettingsRepo{})

	result, err := svc.ProjectTypes(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"GMB", "CC-P1", "CC-P2", "CC-P3", "Automation"}, result.Types)
}

func TestUpdateProjectTypesRequiresAdmin(t *testing.T) {
	svc := newTestService(&fakeSettingsRepo{})
	supervisor := user.Identity{ID: "s1", Role: user.RoleSupervisor}

	_, err := svc.UpdateProjectTypes(context.Background(), supervisor, settings.UpdateProjectTypesRequest{
		Types: []string{"GMB"},
	})
	assert.ErrorIs(t, err, settings.ErrUpdateNotAllowed)
}

func TestUpdateProjectTypesOverwritesList(t *testing.T) {
	repo := &fakeSettingsRepo{}
	svc := newTestService(repo)
	admin := user.Identity{ID: "a1", Role: user.RoleAdmin}

	updated, err := svc.UpdateProjectTypes(context.Background(), admin, settings.UpdateProjectTypesRequest{
		Types: []string{"GMB", "Outreach"},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"GMB", "Outreach"}, updated.Types)

	result, err := svc.ProjectTypes(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"GMB", "Outreach"}, result.Types)
	assert.Equal(t, "a1", repo.stored.UpdatedBy)
}
