package settings

import (
	"context"
	"fmt"
	"time"

	"github.com/calldesk/callcenter-backend-go/internal/domain/settings"
	"github.com/calldesk/callcenter-backend-go/internal/domain/user"
)

type SettingsServiceImpl struct {
	settings.SettingsRepository
	now func() time.Time
}

func NewSettingsService(settingsRepository settings.SettingsRepository) settings.SettingsService {
	return &SettingsServiceImpl{
		SettingsRepository: settingsRepository,
		now:                time.Now,
	}
}

// ProjectTypes implements settings.SettingsService. Before an admin first
// writes the document, everyone sees the built-in defaults.
func (s *SettingsServiceImpl) ProjectTypes(ctx context.Context) (settings.ProjectTypesResponse, error) {
	pt, err := s.SettingsRepository.GetProjectTypes(ctx)
	if err != nil {
		return settings.ProjectTypesResponse{}, fmt.Errorf("failed to get project types: %w", err)
	}
	if pt == nil {
		return settings.ProjectTypesResponse{Types: settings.DefaultProjectTypes}, nil
	}
	return settings.ProjectTypesResponse{Types: pt.Types}, nil
}

// UpdateProjectTypes implements settings.SettingsService.
func (s *SettingsServiceImpl) UpdateProjectTypes(ctx context.Context, actor user.Identity, req settings.UpdateProjectTypesRequest) (settings.ProjectTypesResponse, error) {
	if !actor.Can(user.PermissionSettingsManage) {
		return settings.ProjectTypesResponse{}, settings.ErrUpdateNotAllowed
	}

	if err := s.SettingsRepository.SetProjectTypes(ctx, settings.ProjectTypes{
		Types:     req.Types,
		UpdatedBy: actor.ID,
		UpdatedAt: s.now(),
	}); err != nil {
		return settings.ProjectTypesResponse{}, fmt.Errorf("failed to update project types: %w", err)
	}
	return settings.ProjectTypesResponse{Types: req.Types}, nil
}
