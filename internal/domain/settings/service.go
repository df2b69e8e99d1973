package settings

import (
	"context"

	"github.com/calldesk/callcenter-backend-go/internal/domain/user"
)

type SettingsService interface {
	ProjectTypes(ctx context.Context) (ProjectTypesResponse, error)
	UpdateProjectTypes(ctx context.Context, actor user.Identity, req UpdateProjectTypesRequest) (ProjectTypesResponse, error)
}
