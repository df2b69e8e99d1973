package settings

import "context"

type SettingsRepository interface {
	// GetProjectTypes returns nil when the document has never been written.
	GetProjectTypes(ctx context.Context) (*ProjectTypes, error)
	SetProjectTypes(ctx context.Context, pt ProjectTypes) error
}
