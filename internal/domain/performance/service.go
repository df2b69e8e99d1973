package performance

import (
	"context"

	"github.com/calldesk/callcenter-backend-go/internal/domain/user"
)

type PerformanceService interface {
	Daily(ctx context.Context, actor user.Identity) (StatsResponse, error)
	Weekly(ctx context.Context, actor user.Identity) (StatsResponse, error)
	Monthly(ctx context.Context, actor user.Identity) (StatsResponse, error)
	Goals(ctx context.Context, actor user.Identity) ([]GoalResponse, error)
	TeamComparison(ctx context.Context, actor user.Identity) (TeamComparisonResponse, error)
}
