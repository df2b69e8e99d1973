package leave

import (
	"context"

	"github.com/calldesk/callcenter-backend-go/internal/domain/user"
)

type LeaveService interface {
	Request(ctx context.Context, actor user.Identity, req CreateRequest) (RequestResponse, error)
	My(ctx context.Context, actor user.Identity) ([]RequestResponse, error)
	List(ctx context.Context, actor user.Identity, status *string) ([]RequestResponse, error)
	Process(ctx context.Context, actor user.Identity, req ProcessRequest) (RequestResponse, error)
}
