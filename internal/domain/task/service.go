package task

import (
	"context"

	"github.com/calldesk/callcenter-backend-go/internal/domain/user"
)

type TaskService interface {
	List(ctx context.Context, actor user.Identity) ([]TaskResponse, error)
	Board(ctx context.Context, actor user.Identity) (BoardResponse, error)
	Get(ctx context.Context, actor user.Identity, id string) (TaskResponse, error)
	Create(ctx context.Context, actor user.Identity, req CreateTaskRequest) (TaskResponse, error)
	Update(ctx context.Context, actor user.Identity, req UpdateTaskRequest) (TaskResponse, error)
	Move(ctx context.Context, actor user.Identity, req MoveTaskRequest) error
	Delete(ctx context.Context, actor user.Identity, id string) error
	AddComment(ctx context.Context, actor user.Identity, req AddCommentRequest) (Comment, error)
}
