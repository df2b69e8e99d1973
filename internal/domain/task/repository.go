package task

import "context"

// UpdateFields mirrors UpdateTaskRequest at the storage layer; nil fields are
// omitted from the $set document.
type UpdateFields struct {
	Title           *string
	Description     *string
	Priority        *Priority
	StoryPoints     *int
	AssignedTo      *[]string
	CustomerName    *string
	CustomerMobile  *string
	WebLink         *string
	GmbLink         *string
	Address         *string
	ProjectTypes    *[]string
	CallStatus      *CallStatus
	ReportRequested *bool
	Status          *Lane
}

type TaskRepository interface {
	Create(ctx context.Context, t Task) (Task, error)
	GetByID(ctx context.Context, id string) (*Task, error)

	// ListAll returns every task ordered by created_at desc.
	ListAll(ctx context.Context) ([]Task, error)

	// ListByAssignee returns tasks whose assigned_to contains userID,
	// ordered by created_at desc.
	ListByAssignee(ctx context.Context, userID string) ([]Task, error)

	Update(ctx context.Context, id string, fields UpdateFields) error
	SetStatus(ctx context.Context, id string, status Lane) error
	Delete(ctx context.Context, id string) error

	// AppendComment atomically appends to the embedded comments array,
	// avoiding a read-modify-write race on concurrent commenters.
	AppendComment(ctx context.Context, id string, comment Comment) error
}
