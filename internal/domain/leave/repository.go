package leave

import "context"

type LeaveRepository interface {
	Create(ctx context.Context, request Request) (Request, error)

	// ListByUser returns the user's requests ordered by requested_at desc.
	ListByUser(ctx context.Context, userID string) ([]Request, error)

	// List returns all requests ordered by requested_at desc, optionally
	// filtered by status.
	List(ctx context.Context, status *RequestStatus) ([]Request, error)

	GetByID(ctx context.Context, id string) (*Request, error)

	// SetStatus overwrites status and approver fields unconditionally.
	// Last write wins; racing approvals are not detected.
	SetStatus(ctx context.Context, id string, status RequestStatus, approvedBy, approverName string) error
}
