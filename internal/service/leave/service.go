package leave

import (
	"context"
	"fmt"
	"time"

	"github.com/calldesk/callcenter-backend-go/internal/domain/leave"
	"github.com/calldesk/callcenter-backend-go/internal/domain/user"
)

type LeaveServiceImpl struct {
	leave.LeaveRepository
	now func() time.Time
}

func NewLeaveService(leaveRepository leave.LeaveRepository) leave.LeaveService {
	return &LeaveServiceImpl{
		LeaveRepository: leaveRepository,
		now:             time.Now,
	}
}

// Request implements leave.LeaveService. The DTO's Validate rejects bad
// dates before this point, so nothing reaches the store on invalid input.
func (s *LeaveServiceImpl) Request(ctx context.Context, actor user.Identity, req leave.CreateRequest) (leave.RequestResponse, error) {
	startDate, _ := time.Parse("2006-01-02", req.StartDate)
	endDate, _ := time.Parse("2006-01-02", req.EndDate)

	created, err := s.LeaveRepository.Create(ctx, leave.Request{
		UserID:      actor.ID,
		UserName:    actor.Name,
		StartDate:   startDate,
		EndDate:     endDate,
		Type:        leave.Type(req.Type),
		Reason:      req.Reason,
		Status:      leave.StatusPending,
		RequestedAt: s.now(),
	})
	if err != nil {
		return leave.RequestResponse{}, fmt.Errorf("failed to create leave request: %w", err)
	}
	return leave.ToResponse(created), nil
}

// My implements leave.LeaveService.
func (s *LeaveServiceImpl) My(ctx context.Context, actor user.Identity) ([]leave.RequestResponse, error) {
	requests, err := s.LeaveRepository.ListByUser(ctx, actor.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to list leave requests: %w", err)
	}
	return toResponses(requests), nil
}

// List implements leave.LeaveService.
func (s *LeaveServiceImpl) List(ctx context.Context, actor user.Identity, status *string) ([]leave.RequestResponse, error) {
	if !actor.Can(user.PermissionLeaveViewAll) {
		return nil, user.ErrInsufficientPermissions
	}

	var statusFilter *leave.RequestStatus
	if status != nil && *status != "" {
		s := leave.RequestStatus(*status)
		statusFilter = &s
	}

	requests, err := s.LeaveRepository.List(ctx, statusFilter)
	if err != nil {
		return nil, fmt.Errorf("failed to list leave requests: %w", err)
	}
	return toResponses(requests), nil
}

// Process implements leave.LeaveService. The status write is unconditional:
// a request may be re-processed and the latest decision stands.
func (s *LeaveServiceImpl) Process(ctx context.Context, actor user.Identity, req leave.ProcessRequest) (leave.RequestResponse, error) {
	if !actor.Can(user.PermissionLeaveApprove) {
		return leave.RequestResponse{}, leave.ErrApprovalNotAllowed
	}

	request, err := s.LeaveRepository.GetByID(ctx, req.ID)
	if err != nil {
		return leave.RequestResponse{}, fmt.Errorf("failed to get leave request: %w", err)
	}
	if request == nil {
		return leave.RequestResponse{}, leave.ErrLeaveRequestNotFound
	}

	status := leave.StatusRejected
	if req.Approved {
		status = leave.StatusApproved
	}

	if err := s.LeaveRepository.SetStatus(ctx, req.ID, status, actor.ID, actor.Name); err != nil {
		return leave.RequestResponse{}, fmt.Errorf("failed to update leave request: %w", err)
	}

	request.Status = status
	request.ApprovedBy = &actor.ID
	request.ApproverName = &actor.Name
	return leave.ToResponse(*request), nil
}

func toResponses(requests []leave.Request) []leave.RequestResponse {
	responses := make([]leave.RequestResponse, 0, len(requests))
	for _, request := range requests {
		responses = append(responses, leave.ToResponse(request))
	}
	return responses
}
