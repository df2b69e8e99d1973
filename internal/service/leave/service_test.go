package leave

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/calldesk/callcenter-backend-go/internal/domain/leave"
	"github.com/calldesk/callcenter-backend-go/internal/domain/user"
)

type fakeLeaveRepo struct {
	requests    []leave.Request
	createCalls int
}

func (f *fakeLeaveRepo) Create(_ context.Context, request leave.Request) (leave.Request, error) {
	f.createCalls++
	request.ID = "leave-1"
	f.requests = append(f.requests, request)
	return request, nil
}

func (f *fakeLeaveRepo) ListByUser(_ context.Context, userID string) ([]leave.Request, error) {
	var out []leave.Request
	for _, r := range f.requests {
		if r.UserID == userID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeLeaveRepo) List(_ context.Context, status *leave.RequestStatus) ([]leave.Request, error) {
	var out []leave.Request
	for _, r := range f.requests {
		if status == nil || r.Status == *status {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeLeaveRepo) GetByID(_ context.Context, id string) (*leave.Request, error) {
	for i := range f.requests {
		if f.requests[i].ID == id {
			return &f.requests[i], nil
		}
	}
	return nil, nil
}

func (f *fakeLeaveRepo) SetStatus(_ context.Context, id string, status leave.RequestStatus, approvedBy, approverName string) error {
	for i := range f.requests {
		if f.requests[i].ID == id {
			f.requests[i].Status = status
			f.requests[i].ApprovedBy = &approvedBy
			f.requests[i].ApproverName = &approverName
			return nil
		}
	}
	return leave.ErrLeaveRequestNotFound
}

func newTestService(repo *fakeLeaveRepo) *LeaveServiceImpl {
	return &LeaveServiceImpl{
		LeaveRepository: repo,
		now:             func() time.Time { return time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC) },
	}
}

func member() user.Identity {
	return user.Identity{ID: "u1", Name: "Kim", Role: user.RoleMember}
}

func admin() user.Identity {
	return user.Identity{ID: "a1", Name: "Ana", Role: user.RoleAdmin}
}

func TestRequestStartsPending(t *testing.T) {
	repo := &fakeLeaveRepo{}
	svc := newTestService(repo)

	result, err := svc.Request(context.Background(), member(), leave.CreateRequest{
		StartDate: "2025-03-20",
		EndDate:   "2025-03-22",
		Type:      "vacation",
		Reason:    "family trip",
	})
	require.NoError(t, err)

	assert.Equal(t, "pending", result.Status)
	assert.Equal(t, "u1", result.UserID)
	assert.Equal(t, "2025-03-20", result.StartDate)
}

func TestCreateRequestRejectsEndBeforeStart(t *testing.T) {
	repo := &fakeLeaveRepo{}

	req := leave.CreateRequest{
		StartDate: "2025-03-22",
		EndDate:   "2025-03-20",
		Type:      "vacation",
		Reason:    "trip",
	}
	err := req.Validate()
	require.Error(t, err)
	// Validation runs before the service is invoked, so nothing is written.
	assert.Equal(t, 0, repo.createCalls)
}

func TestCreateRequestRejectsUnknownType(t *testing.T) {
	req := leave.CreateRequest{
		StartDate: "2025-03-20",
		EndDate:   "2025-03-22",
		Type:      "sabbatical",
		Reason:    "time off",
	}
	assert.Error(t, req.Validate())
}

func TestProcessApproveSetsApprover(t *testing.T) {
	repo := &fakeLeaveRepo{}
	svc := newTestService(repo)

	created, err := svc.Request(context.Background(), member(), leave.CreateRequest{
		StartDate: "2025-03-20", EndDate: "2025-03-22", Type: "sick", Reason: "flu",
	})
	require.NoError(t, err)

	result, err := svc.Process(context.Background(), admin(), leave.ProcessRequest{ID: created.ID, Approved: true})
	require.NoError(t, err)

	assert.Equal(t, "approved", result.Status)
	require.NotNil(t, result.ApprovedBy)
	assert.Equal(t, "a1", *result.ApprovedBy)
	require.NotNil(t, result.ApproverName)
	assert.Equal(t, "Ana", *result.ApproverName)
}

func TestProcessLastWriteWins(t *testing.T) {
	repo := &fakeLeaveRepo{}
	svc := newTestService(repo)

	created, err := svc.Request(context.Background(), member(), leave.CreateRequest{
		StartDate: "2025-03-20", EndDate: "2025-03-22", Type: "personal", Reason: "errand",
	})
	require.NoError(t, err)

	_, err = svc.Process(context.Background(), admin(), leave.ProcessRequest{ID: created.ID, Approved: true})
	require.NoError(t, err)

	// A second decision is not a conflict; the latest write stands.
	result, err := svc.Process(context.Background(), admin(), leave.ProcessRequest{ID: created.ID, Approved: false})
	require.NoError(t, err)
	assert.Equal(t, "rejected", result.Status)

	stored, err := repo.GetByID(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, leave.StatusRejected, stored.Status)
}

func TestProcessRequiresApprovalPermission(t *testing.T) {
	svc := newTestService(&fakeLeaveRepo{})

	_, err := svc.Process(context.Background(), member(), leave.ProcessRequest{ID: "leave-1", Approved: true})
	assert.ErrorIs(t, err, leave.ErrApprovalNotAllowed)
}

func TestProcessUnknownRequestFails(t *testing.T) {
	svc := newTestService(&fakeLeaveRepo{})

	_, err := svc.Process(context.Background(), admin(), leave.ProcessRequest{ID: "missing", Approved: true})
	assert.ErrorIs(t, err, leave.ErrLeaveRequestNotFound)
}

func TestListRequiresPermission(t *testing.T) {
	svc := newTestService(&fakeLeaveRepo{})

	_, err := svc.List(context.Background(), member(), nil)
	assert.ErrorIs(t, err, user.ErrInsufficientPermissions)
}

func TestListFiltersByStatus(t *testing.T) {
	repo := &fakeLeaveRepo{}
	svc := newTestService(repo)

	first, err := svc.Request(context.Background(), member(), leave.CreateRequest{
		StartDate: "2025-03-20", EndDate: "2025-03-22", Type: "vacation", Reason: "trip",
	})
	require.NoError(t, err)
	repo.requests[0].ID = first.ID

	second := leave.Request{ID: "leave-2", UserID: "u2", Status: leave.StatusPending}
	repo.requests = append(repo.requests, second)

	_, err = svc.Process(context.Background(), admin(), leave.ProcessRequest{ID: first.ID, Approved: true})
	require.NoError(t, err)

	status := "pending"
	pending, err := svc.List(context.Background(), admin(), &status)
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.Equal(t, "leave-2", pending[0].ID)
}
