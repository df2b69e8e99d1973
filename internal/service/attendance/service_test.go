package attendance

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/calldesk/callcenter-backend-go/internal/domain/attendance"
	"github.com/calldesk/callcenter-backend-go/internal/domain/user"
)

type fakeAttendanceRepo struct {
	records       []attendance.Record
	clockOutCalls int
}

func (f *fakeAttendanceRepo) Create(_ context.Context, record attendance.Record) (attendance.Record, error) {
	for _, r := range f.records {
		if r.UserID == record.UserID && r.Date.Equal(record.Date) {
			return attendance.Record{}, attendance.ErrAlreadyClockedIn
		}
	}
	record.ID = "rec-1"
	f.records = append(f.records, record)
	return record, nil
}

func (f *fakeAttendanceRepo) GetTodayByUser(_ context.Context, userID string, dayStart, dayEnd time.Time) (*attendance.Record, error) {
	for i := range f.records {
		r := f.records[i]
		if r.UserID == userID && !r.Date.Before(dayStart) && r.Date.Before(dayEnd) {
			return &r, nil
		}
	}
	return nil, nil
}

func (f *fakeAttendanceRepo) SetClockOut(_ context.Context, id string, clockOutTime time.Time, totalHours float64, location *attendance.Location) error {
	f.clockOutCalls++
	for i := range f.records {
		if f.records[i].ID == id {
			f.records[i].ClockOutTime = &clockOutTime
			f.records[i].TotalHours = &totalHours
			if location != nil {
				f.records[i].Location = location
			}
			return nil
		}
	}
	return attendance.ErrAttendanceNotFound
}

func (f *fakeAttendanceRepo) ListByUserSince(_ context.Context, userID string, since time.Time) ([]attendance.Record, error) {
	var out []attendance.Record
	for _, r := range f.records {
		if r.UserID == userID && !r.Date.Before(since) {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeAttendanceRepo) ListByDateRange(_ context.Context, dayStart, dayEnd time.Time) ([]attendance.Record, error) {
	var out []attendance.Record
	for _, r := range f.records {
		if !r.Date.Before(dayStart) && r.Date.Before(dayEnd) {
			out = append(out, r)
		}
	}
	return out, nil
}

type fakeUserRepo struct {
	users []user.User
}

func (f *fakeUserRepo) GetByEmail(_ context.Context, email string) (*user.User, error) {
	for i := range f.users {
		if f.users[i].Email == email {
			return &f.users[i], nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) GetByID(_ context.Context, id string) (*user.User, error) {
	for i := range f.users {
		if f.users[i].ID == id {
			return &f.users[i], nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) GetByIDs(_ context.Context, ids []string) ([]user.User, error) {
	var out []user.User
	for _, id := range ids {
		for _, u := range f.users {
			if u.ID == id {
				out = append(out, u)
			}
		}
	}
	return out, nil
}

func (f *fakeUserRepo) Create(_ context.Context, newUser user.User) (user.User, error) {
	newUser.ID = "user-new"
	f.users = append(f.users, newUser)
	return newUser, nil
}

func (f *fakeUserRepo) List(_ context.Context) ([]user.User, error) {
	return f.users, nil
}

var testClock = time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)

func newTestService(repo *fakeAttendanceRepo, users *fakeUserRepo, now time.Time) *AttendanceServiceImpl {
	return &AttendanceServiceImpl{
		AttendanceRepository: repo,
		UserRepository:       users,
		now:                  func() time.Time { return now },
	}
}

func memberActor() user.Identity {
	return user.Identity{ID: "u1", Email: "kim@example.com", Name: "Kim", Role: user.RoleMember}
}

func TestClockInCreatesPresentRecord(t *testing.T) {
	repo := &fakeAttendanceRepo{}
	svc := newTestService(repo, &fakeUserRepo{}, testClock)

	result, err := svc.ClockIn(context.Background(), memberActor(), attendance.ClockInRequest{})
	require.NoError(t, err)

	assert.Equal(t, "present", result.Status)
	assert.Equal(t, "2025-03-10", result.Date)
	assert.Equal(t, "Kim", result.UserName)
	assert.True(t, result.ClockOutTime == nil)
}

func TestClockInTwiceSameDayFails(t *testing.T) {
	repo := &fakeAttendanceRepo{}
	svc := newTestService(repo, &fakeUserRepo{}, testClock)
	actor := memberActor()

	_, err := svc.ClockIn(context.Background(), actor, attendance.ClockInRequest{})
	require.NoError(t, err)

	_, err = svc.ClockIn(context.Background(), actor, attendance.ClockInRequest{})
	assert.ErrorIs(t, err, attendance.ErrAlreadyClockedIn)
}

func TestClockInAfterClockOutStillFails(t *testing.T) {
	repo := &fakeAttendanceRepo{}
	actor := memberActor()

	svcMorning := newTestService(repo, &fakeUserRepo{}, testClock)
	_, err := svcMorning.ClockIn(context.Background(), actor, attendance.ClockInRequest{})
	require.NoError(t, err)

	svcEvening := newTestService(repo, &fakeUserRepo{}, testClock.Add(8*time.Hour))
	_, err = svcEvening.ClockOut(context.Background(), actor, attendance.ClockOutRequest{})
	require.NoError(t, err)

	_, err = svcEvening.ClockIn(context.Background(), actor, attendance.ClockInRequest{})
	assert.ErrorIs(t, err, attendance.ErrAlreadyClockedIn)
}

func TestClockOutComputesRoundedHours(t *testing.T) {
	repo := &fakeAttendanceRepo{}
	actor := memberActor()

	svcIn := newTestService(repo, &fakeUserRepo{}, testClock)
	_, err := svcIn.ClockIn(context.Background(), actor, attendance.ClockInRequest{})
	require.NoError(t, err)

	svcOut := newTestService(repo, &fakeUserRepo{}, testClock.Add(8*time.Hour+30*time.Minute))
	result, err := svcOut.ClockOut(context.Background(), actor, attendance.ClockOutRequest{})
	require.NoError(t, err)

	require.NotNil(t, result.TotalHours)
	assert.Equal(t, 8.5, *result.TotalHours)
	assert.NotNil(t, result.ClockOutTime)
}

func TestClockOutWithoutClockInFails(t *testing.T) {
	svc := newTestService(&fakeAttendanceRepo{}, &fakeUserRepo{}, testClock)

	_, err := svc.ClockOut(context.Background(), memberActor(), attendance.ClockOutRequest{})
	assert.ErrorIs(t, err, attendance.ErrNotClockedIn)
}

func TestClockOutTwiceFails(t *testing.T) {
	repo := &fakeAttendanceRepo{}
	actor := memberActor()

	svcIn := newTestService(repo, &fakeUserRepo{}, testClock)
	_, err := svcIn.ClockIn(context.Background(), actor, attendance.ClockInRequest{})
	require.NoError(t, err)

	svcOut := newTestService(repo, &fakeUserRepo{}, testClock.Add(4*time.Hour))
	_, err = svcOut.ClockOut(context.Background(), actor, attendance.ClockOutRequest{})
	require.NoError(t, err)

	_, err = svcOut.ClockOut(context.Background(), actor, attendance.ClockOutRequest{})
	assert.ErrorIs(t, err, attendance.ErrAlreadyClockedOut)
	assert.Equal(t, 1, repo.clockOutCalls)
}

func TestTodayWithoutRecordIsNotAnError(t *testing.T) {
	svc := newTestService(&fakeAttendanceRepo{}, &fakeUserRepo{}, testClock)

	result, err := svc.Today(context.Background(), memberActor())
	require.NoError(t, err)
	assert.False(t, result.ClockedIn)
	assert.Nil(t, result.Record)
}

func TestTeamReportsAbsentMembers(t *testing.T) {
	users := &fakeUserRepo{users: []user.User{
		{ID: "u1", Email: "kim@example.com", DisplayName: "Kim", Role: user.RoleMember},
		{ID: "u2", Email: "lee@example.com", DisplayName: "Lee", Role: user.RoleMember},
	}}
	repo := &fakeAttendanceRepo{}

	svcIn := newTestService(repo, users, testClock)
	_, err := svcIn.ClockIn(context.Background(), memberActor(), attendance.ClockInRequest{})
	require.NoError(t, err)

	admin := user.Identity{ID: "a1", Name: "Ana", Role: user.RoleAdmin}
	team, err := svcIn.Team(context.Background(), admin)
	require.NoError(t, err)
	require.Len(t, team, 2)

	byID := map[string]attendance.TeamMemberAttendance{}
	for _, m := range team {
		byID[m.UserID] = m
	}
	assert.Equal(t, "present", byID["u1"].Status)
	assert.NotNil(t, byID["u1"].ClockInTime)
	assert.Equal(t, "absent", byID["u2"].Status)
	assert.Nil(t, byID["u2"].ClockInTime)
	assert.Equal(t, float64(0), byID["u2"].HoursWorked)
}

func TestTeamRequiresPermission(t *testing.T) {
	svc := newTestService(&fakeAttendanceRepo{}, &fakeUserRepo{}, testClock)

	_, err := svc.Team(context.Background(), memberActor())
	assert.ErrorIs(t, err, user.ErrInsufficientPermissions)
}
