package task

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/calldesk/callcenter-backend-go/internal/domain/task"
	"github.com/calldesk/callcenter-backend-go/internal/domain/user"
)

type TaskServiceImpl struct {
	task.TaskRepository
	user.UserRepository
	now func() time.Time
}

func NewTaskService(taskRepository task.TaskRepository, userRepository user.UserRepository) task.TaskService {
	return &TaskServiceImpl{
		TaskRepository: taskRepository,
		UserRepository: userRepository,
		now:            time.Now,
	}
}

// List implements task.TaskService. Members only see tasks assigned to them;
// admins and supervisors see the whole board.
func (s *TaskServiceImpl) List(ctx context.Context, actor user.Identity) ([]task.TaskResponse, error) {
	var tasks []task.Task
	var err error
	if actor.Can(user.PermissionTaskViewAll) {
		tasks, err = s.TaskRepository.ListAll(ctx)
	} else {
		tasks, err = s.TaskRepository.ListByAssignee(ctx, actor.ID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}

	assignees, err := s.resolveAssignees(ctx, tasks)
	if err != nil {
		return nil, err
	}

	responses := make([]task.TaskResponse, 0, len(tasks))
	for _, t := range tasks {
		normalizeLane(&t)
		responses = append(responses, task.ToResponse(t, assigneesFor(t, assignees)))
	}
	return responses, nil
}

// Board implements task.TaskService.
func (s *TaskServiceImpl) Board(ctx context.Context, actor user.Identity) (task.BoardResponse, error) {
	tasks, err := s.List(ctx, actor)
	if err != nil {
		return task.BoardResponse{}, err
	}

	byLane := make(map[task.Lane][]task.TaskResponse, len(task.Lanes))
	for _, t := range tasks {
		lane := task.Lane(t.Status)
		byLane[lane] = append(byLane[lane], t)
	}

	board := task.BoardResponse{Lanes: make([]task.LaneResponse, 0, len(task.Lanes))}
	for _, lane := range task.Lanes {
		laneTasks := byLane[lane]
		if laneTasks == nil {
			laneTasks = []task.TaskResponse{}
		}
		board.Lanes = append(board.Lanes, task.LaneResponse{
			ID:    string(lane),
			Title: task.LaneTitles[lane],
			Tasks: laneTasks,
		})
	}
	return board, nil
}

// Get implements task.TaskService.
func (s *TaskServiceImpl) Get(ctx context.Context, actor user.Identity, id string) (task.TaskResponse, error) {
	t, err := s.getAccessible(ctx, actor, id)
	if err != nil {
		return task.TaskResponse{}, err
	}

	assignees, err := s.resolveAssignees(ctx, []task.Task{*t})
	if err != nil {
		return task.TaskResponse{}, err
	}
	return task.ToResponse(*t, assigneesFor(*t, assignees)), nil
}

// Create implements task.TaskService. New tasks always land in the todo lane.
func (s *TaskServiceImpl) Create(ctx context.Context, actor user.Identity, req task.CreateTaskRequest) (task.TaskResponse, error) {
	if !actor.Can(user.PermissionTaskCreate) {
		return task.TaskResponse{}, task.ErrCreateNotAllowed
	}

	projectTypes := req.ProjectTypes
	if projectTypes == nil {
		projectTypes = []string{}
	}

	created, err := s.TaskRepository.Create(ctx, task.Task{
		Title:           req.Title,
		Description:     req.Description,
		Priority:        task.Priority(req.Priority),
		StoryPoints:     req.StoryPoints,
		Status:          task.LaneTodo,
		AssignedTo:      req.AssignedTo,
		CustomerName:    req.CustomerName,
		CustomerMobile:  req.CustomerMobile,
		WebLink:         req.WebLink,
		GmbLink:         req.GmbLink,
		Address:         req.Address,
		ProjectTypes:    projectTypes,
		CallStatus:      task.CallStatus(req.CallStatus),
		ReportRequested: req.ReportRequested,
		Comments:        []task.Comment{},
		CreatedBy:       actor.ID,
	})
	if err != nil {
		return task.TaskResponse{}, fmt.Errorf("failed to create task: %w", err)
	}

	assignees, err := s.resolveAssignees(ctx, []task.Task{created})
	if err != nil {
		return task.TaskResponse{}, err
	}
	return task.ToResponse(created, assigneesFor(created, assignees)), nil
}

// Update implements task.TaskService. Assigned members may only edit the
// call-progress fields; everything else is reserved for admins/supervisors.
func (s *TaskServiceImpl) Update(ctx context.Context, actor user.Identity, req task.UpdateTaskRequest) (task.TaskResponse, error) {
	if _, err := s.getAccessible(ctx, actor, req.ID); err != nil {
		return task.TaskResponse{}, err
	}

	if !actor.Can(user.PermissionTaskViewAll) && hasRestrictedEdits(req) {
		return task.TaskResponse{}, user.ErrInsufficientPermissions
	}

	fields := task.UpdateFields{
		Title:           req.Title,
		Description:     req.Description,
		StoryPoints:     req.StoryPoints,
		AssignedTo:      req.AssignedTo,
		CustomerName:    req.CustomerName,
		CustomerMobile:  req.CustomerMobile,
		WebLink:         req.WebLink,
		GmbLink:         req.GmbLink,
		Address:         req.Address,
		ProjectTypes:    req.ProjectTypes,
		ReportRequested: req.ReportRequested,
	}
	if req.Priority != nil {
		p := task.Priority(*req.Priority)
		fields.Priority = &p
	}
	if req.CallStatus != nil {
		c := task.CallStatus(*req.CallStatus)
		fields.CallStatus = &c
	}
	if req.Status != nil {
		l := task.Lane(*req.Status)
		fields.Status = &l
	}

	if err := s.TaskRepository.Update(ctx, req.ID, fields); err != nil {
		return task.TaskResponse{}, fmt.Errorf("failed to update task: %w", err)
	}

	updated, err := s.TaskRepository.GetByID(ctx, req.ID)
	if err != nil {
		return task.TaskResponse{}, fmt.Errorf("failed to get task: %w", err)
	}
	if updated == nil {
		return task.TaskResponse{}, task.ErrTaskNotFound
	}

	assignees, err := s.resolveAssignees(ctx, []task.Task{*updated})
	if err != nil {
		return task.TaskResponse{}, err
	}
	normalizeLane(updated)
	return task.ToResponse(*updated, assigneesFor(*updated, assignees)), nil
}

// Move implements task.TaskService. Dropping a card back onto its own lane
// is a no-op and never reaches the store.
func (s *TaskServiceImpl) Move(ctx context.Context, actor user.Identity, req task.MoveTaskRequest) error {
	source := task.Lane(req.Source)
	destination := task.Lane(req.Destination)
	if !task.IsValidLane(source) || !task.IsValidLane(destination) {
		return task.ErrInvalidLane
	}
	if source == destination {
		return nil
	}

	if _, err := s.getAccessible(ctx, actor, req.ID); err != nil {
		return err
	}

	if err := s.TaskRepository.SetStatus(ctx, req.ID, destination); err != nil {
		return fmt.Errorf("failed to move task: %w", err)
	}
	return nil
}

// Delete implements task.TaskService.
func (s *TaskServiceImpl) Delete(ctx context.Context, actor user.Identity, id string) error {
	if !actor.Can(user.PermissionTaskDelete) {
		return task.ErrDeleteNotAllowed
	}
	if err := s.TaskRepository.Delete(ctx, id); err != nil {
		if err == task.ErrTaskNotFound {
			return err
		}
		return fmt.Errorf("failed to delete task: %w", err)
	}
	return nil
}

// AddComment implements task.TaskService.
func (s *TaskServiceImpl) AddComment(ctx context.Context, actor user.Identity, req task.AddCommentRequest) (task.Comment, error) {
	if _, err := s.getAccessible(ctx, actor, req.ID); err != nil {
		return task.Comment{}, err
	}

	comment := task.Comment{
		ID:        uuid.NewString(),
		Text:      req.Text,
		UserID:    actor.ID,
		UserName:  actor.Name,
		Timestamp: s.now(),
	}
	if err := s.TaskRepository.AppendComment(ctx, req.ID, comment); err != nil {
		if err == task.ErrTaskNotFound {
			return task.Comment{}, err
		}
		return task.Comment{}, fmt.Errorf("failed to append comment: %w", err)
	}
	return comment, nil
}

// getAccessible loads a task and enforces that members only touch tasks
// assigned to them.
func (s *TaskServiceImpl) getAccessible(ctx context.Context, actor user.Identity, id string) (*task.Task, error) {
	t, err := s.TaskRepository.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get task: %w", err)
	}
	if t == nil {
		return nil, task.ErrTaskNotFound
	}
	if !actor.Can(user.PermissionTaskViewAll) && !t.IsAssignedTo(actor.ID) {
		return nil, task.ErrNotAssigned
	}
	normalizeLane(t)
	return t, nil
}

// resolveAssignees batches one $in lookup over the deduplicated assignee ids
// of all tasks and returns responses keyed by user id. Stale ids pointing at
// deleted users are simply skipped.
func (s *TaskServiceImpl) resolveAssignees(ctx context.Context, tasks []task.Task) (map[string]user.UserResponse, error) {
	seen := make(map[string]struct{})
	ids := make([]string, 0)
	for _, t := range tasks {
		for _, id := range t.AssignedTo {
			if _, ok := seen[id]; !ok {
				seen[id] = struct{}{}
				ids = append(ids, id)
			}
		}
	}

	users, err := s.UserRepository.GetByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve assignees: %w", err)
	}

	byID := make(map[string]user.UserResponse, len(users))
	for _, u := range users {
		byID[u.ID] = user.ToResponse(u)
	}
	return byID, nil
}

func assigneesFor(t task.Task, byID map[string]user.UserResponse) []user.UserResponse {
	assignees := make([]user.UserResponse, 0, len(t.AssignedTo))
	for _, id := range t.AssignedTo {
		if u, ok := byID[id]; ok {
			assignees = append(assignees, u)
		}
	}
	return assignees
}

// normalizeLane coerces legacy or unknown status values onto the board's
// first lane so every task is always visible somewhere.
func normalizeLane(t *task.Task) {
	if !task.IsValidLane(t.Status) {
		t.Status = task.LaneTodo
	}
}

// hasRestrictedEdits reports whether the request touches fields beyond the
// call-progress set (call_status, report_requested, status) that assigned
// members may edit from the detail view.
func hasRestrictedEdits(req task.UpdateTaskRequest) bool {
	return req.Title != nil || req.Description != nil || req.Priority != nil ||
		req.StoryPoints != nil || req.AssignedTo != nil || req.CustomerName != nil ||
		req.CustomerMobile != nil || req.WebLink != nil || req.GmbLink != nil ||
		req.Address != nil || req.ProjectTypes != nil
}
