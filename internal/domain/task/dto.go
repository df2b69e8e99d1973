package task

import (
	"time"

	"github.com/calldesk/callcenter-backend-go/internal/domain/user"
	"github.com/calldesk/callcenter-backend-go/internal/pkg/validator"
)

var validPriorities = []string{
	string(PriorityLow), string(PriorityMedium), string(PriorityHigh),
}

var validCallStatuses = []string{
	string(CallNotContacted), string(CallNotAnswered),
	string(CallCalledNotListen), string(CallInProgress), string(CallSucceeded),
}

type CreateTaskRequest struct {
	Title           string   `json:"title"`
	Description     string   `json:"description"`
	Priority        string   `json:"priority"`
	StoryPoints     int      `json:"story_points"`
	AssignedTo      []string `json:"assigned_to"`
	CustomerName    string   `json:"customer_name"`
	CustomerMobile  string   `json:"customer_mobile"`
	WebLink         string   `json:"web_link"`
	GmbLink         string   `json:"gmb_link"`
	Address         string   `json:"address"`
	ProjectTypes    []string `json:"project_types"`
	CallStatus      string   `json:"call_status"`
	ReportRequested bool     `json:"report_requested"`
}

func (r *CreateTaskRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Title) {
		errs = append(errs, validator.ValidationError{
			Field:   "title",
			Message: "title is required",
		})
	}

	if len(r.AssignedTo) == 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "assigned_to",
			Message: "please assign at least one member to this task",
		})
	}

	if r.Priority == "" {
		r.Priority = string(PriorityMedium)
	} else if !validator.IsInSlice(r.Priority, validPriorities) {
		errs = append(errs, validator.ValidationError{
			Field:   "priority",
			Message: "priority must be one of: low, medium, high",
		})
	}

	if r.StoryPoints < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "story_points",
			Message: "story_points must not be negative",
		})
	}
	if r.StoryPoints == 0 {
		r.StoryPoints = 1 // Default story points
	}

	if r.CallStatus == "" {
		r.CallStatus = string(CallNotContacted)
	} else if !validator.IsInSlice(r.CallStatus, validCallStatuses) {
		errs = append(errs, validator.ValidationError{
			Field:   "call_status",
			Message: "call_status must be one of: not_contacted, not_answered, called_not_listen, in_progress, succeeded",
		})
	}

	if !validator.IsEmpty(r.CustomerMobile) && !validator.IsValidMobile(r.CustomerMobile) {
		errs = append(errs, validator.ValidationError{
			Field:   "customer_mobile",
			Message: "customer_mobile must be a valid phone number",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// UpdateTaskRequest carries partial task edits; nil fields are left unchanged.
type UpdateTaskRequest struct {
	ID              string    `json:"-"`
	Title           *string   `json:"title,omitempty"`
	Description     *string   `json:"description,omitempty"`
	Priority        *string   `json:"priority,omitempty"`
	StoryPoints     *int      `json:"story_points,omitempty"`
	AssignedTo      *[]string `json:"assigned_to,omitempty"`
	CustomerName    *string   `json:"customer_name,omitempty"`
	CustomerMobile  *string   `json:"customer_mobile,omitempty"`
	WebLink         *string   `json:"web_link,omitempty"`
	GmbLink         *string   `json:"gmb_link,omitempty"`
	Address         *string   `json:"address,omitempty"`
	ProjectTypes    *[]string `json:"project_types,omitempty"`
	CallStatus      *string   `json:"call_status,omitempty"`
	ReportRequested *bool     `json:"report_requested,omitempty"`
	Status          *string   `json:"status,omitempty"`
}

func (r *UpdateTaskRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Title != nil && validator.IsEmpty(*r.Title) {
		errs = append(errs, validator.ValidationError{
			Field:   "title",
			Message: "title must not be empty",
		})
	}

	if r.AssignedTo != nil && len(*r.AssignedTo) == 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "assigned_to",
			Message: "please assign at least one member to this task",
		})
	}

	if r.Priority != nil && !validator.IsInSlice(*r.Priority, validPriorities) {
		errs = append(errs, validator.ValidationError{
			Field:   "priority",
			Message: "priority must be one of: low, medium, high",
		})
	}

	if r.StoryPoints != nil && *r.StoryPoints < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "story_points",
			Message: "story_points must not be negative",
		})
	}

	if r.CallStatus != nil && !validator.IsInSlice(*r.CallStatus, validCallStatuses) {
		errs = append(errs, validator.ValidationError{
			Field:   "call_status",
			Message: "call_status must be one of: not_contacted, not_answered, called_not_listen, in_progress, succeeded",
		})
	}

	if r.Status != nil && !IsValidLane(Lane(*r.Status)) {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be one of: todo, inProgress, done",
		})
	}

	if r.CustomerMobile != nil && !validator.IsEmpty(*r.CustomerMobile) && !validator.IsValidMobile(*r.CustomerMobile) {
		errs = append(errs, validator.ValidationError{
			Field:   "customer_mobile",
			Message: "customer_mobile must be a valid phone number",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type MoveTaskRequest struct {
	ID          string `json:"-"`
	Source      string `json:"source"`
	Destination string `json:"destination"`
}

type AddCommentRequest struct {
	ID   string `json:"-"`
	Text string `json:"text"`
}

func (r *AddCommentRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Text) {
		errs = append(errs, validator.ValidationError{
			Field:   "text",
			Message: "text is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type TaskResponse struct {
	ID              string              `json:"id"`
	Title           string              `json:"title"`
	Description     string              `json:"description,omitempty"`
	Priority        string              `json:"priority"`
	StoryPoints     int                 `json:"story_points"`
	Status          string              `json:"status"`
	AssignedTo      []string            `json:"assigned_to"`
	AssignedToUsers []user.UserResponse `json:"assigned_to_users"`
	CustomerName    string              `json:"customer_name"`
	CustomerMobile  string              `json:"customer_mobile"`
	WebLink         string              `json:"web_link,omitempty"`
	GmbLink         string              `json:"gmb_link,omitempty"`
	Address         string              `json:"address,omitempty"`
	ProjectTypes    []string            `json:"project_types"`
	CallStatus      string              `json:"call_status"`
	ReportRequested bool                `json:"report_requested"`
	Comments        []Comment           `json:"comments"`
	CreatedBy       string              `json:"created_by"`
	CreatedAt       string              `json:"created_at"`
}

type LaneResponse struct {
	ID    string         `json:"id"`
	Title string         `json:"title"`
	Tasks []TaskResponse `json:"tasks"`
}

type BoardResponse struct {
	Lanes []LaneResponse `json:"lanes"`
}

func ToResponse(t Task, assignees []user.UserResponse) TaskResponse {
	comments := t.Comments
	if comments == nil {
		comments = []Comment{}
	}
	projectTypes := t.ProjectTypes
	if projectTypes == nil {
		projectTypes = []string{}
	}
	return TaskResponse{
		ID:              t.ID,
		Title:           t.Title,
		Description:     t.Description,
		Priority:        string(t.Priority),
		StoryPoints:     t.StoryPoints,
		Status:          string(t.Status),
		AssignedTo:      t.AssignedTo,
		AssignedToUsers: assignees,
		CustomerName:    t.CustomerName,
		CustomerMobile:  t.CustomerMobile,
		WebLink:         t.WebLink,
		GmbLink:         t.GmbLink,
		Address:         t.Address,
		ProjectTypes:    projectTypes,
		CallStatus:      string(t.CallStatus),
		ReportRequested: t.ReportRequested,
		Comments:        comments,
		CreatedBy:       t.CreatedBy,
		CreatedAt:       t.CreatedAt.Format(time.RFC3339),
	}
}
