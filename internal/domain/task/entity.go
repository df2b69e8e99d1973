package task

import "time"

// Lane is one of the three fixed status buckets on the board. The lane set
// is unordered: any lane is reachable from any other by a user-initiated
// move or edit.
type Lane string

const (
	LaneTodo       Lane = "todo"
	LaneInProgress Lane = "inProgress"
	LaneDone       Lane = "done"
)

// Lanes lists the lanes in display order.
var Lanes = []Lane{LaneTodo, LaneInProgress, LaneDone}

// LaneTitles maps lane ids to their display titles.
var LaneTitles = map[Lane]string{
	LaneTodo:       "To Do",
	LaneInProgress: "In Progress",
	LaneDone:       "Done",
}

// IsValidLane reports whether s names a known lane.
func IsValidLane(s Lane) bool {
	switch s {
	case LaneTodo, LaneInProgress, LaneDone:
		return true
	}
	return false
}

type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

type CallStatus string

const (
	CallNotContacted    CallStatus = "not_contacted"
	CallNotAnswered     CallStatus = "not_answered"
	CallCalledNotListen CallStatus = "called_not_listen"
	CallInProgress      CallStatus = "in_progress"
	CallSucceeded       CallStatus = "succeeded"
)

// Comment is embedded in a task document and append-only.
type Comment struct {
	ID        string    `bson:"id" json:"id"`
	Text      string    `bson:"text" json:"text"`
	UserID    string    `bson:"user_id" json:"user_id"`
	UserName  string    `bson:"user_name" json:"user_name"`
	Timestamp time.Time `bson:"timestamp" json:"timestamp"`
}

type Task struct {
	ID              string     `bson:"_id,omitempty"`
	Title           string     `bson:"title"`
	Description     string     `bson:"description,omitempty"`
	Priority        Priority   `bson:"priority"`
	StoryPoints     int        `bson:"story_points"`
	Status          Lane       `bson:"status"`
	AssignedTo      []string   `bson:"assigned_to"`
	CustomerName    string     `bson:"customer_name"`
	CustomerMobile  string     `bson:"customer_mobile"`
	WebLink         string     `bson:"web_link,omitempty"`
	GmbLink         string     `bson:"gmb_link,omitempty"`
	Address         string     `bson:"address,omitempty"`
	ProjectTypes    []string   `bson:"project_types"`
	CallStatus      CallStatus `bson:"call_status"`
	ReportRequested bool       `bson:"report_requested"`
	Comments        []Comment  `bson:"comments"`
	CreatedBy       string     `bson:"created_by"`
	CreatedAt       time.Time  `bson:"created_at"`
	UpdatedAt       time.Time  `bson:"updated_at"`
}

// IsAssignedTo reports whether the given user id appears in AssignedTo.
func (t *Task) IsAssignedTo(userID string) bool {
	for _, id := range t.AssignedTo {
		if id == userID {
			return true
		}
	}
	return false
}
