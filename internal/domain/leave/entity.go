package leave

import "time"

type Type string

const (
	TypeVacation Type = "vacation"
	TypeSick     Type = "sick"
	TypePersonal Type = "personal"
	TypeFamily   Type = "family"
	TypeOther    Type = "other"
)

type RequestStatus string

const (
	StatusPending  RequestStatus = "pending"
	StatusApproved RequestStatus = "approved"
	StatusRejected RequestStatus = "rejected"
)

type Request struct {
	ID           string        `bson:"_id,omitempty"`
	UserID       string        `bson:"user_id"`
	UserName     string        `bson:"user_name"`
	StartDate    time.Time     `bson:"start_date"`
	EndDate      time.Time     `bson:"end_date"`
	Type         Type          `bson:"type"`
	Reason       string        `bson:"reason"`
	Status       RequestStatus `bson:"status"`
	ApprovedBy   *string       `bson:"approved_by,omitempty"`
	ApproverName *string       `bson:"approver_name,omitempty"`
	RequestedAt  time.Time     `bson:"requested_at"`
	ProcessedAt  *time.Time    `bson:"processed_at,omitempty"`
}
