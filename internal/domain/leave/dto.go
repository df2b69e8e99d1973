package leave

import (
	"github.com/calldesk/callcenter-backend-go/internal/pkg/validator"
)

type CreateRequest struct {
	StartDate string `json:"start_date"` // YYYY-MM-DD
	EndDate   string `json:"end_date"`   // YYYY-MM-DD
	Type      string `json:"type"`
	Reason    string `json:"reason"`
}

func (r *CreateRequest) Validate() error {
	var errs validator.ValidationErrors

	startDate, startOK := validator.IsValidDate(r.StartDate)
	if validator.IsEmpty(r.StartDate) {
		errs = append(errs, validator.ValidationError{
			Field:   "start_date",
			Message: "start_date is required",
		})
	} else if !startOK {
		errs = append(errs, validator.ValidationError{
			Field:   "start_date",
			Message: "start_date must be in YYYY-MM-DD format",
		})
	}

	endDate, endOK := validator.IsValidDate(r.EndDate)
	if validator.IsEmpty(r.EndDate) {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date is required",
		})
	} else if !endOK {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date must be in YYYY-MM-DD format",
		})
	}

	// End date must not precede start date; checked before any write
	if startOK && endOK && endDate.Before(startDate) {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end date cannot be before start date",
		})
	}

	if validator.IsEmpty(r.Type) {
		errs = append(errs, validator.ValidationError{
			Field:   "type",
			Message: "type is required",
		})
	} else {
		validTypes := []string{
			string(TypeVacation), string(TypeSick), string(TypePersonal),
			string(TypeFamily), string(TypeOther),
		}
		if !validator.IsInSlice(r.Type, validTypes) {
			errs = append(errs, validator.ValidationError{
				Field:   "type",
				Message: "type must be one of: vacation, sick, personal, family, other",
			})
		}
	}

	if validator.IsEmpty(r.Reason) {
		errs = append(errs, validator.ValidationError{
			Field:   "reason",
			Message: "reason is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type ProcessRequest struct {
	ID       string `json:"-"`
	Approved bool   `json:"approved"`
}

type RequestResponse struct {
	ID           string  `json:"id"`
	UserID       string  `json:"user_id"`
	UserName     string  `json:"user_name"`
	StartDate    string  `json:"start_date"`
	EndDate      string  `json:"end_date"`
	Type         string  `json:"type"`
	Reason       string  `json:"reason"`
	Status       string  `json:"status"`
	ApprovedBy   *string `json:"approved_by,omitempty"`
	ApproverName *string `json:"approver_name,omitempty"`
	RequestedAt  string  `json:"requested_at"`
}

func ToResponse(r Request) RequestResponse {
	return RequestResponse{
		ID:           r.ID,
		UserID:       r.UserID,
		UserName:     r.UserName,
		StartDate:    r.StartDate.Format("2006-01-02"),
		EndDate:      r.EndDate.Format("2006-01-02"),
		Type:         string(r.Type),
		Reason:       r.Reason,
		Status:       string(r.Status),
		ApprovedBy:   r.ApprovedBy,
		ApproverName: r.ApproverName,
		RequestedAt:  r.RequestedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
}
