package leave

import "errors"

var (
	ErrLeaveRequestNotFound = errors.New("leave request not found")
	ErrApprovalNotAllowed   = errors.New("only admins and supervisors can process leave requests")
)
