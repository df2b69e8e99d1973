package task

import "errors"

var (
	ErrTaskNotFound     = errors.New("task not found")
	ErrCreateNotAllowed = errors.New("only admins and supervisors can create tasks")
	ErrDeleteNotAllowed = errors.New("only admins and supervisors can delete tasks")
	ErrNotAssigned      = errors.New("task is not assigned to you")
	ErrInvalidLane      = errors.New("unknown board lane")
)
