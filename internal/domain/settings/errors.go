package settings

import "errors"

var ErrUpdateNotAllowed = errors.New("only admins can update project types")
