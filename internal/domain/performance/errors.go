package performance

import "errors"

var (
	ErrNoTeamAssigned = errors.New("no team assigned")
	ErrNoTeamStats    = errors.New("no team statistics found")
	ErrNoUserMetrics  = errors.New("no performance metrics found")
)
