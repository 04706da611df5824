package grid

import "github.com/pkg/errors"

var (
	// ErrConfiguration is returned for malformed grids, terminals or probabilities
	ErrConfiguration = errors.New("invalid grid configuration")
	// ErrDomain is returned for states outside the state space or unknown actions
	ErrDomain = errors.New("query outside the grid domain")
	// ErrArithmetic is returned when the residual probability cannot be spread
	ErrArithmetic = errors.New("cannot spread residual probability")
)
