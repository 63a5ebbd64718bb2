package matcher

import (
	"errors"
	"fmt"
)

// ErrPrecondition marks caller mistakes that are rejected before any matching runs.
var ErrPrecondition = errors.New("precondition failed")

var (
	ErrAddressRequired   = fmt.Errorf("%w: address is required", ErrPrecondition)
	ErrAddressesRequired = fmt.Errorf("%w: addresses array is required", ErrPrecondition)
)

// ErrInvalidOptions is returned by New for out-of-range options.
var ErrInvalidOptions = errors.New("invalid matcher options")
