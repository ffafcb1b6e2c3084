package filter

import "errors"

// ErrInvalidConfiguration is wrapped by every construction and
// reconfiguration failure in the filter engine packages. Callers can test
// for it with errors.Is without knowing which engine produced the error.
var ErrInvalidConfiguration = errors.New("filter: invalid configuration")
