package generator

import "errors"

// ErrNoCandidates is returned when a selection is attempted on an empty list.
var ErrNoCandidates = errors.New("no candidates available")
