package service

import "errors"

// ErrHasDependents is returned when a deletion is rejected because other
// records still reference the target. The check is deterministic: repeated
// calls fail the same way until the dependents are removed.
var ErrHasDependents = errors.New("dependent records exist")
