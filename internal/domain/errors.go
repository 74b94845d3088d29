package domain

import "github.com/cockroachdb/errors"

// ErrDataConsistency marks a reference table that references an entry
// missing from another table. It is never retried.
var ErrDataConsistency = errors.New("reference data is inconsistent")

// ErrCalendarComputation marks an unusable input date.
var ErrCalendarComputation = errors.New("invalid date for rotation")

// DataConsistencyf wraps ErrDataConsistency with a formatted detail.
func DataConsistencyf(format string, args ...interface{}) error {
	return errors.Wrapf(ErrDataConsistency, format, args...)
}
