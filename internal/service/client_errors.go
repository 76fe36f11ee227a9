package service

import (
	"errors"
	"fmt"
)

var (
	// ErrValidationFailed means staged values break a local precondition. No
	// remote call was made.
	ErrValidationFailed = errors.New("validation failed")

	// ErrNotInView means Select was given an id that is not a member of the
	// current view.
	ErrNotInView = errors.New("record is not in the current view")

	// ErrAssetNotLinked means the record was written but its asset could not
	// be uploaded or linked. See [PartialCommitError].
	ErrAssetNotLinked = errors.New("record saved without its image")
)

// PartialCommitError reports a record that was committed while its asset
// step failed. The record exists remotely under ID; retrying the edit links
// the asset.
type PartialCommitError struct {
	ID  string
	Err error
}

func (e *PartialCommitError) Error() string {
	return fmt.Sprintf("%s (record %s): %v", ErrAssetNotLinked, e.ID, e.Err)
}

func (e *PartialCommitError) Unwrap() []error {
	return []error{ErrAssetNotLinked, e.Err}
}
