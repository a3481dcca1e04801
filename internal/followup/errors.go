package followup

import "errors"

// Domain-specific errors for the followup package.
var (
	ErrEmptyItemID = errors.New("action item id is empty")
	ErrRepository  = errors.New("action item repository unavailable")
)
