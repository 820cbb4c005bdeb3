package assistant

import "errors"

// Domain-specific errors for the assistant package.
var (
	ErrEmptyQuery  = errors.New("query text is empty")
	ErrEmptyReport = errors.New("report crop, disease and location are required")
)
