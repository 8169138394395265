package complaints

import "errors"

// ErrInvalid marks complaints that fail validation: unknown issue type or
// urgency, or a required field left empty. Never retried.
var ErrInvalid = errors.New("invalid complaint")
