package seed

import "errors"

// Sentinel errors for the programmatic (non-validation) failure paths.
// Validation of user-supplied seed material never returns these; it reports
// through Result/SetResult so the run-acceptance layer can surface every
// message at once instead of failing on the first.
var (
	// ErrInvalidCount marks a generation count outside [1, MaxSeedsPerRun].
	ErrInvalidCount = errors.New("invalid seed count")

	// ErrMalformedConfig marks a seed-config string the codec cannot parse.
	ErrMalformedConfig = errors.New("malformed seed config")
)
