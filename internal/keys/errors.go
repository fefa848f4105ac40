package keys

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned when no API key matches the given identifier or
// credential. It is distinct from store faults, which are returned as-is.
var ErrNotFound = errors.New("api key not found")

// DuplicateNameError is returned when a key name already exists for the
// owning user. It is raised by the unique constraint on (user_id, name).
type DuplicateNameError struct {
	Name string
}

func (e *DuplicateNameError) Error() string {
	return fmt.Sprintf("api key name %q already exists for this user", e.Name)
}

// RateLimitedError is returned by the usage gate when a key has exhausted its
// limit. Usage and Limit carry the numbers shown to the caller.
type RateLimitedError struct {
	Usage int32
	Limit int32
}

func (e *RateLimitedError) Error() string {
	return fmt.Sprintf("api key usage limit reached: %d of %d requests used", e.Usage, e.Limit)
}
