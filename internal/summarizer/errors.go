package summarizer

import "fmt"

// Error reports a failed backend call for one slide. It is slide-local:
// callers record it and keep processing the remaining slides.
type Error struct {
	Backend string
	Err     error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s summarization failed: %v", e.Backend, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// ConfigError reports a missing or invalid credential for the selected
// backend. It is fatal and detected before any deck processing starts.
type ConfigError struct {
	Backend string
	Reason  string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("backend %q not usable: %s", e.Backend, e.Reason)
}
