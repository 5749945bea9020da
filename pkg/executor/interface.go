package executor

import "context"

// Executor runs external conversion tools (LibreOffice, poppler) on behalf
// of the pipeline.
type Executor interface {
	Execute(ctx context.Context, name string, args ...string) (string, error)
}
