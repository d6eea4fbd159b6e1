// Package validators holds the structural checks applied to squadron records
// before they are queued on the client or accepted by the development
// backend. Both sides share one RecordValidator so a record that passes
// locally is never rejected for shape by the backend.
package validators

import "context"

// Validator checks obj and returns a wrapped sentinel from this package on
// the first violation. When fields are given only those fields are checked.
type Validator interface {
	Validate(ctx context.Context, obj any, fields ...string) error
}
