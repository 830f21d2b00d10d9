package storage

import (
	"context"
	"errors"
)

// ErrNilContext covers the one programmer mistake the store checks for. The
// store deliberately performs no validation on domain values: an unknown or
// blank id simply matches nothing and the operation is a silent no-op.
var ErrNilContext = errors.New("context cannot be nil")

// validateContext ensures the context is not nil.
func validateContext(ctx context.Context) error {
	if ctx == nil {
		return ErrNilContext
	}
	return nil
}
