package shared

import (
	"context"
	"fmt"
	"strings"
	"studio/shared/failure"
)

// Reference names a foreign identity that must exist before a record
// referencing it may be inserted.
type Reference struct {
	Label  string
	Exists func(ctx context.Context) (bool, error)
}

// ValidateReferences confirms every referenced identity exists, failing with
// a NotFound naming the first missing reference.
func ValidateReferences(ctx context.Context, refs ...Reference) error {
	for _, ref := range refs {
		ok, err := ref.Exists(ctx)
		if err != nil {
			return fmt.Errorf("failed to check if %s exists: %w", strings.ToLower(ref.Label), err)
		}

		if !ok {
			return failure.NotFound(ref.Label + " not found") //nolint:wrapcheck
		}
	}

	return nil
}
