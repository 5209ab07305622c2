package vouchers

import (
	"fmt"
	"strings"
)

// ValidationError describes a single draft rule violation. The description is
// user-facing and names the specific unmet condition.
type ValidationError struct {
	Rule        string
	Description string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Rule, e.Description)
}

// ValidationErrors collects every rule a draft fails; a draft is never
// partially posted.
type ValidationErrors []ValidationError

func (e ValidationErrors) Error() string {
	msgs := make([]string, len(e))
	for i, ve := range e {
		msgs[i] = ve.Error()
	}
	return "validation failed: " + strings.Join(msgs, "; ")
}

// IDCollisionError reports that a freshly numbered voucher ID already exists
// in the collection. Recoverable by regenerating the ID and retrying once;
// a repeat indicates a storage-layer bug.
type IDCollisionError struct {
	ID string
}

func (e IDCollisionError) Error() string {
	return fmt.Sprintf("voucher ID %s already exists", e.ID)
}

// ImmutabilityError reports an attempt to mutate a frozen field of a posted
// voucher. Posted financial facts are corrected with compensating vouchers,
// never edits.
type ImmutabilityError struct {
	VoucherID string
	Field     string
}

func (e ImmutabilityError) Error() string {
	return fmt.Sprintf("voucher %s is posted; %s is immutable", e.VoucherID, e.Field)
}
