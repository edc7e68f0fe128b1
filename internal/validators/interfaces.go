package validators

import "context"

// Validator validates domain models before they are queued locally or
// accepted by the server. Optional field names restrict validation to a
// subset of fields; when omitted, a sensible default set is checked.
type Validator interface {
	Validate(ctx context.Context, obj any, fields ...string) error
}
