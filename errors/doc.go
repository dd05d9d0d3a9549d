/*
Package errors provides semantic error types for the userstore data layer.

The package defines the error scenarios a datastore can surface, each with a
type that matches a sentinel through the standard errors.Is() function or the
provided helper functions.

Common Errors:

	var (
	    ErrNotFound        = errors.New("item not found")
	    ErrInvalidInput    = errors.New("invalid input")
	    ErrConditionFailed = errors.New("condition check failed")
	    ErrNoKeySchema     = errors.New("no key schema registered for type")
	)

Usage:

	user, err := store.GetOne(ctx, "E1")
	if err != nil {
	    if errors.IsNotFound(err) {
	        // respond 404
	    }
	    return nil, err
	}

	// Create typed errors
	err := errors.NewNotFoundError("User", "E1")
	err := errors.NewValidationError("emp_id", "must not be empty")
	err := errors.NewConditionFailedError("update", "attribute_exists(emp_id)")

The error types implement the error interface and support wrapping,
making them compatible with Go's standard error handling patterns.
*/
package errors
