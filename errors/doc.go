/*
Package errors provides semantic error types for the BorgPod library.

The package defines common error scenarios with specific types that can be
checked using the standard errors.Is() function or the provided helper functions.

Common Errors:

	var (
	    ErrNotPoddable          = errors.New("class is not poddable")
	    ErrNotFound             = errors.New("not found")
	    ErrInvalidInput         = errors.New("invalid input")
	    ErrRegistryInconsistent = errors.New("registry inconsistency")
	    ErrInitFailed           = errors.New("initializer failed")
	)

Usage:

	// Check error type
	pod, err := borgpod.New[Circle](hive)
	if err != nil {
	    if errors.IsNotPoddable(err) {
	        // Circle was never registered with Assimilate
	        return nil, fmt.Errorf("register Circle before constructing it")
	    }
	    return nil, err
	}

	// Create typed errors
	err := errors.NewNotPoddableError("shapes.Circle")
	err := errors.NewValidationError("name", "must not be empty")
	err := errors.NewInitError("Circle", cause)

Conversions either fully succeed or return one of these errors; there is no
partially converted state. Registry inconsistencies are fatal and are surfaced
rather than silently patched.

The error types implement the error interface and support wrapping,
making them compatible with Go's standard error handling patterns.
*/
package errors
