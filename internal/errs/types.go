package errs

type ErrorMessage struct {
	Message string
}

func (e *ErrorMessage) Error() string { return e.Message }

// NotFoundError covers both a missing record and a record owned by
// someone else. The two cases are deliberately indistinguishable to
// the caller.
type NotFoundError struct {
	ErrorMessage
}

type ValidationError struct {
	ErrorMessage
	Field string
}

// EmptyInputError signals an operation invoked with no target records.
type EmptyInputError struct {
	ErrorMessage
}

// FormatError signals stored data the renderer could not format,
// such as a transaction date that no longer parses.
type FormatError struct {
	ErrorMessage
}

// DatabaseError wraps a failed store call. Operation tags the call
// ("create", "read", ...); the wrapped error is logged, never returned
// to the caller.
type DatabaseError struct {
	ErrorMessage
	Operation string
	Err       error
}

func (e *DatabaseError) Unwrap() error { return e.Err }

// RenderError wraps a layout engine failure.
type RenderError struct {
	ErrorMessage
	Err error
}

func (e *RenderError) Unwrap() error { return e.Err }

func NewNotFoundError(message string) *NotFoundError {
	return &NotFoundError{
		ErrorMessage: ErrorMessage{Message: message},
	}
}

func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{
		ErrorMessage: ErrorMessage{Message: message},
		Field:        field,
	}
}

func NewEmptyInputError(message string) *EmptyInputError {
	return &EmptyInputError{
		ErrorMessage: ErrorMessage{Message: message},
	}
}

func NewFormatError(message string) *FormatError {
	return &FormatError{
		ErrorMessage: ErrorMessage{Message: message},
	}
}

func NewDatabaseError(operation, message string, err error) *DatabaseError {
	return &DatabaseError{
		ErrorMessage: ErrorMessage{Message: message},
		Operation:    operation,
		Err:          err,
	}
}

func NewRenderError(message string, err error) *RenderError {
	return &RenderError{
		ErrorMessage: ErrorMessage{Message: message},
		Err:          err,
	}
}
