// Package apperror carries an HTTP status alongside an error so handlers
// can map domain failures to responses without switching on sentinel values.
package apperror

type AppError struct {
	Code    int    // HTTP status to respond with
	Message string // safe to show to the client
	Err     error  // underlying cause, kept out of responses
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// New builds an AppError with no underlying cause. Domain packages use it
// for their sentinel errors.
func New(code int, message string) *AppError {
	return &AppError{Code: code, Message: message}
}

// Wrap attaches a status and client-facing message to an existing error.
func Wrap(err error, code int, message string) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}
