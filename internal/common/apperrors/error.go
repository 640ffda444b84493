// Package apperrors provides the application error type used across the
// service. It extends the standard error interface with error chaining,
// HTTP status codes, and optional expansion of wrapped errors into the
// rendered message.
package apperrors

// Error is the interface implemented by all application errors. Methods
// return Error so call sites can chain derivations.
type Error interface {
	error
	Unwrap() error // support for errors.Is / errors.As

	New(msg string) Error                  // derives a fresh error using current as template
	Msg(msg string) Error                  // derives an error with a new message, wrapping the original
	MsgErr(msg string, err ...error) Error // derives an error with a message and extra wrapped errors
	Err(err ...error) Error                // attaches additional errors to the current error
	SetExpandError(bool) Error             // controls whether ErrorAll expands wrapped errors
	SetStatusCode(int) Error               // sets the HTTP status code carried by the error
	StatusCode() int                       // returns the carried status code
	ErrorAll() string                      // full message including wrapped errors
	UnwrapAll() []error                    // all wrapped errors
}
