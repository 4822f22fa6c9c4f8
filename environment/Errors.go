package environment

import "errors"

// EnvironmentError implements errors returned by an environment when
// it is used incorrectly
type EnvironmentError struct {
	Op  string
	Err error
}

// Error satisfies the error interface
func (e *EnvironmentError) Error() string {
	return e.Op + ": " + e.Err.Error()
}

// Unwrap returns the underlying error
func (e *EnvironmentError) Unwrap() error {
	return e.Err
}

// ErrStateUndefined is returned when an environment is stepped before
// it has been reset
var ErrStateUndefined = errors.New("cannot call step() before reset()")

// ErrInvalidAction is returned when an environment is stepped with an
// action outside of its action space
var ErrInvalidAction = errors.New("invalid action")

// IsStateUndefined returns whether or not an error reports that an
// environment was stepped before being reset
func IsStateUndefined(err error) bool {
	return errors.Is(err, ErrStateUndefined)
}

// IsInvalidAction returns whether or not an error reports that an
// environment was given an action outside of its action space
func IsInvalidAction(err error) bool {
	return errors.Is(err, ErrInvalidAction)
}
