package models

import "errors"

var (
	ErrValidation    = errors.New("validation error")
	ErrStorage       = errors.New("storage error")
	ErrGeneration    = errors.New("generation error")
	ErrConfiguration = errors.New("configuration error")
)

// KindError tags an underlying failure with one of the error kinds above.
// errors.Is matches both the kind and the wrapped error.
type KindError struct {
	Kind error
	Op   string
	Err  error
}

func (e *KindError) Error() string {
	if e.Op == "" {
		return e.Err.Error()
	}
	return e.Op + ": " + e.Err.Error()
}

func (e *KindError) Unwrap() []error {
	return []error{e.Kind, e.Err}
}

func StorageError(op string, err error) error {
	return &KindError{Kind: ErrStorage, Op: op, Err: err}
}

func GenerationError(op string, err error) error {
	return &KindError{Kind: ErrGeneration, Op: op, Err: err}
}

func ValidationError(err error) error {
	return &KindError{Kind: ErrValidation, Err: err}
}
