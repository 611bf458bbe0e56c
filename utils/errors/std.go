package errors

import stderrors "errors"

// As and New mirror the standard library so callers need a single errors import.
func As(err error, target any) bool {
	return stderrors.As(err, target)
}

func New(text string) error {
	return stderrors.New(text)
}
