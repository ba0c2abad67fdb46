package errs

import (
	"fmt"

	"github.com/pkg/errors"
)

// IExtend is implemented by errors that can prepend context to their message
// without losing their concrete type.
type IExtend interface {
	Extend(message string) error
}

// Extend adds message as a prefix to err. Typed decode errors keep their type,
// any other error is wrapped.
func Extend(err error, message string) error {
	if err == nil {
		return nil
	}
	if ex, ok := err.(IExtend); ok {
		return ex.Extend(message)
	}
	return errors.Wrap(err, message)
}

func fmtExtend(self error, message string) string {
	return fmt.Sprintf("%s: %s", message, self)
}
