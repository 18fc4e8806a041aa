package identitymap

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound     = errors.New("identitymap: object not found")
	ErrAlreadyThere = errors.New("identitymap: object already there")
	// ErrNotAReference is returned when something other than a non-nil pointer is added.
	ErrNotAReference = errors.New("identitymap: object is not a reference")
)

// NotFoundError reports a lookup that found nothing.
// ByInstance is set when the lookup only had the object reference available.
type NotFoundError struct {
	Class      Class
	ID         string
	ByInstance bool
}

func (e *NotFoundError) Error() string {
	if e.ByInstance {
		return fmt.Sprintf(
			"The object of class `%s` is not in the identity map.",
			e.Class.Name(),
		)
	}
	return fmt.Sprintf(
		"The object with id `%s` of class `%s` is not in the identity map.",
		e.ID, e.Class.Name(),
	)
}

func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// AlreadyThereError reports an attempt to register a (class, id) pair twice.
type AlreadyThereError struct {
	Class Class
	ID    string
}

func (e *AlreadyThereError) Error() string {
	return fmt.Sprintf(
		"The object with id `%s` of class `%s` is already in the identity map.",
		e.ID, e.Class.Name(),
	)
}

func (e *AlreadyThereError) Is(target error) bool {
	return target == ErrAlreadyThere
}
