package identitymap

import (
	"reflect"

	"github.com/pkg/errors"
)

// reference is the runtime identity of a stored object.
// The type is part of the key so that a struct and its first field,
// which share an address, never collide.
type reference struct {
	t    reflect.Type
	addr uintptr
}

// referenceTo fails for anything but a non-nil pointer. Pointers to zero-size
// types are not supported: distinct zero-size allocations may share an address.
func referenceTo(object any) (reference, error) {
	v := reflect.ValueOf(object)
	if !v.IsValid() || v.Kind() != reflect.Pointer || v.IsNil() {
		return reference{}, errors.Wrapf(ErrNotAReference, "got %s", ClassOf(object).Name())
	}
	return reference{t: v.Type(), addr: v.Pointer()}, nil
}

type referenceHasher struct{}

func (referenceHasher) Hash(r reference) uint32 {
	a := uint64(r.addr)
	return uint32(a ^ a>>32)
}

func (referenceHasher) Equal(a, b reference) bool {
	return a == b
}
