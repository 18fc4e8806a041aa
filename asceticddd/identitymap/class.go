package identitymap

import (
	"hash/fnv"
	"path"
	"reflect"
)

// Class is the tag that partitions the identity map.
// It wraps the exact dynamic type of the stored object and is comparable,
// so it can be used as a map key.
type Class struct {
	t reflect.Type
}

// ClassOf returns the class tag of the object.
func ClassOf(object any) Class {
	return Class{t: reflect.TypeOf(object)}
}

// TypeOf returns the class tag of T.
// T may be an interface type, in which case the tag covers every implementation.
func TypeOf[T any]() Class {
	return Class{t: reflect.TypeOf((*T)(nil)).Elem()}
}

func (c Class) Type() reflect.Type {
	return c.t
}

func (c Class) IsZero() bool {
	return c.t == nil
}

// Name renders the class as "pkg.Type", without pointer indirections.
func (c Class) Name() string {
	if c.t == nil {
		return "<nil>"
	}
	t := c.t
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t.Name() == "" {
		return c.t.String()
	}
	if p := t.PkgPath(); p != "" {
		return path.Base(p) + "." + t.Name()
	}
	return t.Name()
}

func (c Class) String() string {
	return c.Name()
}

// Covers reports whether the object belongs to the class: its type is the
// class itself or, for an interface class, implements it.
func (c Class) Covers(object any) bool {
	return c.covers(ClassOf(object))
}

func (c Class) covers(other Class) bool {
	if c == other {
		return true
	}
	if c.t == nil || other.t == nil {
		return false
	}
	return c.t.Kind() == reflect.Interface && other.t.Implements(c.t)
}

type classHasher struct{}

func (classHasher) Hash(c Class) uint32 {
	h := fnv.New32a()
	if c.t != nil {
		_, _ = h.Write([]byte(c.t.PkgPath()))
		_, _ = h.Write([]byte(c.t.String()))
	}
	return h.Sum32()
}

func (classHasher) Equal(a, b Class) bool {
	return a == b
}
