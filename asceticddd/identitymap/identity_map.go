package identitymap

import (
	"slices"
	"strconv"
	"sync"

	"github.com/benbjohnson/immutable"
	"github.com/pkg/errors"
)

type entry struct {
	object any
	seq    uint64
}

type seqComparer struct{}

func (seqComparer) Compare(a, b uint64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// bucket holds the objects of one class. order keeps them in insertion order.
type bucket struct {
	seq   uint64
	byID  *immutable.Map[string, entry]
	order *immutable.SortedMap[uint64, string]
}

func newBucket(seq uint64) *bucket {
	return &bucket{
		seq:   seq,
		byID:  immutable.NewMap[string, entry](immutable.NewHasher("")),
		order: immutable.NewSortedMap[uint64, string](seqComparer{}),
	}
}

func (b *bucket) with(id string, e entry) *bucket {
	return &bucket{
		seq:   b.seq,
		byID:  b.byID.Set(id, e),
		order: b.order.Set(e.seq, id),
	}
}

func (b *bucket) without(id string) *bucket {
	e, _ := b.byID.Get(id)
	return &bucket{
		seq:   b.seq,
		byID:  b.byID.Delete(id),
		order: b.order.Delete(e.seq),
	}
}

func (b *bucket) each(fn func(id string, e entry)) {
	itr := b.order.Iterator()
	for !itr.Done() {
		_, id, _ := itr.Next()
		e, _ := b.byID.Get(id)
		fn(id, e)
	}
}

// IdentityMap contains objects by class and id, and ids by object.
// Both indices are persistent, so derived maps share structure with the
// map they were derived from without ever mutating it.
type IdentityMap struct {
	objectWith  *immutable.Map[Class, *bucket]
	classOrder  *immutable.SortedMap[uint64, Class]
	entityIdFor *immutable.Map[reference, string]
	seq         uint64

	listOnce sync.Once
	objects  []any
}

// StartEmpty produces an empty identity map.
func StartEmpty() *IdentityMap {
	return &IdentityMap{
		objectWith:  immutable.NewMap[Class, *bucket](classHasher{}),
		classOrder:  immutable.NewSortedMap[uint64, Class](seqComparer{}),
		entityIdFor: immutable.NewMap[reference, string](referenceHasher{}),
	}
}

// With produces an identity map that contains the objects, given as id => object.
// Objects are registered in order of their ids.
func With(objects map[string]any) (*IdentityMap, error) {
	m := StartEmpty()
	ids := make([]string, 0, len(objects))
	for id := range objects {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	for _, id := range ids {
		var err error
		if m, err = m.add(id, objects[id]); err != nil {
			return nil, err
		}
	}
	return m, nil
}

// WithObjects produces an identity map that contains the objects,
// identified by their position.
func WithObjects(objects ...any) (*IdentityMap, error) {
	m := StartEmpty()
	for i, object := range objects {
		var err error
		if m, err = m.add(strconv.Itoa(i), object); err != nil {
			return nil, err
		}
	}
	return m, nil
}

func (m *IdentityMap) Has(class Class, id any) bool {
	_, ok := m.lookup(class, CanonicalID(id))
	return ok
}

func (m *IdentityMap) HasThe(object any) bool {
	ref, err := referenceTo(object)
	if err != nil {
		return false
	}
	_, ok := m.entityIdFor.Get(ref)
	return ok
}

func (m *IdentityMap) Get(class Class, id any) (any, error) {
	key := CanonicalID(id)
	e, ok := m.lookup(class, key)
	if !ok {
		return nil, errors.WithStack(&NotFoundError{Class: class, ID: key})
	}
	return e.object, nil
}

func (m *IdentityMap) IdOf(object any) (string, error) {
	ref, err := referenceTo(object)
	if err != nil {
		return "", errors.WithStack(&NotFoundError{Class: ClassOf(object), ByInstance: true})
	}
	id, ok := m.entityIdFor.Get(ref)
	if !ok {
		return "", errors.WithStack(&NotFoundError{Class: ClassOf(object), ByInstance: true})
	}
	return id, nil
}

func (m *IdentityMap) Add(id any, object any) (MapsObjectsByIdentity, error) {
	added, err := m.add(CanonicalID(id), object)
	if err != nil {
		return nil, err
	}
	return added, nil
}

func (m *IdentityMap) Remove(class Class, id any) (MapsObjectsByIdentity, error) {
	key := CanonicalID(id)
	if _, ok := m.lookup(class, key); !ok {
		return nil, errors.WithStack(&NotFoundError{Class: class, ID: key})
	}
	return m.remove(class, key), nil
}

func (m *IdentityMap) RemoveThe(object any) (MapsObjectsByIdentity, error) {
	id, err := m.IdOf(object)
	if err != nil {
		return nil, err
	}
	return m.remove(ClassOf(object), id), nil
}

func (m *IdentityMap) RemoveAllObjectsOfThe(class Class) MapsObjectsByIdentity {
	b, ok := m.objectWith.Get(class)
	if !ok {
		return m
	}
	entityIdFor := m.entityIdFor
	b.each(func(_ string, e entry) {
		ref, _ := referenceTo(e.object)
		entityIdFor = entityIdFor.Delete(ref)
	})
	return &IdentityMap{
		objectWith:  m.objectWith.Delete(class),
		classOrder:  m.classOrder.Delete(b.seq),
		entityIdFor: entityIdFor,
		seq:         m.seq,
	}
}

func (m *IdentityMap) Classes() []Class {
	classes := make([]Class, 0, m.classOrder.Len())
	itr := m.classOrder.Iterator()
	for !itr.Done() {
		_, class, _ := itr.Next()
		classes = append(classes, class)
	}
	return classes
}

func (m *IdentityMap) Objects() []any {
	m.listOnce.Do(func() {
		objects := make([]any, 0, m.entityIdFor.Len())
		for _, class := range m.Classes() {
			b, _ := m.objectWith.Get(class)
			b.each(func(_ string, e entry) {
				objects = append(objects, e.object)
			})
		}
		m.objects = objects
	})
	return slices.Clone(m.objects)
}

// Len returns the number of objects in the map.
func (m *IdentityMap) Len() int {
	return m.entityIdFor.Len()
}

func (m *IdentityMap) lookup(class Class, id string) (entry, bool) {
	b, ok := m.objectWith.Get(class)
	if !ok {
		return entry{}, false
	}
	return b.byID.Get(id)
}

func (m *IdentityMap) add(id string, object any) (*IdentityMap, error) {
	ref, err := referenceTo(object)
	if err != nil {
		return nil, err
	}
	class := ClassOf(object)
	if _, ok := m.lookup(class, id); ok {
		return nil, errors.WithStack(&AlreadyThereError{Class: class, ID: id})
	}
	// The reverse index holds a single id per instance.
	if existing, ok := m.entityIdFor.Get(ref); ok {
		return nil, errors.WithStack(&AlreadyThereError{Class: class, ID: existing})
	}

	seq := m.seq + 1
	classOrder := m.classOrder
	b, ok := m.objectWith.Get(class)
	if !ok {
		b = newBucket(seq)
		classOrder = classOrder.Set(seq, class)
	}
	return &IdentityMap{
		objectWith:  m.objectWith.Set(class, b.with(id, entry{object: object, seq: seq})),
		classOrder:  classOrder,
		entityIdFor: m.entityIdFor.Set(ref, id),
		seq:         seq,
	}, nil
}

// remove expects the entry to be present.
func (m *IdentityMap) remove(class Class, id string) *IdentityMap {
	b, _ := m.objectWith.Get(class)
	e, _ := b.byID.Get(id)
	ref, _ := referenceTo(e.object)

	objectWith := m.objectWith
	classOrder := m.classOrder
	if rest := b.without(id); rest.byID.Len() > 0 {
		objectWith = objectWith.Set(class, rest)
	} else {
		objectWith = objectWith.Delete(class)
		classOrder = classOrder.Delete(b.seq)
	}
	return &IdentityMap{
		objectWith:  objectWith,
		classOrder:  classOrder,
		entityIdFor: m.entityIdFor.Delete(ref),
		seq:         m.seq,
	}
}

// GetAs returns the object of type T stored with the id.
func GetAs[T any](m MapsObjectsByIdentity, id any) (T, error) {
	var zero T
	object, err := m.Get(TypeOf[T](), id)
	if err != nil {
		return zero, err
	}
	typed, ok := object.(T)
	if !ok {
		return zero, errors.Errorf("identitymap: object of class `%s` is not a %T", ClassOf(object).Name(), zero)
	}
	return typed, nil
}
