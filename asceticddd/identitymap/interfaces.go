package identitymap

// MapsObjectsByIdentity holds the objects that have already been loaded,
// by class and id, so that an entity is never materialized twice.
//
// Implementations are immutable: every operation that changes membership
// returns a new value and leaves the receiver untouched.
// Identifiers are canonicalized with CanonicalID.
type MapsObjectsByIdentity interface {
	// Has reports whether an object of the class with the id is in the map.
	Has(class Class, id any) bool

	// HasThe reports whether this very instance is in the map.
	HasThe(object any) bool

	// Get returns the object stored for the class and id.
	// Fails with ErrNotFound when there is none.
	Get(class Class, id any) (any, error)

	// IdOf returns the id the instance was registered with.
	// Lookup is by reference: an equal but distinct object is not found.
	IdOf(object any) (string, error)

	// Add returns a copy of the map that includes the object.
	// Fails with ErrAlreadyThere when the class already has an object with the id.
	Add(id any, object any) (MapsObjectsByIdentity, error)

	// Remove returns a copy of the map without the object of the class with the id.
	Remove(class Class, id any) (MapsObjectsByIdentity, error)

	// RemoveThe returns a copy of the map without the instance.
	RemoveThe(object any) (MapsObjectsByIdentity, error)

	// RemoveAllObjectsOfThe returns a copy of the map without any object of the class.
	// The receiver itself is returned when the class has no objects.
	RemoveAllObjectsOfThe(class Class) MapsObjectsByIdentity

	// Classes lists the classes that have objects, in order of first registration.
	Classes() []Class

	// Objects lists all objects, grouped by class in the order of Classes,
	// then in insertion order.
	Objects() []any
}

// decorator is implemented by the wrappers that filter an inner map.
type decorator interface {
	MapsObjectsByIdentity
	decorated() MapsObjectsByIdentity
}

var (
	_ MapsObjectsByIdentity = (*IdentityMap)(nil)
	_ decorator             = (*Ignore)(nil)
	_ decorator             = (*Whitelist)(nil)
)
