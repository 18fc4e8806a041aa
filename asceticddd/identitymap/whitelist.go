package identitymap

import "slices"

// Whitelist wraps an identity map and only lets the allowed classes in.
// Used for whitelisting entities while loading objects.
type Whitelist struct {
	allow []Class
	inner MapsObjectsByIdentity
}

// WhitelistThe produces an empty identity map that only accepts the classes.
func WhitelistThe(classes ...Class) *Whitelist {
	return &Whitelist{allow: slices.Clone(classes), inner: StartEmpty()}
}

// WhitelistFor wraps the map after removing every class that is not allowed.
func WhitelistFor(inner MapsObjectsByIdentity, classes ...Class) *Whitelist {
	w := &Whitelist{allow: slices.Clone(classes)}
	for _, c := range inner.Classes() {
		if !w.allows(c) {
			inner = inner.RemoveAllObjectsOfThe(c)
		}
	}
	w.inner = inner
	return w
}

func (w *Whitelist) Has(class Class, id any) bool {
	return w.inner.Has(class, id)
}

func (w *Whitelist) HasThe(object any) bool {
	return w.inner.HasThe(object)
}

func (w *Whitelist) Get(class Class, id any) (any, error) {
	return w.inner.Get(class, id)
}

func (w *Whitelist) IdOf(object any) (string, error) {
	return w.inner.IdOf(object)
}

func (w *Whitelist) Add(id any, object any) (MapsObjectsByIdentity, error) {
	if !w.allows(ClassOf(object)) {
		return w, nil
	}
	added, err := w.inner.Add(id, object)
	if err != nil {
		return nil, err
	}
	return w.wrap(added), nil
}

func (w *Whitelist) Remove(class Class, id any) (MapsObjectsByIdentity, error) {
	removed, err := w.inner.Remove(class, id)
	if err != nil {
		return nil, err
	}
	return w.wrap(removed), nil
}

func (w *Whitelist) RemoveThe(object any) (MapsObjectsByIdentity, error) {
	removed, err := w.inner.RemoveThe(object)
	if err != nil {
		return nil, err
	}
	return w.wrap(removed), nil
}

func (w *Whitelist) RemoveAllObjectsOfThe(class Class) MapsObjectsByIdentity {
	return w.wrap(w.inner.RemoveAllObjectsOfThe(class))
}

func (w *Whitelist) Classes() []Class {
	return w.inner.Classes()
}

func (w *Whitelist) Objects() []any {
	return w.inner.Objects()
}

func (w *Whitelist) AllowedClasses() []Class {
	return slices.Clone(w.allow)
}

func (w *Whitelist) allows(class Class) bool {
	for _, allowed := range w.allow {
		if allowed.covers(class) {
			return true
		}
	}
	return false
}

func (w *Whitelist) decorated() MapsObjectsByIdentity {
	return w.inner
}

func (w *Whitelist) wrap(inner MapsObjectsByIdentity) *Whitelist {
	if inner == w.inner {
		return w
	}
	return &Whitelist{allow: w.allow, inner: inner}
}
