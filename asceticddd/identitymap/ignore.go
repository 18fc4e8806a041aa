package identitymap

// Ignore wraps an identity map and silently skips a class, for instance a
// value object that has no identity of its own.
type Ignore struct {
	ignored Class
	inner   MapsObjectsByIdentity
}

// IgnoreThe wraps the map with a decorator that ignores the class.
// Objects of the class that are already in the map are removed.
func IgnoreThe(class Class, inner MapsObjectsByIdentity) *Ignore {
	for _, c := range inner.Classes() {
		if class.covers(c) {
			inner = inner.RemoveAllObjectsOfThe(c)
		}
	}
	return &Ignore{ignored: class, inner: inner}
}

// IgnoreThese produces an empty identity map that ignores all the classes.
func IgnoreThese(classes ...Class) MapsObjectsByIdentity {
	return IgnoreTheseIn(StartEmpty(), classes...)
}

// IgnoreTheseIn wraps the map once per class, the first class innermost.
func IgnoreTheseIn(inner MapsObjectsByIdentity, classes ...Class) MapsObjectsByIdentity {
	for _, class := range classes {
		inner = IgnoreThe(class, inner)
	}
	return inner
}

func (ig *Ignore) Has(class Class, id any) bool {
	return ig.inner.Has(class, id)
}

func (ig *Ignore) HasThe(object any) bool {
	return ig.inner.HasThe(object)
}

func (ig *Ignore) Get(class Class, id any) (any, error) {
	return ig.inner.Get(class, id)
}

func (ig *Ignore) IdOf(object any) (string, error) {
	return ig.inner.IdOf(object)
}

func (ig *Ignore) Add(id any, object any) (MapsObjectsByIdentity, error) {
	if ig.ignored.Covers(object) {
		return ig, nil
	}
	added, err := ig.inner.Add(id, object)
	if err != nil {
		return nil, err
	}
	return ig.wrap(added), nil
}

func (ig *Ignore) Remove(class Class, id any) (MapsObjectsByIdentity, error) {
	if ig.ignored.covers(class) {
		return ig, nil
	}
	removed, err := ig.inner.Remove(class, id)
	if err != nil {
		return nil, err
	}
	return ig.wrap(removed), nil
}

// RemoveThe is not filtered: an ignored instance was never stored,
// so removing one fails with ErrNotFound.
func (ig *Ignore) RemoveThe(object any) (MapsObjectsByIdentity, error) {
	removed, err := ig.inner.RemoveThe(object)
	if err != nil {
		return nil, err
	}
	return ig.wrap(removed), nil
}

func (ig *Ignore) RemoveAllObjectsOfThe(class Class) MapsObjectsByIdentity {
	if ig.ignored.covers(class) {
		return ig
	}
	return ig.wrap(ig.inner.RemoveAllObjectsOfThe(class))
}

func (ig *Ignore) Classes() []Class {
	return ig.inner.Classes()
}

func (ig *Ignore) Objects() []any {
	return ig.inner.Objects()
}

// IgnoredClasses lists the classes ignored by this decorator and the
// decorators it wraps, outermost first.
func (ig *Ignore) IgnoredClasses() []Class {
	classes := []Class{ig.ignored}
	for m := ig.inner; ; {
		d, ok := m.(decorator)
		if !ok {
			return classes
		}
		if inner, ok := d.(*Ignore); ok {
			classes = append(classes, inner.ignored)
		}
		m = d.decorated()
	}
}

func (ig *Ignore) decorated() MapsObjectsByIdentity {
	return ig.inner
}

func (ig *Ignore) wrap(inner MapsObjectsByIdentity) *Ignore {
	if inner == ig.inner {
		return ig
	}
	return &Ignore{ignored: ig.ignored, inner: inner}
}
