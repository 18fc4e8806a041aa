package identitymap

// Equivalent reports whether two maps are interchangeable: they hold the
// same instances under the same classes and ids, and filter the same classes.
// How decorators are stacked is irrelevant, so ignoring Foo then Bar is
// equivalent to ignoring Bar then Foo.
func Equivalent(a, b MapsObjectsByIdentity) bool {
	return sameContents(a, b) && policyOf(a).equal(policyOf(b))
}

func sameContents(a, b MapsObjectsByIdentity) bool {
	objects := a.Objects()
	if len(objects) != len(b.Objects()) {
		return false
	}
	for _, object := range objects {
		id, err := a.IdOf(object)
		if err != nil {
			return false
		}
		other, err := b.Get(ClassOf(object), id)
		if err != nil || other != object {
			return false
		}
	}
	return true
}

type classSet map[Class]struct{}

func (s classSet) equal(other classSet) bool {
	if len(s) != len(other) {
		return false
	}
	for c := range s {
		if _, ok := other[c]; !ok {
			return false
		}
	}
	return true
}

// policy is the effective filtering of a decorator stack.
// A nil allowed set lets every class in.
type policy struct {
	ignored classSet
	allowed classSet
}

func policyOf(m MapsObjectsByIdentity) policy {
	p := policy{ignored: classSet{}}
	for {
		switch d := m.(type) {
		case *Ignore:
			p.ignored[d.ignored] = struct{}{}
		case *Whitelist:
			allowed := classSet{}
			for _, c := range d.allow {
				if _, ok := p.allowed[c]; p.allowed == nil || ok {
					allowed[c] = struct{}{}
				}
			}
			p.allowed = allowed
		}
		d, ok := m.(decorator)
		if !ok {
			return p
		}
		m = d.decorated()
	}
}

func (p policy) equal(other policy) bool {
	if (p.allowed == nil) != (other.allowed == nil) {
		return false
	}
	return p.ignored.equal(other.ignored) && p.allowed.equal(other.allowed)
}
