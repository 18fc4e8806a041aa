package identitymap

import "github.com/hashicorp/go-multierror"

// Entry is an object to register under an id.
type Entry struct {
	ID     any
	Object any
}

// AddAll adds every entry it can. The returned error aggregates the entries
// that were rejected and is nil when all of them were added.
func AddAll(m MapsObjectsByIdentity, entries ...Entry) (MapsObjectsByIdentity, error) {
	var result *multierror.Error
	for _, e := range entries {
		added, err := m.Add(e.ID, e.Object)
		if err != nil {
			result = multierror.Append(result, err)
			continue
		}
		m = added
	}
	return m, result.ErrorOrNil()
}

// RemoveAll removes every instance it can, aggregating failures like AddAll.
func RemoveAll(m MapsObjectsByIdentity, objects ...any) (MapsObjectsByIdentity, error) {
	var result *multierror.Error
	for _, object := range objects {
		removed, err := m.RemoveThe(object)
		if err != nil {
			result = multierror.Append(result, err)
			continue
		}
		m = removed
	}
	return m, result.ErrorOrNil()
}
