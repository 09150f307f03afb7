package rmtree

import "github.com/irods-contrib/ztools/internal/zone"

// fakeZone is an in-memory zone.Client recording every call, so the
// tests can assert that a run issued exactly the remote calls it was
// supposed to.
type fakeZone struct {
	colls map[string][]string // collection path -> sub-collection names
	objs  map[string][]string // collection path -> data object names

	listErrs   map[string]error
	deleteErrs map[string]error

	listed    []string
	deleted   []string // "collection <path>" / "object <path>", successes only
	permanent []bool
}

var _ zone.Client = (*fakeZone)(nil)

func newFakeZone() *fakeZone {
	return &fakeZone{
		colls:      map[string][]string{},
		objs:       map[string][]string{},
		listErrs:   map[string]error{},
		deleteErrs: map[string]error{},
	}
}

// addCollection registers a collection with the given sub-collection
// and data object names.
func (f *fakeZone) addCollection(path string, subs, objects []string) {
	f.colls[path] = subs
	f.objs[path] = objects
}

func (f *fakeZone) CollectionExists(path string) (bool, error) {
	_, ok := f.colls[path]
	return ok, nil
}

func (f *fakeZone) ListChildren(path string) ([]string, []string, error) {
	f.listed = append(f.listed, path)
	if err := f.listErrs[path]; err != nil {
		return nil, nil, err
	}
	return append([]string(nil), f.colls[path]...), append([]string(nil), f.objs[path]...), nil
}

func (f *fakeZone) DeleteCollection(path string, permanent bool) error {
	if err := f.deleteErrs[path]; err != nil {
		return err
	}
	f.deleted = append(f.deleted, "collection "+path)
	f.permanent = append(f.permanent, permanent)
	return nil
}

func (f *fakeZone) DeleteDataObject(path string, permanent bool) error {
	if err := f.deleteErrs[path]; err != nil {
		return err
	}
	f.deleted = append(f.deleted, "object "+path)
	f.permanent = append(f.permanent, permanent)
	return nil
}

func (f *fakeZone) FindDataObjectsByName(root, pattern string) ([]string, error) {
	return nil, nil
}

func (f *fakeZone) GroupExists(name string) (bool, error) { return false, nil }

func (f *fakeZone) GroupAttribute(group, attribute string) (string, error) { return "", nil }
