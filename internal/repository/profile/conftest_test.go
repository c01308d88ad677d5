package profile

import (
	"context"
	"path"
	"sort"

	"github.com/carelinkgh/carematch/internal/db"
)

// fakeStore is an in-memory JSON document store for tests.
type fakeStore struct {
	docs map[string][]byte
	// extraKeys show up in Scan without a backing document, simulating
	// keys deleted between SCAN and JSON.GET.
	extraKeys []string
	scanErr   error
	getErr    error
	setErr    error
}

func newFakeStore() *fakeStore {
	return &fakeStore{docs: make(map[string][]byte)}
}

func (f *fakeStore) JSONSet(_ context.Context, key, _ string, data []byte) error {
	if f.setErr != nil {
		return f.setErr
	}
	f.docs[key] = data
	return nil
}

func (f *fakeStore) JSONGet(_ context.Context, key string, _ ...string) ([]byte, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	data, ok := f.docs[key]
	if !ok {
		return nil, db.ErrKeyNotFound
	}
	return data, nil
}

func (f *fakeStore) Scan(_ context.Context, pattern string) ([]string, error) {
	if f.scanErr != nil {
		return nil, f.scanErr
	}
	var keys []string
	for k := range f.docs {
		if ok, _ := path.Match(pattern, k); ok {
			keys = append(keys, k)
		}
	}
	for _, k := range f.extraKeys {
		if ok, _ := path.Match(pattern, k); ok {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)
	return keys, nil
}
