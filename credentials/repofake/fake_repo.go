package repofake

import (
	"sync"

	"github.com/jagath-ds/XCalibr-AI-Hiring-System/credentials"
)

var _ credentials.Repo = (*FakeRepo)(nil)

// FakeRepo is an in-memory credentials.Repo
type FakeRepo struct {
	values map[string]string
	lock   sync.RWMutex

	// Fail, when set, is returned from every operation
	Fail error
}

func NewFakeRepo() *FakeRepo {
	return &FakeRepo{
		values: make(map[string]string),
	}
}

func (r *FakeRepo) Get(key string) (string, error) {
	r.lock.RLock()
	defer r.lock.RUnlock()

	if r.Fail != nil {
		return "", r.Fail
	}
	value, ok := r.values[key]
	if !ok {
		return "", credentials.ErrNotFound
	}
	return value, nil
}

func (r *FakeRepo) Set(key, value string) error {
	r.lock.Lock()
	defer r.lock.Unlock()

	if r.Fail != nil {
		return r.Fail
	}
	r.values[key] = value
	return nil
}

func (r *FakeRepo) Delete(key string) error {
	r.lock.Lock()
	defer r.lock.Unlock()

	if r.Fail != nil {
		return r.Fail
	}
	delete(r.values, key)
	return nil
}

func (r *FakeRepo) Clear() error {
	r.lock.Lock()
	defer r.lock.Unlock()

	if r.Fail != nil {
		return r.Fail
	}
	r.values = make(map[string]string)
	return nil
}

// Keys returns a snapshot of the stored keys, for assertions in tests
func (r *FakeRepo) Keys() []string {
	r.lock.RLock()
	defer r.lock.RUnlock()

	keys := make([]string, 0, len(r.values))
	for k := range r.values {
		keys = append(keys, k)
	}
	return keys
}
