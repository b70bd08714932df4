package osenv

import "errors"

// ErrNoWorkingDir is returned by MapProvider.Getwd when no directory is set.
var ErrNoWorkingDir = errors.New("working directory unavailable")

// MapProvider is an in-memory Provider, used wherever the real environment
// must not leak in (tests, scripted runs).
type MapProvider struct {
	Values map[string]string
	Dir    string
	DirErr error
}

// Lookup returns the configured value for key.
func (m *MapProvider) Lookup(key string) (string, bool) {
	if m.Values == nil {
		return "", false
	}
	v, ok := m.Values[key]
	return v, ok
}

// Getwd returns Dir, DirErr if set, or ErrNoWorkingDir when Dir is empty.
func (m *MapProvider) Getwd() (string, error) {
	if m.DirErr != nil {
		return "", m.DirErr
	}
	if m.Dir == "" {
		return "", ErrNoWorkingDir
	}
	return m.Dir, nil
}
