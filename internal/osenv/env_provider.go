// Package osenv provides the narrow capability through which ambient process
// state is read.
package osenv

import (
	"os"
)

// Provider provides environment variable and working directory access.
type Provider interface {
	// Lookup returns the value of the environment variable named by the key
	// and whether it was set. An empty value is distinct from an unset one.
	Lookup(key string) (string, bool)
	// Getwd returns the current working directory.
	Getwd() (string, error)
}

// OSProvider reads from the actual process environment.
type OSProvider struct{}

// NewProvider creates a new OSProvider.
func NewProvider() *OSProvider {
	return &OSProvider{}
}

// Lookup returns the value of the environment variable named by the key.
func (p *OSProvider) Lookup(key string) (string, bool) {
	return os.LookupEnv(key)
}

// Getwd returns the current working directory.
func (p *OSProvider) Getwd() (string, error) {
	return os.Getwd()
}
