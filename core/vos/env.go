package vos

import (
	"fmt"
	"sort"
	"strings"
	"sync"
)

// NewMapEnv creates a new environment backed by a map.
func NewMapEnv() *MapEnv {
	return &MapEnv{}
}

// NewMapEnvFromEnvList creates a new environment from "key=value" pairs.
// Entries without an equals sign are set to the empty string.
func NewMapEnvFromEnvList(environ []string) *MapEnv {
	out := &MapEnv{}

	for _, e := range environ {
		key, value, _ := strings.Cut(e, "=")
		out.Setenv(key, value)
	}

	return out
}

// MapEnv implements an in-memory environment.
type MapEnv struct {
	rw  sync.RWMutex
	env map[string]string
}

// Unsetenv unsets a single environment variable.
func (m *MapEnv) Unsetenv(key string) {
	m.rw.Lock()
	defer m.rw.Unlock()
	if m.env != nil {
		delete(m.env, key)
	}
}

// Setenv sets the value of the environment variable named by the key.
func (m *MapEnv) Setenv(key, value string) {
	m.rw.Lock()
	defer m.rw.Unlock()

	if m.env == nil {
		m.env = make(map[string]string)
	}
	m.env[key] = value
}

// LookupEnv retrieves the value of the environment variable named by the key.
func (m *MapEnv) LookupEnv(key string) (string, bool) {
	m.rw.RLock()
	defer m.rw.RUnlock()

	val, ok := m.env[key]
	return val, ok
}

// Getenv retrieves the value of the environment variable named by the key.
// To distinguish between an empty value and an unset value, use LookupEnv.
func (m *MapEnv) Getenv(key string) string {
	val, _ := m.LookupEnv(key)
	return val
}

// Environ returns the environment in "key=value" form, sorted by key.
func (m *MapEnv) Environ() []string {
	m.rw.RLock()
	defer m.rw.RUnlock()

	var env []string
	for k, v := range m.env {
		env = append(env, fmt.Sprintf("%s=%s", k, v))
	}
	sort.Strings(env)

	return env
}
