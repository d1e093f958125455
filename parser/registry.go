package parser

import (
	"fmt"
	"sort"
	"sync"
	"time"
)

var (
	registryMu sync.RWMutex
	registry   = make(map[string]Recognizer)
)

// Register makes a recognizer available to Parse under its name.
// Recognizer packages call Register from init, so importing a package
// selects the recognizers compiled into the binary. Register panics when
// the name is empty or already taken.
func Register(rec Recognizer) {
	registryMu.Lock()
	defer registryMu.Unlock()
	if rec.name == "" {
		panic("parser: Register with empty recognizer name")
	}
	if _, dup := registry[rec.name]; dup {
		panic("parser: Register called twice for recognizer " + rec.name)
	}
	registry[rec.name] = rec
}

// Lookup returns the registered recognizer with the given name.
func Lookup(name string) (Recognizer, bool) {
	registryMu.RLock()
	defer registryMu.RUnlock()
	rec, ok := registry[name]
	return rec, ok
}

// Names returns the sorted names of all registered recognizers.
func Names() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Parse matches a prefix of input using the registered recognizer or
// bundle with the given name, resolving against the reference date ref.
func Parse(name, input string, ref time.Time) (Match, error) {
	rec, ok := Lookup(name)
	if !ok {
		return Match{}, fmt.Errorf("parser: unknown recognizer %q", name)
	}
	return rec.Parse(input, ref)
}
