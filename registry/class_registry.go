/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package registry

import (
	"reflect"
	"sync"
)

// Record is the participation record attached to a class at registration time.
// It is created once and never mutated afterwards.
type Record struct {
	// Type is the struct type of the participating class.
	Type reflect.Type
	// Name is the registry name of the class (defaults to the type name).
	Name string
	// Resist marks the class as an ordinary, independent factory: the
	// construction interceptor never treats its first argument as a
	// conversion source.
	Resist bool
	// New allocates a fresh, uninitialized drone for the class. The returned
	// value is always a pointer to Type.
	New func() any
}

var (
	classRegistry = make(map[reflect.Type]Record)
	mu            sync.RWMutex
)

// RegisterClass records a class as poddable. Registration is idempotent: if a
// record already exists for the same type, the call is a no-op and the
// original record is kept.
func RegisterClass(rec Record) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := classRegistry[rec.Type]; exists {
		return
	}
	classRegistry[rec.Type] = rec
}

// LookupClass returns the participation record registered directly for the
// given type, if any. Pointer types are dereferenced first.
func LookupClass(t reflect.Type) (Record, bool) {
	mu.RLock()
	defer mu.RUnlock()

	if t != nil && t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	rec, ok := classRegistry[t]
	return rec, ok
}

// ResolveClass returns the participation record for the given type, walking
// anonymous embedded fields when the type itself is not registered. A struct
// embedding a poddable struct participates without re-registration, the same
// way a subclass inherits participation.
func ResolveClass(t reflect.Type) (Record, bool) {
	mu.RLock()
	defer mu.RUnlock()

	return resolveLocked(t, make(map[reflect.Type]bool))
}

// IsPoddable reports whether the given type participates, directly or through
// an embedded ancestor.
func IsPoddable(t reflect.Type) bool {
	_, ok := ResolveClass(t)
	return ok
}

// Reset clears all class and name registrations. Intended for tests.
func Reset() {
	mu.Lock()
	defer mu.Unlock()

	classRegistry = make(map[reflect.Type]Record)
	nameRegistry = make(map[string]Factory)
}

func resolveLocked(t reflect.Type, seen map[reflect.Type]bool) (Record, bool) {
	if t == nil {
		return Record{}, false
	}
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	if t.Kind() != reflect.Struct || seen[t] {
		return Record{}, false
	}
	seen[t] = true

	if rec, ok := classRegistry[t]; ok {
		return rec, true
	}
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if !f.Anonymous {
			continue
		}
		if rec, ok := resolveLocked(f.Type, seen); ok {
			return rec, true
		}
	}
	return Record{}, false
}
