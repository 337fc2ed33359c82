/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package borgpod

import (
	"reflect"

	"github.com/suparena/borgpod/registry"
)

// Drone is implemented by every participating class. Init is the class
// initializer: it runs against the pod's existing attribute storage on first
// construction and again on every conversion into the class, receiving the
// construction arguments that remain after the conversion source (if any) has
// been consumed.
type Drone interface {
	Init(p *Pod, args ...any) error
}

// DronePtr constrains a pointer to T that implements Drone. Participating
// classes implement Init with a pointer receiver, so the constraint lets the
// generic helpers allocate fresh instances type-safely.
type DronePtr[T any] interface {
	*T
	Drone
}

// Is reports whether the pod's current class is exactly T.
func Is[T any, PT DronePtr[T]](p *Pod) bool {
	if p == nil || p.active == nil {
		return false
	}
	_, ok := p.active.(PT)
	return ok
}

// As returns the pod's active drone as *T if the current class is T.
func As[T any, PT DronePtr[T]](p *Pod) (*T, bool) {
	if p == nil || p.active == nil {
		return nil, false
	}
	d, ok := p.active.(PT)
	if !ok {
		return nil, false
	}
	return (*T)(d), true
}

// Poddable reports whether a value can serve as a conversion source: either a
// *Pod handle bound to a registered class, or a struct value whose type (or an
// embedded ancestor) is registered as participating.
func Poddable(v any) bool {
	if v == nil {
		return false
	}
	if p, ok := v.(*Pod); ok {
		t := p.ActiveType()
		return t != nil && registry.IsPoddable(t)
	}
	return registry.IsPoddable(reflect.TypeOf(v))
}
