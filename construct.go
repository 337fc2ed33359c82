/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package borgpod

import (
	"reflect"

	"github.com/suparena/borgpod/errors"
	"github.com/suparena/borgpod/registry"
)

// New constructs an instance of the participating class T inside the given
// Collective. Position 0 of args is reserved for an optional conversion
// source; all construction of poddable classes routes through here.
//
//  1. If T is resist-marked, conversion is skipped entirely and all arguments
//     go to T's initializer.
//  2. Otherwise the first argument, if any, is examined. It is convertible if
//     it is a non-nil *Pod bound to a participating class, or a struct value
//     whose type (or embedded ancestor) is participating.
//  3. A convertible source is relabeled to T in place: the same *Pod handle is
//     returned and every holder of it now observes T's behavior. A source
//     unknown to this Collective (a foreign pod, or a raw value that was never
//     pooled) is pooled first, seeded from its existing attribute storage.
//  4. A non-convertible first argument is treated as ordinary data and a fresh
//     pod is allocated.
//
// Converting a pod to the class it already has is a safe no-op: the same
// handle is returned and the initializer is not re-run.
func New[T any, PT DronePtr[T]](c *Collective, args ...any) (*Pod, error) {
	rec, err := ensureClass[T, PT]()
	if err != nil {
		return nil, err
	}
	return newWithRecord(c, rec, args)
}

// NewFrom converts the given pod to class T without positional source
// scanning. It is the explicit-source construction path: the source is named
// directly, so it works even when T is resist-marked.
func NewFrom[T any, PT DronePtr[T]](c *Collective, src *Pod, args ...any) (*Pod, error) {
	rec, err := ensureClass[T, PT]()
	if err != nil {
		return nil, err
	}
	if src == nil {
		return nil, errors.NewValidationError("src", "conversion source must not be nil")
	}
	return convertPod(c, rec, src, args)
}

// NewByName constructs an instance of the class registered under the given
// name, applying the same interception rules as New. Names are registered via
// the WithName option, typically from processor-generated code.
func NewByName(c *Collective, name string, args ...any) (*Pod, error) {
	factory, err := registry.GetFactory(name)
	if err != nil {
		return nil, errors.NewNotFoundError("class", name)
	}
	t := reflect.TypeOf(factory())
	rec, ok := registry.LookupClass(t)
	if !ok {
		return nil, errors.NewNotPoddableError(t.String())
	}
	return newWithRecord(c, rec, args)
}

// ensureClass resolves the participation record for T. A class that embeds a
// participating struct but was never registered itself is registered
// implicitly, inheriting the ancestor's resist flag.
func ensureClass[T any, PT DronePtr[T]]() (registry.Record, error) {
	var zero T
	t := reflect.TypeOf(zero)
	if rec, ok := registry.LookupClass(t); ok {
		return rec, nil
	}
	if ancestor, ok := registry.ResolveClass(t); ok {
		rec := registry.Record{
			Type:   t,
			Name:   t.Name(),
			Resist: ancestor.Resist,
			New:    func() any { return PT(new(T)) },
		}
		registry.RegisterClass(rec)
		return rec, nil
	}
	return registry.Record{}, errors.NewNotPoddableError(t.String())
}

// newWithRecord is the construction interceptor shared by New and NewByName.
func newWithRecord(c *Collective, rec registry.Record, args []any) (*Pod, error) {
	if rec.Resist || len(args) == 0 {
		return construct(c, rec, args)
	}

	switch src := args[0].(type) {
	case nil:
		return construct(c, rec, args)
	case *Pod:
		if src == nil {
			return construct(c, rec, args)
		}
		return convertPod(c, rec, src, args[1:])
	default:
		t := reflect.TypeOf(args[0])
		if t.Kind() == reflect.Ptr {
			t = t.Elem()
		}
		if t.Kind() == reflect.Struct && registry.IsPoddable(t) {
			return convertRaw(c, rec, args[0], args[1:])
		}
		return construct(c, rec, args)
	}
}

// construct performs ordinary construction: a fresh pod is allocated,
// registered, and initialized with all arguments.
func construct(c *Collective, rec registry.Record, args []any) (*Pod, error) {
	p := newPod()
	c.adopt(p)
	return relabel(p, rec, args)
}

// convertPod relabels an existing pod to the target class. A pod unknown to
// this Collective is adopted first (its identity key is preserved), covering
// sources pooled elsewhere or never pooled here.
func convertPod(c *Collective, rec registry.Record, src *Pod, args []any) (*Pod, error) {
	at := src.ActiveType()
	if at == nil {
		return nil, errors.NewRegistryInconsistencyError("<unbound>", "pod has no class label")
	}
	if !registry.IsPoddable(at) {
		return nil, errors.NewRegistryInconsistencyError(at.String(), "pod's class label is not registered")
	}

	pod, ok := c.GetPod(src.ID())
	if !ok {
		c.adopt(src)
		pod = src
	}
	if at == rec.Type {
		// Redundant self-conversion: same handle back, initializer untouched.
		return pod, nil
	}
	return relabel(pod, rec, args)
}

// convertRaw pools a participating value that was never constructed through a
// Collective: a fresh pod is seeded from the value's exported fields, then
// relabeled to the target class.
func convertRaw(c *Collective, rec registry.Record, src any, args []any) (*Pod, error) {
	p := newPod()
	seedAttrs(p.attrs, reflect.ValueOf(src))
	c.adopt(p)
	return relabel(p, rec, args)
}

// relabel runs the target class's initializer against the pod's existing
// storage and, only on success, switches the class label. A failing
// initializer leaves the previous label in place, so a conversion either fully
// succeeds or reports an error with no half-converted state.
func relabel(p *Pod, rec registry.Record, args []any) (*Pod, error) {
	drone, ok := rec.New().(Drone)
	if !ok {
		return nil, errors.NewRegistryInconsistencyError(rec.Type.String(), "registered factory does not produce a Drone")
	}
	if err := drone.Init(p, args...); err != nil {
		return nil, errors.NewInitError(rec.Name, err)
	}
	p.active = drone
	return p, nil
}
