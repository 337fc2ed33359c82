/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package borgpod

import (
	"fmt"
	"reflect"
	"sort"
	"unsafe"

	"github.com/google/uuid"
)

// Pod is the shared mutable state container underlying one logical entity as
// it moves across class identities. Holders keep the *Pod handle; conversions
// relabel the pod in place, so every holder observes the new class through the
// same reference.
//
// The identity key is assigned at creation and never changes across
// relabeling. Attribute storage and the class label are not synchronized;
// concurrent conversion of the same pod is a documented race that callers must
// serialize themselves.
type Pod struct {
	id     uuid.UUID
	attrs  map[string]any
	active Drone
}

func newPod() *Pod {
	return &Pod{
		id:    uuid.New(),
		attrs: make(map[string]any),
	}
}

// ID returns the pod's identity key, stable across conversions.
func (p *Pod) ID() uuid.UUID {
	return p.id
}

// Drone returns the active class instance currently bound to the pod.
// Callers type-assert the result to their own behavior interfaces.
func (p *Pod) Drone() Drone {
	return p.active
}

// ActiveType returns the struct type of the pod's current class, or nil if no
// class is bound yet.
func (p *Pod) ActiveType() reflect.Type {
	if p == nil || p.active == nil {
		return nil
	}
	t := reflect.TypeOf(p.active)
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	return t
}

// Set stores an attribute value under the given name.
func (p *Pod) Set(name string, value any) {
	if p.attrs == nil {
		p.attrs = make(map[string]any)
	}
	p.attrs[name] = value
}

// Get returns the attribute value for the given name, or nil if absent.
// Attributes set by a previous class remain present after conversion unless
// overwritten by the new class's initializer.
func (p *Pod) Get(name string) any {
	return p.attrs[name]
}

// Lookup returns the attribute value for the given name and whether it exists.
func (p *Pod) Lookup(name string) (any, bool) {
	v, ok := p.attrs[name]
	return v, ok
}

// Delete removes an attribute from the pod's storage.
func (p *Pod) Delete(name string) {
	delete(p.attrs, name)
}

// Keys returns the names of all stored attributes in sorted order.
func (p *Pod) Keys() []string {
	keys := make([]string, 0, len(p.attrs))
	for k := range p.attrs {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// String describes the pod with its current class and identity key.
func (p *Pod) String() string {
	if t := p.ActiveType(); t != nil {
		return fmt.Sprintf("<%s pod %s>", t.Name(), p.id)
	}
	return fmt.Sprintf("<unbound pod %s>", p.id)
}

// seedAttrs copies the exported fields of a struct value into the attribute
// map, flattening anonymous embedded structs. Named fields are written after
// embedded ones at every level, so an outer field wins a name collision
// regardless of declaration order, matching Go's shadowing of promoted fields.
func seedAttrs(attrs map[string]any, v reflect.Value) {
	v = reflect.Indirect(v)
	if v.Kind() != reflect.Struct {
		return
	}
	// Work on an addressable copy so fields promoted through unexported
	// embedded structs can still be read out below.
	cp := reflect.New(v.Type()).Elem()
	cp.Set(v)
	seedStruct(attrs, cp)
}

func seedStruct(attrs map[string]any, v reflect.Value) {
	t := v.Type()
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if !f.Anonymous {
			continue
		}
		fv := reflect.Indirect(readable(v.Field(i)))
		if fv.Kind() == reflect.Struct {
			seedStruct(attrs, fv)
		}
	}
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if f.Anonymous || !f.IsExported() {
			continue
		}
		attrs[f.Name] = readable(v.Field(i)).Interface()
	}
}

// readable strips the read-only flag reflect attaches to values reached
// through unexported embedded fields, so their promoted exported fields can
// still be interfaced.
func readable(v reflect.Value) reflect.Value {
	if v.CanInterface() || !v.CanAddr() {
		return v
	}
	return reflect.NewAt(v.Type(), unsafe.Pointer(v.UnsafeAddr())).Elem()
}
