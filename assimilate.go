/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package borgpod

import (
	"reflect"

	"github.com/suparena/borgpod/registry"
)

// ClassOption configures a class registration.
type ClassOption func(*classConfig)

type classConfig struct {
	name   string
	resist bool
}

// WithName registers the class under an explicit name in the name registry,
// enabling construction through NewByName and processor-generated code.
func WithName(name string) ClassOption {
	return func(cfg *classConfig) {
		cfg.name = name
	}
}

// WithResist marks the class as an ordinary, independent factory. The
// construction interceptor never treats its first argument as a conversion
// source; use it when position 0 carries meaningful application data that
// would otherwise be misidentified as a convertible instance.
func WithResist() ClassOption {
	return func(cfg *classConfig) {
		cfg.resist = true
	}
}

// Assimilate registers T as a participating class. Instances of T can donate
// their state to, and receive state from, other participating classes.
//
// Assimilating the same class twice is idempotent: the first registration
// wins and later calls are no-ops. Structs that embed a participating struct
// participate automatically and need no registration of their own.
func Assimilate[T any, PT DronePtr[T]](opts ...ClassOption) {
	var cfg classConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	var zero T
	t := reflect.TypeOf(zero)
	if _, exists := registry.LookupClass(t); exists {
		return
	}

	name := cfg.name
	if name == "" {
		name = t.Name()
	}
	factory := func() any {
		return PT(new(T))
	}
	registry.RegisterClass(registry.Record{
		Type:   t,
		Name:   name,
		Resist: cfg.resist,
		New:    factory,
	})
	if cfg.name != "" {
		registry.RegisterName(cfg.name, factory)
	}
}

// Resist registers T as a participating, resist-marked class. It is shorthand
// for Assimilate with the WithResist option.
func Resist[T any, PT DronePtr[T]](opts ...ClassOption) {
	Assimilate[T, PT](append(opts, WithResist())...)
}
