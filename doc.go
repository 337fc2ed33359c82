/*
Package borgpod lets independently defined classes share a common, mutable
identity pod: constructing a participating class from an existing instance of
another participating class does not allocate a new object: it relabels the
same underlying state container with the new class's behavior and returns the
same handle. Long-lived objects can swap personality without re-allocation,
without re-wiring references held by third parties, and without a hand-written
state machine.

The library follows a register → construct → convert workflow:
  - Register: mark struct types as participating with Assimilate (or Resist)
  - Construct: build entities through the New factory against a Collective
  - Convert: pass an existing *Pod as the first argument to New for another class

Key Features:
  - Identity preservation: conversion returns the same *Pod every holder already has
  - Attribute continuity: pod storage persists across conversions unless the
    new class's initializer overwrites it
  - Participation inheritance through anonymous embedded structs
  - Resist marking for classes whose first argument is ordinary data
  - Weak pod registry: the Collective never keeps an entity alive
  - Manifest-driven registration codegen (processor + cmd/podgen)

Basic Usage:

	borgpod.Assimilate[Circle]()
	borgpod.Assimilate[Square]()

	hive := borgpod.NewCollective()

	// Ordinary construction
	c, _ := borgpod.New[Circle](hive)

	// Conversion: same handle, new behavior
	s, _ := borgpod.New[Square](hive, c)
	// s == c, and c.Drone() now executes Square's methods

Pod attribute storage and the class label carry no internal locking; two
concurrent conversions of the same entity are a race the caller must
serialize. The Collective's own bookkeeping is thread-safe.

For more information, see the documentation at https://github.com/suparena/borgpod
*/
package borgpod
