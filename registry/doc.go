/*
Package registry manages class participation records for BorgPod.

The registry system enables:
  - Marking struct types as poddable (eligible for identity-preserving conversion)
  - Participation inheritance through anonymous embedded fields
  - Resolving classes by registry name for generated code and dynamic construction

Class Registry:
Maps struct types to their participation records:

	registry.RegisterClass(registry.Record{
	    Type: reflect.TypeOf(Circle{}),
	    Name: "circle",
	    New:  func() any { return &Circle{} },
	})

Registration is idempotent. A struct type that embeds a registered type
participates automatically; ResolveClass walks anonymous fields to find the
nearest registered ancestor.

Name Registry:
Maps class names to factory functions:

	registry.RegisterName("circle", func() any {
	    return &Circle{}
	})

Most callers never use this package directly; the borgpod.Assimilate and
borgpod.Resist helpers populate both registries with type-safe factories.
The registry is thread-safe and should be populated during initialization,
typically in init() functions or through generated code.
*/
package registry
