package registry

import "fmt"

// Factory defines a function that allocates a fresh drone value for a class.
type Factory func() any

// nameRegistry holds the mapping from a class name (like "circle") to its factory.
var nameRegistry = make(map[string]Factory)

// RegisterName registers a factory for a given class name.
// If a class is already registered under the name, it panics to prevent accidental overrides.
func RegisterName(name string, fn Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := nameRegistry[name]; exists {
		panic(fmt.Sprintf("class registry: class with name %q already registered", name))
	}
	nameRegistry[name] = fn
}

// GetFactory returns the registered factory for the given class name.
// If no factory is registered, it returns an error.
func GetFactory(name string) (Factory, error) {
	mu.RLock()
	defer mu.RUnlock()

	fn, ok := nameRegistry[name]
	if !ok {
		return nil, fmt.Errorf("class registry: no class registered under name %q", name)
	}
	return fn, nil
}
