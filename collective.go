/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package borgpod

import (
	"runtime"
	"sync"
	"weak"

	"github.com/google/uuid"
)

// Collective is the pod registry: it maps identity keys to live pods so that
// conversions can locate the shared state of a logical entity. A Collective is
// an explicit value passed to every construction call rather than a hidden
// process-wide singleton, which keeps tests isolated from each other.
//
// The Collective holds only weak pointers. It is never the reason a pod stays
// alive; entries are removed after their pod is garbage collected. The strong
// reference is the *Pod handle returned from construction.
type Collective struct {
	mu   sync.RWMutex
	pods map[uuid.UUID]weak.Pointer[Pod]
}

// NewCollective creates an empty pod registry.
func NewCollective() *Collective {
	return &Collective{
		pods: make(map[uuid.UUID]weak.Pointer[Pod]),
	}
}

// GetPod returns the live pod registered under the given identity key. A key
// that was never registered, or whose pod has been collected, yields
// (nil, false) rather than an error; classifying that condition is the
// caller's responsibility.
func (c *Collective) GetPod(id uuid.UUID) (*Pod, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	wp, ok := c.pods[id]
	if !ok {
		return nil, false
	}
	p := wp.Value()
	if p == nil {
		return nil, false
	}
	return p, true
}

// Len returns the number of live pods currently registered.
func (c *Collective) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	n := 0
	for _, wp := range c.pods {
		if wp.Value() != nil {
			n++
		}
	}
	return n
}

// adopt records a pod under its identity key, overwriting silently if an entry
// already exists for that key. A cleanup hook removes the entry once the pod
// becomes unreachable.
func (c *Collective) adopt(p *Pod) {
	c.mu.Lock()
	c.pods[p.id] = weak.Make(p)
	c.mu.Unlock()

	runtime.AddCleanup(p, func(id uuid.UUID) {
		c.evict(id)
	}, p.id)
}

// evict drops the entry for an identity key if its pod is gone. Safe to call
// more than once for the same key.
func (c *Collective) evict(id uuid.UUID) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if wp, ok := c.pods[id]; ok && wp.Value() == nil {
		delete(c.pods, id)
	}
}
