package animation

import (
	"log"
	"sort"
	"sync"
)

// Constructor builds a fresh, uninitialised animation.
type Constructor func() Animation

var (
	registryMu sync.RWMutex
	registry   = map[Kind]Constructor{
		KindBlackHole: func() Animation { return NewBlackHole() },
	}
)

// DefaultKind is what unknown or missing kinds resolve to.
const DefaultKind = KindBlackHole

// Register adds a variant. It panics on duplicate kinds.
func Register(kind Kind, ctor Constructor) {
	registryMu.Lock()
	defer registryMu.Unlock()
	if _, exists := registry[kind]; exists {
		panic("animation: duplicate registration for " + string(kind))
	}
	registry[kind] = ctor
}

// Kinds lists the registered kinds in sorted order.
func Kinds() []Kind {
	registryMu.RLock()
	defer registryMu.RUnlock()
	kinds := make([]Kind, 0, len(registry))
	for k := range registry {
		kinds = append(kinds, k)
	}
	sort.Slice(kinds, func(i, j int) bool { return kinds[i] < kinds[j] })
	return kinds
}

// Create returns a new animation for kind. It never fails: unrecognised kinds
// log a warning and get the default variant. Every call builds a new instance.
func Create(kind Kind) Animation {
	registryMu.RLock()
	ctor, ok := registry[kind]
	if !ok {
		ctor = registry[DefaultKind]
	}
	registryMu.RUnlock()

	if !ok {
		if kind == "" {
			log.Printf("[Animation] Warning: no animation kind configured, using %q", DefaultKind)
		} else {
			log.Printf("[Animation] Warning: unknown animation kind %q, using %q", kind, DefaultKind)
		}
	}
	return ctor()
}
