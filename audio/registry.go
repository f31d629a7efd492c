// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"slices"
	"sync"

	"github.com/google/uuid"
)

// Registry is the insertion ordered set of live instances, shared by the
// game logic side (Add, Remove) and the tick side (Snapshot). The lock is
// only held to copy or mutate the list, never while mixing.
type Registry struct {
	instances []*Instance
	index     map[uuid.UUID]int

	mtx *sync.Mutex
}

func NewRegistry() *Registry {
	return &Registry{
		index: make(map[uuid.UUID]int),
		mtx:   &sync.Mutex{},
	}
}

// Add appends inst. Adding an instance twice is a no-op.
func (r *Registry) Add(inst *Instance) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	if _, ok := r.index[inst.id]; ok {
		return
	}

	r.index[inst.id] = len(r.instances)
	r.instances = append(r.instances, inst)
}

// Remove drops inst, keeping the order of the others. It reports whether
// inst was registered.
func (r *Registry) Remove(inst *Instance) bool {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	pos, ok := r.index[inst.id]
	if !ok {
		return false
	}

	delete(r.index, inst.id)
	r.instances = slices.Delete(r.instances, pos, pos+1)

	for j := pos; j < len(r.instances); j++ {
		r.index[r.instances[j].id] = j
	}

	return true
}

func (r *Registry) Get(id uuid.UUID) (*Instance, bool) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	pos, ok := r.index[id]
	if !ok {
		return nil, false
	}

	return r.instances[pos], true
}

func (r *Registry) Len() int {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	return len(r.instances)
}

// Snapshot appends the current instances to dst and returns it. Callers that
// reuse dst across ticks avoid allocating once it has grown.
func (r *Registry) Snapshot(dst []*Instance) []*Instance {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	return append(dst, r.instances...)
}
