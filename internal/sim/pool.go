package sim

// Pool is a reusable-slot allocator for entities. Spawning at 60 Hz under
// bursty spawn rates must not allocate per frame, so slots live in a
// fixed arena and recycled indices are handed out before new ones.
//
// Single-writer-per-tick is a precondition; the pool is not safe for
// concurrent mutation.
type Pool struct {
	slots  []Entity
	free   []int
	visual VisualProvider
}

// NewPool creates a pool with the given slot capacity. The visual
// provider may be nil, in which case no render bindings are managed.
func NewPool(capacity int, visual VisualProvider) *Pool {
	if capacity < 1 {
		capacity = 1
	}
	return &Pool{
		slots:  make([]Entity, 0, capacity),
		free:   make([]int, 0, capacity),
		visual: visual,
	}
}

// Capacity returns the maximum number of simultaneously active entities.
func (p *Pool) Capacity() int {
	return cap(p.slots)
}

// ActiveCount returns the number of currently active entities.
func (p *Pool) ActiveCount() int {
	return len(p.slots) - len(p.free)
}

// Spawn returns a recycled slot if available, else allocates a new slot
// up to capacity. Returns nil when the pool is exhausted; callers treat
// that as "skip this spawn", not as an error.
func (p *Pool) Spawn(kind EntityKind, now float64) *Entity {
	var e *Entity

	if n := len(p.free); n > 0 {
		idx := p.free[n-1]
		p.free = p.free[:n-1]
		e = &p.slots[idx]
	} else if len(p.slots) < cap(p.slots) {
		p.slots = append(p.slots, Entity{slot: len(p.slots)})
		e = &p.slots[len(p.slots)-1]
	} else {
		debugAssert(false, "pool exhausted beyond capacity")
		return nil
	}

	e.Active = true
	e.Kind = kind
	e.SpawnedAt = now
	e.clearFlags()

	if p.visual != nil {
		e.Visual = p.visual.Acquire(kind)
	}
	return e
}

// Recycle clears the flag record, detaches any render binding, and
// returns the slot to the free list. Recycling an already-inactive
// entity is a guarded no-op: a logic error, not a crash.
func (p *Pool) Recycle(e *Entity) {
	if e == nil {
		return
	}
	if !e.Active {
		debugAssert(false, "double recycle of pool slot")
		return
	}

	if p.visual != nil && e.Visual != nil {
		p.visual.Release(e.Visual)
	}
	e.Visual = nil
	e.Active = false
	e.clearFlags()
	p.free = append(p.free, e.slot)
}

// RecycleAll clears every active slot (run end/revive).
func (p *Pool) RecycleAll() {
	for i := range p.slots {
		if p.slots[i].Active {
			p.Recycle(&p.slots[i])
		}
	}
}

// ForEachActive calls fn for every active entity. Recycling the current
// entity inside fn is allowed; spawning inside fn is not.
func (p *Pool) ForEachActive(fn func(e *Entity)) {
	for i := range p.slots {
		if p.slots[i].Active {
			fn(&p.slots[i])
		}
	}
}
