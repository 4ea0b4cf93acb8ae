package sim

import "testing"

func TestPoolSpawnAndRecycle(t *testing.T) {
	p := NewPool(4, nil)

	if p.Capacity() != 4 {
		t.Fatalf("Capacity = %d, want 4", p.Capacity())
	}

	e := p.Spawn(KindHazard, 1.0)
	if e == nil {
		t.Fatal("Spawn returned nil with free capacity")
	}
	if !e.Active {
		t.Error("spawned entity should be active")
	}
	if e.SpawnedAt != 1.0 {
		t.Errorf("SpawnedAt = %v, want 1.0", e.SpawnedAt)
	}
	if p.ActiveCount() != 1 {
		t.Errorf("ActiveCount = %d, want 1", p.ActiveCount())
	}

	p.Recycle(e)
	if e.Active {
		t.Error("recycled entity should be inactive")
	}
	if p.ActiveCount() != 0 {
		t.Errorf("ActiveCount = %d, want 0", p.ActiveCount())
	}
}

func TestPoolReusesRecycledSlot(t *testing.T) {
	p := NewPool(4, nil)

	e1 := p.Spawn(KindHazard, 0)
	slot := e1.Slot()
	p.Recycle(e1)

	e2 := p.Spawn(KindShieldPickup, 5.0)
	if e2.Slot() != slot {
		t.Errorf("expected recycled slot %d to be reused, got %d", slot, e2.Slot())
	}
	if e2.Kind != KindShieldPickup {
		t.Errorf("Kind = %v, want %v", e2.Kind, KindShieldPickup)
	}
}

func TestPoolClearsFlagsOnReuse(t *testing.T) {
	p := NewPool(2, nil)

	e := p.Spawn(KindHazard, 0)
	e.Threatened = true
	e.AwardedPass = true
	e.AwardedNearMiss = true
	e.NeutralizedUntil = 99
	p.Recycle(e)

	e2 := p.Spawn(KindHazard, 1.0)
	if e2.Threatened || e2.AwardedPass || e2.AwardedNearMiss {
		t.Error("reused slot carried stale detection flags")
	}
	if e2.NeutralizedUntil != 0 {
		t.Errorf("NeutralizedUntil = %v, want 0", e2.NeutralizedUntil)
	}
}

func TestPoolExhaustionReturnsNil(t *testing.T) {
	p := NewPool(2, nil)

	if p.Spawn(KindHazard, 0) == nil || p.Spawn(KindHazard, 0) == nil {
		t.Fatal("spawn failed below capacity")
	}
	if e := p.Spawn(KindHazard, 0); e != nil {
		t.Error("spawn beyond capacity should return nil")
	}
}

func TestPoolDoubleRecycleIsNoOp(t *testing.T) {
	p := NewPool(2, nil)

	e := p.Spawn(KindHazard, 0)
	p.Recycle(e)
	p.Recycle(e) // Must not corrupt the free list.

	// Both slots must still be usable exactly once each.
	if p.Spawn(KindHazard, 0) == nil || p.Spawn(KindHazard, 0) == nil {
		t.Fatal("free list corrupted after double recycle")
	}
	if e := p.Spawn(KindHazard, 0); e != nil {
		t.Error("double recycle duplicated a free slot")
	}
}

func TestPoolRecycleAll(t *testing.T) {
	p := NewPool(4, nil)
	for i := 0; i < 4; i++ {
		p.Spawn(KindHazard, 0)
	}
	p.RecycleAll()
	if p.ActiveCount() != 0 {
		t.Errorf("ActiveCount = %d after RecycleAll, want 0", p.ActiveCount())
	}
}

type countingVisual struct {
	acquired int
	released int
	updates  int
}

func (v *countingVisual) Acquire(kind EntityKind) VisualHandle {
	v.acquired++
	return v.acquired
}

func (v *countingVisual) Update(h VisualHandle, x, y, rotation float64, visible bool) {
	v.updates++
}

func (v *countingVisual) Release(h VisualHandle) {
	v.released++
}

func TestPoolReleasesVisualOnRecycle(t *testing.T) {
	visual := &countingVisual{}
	p := NewPool(2, visual)

	e := p.Spawn(KindHazard, 0)
	if visual.acquired != 1 {
		t.Fatalf("acquired = %d, want 1", visual.acquired)
	}
	if e.Visual == nil {
		t.Fatal("spawned entity has no visual handle")
	}

	p.Recycle(e)
	if visual.released != 1 {
		t.Errorf("released = %d, want 1", visual.released)
	}
	if e.Visual != nil {
		t.Error("visual handle not detached on recycle")
	}
}
