package sim

import (
	"math"

	"github.com/vovakirdan/orbit-rush/internal/core"
)

// applyMagnet deflects hazards inside the safe-zone radius away from
// the player. The push is proportional to the effect's remaining
// normalized strength and inversely proportional to distance, so the
// pull decays smoothly toward expiry and weakens with range. A
// deflected hazard is marked neutralized for a cooldown so it cannot
// immediately re-collide.
func (w *World) applyMagnet(now, dt float64) {
	strength := w.effects.NormalizedStrength(EffectMagnet, now)
	if strength <= 0 {
		return
	}
	pull := w.effects.Magnitude(EffectMagnet, now) * strength

	px, py := w.motion.Position(w.rings, w.player.Ring, w.player.Angle)
	radius := w.cfg.Powerups.MagnetRadius

	w.pool.ForEachActive(func(e *Entity) {
		if e.Kind != KindHazard {
			return
		}
		ex, ey := w.motion.Position(w.rings, e.Ring, e.Angle)
		dist := math.Hypot(ex-px, ey-py)
		if dist > radius {
			return
		}
		if dist < 0.5 {
			dist = 0.5 // Bound the deflection for near-contact hazards
		}

		// Push along the shortest arc away from the player. A hazard
		// exactly on top of the player gets an arbitrary direction.
		away := core.AngularSign(w.player.Angle, e.Angle)
		if away == 0 {
			away = 1
		}
		e.Angle = core.NormalizeAngle(e.Angle + away*pull*dt/dist)

		if !e.Neutralized(now) {
			w.emit(Event{Kind: EventNeutralized, At: now, Value: e.Slot()})
		}
		e.NeutralizedUntil = now + w.cfg.Powerups.NeutralizeCooldown
	})
}

// resolveContacts evaluates player contacts for every active entity.
// Pickups are collected and activate their effect; hazard contacts are
// absorbed by a shield, ignored while neutralized or in the post-hit
// grace window, and otherwise lethal.
func (w *World) resolveContacts(now float64) {
	w.pool.ForEachActive(func(e *Entity) {
		if w.state != RunRunning {
			return
		}
		if e.Ring != w.player.Ring {
			return
		}

		radius := w.rings.Radius(e.Ring)
		arcDist := radius * core.AngularDelta(e.Angle, w.player.Angle)
		if arcDist >= w.cfg.Scoring.CollisionPadding {
			return
		}

		if e.Kind.IsPickup() {
			w.collectPickup(e, now)
			return
		}

		w.resolveHazardContact(e, now)
	})
}

// collectPickup recycles the pickup and activates its corresponding
// timed effect in the registry.
func (w *World) collectPickup(e *Entity, now float64) {
	p := w.cfg.Powerups
	switch e.Kind {
	case KindShieldPickup:
		w.effects.Activate(EffectShield, 1, p.ShieldDuration, now)
		w.emit(Event{Kind: EventPickup, At: now, Effect: EffectShield})
	case KindSlowMoPickup:
		w.effects.Activate(EffectSlowMo, p.SlowMoFactor, p.SlowMoDuration, now)
		w.emit(Event{Kind: EventPickup, At: now, Effect: EffectSlowMo})
	case KindMagnetPickup:
		w.effects.Activate(EffectMagnet, p.MagnetStrength, p.MagnetDuration, now)
		w.emit(Event{Kind: EventPickup, At: now, Effect: EffectMagnet})
	}
	w.pool.Recycle(e)
}

// resolveHazardContact applies the lethal-contact ladder: grace window
// first, then shield absorb, then the magnet's neutralize mark, then
// terminal state.
func (w *World) resolveHazardContact(e *Entity, now float64) {
	if now < w.graceUntil {
		return
	}

	if w.effects.IsActive(EffectShield, now) {
		// A shield absorbs exactly one collision.
		w.effects.Deactivate(EffectShield)
		w.graceUntil = now + w.cfg.Powerups.GraceWindow
		w.pool.Recycle(e)
		w.emit(Event{Kind: EventShieldAbsorb, At: now})
		return
	}

	if e.Neutralized(now) {
		return
	}

	w.endRun(now)
}
