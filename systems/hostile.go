package systems

import (
	"math"

	"ebiten-shooter/components"
	"ebiten-shooter/config"
)

// swayVelocity is the hostile's horizontal speed at the given elapsed time
func swayVelocity(elapsed, phase float64) float64 {
	return math.Cos(elapsed/config.HostileCycle+phase) * config.HostileAmplitude
}

// processHostile sways the hostile, wraps it around the side edges and drops
// it once it falls past the bottom
func processHostile(e *components.Entity, ctx *tickContext) []*components.Entity {
	e.Vel.X = swayVelocity(ctx.Elapsed, e.Hostile.Phase)
	if e.Vel.X < 0 && e.Pos.X <= 0 {
		e.Pos.X = ctx.Width
	} else if e.Vel.X > 0 && e.Pos.X >= ctx.Width {
		e.Pos.X = 0
	}

	moveWithBoundaries(e, ctx, drawHostile)

	if e.Pos.Y > ctx.Height {
		e.Alive = false
		ctx.renderer.Destroy(e.ID)
		ctx.events.Emit(HostileEscapedEvent{HostileID: e.ID, Elapsed: ctx.Elapsed})
	}
	return nil
}

// drawHostile reveals the hostile on its first draw
func drawHostile(e *components.Entity, r components.Renderer) {
	if !e.Hostile.Drawn {
		e.Hostile.Drawn = true
		r.SetVisible(e.ID, true)
	}
	drawAt(e, r)
}

// checkHostileCollision kills the hostile when any live projectile overlaps it.
// The projectile keeps flying.
func checkHostileCollision(e *components.Entity, active []*components.Entity, ctx *tickContext) bool {
	mine := e.Bounds()
	for _, other := range active {
		if !other.Alive || other.Kind != components.KindProjectile {
			continue
		}
		if components.Overlap(other.Bounds(), mine) {
			e.Alive = false
			ctx.renderer.Destroy(e.ID)
			other.Projectile.Hits++
			ctx.state.Kills++
			ctx.events.Emit(HostileKilledEvent{
				HostileID:    e.ID,
				ProjectileID: other.ID,
				X:            e.Pos.X,
				Y:            e.Pos.Y,
				Elapsed:      ctx.Elapsed,
			})
			return true
		}
	}
	return false
}
