package systems

import (
	"ebiten-shooter/components"
)

// processProjectile moves the projectile and removes its visual once it leaves the viewport
func processProjectile(e *components.Entity, ctx *tickContext) []*components.Entity {
	moveWithBoundaries(e, ctx, drawAt)
	if !e.Alive {
		ctx.renderer.Destroy(e.ID)
	}
	return nil
}
