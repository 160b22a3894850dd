package systems

import (
	"ebiten-shooter/components"
)

// behavior is the capability table of one entity variant
type behavior struct {
	// process runs the movement step and returns newly spawned entities
	process func(e *components.Entity, ctx *tickContext) []*components.Entity
	// checkCollision tests e against the active set and applies the outcome
	checkCollision func(e *components.Entity, active []*components.Entity, ctx *tickContext) bool
	draw           drawFunc
}

var behaviors = [components.KindCount]behavior{
	components.KindPlayer: {
		process:        processPlayer,
		checkCollision: checkPlayerCollision,
		draw:           drawAt,
	},
	components.KindProjectile: {
		process:        processProjectile,
		checkCollision: noCollision,
		draw:           drawAt,
	},
	components.KindHostile: {
		process:        processHostile,
		checkCollision: checkHostileCollision,
		draw:           drawHostile,
	},
}

func process(e *components.Entity, ctx *tickContext) []*components.Entity {
	return behaviors[e.Kind].process(e, ctx)
}

func checkCollision(e *components.Entity, active []*components.Entity, ctx *tickContext) bool {
	return behaviors[e.Kind].checkCollision(e, active, ctx)
}

func draw(e *components.Entity, r components.Renderer) {
	behaviors[e.Kind].draw(e, r)
}

func noCollision(*components.Entity, []*components.Entity, *tickContext) bool {
	return false
}
