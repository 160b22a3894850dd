package systems

import (
	"ebiten-shooter/components"
	"ebiten-shooter/config"
	"ebiten-shooter/ecs"
)

// ShowPlayer makes a freshly created craft visible and starts its grace period at birthTime
func ShowPlayer(e *components.Entity, birthTime float64, r components.Renderer, events *ecs.EventManager) {
	p := e.Player
	p.Shown = true
	p.CanDie = false
	p.BirthTime = birthTime

	r.SetVisible(e.ID, true)
	setHighlight(r, e.ID, true)
	draw(e, r)

	events.Emit(PlayerSpawnedEvent{PlayerID: e.ID, Elapsed: birthTime})
}

func setHighlight(r components.Renderer, id ecs.EntityID, on bool) {
	if h, ok := r.(components.Highlighter); ok {
		h.SetHighlight(id, on)
	}
}

// applyInput sets the craft's horizontal velocity from the sampled intent
func applyInput(e *components.Entity, in components.InputState) {
	switch in.Direction {
	case components.DirLeft:
		e.Vel.X = -config.PlayerSpeed
	case components.DirRight:
		e.Vel.X = config.PlayerSpeed
	default:
		e.Vel.X = 0
	}
	e.Vel.Y = 0
}

func processPlayer(e *components.Entity, ctx *tickContext) []*components.Entity {
	p := e.Player
	if !p.CanDie && ctx.Elapsed-p.BirthTime > config.GracePeriod {
		p.CanDie = true
		setHighlight(ctx.renderer, e.ID, false)
	}

	in := ctx.input.Sample()
	applyInput(e, in)
	moveWithBoundaries(e, ctx, drawAt)

	if !in.Fire || ctx.Elapsed-p.LastLaunch < config.FireCooldown {
		return nil
	}
	p.LastLaunch = ctx.Elapsed
	projectile := ctx.spawner.CreateProjectile(e.Pos)
	ctx.events.Emit(ProjectileFiredEvent{
		ProjectileID: projectile.ID,
		X:            projectile.Pos.X,
		Y:            projectile.Pos.Y,
		Elapsed:      ctx.Elapsed,
	})
	return []*components.Entity{projectile}
}

// checkPlayerCollision kills a vulnerable craft that overlaps any live hostile
func checkPlayerCollision(e *components.Entity, active []*components.Entity, ctx *tickContext) bool {
	if !e.Player.CanDie {
		return false
	}
	mine := e.Bounds()
	for _, other := range active {
		if other.Kind == components.KindProjectile || other.Kind == components.KindPlayer {
			continue
		}
		if other.Alive && components.Overlap(mine, other.Bounds()) {
			ctx.renderer.Destroy(e.ID)
			e.Alive = false
			ctx.state.PlayerAlive = false
			ctx.state.Deaths++
			ctx.events.Emit(PlayerKilledEvent{PlayerID: e.ID, HostileID: other.ID, Elapsed: ctx.Elapsed})
			return true
		}
	}
	return false
}
