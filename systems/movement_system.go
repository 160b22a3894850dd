package systems

import (
	"ebiten-shooter/components"
)

// drawFunc pushes an entity's current state to the render collaborator
type drawFunc func(e *components.Entity, r components.Renderer)

// boundaryStatus describes how far a position lies outside the viewport
type boundaryStatus struct {
	out    bool
	deltaX float64 // signed overshoot on x, 0 when inside
	deltaY float64 // signed overshoot on y, 0 when inside
}

// Move advances pos by vel over dt milliseconds
func Move(pos *components.Vec2, vel components.Vec2, dt float64) {
	pos.X += vel.X * dt
	pos.Y += vel.Y * dt
}

// checkBoundaries compares pos against a width x height viewport anchored at the origin
func checkBoundaries(pos components.Vec2, frameWidth, frameHeight float64) boundaryStatus {
	var res boundaryStatus
	if pos.X < 0 {
		res.out = true
		res.deltaX = pos.X
	} else if pos.X > frameWidth {
		res.out = true
		res.deltaX = pos.X - frameWidth
	}
	if pos.Y < 0 {
		res.out = true
		res.deltaY = pos.Y
	} else if pos.Y > frameHeight {
		res.out = true
		res.deltaY = pos.Y - frameHeight
	}
	return res
}

// moveWithBoundaries is the movement step shared by every variant: move, then
// kill a deadIfOut entity that left the viewport or clamp a bounded one back
// into it. Only an in-bounds move is drawn.
func moveWithBoundaries(e *components.Entity, ctx *tickContext, draw drawFunc) {
	Move(&e.Pos, e.Vel, ctx.Dt)

	status := checkBoundaries(e.Pos, ctx.Width, ctx.Height)
	if !status.out {
		draw(e, ctx.renderer)
		return
	}

	if e.DeadIfOut {
		e.Alive = false
		return
	}
	if e.Bounded {
		e.Pos.X -= status.deltaX
		e.Pos.Y -= status.deltaY
	}
}

// drawAt moves the entity's visual to its position
func drawAt(e *components.Entity, r components.Renderer) {
	r.SetPosition(e.ID, e.Pos.X, e.Pos.Y)
}
