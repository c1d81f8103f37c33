package entity

import (
	"math"

	"typer3d/internal/vmath"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

const (
	EnemySpeed        = 0.01
	EnemyBobAmplitude = 0.01
	EnemyBobStep      = math.Pi / (18.0 / 0.8)
)

// Enemy walks toward the avatar, bobbing as it goes, and takes Health hits to die.
type Enemy struct {
	MeshBehavior
	Lane   int
	Health int
	phase  float32
}

func (e *Enemy) Control(o *Object, w World, level int) {
	e.MeshBehavior.Control(o, w, level)
	avatar := w.Avatar()
	if avatar == nil {
		return
	}
	if dir, ok := vmath.Normalize(avatar.Center().Sub(o.Center())); ok {
		o.Translate(dir.Mul(EnemySpeed))
	}
	o.Translate(mgl32.Vec3{0, EnemyBobAmplitude * math32.Sin(e.phase), 0})
	e.phase += EnemyBobStep
}

// Kill takes one point of health; the last point kills the enemy.
func (e *Enemy) Kill(o *Object) {
	if e.Health > 1 {
		e.Health--
		return
	}
	e.Health = 0
	o.markDead()
}
