package entity

import (
	"typer3d/internal/vmath"

	"github.com/go-gl/mathgl/mgl32"
)

const (
	ProjectileSpin   = 5
	ProjectileStep   = 0.2
	ProjectileJitter = 0.2
)

// Projectile flies toward the target enemy of its lane, tumbling on a jittered axis.
type Projectile struct {
	MeshBehavior
	TargetLane int
}

// Control moves a friendly projectile along the avatar-to-target direction. Without an
// avatar or a target it only collides.
func (p *Projectile) Control(o *Object, w World, level int) {
	p.MeshBehavior.Control(o, w, level)
	if o.Kind != KindFriendlyProjectile {
		return
	}
	avatar, target := w.Avatar(), w.EnemyInLane(p.TargetLane)
	if avatar == nil || target == nil {
		return
	}
	o.Rotate(ProjectileSpin)
	r := w.Rand()
	jitter := mgl32.Vec3{
		float32(r.IntN(5)+1) * ProjectileJitter,
		float32(r.IntN(5)+1) * ProjectileJitter,
		float32(r.IntN(5)+1) * ProjectileJitter,
	}
	o.SetAxis(o.Axis().Add(jitter))
	if dir, ok := vmath.Normalize(target.Center().Sub(avatar.Center())); ok {
		o.Translate(dir.Mul(ProjectileStep))
	}
}
