package entity

// CollisionScale shrinks bounding spheres for the contact test.
const CollisionScale = 0.8

// Interact tests a against b and applies the outcome to a's side. Contact marks both
// colliding and bumps a's collision time. A friendly projectile touching an enemy
// hits it and dies; an avatar touching an enemy dies. Neutral and dead objects never
// touch.
func Interact(a, b *Object) bool {
	if a.Kind == KindNeutral || b.Kind == KindNeutral || a.dead || b.dead {
		return false
	}
	reach := (a.radius + b.radius) * CollisionScale
	if b.center.Sub(a.center).Len() >= reach {
		return false
	}
	a.colliding = true
	b.colliding = true
	a.collisionTime++
	if a.collisionTime > 0 && b.Kind == KindEnemy {
		switch a.Kind {
		case KindFriendlyProjectile:
			b.Kill()
			a.Kill()
			a.collisionTime = 0
		case KindAvatar:
			a.Kill()
		}
	}
	return true
}

// Sweep interacts o with every other object and clears its contact state when
// nothing touched it.
func Sweep(o *Object, objects []*Object) {
	hit := false
	for _, other := range objects {
		if other == o {
			continue
		}
		if Interact(o, other) {
			hit = true
		}
	}
	if !hit {
		o.colliding = false
		o.collisionTime = 0
	}
}
