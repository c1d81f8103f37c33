package entity

import (
	"typer3d/internal/asset"
	"typer3d/internal/invariant"

	"github.com/go-gl/mathgl/mgl32"
)

// LaneCount is the number of approach lanes around the avatar.
const LaneCount = 4

// NewGround builds a floor tile at pos. The tile is flattened and dropped just below
// y=0. It never casts a shadow.
func NewGround(mesh *asset.Mesh, mat *asset.Material, normal, pos mgl32.Vec3) *Object {
	o := New(KindNeutral, mesh, mat, &Ground{Normal: normal})
	o.Shadow = false
	o.position = pos
	return o.Scale(mgl32.Vec3{1, 0.1, 1}).Translate(mgl32.Vec3{0, -0.1, 0})
}

// NewSky builds a backdrop panel at pos, stretched and tilted upright.
func NewSky(mesh *asset.Mesh, mat *asset.Material, normal, pos, axis1, axis2 mgl32.Vec3) *Object {
	o := New(KindNeutral, mesh, mat, &Sky{Normal: normal, Axis1: axis1, Axis2: axis2})
	o.Shadow = false
	o.position = pos
	return o.Scale(mgl32.Vec3{6, 1, 15}).Rotate(-90)
}

// NewEnemy builds an enemy for lane that survives health hits. Placement is left to
// the caller.
func NewEnemy(mesh *asset.Mesh, mat *asset.Material, lane, health int) *Object {
	invariant.Check(lane >= 0 && lane < LaneCount, "enemy lane %d out of range", lane)
	invariant.Check(health >= 1, "enemy health %d must be positive", health)
	return New(KindEnemy, mesh, mat, &Enemy{Lane: lane, Health: health})
}

// NewProjectile builds a friendly projectile homing on the target of lane.
func NewProjectile(mesh *asset.Mesh, mat *asset.Material, lane int) *Object {
	return New(KindFriendlyProjectile, mesh, mat, &Projectile{TargetLane: lane})
}
