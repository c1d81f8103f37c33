// Package entity holds the game object record and the behaviors that drive it.
//
// Every object shares one transform and bounding-sphere model. What differs per
// variant (enemy, projectile, sky panel, ...) lives in its Behavior.
package entity

import (
	"typer3d/internal/asset"
	"typer3d/internal/vmath"

	"github.com/go-gl/mathgl/mgl32"
)

// Object is a game entity: a transform, a bounding sphere maintained incrementally
// under that transform, a lifecycle, and a behavior.
//
// The sphere center does not track the position exactly. Translate moves both the
// same way, but Scale scales the center about the world origin and Rotate swings the
// center around the position. Collision relies on this.
type Object struct {
	id       ID
	Kind     Kind
	Mesh     *asset.Mesh
	Material *asset.Material
	Shadow   bool

	position mgl32.Vec3
	axis     mgl32.Vec3
	angle    float32
	scale    mgl32.Vec3

	center mgl32.Vec3
	radius float32

	dead          bool
	colliding     bool
	collisionTime int

	behavior Behavior
}

// New creates an object whose bounding sphere encloses mesh. A nil behavior gets
// the plain mesh behavior.
func New(kind Kind, mesh *asset.Mesh, mat *asset.Material, b Behavior) *Object {
	if b == nil {
		b = MeshBehavior{}
	}
	o := &Object{
		Kind:     kind,
		Mesh:     mesh,
		Material: mat,
		Shadow:   true,
		axis:     mgl32.Vec3{0, 1, 0},
		scale:    mgl32.Vec3{1, 1, 1},
		behavior: b,
	}
	if mesh != nil {
		o.center, o.radius = mesh.BoundingSphere()
	}
	return o
}

// NewMeshInstance creates an object with the plain mesh behavior.
func NewMeshInstance(mesh *asset.Mesh, mat *asset.Material, kind Kind) *Object {
	return New(kind, mesh, mat, MeshBehavior{})
}

// Translate moves the position and the sphere center by offset.
func (o *Object) Translate(offset mgl32.Vec3) *Object {
	o.position = o.position.Add(offset)
	o.center = o.center.Add(offset)
	return o
}

// Scale multiplies the scale factor, grows the radius by the largest factor and
// scales the sphere center component-wise.
func (o *Object) Scale(factor mgl32.Vec3) *Object {
	o.scale = vmath.MulElem(o.scale, factor)
	o.radius *= vmath.MaxComponent(factor)
	o.center = vmath.MulElem(o.center, factor)
	return o
}

// Rotate turns the object by degrees around its orientation axis. The sphere center
// rotates about the position; the position itself does not move.
func (o *Object) Rotate(degrees float32) *Object {
	o.angle = vmath.WrapDegrees(o.angle + degrees)
	o.center = vmath.RotateAbout(o.center, o.position, o.axis, degrees)
	return o
}

// SetShadow toggles the ground shadow.
func (o *Object) SetShadow(s bool) *Object {
	o.Shadow = s
	return o
}

// SetAxis replaces the orientation axis. axis must not be zero.
func (o *Object) SetAxis(axis mgl32.Vec3) *Object {
	o.axis = vmath.MustNormalize(axis)
	return o
}

// PlaceAt sets the position without touching the sphere.
func (o *Object) PlaceAt(pos mgl32.Vec3) *Object {
	o.position = pos
	return o
}

func (o *Object) ID() ID                   { return o.id }
func (o *Object) Position() mgl32.Vec3     { return o.position }
func (o *Object) Axis() mgl32.Vec3         { return o.axis }
func (o *Object) Angle() float32           { return o.angle }
func (o *Object) ScaleFactor() mgl32.Vec3  { return o.scale }
func (o *Object) Center() mgl32.Vec3       { return o.center }
func (o *Object) Radius() float32          { return o.radius }
func (o *Object) IsColliding() bool        { return o.colliding }
func (o *Object) SetColliding(c bool)      { o.colliding = c }
func (o *Object) CollisionTime() int       { return o.collisionTime }
func (o *Object) Behavior() Behavior       { return o.behavior }
func (o *Object) IsDead() bool             { return o.dead }
func (o *Object) markDead()                { o.dead = true }
func (o *Object) Kill()                    { o.behavior.Kill(o) }
func (o *Object) Model() mgl32.Mat4        { return o.behavior.Model(o) }
func (o *Object) Control(w World, lvl int) { o.behavior.Control(o, w, lvl) }

// Enemy returns the enemy behavior, or nil for other variants.
func (o *Object) Enemy() *Enemy {
	e, _ := o.behavior.(*Enemy)
	return e
}

// Projectile returns the projectile behavior, or nil for other variants.
func (o *Object) Projectile() *Projectile {
	p, _ := o.behavior.(*Projectile)
	return p
}

// ModelMatrix composes translate, rotate and scale in that order.
func (o *Object) ModelMatrix() mgl32.Mat4 {
	return mgl32.Translate3D(o.position[0], o.position[1], o.position[2]).
		Mul4(mgl32.HomogRotate3D(mgl32.DegToRad(o.angle), o.axis)).
		Mul4(mgl32.Scale3D(o.scale[0], o.scale[1], o.scale[2]))
}
