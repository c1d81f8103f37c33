package entity

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Rand is the randomness behaviors draw from. *math/rand/v2.Rand satisfies it.
type Rand interface {
	IntN(n int) int
}

// World is the view of the scene a behavior gets during Control.
type World interface {
	// Objects returns every live object in container order.
	Objects() []*Object
	// Avatar returns the player's object, or nil when none exists.
	Avatar() *Object
	// EnemyInLane returns the current target enemy of lane, or nil.
	EnemyInLane(lane int) *Object
	Rand() Rand
}

// Behavior is the per-variant part of an object.
type Behavior interface {
	Control(o *Object, w World, level int)
	Kill(o *Object)
	Model(o *Object) mgl32.Mat4
}

// MeshBehavior sweeps the object against every other object each tick. It is the
// default behavior and the base of the other variants.
type MeshBehavior struct{}

func (MeshBehavior) Control(o *Object, w World, _ int) {
	Sweep(o, w.Objects())
}

func (MeshBehavior) Kill(o *Object) {
	o.markDead()
}

func (MeshBehavior) Model(o *Object) mgl32.Mat4 {
	return o.ModelMatrix()
}

// Ground is a flat floor tile.
type Ground struct {
	MeshBehavior
	Normal mgl32.Vec3
}

// Sky is a backdrop panel oriented by up to two axes.
type Sky struct {
	MeshBehavior
	Normal mgl32.Vec3
	Axis1  mgl32.Vec3
	Axis2  mgl32.Vec3
}

// Model rotates about Axis2 first when it is set, then about Axis1. A zero Axis1
// repeats the previous axis.
func (s *Sky) Model(o *Object) mgl32.Mat4 {
	axis := o.axis
	rad := mgl32.DegToRad(o.angle)
	m := mgl32.Translate3D(o.position[0], o.position[1], o.position[2])
	if s.Axis2 != (mgl32.Vec3{}) {
		axis = s.Axis2
		m = m.Mul4(mgl32.HomogRotate3D(rad, axis))
	}
	if s.Axis1 != (mgl32.Vec3{}) {
		axis = s.Axis1
	}
	return m.Mul4(mgl32.HomogRotate3D(rad, axis)).
		Mul4(mgl32.Scale3D(o.scale[0], o.scale[1], o.scale[2]))
}
