package entity

import (
	"testing"

	"typer3d/internal/asset"
	"typer3d/internal/vmath"

	"github.com/go-gl/mathgl/mgl32"
)

const eps = 1e-4

// unitMesh has its bounding sphere at the origin with radius 1.
var unitMesh = asset.NewMesh("unit", []mgl32.Vec3{{-1, 0, 0}, {1, 0, 0}, {0, 1, 0}, {0, -1, 0}})

type fixedRand int

func (r fixedRand) IntN(n int) int { return int(r) % n }

type fakeWorld struct {
	objects []*Object
	avatar  *Object
	lanes   map[int]*Object
}

func (w *fakeWorld) Objects() []*Object { return w.objects }
func (w *fakeWorld) Avatar() *Object    { return w.avatar }
func (w *fakeWorld) Rand() Rand         { return fixedRand(0) }
func (w *fakeWorld) EnemyInLane(lane int) *Object {
	return w.lanes[lane]
}

func obj(kind Kind) *Object {
	return NewMeshInstance(unitMesh, nil, kind)
}

func TestTransformsMaintainSphere(t *testing.T) {
	o := obj(KindNeutral)
	o.Translate(mgl32.Vec3{1, 2, 3})
	if o.Position() != o.Center() {
		t.Fatalf("translate diverged: pos %v center %v", o.Position(), o.Center())
	}

	o.Scale(mgl32.Vec3{2, 0.5, 3})
	if o.Radius() != 3 {
		t.Errorf("radius = %v, want 3", o.Radius())
	}
	if want := (mgl32.Vec3{2, 1, 9}); !vmath.ApproxEqual(o.Center(), want, eps) {
		t.Errorf("center = %v, want %v", o.Center(), want)
	}
	if want := (mgl32.Vec3{2, 0.5, 3}); o.ScaleFactor() != want {
		t.Errorf("scale = %v, want %v", o.ScaleFactor(), want)
	}
	// Position is not scaled.
	if want := (mgl32.Vec3{1, 2, 3}); o.Position() != want {
		t.Errorf("position = %v, want %v", o.Position(), want)
	}
}

func TestRotateSwingsCenterAroundPosition(t *testing.T) {
	o := obj(KindNeutral)
	o.Translate(mgl32.Vec3{1, 0, 0}).PlaceAt(mgl32.Vec3{})
	before := o.Center().Sub(o.Position()).Len()

	o.Rotate(90)
	if o.Position() != (mgl32.Vec3{}) {
		t.Errorf("rotate moved position to %v", o.Position())
	}
	if got := o.Center().Sub(o.Position()).Len(); mgl32.Abs(got-before) > eps {
		t.Errorf("distance to position changed: %v -> %v", before, got)
	}
	if want := (mgl32.Vec3{0, 0, -1}); !vmath.ApproxEqual(o.Center(), want, eps) {
		t.Errorf("center = %v, want %v", o.Center(), want)
	}
}

func TestRotateWrapsAngle(t *testing.T) {
	tests := []struct {
		name  string
		steps []float32
		want  float32
	}{
		{"simple", []float32{10}, 10},
		{"past full turn", []float32{350, 20}, 10},
		{"negative", []float32{-90}, 270},
		{"exact turn", []float32{180, 180}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o := obj(KindNeutral)
			for _, s := range tt.steps {
				o.Rotate(s)
			}
			if mgl32.Abs(o.Angle()-tt.want) > eps {
				t.Errorf("angle = %v, want %v", o.Angle(), tt.want)
			}
			if o.Angle() < 0 || o.Angle() >= 360 {
				t.Errorf("angle %v outside [0,360)", o.Angle())
			}
		})
	}
}

func TestInteractDistance(t *testing.T) {
	tests := []struct {
		name string
		dist float32
		want bool
	}{
		{"overlapping", 0.5, true},
		{"inside shrunk reach", 1.59, true},
		{"just past shrunk reach", 1.61, false},
		{"touching spheres", 2, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := obj(KindEnemyProjectile)
			b := obj(KindEnemyProjectile)
			b.Translate(mgl32.Vec3{tt.dist, 0, 0})
			if got := Interact(a, b); got != tt.want {
				t.Fatalf("Interact = %v, want %v", got, tt.want)
			}
			if a.IsColliding() != tt.want || b.IsColliding() != tt.want {
				t.Errorf("colliding flags = %v/%v, want %v", a.IsColliding(), b.IsColliding(), tt.want)
			}
		})
	}
}

func TestInteractNeutralNeverCollides(t *testing.T) {
	a := obj(KindAvatar)
	n := obj(KindNeutral)
	if Interact(a, n) || Interact(n, a) {
		t.Fatal("neutral object collided")
	}
	if a.IsColliding() || n.IsColliding() {
		t.Error("neutral contact set colliding flags")
	}
}

func TestProjectileKillsEnemy(t *testing.T) {
	p := NewProjectile(unitMesh, nil, 0)
	e := NewEnemy(unitMesh, nil, 0, 1)
	if !Interact(p, e) {
		t.Fatal("expected contact")
	}
	if !p.IsDead() || !e.IsDead() {
		t.Errorf("dead = %v/%v, want both dead", p.IsDead(), e.IsDead())
	}
	if p.CollisionTime() != 0 {
		t.Errorf("collision time = %d, want reset to 0", p.CollisionTime())
	}
}

func TestProjectileWoundsTougherEnemy(t *testing.T) {
	p := NewProjectile(unitMesh, nil, 0)
	e := NewEnemy(unitMesh, nil, 0, 3)
	Interact(p, e)
	if e.IsDead() {
		t.Fatal("enemy with health 3 died from one hit")
	}
	if got := e.Enemy().Health; got != 2 {
		t.Errorf("health = %d, want 2", got)
	}
	if !p.IsDead() {
		t.Error("projectile survived the hit")
	}
}

func TestAvatarDiesOnEnemyContact(t *testing.T) {
	a := obj(KindAvatar)
	e := NewEnemy(unitMesh, nil, 0, 2)
	Interact(a, e)
	if !a.IsDead() {
		t.Error("avatar survived")
	}
	if e.IsDead() || e.Enemy().Health != 2 {
		t.Error("enemy was hurt by the avatar")
	}
}

func TestInteractIsSymmetricInOutcome(t *testing.T) {
	p := NewProjectile(unitMesh, nil, 0)
	e := NewEnemy(unitMesh, nil, 0, 2)
	if !Interact(p, e) {
		t.Fatal("expected contact")
	}
	// The reverse test sees the same contact but must not hit twice.
	Interact(e, p)
	if got := e.Enemy().Health; got != 1 {
		t.Errorf("health = %d, want 1", got)
	}
	if !e.IsColliding() || !p.IsColliding() {
		t.Error("colliding flags cleared")
	}
}

func TestEnemyKillCountsDown(t *testing.T) {
	const health = 4
	e := NewEnemy(unitMesh, nil, 1, health)
	for i := 1; i <= health; i++ {
		e.Kill()
		if dead := e.IsDead(); dead != (i == health) {
			t.Fatalf("after %d kills dead = %v", i, dead)
		}
	}
}

func TestSweepClearsContact(t *testing.T) {
	a := obj(KindEnemyProjectile)
	b := obj(KindEnemyProjectile)
	w := &fakeWorld{objects: []*Object{a, b}}
	a.Control(w, 1)
	if !a.IsColliding() || a.CollisionTime() != 1 {
		t.Fatalf("colliding=%v time=%d after first contact", a.IsColliding(), a.CollisionTime())
	}
	a.Control(w, 1)
	if a.CollisionTime() != 2 {
		t.Errorf("collision time = %d, want 2", a.CollisionTime())
	}
	b.Translate(mgl32.Vec3{10, 0, 0})
	a.Control(w, 1)
	if a.IsColliding() || a.CollisionTime() != 0 {
		t.Errorf("colliding=%v time=%d after separation", a.IsColliding(), a.CollisionTime())
	}
}

func TestEnemyWalksTowardAvatar(t *testing.T) {
	avatar := obj(KindAvatar)
	e := NewEnemy(unitMesh, nil, 0, 1)
	e.Translate(mgl32.Vec3{0, 0, 8})
	w := &fakeWorld{objects: []*Object{avatar, e}, avatar: avatar}

	// Phase starts at zero so the first bob is flat.
	e.Control(w, 1)
	if want := (mgl32.Vec3{0, 0, 8 - EnemySpeed}); !vmath.ApproxEqual(e.Center(), want, eps) {
		t.Errorf("center = %v, want %v", e.Center(), want)
	}
	for i := 0; i < 100; i++ {
		e.Control(w, 1)
	}
	if e.Center().Z() >= 8-EnemySpeed {
		t.Errorf("enemy did not advance: %v", e.Center())
	}
}

func TestEnemyWithoutAvatarStaysPut(t *testing.T) {
	e := NewEnemy(unitMesh, nil, 0, 1)
	e.Translate(mgl32.Vec3{3, 0, 0})
	e.Control(&fakeWorld{objects: []*Object{e}}, 1)
	if e.Center() != (mgl32.Vec3{3, 0, 0}) {
		t.Errorf("enemy moved to %v", e.Center())
	}
}

func TestProjectileHomesAlongAvatarToTarget(t *testing.T) {
	avatar := obj(KindAvatar)
	target := NewEnemy(unitMesh, nil, 2, 1)
	target.Translate(mgl32.Vec3{0, 0, -8})
	p := NewProjectile(unitMesh, nil, 2)
	w := &fakeWorld{
		objects: []*Object{p},
		avatar:  avatar,
		lanes:   map[int]*Object{2: target},
	}
	p.Control(w, 1)
	if got := p.Position(); !vmath.ApproxEqual(got, mgl32.Vec3{0, 0, -ProjectileStep}, eps) {
		t.Errorf("position = %v, want one step toward -z", got)
	}
	if l := p.Axis().Len(); mgl32.Abs(l-1) > eps {
		t.Errorf("axis length = %v, want 1", l)
	}
	if p.Angle() != ProjectileSpin {
		t.Errorf("angle = %v, want %v", p.Angle(), ProjectileSpin)
	}
}

func TestProjectileWithoutTargetIdles(t *testing.T) {
	p := NewProjectile(unitMesh, nil, 1)
	w := &fakeWorld{objects: []*Object{p}, avatar: obj(KindAvatar)}
	p.Control(w, 1)
	if p.Position() != (mgl32.Vec3{}) || p.Angle() != 0 {
		t.Errorf("projectile moved without a target: pos %v angle %v", p.Position(), p.Angle())
	}
}

func TestGroundAndSkyConstruction(t *testing.T) {
	g := NewGround(unitMesh, nil, mgl32.Vec3{0, 1, 0}, mgl32.Vec3{})
	if g.Shadow || g.Kind != KindNeutral {
		t.Error("ground should be neutral without a shadow")
	}
	if want := (mgl32.Vec3{0, -0.1, 0}); g.Position() != want {
		t.Errorf("ground position = %v, want %v", g.Position(), want)
	}

	s := NewSky(unitMesh, nil, mgl32.Vec3{0, 0, 1}, mgl32.Vec3{0, 50, 200}, mgl32.Vec3{1, 0, 0}, mgl32.Vec3{0, 0, 1})
	if s.Angle() != 270 {
		t.Errorf("sky angle = %v, want 270", s.Angle())
	}
	m := s.Model()
	if got := m.Col(3).Vec3(); got != (mgl32.Vec3{0, 50, 200}) {
		t.Errorf("sky translation = %v", got)
	}
}

func TestStore(t *testing.T) {
	s := NewStore()
	a, b, c := obj(KindEnemy), obj(KindEnemy), obj(KindEnemy)
	ida, idb, idc := s.Add(a), s.Add(b), s.Add(c)

	if s.Get(idb) != b {
		t.Fatal("Get did not resolve b")
	}
	if !s.Remove(idb) {
		t.Fatal("Remove(b) = false")
	}
	if s.Get(idb) != nil {
		t.Error("stale id resolved after removal")
	}
	if s.Remove(idb) {
		t.Error("second Remove(b) = true")
	}
	if got := s.Objects(); len(got) != 2 || got[0] != a || got[1] != c {
		t.Errorf("order not preserved: %v", got)
	}

	d := obj(KindEnemy)
	idd := s.Add(d)
	if idd.Index != idb.Index {
		t.Errorf("slot not reused: %v vs %v", idd, idb)
	}
	if s.Get(idb) != nil || s.Get(idd) != d {
		t.Error("generation check failed after reuse")
	}
	if s.Get(ida) != a || s.Get(idc) != c {
		t.Error("live ids stopped resolving")
	}
	if s.Get(ID{}) != nil {
		t.Error("zero id resolved")
	}
}

func TestStoreRemoveIf(t *testing.T) {
	s := NewStore()
	var objs []*Object
	for i := 0; i < 6; i++ {
		o := obj(KindEnemy)
		if i%2 == 0 {
			o.Kill()
		}
		objs = append(objs, o)
		s.Add(o)
	}
	removed := s.RemoveIf((*Object).IsDead)
	if len(removed) != 3 || s.Len() != 3 {
		t.Fatalf("removed %d, kept %d", len(removed), s.Len())
	}
	for i, o := range s.Objects() {
		if o != objs[2*i+1] {
			t.Errorf("active[%d] out of order", i)
		}
	}
}

func BenchmarkSweep(b *testing.B) {
	objects := make([]*Object, 64)
	for i := range objects {
		objects[i] = obj(KindEnemy).Translate(mgl32.Vec3{float32(i) * 3, 0, 0})
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		for _, o := range objects {
			Sweep(o, objects)
		}
	}
}
