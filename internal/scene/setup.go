package scene

import (
	"log"

	"typer3d/internal/asset"
	"typer3d/internal/camera"
	"typer3d/internal/entity"
	"typer3d/internal/input"
	"typer3d/internal/light"
	"typer3d/internal/vmath"

	"github.com/go-gl/mathgl/mgl32"
)

type assets struct {
	plane, avatar, enemy, pedestal, gate, mountain, fireball *asset.Mesh

	lava, avatarSkin, enemySkin, stone, gateStone, fire, sky *asset.Material
}

func resolveAssets(lib *asset.Library) (assets, error) {
	var a assets
	meshes := []struct {
		name string
		dst  **asset.Mesh
	}{
		{asset.MeshPlane, &a.plane},
		{asset.MeshAvatar, &a.avatar},
		{asset.MeshEnemy, &a.enemy},
		{asset.MeshPedestal, &a.pedestal},
		{asset.MeshGate, &a.gate},
		{asset.MeshMountain, &a.mountain},
		{asset.MeshFireball, &a.fireball},
	}
	for _, m := range meshes {
		mesh, err := lib.Mesh(m.name)
		if err != nil {
			return a, err
		}
		*m.dst = mesh
	}
	materials := []struct {
		name string
		dst  **asset.Material
	}{
		{asset.MaterialLava, &a.lava},
		{asset.MaterialAvatar, &a.avatarSkin},
		{asset.MaterialEnemy, &a.enemySkin},
		{asset.MaterialStone, &a.stone},
		{asset.MaterialGate, &a.gateStone},
		{asset.MaterialFire, &a.fire},
		{asset.MaterialSky, &a.sky},
	}
	for _, m := range materials {
		mat, err := lib.Material(m.name)
		if err != nil {
			return a, err
		}
		*m.dst = mat
	}
	return a, nil
}

// Initialize builds the lights and the static scenery, then resets the dynamic state.
// It fails with an *asset.LoadError when the library lacks a required asset.
func (s *Scene) Initialize() error {
	a, err := resolveAssets(s.lib)
	if err != nil {
		return err
	}
	s.assets = a

	s.lights = []light.Source{
		light.NewDirectional(mgl32.Vec3{1, 1, -1}, mgl32.Vec3{1, 0.5, 1}),
		&light.Point{Pos: mgl32.Vec3{-1, -1, 1}, Power: mgl32.Vec3{0.2, 0.1, 0.1}},
	}

	s.ground = entity.NewGround(a.plane, a.stone, mgl32.Vec3{0, 1, 0}, mgl32.Vec3{})
	s.store.Add(s.ground)
	s.addSky()
	s.addScenery()

	log.Printf("scene: %d static objects", s.store.Len())
	s.Reset()
	return nil
}

func (s *Scene) addSky() {
	panels := []struct {
		pos, axis1, axis2 mgl32.Vec3
	}{
		{mgl32.Vec3{0, 50, 200}, mgl32.Vec3{1, 0, 0}, mgl32.Vec3{0, 0, 1}},
		{mgl32.Vec3{200, 50, 0}, mgl32.Vec3{0, 0, 1}, mgl32.Vec3{}},
		{mgl32.Vec3{0, 50, -200}, mgl32.Vec3{-1, 0, 0}, mgl32.Vec3{0, 0, 1}},
		{mgl32.Vec3{-200, 50, 0}, mgl32.Vec3{0, 0, -1}, mgl32.Vec3{}},
	}
	for _, p := range panels {
		s.store.Add(entity.NewSky(s.assets.plane, s.assets.sky, mgl32.Vec3{0, 0, -1}, p.pos, p.axis1, p.axis2))
	}
}

// Each of the four lanes gets a mountain range on the horizon, an archway and a
// pair of pedestals flanking the lane.
func (s *Scene) addScenery() {
	a := s.assets
	mountain := func(at mgl32.Vec3) {
		s.store.Add(entity.NewMeshInstance(a.mountain, a.lava, entity.KindNeutral).
			SetShadow(false).
			Translate(at).
			Scale(mgl32.Vec3{0.000003, 0.000004, 0.000003}))
	}
	arch := func(at mgl32.Vec3, deg float32) {
		s.store.Add(entity.NewMeshInstance(a.gate, a.gateStone, entity.KindNeutral).
			Translate(at).
			Rotate(deg))
	}
	pedestal := func(at mgl32.Vec3) {
		s.store.Add(entity.NewMeshInstance(a.pedestal, a.gateStone, entity.KindNeutral).
			Translate(at).
			Scale(mgl32.Vec3{0.4, 0.5, 0.4}))
	}

	mountain(mgl32.Vec3{0, -10, 100})
	arch(mgl32.Vec3{3.3, 0, 18}, 90)
	pedestal(mgl32.Vec3{5, 0, 7})
	pedestal(mgl32.Vec3{-5, 0, 7})

	mountain(mgl32.Vec3{-100, -10, 0})
	arch(mgl32.Vec3{-5, 0, -3.3}, 180)
	pedestal(mgl32.Vec3{-7, 0, 5})
	pedestal(mgl32.Vec3{-7, 0, -5})

	mountain(mgl32.Vec3{0, -10, -100})
	arch(mgl32.Vec3{3.3, 0, -4.8}, 90)
	pedestal(mgl32.Vec3{5, 0, -7})
	pedestal(mgl32.Vec3{-5, 0, -7})

	mountain(mgl32.Vec3{100, -10, 0})
	arch(mgl32.Vec3{5, 0, 3.3}, 0)
	pedestal(mgl32.Vec3{7, 0, 5})
	pedestal(mgl32.Vec3{7, 0, -5})
}

// Reset clears every dynamic object and starts a fresh, paused round. Static
// scenery is kept.
func (s *Scene) Reset() {
	s.store.RemoveIf(func(o *entity.Object) bool { return o.Kind.Dynamic() })

	s.lane = 0
	for i := range s.laneWords {
		s.laneWords[i] = ""
		s.typed[i] = 0
		s.laneTarget[i] = nil
	}
	s.f1Latch, s.f2Latch, s.pauseLatch = input.Latch{}, input.Latch{}, input.Latch{}
	s.noClip = false
	s.gameOver = false
	s.paused = true
	s.level = 1
	s.elapsed = 0

	avatar := entity.NewMeshInstance(s.assets.avatar, s.assets.avatarSkin, entity.KindAvatar).
		Scale(vmath.Splat(0.008)).
		Translate(mgl32.Vec3{0, 0, 1}).
		Rotate(10)
	s.avatar = s.store.Add(avatar)

	sens := s.camera.Sensitivity
	s.camera = camera.New()
	s.camera.Sensitivity = sens
	s.camera.SetAspect(s.aspect)
}
