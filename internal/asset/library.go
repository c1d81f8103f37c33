package asset

import (
	"log"
	"path/filepath"
	"runtime"
	"sort"
)

// Names of the assets the scene builds from.
const (
	MeshPlane    = "plane"
	MeshAvatar   = "avatar"
	MeshEnemy    = "enemy"
	MeshPedestal = "pedestal"
	MeshGate     = "gate"
	MeshMountain = "mountain"
	MeshFireball = "fireball"

	MaterialLava   = "lava"
	MaterialAvatar = "avatar"
	MaterialEnemy  = "enemy"
	MaterialStone  = "stone"
	MaterialGate   = "gate"
	MaterialFire   = "fire"
	MaterialGrass  = "grass"
	MaterialSky    = "sky"
)

// Manifest maps asset names to files relative to an asset directory.
type Manifest struct {
	Meshes    map[string]string `yaml:"meshes"`
	Materials map[string]string `yaml:"materials"`
}

// DefaultManifest lists the files the game ships with.
func DefaultManifest() Manifest {
	return Manifest{
		Meshes: map[string]string{
			MeshPlane:    "plane.obj",
			MeshAvatar:   "mario_obj.obj",
			MeshEnemy:    "boo-body.obj",
			MeshPedestal: "Pedestal.obj",
			MeshGate:     "gate.obj",
			MeshMountain: "mountain.obj",
			MeshFireball: "fireball.obj",
		},
		Materials: map[string]string{
			MaterialLava:   "lava.png",
			MaterialAvatar: "marioD.jpg",
			MaterialEnemy:  "boo-body-white.png",
			MaterialStone:  "stone.png",
			MaterialGate:   "gate.bmp",
			MaterialFire:   "fire.jpeg",
			MaterialGrass:  "grass.jpg",
			MaterialSky:    "sky.jpg",
		},
	}
}

// Library holds meshes and materials by name. Entries are loaded once and shared
// read-only by every object that references them.
type Library struct {
	meshes    map[string]*Mesh
	materials map[string]*Material
}

// NewLibrary creates an empty library.
func NewLibrary() *Library {
	return &Library{
		meshes:    make(map[string]*Mesh),
		materials: make(map[string]*Material),
	}
}

// LoadWorkers bounds how many files LoadLibrary decodes at once.
var LoadWorkers = min(runtime.NumCPU(), 4)

// LoadLibrary loads every manifest entry from dir and fails on the first asset,
// in name order, that is missing or malformed.
func LoadLibrary(dir string, man Manifest) (*Library, error) {
	total := len(man.Meshes) + len(man.Materials)
	pool := NewWorkerPool(LoadWorkers, total)
	defer pool.Shutdown()

	results := make(chan LoadResult, total)
	meshNames := sortedKeys(man.Meshes)
	for _, name := range meshNames {
		pool.Submit(LoadJob{Kind: KindMesh, Name: name, Path: filepath.Join(dir, man.Meshes[name]), ResultChan: results})
	}
	matNames := sortedKeys(man.Materials)
	for _, name := range matNames {
		pool.Submit(LoadJob{Kind: KindTexture, Name: name, Path: filepath.Join(dir, man.Materials[name]), ResultChan: results})
	}

	meshes := make(map[string]LoadResult, len(man.Meshes))
	textures := make(map[string]LoadResult, len(man.Materials))
	for range total {
		r := <-results
		if r.Kind == KindMesh {
			meshes[r.Name] = r
		} else {
			textures[r.Name] = r
		}
	}

	lib := NewLibrary()
	for _, name := range meshNames {
		r := meshes[name]
		if r.Err != nil {
			return nil, r.Err
		}
		lib.AddMesh(name, r.Mesh)
	}
	for _, name := range matNames {
		r := textures[name]
		if r.Err != nil {
			return nil, r.Err
		}
		lib.AddMaterial(name, NewTexturedMaterial(name, r.Texture, FilterLinear))
	}
	log.Printf("Loaded %d meshes and %d materials from %s", len(lib.meshes), len(lib.materials), dir)
	return lib, nil
}

// AddMesh registers m under name, replacing any previous entry.
func (l *Library) AddMesh(name string, m *Mesh) {
	l.meshes[name] = m
}

// AddMaterial registers m under name, replacing any previous entry.
func (l *Library) AddMaterial(name string, m *Material) {
	l.materials[name] = m
}

// Mesh returns the mesh registered under name.
func (l *Library) Mesh(name string) (*Mesh, error) {
	m, ok := l.meshes[name]
	if !ok {
		return nil, &LoadError{Kind: KindMesh, Path: name, Err: ErrNotFound}
	}
	return m, nil
}

// Material returns the material registered under name.
func (l *Library) Material(name string) (*Material, error) {
	m, ok := l.materials[name]
	if !ok {
		return nil, &LoadError{Kind: KindMaterial, Path: name, Err: ErrNotFound}
	}
	return m, nil
}

// Meshes returns all registered meshes keyed by name.
func (l *Library) Meshes() map[string]*Mesh {
	return l.meshes
}

// Materials returns all registered materials keyed by name.
func (l *Library) Materials() map[string]*Material {
	return l.materials
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
