package asset

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/go-gl/mathgl/mgl32"
)

// FloatsPerVertex is the stride of Mesh.Vertices: position(3) normal(3) uv(2).
const FloatsPerVertex = 8

// Mesh is immutable geometry shared by every object that draws it.
type Mesh struct {
	Name string
	// Positions are the raw model-space vertices, used for bounding spheres.
	Positions []mgl32.Vec3
	// Vertices is a triangle list interleaved as FloatsPerVertex floats.
	Vertices []float32
}

// NewMesh builds a mesh from positions alone. Used for procedural geometry and
// tests; Vertices stays empty until triangles are appended.
func NewMesh(name string, positions []mgl32.Vec3) *Mesh {
	return &Mesh{Name: name, Positions: positions}
}

// VertexCount returns the number of triangle-list vertices.
func (m *Mesh) VertexCount() int {
	return len(m.Vertices) / FloatsPerVertex
}

// BoundingSphere returns the centroid of the positions and the largest distance from
// it to any position.
func (m *Mesh) BoundingSphere() (center mgl32.Vec3, radius float32) {
	if len(m.Positions) == 0 {
		return center, 0
	}
	for _, p := range m.Positions {
		center = center.Add(p)
	}
	center = center.Mul(1 / float32(len(m.Positions)))
	for _, p := range m.Positions {
		if d := p.Sub(center).Len(); d > radius {
			radius = d
		}
	}
	return center, radius
}

// LoadMesh reads a Wavefront OBJ file.
func LoadMesh(path string) (*Mesh, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &LoadError{Kind: KindMesh, Path: path, Err: err}
	}
	defer f.Close()

	m, err := ParseOBJ(f, path)
	if err != nil {
		return nil, &LoadError{Kind: KindMesh, Path: path, Err: err}
	}
	return m, nil
}

type corner struct {
	pos, uv, normal int // -1 when absent
}

// ParseOBJ reads positions, texture coordinates, normals and polygonal faces.
// Faces with up to five corners are fanned into triangles; faces without normals
// get a flat face normal.
func ParseOBJ(r io.Reader, name string) (*Mesh, error) {
	var (
		positions []mgl32.Vec3
		uvs       []mgl32.Vec2
		normals   []mgl32.Vec3
		faces     [][]corner
	)

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	line := 0
	for sc.Scan() {
		line++
		fields := strings.Fields(sc.Text())
		if len(fields) == 0 || strings.HasPrefix(fields[0], "#") {
			continue
		}
		switch fields[0] {
		case "v":
			v, err := parseFloats(fields[1:], 3)
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", line, err)
			}
			positions = append(positions, mgl32.Vec3{v[0], v[1], v[2]})
		case "vt":
			v, err := parseFloats(fields[1:], 2)
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", line, err)
			}
			uvs = append(uvs, mgl32.Vec2{v[0], v[1]})
		case "vn":
			v, err := parseFloats(fields[1:], 3)
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", line, err)
			}
			normals = append(normals, mgl32.Vec3{v[0], v[1], v[2]})
		case "f":
			if len(fields) < 4 || len(fields) > 6 {
				return nil, fmt.Errorf("line %d: face with %d corners", line, len(fields)-1)
			}
			face := make([]corner, 0, len(fields)-1)
			for _, tok := range fields[1:] {
				c, err := parseCorner(tok, len(positions), len(uvs), len(normals))
				if err != nil {
					return nil, fmt.Errorf("line %d: %w", line, err)
				}
				face = append(face, c)
			}
			faces = append(faces, face)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	if len(positions) == 0 {
		return nil, fmt.Errorf("no vertices")
	}

	m := &Mesh{Name: name, Positions: positions}
	for _, face := range faces {
		for i := 1; i+1 < len(face); i++ {
			tri := [3]corner{face[0], face[i], face[i+1]}
			flat := faceNormal(positions[tri[0].pos], positions[tri[1].pos], positions[tri[2].pos])
			for _, c := range tri {
				p := positions[c.pos]
				n := flat
				if c.normal >= 0 {
					n = normals[c.normal]
				}
				var uv mgl32.Vec2
				if c.uv >= 0 {
					uv = uvs[c.uv]
				}
				m.Vertices = append(m.Vertices, p[0], p[1], p[2], n[0], n[1], n[2], uv[0], uv[1])
			}
		}
	}
	return m, nil
}

func parseFloats(fields []string, n int) ([]float32, error) {
	if len(fields) < n {
		return nil, fmt.Errorf("expected %d components, got %d", n, len(fields))
	}
	out := make([]float32, n)
	for i := 0; i < n; i++ {
		f, err := strconv.ParseFloat(fields[i], 32)
		if err != nil {
			return nil, err
		}
		out[i] = float32(f)
	}
	return out, nil
}

func parseCorner(tok string, nPos, nUV, nNormal int) (corner, error) {
	parts := strings.Split(tok, "/")
	c := corner{pos: -1, uv: -1, normal: -1}
	var err error
	if c.pos, err = resolveIndex(parts[0], nPos); err != nil || c.pos < 0 {
		return c, fmt.Errorf("bad vertex index %q", tok)
	}
	if len(parts) > 1 && parts[1] != "" {
		if c.uv, err = resolveIndex(parts[1], nUV); err != nil {
			return c, fmt.Errorf("bad texcoord index %q", tok)
		}
	}
	if len(parts) > 2 && parts[2] != "" {
		if c.normal, err = resolveIndex(parts[2], nNormal); err != nil {
			return c, fmt.Errorf("bad normal index %q", tok)
		}
	}
	return c, nil
}

// resolveIndex converts a 1-based (or negative, relative) OBJ index to 0-based.
func resolveIndex(s string, count int) (int, error) {
	i, err := strconv.Atoi(s)
	if err != nil {
		return -1, err
	}
	if i < 0 {
		i = count + i
	} else {
		i--
	}
	if i < 0 || i >= count {
		return -1, fmt.Errorf("index %s out of range (%d)", s, count)
	}
	return i, nil
}

func faceNormal(a, b, c mgl32.Vec3) mgl32.Vec3 {
	n := b.Sub(a).Cross(c.Sub(a))
	if l := n.Len(); l > 0 {
		return n.Mul(1 / l)
	}
	return mgl32.Vec3{0, 1, 0}
}
