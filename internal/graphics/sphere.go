package graphics

import "github.com/chewxy/math32"

// SphereLines returns a unit sphere outline as three great circles (XY, YZ, XZ)
// of n segments each, as a GL_LINES list of xyz triples.
func SphereLines(n int) []float32 {
	out := make([]float32, 0, 3*n*2*3)
	point := func(plane int, a float32) [3]float32 {
		s, c := math32.Sin(a), math32.Cos(a)
		switch plane {
		case 0:
			return [3]float32{c, s, 0}
		case 1:
			return [3]float32{0, c, s}
		}
		return [3]float32{c, 0, s}
	}
	step := 2 * math32.Pi / float32(n)
	for plane := 0; plane < 3; plane++ {
		for i := 0; i < n; i++ {
			p0 := point(plane, float32(i)*step)
			p1 := point(plane, float32(i+1)*step)
			out = append(out, p0[:]...)
			out = append(out, p1[:]...)
		}
	}
	return out
}
