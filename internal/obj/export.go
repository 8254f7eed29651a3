package obj

import (
	"fmt"
	"math"
	"slices"

	"github.com/go-gl/mathgl/mgl64"
	"golang.org/x/image/math/f64"
)

// Vertex returns vertex index as an X,Y,Z vector.
func (m *Mesh) Vertex(index int) (f64.Vec3, error) {
	return triple("vertex", m.geometry, index)
}

// NormalAt returns normal index as an X,Y,Z vector.
func (m *Mesh) NormalAt(index int) (f64.Vec3, error) {
	return triple("normal", m.normals, index)
}

// TexCoordAt returns texture coordinate index as a U,V,W vector.
func (m *Mesh) TexCoordAt(index int) (f64.Vec3, error) {
	return triple("texcoord", m.texcoords, index)
}

func triple(what string, pool []float64, index int) (f64.Vec3, error) {
	if index < 0 || index*3 >= len(pool) {
		return f64.Vec3{}, fmt.Errorf("obj: %s index %d outside [0,%d): %w", what, index, len(pool)/3, ErrOutOfRange)
	}
	return f64.Vec3{pool[index*3], pool[index*3+1], pool[index*3+2]}, nil
}

// Indexed returns the mesh's attribute streams in indexed form: fresh copies
// of the geometry (each coordinate multiplied by scale), normal, and texcoord
// pools, plus the face list with indices unchanged. Callers that need only
// some of the streams drop the rest.
func (m *Mesh) Indexed(scale float64) (geom, normals, tex []float64, faces []Face) {
	geom = make([]float64, len(m.geometry))
	for i, v := range m.geometry {
		geom[i] = v * scale
	}
	return geom, slices.Clone(m.normals), slices.Clone(m.texcoords), slices.Clone(m.faces)
}

// Unindexed returns the mesh flattened to one attribute triple per face
// corner: for every face, the position, normal, and texcoord referenced by
// each of its three corners are copied out in order, so each returned stream
// holds exactly NumFaces()*9 values. Shared vertices are duplicated across
// faces; consumers restricted to a single index per corner need this layout.
// Scale multiplies positions only.
//
// A corner index of -1 (attribute absent in the source file) yields a zero
// triple for that attribute. An index at or past the end of its pool fails
// with ErrOutOfRange.
func (m *Mesh) Unindexed(scale float64) (geom, normals, tex []float64, err error) {
	n := len(m.faces) * 9
	geom = make([]float64, 0, n)
	normals = make([]float64, 0, n)
	tex = make([]float64, 0, n)

	for fi, f := range m.faces {
		for c := 0; c < 3; c++ {
			geom, err = appendCorner(geom, m.geometry, f.Vert[c], scale)
			if err != nil {
				return nil, nil, nil, fmt.Errorf("obj: face %d vertex: %w", fi, err)
			}
			normals, err = appendCorner(normals, m.normals, f.Normal[c], 1)
			if err != nil {
				return nil, nil, nil, fmt.Errorf("obj: face %d normal: %w", fi, err)
			}
			tex, err = appendCorner(tex, m.texcoords, f.Texture[c], 1)
			if err != nil {
				return nil, nil, nil, fmt.Errorf("obj: face %d texcoord: %w", fi, err)
			}
		}
	}
	return geom, normals, tex, nil
}

func appendCorner(dst, pool []float64, index int, scale float64) ([]float64, error) {
	if index < 0 {
		return append(dst, 0, 0, 0), nil
	}
	if index*3+3 > len(pool) {
		return nil, fmt.Errorf("index %d outside [0,%d): %w", index, len(pool)/3, ErrOutOfRange)
	}
	return append(dst, pool[index*3]*scale, pool[index*3+1]*scale, pool[index*3+2]*scale), nil
}

// Flattened returns a new mesh rebuilt from the unindexed export: every face
// corner gets its own attribute entries, with sequential indices. Corners
// that carried no normal or texcoord keep -1 (their slots in the expanded
// pools hold zeros and stay unreferenced). Scale multiplies positions only.
func (m *Mesh) Flattened(scale float64) (*Mesh, error) {
	geom, normals, tex, err := m.Unindexed(scale)
	if err != nil {
		return nil, err
	}
	out := NewMesh(m.name)
	if err := out.SetGeometry(geom); err != nil {
		return nil, err
	}
	if m.NumNormals() > 0 {
		if err := out.SetNormals(normals); err != nil {
			return nil, err
		}
	}
	if m.NumTexCoords() > 0 {
		if err := out.SetTexCoords(tex); err != nil {
			return nil, err
		}
	}
	faces := make([]Face, len(m.faces))
	for i, src := range m.faces {
		faces[i].SmoothingGroup = src.SmoothingGroup
		for c := 0; c < 3; c++ {
			idx := i*3 + c
			faces[i].Vert[c] = idx
			faces[i].Normal[c] = -1
			if src.Normal[c] >= 0 {
				faces[i].Normal[c] = idx
			}
			faces[i].Texture[c] = -1
			if src.Texture[c] >= 0 {
				faces[i].Texture[c] = idx
			}
		}
	}
	out.SetFaces(faces)
	return out, nil
}

// Bounds returns the axis-aligned bounding box of the raw (unscaled) vertex
// positions. ok is false when the mesh has no geometry.
func (m *Mesh) Bounds() (min, max mgl64.Vec3, ok bool) {
	if len(m.geometry) == 0 {
		return mgl64.Vec3{}, mgl64.Vec3{}, false
	}
	min = mgl64.Vec3{math.Inf(1), math.Inf(1), math.Inf(1)}
	max = mgl64.Vec3{math.Inf(-1), math.Inf(-1), math.Inf(-1)}
	for i := 0; i+2 < len(m.geometry); i += 3 {
		for k := 0; k < 3; k++ {
			v := m.geometry[i+k]
			if v < min[k] {
				min[k] = v
			}
			if v > max[k] {
				max[k] = v
			}
		}
	}
	return min, max, true
}

// Center returns the midpoint of Bounds. ok is false when the mesh has no
// geometry.
func (m *Mesh) Center() (mgl64.Vec3, bool) {
	min, max, ok := m.Bounds()
	if !ok {
		return mgl64.Vec3{}, false
	}
	return min.Add(max).Mul(0.5), true
}
