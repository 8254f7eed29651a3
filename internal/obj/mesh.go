package obj

import (
	"fmt"
	"slices"
)

// Face holds index triples for one triangle. Indices are 0-based positions
// into the owning mesh's vertex/normal/texcoord pools (vertex index i selects
// geometry[i*3 .. i*3+2]); -1 means the corner carries no such attribute.
type Face struct {
	Vert    [3]int
	Normal  [3]int
	Texture [3]int

	// SmoothingGroup identifies the face's smoothing group, -1 means none.
	SmoothingGroup int
}

// Mesh holds geometry for one named object within an OBJ file. The three
// attribute pools are flat coordinate lists: geometry and normals hold X,Y,Z
// triples, texcoords hold U,V,W triples (W stored even when the file omits
// it). Pool lengths are always multiples of 3; the bulk mutators enforce
// this. Face index validity against pool sizes is the caller's business
// until export, which fails fast on the first bad index.
//
// A Mesh is not safe for concurrent mutation.
type Mesh struct {
	name      string
	geometry  []float64
	normals   []float64
	texcoords []float64
	faces     []Face
}

// NewMesh returns an empty mesh with the given display name.
func NewMesh(name string) *Mesh {
	return &Mesh{name: name}
}

// Clone returns a deep copy sharing no storage with the original.
func (m *Mesh) Clone() *Mesh {
	c := &Mesh{
		name:      m.name,
		geometry:  slices.Clone(m.geometry),
		normals:   slices.Clone(m.normals),
		texcoords: slices.Clone(m.texcoords),
		faces:     slices.Clone(m.faces),
	}
	return c
}

// Name returns the mesh's display name.
func (m *Mesh) Name() string { return m.name }

// SetName replaces the mesh's display name.
func (m *Mesh) SetName(name string) { m.name = name }

// checkTriples rejects bulk data that is not a whole number of X,Y,Z triples.
func checkTriples(what string, data []float64) error {
	if len(data)%3 != 0 {
		return fmt.Errorf("obj: %s length %d is not a multiple of 3: %w", what, len(data), ErrInvalidArgument)
	}
	return nil
}

// SetGeometry replaces all vertex positions. The data length must be a
// multiple of 3; the input is copied.
func (m *Mesh) SetGeometry(data []float64) error {
	if err := checkTriples("geometry", data); err != nil {
		return err
	}
	m.geometry = slices.Clone(data)
	return nil
}

// AddGeometry appends vertex positions. The data length must be a multiple
// of 3.
func (m *Mesh) AddGeometry(data []float64) error {
	if err := checkTriples("geometry", data); err != nil {
		return err
	}
	m.geometry = append(m.geometry, data...)
	return nil
}

// SetNormals replaces all normal vectors. The data length must be a multiple
// of 3; the input is copied.
func (m *Mesh) SetNormals(data []float64) error {
	if err := checkTriples("normals", data); err != nil {
		return err
	}
	m.normals = slices.Clone(data)
	return nil
}

// AddNormals appends normal vectors. The data length must be a multiple of 3.
func (m *Mesh) AddNormals(data []float64) error {
	if err := checkTriples("normals", data); err != nil {
		return err
	}
	m.normals = append(m.normals, data...)
	return nil
}

// SetTexCoords replaces all texture coordinates (U,V,W triples). The data
// length must be a multiple of 3; the input is copied.
func (m *Mesh) SetTexCoords(data []float64) error {
	if err := checkTriples("texcoords", data); err != nil {
		return err
	}
	m.texcoords = slices.Clone(data)
	return nil
}

// AddTexCoords appends texture coordinates. The data length must be a
// multiple of 3.
func (m *Mesh) AddTexCoords(data []float64) error {
	if err := checkTriples("texcoords", data); err != nil {
		return err
	}
	m.texcoords = append(m.texcoords, data...)
	return nil
}

// SetFaces replaces all faces. Indices are stored verbatim, unvalidated.
func (m *Mesh) SetFaces(data []Face) {
	m.faces = slices.Clone(data)
}

// AddFaces appends faces verbatim.
func (m *Mesh) AddFaces(data ...Face) {
	m.faces = append(m.faces, data...)
}

// ClearGeometry removes all vertex positions.
func (m *Mesh) ClearGeometry() { m.geometry = nil }

// ClearNormals removes all normal vectors.
func (m *Mesh) ClearNormals() { m.normals = nil }

// ClearTexCoords removes all texture coordinates.
func (m *Mesh) ClearTexCoords() { m.texcoords = nil }

// ClearFaces removes all faces.
func (m *Mesh) ClearFaces() { m.faces = nil }

// NumVertices returns the number of stored vertex positions.
func (m *Mesh) NumVertices() int { return len(m.geometry) / 3 }

// NumNormals returns the number of stored normal vectors.
func (m *Mesh) NumNormals() int { return len(m.normals) / 3 }

// NumTexCoords returns the number of stored texture coordinates.
func (m *Mesh) NumTexCoords() int { return len(m.texcoords) / 3 }

// NumFaces returns the number of stored faces.
func (m *Mesh) NumFaces() int { return len(m.faces) }

func component(what string, pool []float64, index, off int) (float64, error) {
	if index < 0 || index*3 >= len(pool) {
		return 0, fmt.Errorf("obj: %s index %d outside [0,%d): %w", what, index, len(pool)/3, ErrOutOfRange)
	}
	return pool[index*3+off], nil
}

// VertexX returns the X coordinate of vertex index.
func (m *Mesh) VertexX(index int) (float64, error) { return component("vertex", m.geometry, index, 0) }

// VertexY returns the Y coordinate of vertex index.
func (m *Mesh) VertexY(index int) (float64, error) { return component("vertex", m.geometry, index, 1) }

// VertexZ returns the Z coordinate of vertex index.
func (m *Mesh) VertexZ(index int) (float64, error) { return component("vertex", m.geometry, index, 2) }

// NormalX returns the X component of normal index.
func (m *Mesh) NormalX(index int) (float64, error) { return component("normal", m.normals, index, 0) }

// NormalY returns the Y component of normal index.
func (m *Mesh) NormalY(index int) (float64, error) { return component("normal", m.normals, index, 1) }

// NormalZ returns the Z component of normal index.
func (m *Mesh) NormalZ(index int) (float64, error) { return component("normal", m.normals, index, 2) }

// TexCoordX returns the U component of texture coordinate index.
func (m *Mesh) TexCoordX(index int) (float64, error) {
	return component("texcoord", m.texcoords, index, 0)
}

// TexCoordY returns the V component of texture coordinate index.
func (m *Mesh) TexCoordY(index int) (float64, error) {
	return component("texcoord", m.texcoords, index, 1)
}

// TexCoordZ returns the W component of texture coordinate index.
func (m *Mesh) TexCoordZ(index int) (float64, error) {
	return component("texcoord", m.texcoords, index, 2)
}

// FaceAt returns face index.
func (m *Mesh) FaceAt(index int) (Face, error) {
	if index < 0 || index >= len(m.faces) {
		return Face{}, fmt.Errorf("obj: face index %d outside [0,%d): %w", index, len(m.faces), ErrOutOfRange)
	}
	return m.faces[index], nil
}
