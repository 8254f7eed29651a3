package obj

import (
	"fmt"
	"os"
)

// File owns the ordered list of meshes parsed from, or destined for, a
// single OBJ file. Meshes are exclusively owned: AddMesh stores a deep copy
// and MeshAt hands out the owned instance, which must not outlive the File.
//
// A File parses at most once; Read into a non-empty File fails with
// ErrInvalidContext.
type File struct {
	meshes []*Mesh
}

// NewFile returns an empty collection.
func NewFile() *File {
	return &File{}
}

// Open parses the OBJ file at path into a new collection.
func Open(path string) (*File, error) {
	f := NewFile()
	if err := f.ReadFile(path); err != nil {
		return nil, err
	}
	return f, nil
}

// NumMeshes returns the number of owned meshes.
func (f *File) NumMeshes() int { return len(f.meshes) }

// MeshAt returns the mesh at index in file order.
func (f *File) MeshAt(index int) (*Mesh, error) {
	if index < 0 || index >= len(f.meshes) {
		return nil, fmt.Errorf("obj: mesh index %d outside [0,%d): %w", index, len(f.meshes), ErrOutOfRange)
	}
	return f.meshes[index], nil
}

// AddMesh appends a deep copy of m to the collection.
func (f *File) AddMesh(m *Mesh) {
	f.meshes = append(f.meshes, m.Clone())
}

// ReadFile parses the OBJ file at path into the collection.
func (f *File) ReadFile(path string) error {
	if len(f.meshes) > 0 {
		return fmt.Errorf("obj: collection already holds %d meshes: %w", len(f.meshes), ErrInvalidContext)
	}
	r, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("obj: open %s: %w: %w", path, ErrIO, err)
	}
	defer r.Close()
	return f.Read(r)
}

// WriteFile serializes every owned mesh, in order, to path. The collection
// is not mutated.
func (f *File) WriteFile(path string) error {
	w, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("obj: create %s: %w: %w", path, ErrIO, err)
	}
	if _, err := f.WriteTo(w); err != nil {
		w.Close()
		return err
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("obj: close %s: %w: %w", path, ErrIO, err)
	}
	return nil
}
