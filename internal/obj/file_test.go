package obj

import (
	"errors"
	"path/filepath"
	"strings"
	"testing"
)

func TestParseOnce(t *testing.T) {
	f := parseString(t, "o A\nv 0 0 0\n")
	err := f.Read(strings.NewReader("o B\nv 1 1 1\n"))
	if !errors.Is(err, ErrInvalidContext) {
		t.Fatalf("second Read = %v, want ErrInvalidContext", err)
	}
	if f.NumMeshes() != 1 {
		t.Fatalf("NumMeshes = %d after refused re-parse, want 1", f.NumMeshes())
	}
	m := firstMesh(t, f)
	if m.Name() != "A" || m.NumVertices() != 1 {
		t.Error("refused re-parse must leave existing meshes untouched")
	}
}

func TestMeshAtOutOfRange(t *testing.T) {
	f := NewFile()
	for _, i := range []int{-1, 0, 3} {
		if _, err := f.MeshAt(i); !errors.Is(err, ErrOutOfRange) {
			t.Errorf("MeshAt(%d) = %v, want ErrOutOfRange", i, err)
		}
	}
}

func TestAddMeshDeepCopies(t *testing.T) {
	f := NewFile()
	m := NewMesh("src")
	if err := m.SetGeometry([]float64{1, 2, 3}); err != nil {
		t.Fatal(err)
	}
	f.AddMesh(m)

	m.SetName("mutated")
	if err := m.AddGeometry([]float64{4, 5, 6}); err != nil {
		t.Fatal(err)
	}

	got := firstMesh(t, f)
	if got.Name() != "src" || got.NumVertices() != 1 {
		t.Error("AddMesh must store an independent copy")
	}
}

func TestOpenMissingFile(t *testing.T) {
	_, err := Open(filepath.Join(t.TempDir(), "nope.obj"))
	if !errors.Is(err, ErrIO) {
		t.Fatalf("Open(missing) = %v, want ErrIO", err)
	}
}

func TestWriteFileUnwritablePath(t *testing.T) {
	f := NewFile()
	err := f.WriteFile(filepath.Join(t.TempDir(), "no", "such", "dir", "out.obj"))
	if !errors.Is(err, ErrIO) {
		t.Fatalf("WriteFile(bad path) = %v, want ErrIO", err)
	}
}

func TestRoundTrip(t *testing.T) {
	src := `o First
v 0 0 0
v 1 0 0
v 0 1 0
vt 0 0
vt 1 0
vt 0 1
vn 0 0 1
s 1
f 1/1/1 2/2/1 3/3/1
s off
f 3//1 2//1 1//1
o Second
v 0 0 5
v 1 0 5
v 0 1 5
f 4 5 6
f -1 -2 -3
`
	orig := parseString(t, src)

	path := filepath.Join(t.TempDir(), "roundtrip.obj")
	if err := orig.WriteFile(path); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	again, err := Open(path)
	if err != nil {
		t.Fatalf("re-open: %v", err)
	}

	if again.NumMeshes() != orig.NumMeshes() {
		t.Fatalf("NumMeshes = %d, want %d", again.NumMeshes(), orig.NumMeshes())
	}
	for i := 0; i < orig.NumMeshes(); i++ {
		a, _ := orig.MeshAt(i)
		b, _ := again.MeshAt(i)
		if a.Name() != b.Name() {
			t.Errorf("mesh %d name %q != %q", i, b.Name(), a.Name())
		}
		if a.NumVertices() != b.NumVertices() || a.NumNormals() != b.NumNormals() ||
			a.NumTexCoords() != b.NumTexCoords() || a.NumFaces() != b.NumFaces() {
			t.Errorf("mesh %d counts differ: %d/%d/%d/%d vs %d/%d/%d/%d", i,
				a.NumVertices(), a.NumNormals(), a.NumTexCoords(), a.NumFaces(),
				b.NumVertices(), b.NumNormals(), b.NumTexCoords(), b.NumFaces())
			continue
		}
		for j := 0; j < a.NumFaces(); j++ {
			fa, _ := a.FaceAt(j)
			fb, _ := b.FaceAt(j)
			if fa != fb {
				t.Errorf("mesh %d face %d: %+v != %+v", i, j, fb, fa)
			}
		}
		for j := 0; j < a.NumVertices(); j++ {
			va, _ := a.Vertex(j)
			vb, _ := b.Vertex(j)
			if va != vb {
				t.Errorf("mesh %d vertex %d: %v != %v", i, j, vb, va)
			}
		}
	}
}

func TestRoundTripExactFloats(t *testing.T) {
	f := NewFile()
	m := NewMesh("precise")
	vals := []float64{0.1, 1.0 / 3.0, -2.5e-17}
	if err := m.SetGeometry(vals); err != nil {
		t.Fatal(err)
	}
	f.AddMesh(m)

	path := filepath.Join(t.TempDir(), "precise.obj")
	if err := f.WriteFile(path); err != nil {
		t.Fatal(err)
	}
	again, err := Open(path)
	if err != nil {
		t.Fatal(err)
	}
	got := firstMesh(t, again)
	for i, want := range vals {
		if v := got.geometry[i]; v != want {
			t.Errorf("coordinate %d = %v, want exactly %v", i, v, want)
		}
	}
}

func TestWriteToForm(t *testing.T) {
	f := NewFile()
	m := NewMesh("Tri")
	if err := m.SetGeometry([]float64{0, 0, 0, 1, 0, 0, 0, 1, 0}); err != nil {
		t.Fatal(err)
	}
	m.SetFaces([]Face{{Vert: [3]int{0, 1, 2}, Normal: [3]int{-1, -1, -1}, Texture: [3]int{-1, -1, -1}, SmoothingGroup: -1}})
	f.AddMesh(m)

	var sb strings.Builder
	n, err := f.WriteTo(&sb)
	if err != nil {
		t.Fatal(err)
	}
	out := sb.String()
	if int64(len(out)) != n {
		t.Errorf("WriteTo returned %d, wrote %d bytes", n, len(out))
	}
	want := "o Tri\nv 0 0 0\nv 1 0 0\nv 0 1 0\nf 1 2 3\n"
	if out != want {
		t.Errorf("WriteTo output:\n%s\nwant:\n%s", out, want)
	}
}

func TestWriteFaceWithoutVertexIndex(t *testing.T) {
	f := NewFile()
	m := NewMesh("Broken")
	if err := m.SetGeometry([]float64{0, 0, 0}); err != nil {
		t.Fatal(err)
	}
	m.SetFaces([]Face{{Vert: [3]int{0, -1, 0}, Normal: [3]int{-1, -1, -1}, Texture: [3]int{-1, -1, -1}, SmoothingGroup: -1}})
	f.AddMesh(m)

	var sb strings.Builder
	if _, err := f.WriteTo(&sb); !errors.Is(err, ErrInvalidArgument) {
		t.Fatalf("WriteTo = %v, want ErrInvalidArgument", err)
	}
}
