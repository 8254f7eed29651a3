package batch

import (
	"os"
	"path/filepath"
	"testing"

	"objkit/internal/obj"
)

const sampleOBJ = `o Tri
v 0 0 0
v 1 0 0
v 0 1 0
f 1 2 3
`

func writeSample(t *testing.T, dir, rel string) {
	t.Helper()
	path := filepath.Join(dir, rel)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(sampleOBJ), 0644); err != nil {
		t.Fatal(err)
	}
}

func TestDiscover(t *testing.T) {
	dir := t.TempDir()
	writeSample(t, dir, "a.obj")
	writeSample(t, dir, filepath.Join("sub", "b.OBJ"))
	if err := os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}

	files, err := Discover(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(files) != 2 {
		t.Fatalf("Discover found %d files, want 2: %v", len(files), files)
	}
}

func TestRunConvertsAndScales(t *testing.T) {
	in := t.TempDir()
	out := t.TempDir()
	writeSample(t, in, "tri.obj")

	results := Run(Config{InputDir: in, OutputDir: out, Scale: 2, Workers: 2}, []string{"tri.obj"})
	if len(results) != 1 {
		t.Fatalf("got %d results", len(results))
	}
	r := results[0]
	if !r.Success {
		t.Fatalf("conversion failed: %s", r.Error)
	}
	if r.Meshes != 1 || r.Faces != 1 {
		t.Errorf("result = %+v", r)
	}

	f, err := obj.Open(filepath.Join(out, "tri.obj"))
	if err != nil {
		t.Fatal(err)
	}
	m, err := f.MeshAt(0)
	if err != nil {
		t.Fatal(err)
	}
	x, err := m.VertexX(1)
	if err != nil {
		t.Fatal(err)
	}
	if x != 2 {
		t.Errorf("scaled VertexX(1) = %v, want 2", x)
	}
}

func TestRunFlatten(t *testing.T) {
	in := t.TempDir()
	out := t.TempDir()
	writeSample(t, in, "tri.obj")

	results := Run(Config{InputDir: in, OutputDir: out, Scale: 1, Flatten: true, Workers: 1}, []string{"tri.obj"})
	if !results[0].Success {
		t.Fatalf("flatten run failed: %s", results[0].Error)
	}

	f, err := obj.Open(filepath.Join(out, "tri.obj"))
	if err != nil {
		t.Fatal(err)
	}
	m, err := f.MeshAt(0)
	if err != nil {
		t.Fatal(err)
	}
	if m.NumVertices() != 3 || m.NumFaces() != 1 {
		t.Errorf("flattened tri counts v=%d f=%d", m.NumVertices(), m.NumFaces())
	}
}

func TestRunReportsParseFailure(t *testing.T) {
	in := t.TempDir()
	out := t.TempDir()
	if err := os.WriteFile(filepath.Join(in, "bad.obj"), []byte("o X\nv 1 1\n"), 0644); err != nil {
		t.Fatal(err)
	}

	results := Run(Config{InputDir: in, OutputDir: out, Scale: 1, Workers: 1}, []string{"bad.obj"})
	if results[0].Success || results[0].Error == "" {
		t.Fatalf("expected failure result, got %+v", results[0])
	}
}

func TestWriteManifest(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "manifest.json")
	if err := WriteManifest(path, []Result{{File: "a.obj", Meshes: 1, Faces: 2, Success: true}}); err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if len(data) == 0 {
		t.Fatal("empty manifest")
	}
}
