package main

import (
	"fmt"
	"os"

	"objkit/internal/obj"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, "usage: objinspect <file.obj> [...]")
		os.Exit(1)
	}

	exit := 0
	for _, arg := range os.Args[1:] {
		f, err := obj.Open(arg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Parse error %s: %v\n", arg, err)
			exit = 1
			continue
		}
		fmt.Printf("\n=== %s (meshes=%d) ===\n", arg, f.NumMeshes())
		for i := 0; i < f.NumMeshes(); i++ {
			m, err := f.MeshAt(i)
			if err != nil {
				fmt.Fprintf(os.Stderr, "  mesh %d: %v\n", i, err)
				exit = 1
				continue
			}
			fmt.Printf("  Mesh[%d] %s: verts=%d normals=%d texcoords=%d faces=%d\n",
				i, m.Name(), m.NumVertices(), m.NumNormals(), m.NumTexCoords(), m.NumFaces())
			if min, max, ok := m.Bounds(); ok {
				center, _ := m.Center()
				fmt.Printf("    bounds x=[%g..%g] y=[%g..%g] z=[%g..%g] center=(%g,%g,%g)\n",
					min[0], max[0], min[1], max[1], min[2], max[2],
					center[0], center[1], center[2])
			}
		}
	}
	os.Exit(exit)
}
