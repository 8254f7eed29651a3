package main

import (
	"flag"
	"fmt"
	"os"

	"objkit/internal/obj"
)

// objflatten rewrites an OBJ file with one vertex per face corner, for
// consumers that cannot index position, normal, and texcoord independently.
func main() {
	scale := flag.Float64("scale", 1, "Multiply all vertex positions by this factor")
	out := flag.String("o", "", "Output path (required)")
	flag.Parse()

	if flag.NArg() != 1 || *out == "" {
		fmt.Fprintln(os.Stderr, "usage: objflatten [-scale N] -o <out.obj> <in.obj>")
		os.Exit(1)
	}
	in := flag.Arg(0)

	src, err := obj.Open(in)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Parse error %s: %v\n", in, err)
		os.Exit(1)
	}

	dst := obj.NewFile()
	before, after := 0, 0
	for i := 0; i < src.NumMeshes(); i++ {
		m, err := src.MeshAt(i)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		flat, err := m.Flattened(*scale)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Flatten error in mesh %s: %v\n", m.Name(), err)
			os.Exit(1)
		}
		before += m.NumVertices()
		after += flat.NumVertices()
		dst.AddMesh(flat)
	}

	if err := dst.WriteFile(*out); err != nil {
		fmt.Fprintf(os.Stderr, "Write error %s: %v\n", *out, err)
		os.Exit(1)
	}
	fmt.Printf("%s: %d shared vertices expanded to %d, written to %s\n", in, before, after, *out)
}
