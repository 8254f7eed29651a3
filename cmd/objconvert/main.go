package main

import (
	"flag"
	"fmt"
	"os"

	"objkit/internal/obj"
)

func main() {
	scale := flag.Float64("scale", 1, "Multiply all vertex positions by this factor")
	out := flag.String("o", "", "Output path (required)")
	flag.Parse()

	if flag.NArg() != 1 || *out == "" {
		fmt.Fprintln(os.Stderr, "usage: objconvert [-scale N] -o <out.obj> <in.obj>")
		os.Exit(1)
	}
	in := flag.Arg(0)

	src, err := obj.Open(in)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Parse error %s: %v\n", in, err)
		os.Exit(1)
	}

	dst := obj.NewFile()
	for i := 0; i < src.NumMeshes(); i++ {
		m, err := src.MeshAt(i)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		geom, normals, tex, faces := m.Indexed(*scale)
		conv := obj.NewMesh(m.Name())
		err = conv.SetGeometry(geom)
		if err == nil {
			err = conv.SetNormals(normals)
		}
		if err == nil {
			err = conv.SetTexCoords(tex)
		}
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		conv.SetFaces(faces)
		dst.AddMesh(conv)
	}

	if err := dst.WriteFile(*out); err != nil {
		fmt.Fprintf(os.Stderr, "Write error %s: %v\n", *out, err)
		os.Exit(1)
	}
	fmt.Printf("%s: %d meshes written to %s\n", in, dst.NumMeshes(), *out)
}
