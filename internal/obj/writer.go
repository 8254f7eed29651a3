package obj

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
)

// WriteTo serializes every owned mesh, in order, as the textual inverse of
// the parser: per mesh an o line, its v/vn/vt pools, and its faces with
// smoothing-group state lines emitted on change. Face indices are written
// back in the file's global 1-based convention using running per-attribute
// bases, so multi-mesh files round-trip. Coordinates use the shortest
// decimal form that re-parses to the identical float64.
func (f *File) WriteTo(w io.Writer) (int64, error) {
	cw := &countingWriter{w: w}
	bw := bufio.NewWriter(cw)

	var vBase, nBase, tBase int
	smoothing := -1
	for _, m := range f.meshes {
		if err := writeMesh(bw, m, vBase, nBase, tBase, &smoothing); err != nil {
			return cw.n, err
		}
		vBase += m.NumVertices()
		nBase += m.NumNormals()
		tBase += m.NumTexCoords()
	}
	if err := bw.Flush(); err != nil {
		return cw.n, fmt.Errorf("obj: write: %w: %w", ErrIO, err)
	}
	return cw.n, nil
}

func writeMesh(w *bufio.Writer, m *Mesh, vBase, nBase, tBase int, smoothing *int) error {
	fmt.Fprintf(w, "o %s\n", m.name)
	writePool(w, "v", m.geometry)
	writePool(w, "vn", m.normals)
	writePool(w, "vt", m.texcoords)

	for i, face := range m.faces {
		if face.SmoothingGroup != *smoothing {
			if face.SmoothingGroup < 0 {
				fmt.Fprintln(w, "s off")
			} else {
				fmt.Fprintf(w, "s %d\n", face.SmoothingGroup)
			}
			*smoothing = face.SmoothingGroup
		}
		w.WriteByte('f')
		for c := 0; c < 3; c++ {
			if face.Vert[c] < 0 {
				return fmt.Errorf("obj: mesh %q face %d corner %d has no vertex index: %w", m.name, i, c, ErrInvalidArgument)
			}
			w.WriteByte(' ')
			w.WriteString(strconv.Itoa(vBase + face.Vert[c] + 1))
			switch {
			case face.Texture[c] >= 0 && face.Normal[c] >= 0:
				fmt.Fprintf(w, "/%d/%d", tBase+face.Texture[c]+1, nBase+face.Normal[c]+1)
			case face.Normal[c] >= 0:
				fmt.Fprintf(w, "//%d", nBase+face.Normal[c]+1)
			case face.Texture[c] >= 0:
				fmt.Fprintf(w, "/%d", tBase+face.Texture[c]+1)
			}
		}
		w.WriteByte('\n')
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("obj: write: %w: %w", ErrIO, err)
	}
	return nil
}

func writePool(w *bufio.Writer, tag string, pool []float64) {
	for i := 0; i+2 < len(pool); i += 3 {
		w.WriteString(tag)
		for k := 0; k < 3; k++ {
			w.WriteByte(' ')
			w.WriteString(strconv.FormatFloat(pool[i+k], 'g', -1, 64))
		}
		w.WriteByte('\n')
	}
}

type countingWriter struct {
	w io.Writer
	n int64
}

func (c *countingWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.n += int64(n)
	return n, err
}
