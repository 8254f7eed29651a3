package obj

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// DefaultMeshName names the implicit mesh that receives geometry appearing
// before any o/g marker.
const DefaultMeshName = "default"

// parser tracks the single streaming pass over an OBJ source. The file
// format keeps one global 1-based pool per attribute; meshes in this package
// keep local pools, so each o/g marker snapshots the running global counts
// as the new mesh's base offsets and face indices are rebased against them.
type parser struct {
	file *File
	cur  *Mesh
	line int

	// running global counts across all meshes parsed so far
	vCount, nCount, tCount int

	// global counts at the moment cur started
	vBase, nBase, tBase int

	smoothing int
}

// Read parses an OBJ stream into the collection. Parsing is one-shot: a
// collection that already holds meshes fails with ErrInvalidContext and is
// left untouched. On any other error the collection may hold partial data
// and should be discarded.
func (f *File) Read(r io.Reader) error {
	if len(f.meshes) > 0 {
		return fmt.Errorf("obj: collection already holds %d meshes: %w", len(f.meshes), ErrInvalidContext)
	}
	p := &parser{file: f, smoothing: -1}

	sc := bufio.NewScanner(r)
	for sc.Scan() {
		p.line++
		if err := p.parseLine(strings.TrimSpace(sc.Text())); err != nil {
			return err
		}
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("obj: read: %w: %w", ErrIO, err)
	}
	return nil
}

func (p *parser) parseLine(line string) error {
	if line == "" || line[0] == '#' {
		return nil
	}
	fields := strings.Fields(line)
	switch fields[0] {
	case "o", "g":
		name := ""
		if len(fields) > 1 {
			name = strings.Join(fields[1:], " ")
		}
		p.startMesh(name)
	case "v":
		return p.parseTriple(fields[1:], 3, &p.vCount, (*Mesh).AddGeometry)
	case "vn":
		return p.parseTriple(fields[1:], 3, &p.nCount, (*Mesh).AddNormals)
	case "vt":
		// w is optional and defaults to 0
		return p.parseTriple(fields[1:], 2, &p.tCount, (*Mesh).AddTexCoords)
	case "s":
		return p.parseSmoothing(fields[1:])
	case "f":
		return p.parseFace(fields[1:])
	default:
		// unknown tags are tolerated for forward compatibility
	}
	return nil
}

func (p *parser) startMesh(name string) {
	m := NewMesh(name)
	p.file.meshes = append(p.file.meshes, m)
	p.cur = m
	p.vBase, p.nBase, p.tBase = p.vCount, p.nCount, p.tCount
}

// mesh returns the current mesh, starting the implicit one if the file
// declares geometry before any o/g marker.
func (p *parser) mesh() *Mesh {
	if p.cur == nil {
		p.startMesh(DefaultMeshName)
	}
	return p.cur
}

func (p *parser) parseTriple(fields []string, minFields int, count *int, add func(*Mesh, []float64) error) error {
	if len(fields) < minFields || len(fields) > 3 {
		return fmt.Errorf("obj: line %d: bad coordinate count %d: %w", p.line, len(fields), ErrInvalidArgument)
	}
	v := [3]float64{}
	for i, s := range fields {
		x, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return fmt.Errorf("obj: line %d: bad coordinate %q: %w", p.line, s, ErrInvalidArgument)
		}
		v[i] = x
	}
	if err := add(p.mesh(), v[:]); err != nil {
		return err
	}
	*count++
	return nil
}

func (p *parser) parseSmoothing(fields []string) error {
	if len(fields) != 1 {
		return fmt.Errorf("obj: line %d: malformed smoothing group: %w", p.line, ErrInvalidArgument)
	}
	if fields[0] == "off" || fields[0] == "0" {
		p.smoothing = -1
		return nil
	}
	g, err := strconv.Atoi(fields[0])
	if err != nil || g < 0 {
		return fmt.Errorf("obj: line %d: bad smoothing group %q: %w", p.line, fields[0], ErrInvalidArgument)
	}
	p.smoothing = g
	return nil
}

func (p *parser) parseFace(fields []string) error {
	if len(fields) != 3 {
		return fmt.Errorf("obj: line %d: face has %d corners, only triangles are supported: %w", p.line, len(fields), ErrInvalidArgument)
	}
	p.mesh() // a face may legally be the first line of the implicit mesh

	f := Face{SmoothingGroup: p.smoothing}
	for i, corner := range fields {
		parts := strings.Split(corner, "/")
		if len(parts) > 3 {
			return fmt.Errorf("obj: line %d: malformed face corner %q: %w", p.line, corner, ErrInvalidArgument)
		}
		vi, err := p.resolveIndex(parts[0], p.vCount, p.vBase, false)
		if err != nil {
			return err
		}
		f.Vert[i] = vi

		f.Texture[i] = -1
		if len(parts) > 1 {
			ti, err := p.resolveIndex(parts[1], p.tCount, p.tBase, true)
			if err != nil {
				return err
			}
			f.Texture[i] = ti
		}

		f.Normal[i] = -1
		if len(parts) > 2 {
			ni, err := p.resolveIndex(parts[2], p.nCount, p.nBase, true)
			if err != nil {
				return err
			}
			f.Normal[i] = ni
		}
	}
	p.cur.AddFaces(f)
	return nil
}

// resolveIndex converts one face index from the file's global convention
// (1-based, negative means relative to the current pool end) to a 0-based
// index local to the current mesh. An empty string is the absent middle of
// a v//n corner and maps to -1 when optional.
func (p *parser) resolveIndex(s string, count, base int, optional bool) (int, error) {
	if s == "" {
		if optional {
			return -1, nil
		}
		return 0, fmt.Errorf("obj: line %d: face corner missing vertex index: %w", p.line, ErrInvalidArgument)
	}
	idx, err := strconv.Atoi(s)
	if err != nil || idx == 0 {
		return 0, fmt.Errorf("obj: line %d: bad face index %q: %w", p.line, s, ErrInvalidArgument)
	}
	var global int
	if idx < 0 {
		global = count + idx
	} else {
		global = idx - 1
	}
	if global >= count {
		return 0, fmt.Errorf("obj: line %d: face index %d past end of pool (%d entries): %w", p.line, idx, count, ErrInvalidArgument)
	}
	local := global - base
	if local < 0 {
		return 0, fmt.Errorf("obj: line %d: face index %d references data from a previous mesh: %w", p.line, idx, ErrInvalidArgument)
	}
	return local, nil
}
