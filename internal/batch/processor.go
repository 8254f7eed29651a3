package batch

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"objkit/internal/obj"
)

// Config holds all shared settings for a batch run.
type Config struct {
	InputDir  string
	OutputDir string
	Scale     float64
	Flatten   bool
	Workers   int
}

// Result holds the outcome of processing one file.
type Result struct {
	File    string `json:"file"`
	Meshes  int    `json:"meshes"`
	Faces   int    `json:"faces"`
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
}

// Discover walks dir and returns the relative paths of all .obj files.
func Discover(dir string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.EqualFold(filepath.Ext(path), ".obj") {
			return nil
		}
		rel, err := filepath.Rel(dir, path)
		if err != nil {
			return err
		}
		files = append(files, rel)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("batch: scan %s: %w", dir, err)
	}
	return files, nil
}

// Run converts all files using a worker pool.
func Run(cfg Config, files []string) []Result {
	if cfg.Workers <= 0 {
		cfg.Workers = 1
	}
	total := len(files)
	results := make([]Result, total)
	var processed atomic.Int64

	start := time.Now()

	// Progress reporter
	done := make(chan struct{})
	go func() {
		ticker := time.NewTicker(2 * time.Second)
		defer ticker.Stop()
		for {
			select {
			case <-done:
				return
			case <-ticker.C:
				p := processed.Load()
				if p > 0 {
					elapsed := time.Since(start).Seconds()
					rate := float64(p) / elapsed
					fmt.Printf("  [%d/%d] %.1f files/sec\n", p, total, rate)
				}
			}
		}
	}()

	// Worker pool
	fileChan := make(chan int, cfg.Workers*2)
	var wg sync.WaitGroup

	for w := 0; w < cfg.Workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range fileChan {
				results[idx] = processFile(cfg, files[idx])
				processed.Add(1)
			}
		}()
	}

	// Send work
	for i := range files {
		fileChan <- i
	}
	close(fileChan)

	wg.Wait()
	close(done)

	return results
}

func processFile(cfg Config, rel string) Result {
	res := Result{File: rel}

	src, err := obj.Open(filepath.Join(cfg.InputDir, rel))
	if err != nil {
		res.Error = err.Error()
		return res
	}

	out := obj.NewFile()
	for i := 0; i < src.NumMeshes(); i++ {
		m, err := src.MeshAt(i)
		if err != nil {
			res.Error = err.Error()
			return res
		}
		conv, err := convertMesh(m, cfg)
		if err != nil {
			res.Error = err.Error()
			return res
		}
		out.AddMesh(conv)
		res.Faces += conv.NumFaces()
	}
	res.Meshes = out.NumMeshes()

	outPath := filepath.Join(cfg.OutputDir, rel)
	if err := os.MkdirAll(filepath.Dir(outPath), 0755); err != nil {
		res.Error = err.Error()
		return res
	}
	if err := out.WriteFile(outPath); err != nil {
		res.Error = err.Error()
		return res
	}

	res.Success = true
	return res
}

// convertMesh applies the configured scale and optional flattening.
func convertMesh(m *obj.Mesh, cfg Config) (*obj.Mesh, error) {
	if cfg.Flatten {
		return m.Flattened(cfg.Scale)
	}
	if cfg.Scale == 1 {
		return m, nil
	}
	geom, normals, tex, faces := m.Indexed(cfg.Scale)
	conv := obj.NewMesh(m.Name())
	if err := conv.SetGeometry(geom); err != nil {
		return nil, err
	}
	if err := conv.SetNormals(normals); err != nil {
		return nil, err
	}
	if err := conv.SetTexCoords(tex); err != nil {
		return nil, err
	}
	conv.SetFaces(faces)
	return conv, nil
}
