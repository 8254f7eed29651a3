package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"objkit/internal/batch"
	"objkit/internal/config"
)

func main() {
	// CLI flags
	configFile := flag.String("config", "", "Path to config.json file")
	inputDir := flag.String("input", "", "Directory to scan for .obj files")
	outputDir := flag.String("output", "", "Output directory (default: <input>/converted)")
	scale := flag.Float64("scale", 0, "Scale factor for vertex positions (default: 1)")
	flatten := flag.Bool("flatten", false, "Expand shared vertices to one per face corner")
	workers := flag.Int("workers", 0, "Number of worker goroutines (default: NumCPU)")

	flag.Parse()

	// Load config
	var cfg config.Config
	if *configFile != "" {
		var err error
		cfg, err = config.Load(*configFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
	}

	// CLI flags override config file
	cfg.Resolve(config.Flags{
		InputDir:  *inputDir,
		OutputDir: *outputDir,
		Scale:     *scale,
		Flatten:   *flatten,
		Workers:   *workers,
	})

	files, err := batch.Discover(cfg.InputDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error scanning %s: %v\n", cfg.InputDir, err)
		os.Exit(1)
	}
	if len(files) == 0 {
		fmt.Fprintf(os.Stderr, "No .obj files under %s\n", cfg.InputDir)
		os.Exit(1)
	}

	fmt.Printf("Converting %d files with %d workers (scale=%g flatten=%v)\n",
		len(files), cfg.Workers, cfg.Scale, cfg.Flatten)

	start := time.Now()
	results := batch.Run(batch.Config{
		InputDir:  cfg.InputDir,
		OutputDir: cfg.OutputDir,
		Scale:     cfg.Scale,
		Flatten:   cfg.Flatten,
		Workers:   cfg.Workers,
	}, files)

	ok, failed := 0, 0
	for _, r := range results {
		if r.Success {
			ok++
		} else {
			failed++
			fmt.Fprintf(os.Stderr, "  FAIL %s: %s\n", r.File, r.Error)
		}
	}

	manifest := filepath.Join(cfg.OutputDir, "manifest.json")
	if err := batch.WriteManifest(manifest, results); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing manifest: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Done in %s: %d converted, %d failed, manifest at %s\n",
		time.Since(start).Round(time.Millisecond), ok, failed, manifest)
	if failed > 0 {
		os.Exit(1)
	}
}
