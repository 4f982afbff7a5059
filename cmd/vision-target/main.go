package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	visiontarget "github.com/menta2k/vision-target"
	"github.com/menta2k/vision-target/internal/config"
	"github.com/menta2k/vision-target/internal/utils"
	"github.com/menta2k/vision-target/pkg/types"
)

// frameDump is the JSON shape produced by the upstream detection stage:
// one candidate box list per processed camera frame.
type frameDump struct {
	Frames []frame `json:"frames"`
}

type frame struct {
	Boxes []types.Box `json:"boxes"`
}

// frameResult pairs a frame index with its resolved target for the output
// file consumed by downstream tooling.
type frameResult struct {
	Frame          int          `json:"frame"`
	Target         types.Target `json:"target"`
	DistanceInches *float64     `json:"distance_inches,omitempty"`
}

func main() {
	var in, cfgPath, outDir, snapshot string
	var debug bool

	flag.StringVar(&in, "frames", "", "frame dump JSON with candidate boxes per frame")
	flag.StringVar(&cfgPath, "config", "", "config JSON path (defaults used when empty)")
	flag.StringVar(&outDir, "out", "", "output directory (overrides config)")
	flag.StringVar(&snapshot, "snapshot", "", "camera snapshot image for debug overlays (jpg/png/webp)")
	flag.BoolVar(&debug, "debug", false, "write a debug overlay image per frame (requires -snapshot)")
	flag.Parse()

	if in == "" {
		log.Fatalf("usage: %s -frames frames.json [-config config.json] [-out outdir] [-snapshot frame.png -debug]",
			filepath.Base(os.Args[0]))
	}
	if !utils.IsFrameDumpFile(in) {
		log.Fatalf("frame dump must be a .json file, got %s", in)
	}

	cfg := config.Default()
	if cfgPath != "" {
		var err error
		cfg, err = config.LoadFromFile(cfgPath)
		if err != nil {
			log.Fatal(err)
		}
	}
	if outDir != "" {
		cfg.Output.Dir = outDir
	}
	if err := cfg.Validate(); err != nil {
		log.Fatal(err)
	}

	vt, err := visiontarget.NewWithConfig(cfg.CameraConfig())
	if err != nil {
		log.Fatal(err)
	}

	dump, err := readFrameDump(in)
	if err != nil {
		log.Fatal(err)
	}
	if err := utils.EnsureDir(cfg.Output.Dir); err != nil {
		log.Fatal(err)
	}

	results := make([]frameResult, 0, len(dump.Frames))
	for i, f := range dump.Frames {
		target, err := vt.Resolve(f.Boxes)
		if err != nil {
			// Per-frame inputs are independent; a rejected frame is
			// skipped, not fatal.
			log.Printf("frame %03d: skipped: %v", i, err)
			continue
		}

		result := frameResult{Frame: i, Target: target}
		if target.HasTarget {
			if dist, err := vt.DistanceInches(target.Goal, target.Box.Width); err == nil {
				result.DistanceInches = &dist
				log.Printf("frame %03d: goal=%s center=%.1f,%.1f bearing=%.2f deg distance=%.1f in",
					i, target.Goal, target.CenterX, target.CenterY, target.BearingDegrees, dist)
			} else {
				log.Printf("frame %03d: goal=%s center=%.1f,%.1f bearing=%.2f deg",
					i, target.Goal, target.CenterX, target.CenterY, target.BearingDegrees)
			}
		} else {
			log.Printf("frame %03d: no target", i)
		}
		results = append(results, result)
	}

	targetsPath := filepath.Join(cfg.Output.Dir, cfg.Output.TargetsFile)
	js, err := json.MarshalIndent(results, "", "  ")
	if err != nil {
		log.Fatal(err)
	}
	if err := os.WriteFile(targetsPath, js, 0o644); err != nil {
		log.Fatal(err)
	}
	log.Printf("wrote %s", targetsPath)

	if debug {
		if snapshot == "" {
			log.Fatal("-debug requires -snapshot")
		}
		if !utils.IsImageFile(snapshot) {
			log.Fatalf("snapshot must be a jpg/png/webp image, got %s", snapshot)
		}
		if !utils.FileExists(snapshot) {
			log.Fatalf("snapshot not found: %s", snapshot)
		}
		writeOverlays(vt, cfg, dump, results, snapshot)
	}
}

func readFrameDump(path string) (*frameDump, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read frame dump: %w", err)
	}

	var dump frameDump
	if err := json.Unmarshal(data, &dump); err != nil {
		return nil, fmt.Errorf("failed to parse frame dump: %w", err)
	}
	return &dump, nil
}

func writeOverlays(vt *visiontarget.TargetResolver, cfg *config.Config, dump *frameDump, results []frameResult, snapshot string) {
	img, err := vt.LoadImage(snapshot)
	if err != nil {
		log.Fatal(err)
	}

	for _, result := range results {
		overlayImg := vt.CreateOverlay(img, dump.Frames[result.Frame].Boxes, result.Target)
		path := utils.GenerateOverlayFilename(cfg.Output.Dir, result.Frame, cfg.Overlay.Format)
		if err := vt.SaveImage(overlayImg, path, cfg.Overlay.Format, cfg.Overlay.Quality, cfg.Overlay.Lossless); err != nil {
			log.Printf("overlay save %s failed: %v", path, err)
			continue
		}
		log.Printf("wrote %s", path)
	}
}
