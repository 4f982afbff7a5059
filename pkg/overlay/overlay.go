// Package overlay renders detection debug overlays onto camera snapshots
// and handles snapshot image I/O, including WebP.
package overlay

import (
	"fmt"
	"image"
	"image/color"
	"math"
	"os"
	"strings"

	"github.com/chai2010/webp"
	"github.com/disintegration/imaging"
	_ "golang.org/x/image/webp"

	"github.com/menta2k/vision-target/pkg/types"
)

// Renderer draws resolved targets over camera snapshots.
type Renderer struct{}

// NewRenderer creates a new overlay renderer.
func NewRenderer() *Renderer {
	return &Renderer{}
}

// LoadImage loads a camera snapshot from a file path with WebP support.
func (r *Renderer) LoadImage(path string) (image.Image, error) {
	// Try imaging.Open (registered decoders)
	if img, err := imaging.Open(path); err == nil {
		return img, nil
	}

	// Fallback: explicit WebP decode
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	if img, err := webp.Decode(f); err == nil {
		return img, nil
	}
	if _, err := f.Seek(0, 0); err == nil {
		if img, _, err := image.Decode(f); err == nil {
			return img, nil
		}
	}
	return nil, fmt.Errorf("image: unknown format for %s", path)
}

// SaveImage saves an image to a file with the specified format and quality.
func (r *Renderer) SaveImage(img image.Image, path, format string, quality int, lossless bool) error {
	switch strings.ToLower(format) {
	case "webp":
		f, err := os.Create(path)
		if err != nil {
			return err
		}
		defer f.Close()
		opts := &webp.Options{Lossless: lossless, Quality: float32(quality)}
		return webp.Encode(f, img, opts)
	case "png":
		return imaging.Save(img, path)
	default: // jpg/jpeg
		return imaging.Save(img, path, imaging.JPEGQuality(quality))
	}
}

// goalColor maps a goal type to its overlay color: gold for the gear peg,
// magenta for the high goal, gray when the classification is unknown.
func goalColor(goal types.GoalType) color.NRGBA {
	switch goal {
	case types.GoalGear:
		return color.NRGBA{255, 204, 0, 255}
	case types.GoalHighGoal:
		return color.NRGBA{255, 0, 255, 255}
	default:
		return color.NRGBA{160, 160, 160, 255}
	}
}

// CreateOverlay draws the candidate boxes, the resolved target and the
// frame center onto a copy of the snapshot:
//
//   - candidate boxes in green
//   - the union rectangle in the goal type's color
//   - a crosshair at the target center in red
//   - a small marker at the frame center in blue
//
// When target.HasTarget is false only the candidates and the frame center
// are drawn. The snapshot itself is never modified.
func (r *Renderer) CreateOverlay(img image.Image, candidates []types.Box, target types.Target) image.Image {
	nrgba := imaging.Clone(img)
	w := nrgba.Bounds().Dx()
	h := nrgba.Bounds().Dy()

	green := color.NRGBA{0, 255, 0, 255}
	red := color.NRGBA{255, 0, 0, 255}
	blue := color.NRGBA{0, 170, 255, 255}
	stroke := int(math.Max(2, 0.004*float64(minInt(w, h)))) // ~0.4% of min side
	cross := int(math.Max(4, 0.01*float64(minInt(w, h))))   // ~1% of min side

	for _, c := range candidates {
		drawBox(nrgba, c, green, stroke)
	}

	if target.HasTarget {
		drawBox(nrgba, target.Box, goalColor(target.Goal), stroke)

		px := round(target.CenterX)
		py := round(target.CenterY)
		drawHLine(nrgba, py, px-cross, px+cross, red)
		drawVLine(nrgba, px, py-cross, py+cross, red)
	}

	// Frame center marker
	ix, iy := w/2, h/2
	drawHLine(nrgba, iy, ix-6, ix+6, blue)
	drawVLine(nrgba, ix, iy-6, iy+6, blue)

	return nrgba
}

func round(v float64) int {
	return int(v + 0.5)
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func boxToPixels(box types.Box) (int, int, int, int) {
	x0 := round(box.X)
	y0 := round(box.Y)
	x1 := round(box.Right())
	y1 := round(box.Bottom())
	if x1 <= x0 {
		x1 = x0 + 1
	}
	if y1 <= y0 {
		y1 = y0 + 1
	}
	return x0, y0, x1, y1
}

func drawBox(img *image.NRGBA, box types.Box, c color.NRGBA, stroke int) {
	x0, y0, x1, y1 := boxToPixels(box)
	for s := 0; s < stroke; s++ {
		drawHLine(img, y0+s, x0, x1, c)
		drawHLine(img, y1-1-s, x0, x1, c)
		drawVLine(img, x0+s, y0, y1, c)
		drawVLine(img, x1-1-s, y0, y1, c)
	}
}

func drawHLine(img *image.NRGBA, y, x0, x1 int, c color.NRGBA) {
	if y < 0 || y >= img.Bounds().Dy() {
		return
	}
	if x0 > x1 {
		x0, x1 = x1, x0
	}
	if x1 <= 0 || x0 >= img.Bounds().Dx() {
		return
	}
	if x0 < 0 {
		x0 = 0
	}
	if x1 > img.Bounds().Dx() {
		x1 = img.Bounds().Dx()
	}
	i := y*img.Stride + x0*4
	for x := x0; x < x1; x++ {
		img.Pix[i+0] = c.R
		img.Pix[i+1] = c.G
		img.Pix[i+2] = c.B
		img.Pix[i+3] = c.A
		i += 4
	}
}

func drawVLine(img *image.NRGBA, x, y0, y1 int, c color.NRGBA) {
	if x < 0 || x >= img.Bounds().Dx() {
		return
	}
	if y0 > y1 {
		y0, y1 = y1, y0
	}
	if y1 <= 0 || y0 >= img.Bounds().Dy() {
		return
	}
	if y0 < 0 {
		y0 = 0
	}
	if y1 > img.Bounds().Dy() {
		y1 = img.Bounds().Dy()
	}
	i := y0*img.Stride + x*4
	for y := y0; y < y1; y++ {
		img.Pix[i+0] = c.R
		img.Pix[i+1] = c.G
		img.Pix[i+2] = c.B
		img.Pix[i+3] = c.A
		i += img.Stride
	}
}
