// Package diagram renders attack masks as board images for docs and
// debugging.
package diagram

import (
	"bufio"
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"

	svg "github.com/ajstarks/svgo"
	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
	xdraw "golang.org/x/image/draw"

	"github.com/hailam/attacktables"
)

const (
	defaultSize = 256
	renderScale = 3 // Render at 3x resolution for sharp scaling
)

// Theme defines the color scheme for rendered boards.
type Theme struct {
	LightSquare color.RGBA
	DarkSquare  color.RGBA
	MarkColor   color.RGBA // squares set in the mask
	SourceColor color.RGBA // highlighted source and target squares
	LabelColor  color.RGBA // coordinate labels
}

// DefaultTheme returns the default color theme.
func DefaultTheme() *Theme {
	return &Theme{
		LightSquare: color.RGBA{240, 217, 181, 255}, // Tan
		DarkSquare:  color.RGBA{181, 136, 99, 255},  // Brown
		MarkColor:   color.RGBA{130, 151, 105, 200}, // Green dots
		SourceColor: color.RGBA{247, 247, 105, 180}, // Yellow highlight
		LabelColor:  color.RGBA{40, 44, 52, 255},    // Dark gray
	}
}

// Diagram describes one board image: a mask of marked squares plus
// optional highlighted source and target squares.
type Diagram struct {
	Mask   attacktables.Bitboard
	Source attacktables.Square // NoSquare for none
	Target attacktables.Square // NoSquare for none
	Size   int                 // image edge in pixels, 0 means 256
	Coords bool                // draw file and rank labels (SVG output only)
	Theme  *Theme              // nil means DefaultTheme()
}

// New returns a diagram of the given mask with no highlighted squares.
func New(mask attacktables.Bitboard) *Diagram {
	return &Diagram{
		Mask:   mask,
		Source: attacktables.NoSquare,
		Target: attacktables.NoSquare,
	}
}

func (d *Diagram) pixels() int {
	if d.Size > 0 {
		return d.Size
	}
	return defaultSize
}

func (d *Diagram) colors() *Theme {
	if d.Theme != nil {
		return d.Theme
	}
	return DefaultTheme()
}

// WriteSVG writes the diagram as an SVG image.
func (d *Diagram) WriteSVG(w io.Writer) error {
	bw := bufio.NewWriter(w)
	d.render(svg.New(bw))
	return bw.Flush()
}

// WritePNG rasterizes the diagram and writes it as a PNG image.
// Coordinate labels are skipped; the rasterizer handles shapes only.
func (d *Diagram) WritePNG(w io.Writer) error {
	size := d.pixels()

	// Render at higher resolution for better quality when scaled
	renderSize := size * renderScale
	hi := *d
	hi.Size = renderSize
	hi.Coords = false

	var buf bytes.Buffer
	if err := hi.WriteSVG(&buf); err != nil {
		return err
	}

	icon, err := oksvg.ReadIconStream(&buf)
	if err != nil {
		return fmt.Errorf("parse diagram svg: %w", err)
	}
	icon.SetTarget(0, 0, float64(renderSize), float64(renderSize))

	// Create RGBA image and render with anti-aliasing at high resolution
	rgba := image.NewRGBA(image.Rect(0, 0, renderSize, renderSize))
	scanner := rasterx.NewScannerGV(renderSize, renderSize, rgba, rgba.Bounds())
	raster := rasterx.NewDasher(renderSize, renderSize, scanner)
	icon.Draw(raster, 1.0)

	// Scale down from render resolution to display size
	out := image.NewRGBA(image.Rect(0, 0, size, size))
	xdraw.CatmullRom.Scale(out, out.Bounds(), rgba, rgba.Bounds(), xdraw.Over, nil)

	return png.Encode(w, out)
}

func (d *Diagram) render(canvas *svg.SVG) {
	size := d.pixels()
	cell := size / 8
	th := d.colors()

	canvas.Start(size, size)
	for rank := 0; rank < 8; rank++ {
		for file := 0; file < 8; file++ {
			x := file * cell
			y := (7 - rank) * cell // Flip so rank 1 is at bottom

			c := th.LightSquare
			if (rank+file)%2 == 0 {
				c = th.DarkSquare
			}
			canvas.Rect(x, y, cell, cell, fill(c))
		}
	}

	if d.Source.IsValid() {
		highlight(canvas, d.Source, cell, th.SourceColor)
	}
	if d.Target.IsValid() {
		highlight(canvas, d.Target, cell, th.SourceColor)
	}

	d.Mask.ForEach(func(sq attacktables.Square) {
		cx := sq.File()*cell + cell/2
		cy := (7-sq.Rank())*cell + cell/2
		canvas.Circle(cx, cy, cell/4, fill(th.MarkColor))
	})

	if d.Coords {
		d.drawCoordinates(canvas, cell, th)
	}
	canvas.End()
}

func highlight(canvas *svg.SVG, sq attacktables.Square, cell int, c color.RGBA) {
	canvas.Rect(sq.File()*cell, (7-sq.Rank())*cell, cell, cell, fill(c))
}

// drawCoordinates draws file letters along the bottom edge and rank
// numbers along the right edge.
func (d *Diagram) drawCoordinates(canvas *svg.SVG, cell int, th *Theme) {
	style := fmt.Sprintf("font-family:sans-serif;font-size:%dpx;fill:%s", cell/4, cssColor(th.LabelColor))
	for file := 0; file < 8; file++ {
		canvas.Text(file*cell+cell/16, 8*cell-cell/16, string(rune('a'+file)), style)
	}
	for rank := 0; rank < 8; rank++ {
		canvas.Text(8*cell-cell/4, (7-rank)*cell+cell/4, string(rune('1'+rank)), style)
	}
}

// fill renders a fill style, carrying alpha as fill-opacity.
func fill(c color.RGBA) string {
	if c.A == 255 {
		return "fill:" + cssColor(c)
	}
	return fmt.Sprintf("fill:%s;fill-opacity:%.2f", cssColor(c), float64(c.A)/255)
}

func cssColor(c color.RGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}
