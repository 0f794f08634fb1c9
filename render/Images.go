package render

import (
	"fmt"
	"image"
	"image/color"

	"github.com/fogleman/gg"
)

// DefaultCellSize is the default side length of a grid cell in pixels
const DefaultCellSize = 48

var (
	safeShade     = color.RGBA{R: 222, G: 184, B: 135, A: 255}
	obstacleShade = color.RGBA{R: 90, G: 60, B: 40, A: 255}
	goalShade     = color.RGBA{R: 60, G: 179, B: 113, A: 255}
	roverShade    = color.RGBA{R: 200, G: 30, B: 30, A: 255}
	gridShade     = color.RGBA{R: 60, G: 60, B: 60, A: 255}
)

// Images draws each frame as a PNG image. Each frame is saved to the
// file named by the next call to filename.
type Images struct {
	filename func() string
	cellSize int
}

// NewImages returns a new Images sink. If cellSize is not positive,
// DefaultCellSize is used.
func NewImages(filename func() string, cellSize int) *Images {
	if cellSize <= 0 {
		cellSize = DefaultCellSize
	}
	return &Images{filename: filename, cellSize: cellSize}
}

// Show draws the frame and saves it to disk
func (i *Images) Show(f Frame) error {
	dc := i.draw(f)
	name := i.filename()
	if err := dc.SavePNG(name); err != nil {
		return fmt.Errorf("show: could not save frame %d to %v: %w", f.Step,
			name, err)
	}
	return nil
}

// Image returns the drawing of a frame
func (i *Images) Image(f Frame) image.Image {
	return i.draw(f).Image()
}

func (i *Images) draw(f Frame) *gg.Context {
	rows, cols := f.Layout.Dims()
	size := float64(i.cellSize)

	dc := gg.NewContext(cols*i.cellSize, rows*i.cellSize)
	dc.SetColor(safeShade)
	dc.Clear()

	for _, o := range f.Layout.Obstacles() {
		dc.DrawRectangle(float64(o.Col)*size, float64(o.Row)*size, size, size)
		dc.SetColor(obstacleShade)
		dc.Fill()
	}

	goal := f.Layout.Goal()
	dc.DrawRectangle(float64(goal.Col)*size, float64(goal.Row)*size, size, size)
	dc.SetColor(goalShade)
	dc.Fill()

	dc.SetColor(gridShade)
	dc.SetLineWidth(1.0)
	for r := 0; r <= rows; r++ {
		dc.DrawLine(0, float64(r)*size, float64(cols)*size, float64(r)*size)
	}
	for c := 0; c <= cols; c++ {
		dc.DrawLine(float64(c)*size, 0, float64(c)*size, float64(rows)*size)
	}
	dc.Stroke()

	// Rover
	cx := (float64(f.Position.Col) + 0.5) * size
	cy := (float64(f.Position.Row) + 0.5) * size
	dc.DrawCircle(cx, cy, size*0.35)
	dc.SetColor(roverShade)
	dc.Fill()

	return dc
}
