/*
 * renderer.go, part of fc-transport
 *
 * Copyright 2024 The fc-transport Authors
 *
    This program is free software: you can redistribute it and/or modify
    it under the terms of the GNU Lesser General Public License as published by
    the Free Software Foundation, either version 2.1 of the License, or
    (at your option) any later version.

    This program is distributed in the hope that it will be useful,
    but WITHOUT ANY WARRANTY; without even the implied warranty of
    MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
    GNU General Public License for more details.

    You should have received a copy of the GNU Lesser General Public License
    along with this program.  If not, see <http://www.gnu.org/licenses/>.
 *
*/

// Package animate draws snapshot frames as density vs. position plots
// and assembles them into an animated GIF.
package animate

import (
	"fmt"
	"image"
	"image/color"

	"github.com/raymenzel/fc-transport/snapshot"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
)

//Constant axes
const (
	XMin   = 0.0
	XMax   = 1000.0
	YMin   = 0.0
	YMax   = 30.0
	XLabel = "x [meters]"
	YLabel = "Density [kg m-3]"
)

// Default size of the drawing surface: 640x480 pixels.
const (
	DefaultWidth  = 6.4 * vg.Inch
	DefaultHeight = 4.8 * vg.Inch
	DefaultDPI    = 100
)

// Title returns the plot title for a frame at time t.
func Title(t float64) string {
	return fmt.Sprintf("Time: %04.2f s", t)
}

// Renderer draws frames on a single surface that it owns. Each call to
// Draw replaces the previous content, so a Renderer must not be shared
// between goroutines.
type Renderer struct {
	canvas *vgimg.Canvas
	dc     draw.Canvas
}

// NewRenderer returns a Renderer with a w x h surface at the given dpi.
func NewRenderer(w, h vg.Length, dpi int) *Renderer {
	c := vgimg.NewWith(vgimg.UseWH(w, h), vgimg.UseDPI(dpi))
	return &Renderer{canvas: c, dc: draw.New(c)}
}

// Bounds returns the size of the images produced by Draw.
func (R *Renderer) Bounds() image.Rectangle {
	return R.canvas.Image().Bounds()
}

func basicWavePlot(title string) *plot.Plot {
	p := plot.New()
	p.Title.Text = title
	p.Title.TextStyle.Font.Variant = "Mono"
	p.Title.Padding = 3 * vg.Millimeter
	p.BackgroundColor = color.White
	p.X.Label.Text = XLabel
	p.Y.Label.Text = YLabel
	return p
}

// plot builds the plot of the frame's density against position, with the
// fixed axes.
func (R *Renderer) plot(f *snapshot.Frame) (*plot.Plot, error) {
	if f == nil {
		return nil, fmt.Errorf("Draw: given nil frame")
	}
	p := basicWavePlot(Title(f.Time))
	if f.Len() > 0 {
		line, err := plotter.NewLine(f)
		if err != nil {
			return nil, fmt.Errorf("Draw: frame at %g s: %w", f.Time, err)
		}
		p.Add(line)
	}
	//Add widens the axes to fit the data, so the limits go after it.
	p.X.Min = XMin
	p.X.Max = XMax
	p.Y.Min = YMin
	p.Y.Max = YMax
	return p, nil
}

// Draw clears the surface and plots the frame's density against position
// as a single line. The returned image is the surface itself: it is only
// valid until the next call to Draw.
func (R *Renderer) Draw(f *snapshot.Frame) (image.Image, error) {
	p, err := R.plot(f)
	if err != nil {
		return nil, err
	}
	p.Draw(R.dc)
	return R.canvas.Image(), nil
}
