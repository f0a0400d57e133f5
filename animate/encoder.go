/*
 * encoder.go, part of fc-transport
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

package animate

import (
	"fmt"
	"image"
	"image/color"
	"image/color/palette"
	imgdraw "image/draw"
	"image/gif"
	"io"
	"iter"
	"os"

	"github.com/raymenzel/fc-transport/snapshot"
)

// DefaultDelay is the time each frame is shown, in 100ths of a second.
const DefaultDelay = 5

// Encoder renders a sequence of frames and assembles them into a GIF.
// In the zero value, and wherever a field is left zero, Encode uses a
// default size Renderer, the Plan9 palette and DefaultDelay.
type Encoder struct {
	Renderer  *Renderer
	Delay     int           //per frame, in 100ths of a second
	Palette   color.Palette //the drawn frames are reduced to this palette
	LoopCount int           //as in gif.GIF: 0 loops forever
}

// NewEncoder returns an Encoder that draws with r, and uses the default
// delay and the Plan9 palette.
func NewEncoder(r *Renderer) *Encoder {
	return &Encoder{Renderer: r, Delay: DefaultDelay, Palette: palette.Plan9}
}

// Encode pulls frames from the sequence one at a time, draws each one, and
// returns the resulting animation. Frames are not kept: each drawn surface is
// copied into a paletted image before the next frame is drawn. The first
// error in the sequence, or while drawing, stops the encoding.
func (E *Encoder) Encode(frames iter.Seq2[*snapshot.Frame, error]) (*gif.GIF, error) {
	if E.Renderer == nil {
		E.Renderer = NewRenderer(DefaultWidth, DefaultHeight, DefaultDPI)
	}
	pal := E.Palette
	if len(pal) == 0 {
		pal = palette.Plan9
	}
	delay := E.Delay
	if delay <= 0 {
		delay = DefaultDelay
	}
	anim := &gif.GIF{LoopCount: E.LoopCount}
	for f, err := range frames {
		if err != nil {
			return nil, err
		}
		img, err := E.Renderer.Draw(f)
		if err != nil {
			return nil, err
		}
		anim.Image = append(anim.Image, toPaletted(img, pal))
		anim.Delay = append(anim.Delay, delay)
	}
	if len(anim.Image) == 0 {
		return nil, fmt.Errorf("Encode: no frames to encode")
	}
	return anim, nil
}

// Write encodes the animation as a GIF into w.
func (E *Encoder) Write(w io.Writer, anim *gif.GIF) error {
	return gif.EncodeAll(w, anim)
}

//toPaletted converts img into a paletted image using the provided palette.
func toPaletted(img image.Image, pal color.Palette) *image.Paletted {
	bounds := img.Bounds()
	palImg := image.NewPaletted(bounds, pal)
	imgdraw.Draw(palImg, bounds, img, bounds.Min, imgdraw.Src)
	return palImg
}

// File reads the snapshot file in, and writes its animation to the GIF file
// out. The output file is only created once every frame has been drawn, so
// a bad input leaves no output behind. It returns the number of frames.
func File(in, out string) (int, error) {
	R, err := snapshot.New(in)
	if err != nil {
		return 0, err
	}
	defer R.Close()
	E := NewEncoder(NewRenderer(DefaultWidth, DefaultHeight, DefaultDPI))
	anim, err := E.Encode(R.Frames())
	if err != nil {
		return 0, err
	}
	fout, err := os.Create(out)
	if err != nil {
		return 0, err
	}
	if err := E.Write(fout, anim); err != nil {
		fout.Close()
		return 0, fmt.Errorf("File: writing %s: %w", out, err)
	}
	return len(anim.Image), fout.Close()
}
