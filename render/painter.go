/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

// Package render rasterises the ribbon outline. The rendering parameters are
// fixed and not user-configurable: combined fill-and-stroke, stroke width 5,
// bevel line joins, butt line caps, anti-aliasing on. Only the color varies.
package render

import (
	"image"
	"image/color"

	"github.com/fogleman/gg"

	"ribbonbox/ribbon"
)

// StrokeWidth is the fixed outline stroke width in device pixels.
const StrokeWidth = 5

// Paint is the immutable render descriptor, keyed solely by the resolved
// color. Join, cap and stroke width never change.
type Paint struct {
	Color ribbon.Color
}

// NRGBA returns the paint color as non-premultiplied RGBA.
func (p Paint) NRGBA() color.NRGBA {
	return color.NRGBA{R: p.Color.R, G: p.Color.G, B: p.Color.B, A: p.Color.A}
}

// Renderer paints ribbon polygons. The zero value is ready to use. It keeps
// one Paint cached and rebuilds it only when the resolved color changes; the
// polygon itself is traced fresh on every call.
//
// A Renderer is not safe for concurrent use; like the rest of the core it
// lives on the host's single drawing thread.
type Renderer struct {
	paint     Paint
	havePaint bool
}

// PaintFor returns the render descriptor for the color, reusing the cached
// one when the color is unchanged.
func (r *Renderer) PaintFor(c ribbon.Color) Paint {
	if !r.havePaint || r.paint.Color != c {
		r.paint = Paint{Color: c}
		r.havePaint = true
	}
	return r.paint
}

// Render draws the polygon filled and stroked with the given color into a
// fresh image of the given bounds. The image is fully recomputed per call;
// there is no shape caching across frames.
func (r *Renderer) Render(poly ribbon.Polygon, c ribbon.Color, b ribbon.Bounds) *image.RGBA {
	if b.Empty() {
		return image.NewRGBA(image.Rect(0, 0, 0, 0))
	}
	dc := gg.NewContext(b.Width, b.Height)
	r.Draw(dc, poly, c)
	return dc.Image().(*image.RGBA)
}

// Draw traces and paints the polygon onto an existing context. Exporters use
// this to compose the ribbon into larger canvases.
func (r *Renderer) Draw(dc *gg.Context, poly ribbon.Polygon, c ribbon.Color) {
	p := r.PaintFor(c)
	trace(dc, poly.Path())
	dc.SetColor(p.NRGBA())
	dc.SetLineWidth(StrokeWidth)
	dc.SetLineCap(gg.LineCapButt)
	dc.SetLineJoin(gg.LineJoinBevel)
	dc.FillPreserve()
	dc.Stroke()
}

// trace replays path commands onto the context.
func trace(dc *gg.Context, path ribbon.Path) {
	for _, cmd := range path.Cmds {
		switch cmd.Op {
		case ribbon.MoveTo:
			dc.MoveTo(float64(cmd.Data[0]), float64(cmd.Data[1]))
		case ribbon.LineTo:
			dc.LineTo(float64(cmd.Data[0]), float64(cmd.Data[1]))
		case ribbon.Close:
			dc.ClosePath()
		}
	}
}
