//go:build fyne

/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

// Package widget provides the Fyne ribbon container. The host toolkit owns
// measurement and event dispatch; this widget only stacks its children and
// paints the ribbon outline behind them on every refresh.
package widget

import (
	"image"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	fwidget "fyne.io/fyne/v2/widget"

	"ribbonbox/render"
	"ribbonbox/ribbon"
)

// RibbonBox is a container that draws its background as a concave pentagon
// and stacks child content horizontally or vertically inside it. Style is
// fixed at construction; there are no runtime mutators.
type RibbonBox struct {
	fwidget.BaseWidget

	style   ribbon.Style
	padding ribbon.Insets
	painter render.Renderer
	content []fyne.CanvasObject
}

// New builds a ribbon container with the given resolved style. basePadding
// is the padding configured by the host before automation; the derived
// trailing padding is added to it exactly once, here.
func New(st ribbon.Style, basePadding ribbon.Insets, objects ...fyne.CanvasObject) *RibbonBox {
	rb := &RibbonBox{
		style:   st,
		padding: ribbon.ApplyPadding(st, basePadding),
		content: objects,
	}
	rb.ExtendBaseWidget(rb)
	return rb
}

// NewDefault builds a ribbon container with the built-in style at 1:1
// density and no base padding.
func NewDefault(objects ...fyne.CanvasObject) *RibbonBox {
	return New(ribbon.Defaults(ribbon.Display{Density: 1}), ribbon.Insets{}, objects...)
}

// NewFromSource resolves the style from a key/value source (nil for
// defaults) and builds the container. Resolution failures fall back to the
// complete default style and are never surfaced here.
func NewFromSource(src ribbon.Source, d ribbon.Display, basePadding ribbon.Insets, objects ...fyne.CanvasObject) *RibbonBox {
	return New(ribbon.Resolve(src, d), basePadding, objects...)
}

// Style returns the immutable resolved style snapshot.
func (rb *RibbonBox) Style() ribbon.Style { return rb.style }

// Padding returns the effective content padding after automation.
func (rb *RibbonBox) Padding() ribbon.Insets { return rb.padding }

// CreateRenderer builds the background raster plus the stacked children.
func (rb *RibbonBox) CreateRenderer() fyne.WidgetRenderer {
	raster := canvas.NewRaster(rb.drawBackground)
	objs := append([]fyne.CanvasObject{raster}, rb.content...)
	return &ribbonRenderer{rb: rb, raster: raster, objects: objs}
}

// drawBackground rebuilds the polygon from the current pixel bounds on every
// draw request. Nothing is cached across resizes; only the paint descriptor
// inside the renderer survives between frames.
func (rb *RibbonBox) drawBackground(w, h int) image.Image {
	b := ribbon.Bounds{Width: w, Height: h}
	return rb.painter.Render(ribbon.Outline(b, rb.style.NotchDepth()), rb.style.Color(), b)
}

type ribbonRenderer struct {
	rb      *RibbonBox
	raster  *canvas.Raster
	objects []fyne.CanvasObject
}

func (r *ribbonRenderer) Destroy()                     {}
func (r *ribbonRenderer) Objects() []fyne.CanvasObject { return r.objects }
func (r *ribbonRenderer) Refresh()                     { r.Layout(r.rb.Size()); canvas.Refresh(r.rb) }

// MinSize is the stacked content minimum plus padding, per orientation.
func (r *ribbonRenderer) MinSize() fyne.Size {
	p := r.rb.padding
	var w, h float32
	for _, o := range r.rb.content {
		min := o.MinSize()
		if r.rb.style.Orientation() == ribbon.Vertical {
			h += min.Height
			if min.Width > w {
				w = min.Width
			}
		} else {
			w += min.Width
			if min.Height > h {
				h = min.Height
			}
		}
	}
	return fyne.NewSize(w+float32(p.Start+p.End), h+float32(p.Top+p.Bottom))
}

// Layout fills the widget with the background raster and stacks children
// inside the padded content area.
func (r *ribbonRenderer) Layout(size fyne.Size) {
	r.raster.Resize(size)
	r.raster.Move(fyne.NewPos(0, 0))

	p := r.rb.padding
	x := float32(p.Start)
	y := float32(p.Top)
	availW := size.Width - float32(p.Start+p.End)
	availH := size.Height - float32(p.Top+p.Bottom)
	if availW < 0 {
		availW = 0
	}
	if availH < 0 {
		availH = 0
	}

	for _, o := range r.rb.content {
		min := o.MinSize()
		if r.rb.style.Orientation() == ribbon.Vertical {
			o.Move(fyne.NewPos(x, y))
			o.Resize(fyne.NewSize(availW, min.Height))
			y += min.Height
		} else {
			o.Move(fyne.NewPos(x, y))
			o.Resize(fyne.NewSize(min.Width, availH))
			x += min.Width
		}
	}
}
