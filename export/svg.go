/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

// Package export writes ribbon snapshots to SVG, PNG and PDF files so hosts
// without a live canvas can inspect or embed the rendered outline.
package export

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"ribbonbox/render"
	"ribbonbox/ribbon"
)

// WriteSVG writes a standalone SVG document with the ribbon polygon for the
// given style and bounds. The SVG mirrors the fixed raster parameters:
// fill and stroke in the resolved color, stroke width 5, bevel joins.
func WriteSVG(w io.Writer, st ribbon.Style, b ribbon.Bounds) error {
	poly := ribbon.Outline(b, st.NotchDepth())

	var buf bytes.Buffer
	var werr error
	wf := func(format string, args ...any) {
		if werr != nil {
			return
		}
		_, werr = fmt.Fprintf(&buf, format, args...)
	}

	c := st.Color()
	rgb := fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
	opacity := float64(c.A) / 255

	wf("<?xml version=\"1.0\" encoding=\"UTF-8\"?>\n")
	wf("<svg xmlns=\"http://www.w3.org/2000/svg\" version=\"1.1\" width=\"%d\" height=\"%d\" viewBox=\"0 0 %d %d\">\n", b.Width, b.Height, b.Width, b.Height)
	wf("  <polygon points=\"")
	for i, v := range poly.V {
		if i > 0 {
			wf(" ")
		}
		wf("%g,%g", v.X, v.Y)
	}
	wf("\" fill=\"%s\" fill-opacity=\"%.3f\" stroke=\"%s\" stroke-opacity=\"%.3f\" stroke-width=\"%d\" stroke-linejoin=\"bevel\" stroke-linecap=\"butt\"/>\n",
		rgb, opacity, rgb, opacity, render.StrokeWidth)
	wf("</svg>\n")

	if werr != nil {
		return fmt.Errorf("build svg: %w", werr)
	}
	if _, err := w.Write(buf.Bytes()); err != nil {
		return fmt.Errorf("write svg: %w", err)
	}
	return nil
}

// ExportSVG writes the SVG snapshot to a file.
func ExportSVG(path string, st ribbon.Style, b ribbon.Bounds) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create svg: %w", err)
	}
	if err := WriteSVG(f, st, b); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close svg: %w", err)
	}
	return nil
}
