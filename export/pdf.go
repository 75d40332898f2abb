/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package export

import (
	"fmt"

	"github.com/jung-kurt/gofpdf"

	"ribbonbox/render"
	"ribbonbox/ribbon"
)

// ExportPDF writes a single-page PDF sized to the bounds (in points) with
// the ribbon polygon drawn as a vector fill-and-stroke path. Alpha is
// carried via a PDF transparency group, matching the translucent default
// fill.
func ExportPDF(path string, st ribbon.Style, b ribbon.Bounds) error {
	pdf := gofpdf.NewCustom(&gofpdf.InitType{
		UnitStr: "pt",
		Size:    gofpdf.SizeType{Wd: float64(b.Width), Ht: float64(b.Height)},
	})
	pdf.AddPage()

	c := st.Color()
	pdf.SetFillColor(int(c.R), int(c.G), int(c.B))
	pdf.SetDrawColor(int(c.R), int(c.G), int(c.B))
	pdf.SetLineWidth(render.StrokeWidth)
	pdf.SetLineJoinStyle("bevel")
	pdf.SetLineCapStyle("butt")
	if c.A < 255 {
		pdf.SetAlpha(float64(c.A)/255, "Normal")
	}

	poly := ribbon.Outline(b, st.NotchDepth())
	pts := make([]gofpdf.PointType, 0, len(poly.V))
	for _, v := range poly.V {
		pts = append(pts, gofpdf.PointType{X: float64(v.X), Y: float64(v.Y)})
	}
	pdf.Polygon(pts, "FD")

	if err := pdf.OutputFileAndClose(path); err != nil {
		return fmt.Errorf("write pdf: %w", err)
	}
	return nil
}
