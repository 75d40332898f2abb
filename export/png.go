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
	"image"
	"image/png"
	"log/slog"
	"math"
	"os"

	xdraw "golang.org/x/image/draw"

	applog "ribbonbox/internal/log"
	"ribbonbox/render"
	"ribbonbox/ribbon"
)

// PNGOptions controls PNG export behavior.
// Scale > 0 resamples the rendered snapshot, e.g. 2 for a 2x preview.
// Zero means 1:1 output at the given bounds.
type PNGOptions struct {
	Scale float64
}

// ExportPNG renders the ribbon at the given bounds and writes it as PNG.
func ExportPNG(path string, st ribbon.Style, b ribbon.Bounds, opt PNGOptions) error {
	l := applog.WithOperation(applog.WithComponent("export"), "png")

	var r render.Renderer
	img := r.Render(ribbon.Outline(b, st.NotchDepth()), st.Color(), b)

	out := image.Image(img)
	if opt.Scale > 0 && opt.Scale != 1 {
		dw := int(math.Round(float64(b.Width) * opt.Scale))
		dh := int(math.Round(float64(b.Height) * opt.Scale))
		dst := image.NewRGBA(image.Rect(0, 0, dw, dh))
		xdraw.CatmullRom.Scale(dst, dst.Bounds(), img, img.Bounds(), xdraw.Over, nil)
		out = dst
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create png: %w", err)
	}
	if err := png.Encode(f, out); err != nil {
		_ = f.Close()
		return fmt.Errorf("encode png: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close png: %w", err)
	}
	l.Info("snapshot exported", slog.String("path", path),
		slog.Int("w", out.Bounds().Dx()), slog.Int("h", out.Bounds().Dy()))
	return nil
}
