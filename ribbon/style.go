/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package ribbon

import (
	"fmt"
	"strconv"
	"strings"
)

// Styles and the resolved style snapshot.

// Color is a non-premultiplied ARGB color.
type Color struct{ A, R, G, B uint8 }

// DefaultColorHex is the built-in ribbon fill, a translucent light blue.
const DefaultColorHex = "#3963c2f9"

// DefaultDepthDP is the built-in notch depth in density-independent units.
// 6 dp of depth pairs with roughly 10 dp of trailing padding (see padding.go).
const DefaultDepthDP = 6

// ParseColor parses #RRGGBB (implied FF alpha) or #AARRGGBB.
func ParseColor(s string) (Color, error) {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "#") {
		return Color{}, fmt.Errorf("color %q: missing '#'", s)
	}
	hex := s[1:]
	var v uint64
	var err error
	switch len(hex) {
	case 6:
		v, err = strconv.ParseUint(hex, 16, 32)
		v |= 0xff000000
	case 8:
		v, err = strconv.ParseUint(hex, 16, 32)
	default:
		return Color{}, fmt.Errorf("color %q: want 6 or 8 hex digits", s)
	}
	if err != nil {
		return Color{}, fmt.Errorf("color %q: %w", s, err)
	}
	return Color{
		A: uint8(v >> 24),
		R: uint8(v >> 16),
		G: uint8(v >> 8),
		B: uint8(v),
	}, nil
}

// Hex formats the color as #aarrggbb.
func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x%02x", c.A, c.R, c.G, c.B)
}

// Orientation selects how children stack inside the ribbon.
type Orientation uint8

const (
	Horizontal Orientation = iota
	Vertical
)

// OrientationFromInt maps the raw attribute value: zero or negative means
// horizontal, any positive value means vertical.
func OrientationFromInt(v int) Orientation {
	if v > 0 {
		return Vertical
	}
	return Horizontal
}

func (o Orientation) String() string {
	if o == Vertical {
		return "vertical"
	}
	return "horizontal"
}

// Display carries the host display density used to resolve dp dimensions.
// Density is device pixels per density-independent unit (1.0 at 160 dpi).
type Display struct{ Density float32 }

// Pixels converts a dp value to device pixels, truncating toward zero to
// match integer dimension resolution in the host toolkit.
func (d Display) Pixels(dp float32) int {
	density := d.Density
	if density <= 0 {
		density = 1
	}
	return int(dp * density)
}

// Style is the immutable resolved snapshot in effect for the container's
// lifetime. It is created once by Resolve and never partially mutated.
type Style struct {
	color           Color
	notchDepth      int // device pixels, >= 0
	automatePadding bool
	orientation     Orientation
}

// Color returns the resolved ribbon fill color.
func (s Style) Color() Color { return s.color }

// NotchDepth returns the notch depth in device pixels.
func (s Style) NotchDepth() int { return s.notchDepth }

// AutomatePadding reports whether trailing padding is derived from the depth.
func (s Style) AutomatePadding() bool { return s.automatePadding }

// Orientation returns the child stacking orientation.
func (s Style) Orientation() Orientation { return s.orientation }

// Defaults returns the built-in style for the given display.
func Defaults(d Display) Style {
	c, err := ParseColor(DefaultColorHex)
	if err != nil {
		// The constant is well-formed; this cannot happen at runtime.
		panic(err)
	}
	return Style{
		color:           c,
		notchDepth:      d.Pixels(DefaultDepthDP),
		automatePadding: true,
		orientation:     Vertical,
	}
}

// NewStyle builds a snapshot from explicit values, for programmatic hosts
// that do not use an attribute source. Negative depths are treated as zero.
func NewStyle(c Color, depthPx int, automatePadding bool, o Orientation) Style {
	if depthPx < 0 {
		depthPx = 0
	}
	return Style{color: c, notchDepth: depthPx, automatePadding: automatePadding, orientation: o}
}
