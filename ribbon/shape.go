/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package ribbon

// The ribbon outline: a rectangle whose trailing side is replaced by an
// inward-pointing vertex, giving the banner silhouette.

// Polygon is the ordered five-vertex ribbon outline with an implicit closing
// edge back to the first vertex. It is rebuilt from the current bounds on
// every draw and never cached across resizes.
type Polygon struct{ V [5]Pt }

// Outline builds the outline for the given content-box bounds and notch
// depth, both in device pixels. The shape is drawn as background beneath
// padded content, so padding is ignored and the local origin is (0,0).
//
// Vertex order is top-left, top-right, concave point, bottom-right,
// bottom-left. The order (and with it the winding) is load-bearing: some
// renderer fill rules change behavior if it is reversed.
//
// The concave point sits at (width-depth, height/2) with truncating division,
// so for odd heights it lies one pixel above the geometric center.
//
// Precondition: 0 <= depth < width. Depths at or beyond the width are not
// clamped and produce a self-intersecting outline; see Outline's tests for
// the degenerate output kept for compatibility.
func Outline(b Bounds, depth int) Polygon {
	w := float32(b.Width)
	h := float32(b.Height)
	return Polygon{V: [5]Pt{
		{0, 0},
		{w, 0},
		{w - float32(depth), float32(b.Height / 2)},
		{w, h},
		{0, h},
	}}
}

// Path converts the polygon to path commands: move to the first vertex, line
// through the rest, an explicit line back to the start, then close.
func (p Polygon) Path() Path {
	var path Path
	path.MoveTo(p.V[0].X, p.V[0].Y)
	for _, v := range p.V[1:] {
		path.LineTo(v.X, v.Y)
	}
	path.LineTo(p.V[0].X, p.V[0].Y)
	path.Close()
	return path
}
