/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package ribbon

// Path commands. Backends replay these against their own path builder.

type PathOp uint8

const (
	MoveTo PathOp = iota
	LineTo
	Close
)

type PathCmd struct {
	Op   PathOp
	Data [2]float32 // unused for Close
}

type Path struct{ Cmds []PathCmd }

func (p *Path) MoveTo(x, y float32) {
	p.Cmds = append(p.Cmds, PathCmd{Op: MoveTo, Data: [2]float32{x, y}})
}
func (p *Path) LineTo(x, y float32) {
	p.Cmds = append(p.Cmds, PathCmd{Op: LineTo, Data: [2]float32{x, y}})
}
func (p *Path) Close() { p.Cmds = append(p.Cmds, PathCmd{Op: Close}) }

// BBox returns the axis-aligned bounding box of the path vertices as
// (minX, minY, maxX, maxY). A self-intersecting outline still yields a valid
// box, which is what hosts use for invalidation rectangles.
func (p *Path) BBox() (minX, minY, maxX, maxY float32) {
	minX, minY = +1e9, +1e9
	maxX, maxY = -1e9, -1e9
	for _, c := range p.Cmds {
		if c.Op == Close {
			continue
		}
		x, y := c.Data[0], c.Data[1]
		if x < minX {
			minX = x
		}
		if y < minY {
			minY = y
		}
		if x > maxX {
			maxX = x
		}
		if y > maxY {
			maxY = y
		}
	}
	if minX > maxX || minY > maxY {
		return 0, 0, 0, 0
	}
	return minX, minY, maxX, maxY
}
