/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package ribbon

// Basic 2D geometry for the ribbon outline. Coordinates are device pixels in
// the container's own content box, origin at the top-left corner.
// Float values use float32 for compactness and to align with many UI libs.

// Pt is a 2D point.
type Pt struct{ X, Y float32 }

// Bounds is the container's current content-box size in device pixels. It is
// owned by the host layout; this package only reads it.
type Bounds struct{ Width, Height int }

// Insets describes content padding on the four sides, in device pixels.
// Start/End follow the stacking direction (start = left in LTR hosts).
type Insets struct{ Start, Top, End, Bottom int }

// Empty reports whether the bounds enclose no area.
func (b Bounds) Empty() bool { return b.Width <= 0 || b.Height <= 0 }
