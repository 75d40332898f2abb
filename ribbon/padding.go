/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package ribbon

// depthToPaddingRatio maps notch depth to extra trailing padding: roughly
// 10 padding units per 6 depth units. The product is truncated toward zero,
// not rounded.
const depthToPaddingRatio = 1.66

// ApplyPadding derives the trailing content padding from the notch depth so
// children stay clear of the concave vertex. With automation off the input is
// returned unchanged. With it on, the derived amount is added on top of the
// trailing padding already configured; start, top and bottom are untouched.
// Hosts call this exactly once at initialization; it does not re-run on
// resize or style change.
func ApplyPadding(st Style, p Insets) Insets {
	if !st.AutomatePadding() {
		return p
	}
	p.End += int(float32(st.NotchDepth()) * depthToPaddingRatio)
	return p
}
