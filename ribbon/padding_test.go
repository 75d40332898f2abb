/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package ribbon

import "testing"

func TestApplyPadding_AddsTruncatedAmount(t *testing.T) {
	st := NewStyle(Color{A: 255}, 12, true, Vertical)
	in := Insets{Start: 1, Top: 2, End: 4, Bottom: 3}
	out := ApplyPadding(st, in)

	// 12 * 1.66 = 19.92, truncated to 19, added on top of the existing 4.
	if out.End != 23 {
		t.Fatalf("end padding: got %d, want 23", out.End)
	}
	if out.Start != in.Start || out.Top != in.Top || out.Bottom != in.Bottom {
		t.Fatalf("only trailing padding may change: got %+v", out)
	}
}

func TestApplyPadding_Disabled(t *testing.T) {
	st := NewStyle(Color{A: 255}, 12, false, Vertical)
	in := Insets{Start: 1, Top: 2, End: 4, Bottom: 3}
	if out := ApplyPadding(st, in); out != in {
		t.Fatalf("padding must pass through unchanged, got %+v", out)
	}
}

func TestApplyPadding_Table(t *testing.T) {
	cases := []struct {
		depth   int
		end     int
		wantEnd int
	}{
		{0, 5, 5},   // 0 * 1.66 = 0
		{6, 0, 9},   // 9.96 -> 9
		{12, 4, 23}, // 19.92 -> 19
		{100, 0, 166},
	}
	for _, tc := range cases {
		st := NewStyle(Color{}, tc.depth, true, Horizontal)
		out := ApplyPadding(st, Insets{End: tc.end})
		if out.End != tc.wantEnd {
			t.Fatalf("depth %d, end %d: got %d, want %d", tc.depth, tc.end, out.End, tc.wantEnd)
		}
	}
}
