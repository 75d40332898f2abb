/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package ribbon

import "testing"

func TestParseColor(t *testing.T) {
	c, err := ParseColor("#3963c2f9")
	if err != nil {
		t.Fatalf("parse default color: %v", err)
	}
	if c != (Color{A: 0x39, R: 0x63, G: 0xc2, B: 0xf9}) {
		t.Fatalf("unexpected components: %+v", c)
	}

	c, err = ParseColor("#ff0080")
	if err != nil {
		t.Fatalf("parse rgb form: %v", err)
	}
	if c != (Color{A: 0xff, R: 0xff, G: 0x00, B: 0x80}) {
		t.Fatalf("rgb form should imply opaque alpha: %+v", c)
	}

	for _, bad := range []string{"", "3963c2f9", "#12345", "#xyzxyz", "#123456789"} {
		if _, err := ParseColor(bad); err == nil {
			t.Fatalf("expected error for %q", bad)
		}
	}
}

func TestColorHexRoundTrip(t *testing.T) {
	c := Color{A: 0x39, R: 0x63, G: 0xc2, B: 0xf9}
	if got := c.Hex(); got != "#3963c2f9" {
		t.Fatalf("hex: got %s", got)
	}
	back, err := ParseColor(c.Hex())
	if err != nil || back != c {
		t.Fatalf("round trip failed: %+v, %v", back, err)
	}
}

func TestOrientationFromInt(t *testing.T) {
	cases := []struct {
		in   int
		want Orientation
	}{
		{-7, Horizontal},
		{-1, Horizontal},
		{0, Horizontal},
		{1, Vertical},
		{42, Vertical},
	}
	for _, tc := range cases {
		if got := OrientationFromInt(tc.in); got != tc.want {
			t.Fatalf("value %d: got %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestDisplayPixels(t *testing.T) {
	if px := (Display{Density: 2}).Pixels(6); px != 12 {
		t.Fatalf("density 2: got %d", px)
	}
	// Truncating conversion, matching integer dimension resolution.
	if px := (Display{Density: 2.75}).Pixels(6); px != 16 {
		t.Fatalf("density 2.75: got %d, want 16", px)
	}
	// Unset density falls back to 1:1.
	if px := (Display{}).Pixels(6); px != 6 {
		t.Fatalf("zero density: got %d", px)
	}
}

func TestDefaults(t *testing.T) {
	st := Defaults(Display{Density: 2})
	if st.Color() != (Color{A: 0x39, R: 0x63, G: 0xc2, B: 0xf9}) {
		t.Fatalf("default color: %+v", st.Color())
	}
	if st.NotchDepth() != 12 {
		t.Fatalf("default depth at density 2: got %d, want 12", st.NotchDepth())
	}
	if !st.AutomatePadding() {
		t.Fatalf("padding automation should default on")
	}
	if st.Orientation() != Vertical {
		t.Fatalf("orientation should default vertical, got %v", st.Orientation())
	}
}

func TestNewStyleClampsNegativeDepth(t *testing.T) {
	st := NewStyle(Color{}, -3, true, Horizontal)
	if st.NotchDepth() != 0 {
		t.Fatalf("negative depth must clamp to 0, got %d", st.NotchDepth())
	}
}
