/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package attrs

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"ribbonbox/ribbon"
)

func TestMapLookup(t *testing.T) {
	m := Map{"ribbonColor": "#ff112233"}
	v, ok, err := m.Lookup("ribbonColor")
	if err != nil || !ok || v != "#ff112233" {
		t.Fatalf("lookup: %q %v %v", v, ok, err)
	}
	if _, ok, _ := m.Lookup("missing"); ok {
		t.Fatalf("missing key reported present")
	}
}

func TestParseYAML(t *testing.T) {
	src, err := ParseYAML([]byte("ribbonColor: \"#80112233\"\nnotchDepth: 6dp\nautomatePadding: true\norientation: 1\n"))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	for key, want := range map[string]string{
		"ribbonColor":     "#80112233",
		"notchDepth":      "6dp",
		"automatePadding": "true",
		"orientation":     "1",
	} {
		if v, ok, _ := src.Lookup(key); !ok || v != want {
			t.Fatalf("%s: got %q (%v), want %q", key, v, ok, want)
		}
	}
}

func TestParseYAML_ScalarNormalization(t *testing.T) {
	// Bare YAML numbers and booleans become strings the resolver can parse.
	src, err := ParseYAML([]byte("notchDepth: 6\nautomatePadding: false\n"))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if v, _, _ := src.Lookup("notchDepth"); v != "6" {
		t.Fatalf("notchDepth: got %q", v)
	}
	if v, _, _ := src.Lookup("automatePadding"); v != "false" {
		t.Fatalf("automatePadding: got %q", v)
	}
}

func TestParseYAML_RejectsNestedValues(t *testing.T) {
	if _, err := ParseYAML([]byte("ribbonColor:\n  r: 255\n")); err == nil {
		t.Fatalf("expected error for nested value")
	}
}

func TestLoadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "theme.yaml")
	if err := os.WriteFile(path, []byte("orientation: -1\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	src, err := LoadYAML(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	st := ribbon.Resolve(src, ribbon.Display{Density: 1})
	if st.Orientation() != ribbon.Horizontal {
		t.Fatalf("orientation: got %v, want horizontal", st.Orientation())
	}

	if _, err := LoadYAML(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Fatalf("expected error for missing file")
	}
}

func TestParseJSON(t *testing.T) {
	src, err := ParseJSON([]byte(`{"ribbonColor": "#3963c2f9", "notchDepth": 6, "automatePadding": true, "orientation": 1}`))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	st := ribbon.Resolve(src, ribbon.Display{Density: 2})
	if st.NotchDepth() != 12 {
		t.Fatalf("numeric depth should resolve as dp: got %d", st.NotchDepth())
	}
}

func TestParseJSON_SchemaViolations(t *testing.T) {
	cases := []string{
		`{"ribbonColor": "blue"}`,    // not a hex color
		`{"automatePadding": "yes"}`, // wrong type
		`{"orientation": 1.5}`,       // not an integer
		`{"somethingElse": 1}`,       // unknown key
	}
	for _, doc := range cases {
		if _, err := ParseJSON([]byte(doc)); err == nil || !strings.Contains(err.Error(), "validate theme") {
			t.Fatalf("document %s: expected schema violation, got %v", doc, err)
		}
	}
}

func TestLoadJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "theme.json")
	if err := os.WriteFile(path, []byte(`{"notchDepth": "24px"}`), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	src, err := LoadJSON(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if v, ok, _ := src.Lookup("notchDepth"); !ok || v != "24px" {
		t.Fatalf("notchDepth: got %q (%v)", v, ok)
	}
}
