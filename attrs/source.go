/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

// Package attrs supplies key/value style sources for ribbon.Resolve: an
// in-memory map for programmatic hosts and tests, plus YAML and JSON theme
// files. Sources are dumb providers; all interpretation (color parsing,
// dimension resolution, fallback) happens in the resolver.
package attrs

import "fmt"

// Map is an in-memory style source.
type Map map[string]string

// Lookup implements ribbon.Source.
func (m Map) Lookup(key string) (string, bool, error) {
	v, ok := m[key]
	return v, ok, nil
}

// normalize flattens a decoded document into string values. Only scalar
// values are allowed; nested structures indicate a malformed theme file.
func normalize(doc map[string]any) (Map, error) {
	m := make(Map, len(doc))
	for k, v := range doc {
		switch v.(type) {
		case string, bool, int, int64, uint64, float32, float64:
			m[k] = fmt.Sprint(v)
		default:
			return nil, fmt.Errorf("key %q: scalar value required, got %T", k, v)
		}
	}
	return m, nil
}
