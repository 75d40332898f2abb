/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package attrs

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// LoadYAML reads a flat YAML theme file into a style source, e.g.
//
//	ribbonColor: "#3963c2f9"
//	notchDepth: 6dp
//	automatePadding: true
//	orientation: 1
//
// Unknown keys are kept; the resolver only reads the keys it understands.
func LoadYAML(path string) (Map, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read theme: %w", err)
	}
	return ParseYAML(data)
}

// ParseYAML decodes YAML theme bytes into a style source.
func ParseYAML(data []byte) (Map, error) {
	var doc map[string]any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse theme: %w", err)
	}
	m, err := normalize(doc)
	if err != nil {
		return nil, fmt.Errorf("parse theme: %w", err)
	}
	return m, nil
}
