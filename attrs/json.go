/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package attrs

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/xeipuuv/gojsonschema"
)

// themeSchema constrains JSON theme files to the attribute surface the
// resolver understands. Dimensions may be numbers (dp) or unit strings.
const themeSchema = `{
  "type": "object",
  "properties": {
    "ribbonColor": {"type": "string", "pattern": "^#[0-9a-fA-F]{6}([0-9a-fA-F]{2})?$"},
    "notchDepth": {"type": ["string", "number"]},
    "automatePadding": {"type": "boolean"},
    "orientation": {"type": "integer"}
  },
  "additionalProperties": false
}`

// LoadJSON reads a JSON theme file, validates it against the theme schema,
// and returns it as a style source.
func LoadJSON(path string) (Map, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read theme: %w", err)
	}
	return ParseJSON(data)
}

// ParseJSON validates and decodes JSON theme bytes into a style source.
func ParseJSON(data []byte) (Map, error) {
	res, err := gojsonschema.Validate(
		gojsonschema.NewStringLoader(themeSchema),
		gojsonschema.NewBytesLoader(data),
	)
	if err != nil {
		return nil, fmt.Errorf("validate theme: %w", err)
	}
	if !res.Valid() {
		return nil, fmt.Errorf("validate theme: %v", res.Errors())
	}
	var doc map[string]any
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse theme: %w", err)
	}
	m, err := normalize(doc)
	if err != nil {
		return nil, fmt.Errorf("parse theme: %w", err)
	}
	return m, nil
}
