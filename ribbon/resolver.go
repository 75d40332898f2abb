/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package ribbon

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	applog "ribbonbox/internal/log"
)

// Source is a raw key/value style provider (a theme file, host attribute set,
// or in-memory map). Lookup returns the raw value, whether the key is
// present, and any provider error.
type Source interface {
	Lookup(key string) (string, bool, error)
}

// Attribute keys understood by Resolve.
const (
	KeyColor           = "ribbonColor"
	KeyNotchDepth      = "notchDepth"
	KeyAutomatePadding = "automatePadding"
	KeyOrientation     = "orientation"
)

// Resolve merges an optional source with the built-in defaults into one
// immutable snapshot. A nil source yields the defaults verbatim. Each key
// falls back to its default when absent. Any provider error or malformed
// value discards the whole candidate and yields the complete default style:
// resolution is atomic, never a source/default mix. Resolve never fails from
// the caller's point of view; the worst case is a visually-default ribbon.
func Resolve(src Source, d Display) Style {
	def := Defaults(d)
	if src == nil {
		return def
	}
	st, err := resolveFrom(src, d, def)
	if err != nil {
		applog.WithComponent("ribbon").Warn("style source rejected, using defaults", slog.Any("err", err))
		return def
	}
	return st
}

// resolveFrom builds the candidate entirely off to the side; the caller
// publishes it only on full success.
func resolveFrom(src Source, d Display, def Style) (Style, error) {
	st := def

	if raw, ok, err := src.Lookup(KeyColor); err != nil {
		return Style{}, fmt.Errorf("read %s: %w", KeyColor, err)
	} else if ok {
		c, err := ParseColor(raw)
		if err != nil {
			return Style{}, err
		}
		st.color = c
	}

	if raw, ok, err := src.Lookup(KeyNotchDepth); err != nil {
		return Style{}, fmt.Errorf("read %s: %w", KeyNotchDepth, err)
	} else if ok {
		px, err := parseDimension(raw, d)
		if err != nil {
			return Style{}, err
		}
		st.notchDepth = px
	}

	if raw, ok, err := src.Lookup(KeyAutomatePadding); err != nil {
		return Style{}, fmt.Errorf("read %s: %w", KeyAutomatePadding, err)
	} else if ok {
		b, err := strconv.ParseBool(strings.TrimSpace(raw))
		if err != nil {
			return Style{}, fmt.Errorf("%s %q: %w", KeyAutomatePadding, raw, err)
		}
		st.automatePadding = b
	}

	if raw, ok, err := src.Lookup(KeyOrientation); err != nil {
		return Style{}, fmt.Errorf("read %s: %w", KeyOrientation, err)
	} else if ok {
		n, err := strconv.Atoi(strings.TrimSpace(raw))
		if err != nil {
			return Style{}, fmt.Errorf("%s %q: %w", KeyOrientation, raw, err)
		}
		st.orientation = OrientationFromInt(n)
	}

	return st, nil
}

// parseDimension resolves a length attribute to device pixels. Accepted
// forms: "6dp", "6dip", "24px", or a bare number which is taken as dp.
// Negative lengths violate the notchDepth >= 0 invariant and are rejected.
func parseDimension(raw string, d Display) (int, error) {
	s := strings.ToLower(strings.TrimSpace(raw))
	unit := "dp"
	switch {
	case strings.HasSuffix(s, "dip"):
		s = s[:len(s)-3]
	case strings.HasSuffix(s, "dp"):
		s = s[:len(s)-2]
	case strings.HasSuffix(s, "px"):
		s = s[:len(s)-2]
		unit = "px"
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 32)
	if err != nil {
		return 0, fmt.Errorf("dimension %q: %w", raw, err)
	}
	if v < 0 {
		return 0, fmt.Errorf("dimension %q: negative length", raw)
	}
	if unit == "px" {
		return int(v), nil
	}
	return d.Pixels(float32(v)), nil
}
