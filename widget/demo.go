//go:build fyne

/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package widget

import (
	"log/slog"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	fwidget "fyne.io/fyne/v2/widget"

	"ribbonbox/attrs"
	applog "ribbonbox/internal/log"
	"ribbonbox/ribbon"
)

// Run opens a demo window with a ribbon container. themePath may name a
// YAML theme file; an empty path uses the built-in defaults.
func Run(themePath string) error {
	l := applog.WithComponent("demo")

	var src ribbon.Source
	if themePath != "" {
		m, err := attrs.LoadYAML(themePath)
		if err != nil {
			// Same recovery unit as the resolver: fall back to defaults.
			l.Warn("theme not loaded, using defaults", slog.Any("err", err))
		} else {
			src = m
		}
	}

	a := app.New()
	w := a.NewWindow("ribbonbox demo")

	rb := NewFromSource(src, ribbon.Display{Density: 1}, ribbon.Insets{Start: 8, Top: 4, End: 4, Bottom: 4},
		fwidget.NewLabel("ribbon"),
		fwidget.NewLabel("container"),
	)
	w.SetContent(rb)
	w.Resize(fyne.NewSize(260, 80))
	w.ShowAndRun()
	return nil
}
