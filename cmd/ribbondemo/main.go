package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"ribbonbox/attrs"
	"ribbonbox/export"
	applog "ribbonbox/internal/log"
	"ribbonbox/internal/version"
	"ribbonbox/ribbon"
	"ribbonbox/widget"
)

func main() {
	applog.Init(applog.FromEnv())

	args := os.Args
	if len(args) > 1 {
		switch args[1] {
		case "version", "--version", "-v":
			fmt.Println(version.String())
			return
		case "export":
			if err := runExport(args[2:]); err != nil {
				fmt.Fprintln(os.Stderr, "export:", err)
				os.Exit(1)
			}
			return
		case "ui":
			theme := ""
			if len(args) > 2 {
				theme = args[2]
			}
			if err := widget.Run(theme); err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(1)
			}
			return
		}
	}

	fmt.Println("ribbonbox — concave-pentagon container")
	fmt.Printf("Version: %s\n", version.String())
	fmt.Println("Usage: ribbondemo [version|export|ui]")
}

// runExport renders a single ribbon snapshot to svg, png or pdf.
func runExport(args []string) error {
	fs := flag.NewFlagSet("export", flag.ContinueOnError)
	theme := fs.String("theme", "", "theme file (.yaml or .json); empty for defaults")
	out := fs.String("out", "ribbon.svg", "output file; extension selects the format")
	width := fs.Int("w", 200, "snapshot width in px")
	height := fs.Int("h", 40, "snapshot height in px")
	density := fs.Float64("density", 1, "display density for dp dimensions")
	scale := fs.Float64("scale", 1, "png resample factor")
	if err := fs.Parse(args); err != nil {
		return err
	}

	src, err := loadTheme(*theme)
	if err != nil {
		return err
	}
	st := ribbon.Resolve(src, ribbon.Display{Density: float32(*density)})
	b := ribbon.Bounds{Width: *width, Height: *height}

	switch strings.ToLower(filepath.Ext(*out)) {
	case ".svg":
		return export.ExportSVG(*out, st, b)
	case ".png":
		return export.ExportPNG(*out, st, b, export.PNGOptions{Scale: *scale})
	case ".pdf":
		return export.ExportPDF(*out, st, b)
	default:
		return fmt.Errorf("unsupported output format %q", filepath.Ext(*out))
	}
}

func loadTheme(path string) (ribbon.Source, error) {
	if path == "" {
		return nil, nil
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return attrs.LoadJSON(path)
	case ".yaml", ".yml":
		return attrs.LoadYAML(path)
	default:
		return nil, fmt.Errorf("unsupported theme format %q", filepath.Ext(path))
	}
}
