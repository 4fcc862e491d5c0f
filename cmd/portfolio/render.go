package main

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/aishwary11/portfolio"
	"github.com/aishwary11/portfolio/view"
)

func init() { //nolint: gochecknoinits
	renderCmd.Flags().StringVarP(&outDir, "out", "o", "dist", "Directory to write the static site to")
	renderCmd.Flags().StringVar(&renderTheme, "theme", string(portfolio.ThemeDark), "Theme of the pre-rendered page (dark or light)")
	rootCmd.AddCommand(renderCmd)
}

var (
	outDir      string
	renderTheme string

	renderCmd = &cobra.Command{
		Use:   "render",
		Short: "Pre-render the page and its assets to a directory",
		RunE: func(cmd *cobra.Command, _ []string) error {
			theme, err := portfolio.ParseTheme(renderTheme)
			if err != nil {
				return err
			}
			if err := renderSite(outDir, theme); err != nil {
				return err
			}
			cmd.Printf("Rendered site to %s\n", outDir)
			return nil
		},
	}
)

// renderSite writes index.html as first painted, plus the static assets.
func renderSite(dir string, theme portfolio.Theme) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	f, err := os.Create(filepath.Join(dir, "index.html"))
	if err != nil {
		return fmt.Errorf("creating index.html: %w", err)
	}
	if err := view.Render(f, view.Prerendered(theme)); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("writing index.html: %w", err)
	}

	static := filepath.Join(dir, "static")
	return fs.WalkDir(view.Static(), ".", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		target := filepath.Join(static, filepath.FromSlash(path))
		if d.IsDir() {
			return os.MkdirAll(target, 0o755)
		}
		data, err := fs.ReadFile(view.Static(), path)
		if err != nil {
			return err
		}
		return os.WriteFile(target, data, 0o644)
	})
}
