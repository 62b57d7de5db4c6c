package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/Unsuspicious-Industries/hrml/pkg/config"
	"github.com/Unsuspicious-Industries/hrml/pkg/page"
)

// checkProject validates a project directory: configuration parses, the
// expected directories exist, and the index page renders.
func checkProject(projectPath string) error {
	if _, err := os.Stat(projectPath); err != nil {
		return fmt.Errorf("cannot access directory %q: %w", projectPath, err)
	}

	cfg, err := config.Load(filepath.Join(projectPath, config.DefaultFile))
	if err != nil {
		return err
	}
	fmt.Printf("[OK] Configuration loaded (site: %s)\n", cfg.Site.Name)

	templatesPath := filepath.Join(projectPath, cfg.Paths.Templates)
	if _, err := os.Stat(templatesPath); err != nil {
		return fmt.Errorf("templates directory not found: %s", templatesPath)
	}
	if _, err := os.Stat(filepath.Join(templatesPath, "layouts", "base.html")); err != nil {
		fmt.Println("[WARNING] Base layout not found at", filepath.Join(templatesPath, "layouts", "base.html"))
	}
	if _, err := os.Stat(filepath.Join(projectPath, cfg.Paths.Static)); err != nil {
		fmt.Println("[WARNING] Static directory not found:", filepath.Join(projectPath, cfg.Paths.Static))
	}

	engine, err := page.New(
		page.WithDir(templatesPath),
		page.WithGlobals(map[string]any{
			"site_name":        cfg.Site.Name,
			"site_description": cfg.Site.Description,
			"favicon":          cfg.Site.Favicon,
		}),
	)
	if err != nil {
		return err
	}
	if _, err := engine.Render("pages/index", nil); err != nil {
		return fmt.Errorf("index template failed to render: %w", err)
	}
	fmt.Println("[OK] Index template renders successfully")

	return nil
}
