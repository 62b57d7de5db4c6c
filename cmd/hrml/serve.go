package main

import (
	"fmt"
	"log"
	"net/http"
	"os"
	"strings"

	"github.com/Unsuspicious-Industries/hrml"
	"github.com/Unsuspicious-Industries/hrml/components/blog"
	"github.com/Unsuspicious-Industries/hrml/components/counter"
	"github.com/Unsuspicious-Industries/hrml/components/todos"
	"github.com/Unsuspicious-Industries/hrml/pkg/config"
	"github.com/Unsuspicious-Industries/hrml/pkg/dispatch"
	"github.com/Unsuspicious-Industries/hrml/pkg/page"
	"github.com/Unsuspicious-Industries/hrml/pkg/store"
)

func runServer(projectPath string, dev bool) error {
	if err := os.Chdir(projectPath); err != nil {
		return fmt.Errorf("cannot access directory %q: %w", projectPath, err)
	}

	cfg, err := config.Load(config.DefaultFile)
	if err != nil {
		return err
	}

	var st store.Store
	if dev {
		// Dev runs stay off disk so experiments don't pollute the store file.
		st = store.NewMemory()
	} else {
		bolt, err := store.OpenBolt(cfg.Paths.Store)
		if err != nil {
			return err
		}
		defer bolt.Close()
		st = bolt
	}

	engine, err := page.New(
		page.WithDir(cfg.Paths.Templates),
		page.WithGlobals(map[string]any{
			"site_name":        cfg.Site.Name,
			"site_description": cfg.Site.Description,
			"favicon":          cfg.Site.Favicon,
		}),
	)
	if err != nil {
		return err
	}

	api, err := buildAPI(st)
	if err != nil {
		return err
	}

	mux := http.NewServeMux()
	mux.Handle("/api/", api)
	mux.HandleFunc("/hrml.js", serveRuntimeScript)
	mux.Handle("/static/", http.StripPrefix("/static/", http.FileServer(http.Dir(cfg.Paths.Static))))
	mux.HandleFunc("/", servePages(engine))

	if dev {
		log.Printf("Starting HRML development server on %s", cfg.Addr())
	} else {
		log.Printf("Starting HRML server on %s", cfg.Addr())
	}
	log.Printf("   Server running at http://%s", cfg.Addr())

	return http.ListenAndServe(cfg.Addr(), mux)
}

func buildAPI(st store.Store) (*dispatch.Mux, error) {
	blogComponent, err := blog.New(st)
	if err != nil {
		return nil, err
	}
	counterComponent, err := counter.New(st)
	if err != nil {
		return nil, err
	}
	todosComponent, err := todos.New(st)
	if err != nil {
		return nil, err
	}

	api := dispatch.NewMux()
	api.Handle("blog", blogComponent.Handle)
	api.Handle("counter", counterComponent.Handle)
	api.Handle("todos", todosComponent.Handle)
	return api, nil
}

func serveRuntimeScript(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/javascript")
	_, _ = w.Write(hrml.RuntimeScript())
}

// servePages renders pages/{path}.html; the root path maps to the index
// page. Unknown pages are 404s rather than template errors.
func servePages(engine *page.Engine) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		name := strings.Trim(r.URL.Path, "/")
		if name == "" {
			name = "index"
		}

		html, err := engine.Render("pages/"+name, nil)
		if err != nil {
			http.Error(w, "Page not found", http.StatusNotFound)
			return
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = fmt.Fprint(w, html)
	}
}
