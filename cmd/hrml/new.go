package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/AlecAivazis/survey/v2"
)

const scaffoldConfig = `server:
  host: 127.0.0.1
  port: 8080

paths:
  templates: templates
  static: static
  store: hrml.db

site:
  name: %s
  description: A web application built with HRML
`

const scaffoldBaseLayout = `<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>{{ site_name }}</title>
    <link rel="stylesheet" href="/static/css/style.css">
    <script src="/hrml.js"></script>
</head>
<body>
    <nav class="navbar">
        <div class="nav-brand"><a href="/">{{ site_name }}</a></div>
    </nav>

    <main class="container">
        {% block content %}{% endblock %}
    </main>

    <footer>
        <p>&copy; {{ site_name }}</p>
    </footer>
</body>
</html>
`

const scaffoldIndexPage = `{% extends "layouts/base.html" %}

{% block content %}
<section class="card">
    <h1>Welcome to {{ site_name }}</h1>
    <p>Edit <code>templates/pages/index.html</code> to change this page.</p>
</section>

<section class="card" id="todos">
    <h2>Todos</h2>
    <form data-post="/api/todos/create" data-target="#todo-list" data-swap="innerHTML" data-reset>
        <input type="text" name="title" placeholder="What needs doing?">
        <button type="submit" class="btn btn-primary">Add</button>
    </form>
    <div id="todo-list">
        <button class="btn btn-secondary" data-get="/api/todos" data-target="#todo-list" data-swap="innerHTML">Load todos</button>
    </div>
</section>

<section class="card" id="counter">
    <h2>Counter</h2>
    <div id="counter-display">
        <button class="btn btn-primary" data-post="/api/counter/increment" data-target="#counter-display" data-swap="innerHTML">Increment +1</button>
    </div>
</section>
{% endblock %}
`

const scaffoldStylesheet = `body {
    font-family: system-ui, sans-serif;
    margin: 0;
    color: #1f2430;
}

.container {
    max-width: 720px;
    margin: 0 auto;
    padding: 1rem;
}

.card {
    border: 1px solid #d8dce5;
    border-radius: 8px;
    padding: 1rem;
    margin-bottom: 1rem;
}

.btn {
    border: none;
    border-radius: 4px;
    padding: 0.4rem 0.8rem;
    cursor: pointer;
}

.btn-primary { background: #2b6cb0; color: #fff; }
.btn-secondary { background: #e2e8f0; }
.btn-danger { background: #c53030; color: #fff; }

.todo-item { display: flex; gap: 0.5rem; align-items: center; padding: 0.25rem 0; }
.todo-item.done span { text-decoration: line-through; color: #8a8f9c; }
.btn-delete { background: none; border: none; color: #c53030; cursor: pointer; }
.error { color: #c53030; }
.empty { color: #8a8f9c; }
`

// createProject scaffolds a new project directory. When name is empty the
// user is prompted for one.
func createProject(name string) error {
	if name == "" {
		prompt := &survey.Input{Message: "Project name:"}
		if err := survey.AskOne(prompt, &name, survey.WithValidator(survey.Required)); err != nil {
			return err
		}
	}

	projectPath := filepath.Clean(name)
	if _, err := os.Stat(projectPath); err == nil {
		return fmt.Errorf("directory %q already exists", projectPath)
	}

	fmt.Printf("Creating new HRML project: %s\n", name)

	dirs := []string{
		"templates/pages",
		"templates/layouts",
		"static/css",
		"static/js",
		"static/images",
	}
	for _, dir := range dirs {
		if err := os.MkdirAll(filepath.Join(projectPath, dir), 0o755); err != nil {
			return err
		}
	}

	files := map[string]string{
		"hrml.yaml":                   fmt.Sprintf(scaffoldConfig, filepath.Base(projectPath)),
		"templates/layouts/base.html": scaffoldBaseLayout,
		"templates/pages/index.html":  scaffoldIndexPage,
		"static/css/style.css":        scaffoldStylesheet,
	}
	for path, content := range files {
		if err := os.WriteFile(filepath.Join(projectPath, path), []byte(content), 0o644); err != nil {
			return err
		}
	}

	fmt.Println("Done! Next steps:")
	fmt.Printf("  cd %s\n", projectPath)
	fmt.Println("  hrml dev")
	return nil
}
