// Package todos serves the todo-list resource: a full CRUD cycle over one
// table, rendered as checkbox rows that toggle and delete in place.
package todos

import (
	"fmt"

	"github.com/Unsuspicious-Industries/hrml/pkg/endpoint"
	"github.com/Unsuspicious-Industries/hrml/pkg/fragment"
	"github.com/Unsuspicious-Industries/hrml/pkg/store"
)

const tableName = "todos"

const emptyState = `<p class="empty">No todos yet. Add one above!</p>`

// Component handles the /api/todos endpoint.
type Component struct {
	store store.Store
}

// New declares the todos table and returns the component.
func New(s store.Store) (*Component, error) {
	schema := store.Schema{
		{Name: "title"},
		{Name: "done", Default: 0},
		{Name: "created_at", Timestamp: true},
	}
	if err := s.EnsureSchema(tableName, schema); err != nil {
		return nil, fmt.Errorf("todos: ensure schema: %w", err)
	}
	return &Component{store: s}, nil
}

// Handle routes one request to its verb. Unknown verbs list.
func (c *Component) Handle(req endpoint.Request) (string, error) {
	cmd := req.Command()
	switch cmd.Verb {
	case endpoint.VerbCreate:
		return c.create(req)
	case endpoint.VerbToggle:
		return c.toggle(cmd)
	case endpoint.VerbDelete:
		return c.remove(cmd)
	default:
		return c.list()
	}
}

// create inserts a todo. An empty title means nothing was submitted, so
// the response is silently empty rather than an error fragment.
func (c *Component) create(req endpoint.Request) (string, error) {
	title := req.Field("title")
	if title == "" {
		return "", nil
	}
	id, err := c.store.Insert(tableName, store.Record{"title": title, "done": 0})
	if err != nil {
		return "", fmt.Errorf("todos: insert: %w", err)
	}
	return renderItem(id, title, false), nil
}

func (c *Component) toggle(cmd endpoint.Command) (string, error) {
	if !cmd.HasID() {
		return "", nil
	}
	todo, err := c.store.Find(tableName, cmd.ID)
	if err != nil {
		return "", fmt.Errorf("todos: find %d: %w", cmd.ID, err)
	}
	if todo == nil {
		return "", nil
	}

	done := todo.Int("done") == 0
	newDone := 0
	if done {
		newDone = 1
	}
	if err := c.store.Update(tableName, cmd.ID, store.Record{"done": newDone}); err != nil {
		return "", fmt.Errorf("todos: update %d: %w", cmd.ID, err)
	}
	return renderItem(cmd.ID, todo.String("title"), done), nil
}

// remove deletes the row and returns an empty fragment; with an outerHTML
// swap the empty response removes the element from the page.
func (c *Component) remove(cmd endpoint.Command) (string, error) {
	if !cmd.HasID() {
		return "", nil
	}
	if err := c.store.Delete(tableName, cmd.ID); err != nil {
		return "", fmt.Errorf("todos: delete %d: %w", cmd.ID, err)
	}
	return "", nil
}

func (c *Component) list() (string, error) {
	all, err := c.store.FindAll(tableName)
	if err != nil {
		return "", fmt.Errorf("todos: find all: %w", err)
	}
	if len(all) == 0 {
		return emptyState, nil
	}

	b := fragment.New()
	for _, todo := range all {
		b.Raw(renderItem(todo.ID(), todo.String("title"), todo.Int("done") != 0))
	}
	return b.Build(), nil
}

func renderItem(id int64, title string, done bool) string {
	itemClass := "todo-item"
	if done {
		itemClass = "todo-item done"
	}
	target := fmt.Sprintf("#todo-%d", id)

	inner := fragment.New().
		Checkbox("done", done, &fragment.Trigger{
			Method: fragment.Post,
			URL:    fmt.Sprintf("/api/todos/%d/toggle", id),
			Target: target,
		}).
		Span(title).
		Raw(fmt.Sprintf(`<button class="btn-delete" data-delete="/api/todos/%d/delete" data-target="%s" data-swap="outerHTML">&times;</button>`, id, target)).
		Build()

	return fragment.New().
		Div(inner, fragment.WithClass(itemClass), fragment.WithID(fmt.Sprintf("todo-%d", id))).
		Build()
}
