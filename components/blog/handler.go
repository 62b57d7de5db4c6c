// Package blog serves the blog-post resource: create, inline edit, update,
// delete and a newest-first listing with collapsed previews.
package blog

import (
	"fmt"
	"sort"

	"github.com/Unsuspicious-Industries/hrml/pkg/endpoint"
	"github.com/Unsuspicious-Industries/hrml/pkg/fragment"
	"github.com/Unsuspicious-Industries/hrml/pkg/store"
)

const (
	tableName     = "blog_posts"
	defaultAuthor = "Admin"
)

// Component handles the /api/blog endpoint.
type Component struct {
	store store.Store
}

// New declares the blog_posts table and returns the component.
func New(s store.Store) (*Component, error) {
	schema := store.Schema{
		{Name: "title"},
		{Name: "content"},
		{Name: "author", Default: defaultAuthor},
		{Name: "created_at", Timestamp: true},
	}
	if err := s.EnsureSchema(tableName, schema); err != nil {
		return nil, fmt.Errorf("blog: ensure schema: %w", err)
	}
	return &Component{store: s}, nil
}

// Handle routes one request to its verb. Unknown verbs list.
func (c *Component) Handle(req endpoint.Request) (string, error) {
	cmd := req.Command()
	switch cmd.Verb {
	case endpoint.VerbCreate:
		return c.create(req)
	case endpoint.VerbEdit:
		return c.edit(cmd)
	case endpoint.VerbUpdate:
		return c.update(cmd, req)
	case endpoint.VerbDelete:
		return c.remove(cmd)
	default:
		return c.list()
	}
}

// create inserts a post. Missing required fields mean nothing (or an
// incomplete form) was submitted; the response is silently empty so the
// page does not stack error messages.
func (c *Component) create(req endpoint.Request) (string, error) {
	title := req.Field("title")
	content := req.Field("content")
	if title == "" || content == "" {
		return "", nil
	}

	fields := store.Record{"title": title, "content": content}
	if author := req.Field("author"); author != "" {
		fields["author"] = author
	}

	id, err := c.store.Insert(tableName, fields)
	if err != nil {
		return "", fmt.Errorf("blog: insert: %w", err)
	}
	post, err := c.store.Find(tableName, id)
	if err != nil {
		return "", fmt.Errorf("blog: find %d: %w", id, err)
	}
	return renderPostItem(post), nil
}

// edit returns the inline edit form. A malformed id or a missing post is a
// read-back flow, so the user gets a visible error fragment.
func (c *Component) edit(cmd endpoint.Command) (string, error) {
	if !cmd.HasID() {
		return errorFragment("Invalid post ID"), nil
	}
	post, err := c.store.Find(tableName, cmd.ID)
	if err != nil {
		return "", fmt.Errorf("blog: find %d: %w", cmd.ID, err)
	}
	if post == nil {
		return errorFragment("Post not found"), nil
	}
	return renderEditForm(post), nil
}

func (c *Component) update(cmd endpoint.Command, req endpoint.Request) (string, error) {
	title := req.Field("title")
	content := req.Field("content")
	if !cmd.HasID() || title == "" || content == "" {
		return errorFragment("Invalid update data"), nil
	}

	fields := store.Record{"title": title, "content": content}
	if author := req.Field("author"); author != "" {
		fields["author"] = author
	}
	if err := c.store.Update(tableName, cmd.ID, fields); err != nil {
		return "", fmt.Errorf("blog: update %d: %w", cmd.ID, err)
	}

	post, err := c.store.Find(tableName, cmd.ID)
	if err != nil {
		return "", fmt.Errorf("blog: find %d: %w", cmd.ID, err)
	}
	if post == nil {
		return errorFragment("Post not found"), nil
	}
	return renderPostItem(post), nil
}

// remove deletes the post. Delete is idempotent, so a missing or
// malformed id yields the same empty fragment a successful delete does.
func (c *Component) remove(cmd endpoint.Command) (string, error) {
	if !cmd.HasID() {
		return "", nil
	}
	if err := c.store.Delete(tableName, cmd.ID); err != nil {
		return "", fmt.Errorf("blog: delete %d: %w", cmd.ID, err)
	}
	return "", nil
}

func (c *Component) list() (string, error) {
	posts, err := c.store.FindAll(tableName)
	if err != nil {
		return "", fmt.Errorf("blog: find all: %w", err)
	}
	if len(posts) == 0 {
		return renderEmptyState(), nil
	}

	// Newest first. Timestamps are lexically sortable; rows without one
	// sort last.
	sort.SliceStable(posts, func(i, j int) bool {
		return posts[i].String("created_at") > posts[j].String("created_at")
	})

	b := fragment.New()
	for _, post := range posts {
		b.Raw(renderPostItem(post))
	}
	return b.Build(), nil
}

func errorFragment(message string) string {
	return fragment.New().Div(fragment.Escape(message), fragment.WithClass("error")).Build()
}
