package todos

import (
	"strings"
	"testing"

	"github.com/Unsuspicious-Industries/hrml/pkg/endpoint"
	"github.com/Unsuspicious-Industries/hrml/pkg/store"
)

// recordingStore counts mutating calls so tests can assert which store
// operations a request triggered.
type recordingStore struct {
	store.Store
	inserted int
	deleted  []int64
}

func (s *recordingStore) Insert(table string, fields store.Record) (int64, error) {
	s.inserted++
	return s.Store.Insert(table, fields)
}

func (s *recordingStore) Delete(table string, id int64) error {
	s.deleted = append(s.deleted, id)
	return s.Store.Delete(table, id)
}

func newComponent(t *testing.T) (*Component, *recordingStore) {
	t.Helper()
	rec := &recordingStore{Store: store.NewMemory()}
	c, err := New(rec)
	if err != nil {
		t.Fatalf("new component: %v", err)
	}
	return c, rec
}

func TestCreate_RendersItem(t *testing.T) {
	c, _ := newComponent(t)
	got, err := c.Handle(endpoint.Request{
		Action: "create",
		Data:   map[string]string{"title": "buy milk"},
	})
	if err != nil {
		t.Fatalf("handle: %v", err)
	}
	for _, want := range []string{
		`id="todo-1"`,
		`class="todo-item"`,
		`<span>buy milk</span>`,
		`data-post="/api/todos/1/toggle"`,
		`data-delete="/api/todos/1/delete"`,
		`data-swap="outerHTML"`,
	} {
		if !strings.Contains(got, want) {
			t.Fatalf("fragment missing %q:\n%s", want, got)
		}
	}
	if strings.Contains(got, "checked") {
		t.Fatalf("new todo rendered checked:\n%s", got)
	}
}

func TestCreate_EmptyTitleIsSilent(t *testing.T) {
	c, rec := newComponent(t)
	got, err := c.Handle(endpoint.Request{
		Action: "create",
		Data:   map[string]string{"title": "   "},
	})
	if err != nil {
		t.Fatalf("handle: %v", err)
	}
	if got != "" {
		t.Fatalf("expected empty fragment, got %q", got)
	}
	if rec.inserted != 0 {
		t.Fatalf("insert called %d times for empty title", rec.inserted)
	}
}

func TestCreate_EscapesTitle(t *testing.T) {
	c, _ := newComponent(t)
	got, err := c.Handle(endpoint.Request{
		Action: "create",
		Data:   map[string]string{"title": `<script>alert("x")</script>`},
	})
	if err != nil {
		t.Fatalf("handle: %v", err)
	}
	if strings.Contains(got, "<script>") {
		t.Fatalf("unescaped title in fragment:\n%s", got)
	}
	if !strings.Contains(got, "&lt;script&gt;") {
		t.Fatalf("expected escaped title in fragment:\n%s", got)
	}
}

func TestToggle_FlipsDoneAndRendersChecked(t *testing.T) {
	c, rec := newComponent(t)
	id, err := rec.Store.Insert("todos", store.Record{"title": "stretch", "done": 0})
	if err != nil {
		t.Fatalf("seed: %v", err)
	}

	got, err := c.Handle(endpoint.Request{Action: "toggle", ID: "1"})
	if err != nil {
		t.Fatalf("handle: %v", err)
	}

	row, err := rec.Store.Find("todos", id)
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	if row.Int("done") != 1 {
		t.Fatalf("done = %d after toggle", row.Int("done"))
	}
	if !strings.Contains(got, "checked") {
		t.Fatalf("toggled fragment not checked:\n%s", got)
	}
	if strings.Contains(got, `done="false"`) {
		t.Fatalf("boolean attribute rendered with value:\n%s", got)
	}
	if !strings.Contains(got, `class="todo-item done"`) {
		t.Fatalf("done class missing:\n%s", got)
	}
}

func TestToggle_BackToUnchecked(t *testing.T) {
	c, rec := newComponent(t)
	if _, err := rec.Store.Insert("todos", store.Record{"title": "x", "done": 1}); err != nil {
		t.Fatalf("seed: %v", err)
	}
	got, err := c.Handle(endpoint.Request{Action: "toggle", ID: "1"})
	if err != nil {
		t.Fatalf("handle: %v", err)
	}
	if strings.Contains(got, "checked") {
		t.Fatalf("fragment still checked after untoggle:\n%s", got)
	}
	row, _ := rec.Store.Find("todos", 1)
	if row.Int("done") != 0 {
		t.Fatalf("done = %d", row.Int("done"))
	}
}

func TestToggle_MissingRecordIsSilent(t *testing.T) {
	c, _ := newComponent(t)
	got, err := c.Handle(endpoint.Request{Action: "toggle", ID: "9"})
	if err != nil {
		t.Fatalf("handle: %v", err)
	}
	if got != "" {
		t.Fatalf("expected empty fragment, got %q", got)
	}
}

func TestDelete_PathEncodedID(t *testing.T) {
	c, rec := newComponent(t)
	for range [5]struct{}{} {
		if _, err := rec.Store.Insert("todos", store.Record{"title": "x"}); err != nil {
			t.Fatalf("seed: %v", err)
		}
	}

	got, err := c.Handle(endpoint.Request{Action: "5/delete"})
	if err != nil {
		t.Fatalf("handle: %v", err)
	}
	if got != "" {
		t.Fatalf("expected empty fragment, got %q", got)
	}
	if len(rec.deleted) != 1 || rec.deleted[0] != 5 {
		t.Fatalf("delete calls = %v, want [5]", rec.deleted)
	}
}

func TestDelete_NoIDIsSilent(t *testing.T) {
	c, rec := newComponent(t)
	got, err := c.Handle(endpoint.Request{Action: "delete"})
	if err != nil {
		t.Fatalf("handle: %v", err)
	}
	if got != "" {
		t.Fatalf("expected empty fragment, got %q", got)
	}
	if len(rec.deleted) != 0 {
		t.Fatalf("delete reached the store without an id: %v", rec.deleted)
	}
}

func TestList_EmptyState(t *testing.T) {
	c, _ := newComponent(t)
	got, err := c.Handle(endpoint.Request{})
	if err != nil {
		t.Fatalf("handle: %v", err)
	}
	if got != emptyState {
		t.Fatalf("got %q, want %q", got, emptyState)
	}
}

func TestList_RendersAllInStoreOrder(t *testing.T) {
	c, rec := newComponent(t)
	for _, title := range []string{"first", "second"} {
		if _, err := rec.Store.Insert("todos", store.Record{"title": title, "done": 0}); err != nil {
			t.Fatalf("seed: %v", err)
		}
	}
	got, err := c.Handle(endpoint.Request{})
	if err != nil {
		t.Fatalf("handle: %v", err)
	}
	firstAt := strings.Index(got, "first")
	secondAt := strings.Index(got, "second")
	if firstAt < 0 || secondAt < 0 || firstAt > secondAt {
		t.Fatalf("list order wrong:\n%s", got)
	}
}
