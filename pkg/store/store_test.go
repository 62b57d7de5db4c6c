package store

import (
	"errors"
	"path/filepath"
	"testing"
)

func openBackends(t *testing.T) map[string]Store {
	t.Helper()
	bolt, err := OpenBolt(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("open bolt: %v", err)
	}
	t.Cleanup(func() { bolt.Close() })
	return map[string]Store{
		"bolt":   bolt,
		"memory": NewMemory(),
	}
}

func TestInsertFind_RoundTrip(t *testing.T) {
	for name, s := range openBackends(t) {
		t.Run(name, func(t *testing.T) {
			id, err := s.Insert("todos", Record{"title": "write tests", "done": 0})
			if err != nil {
				t.Fatalf("insert: %v", err)
			}
			if id <= 0 {
				t.Fatalf("expected positive id, got %d", id)
			}

			rec, err := s.Find("todos", id)
			if err != nil {
				t.Fatalf("find: %v", err)
			}
			if rec == nil {
				t.Fatal("inserted row not found")
			}
			if got := rec.String("title"); got != "write tests" {
				t.Fatalf("title = %q", got)
			}
			if got := rec.Int("done"); got != 0 {
				t.Fatalf("done = %d", got)
			}
			if got := rec.ID(); got != id {
				t.Fatalf("id = %d, want %d", got, id)
			}
		})
	}
}

func TestFind_MissingIsNilNotError(t *testing.T) {
	for name, s := range openBackends(t) {
		t.Run(name, func(t *testing.T) {
			rec, err := s.Find("todos", 42)
			if err != nil {
				t.Fatalf("find on empty table: %v", err)
			}
			if rec != nil {
				t.Fatalf("expected nil record, got %v", rec)
			}
		})
	}
}

func TestDelete_Idempotent(t *testing.T) {
	for name, s := range openBackends(t) {
		t.Run(name, func(t *testing.T) {
			id, err := s.Insert("todos", Record{"title": "x"})
			if err != nil {
				t.Fatalf("insert: %v", err)
			}
			if err := s.Delete("todos", id); err != nil {
				t.Fatalf("delete: %v", err)
			}
			rec, err := s.Find("todos", id)
			if err != nil {
				t.Fatalf("find after delete: %v", err)
			}
			if rec != nil {
				t.Fatalf("row survived delete: %v", rec)
			}
			if err := s.Delete("todos", id); err != nil {
				t.Fatalf("second delete should no-op: %v", err)
			}
		})
	}
}

func TestUpdate_MergesPartialFields(t *testing.T) {
	for name, s := range openBackends(t) {
		t.Run(name, func(t *testing.T) {
			id, err := s.Insert("todos", Record{"title": "before", "done": 0})
			if err != nil {
				t.Fatalf("insert: %v", err)
			}
			if err := s.Update("todos", id, Record{"done": 1}); err != nil {
				t.Fatalf("update: %v", err)
			}
			rec, err := s.Find("todos", id)
			if err != nil {
				t.Fatalf("find: %v", err)
			}
			if got := rec.Int("done"); got != 1 {
				t.Fatalf("done = %d after update", got)
			}
			if got := rec.String("title"); got != "before" {
				t.Fatalf("omitted field changed: title = %q", got)
			}
		})
	}
}

func TestUpdate_MissingIDIsNoOp(t *testing.T) {
	for name, s := range openBackends(t) {
		t.Run(name, func(t *testing.T) {
			if err := s.Update("todos", 99, Record{"done": 1}); err != nil {
				t.Fatalf("update missing id: %v", err)
			}
			rec, err := s.Find("todos", 99)
			if err != nil {
				t.Fatalf("find: %v", err)
			}
			if rec != nil {
				t.Fatalf("update created a row: %v", rec)
			}
		})
	}
}

func TestFindAll_AscendingIDOrder(t *testing.T) {
	for name, s := range openBackends(t) {
		t.Run(name, func(t *testing.T) {
			for _, title := range []string{"a", "b", "c"} {
				if _, err := s.Insert("todos", Record{"title": title}); err != nil {
					t.Fatalf("insert: %v", err)
				}
			}
			rows, err := s.FindAll("todos")
			if err != nil {
				t.Fatalf("findall: %v", err)
			}
			if len(rows) != 3 {
				t.Fatalf("expected 3 rows, got %d", len(rows))
			}
			for i, want := range []string{"a", "b", "c"} {
				if got := rows[i].String("title"); got != want {
					t.Fatalf("row %d title = %q, want %q", i, got, want)
				}
			}
		})
	}
}

func TestFindAll_EmptyTable(t *testing.T) {
	for name, s := range openBackends(t) {
		t.Run(name, func(t *testing.T) {
			rows, err := s.FindAll("todos")
			if err != nil {
				t.Fatalf("findall: %v", err)
			}
			if len(rows) != 0 {
				t.Fatalf("expected no rows, got %d", len(rows))
			}
		})
	}
}

func TestEnsureSchema_AppliesDefaultsOnInsert(t *testing.T) {
	schema := Schema{
		{Name: "title"},
		{Name: "done", Default: 0},
		{Name: "author", Default: "Admin"},
		{Name: "created_at", Timestamp: true},
	}
	for name, s := range openBackends(t) {
		t.Run(name, func(t *testing.T) {
			if err := s.EnsureSchema("posts", schema); err != nil {
				t.Fatalf("ensure schema: %v", err)
			}
			// Declaring again on restart must not fail.
			if err := s.EnsureSchema("posts", schema); err != nil {
				t.Fatalf("re-declare schema: %v", err)
			}

			id, err := s.Insert("posts", Record{"title": "hello"})
			if err != nil {
				t.Fatalf("insert: %v", err)
			}
			rec, err := s.Find("posts", id)
			if err != nil {
				t.Fatalf("find: %v", err)
			}
			if got := rec.Int("done"); got != 0 {
				t.Fatalf("done default = %d", got)
			}
			if got := rec.String("author"); got != "Admin" {
				t.Fatalf("author default = %q", got)
			}
			if got := rec.String("created_at"); got == "" {
				t.Fatal("timestamp default not applied")
			}
		})
	}
}

func TestEnsureSchema_DoesNotOverrideSuppliedValues(t *testing.T) {
	schema := Schema{{Name: "author", Default: "Admin"}}
	for name, s := range openBackends(t) {
		t.Run(name, func(t *testing.T) {
			if err := s.EnsureSchema("posts", schema); err != nil {
				t.Fatalf("ensure schema: %v", err)
			}
			id, err := s.Insert("posts", Record{"author": "Ada"})
			if err != nil {
				t.Fatalf("insert: %v", err)
			}
			rec, err := s.Find("posts", id)
			if err != nil {
				t.Fatalf("find: %v", err)
			}
			if got := rec.String("author"); got != "Ada" {
				t.Fatalf("supplied value overridden: %q", got)
			}
		})
	}
}

func TestIDs_NotReusedAfterDelete(t *testing.T) {
	for name, s := range openBackends(t) {
		t.Run(name, func(t *testing.T) {
			first, err := s.Insert("todos", Record{"title": "a"})
			if err != nil {
				t.Fatalf("insert: %v", err)
			}
			if err := s.Delete("todos", first); err != nil {
				t.Fatalf("delete: %v", err)
			}
			second, err := s.Insert("todos", Record{"title": "b"})
			if err != nil {
				t.Fatalf("insert: %v", err)
			}
			if second == first {
				t.Fatalf("id %d reused after delete", first)
			}
		})
	}
}

func TestDecodeRow_CorruptDataIsDataError(t *testing.T) {
	_, err := decodeRow("todos", 7, []byte("\xc1not msgpack"))
	if err == nil {
		t.Fatal("expected error for corrupt row")
	}
	var de *DataError
	if !errors.As(err, &de) {
		t.Fatalf("expected DataError, got %T: %v", err, err)
	}
	if de.Table != "todos" || de.Key != 7 {
		t.Fatalf("error context = %+v", de)
	}
}
