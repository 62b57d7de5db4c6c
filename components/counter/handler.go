// Package counter serves the /api/counter endpoint: a single database row
// whose value every request increments and re-renders.
package counter

import (
	"fmt"

	"github.com/Unsuspicious-Industries/hrml/pkg/endpoint"
	"github.com/Unsuspicious-Industries/hrml/pkg/fragment"
	"github.com/Unsuspicious-Industries/hrml/pkg/store"
)

const (
	tableName = "counters"
	counterID = 1
)

// Component handles the counter endpoint.
type Component struct {
	store store.Store
}

// New declares the counters table and seeds the single counter row so the
// first increment starts from zero.
func New(s store.Store) (*Component, error) {
	if err := s.EnsureSchema(tableName, store.Schema{{Name: "value", Default: 0}}); err != nil {
		return nil, fmt.Errorf("counter: ensure schema: %w", err)
	}
	all, err := s.FindAll(tableName)
	if err != nil {
		return nil, fmt.Errorf("counter: find all: %w", err)
	}
	if len(all) == 0 {
		if _, err := s.Insert(tableName, store.Record{"value": 0}); err != nil {
			return nil, fmt.Errorf("counter: seed row: %w", err)
		}
	}
	return &Component{store: s}, nil
}

// Handle increments the counter regardless of verb and renders the new
// value with its increment button.
func (c *Component) Handle(endpoint.Request) (string, error) {
	row, err := c.store.Find(tableName, counterID)
	if err != nil {
		return "", fmt.Errorf("counter: find: %w", err)
	}
	var current int64
	if row != nil {
		current = row.Int("value")
	}

	value := current + 1
	if err := c.store.Update(tableName, counterID, store.Record{"value": value}); err != nil {
		return "", fmt.Errorf("counter: update: %w", err)
	}

	return fragment.New().
		Div(fmt.Sprintf("%d", value), fragment.WithClass("count-value")).
		Button("Increment +1", &fragment.Trigger{
			Method: fragment.Post,
			URL:    "/api/counter/increment",
			Target: "#counter-display",
		}).
		Build(), nil
}
