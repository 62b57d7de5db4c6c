// Package dispatch is the HTTP boundary of the framework: it translates
// /api/{resource}[/{id}][/{action}] requests into endpoint.Request values,
// invokes the registered handler, and writes the fragment back. Handlers
// own the body content only; response framing lives here.
package dispatch

import (
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/Unsuspicious-Industries/hrml/pkg/endpoint"
)

// Mux routes API requests to resource handlers by the first path segment.
type Mux struct {
	handlers map[string]endpoint.Handler
}

// NewMux returns an empty Mux.
func NewMux() *Mux {
	return &Mux{handlers: make(map[string]endpoint.Handler)}
}

// Handle registers a handler for a resource name ("blog", "todos", ...).
func (m *Mux) Handle(resource string, h endpoint.Handler) {
	m.handlers[resource] = h
}

func (m *Mux) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet, http.MethodPost, http.MethodDelete:
	default:
		w.Header().Set("Allow", strings.Join([]string{http.MethodGet, http.MethodPost, http.MethodDelete}, ", "))
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	path := strings.Trim(strings.TrimPrefix(r.URL.Path, "/api"), "/")
	if path == "" {
		http.Error(w, http.StatusText(http.StatusNotFound), http.StatusNotFound)
		return
	}
	parts := strings.Split(path, "/")
	handler, ok := m.handlers[parts[0]]
	if !ok {
		http.Error(w, http.StatusText(http.StatusNotFound), http.StatusNotFound)
		return
	}

	req := endpoint.Request{Data: map[string]string{}}
	req.ID, req.Action = splitRest(parts[1:])

	if r.Method != http.MethodGet && r.Body != nil {
		body, err := io.ReadAll(r.Body)
		if err != nil {
			http.Error(w, "failed to read request body", http.StatusBadRequest)
			return
		}
		req.Data = parseForm(string(body))
	}

	frag, err := handler(req)
	if err != nil {
		http.Error(w, "endpoint error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = io.WriteString(w, frag)
}

// splitRest separates the path segments after the resource name into an
// optional numeric id and the action token:
//
//	/api/todos            -> "", ""
//	/api/todos/create     -> "", "create"
//	/api/todos/1/toggle   -> "1", "toggle"
func splitRest(rest []string) (id, action string) {
	if len(rest) == 0 {
		return "", ""
	}
	if _, err := strconv.ParseInt(rest[0], 10, 64); err == nil {
		return rest[0], strings.Join(rest[1:], "/")
	}
	return "", strings.Join(rest, "/")
}

// parseForm decodes a urlencoded body into a flat field map, keeping the
// first value per key. Pairs that fail to decode keep their raw value so a
// stray percent sign doesn't drop the whole field.
func parseForm(body string) map[string]string {
	data := make(map[string]string)
	if body == "" {
		return data
	}
	for _, pair := range strings.Split(body, "&") {
		key, value, ok := strings.Cut(pair, "=")
		if !ok {
			continue
		}
		decodedKey, err := url.QueryUnescape(key)
		if err != nil {
			decodedKey = key
		}
		decodedValue, err := url.QueryUnescape(value)
		if err != nil {
			decodedValue = value
		}
		if _, exists := data[decodedKey]; !exists {
			data[decodedKey] = decodedValue
		}
	}
	return data
}
