// Package endpoint defines the request contract between the dispatcher and
// resource handlers, and the single normalization step that turns the
// overloaded action token into an explicit verb plus resource id.
package endpoint

import (
	"strconv"
	"strings"
)

// Request is what a handler receives for one invocation: an action
// discriminator, the submitted form fields, and an optional path-derived
// id. Handlers return exactly one HTML fragment (possibly empty) per
// request.
type Request struct {
	Action string
	Data   map[string]string
	ID     string
}

// Field returns a form field with surrounding whitespace trimmed.
func (r Request) Field(name string) string {
	return strings.TrimSpace(r.Data[name])
}

// Handler produces one fragment for one request. A returned error is an
// infrastructure fault (store unreachable, corrupt row) and propagates to
// the dispatcher; validation outcomes are expressed as fragments.
type Handler func(Request) (string, error)

// Verb is the normalized action of a request.
type Verb string

const (
	// VerbList is the default when the action is absent or unknown.
	VerbList      Verb = "list"
	VerbCreate    Verb = "create"
	VerbEdit      Verb = "edit"
	VerbUpdate    Verb = "update"
	VerbDelete    Verb = "delete"
	VerbToggle    Verb = "toggle"
	VerbIncrement Verb = "increment"
)

// Command is a Request with the action token resolved: an explicit verb
// and, when one could be parsed, a positive resource id. ID is 0 when the
// request carried no valid id.
type Command struct {
	Verb Verb
	ID   int64
}

// HasID reports whether the request carried a valid positive id.
func (c Command) HasID() bool {
	return c.ID > 0
}

// Command normalizes the request. Id resolution precedence: a leading
// "{id}/" segment of the action token, then the request's ID field, then
// an "id" form field. Both path-encoded ("1/delete") and body-encoded
// identifiers are supported because clients emit both shapes.
func (r Request) Command() Command {
	token := strings.Trim(strings.TrimSpace(r.Action), "/")

	var id int64
	verbToken := token
	if left, right, ok := strings.Cut(token, "/"); ok {
		if parsed := parseID(left); parsed > 0 {
			id = parsed
			verbToken = right
		}
	}
	if id == 0 {
		id = parseID(strings.TrimSpace(r.ID))
	}
	if id == 0 {
		id = parseID(strings.TrimSpace(r.Data["id"]))
	}

	return Command{Verb: verbOf(verbToken), ID: id}
}

func parseID(s string) int64 {
	if s == "" {
		return 0
	}
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil || id <= 0 {
		return 0
	}
	return id
}

var verbs = []Verb{VerbCreate, VerbEdit, VerbUpdate, VerbDelete, VerbToggle, VerbIncrement}

func verbOf(token string) Verb {
	token = strings.ToLower(strings.TrimSpace(token))
	if token == "" {
		return VerbList
	}
	for _, v := range verbs {
		if token == string(v) {
			return v
		}
	}
	// Clients historically sent compound tokens like "1/delete" or
	// "delete-confirm"; substring matching keeps those working.
	for _, v := range verbs {
		if strings.Contains(token, string(v)) {
			return v
		}
	}
	return VerbList
}
