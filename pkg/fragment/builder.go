package fragment

import (
	"fmt"
	"html"
	"strings"
)

// Method is the HTTP verb hint carried by a trigger attribute. It selects
// which data-* attribute the element is rendered with.
type Method string

const (
	Get    Method = "get"
	Post   Method = "post"
	Delete Method = "delete"
)

// Swap selects how the client runtime applies a response fragment to the
// document: SwapInner replaces the target's children, SwapOuter replaces
// the target element itself (an empty response removes it).
type Swap string

const (
	SwapInner Swap = "innerHTML"
	SwapOuter Swap = "outerHTML"
)

// Trigger describes the network call an interactive element issues on
// activation and the selector whose content receives the response.
// Swap may be left empty; the element default applies (SwapInner for
// buttons, SwapOuter for checkboxes).
type Trigger struct {
	Method Method
	URL    string
	Target string
	Swap   Swap
}

// appendTo renders the trigger's attribute tokens in a fixed order.
// data-target and data-swap are only emitted together: a trigger without a
// target produces just the method attribute.
func (t *Trigger) appendTo(attrs []string, defaultSwap Swap) []string {
	method := t.Method
	if method == "" {
		method = Post
	}
	attrs = append(attrs, fmt.Sprintf(`data-%s="%s"`, method, escape(t.URL)))
	if t.Target != "" {
		swap := t.Swap
		if swap == "" {
			swap = defaultSwap
		}
		attrs = append(attrs,
			fmt.Sprintf(`data-target="%s"`, escape(t.Target)),
			fmt.Sprintf(`data-swap="%s"`, swap))
	}
	return attrs
}

// Attr configures optional element attributes.
type Attr func(*elemAttrs)

type elemAttrs struct {
	class string
	id    string
}

// WithClass sets the element's class attribute.
func WithClass(class string) Attr {
	return func(a *elemAttrs) { a.class = class }
}

// WithID sets the element's id attribute.
func WithID(id string) Attr {
	return func(a *elemAttrs) { a.id = id }
}

func applyAttrs(opts []Attr) elemAttrs {
	var a elemAttrs
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		opt(&a)
	}
	return a
}

// tokens renders the class/id attribute tokens. Absent attributes produce
// no token at all, never an empty-string attribute.
func (a elemAttrs) tokens() []string {
	var attrs []string
	if a.class != "" {
		attrs = append(attrs, fmt.Sprintf(`class="%s"`, escape(a.class)))
	}
	if a.id != "" {
		attrs = append(attrs, fmt.Sprintf(`id="%s"`, escape(a.id)))
	}
	return attrs
}

// Builder accumulates markup elements in call order. The zero value is
// ready to use; New exists for call-chaining at the start of an
// expression. Build is non-destructive, so a builder can keep growing
// after being rendered.
type Builder struct {
	parts []string
}

// New returns an empty Builder.
func New() *Builder {
	return &Builder{}
}

// Div appends a container element. The content is treated as markup and is
// not escaped; it is the seam for embedding fragments produced by nested
// builders. Class and id attributes are escaped.
func (b *Builder) Div(content string, opts ...Attr) *Builder {
	attrs := applyAttrs(opts).tokens()
	attrStr := ""
	if len(attrs) > 0 {
		attrStr = " " + strings.Join(attrs, " ")
	}
	b.parts = append(b.parts, fmt.Sprintf("<div%s>%s</div>", attrStr, content))
	return b
}

// P appends a paragraph. Content is escaped.
func (b *Builder) P(content string) *Builder {
	b.parts = append(b.parts, fmt.Sprintf("<p>%s</p>", escape(content)))
	return b
}

// Heading appends an h1–h6 element. Levels outside that range are clamped.
// Content is escaped.
func (b *Builder) Heading(level int, content string) *Builder {
	if level < 1 {
		level = 1
	} else if level > 6 {
		level = 6
	}
	b.parts = append(b.parts, fmt.Sprintf("<h%d>%s</h%d>", level, escape(content), level))
	return b
}

// H1 appends a level-1 heading.
func (b *Builder) H1(content string) *Builder { return b.Heading(1, content) }

// H2 appends a level-2 heading.
func (b *Builder) H2(content string) *Builder { return b.Heading(2, content) }

// H3 appends a level-3 heading.
func (b *Builder) H3(content string) *Builder { return b.Heading(3, content) }

// Span appends an inline text element. Content is escaped.
func (b *Builder) Span(content string) *Builder {
	b.parts = append(b.parts, fmt.Sprintf("<span>%s</span>", escape(content)))
	return b
}

// Button appends a button. A nil trigger renders a plain non-interactive
// button. When the trigger carries a target and no explicit swap, the swap
// defaults to innerHTML. The label is escaped. Buttons default to the
// "btn btn-primary" class unless WithClass overrides it.
func (b *Builder) Button(label string, trigger *Trigger, opts ...Attr) *Builder {
	a := applyAttrs(opts)
	if a.class == "" {
		a.class = "btn btn-primary"
	}
	attrs := a.tokens()
	if trigger != nil {
		attrs = trigger.appendTo(attrs, SwapInner)
	}
	b.parts = append(b.parts, fmt.Sprintf("<button %s>%s</button>", strings.Join(attrs, " "), escape(label)))
	return b
}

// Checkbox appends a checkbox input. The checked attribute is
// presence-only: it is never rendered with a value and is omitted entirely
// when checked is false. Trigger swaps default to outerHTML so a toggle
// response replaces the whole element.
func (b *Builder) Checkbox(name string, checked bool, trigger *Trigger) *Builder {
	attrs := []string{`type="checkbox"`, fmt.Sprintf(`name="%s"`, escape(name))}
	if checked {
		attrs = append(attrs, "checked")
	}
	if trigger != nil {
		attrs = trigger.appendTo(attrs, SwapOuter)
	}
	b.parts = append(b.parts, fmt.Sprintf("<input %s>", strings.Join(attrs, " ")))
	return b
}

// Input appends a text-style input field. Name, type and placeholder are
// escaped.
func (b *Builder) Input(name, inputType, placeholder string) *Builder {
	if inputType == "" {
		inputType = "text"
	}
	b.parts = append(b.parts, fmt.Sprintf(`<input type="%s" name="%s" placeholder="%s">`,
		escape(inputType), escape(name), escape(placeholder)))
	return b
}

// Link appends an anchor. Href and text are escaped.
func (b *Builder) Link(href, text string) *Builder {
	b.parts = append(b.parts, fmt.Sprintf(`<a href="%s">%s</a>`, escape(href), escape(text)))
	return b
}

// Raw appends caller-supplied markup verbatim with no escaping. This is
// the single escape hatch of the builder; callers own escaping any
// untrusted content first (SanitizeMarkup helps for whole snippets).
func (b *Builder) Raw(markup string) *Builder {
	b.parts = append(b.parts, markup)
	return b
}

// Len reports the number of accumulated elements.
func (b *Builder) Len() int {
	return len(b.parts)
}

// Build joins the accumulated elements with newlines in insertion order.
// The builder remains usable afterwards.
func (b *Builder) Build() string {
	return strings.Join(b.parts, "\n")
}

func (b *Builder) String() string {
	return b.Build()
}

// Escape HTML-escapes text for embedding in element content or attribute
// values. It is exported for handlers that assemble raw markup blocks and
// need the same escaping the builder methods apply.
func Escape(text string) string {
	return html.EscapeString(text)
}

func escape(text string) string {
	return html.EscapeString(text)
}
