package blog

import (
	"fmt"
	"strings"

	"github.com/Unsuspicious-Industries/hrml/pkg/fragment"
	"github.com/Unsuspicious-Industries/hrml/pkg/store"
)

const previewLimit = 150

// renderPostItem renders one post as an article with a collapsed preview,
// the full text hidden behind a Read More toggle, and edit/delete actions
// that swap the whole article in place.
func renderPostItem(post store.Record) string {
	id := post.ID()
	title := fragment.Escape(post.String("title"))
	author := fragment.Escape(post.String("author"))
	content := fragment.Escape(post.String("content"))
	preview := fragment.Escape(truncate(post.String("content"), previewLimit))

	return fmt.Sprintf(`
    <article class="blog-post" id="post-%[1]d">
        <div class="post-header">
            <h2 class="post-title">%[2]s</h2>
            <div class="post-meta">
                <span class="author">By %[3]s</span>
                <span class="date">%[4]s</span>
            </div>
        </div>
        <div class="post-preview" id="preview-%[1]d">
            <p>%[5]s</p>
        </div>
        <div class="post-full" id="full-%[1]d" style="display:none;">
            <p style="white-space: pre-wrap;">%[6]s</p>
        </div>
        <div class="post-actions">
            <button class="btn btn-small" onclick="toggleContent('%[1]d')">Read More</button>
            <button class="btn btn-small btn-edit"
                    data-get="/api/blog/%[1]d/edit"
                    data-target="#post-%[1]d"
                    data-swap="outerHTML">Edit</button>
            <button class="btn btn-small btn-danger"
                    data-post="/api/blog/%[1]d/delete"
                    data-target="#post-%[1]d"
                    data-swap="outerHTML">Delete</button>
        </div>
    </article>
    `, id, title, author, dateDisplay(post.String("created_at")), preview, content)
}

// renderEditForm renders the in-place edit form for a post. Submitting
// swaps the article back to its rendered view; Cancel reloads the list.
func renderEditForm(post store.Record) string {
	id := post.ID()
	title := fragment.Escape(post.String("title"))
	author := fragment.Escape(post.String("author"))
	content := fragment.Escape(post.String("content"))

	return fmt.Sprintf(`
    <article class="blog-post-edit" id="post-%[1]d">
        <form data-post="/api/blog/%[1]d/update"
              data-target="#post-%[1]d"
              data-swap="outerHTML">
            <div class="form-group">
                <label>Title</label>
                <input type="text" name="title" value="%[2]s" required class="form-input">
            </div>
            <div class="form-group">
                <label>Author</label>
                <input type="text" name="author" value="%[3]s" class="form-input">
            </div>
            <div class="form-group">
                <label>Content</label>
                <textarea name="content" required class="form-textarea" rows="8">%[4]s</textarea>
            </div>
            <input type="hidden" name="id" value="%[1]d">
            <div class="form-actions">
                <button type="submit" class="btn btn-primary">Save Changes</button>
                <button type="button" class="btn btn-secondary"
                        data-get="/api/blog"
                        data-target="#posts-list"
                        data-swap="innerHTML">Cancel</button>
            </div>
        </form>
    </article>
    `, id, title, author, content)
}

func renderEmptyState() string {
	inner := fragment.New().
		H3("No blog posts yet").
		P("Create your first post using the form above!").
		Build()
	return fragment.New().Div(inner, fragment.WithClass("empty-state")).Build()
}

// truncate cuts content to limit runes for the preview, appending an
// ellipsis when anything was cut.
func truncate(content string, limit int) string {
	runes := []rune(content)
	if len(runes) <= limit {
		return content
	}
	return string(runes[:limit]) + "..."
}

// dateDisplay shows only the date part of a timestamp column value.
func dateDisplay(createdAt string) string {
	parts := strings.Fields(createdAt)
	if len(parts) == 0 {
		return "Unknown date"
	}
	return parts[0]
}
