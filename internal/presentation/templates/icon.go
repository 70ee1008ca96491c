package templates

import (
	"fmt"
	"html/template"
	"regexp"
)

var iconNamePattern = regexp.MustCompile(`^[a-z0-9-]+$`)

// Icon renders an IcoMoon glyph reference. Unknown characters in name
// render an empty span.
func Icon(name string, size int, color string) template.HTML {
	if !iconNamePattern.MatchString(name) {
		return template.HTML(`<span class="icon"></span>`)
	}
	if size <= 0 {
		size = 24
	}
	return template.HTML(fmt.Sprintf(
		`<svg class="icon icon-%s" width="%d" height="%d" fill="%s" aria-hidden="true"><use href="/icons.svg#icon-%s"></use></svg>`,
		name, size, size, template.HTMLEscapeString(color), name,
	))
}

