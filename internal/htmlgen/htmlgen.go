// Package htmlgen renders the updated-details document (lightweight
// markdown from Google Docs) into the event details page.
package htmlgen

import (
	_ "embed"
	"fmt"
	"html"
	"regexp"
	"strings"
)

//go:embed details_template.html
var detailsTemplate string

// replacementMarker is where generated content begins; everything in
// the template before it is preserved verbatim.
const replacementMarker = `<h2 id="get_from_google_doc">Get From Google Doc</h2>`

var (
	sectionRe      = regexp.MustCompile(`^###\s+(.+?)(?:\s+###)?$`)
	subsectionRe   = regexp.MustCompile(`^##\s+(.+?)(?:\s+##)?$`)
	imgDirectiveRe = regexp.MustCompile(`^IMG\s+(.+)$`)
	imgTagRe       = regexp.MustCompile(`<img\s+src="[^"]+"[^>]*?alt="([^"]+)"[^>]*>`)
	boldRe         = regexp.MustCompile(`\*\*(.*?)\*\*`)
	linkRe         = regexp.MustCompile(`\[([^\]]+)\]\(([^)]+)\)`)
)

// GenerateDetailsHTML renders doc content into the details page.
// Sections (###) become h2 anchors, subsections (##) become h3, bullet
// lines become lists, and IMG directives pull matching images from the
// template by alt text. On any template problem it returns a minimal
// error page rather than failing.
func GenerateDetailsHTML(docContent string) string {
	markerStart := strings.Index(detailsTemplate, replacementMarker)
	bodyEnd := strings.Index(detailsTemplate, "</body>")
	if markerStart == -1 || bodyEnd == -1 {
		return "<html><body><h1>Error</h1><p>Could not generate page: template markers missing</p></body></html>"
	}

	preserved := detailsTemplate[:markerStart]
	footer := detailsTemplate[bodyEnd:]

	// Images available for IMG directives, keyed by lower-cased alt text.
	imageMap := make(map[string]string)
	for _, m := range imgTagRe.FindAllStringSubmatch(detailsTemplate, -1) {
		imageMap[strings.ToLower(m[1])] = m[0]
	}

	var b strings.Builder
	inList := false
	closeList := func() {
		if inList {
			b.WriteString("</ul>\n")
			inList = false
		}
	}

	for _, rawLine := range strings.Split(docContent, "\n") {
		line := strings.TrimSpace(rawLine)
		if line == "" {
			closeList()
			continue
		}

		if m := imgDirectiveRe.FindStringSubmatch(line); m != nil {
			alt := strings.ToLower(strings.TrimSpace(m[1]))
			if tag, ok := imageMap[alt]; ok {
				b.WriteString(tag + "\n")
			}
			continue
		}

		if m := sectionRe.FindStringSubmatch(line); m != nil {
			closeList()
			name := strings.TrimSpace(m[1])
			id := strings.ReplaceAll(strings.ReplaceAll(strings.ToLower(name), " ", "-"), "&", "and")
			fmt.Fprintf(&b, "<h2 id=%q>%s</h2>\n", id, html.EscapeString(name))
			continue
		}

		if m := subsectionRe.FindStringSubmatch(line); m != nil {
			closeList()
			fmt.Fprintf(&b, "<h3>%s</h3>\n", html.EscapeString(strings.TrimSpace(m[1])))
			continue
		}

		if strings.HasPrefix(line, "- ") || strings.HasPrefix(line, "* ") {
			if !inList {
				b.WriteString("<ul>\n")
				inList = true
			}
			fmt.Fprintf(&b, "<li>%s</li>\n", renderInline(strings.TrimSpace(line[2:])))
			continue
		}

		closeList()
		fmt.Fprintf(&b, "<p>%s</p>\n", renderInline(line))
	}
	closeList()

	return preserved + b.String() + footer
}

// renderInline escapes a line and renders the two supported markdown
// forms: **bold** and [text](url) links.
func renderInline(line string) string {
	escaped := html.EscapeString(line)
	processed := boldRe.ReplaceAllString(escaped, "<strong>$1</strong>")
	return linkRe.ReplaceAllString(processed, `<a href="$2">$1</a>`)
}
