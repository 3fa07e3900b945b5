package htmlgen

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateDetailsHTMLSections(t *testing.T) {
	doc := strings.Join([]string{
		"### Food & Drink",
		"## Friday Dinner",
		"- **Bring** snacks",
		"- See [the site](https://sullstice.com) for more",
		"",
		"Plain paragraph text",
	}, "\n")

	page := GenerateDetailsHTML(doc)

	assert.Contains(t, page, `<h2 id="food-and-drink">Food &amp; Drink</h2>`)
	assert.Contains(t, page, "<h3>Friday Dinner</h3>")
	assert.Contains(t, page, "<ul>")
	assert.Contains(t, page, "<li><strong>Bring</strong> snacks</li>")
	assert.Contains(t, page, `<li>See <a href="https://sullstice.com">the site</a> for more</li>`)
	assert.Contains(t, page, "</ul>")
	assert.Contains(t, page, "<p>Plain paragraph text</p>")
}

func TestGenerateDetailsHTMLClosesListAtBlankLine(t *testing.T) {
	page := GenerateDetailsHTML("- one\n- two\n\n- three")

	// Two separate lists, not one.
	assert.Equal(t, 2, strings.Count(page, "<ul>"))
	assert.Equal(t, 2, strings.Count(page, "</ul>"))
}

func TestGenerateDetailsHTMLEscapesContent(t *testing.T) {
	page := GenerateDetailsHTML("<script>alert(1)</script>")

	assert.NotContains(t, page, "<script>alert(1)</script>")
	assert.Contains(t, page, "&lt;script&gt;")
}

func TestGenerateDetailsHTMLTrailingSectionMarkers(t *testing.T) {
	page := GenerateDetailsHTML("### Getting There ###")

	assert.Contains(t, page, `<h2 id="getting-there">Getting There</h2>`)
}

func TestGenerateDetailsHTMLPreservesTemplateShell(t *testing.T) {
	page := GenerateDetailsHTML("### Section")

	assert.Contains(t, page, "<html")
	assert.Contains(t, page, "</body>")
	// The placeholder heading from the template is replaced.
	assert.NotContains(t, page, "Get From Google Doc")
}

func TestGenerateDetailsHTMLImageDirective(t *testing.T) {
	page := GenerateDetailsHTML("IMG campsite")

	// The template already carries the campsite image once; the
	// directive inserts it a second time.
	assert.Equal(t, 2, strings.Count(page, `<img src="/images/campsite.jpg"`))
}

func TestGenerateDetailsHTMLUnknownImageDirective(t *testing.T) {
	page := GenerateDetailsHTML("IMG no-such-image\n### After")

	assert.NotContains(t, page, "no-such-image")
	assert.Contains(t, page, `<h2 id="after">After</h2>`)
}
