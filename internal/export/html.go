package export

import (
	"bytes"
	"fmt"
	"html/template"
	"strings"

	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"
	"gopkg.in/yaml.v3"
)

// HTMLRenderer turns a record into a standalone HTML report
type HTMLRenderer struct {
	markdown goldmark.Markdown
	page     *template.Template
}

// htmlPage is the data for the page template
type htmlPage struct {
	Title   string
	Content template.HTML
	CSS     template.CSS
}

// NewHTMLRenderer creates a renderer with GFM tables and highlighted code blocks
func NewHTMLRenderer() *HTMLRenderer {
	md := goldmark.New(
		goldmark.WithExtensions(
			extension.GFM,
			highlighting.NewHighlighting(
				highlighting.WithStyle("github"),
			),
		),
		goldmark.WithRendererOptions(
			html.WithXHTML(),
		),
	)

	return &HTMLRenderer{
		markdown: md,
		page:     template.Must(template.New("report").Parse(pageTemplate)),
	}
}

// Render builds the Markdown report for rec and converts it to HTML
func (r *HTMLRenderer) Render(rec Record) ([]byte, error) {
	source, err := Markdown(rec)
	if err != nil {
		return nil, err
	}

	var body bytes.Buffer
	if err := r.markdown.Convert([]byte(source), &body); err != nil {
		return nil, fmt.Errorf("failed to convert markdown: %w", err)
	}

	var out bytes.Buffer
	err = r.page.Execute(&out, htmlPage{
		Title:   rec.Title,
		Content: template.HTML(body.String()),
		CSS:     template.CSS(pageCSS),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to execute template: %w", err)
	}
	return out.Bytes(), nil
}

// Markdown returns the report source for rec
func Markdown(rec Record) (string, error) {
	data, err := yaml.Marshal(rec)
	if err != nil {
		return "", fmt.Errorf("failed to marshal yaml: %w", err)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", escapeMarkdown(rec.Title))
	if rec.Description != "" {
		fmt.Fprintf(&b, "%s\n\n", escapeMarkdown(rec.Description))
	}

	b.WriteString("| Setting | Value |\n|---|---|\n")
	row := func(name, value string) {
		if value == "" {
			return
		}
		fmt.Fprintf(&b, "| %s | %s |\n", name, codeSpan(value))
	}
	row("Short name", rec.ShortName)
	row("Theme color", rec.ThemeColor)
	row("Strategy", rec.Strategy)
	row("Behavior", rec.Behavior)
	row("Warn user", fmt.Sprint(rec.WarnUser))
	row("Inject register", rec.InjectRegister)
	row("Framework", rec.Framework)
	row("TypeScript", fmt.Sprint(rec.TypeScript))

	fmt.Fprintf(&b, "\n## Configuration\n\n```yaml\n%s```\n", data)
	return b.String(), nil
}

var markdownEscaper = strings.NewReplacer(
	`\`, `\\`, "`", "\\`", "*", `\*`, "_", `\_`, "#", `\#`, "<", "&lt;", ">", "&gt;",
)

func escapeMarkdown(s string) string {
	return markdownEscaper.Replace(s)
}

// codeSpan wraps s in a code span usable inside a table cell. The fence is
// one backtick longer than the longest backtick run in s.
func codeSpan(s string) string {
	s = strings.ReplaceAll(s, "\n", " ")
	longest, run := 0, 0
	for _, c := range s {
		if c == '`' {
			run++
			longest = max(longest, run)
		} else {
			run = 0
		}
	}
	fence := strings.Repeat("`", longest+1)
	if strings.HasPrefix(s, "`") || strings.HasSuffix(s, "`") {
		s = " " + s + " "
	}
	return fence + strings.ReplaceAll(s, "|", "\\|") + fence
}

const pageTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <meta name="generator" content="pwa-builder">
    <title>{{.Title}}</title>
    <style>{{.CSS}}</style>
</head>
<body>
    <main class="container">
        {{.Content}}
    </main>
</body>
</html>
`

const pageCSS = `
body {
    font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Helvetica, Arial, sans-serif;
    line-height: 1.6;
    color: #24292f;
    margin: 0;
}
.container { max-width: 860px; margin: 0 auto; padding: 32px; }
h1 { border-bottom: 1px solid #d0d7de; padding-bottom: 0.3em; }
table { border-collapse: collapse; width: 100%; margin-bottom: 16px; }
table th, table td { padding: 6px 13px; border: 1px solid #d0d7de; text-align: left; }
pre { border-radius: 6px; padding: 16px; overflow: auto; }
`
