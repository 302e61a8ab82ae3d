package renderer

import (
	"bytes"
	"fmt"
	"html"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

// page wraps the rendered markdown in a minimal standalone document.
const page = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>%s</title>
</head>
<body>
%s</body>
</html>
`

// HTML converts a markdown document, tables included, into a standalone
// HTML page.
func HTML(title, markdown string) (string, error) {
	var body bytes.Buffer
	converter := goldmark.New(goldmark.WithExtensions(extension.GFM))
	if err := converter.Convert([]byte(markdown), &body); err != nil {
		return "", fmt.Errorf("cannot convert markdown to HTML: %w", err)
	}
	return fmt.Sprintf(page, html.EscapeString(title), body.String()), nil
}
