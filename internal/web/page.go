package web

import (
	"context"
	"io"

	"github.com/a-h/templ"

	"github.com/dmitrymomot/docstyle/pkg/stylesheet"
)

// Page renders a minimal document whose head links the selected
// stylesheet. The link is the first element after the charset declaration.
func Page(d stylesheet.Decision) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := io.WriteString(w, "<!DOCTYPE html>\n<html>\n<head>\n<meta charset=\"utf-8\">\n"); err != nil {
			return err
		}
		if err := stylesheet.LinkFor(d).Render(ctx, w); err != nil {
			return err
		}
		_, err := io.WriteString(w, `<title>docstyle</title>
</head>
<body>
<h1>Stylesheet</h1>
<table>
<tr><th>Vendor</th><td>`+templ.EscapeString(d.Vendor)+`</td></tr>
<tr><th>User agent</th><td><code>`+templ.EscapeString(d.UserAgent)+`</code></td></tr>
<tr><th>Stylesheet</th><td>`+templ.EscapeString(string(d.Name))+`</td></tr>
</table>
</body>
</html>
`)
		return err
	})
}
