package stylesheet

import (
	"context"
	"io"

	"github.com/a-h/templ"
)

// LinkID is the id attribute of the emitted link element. Element patches
// target it.
const LinkID = "stylesheet"

// Link returns a component rendering a single stylesheet link element
// followed by a newline.
func Link(href string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := io.WriteString(w,
			`<link rel="stylesheet" href="`+templ.EscapeString(href)+`" id="`+LinkID+`">`+"\n")
		return err
	})
}

// LinkFor returns the link component for a decision.
func LinkFor(d Decision) templ.Component {
	return Link(d.Href)
}

// WriteLink selects a stylesheet and writes its link element to w.
func (s *Selector) WriteLink(ctx context.Context, w io.Writer, vendor, userAgent string) error {
	return Link(s.Href(s.Select(vendor, userAgent))).Render(ctx, w)
}

// WriteLink selects a stylesheet with the default selector and writes its
// link element to w.
func WriteLink(ctx context.Context, w io.Writer, vendor, userAgent string) error {
	return defaultSelector.WriteLink(ctx, w, vendor, userAgent)
}
