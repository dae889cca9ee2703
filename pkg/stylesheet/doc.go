// Package stylesheet picks one of three fixed stylesheets for a browser and
// emits the link element that references it.
//
// The decision uses two inputs: the vendor name the browser reports
// (navigator.appName) and its identification string (User-Agent). Both are
// explicit parameters; nothing is read from ambient state.
//
//	vendor == "Microsoft Internet Explorer"             -> ie.css
//	vendor == "Netscape", UA has "Opera" and "BeOS"     -> opera.css
//	vendor == "Netscape"                                 -> netscape.css
//	anything else, including empty input                 -> opera.css
//
// The first matching row wins. Absent or malformed inputs never fail, they
// fall through to opera.css.
//
// # Usage
//
//	name := stylesheet.Select(vendor, ua)
//
//	// or with a configured selector
//	sel := stylesheet.New(
//	    stylesheet.WithBasePath("/static/common/"),
//	    stylesheet.WithMatcher(strsearch.LegacyIndex),
//	)
//	if err := sel.WriteLink(ctx, w, vendor, ua); err != nil {
//	    // write failed
//	}
//
// The link element is a templ.Component, so it can be embedded in any templ
// page head:
//
//	stylesheet.Link(sel.Href(name)).Render(ctx, w)
//
// # HTTP
//
// Middleware resolves the inputs for every request (see Inputs), runs the
// selector once and stores the Decision in the request context, where
// FromContext retrieves it.
package stylesheet
