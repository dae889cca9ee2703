// Package useragent derives the legacy vendor name and a short browser/OS
// summary from an HTTP User-Agent header.
//
// The vendor name is the value old browsers exposed as navigator.appName:
// "Microsoft Internet Explorer" for IE and anything masquerading as it,
// "Opera" for Opera identifying itself, and "Netscape" for every other
// Mozilla-compatible browser. Modern Gecko, WebKit and Blink browsers still
// report "Netscape", so deriving it from the header reproduces what the
// browser itself would have said.
//
// # Usage
//
//	info, err := useragent.Parse(r.UserAgent())
//	if err != nil {
//	    // ErrEmptyUserAgent: info is still usable and reports no vendor
//	}
//
//	css := stylesheet.Select(info.Vendor(), info.Raw())
//	log.Info("stylesheet selected", "client", info.ShortIdentifier())
//
// Detection is plain substring matching over curated keyword tables; no
// regular expressions are involved beyond version extraction.
package useragent
