package useragent

import "strings"

// Vendor returns the navigator.appName value a browser sending ua would
// report, or "" when ua does not look like a browser at all.
//
// Opera only reported "Opera" when its header started with "Opera/"; in its
// masquerading modes the header starts with "Mozilla/" and carries either
// an MSIE token (reported as IE) or none (reported as Netscape).
func Vendor(ua string) string {
	switch {
	case ua == "":
		return ""
	case strings.HasPrefix(ua, "Opera/"), strings.HasPrefix(ua, "Opera "):
		return VendorOpera
	case strings.Contains(ua, "MSIE "), strings.Contains(ua, "Trident/"):
		return VendorMSIE
	case strings.Contains(ua, "Mozilla/"):
		return VendorNetscape
	default:
		return ""
	}
}
