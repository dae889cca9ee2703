package useragent

// Vendor names as reported by navigator.appName.
const (
	// VendorMSIE is reported by Internet Explorer and by browsers
	// masquerading as it.
	VendorMSIE = "Microsoft Internet Explorer"

	// VendorNetscape is reported by Netscape and every later
	// Mozilla-compatible browser.
	VendorNetscape = "Netscape"

	// VendorOpera is reported by Opera when it identifies as itself.
	VendorOpera = "Opera"
)

// Browser families
const (
	BrowserIE       = "ie"
	BrowserEdge     = "edge"
	BrowserOpera    = "opera"
	BrowserChrome   = "chrome"
	BrowserFirefox  = "firefox"
	BrowserSafari   = "safari"
	BrowserNetscape = "netscape"
	BrowserUnknown  = "unknown"
)

// Operating systems
const (
	OSWindows = "windows"
	OSMacOS   = "macos"
	OSiOS     = "ios"
	OSAndroid = "android"
	OSLinux   = "linux"
	OSBeOS    = "beos"
	OSHaiku   = "haiku"
	OSUnknown = "unknown"
)
