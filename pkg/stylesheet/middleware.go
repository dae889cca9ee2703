package stylesheet

import (
	"net/http"

	"github.com/dmitrymomot/docstyle/pkg/useragent"
)

// Request inputs that override what is derived from the User-Agent header.
const (
	VendorHeader     = "X-Vendor-Name"
	VendorQueryParam = "vendor"
	UAQueryParam     = "ua"
)

// Inputs returns the vendor name and identification string for r.
//
// The identification string is the "ua" query parameter if present, else
// the User-Agent header. The vendor is the "vendor" query parameter, then
// the X-Vendor-Name header, then the value derived from the identification
// string by useragent.Vendor.
func Inputs(r *http.Request) (vendor, userAgent string) {
	q := r.URL.Query()

	userAgent = r.UserAgent()
	if q.Has(UAQueryParam) {
		userAgent = q.Get(UAQueryParam)
	}

	switch {
	case q.Has(VendorQueryParam):
		vendor = q.Get(VendorQueryParam)
	case r.Header.Get(VendorHeader) != "":
		vendor = r.Header.Get(VendorHeader)
	default:
		vendor = useragent.Vendor(userAgent)
	}

	return vendor, userAgent
}

// Middleware selects a stylesheet once per request and stores the Decision
// in the request context. A nil selector uses the default one.
func Middleware(sel *Selector) func(http.Handler) http.Handler {
	if sel == nil {
		sel = defaultSelector
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			vendor, ua := Inputs(r)
			ctx := WithContext(r.Context(), sel.Decide(vendor, ua))
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
