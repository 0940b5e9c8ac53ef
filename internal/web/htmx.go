package web

import (
	"net/http"
)

// HTMXRequestHeader marks requests issued by HTMX that expect a fragment.
const HTMXRequestHeader = "HX-Request"

// IsHTMXRequest reports whether the request was initiated by HTMX. Any
// non-empty header value counts.
func IsHTMXRequest(r *http.Request) bool {
	if r == nil {
		return false
	}
	return r.Header.Get(HTMXRequestHeader) != ""
}
