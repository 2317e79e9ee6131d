package middleware

import (
	"io"
	"mime"
	"net/http"
	"net/url"
	"strings"
)

// MethodOverrideParam is the query or form field browsers use to send PUT and DELETE.
const MethodOverrideParam = "_method"

const maxFormBody = 10 << 20

var overridableMethods = map[string]bool{
	http.MethodPut:    true,
	http.MethodPatch:  true,
	http.MethodDelete: true,
}

// MethodOverride rewrites a POST carrying _method before the router sees it.
// gin matches routes ahead of its middleware chain, so this wraps the engine
// instead of being registered with Use.
func MethodOverride(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodPost:
			if method := overrideMethod(r); method != "" {
				r.Method = method
			}
		case http.MethodDelete:
			parseDeleteBody(r)
		}
		next.ServeHTTP(w, r)
	})
}

// overrideMethod parses the body while the request is still a POST, since
// ParseForm ignores the body of the rewritten DELETE. The query wins over the body.
func overrideMethod(r *http.Request) string {
	parseErr := r.ParseForm()

	method := r.URL.Query().Get(MethodOverrideParam)
	if method == "" && parseErr == nil {
		method = r.PostForm.Get(MethodOverrideParam)
	}

	method = strings.ToUpper(strings.TrimSpace(method))
	if !overridableMethods[method] {
		return ""
	}
	return method
}

// parseDeleteBody fills r.PostForm from a urlencoded DELETE body, which
// http.Request.ParseForm skips for that method.
func parseDeleteBody(r *http.Request) {
	if r.Body == nil || r.PostForm != nil {
		return
	}
	ct, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if err != nil || ct != "application/x-www-form-urlencoded" {
		return
	}

	b, err := io.ReadAll(io.LimitReader(r.Body, maxFormBody))
	if err != nil {
		return
	}
	values, err := url.ParseQuery(string(b))
	if err != nil {
		return
	}
	r.PostForm = values
}
