package transport

import (
	"bytes"
	"io"
	"net/http"
)

func clone(r *http.Request) *http.Request {
	cloned := r.Clone(r.Context())
	// deep-copy body so the caller's request stays readable
	if r.Body != nil {
		buf, _ := io.ReadAll(r.Body)
		r.Body = io.NopCloser(bytes.NewBuffer(buf))
		cloned.Body = io.NopCloser(bytes.NewBuffer(buf))
	}
	return cloned
}
