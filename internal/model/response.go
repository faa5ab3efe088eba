package model

import "strings"

// Response is a parsed HTTP response.
type Response struct {
	Proto      string
	StatusCode int
	Reason     string

	// Headers keeps the response headers in wire order, repeats included.
	Headers []Header
	Body    []byte
}

// HeaderValue returns the first value of the named header, matched
// case-insensitively.
func (r *Response) HeaderValue(name string) (string, bool) {
	for _, h := range r.Headers {
		if strings.EqualFold(h.Name, name) {
			return h.Value, true
		}
	}
	return "", false
}

// Text returns the body as a string.
func (r *Response) Text() string {
	return string(r.Body)
}
