package model

// Method is an HTTP request method token, written to the request line
// verbatim.
type Method string

const (
	MethodGet     Method = "GET"
	MethodPost    Method = "POST"
	MethodPut     Method = "PUT"
	MethodHead    Method = "HEAD"
	MethodDelete  Method = "DELETE"
	MethodOptions Method = "OPTIONS"
)

// CustomMethod names a non-standard method, e.g. "PURGE" or "PATCH".
func CustomMethod(token string) Method {
	return Method(token)
}
