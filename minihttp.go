// Package minihttp is a small blocking HTTP(S) client in the spirit of
// python-requests: build a request descriptor, send it, read a parsed
// response. It speaks plain HTTP/1.1 with Connection: Close framing and
// supports forwarding http proxies as well as CONNECT-tunneling proxies.
package minihttp

import (
	"github.com/frankli0324/go-minihttp/internal"
	"github.com/frankli0324/go-minihttp/internal/httperr"
	"github.com/frankli0324/go-minihttp/internal/model"
)

type Client = internal.Client
type Dialer = internal.Dialer
type Request = model.Request
type PreparedRequest = model.PreparedRequest
type Response = model.Response
type Header = model.Header
type Method = model.Method

// DefaultTimeout is the read/write timeout a new Request starts with.
const DefaultTimeout = model.DefaultTimeout

const (
	MethodGet     = model.MethodGet
	MethodPost    = model.MethodPost
	MethodPut     = model.MethodPut
	MethodHead    = model.MethodHead
	MethodDelete  = model.MethodDelete
	MethodOptions = model.MethodOptions
)

// CustomMethod names a non-standard request method.
func CustomMethod(token string) Method {
	return model.CustomMethod(token)
}

// New starts a request descriptor for url.
func New(url string) (*Request, error) {
	return model.New(url)
}

// Error kinds. Every error returned by this package wraps one of these.
var (
	ErrParse         = httperr.ErrParse
	ErrConfig        = httperr.ErrConfig
	ErrProxyConfig   = httperr.ErrProxyConfig
	ErrProxy         = httperr.ErrProxy
	ErrIO            = httperr.ErrIO
	ErrTLS           = httperr.ErrTLS
	ErrTLSHandshake  = httperr.ErrTLSHandshake
	ErrResponseParse = httperr.ErrResponseParse
)
