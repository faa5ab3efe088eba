package model

import (
	"time"

	"github.com/frankli0324/go-minihttp/internal/httperr"
)

// Header is a single name/value pair. Header lists are kept as ordered
// slices rather than maps so that duplicates and insertion order survive
// onto the wire bit for bit.
type Header struct {
	Name  string
	Value string
}

// DefaultTimeout is the read/write timeout a new Request starts with.
const DefaultTimeout = 30 * time.Second

// Request is a mutable request descriptor. It is plain data: setters only
// touch in-memory state, the network is involved only once the descriptor
// is handed to a Client. A Request may be sent any number of times, each
// send being an independent connection attempt, but it is not safe for
// concurrent sends of the same descriptor.
type Request struct {
	target  *Target
	method  Method
	headers []Header
	body    []byte
	hasBody bool
	timeout time.Duration
	proxy   *Target
	verify  bool
}

// New parses rawurl and returns a descriptor with the defaults: method GET,
// 30 second timeout, certificate verification on, no proxy, no body.
func New(rawurl string) (*Request, error) {
	t, err := resolveTarget(rawurl)
	if err != nil {
		return nil, err
	}
	return &Request{
		target:  t,
		method:  MethodGet,
		timeout: DefaultTimeout,
		verify:  true,
	}, nil
}

func (r *Request) SetMethod(m Method) *Request {
	r.method = m
	return r
}

func (r *Request) Get() *Request     { return r.SetMethod(MethodGet) }
func (r *Request) Post() *Request    { return r.SetMethod(MethodPost) }
func (r *Request) Put() *Request     { return r.SetMethod(MethodPut) }
func (r *Request) Head() *Request    { return r.SetMethod(MethodHead) }
func (r *Request) Delete() *Request  { return r.SetMethod(MethodDelete) }
func (r *Request) Options() *Request { return r.SetMethod(MethodOptions) }

// SetHeaders replaces the configured header list. The list is written out
// in the given order, duplicates included.
func (r *Request) SetHeaders(headers []Header) *Request {
	r.headers = headers
	return r
}

// SetBody sets the request body. A non-nil empty slice still counts as a
// body and produces Content-Length: 0; no SetBody call at all means no
// Content-Length header and no body bytes.
func (r *Request) SetBody(body []byte) *Request {
	r.body = body
	r.hasBody = true
	return r
}

// SetBodyString sets the request body from a string.
func (r *Request) SetBodyString(body string) *Request {
	return r.SetBody([]byte(body))
}

// SetTimeout sets the read/write timeout applied to every socket a single
// send opens.
func (r *Request) SetTimeout(d time.Duration) *Request {
	r.timeout = d
	return r
}

// SetVerify controls certificate verification. It only applies to https
// targets; on any other scheme it returns ErrConfig and leaves the
// descriptor unchanged.
func (r *Request) SetVerify(verify bool) error {
	if r.target.Scheme != "https" {
		return httperr.New(httperr.ErrConfig, "verify setting only applies to https targets")
	}
	r.verify = verify
	return nil
}

// SetProxy routes the request through proxyURL. An http proxy relays
// documents in plaintext and therefore cannot carry an https target; that
// pairing is rejected here, at configuration time, rather than negotiated
// when sending. The last successful call wins.
func (r *Request) SetProxy(proxyURL string) error {
	p, err := resolveTarget(proxyURL)
	if err != nil {
		return err
	}
	if r.target.Scheme == "https" && p.Scheme == "http" {
		return httperr.New(httperr.ErrProxyConfig, "an http proxy cannot forward an https target")
	}
	r.proxy = p
	return nil
}
