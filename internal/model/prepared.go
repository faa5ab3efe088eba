package model

import "time"

// PreparedRequest is the frozen, wire-ready view of a Request that the
// dialer and transport operate on. Snapshotting keeps the descriptor free
// to be mutated between sends.
type PreparedRequest struct {
	Method  Method
	Target  *Target
	Headers []Header
	Body    []byte
	HasBody bool
	Timeout time.Duration
	Proxy   *Target

	// InsecureSkipVerify disables certificate verification on https
	// targets.
	InsecureSkipVerify bool
	// AbsoluteForm selects the absolute-URI request-target. Only the
	// forward path through an http proxy routes on it; every other path
	// uses the origin form.
	AbsoluteForm bool
}

// Prepare snapshots the descriptor for one send.
func (r *Request) Prepare() (*PreparedRequest, error) {
	m := r.method
	if m == "" {
		m = MethodGet
	}
	return &PreparedRequest{
		Method:             m,
		Target:             r.target,
		Headers:            r.headers,
		Body:               r.body,
		HasBody:            r.hasBody,
		Timeout:            r.timeout,
		Proxy:              r.proxy,
		InsecureSkipVerify: !r.verify,
		AbsoluteForm:       r.proxy != nil && r.proxy.Scheme == "http",
	}, nil
}
