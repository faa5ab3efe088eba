// Package transport frames HTTP/1.1 requests onto a byte stream and turns
// completed raw response bytes back into structured responses.
package transport

import (
	"bufio"
	"io"
	"strconv"

	"github.com/frankli0324/go-minihttp/internal/httperr"
	"github.com/frankli0324/go-minihttp/internal/model"
)

// HTTP1 writes requests to and drains responses from a single-use stream.
type HTTP1 struct{}

// Write serializes the header block followed by the body, if any, onto w.
func (t HTTP1) Write(w io.Writer, r *model.PreparedRequest) error {
	if err := t.writeHeader(w, r); err != nil {
		return err
	}
	if r.HasBody {
		if _, err := w.Write(r.Body); err != nil {
			return httperr.Wrap(httperr.ErrIO, err)
		}
	}
	return nil
}

// writeHeader writes the header block of an http 1.1 request, e.g.:
//
//	GET /a?b=1 HTTP/1.1\r\n
//	Host: example.com:80\r\n
//	Connection: Close\r\n
//	\r\n
//
// The request-target is the absolute URI when forwarding through an http
// proxy and the origin form everywhere else. Caller headers go out last,
// in insertion order, duplicates included.
func (t HTTP1) writeHeader(w io.Writer, r *model.PreparedRequest) error {
	header := bufio.NewWriter(w) // default bufsize is 4096

	header.WriteString(string(r.Method))
	header.WriteByte(' ')
	if r.AbsoluteForm {
		header.WriteString(r.Target.AbsoluteURI)
	} else {
		header.WriteString(r.Target.RequestURI)
	}
	header.WriteString(" HTTP/1.1\r\n")

	header.WriteString("Host: ")
	header.WriteString(r.Target.HostPort())
	header.WriteString("\r\n")
	header.WriteString("Connection: Close\r\n")
	if r.HasBody {
		header.WriteString("Content-Length: ")
		header.WriteString(strconv.Itoa(len(r.Body)))
		header.WriteString("\r\n")
	}
	for _, h := range r.Headers {
		header.WriteString(h.Name)
		header.WriteString(": ")
		header.WriteString(h.Value)
		header.WriteString("\r\n")
	}
	header.WriteString("\r\n")
	if err := header.Flush(); err != nil {
		return httperr.Wrap(httperr.ErrIO, err)
	}
	return nil
}

// ReadAll drains r to EOF and returns the raw response bytes. Every request
// offers Connection: Close, so the peer closing the stream is what ends a
// response; there is no Content-Length or chunked early exit.
func (t HTTP1) ReadAll(r io.Reader) ([]byte, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, httperr.Wrap(httperr.ErrIO, err)
	}
	return raw, nil
}
