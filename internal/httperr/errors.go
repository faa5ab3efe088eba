// Package httperr defines the error kinds a request can fail with. Every
// failure returned by this module wraps exactly one of these sentinels, so
// callers can classify with errors.Is without string matching.
package httperr

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	// ErrParse reports a target or proxy URL with no resolvable host.
	ErrParse = errors.New("minihttp: url parse error")
	// ErrConfig reports verify being set on a non-https target.
	ErrConfig = errors.New("minihttp: config error")
	// ErrProxyConfig reports a proxy/target scheme pairing rejected at
	// configuration time.
	ErrProxyConfig = errors.New("minihttp: proxy config error")
	// ErrProxy reports a failed CONNECT handshake.
	ErrProxy = errors.New("minihttp: proxy error")
	// ErrIO reports socket connect, read, write or deadline failures.
	ErrIO = errors.New("minihttp: io error")
	// ErrTLS reports a TLS configuration failure.
	ErrTLS = errors.New("minihttp: tls error")
	// ErrTLSHandshake reports a failed TLS handshake or certificate check.
	ErrTLSHandshake = errors.New("minihttp: tls handshake error")
	// ErrResponseParse reports malformed response bytes.
	ErrResponseParse = errors.New("minihttp: response parse error")
)

// Wrap ties err to its kind. Both ends of the chain stay visible to
// errors.Is.
func Wrap(kind, err error) error {
	if err == nil {
		return kind
	}
	return fmt.Errorf("%w: %w", kind, err)
}

// New builds an error of the given kind with a fixed message.
func New(kind error, msg string) error {
	return fmt.Errorf("%w: %s", kind, msg)
}
