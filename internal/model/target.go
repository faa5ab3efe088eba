package model

import (
	"net"
	"net/url"
	"strconv"

	"golang.org/x/net/idna"

	"github.com/frankli0324/go-minihttp/internal/httperr"
)

var schemes = map[string]string{
	"http": "80", "https": "443",
}

// Target is a resolved request destination. It is built once from the raw
// URL and never mutated afterwards.
type Target struct {
	Scheme string
	Host   string
	Port   int

	// RequestURI is the origin-form request-target, path plus query.
	RequestURI string
	// AbsoluteURI is the absolute-form request-target used when the
	// request is forwarded through an http proxy.
	AbsoluteURI string
}

// HostPort renders the host:port pair used for dialing, the Host header
// and CONNECT request-targets.
func (t *Target) HostPort() string {
	return net.JoinHostPort(t.Host, strconv.Itoa(t.Port))
}

func resolveTarget(raw string) (*Target, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return nil, httperr.Wrap(httperr.ErrParse, err)
	}
	defPort, ok := schemes[u.Scheme]
	if !ok {
		return nil, httperr.New(httperr.ErrParse, "unsupported scheme in "+strconv.Quote(raw))
	}
	if u.Hostname() == "" {
		return nil, httperr.New(httperr.ErrParse, "no host in "+strconv.Quote(raw))
	}
	host, err := idnaASCII(u.Hostname())
	if err != nil {
		return nil, httperr.Wrap(httperr.ErrParse, err)
	}
	port := defPort
	if p := u.Port(); p != "" {
		port = p
	}
	n, err := strconv.Atoi(port)
	if err != nil {
		return nil, httperr.Wrap(httperr.ErrParse, err)
	}

	// the absolute form carries the URL as given, minus fragment and
	// credentials, which never belong on the wire
	abs := *u
	abs.Fragment = ""
	abs.User = nil

	return &Target{
		Scheme:      u.Scheme,
		Host:        host,
		Port:        n,
		RequestURI:  u.RequestURI(),
		AbsoluteURI: abs.String(),
	}, nil
}

func idnaASCII(host string) (string, error) {
	for i := 0; i < len(host); i++ {
		if host[i] >= 0x80 {
			return idna.Lookup.ToASCII(host)
		}
	}
	return host, nil
}
