// Package dialer opens the socket(s) for a single request attempt and
// layers TLS where the target calls for it. Every connection it hands out
// is fresh and armed with the request's read/write deadline; nothing is
// pooled or reused.
package dialer

import (
	"context"
	"crypto/tls"
	"net"
	"time"

	"github.com/frankli0324/go-minihttp/internal/httperr"
	"github.com/frankli0324/go-minihttp/internal/model"
)

var zeroDialer net.Dialer

// CoreDialer selects and executes one of the four wire paths:
//
//	proxy present, proxy scheme http -> forward: plain TCP to the proxy,
//	    the request itself carries the absolute URI
//	proxy present, any other scheme  -> tunnel: CONNECT through the proxy,
//	    then plaintext or TLS inside depending on the target scheme
//	no proxy, target scheme http     -> plain TCP to the target
//	no proxy, target scheme https    -> TCP to the target, then TLS
type CoreDialer struct {
	// TLSConfig, if set, is the base config for https targets. It is
	// cloned per connection; ServerName and InsecureSkipVerify are always
	// taken from the request.
	TLSConfig *tls.Config
}

// Dial returns a connected stream for r, ready for the framed request.
func (d *CoreDialer) Dial(ctx context.Context, r *model.PreparedRequest) (net.Conn, error) {
	if r.Proxy != nil {
		if r.Proxy.Scheme == "http" {
			// forwarding proxy: the proxy relays on the absolute URI,
			// no TLS regardless of the target scheme
			return d.dialTCP(ctx, r.Proxy.HostPort(), r.Timeout)
		}
		return d.dialTunnel(ctx, r)
	}
	conn, err := d.dialTCP(ctx, r.Target.HostPort(), r.Timeout)
	if err != nil {
		return nil, err
	}
	if r.Target.Scheme == "https" {
		return d.wrapTLS(ctx, conn, r)
	}
	return conn, nil
}

func (d *CoreDialer) dialTCP(ctx context.Context, hostport string, timeout time.Duration) (net.Conn, error) {
	nd := zeroDialer
	nd.Timeout = timeout
	conn, err := nd.DialContext(ctx, "tcp", hostport)
	if err != nil {
		return nil, httperr.Wrap(httperr.ErrIO, err)
	}
	if timeout > 0 {
		if err := conn.SetDeadline(time.Now().Add(timeout)); err != nil {
			conn.Close()
			return nil, httperr.Wrap(httperr.ErrIO, err)
		}
	}
	return conn, nil
}

// wrapTLS runs a client handshake over conn with the target host as the
// server name. The deadline set on conn covers the handshake as well.
func (d *CoreDialer) wrapTLS(ctx context.Context, conn net.Conn, r *model.PreparedRequest) (net.Conn, error) {
	config := d.TLSConfig.Clone()
	if config == nil {
		config = &tls.Config{}
	}
	config.ServerName = r.Target.Host
	config.InsecureSkipVerify = r.InsecureSkipVerify
	c := tls.Client(conn, config)
	if err := c.HandshakeContext(ctx); err != nil {
		conn.Close()
		return nil, httperr.Wrap(httperr.ErrTLSHandshake, err)
	}
	return c, nil
}
