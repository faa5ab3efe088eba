package dialer

import (
	"bytes"
	"context"
	"net"
	"strconv"
	"strings"

	"github.com/frankli0324/go-minihttp/internal/httperr"
	"github.com/frankli0324/go-minihttp/internal/model"
)

// connectReplyMax bounds the CONNECT reply read. A tunneling proxy answers
// with a single short status line, so one bounded read is enough.
const connectReplyMax = 1024

// dialTunnel opens a CONNECT tunnel through r.Proxy to r.Target, then for
// https targets layers TLS inside the tunnel. The connection to the proxy
// itself is plain TCP; the CONNECT request names the target, never the
// proxy:
//
//	CONNECT example.com:443 HTTP/1.1\r\n
//	Host: example.com:443\r\n
//	\r\n
func (d *CoreDialer) dialTunnel(ctx context.Context, r *model.PreparedRequest) (net.Conn, error) {
	conn, err := d.dialTCP(ctx, r.Proxy.HostPort(), r.Timeout)
	if err != nil {
		return nil, err
	}
	if err := handshakeConnect(conn, r.Target.HostPort()); err != nil {
		conn.Close()
		return nil, err
	}
	if r.Target.Scheme == "https" {
		return d.wrapTLS(ctx, conn, r)
	}
	return conn, nil
}

// handshakeConnect issues the CONNECT request and checks the reply. On any
// reply that does not announce an established connection the handshake
// fails and no further bytes are written to the proxy.
func handshakeConnect(conn net.Conn, hostport string) error {
	var req bytes.Buffer
	req.WriteString("CONNECT ")
	req.WriteString(hostport)
	req.WriteString(" HTTP/1.1\r\nHost: ")
	req.WriteString(hostport)
	req.WriteString("\r\n\r\n")
	if _, err := conn.Write(req.Bytes()); err != nil {
		return httperr.Wrap(httperr.ErrIO, err)
	}

	reply := make([]byte, connectReplyMax)
	n, err := conn.Read(reply)
	if err != nil {
		return httperr.Wrap(httperr.ErrProxy, err)
	}
	if !strings.Contains(strings.ToLower(string(reply[:n])), "connection established") {
		return httperr.New(httperr.ErrProxy, "proxy refused CONNECT: "+strconv.Quote(firstLine(reply[:n])))
	}
	return nil
}

func firstLine(b []byte) string {
	if i := bytes.IndexByte(b, '\r'); i >= 0 {
		b = b[:i]
	}
	return string(b)
}
