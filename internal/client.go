package internal

import (
	"context"
	"net"

	"github.com/frankli0324/go-minihttp/internal/dialer"
	"github.com/frankli0324/go-minihttp/internal/model"
	"github.com/frankli0324/go-minihttp/internal/transport"
)

// Dialer opens the connection a single request attempt runs over.
type Dialer interface {
	Dial(ctx context.Context, r *model.PreparedRequest) (net.Conn, error)
}

var (
	defaultDialer = &dialer.CoreDialer{}
	h1            = transport.HTTP1{}
)

// Client executes request descriptors. The zero value is ready to use.
// A Client holds no state between sends: every Do opens fresh sockets and
// closes them before returning, so one Client may be shared across
// goroutines.
type Client struct {
	// Dialer overrides connection establishment. Nil means the default
	// four-path CoreDialer.
	Dialer Dialer
}

func (c *Client) dial(ctx context.Context, r *model.PreparedRequest) (net.Conn, error) {
	if c.Dialer != nil {
		return c.Dialer.Dial(ctx, r)
	}
	return defaultDialer.Dial(ctx, r)
}

// Do sends one request and reads the complete response. The response
// stream is drained to EOF before parsing; every request offers
// Connection: Close, which makes EOF the response terminator.
func (c *Client) Do(ctx context.Context, req *model.Request) (*model.Response, error) {
	pr, err := req.Prepare()
	if err != nil {
		return nil, err
	}
	conn, err := c.dial(ctx, pr)
	if err != nil {
		return nil, err
	}
	defer conn.Close()

	if err := h1.Write(conn, pr); err != nil {
		return nil, err
	}
	raw, err := h1.ReadAll(conn)
	if err != nil {
		return nil, err
	}
	return transport.ParseResponse(raw)
}
