package minihttp

import (
	"context"

	"github.com/frankli0324/go-minihttp/internal/model"
)

var defaultClient = &Client{}

// Do sends a configured descriptor with the default client.
func Do(ctx context.Context, req *Request) (*Response, error) {
	return defaultClient.Do(ctx, req)
}

func send(url string, m Method) (*Response, error) {
	req, err := model.New(url)
	if err != nil {
		return nil, err
	}
	return defaultClient.Do(context.Background(), req.SetMethod(m))
}

// Get requests url with the GET method and default settings.
func Get(url string) (*Response, error) { return send(url, MethodGet) }

// Post requests url with the POST method and no body.
func Post(url string) (*Response, error) { return send(url, MethodPost) }

// Head requests url with the HEAD method.
func Head(url string) (*Response, error) { return send(url, MethodHead) }

// Delete requests url with the DELETE method.
func Delete(url string) (*Response, error) { return send(url, MethodDelete) }

// Put requests url with the PUT method and no body.
func Put(url string) (*Response, error) { return send(url, MethodPut) }

// Options requests url with the OPTIONS method.
func Options(url string) (*Response, error) { return send(url, MethodOptions) }
