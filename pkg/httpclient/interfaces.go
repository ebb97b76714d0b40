package httpclient

import "context"

// Response is a minimal HTTP response contract.
type Response interface {
	Body() []byte
	StatusCode() int
}

// Client abstracts HTTP calls so callers can inject mocks or different transports.
type Client interface {
	// PostForm sends form as an application/x-www-form-urlencoded POST body.
	PostForm(ctx context.Context, url string, headers, form map[string]string) (Response, error)
}
