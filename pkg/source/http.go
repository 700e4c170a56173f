package source

import (
	"context"
	"fmt"
	"io"
	"net/http"
)

type HTTPOpener struct {
	URL    string
	Client *http.Client
}

func (o *HTTPOpener) String() string {
	return o.URL
}

func (o *HTTPOpener) Open(ctx context.Context) (io.ReadCloser, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, o.URL, nil)
	if err != nil {
		return nil, fmt.Errorf("building request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	client := o.Client
	if client == nil {
		client = http.DefaultClient
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, &FetchError{Source: o.URL, Err: err}
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		resp.Body.Close()
		return nil, &FetchError{Source: o.URL, StatusCode: resp.StatusCode}
	}
	return resp.Body, nil
}
