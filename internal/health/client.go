package health

import (
	"bytes"
	"context"
	"io"
	"net/http"
)

var utf8BOM = []byte("\xef\xbb\xbf")

// Fetch issues a GET against URL and decodes the body. The status code is
// recorded but not checked: a non-2xx response with a JSON body decodes
// like any other.
func Fetch(ctx context.Context, client *http.Client) (*Response, error) {
	if client == nil {
		client = http.DefaultClient
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, URL, nil)
	if err != nil {
		return nil, &NetworkError{URL: URL, Err: err}
	}

	res, err := client.Do(req)
	if err != nil {
		return nil, &NetworkError{URL: URL, Err: err}
	}
	defer res.Body.Close()

	body, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, &NetworkError{URL: URL, Err: err}
	}

	v, err := Decode(bytes.TrimPrefix(body, utf8BOM))
	if err != nil {
		return nil, &DecodeError{StatusCode: res.StatusCode, Err: err}
	}

	return &Response{
		StatusCode: res.StatusCode,
		Value:      v,
	}, nil
}
