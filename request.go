package kitsu

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
)

const (
	pathAnime = "anime"
	pathManga = "manga"
	pathUsers = "users"

	contentType = "application/vnd.api+json"
)

// getResource requests a single resource from <base>/<path>/<id> and
// unwraps it from the envelope.
func getResource[T any](ctx context.Context, c *Client, path string, id int) (*T, error) {
	res, err := request[T](ctx, c, fmt.Sprintf("%s/%s/%d", c.options.BaseURL, path, id))
	if err != nil {
		return nil, err
	}
	return &res.Data, nil
}

// searchResource requests a collection from <base>/<path>?<query>,
// keeping the envelope for its pagination links.
func searchResource[T any](ctx context.Context, c *Client, path string, search *Search) (Response[[]T], error) {
	return request[[]T](ctx, c, fmt.Sprintf("%s/%s?%s", c.options.BaseURL, path, search.Encode()))
}

// request performs one GET against rawURL and decodes the envelope.
func request[T any](ctx context.Context, c *Client, rawURL string) (res Response[T], err error) {
	body, err := c.do(ctx, rawURL)
	if err != nil {
		return res, err
	}
	defer body.Close()

	if err := json.NewDecoder(body).Decode(&res); err != nil {
		return res, &DecodeError{Err: err}
	}
	return res, nil
}

// do issues the GET and maps the response status, handing back the
// still-open body on a 200. Both the blocking and the deferred
// operations funnel through here.
func (c *Client) do(ctx context.Context, rawURL string) (io.ReadCloser, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return nil, &URLError{Err: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, &URLError{Err: err}
	}
	req.Header.Set("Accept", contentType)
	req.Header.Set("Content-Type", contentType)
	if c.options.UserAgent != "" {
		req.Header.Set("User-Agent", c.options.UserAgent)
	}

	resp, err := c.options.HTTPClient.Do(req)
	if err != nil {
		return nil, &TransportError{Err: err}
	}

	switch resp.StatusCode {
	case http.StatusOK:
		return resp.Body, nil
	case http.StatusBadRequest:
		raw, _ := io.ReadAll(resp.Body)
		resp.Body.Close()
		return nil, &BadRequestError{Body: raw}
	case http.StatusUnauthorized:
		resp.Body.Close()
		return nil, &UnauthorizedError{}
	default:
		resp.Body.Close()
		return nil, &InvalidResponseError{Status: resp.StatusCode}
	}
}
