package kitsu

import (
	"context"
	"io"

	"github.com/samber/mo"
)

// Deferred variants of the client operations, for callers that want to
// start a request without blocking on it. Each future resolves or
// rejects with the exact same status and decode mapping as the blocking
// variant; the request is driven by a goroutine owned by the future, so
// cancellation happens through the passed context.

// GetAnimeDeferred starts retrieving an anime by its id.
func (c *Client) GetAnimeDeferred(ctx context.Context, id int) *mo.Future[*Anime] {
	return deferred(func() (*Anime, error) {
		return c.GetAnime(ctx, id)
	})
}

// GetMangaDeferred starts retrieving a manga by its id.
func (c *Client) GetMangaDeferred(ctx context.Context, id int) *mo.Future[*Manga] {
	return deferred(func() (*Manga, error) {
		return c.GetManga(ctx, id)
	})
}

// GetUserDeferred starts retrieving a user by their id.
func (c *Client) GetUserDeferred(ctx context.Context, id int) *mo.Future[*User] {
	return deferred(func() (*User, error) {
		return c.GetUser(ctx, id)
	})
}

// SearchAnimeDeferred starts an anime search with the given search
// parameters.
func (c *Client) SearchAnimeDeferred(ctx context.Context, search *Search) *mo.Future[Response[[]Anime]] {
	return deferred(func() (Response[[]Anime], error) {
		return c.SearchAnime(ctx, search)
	})
}

// SearchMangaDeferred starts a manga search with the given search
// parameters.
func (c *Client) SearchMangaDeferred(ctx context.Context, search *Search) *mo.Future[Response[[]Manga]] {
	return deferred(func() (Response[[]Manga], error) {
		return c.SearchManga(ctx, search)
	})
}

// SearchUsersDeferred starts a user search with the given search
// parameters.
func (c *Client) SearchUsersDeferred(ctx context.Context, search *Search) *mo.Future[Response[[]User]] {
	return deferred(func() (Response[[]User], error) {
		return c.SearchUsers(ctx, search)
	})
}

func deferred[T any](call func() (T, error)) *mo.Future[T] {
	return mo.NewFuture(func(resolve func(T), reject func(error)) {
		v, err := call()
		if err != nil {
			reject(err)
			return
		}
		resolve(v)
	})
}

// Raw issues a GET against the given resource path with an optional
// search query and hands back the status-checked body, so large
// responses can be consumed in chunks instead of decoded in one piece.
//
// The caller owns the returned ReadCloser. The usual non-200 status
// mapping applies before the body is handed back.
func (c *Client) Raw(ctx context.Context, path string, search *Search) (io.ReadCloser, error) {
	rawURL := c.options.BaseURL + "/" + path
	if query := search.Encode(); query != "" {
		rawURL += "?" + query
	}
	return c.do(ctx, rawURL)
}
