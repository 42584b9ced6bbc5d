package kitsu

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// GetAnimeBatch retrieves multiple anime by id, one request per id in a
// separate goroutine.
//
// Results keep the order of ids. If any request fails the remaining
// requests are cancelled and the error is returned immediately.
func (c *Client) GetAnimeBatch(ctx context.Context, ids ...int) ([]Anime, error) {
	c.logger.Log("getting %d anime in batch", len(ids))
	return getBatch[Anime](ctx, c, pathAnime, ids)
}

// GetMangaBatch retrieves multiple manga by id, one request per id in a
// separate goroutine.
//
// Results keep the order of ids. If any request fails the remaining
// requests are cancelled and the error is returned immediately.
func (c *Client) GetMangaBatch(ctx context.Context, ids ...int) ([]Manga, error) {
	c.logger.Log("getting %d manga in batch", len(ids))
	return getBatch[Manga](ctx, c, pathManga, ids)
}

// GetUserBatch retrieves multiple users by id, one request per id in a
// separate goroutine.
//
// Results keep the order of ids. If any request fails the remaining
// requests are cancelled and the error is returned immediately.
func (c *Client) GetUserBatch(ctx context.Context, ids ...int) ([]User, error) {
	c.logger.Log("getting %d users in batch", len(ids))
	return getBatch[User](ctx, c, pathUsers, ids)
}

func getBatch[T any](ctx context.Context, c *Client, path string, ids []int) ([]T, error) {
	g, ctx := errgroup.WithContext(ctx)
	out := make([]T, len(ids))
	for i, id := range ids {
		i, id := i, id
		g.Go(func() error {
			res, err := getResource[T](ctx, c, path, id)
			if err != nil {
				return err
			}
			out[i] = *res
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}
