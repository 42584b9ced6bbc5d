// Package kitsu provides a client for the Kitsu media-catalog API.
//
// The client supports retrieval of anime, manga and user resources,
// either by id or through filtered searches built with Search.
// Authenticated requests are not supported.
package kitsu

import (
	"context"
	"strconv"

	"github.com/luevano/kitsu/logger"
)

const apiURL = "https://kitsu.io/api/edge"

// Client is the Kitsu client.
//
// The zero value is not usable; construct it with NewClient.
// The configured http.Client is borrowed and never mutated.
type Client struct {
	options Options
	logger  *logger.Logger
}

// NewClient constructs a new Kitsu client.
//
// Use DefaultOptions for defaults; zero-valued Options fields fall back
// to them.
func NewClient(options Options) *Client {
	if options.HTTPClient == nil {
		options.HTTPClient = DefaultOptions().HTTPClient
	}
	if options.BaseURL == "" {
		options.BaseURL = apiURL
	}
	if options.CacheStore == nil {
		options.CacheStore = DefaultOptions().CacheStore
	}
	l := options.Logger
	if l == nil {
		l = logger.NewLogger()
	}

	return &Client{
		options: options,
		logger:  l,
	}
}

func (c *Client) String() string {
	return "Kitsu"
}

// SetLogger sets logger to use for this client.
//
// Setting a nil logger will create a new one.
func (c *Client) SetLogger(_logger *logger.Logger) {
	if _logger != nil {
		// c.logger is guaranteed to be non-nil
		*c.logger = *_logger
	} else {
		c.logger = logger.NewLogger()
	}
}

// Logger returns the set logger.
//
// Always returns a non-nil logger.
func (c *Client) Logger() *logger.Logger {
	return c.logger
}

// GetAnime retrieves an anime by its id.
func (c *Client) GetAnime(ctx context.Context, id int) (*Anime, error) {
	c.logger.Log("getting anime with id %d", id)
	return getResource[Anime](ctx, c, pathAnime, id)
}

// GetManga retrieves a manga by its id.
func (c *Client) GetManga(ctx context.Context, id int) (*Manga, error) {
	c.logger.Log("getting manga with id %d", id)
	return getResource[Manga](ctx, c, pathManga, id)
}

// GetUser retrieves a user by their id.
func (c *Client) GetUser(ctx context.Context, id int) (*User, error) {
	c.logger.Log("getting user with id %d", id)
	return getResource[User](ctx, c, pathUsers, id)
}

// SearchAnime searches anime with the given search parameters.
//
// A nil search returns the first page of results unfiltered.
func (c *Client) SearchAnime(ctx context.Context, search *Search) (Response[[]Anime], error) {
	c.logger.Log("searching anime with query %q", search.Encode())
	return searchResource[Anime](ctx, c, pathAnime, search)
}

// SearchManga searches manga with the given search parameters.
//
// A nil search returns the first page of results unfiltered.
func (c *Client) SearchManga(ctx context.Context, search *Search) (Response[[]Manga], error) {
	c.logger.Log("searching manga with query %q", search.Encode())
	return searchResource[Manga](ctx, c, pathManga, search)
}

// SearchUsers searches users with the given search parameters.
//
// A nil search returns the first page of results unfiltered.
func (c *Client) SearchUsers(ctx context.Context, search *Search) (Response[[]User], error) {
	c.logger.Log("searching users with query %q", search.Encode())
	return searchResource[User](ctx, c, pathUsers, search)
}

// RefreshAnime replaces the anime's contents with a freshly fetched copy
// of the same id, returning the old copy.
func (c *Client) RefreshAnime(ctx context.Context, anime *Anime) (Anime, error) {
	id, err := strconv.Atoi(anime.ID)
	if err != nil {
		return Anime{}, Error("anime id " + strconv.Quote(anime.ID) + " is not numeric")
	}

	fresh, err := c.GetAnime(ctx, id)
	if err != nil {
		return Anime{}, err
	}

	old := *anime
	*anime = *fresh
	return old, nil
}

// RefreshManga replaces the manga's contents with a freshly fetched copy
// of the same id, returning the old copy.
func (c *Client) RefreshManga(ctx context.Context, manga *Manga) (Manga, error) {
	id, err := strconv.Atoi(manga.ID)
	if err != nil {
		return Manga{}, Error("manga id " + strconv.Quote(manga.ID) + " is not numeric")
	}

	fresh, err := c.GetManga(ctx, id)
	if err != nil {
		return Manga{}, err
	}

	old := *manga
	*manga = *fresh
	return old, nil
}
