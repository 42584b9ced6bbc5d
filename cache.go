package kitsu

import (
	"context"
	"strconv"

	"github.com/philippgille/gokv"
)

// CacheDBName is the cache DB name used by ClientWithCache.
const CacheDBName = "kitsu"

// ClientWithCache is a Client wrapper that caches get-by-id results in a
// gokv.Store, one bucket per resource kind.
//
// Searches always hit the network, and the wrapped Client itself stays
// cache-free; this is strictly opt-in behavior on top of it.
type ClientWithCache struct {
	*Client
	store store
}

// NewClientWithCache constructs a new Kitsu client with a get-by-id
// cache on top.
//
// The cache storage comes from Options.CacheStore, which defaults to an
// in-memory store.
func NewClientWithCache(options Options) *ClientWithCache {
	client := NewClient(options)
	s := store{
		openStore: func(bucketName string) (gokv.Store, error) {
			return client.options.CacheStore(CacheDBName, bucketName)
		},
	}

	return &ClientWithCache{
		Client: client,
		store:  s,
	}
}

// GetAnime retrieves an anime by its id, serving repeated lookups from
// the cache.
func (c *ClientWithCache) GetAnime(ctx context.Context, id int) (*Anime, error) {
	key := strconv.Itoa(id)
	cached, found, err := storeGet[Anime](&c.store, CacheBucketNameIDToAnime, key)
	if err != nil {
		return nil, Error(err.Error())
	}
	if found {
		c.logger.Log("anime with id %d served from cache", id)
		return &cached, nil
	}

	anime, err := c.Client.GetAnime(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := storeSet(&c.store, CacheBucketNameIDToAnime, key, *anime); err != nil {
		return nil, Error(err.Error())
	}
	return anime, nil
}

// GetManga retrieves a manga by its id, serving repeated lookups from
// the cache.
func (c *ClientWithCache) GetManga(ctx context.Context, id int) (*Manga, error) {
	key := strconv.Itoa(id)
	cached, found, err := storeGet[Manga](&c.store, CacheBucketNameIDToManga, key)
	if err != nil {
		return nil, Error(err.Error())
	}
	if found {
		c.logger.Log("manga with id %d served from cache", id)
		return &cached, nil
	}

	manga, err := c.Client.GetManga(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := storeSet(&c.store, CacheBucketNameIDToManga, key, *manga); err != nil {
		return nil, Error(err.Error())
	}
	return manga, nil
}

// GetUser retrieves a user by their id, serving repeated lookups from
// the cache.
func (c *ClientWithCache) GetUser(ctx context.Context, id int) (*User, error) {
	key := strconv.Itoa(id)
	cached, found, err := storeGet[User](&c.store, CacheBucketNameIDToUser, key)
	if err != nil {
		return nil, Error(err.Error())
	}
	if found {
		c.logger.Log("user with id %d served from cache", id)
		return &cached, nil
	}

	user, err := c.Client.GetUser(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := storeSet(&c.store, CacheBucketNameIDToUser, key, *user); err != nil {
		return nil, Error(err.Error())
	}
	return user, nil
}
