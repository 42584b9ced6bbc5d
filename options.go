package kitsu

import (
	"net/http"
	"sync"

	"github.com/luevano/kitsu/logger"
	"github.com/philippgille/gokv"
	"github.com/philippgille/gokv/syncmap"
)

const defaultUserAgent = "kitsu.go (https://github.com/luevano/kitsu)"

// Options is options for the Kitsu client.
type Options struct {
	// HTTPClient is the http client used for the Kitsu API.
	//
	// The client only issues requests through it and never changes
	// its configuration.
	HTTPClient *http.Client

	// BaseURL is the origin and path prefix requests are made against.
	//
	// Defaults to the public edge API. Override it to point the client
	// at a test server.
	BaseURL string

	// UserAgent to use when making HTTP requests.
	UserAgent string

	// CacheStore returns a gokv.Store implementation for use as a cache
	// storage by ClientWithCache. The plain Client never touches it.
	CacheStore func(dbName, bucketName string) (gokv.Store, error)

	// Logger used to report request progress.
	Logger *logger.Logger
}

// DefaultOptions constructs default Options.
func DefaultOptions() Options {
	return Options{
		HTTPClient: &http.Client{},
		BaseURL:    apiURL,
		UserAgent:  defaultUserAgent,
		CacheStore: defaultCacheStore(),
		Logger:     logger.NewLogger(),
	}
}

// defaultCacheStore keeps one in-memory store per bucket, so repeated
// opens of the same bucket see the same data.
func defaultCacheStore() func(dbName, bucketName string) (gokv.Store, error) {
	var mu sync.Mutex
	stores := make(map[string]gokv.Store)

	return func(dbName, bucketName string) (gokv.Store, error) {
		mu.Lock()
		defer mu.Unlock()

		name := dbName + "/" + bucketName
		if s, ok := stores[name]; ok {
			return s, nil
		}
		s := syncmap.NewStore(syncmap.DefaultOptions)
		stores[name] = s
		return s, nil
	}
}
