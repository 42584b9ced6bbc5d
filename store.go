package kitsu

import "github.com/philippgille/gokv"

const (
	// CacheBucketNameIDToAnime maps anime id to the decoded anime.
	//
	// ["7711" => "{id: ..., attributes: ..., ...}"]
	CacheBucketNameIDToAnime = "id-to-anime"

	// CacheBucketNameIDToManga maps manga id to the decoded manga.
	CacheBucketNameIDToManga = "id-to-manga"

	// CacheBucketNameIDToUser maps user id to the decoded user.
	CacheBucketNameIDToUser = "id-to-user"
)

type store struct {
	openStore func(bucketName string) (gokv.Store, error)
	store     gokv.Store
}

func (s *store) open(bucketName string) error {
	st, err := s.openStore(bucketName)
	s.store = st
	return err
}

func (s *store) Close() error {
	if s.store == nil {
		return nil
	}
	return s.store.Close()
}

func storeGet[T any](s *store, bucketName, key string) (v T, found bool, err error) {
	err = s.open(bucketName)
	if err != nil {
		return
	}
	defer s.Close()

	found, err = s.store.Get(key, &v)
	return
}

func storeSet[T any](s *store, bucketName, key string, v T) (err error) {
	err = s.open(bucketName)
	if err != nil {
		return
	}
	defer s.Close()

	return s.store.Set(key, &v)
}
