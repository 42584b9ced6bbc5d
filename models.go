package kitsu

import (
	"encoding/json"
	"fmt"
)

// Response is the envelope every endpoint answers with: the decoded
// payload plus auxiliary links relevant to the request (pagination and
// the like).
type Response[T any] struct {
	Data  T                 `json:"data"`
	Links map[string]string `json:"links,omitempty"`
}

// Links groups the URLs of one relationship.
type Links struct {
	// Related is the link to the related collection.
	Related string `json:"related,omitempty"`

	// Self is the direct link to the relationship itself.
	Self string `json:"self,omitempty"`
}

// Relationship is a named link group on a resource.
//
// It carries no embedded data, only link URLs; resolving them is up to
// the caller.
type Relationship struct {
	Links Links `json:"links"`
}

// Image is a list of links to a media item's relevant image sizes.
type Image struct {
	Large    *string `json:"large,omitempty"`
	Medium   *string `json:"medium,omitempty"`
	Original *string `json:"original,omitempty"`
	Small    *string `json:"small,omitempty"`
	Tiny     *string `json:"tiny,omitempty"`
}

// Largest retrieves the URL to the largest image available, if any,
// preferring the original.
func (i Image) Largest() *string {
	for _, u := range []*string{i.Original, i.Large, i.Medium, i.Small, i.Tiny} {
		if u != nil {
			return u
		}
	}
	return nil
}

// CoverImage is a list of links to a media item's cover sizes.
type CoverImage struct {
	Large    *string `json:"large,omitempty"`
	Original *string `json:"original,omitempty"`
	Small    *string `json:"small,omitempty"`
}

// Largest retrieves the URL to the largest cover available, if any,
// preferring the original.
func (i CoverImage) Largest() *string {
	for _, u := range []*string{i.Original, i.Large, i.Small} {
		if u != nil {
			return u
		}
	}
	return nil
}

// Titles is the set of titles of a media item, keyed by language.
type Titles struct {
	// En is the English title.
	En *string `json:"en,omitempty"`

	// EnJp is the romaji title.
	EnJp *string `json:"en_jp,omitempty"`

	// JaJp is the Japanese title.
	JaJp *string `json:"ja_jp,omitempty"`
}

// RatingFrequencies is how many times each rating has been given to the
// media item.
type RatingFrequencies struct {
	Rating0_0 int64 `json:"0.0,omitempty"`
	Rating0_5 int64 `json:"0.5,omitempty"`
	Rating1_0 int64 `json:"1.0,omitempty"`
	Rating1_5 int64 `json:"1.5,omitempty"`
	Rating2_0 int64 `json:"2.0,omitempty"`
	Rating2_5 int64 `json:"2.5,omitempty"`
	Rating3_0 int64 `json:"3.0,omitempty"`
	Rating3_5 int64 `json:"3.5,omitempty"`
	Rating4_0 int64 `json:"4.0,omitempty"`
	Rating4_5 int64 `json:"4.5,omitempty"`
	Rating5_0 int64 `json:"5.0,omitempty"`
}

// Kind discriminates the resource type of a result.
type Kind string

const (
	KindAnime Kind = "anime"
	KindDrama Kind = "drama"
	KindManga Kind = "manga"
	KindUser  Kind = "users"
)

func (k *Kind) UnmarshalJSON(data []byte) error {
	return decodeTag(data, k, "resource kind",
		KindAnime, KindDrama, KindManga, KindUser)
}

// AiringStatus is the airing (or publishing) status of a media item,
// derived from its dates rather than decoded from the API.
type AiringStatus string

const (
	AiringStatusAiring   AiringStatus = "airing"
	AiringStatusFinished AiringStatus = "finished"
)

// decodeTag decodes a JSON string into dst if it matches one of the
// allowed tags. Enumerations are closed sets: anything else is a decode
// failure, never a silently-defaulted variant.
func decodeTag[T ~string](data []byte, dst *T, what string, allowed ...T) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	for _, tag := range allowed {
		if T(s) == tag {
			*dst = tag
			return nil
		}
	}
	return fmt.Errorf("unknown %s %q", what, s)
}

func youtubeURL(id string) string {
	return "https://www.youtube.com/watch?v=" + id
}
