package kitsu

import (
	"io"
	"net/http"
	"strings"
)

// roundTripFunc adapts a function into an http.RoundTripper, so tests
// can intercept requests without a listening server.
type roundTripFunc func(req *http.Request) (*http.Response, error)

func (f roundTripFunc) RoundTrip(req *http.Request) (*http.Response, error) {
	return f(req)
}

func newStubClient(fn roundTripFunc) *Client {
	options := DefaultOptions()
	options.HTTPClient = &http.Client{Transport: fn}
	return NewClient(options)
}

func stubResponse(status int, body string) *http.Response {
	return &http.Response{
		StatusCode: status,
		Header:     http.Header{"Content-Type": []string{contentType}},
		Body:       io.NopCloser(strings.NewReader(body)),
	}
}

const animeFixture = `{
	"data": {
		"id": "7442",
		"type": "anime",
		"links": {"self": "https://kitsu.io/api/edge/anime/7442"},
		"attributes": {
			"abbreviatedTitles": ["AoT"],
			"ageRating": "R",
			"ageRatingGuide": "Violence, Profanity",
			"averageRating": 4.26984658306698,
			"canonicalTitle": "Attack on Titan",
			"coverImage": {
				"original": "https://static.hummingbird.me/anime/7442/cover/original.png"
			},
			"coverImageTopOffset": 263,
			"endDate": "2013-09-28",
			"episodeCount": 25,
			"episodeLength": 24,
			"favoritesCount": 209,
			"nsfw": true,
			"popularityRank": 2,
			"posterImage": {
				"large": "https://static.hummingbird.me/anime/7442/poster/large.jpg",
				"small": "https://static.hummingbird.me/anime/7442/poster/small.jpg"
			},
			"ratingFrequencies": {"4.5": 2500, "5.0": 12000},
			"ratingRank": 5,
			"showType": "TV",
			"slug": "attack-on-titan",
			"startDate": "2013-04-07",
			"synopsis": "Several hundred years ago, humans were nearly exterminated by titans.",
			"titles": {
				"en": "Attack on Titan",
				"en_jp": "Shingeki no Kyojin"
			},
			"userCount": 3232532,
			"youtubeVideoId": "n4Nj6Y_SNYI"
		},
		"relationships": {
			"genres": {
				"links": {
					"related": "https://kitsu.io/api/edge/anime/7442/genres",
					"self": "https://kitsu.io/api/edge/anime/7442/relationships/genres"
				}
			}
		}
	}
}`

const mangaFixture = `{
	"data": {
		"id": "24147",
		"type": "manga",
		"attributes": {
			"averageRating": 4.34926964198231,
			"canonicalTitle": "Horimiya",
			"chapterCount": 124,
			"mangaType": "manga",
			"serialization": "GFantasy",
			"slug": "horimiya",
			"startDate": "2011-10-18",
			"titles": {"en_jp": "Horimiya"},
			"volumeCount": 16
		}
	}
}`

const userFixture = `{
	"data": {
		"id": "42603",
		"type": "users",
		"attributes": {
			"about": "I like chocolate.",
			"commentsCount": 34,
			"createdAt": "2014-09-01T12:39:11.782Z",
			"favoritesCount": 3,
			"followersCount": 12,
			"followingCount": 9,
			"gender": "female",
			"lifeSpentOnAnime": 114360,
			"name": "chitanda",
			"pastNames": ["eru"],
			"waifuOrHusbando": "waifu"
		},
		"relationships": {
			"waifu": {
				"links": {
					"related": "https://kitsu.io/api/edge/users/42603/waifu"
				}
			}
		}
	}
}`

const animeCollectionFixture = `{
	"data": [
		{
			"id": "7442",
			"type": "anime",
			"attributes": {
				"canonicalTitle": "Attack on Titan",
				"showType": "TV",
				"slug": "attack-on-titan",
				"startDate": "2013-04-07"
			}
		},
		{
			"id": "8671",
			"type": "anime",
			"attributes": {
				"canonicalTitle": "Attack on Titan: Ilse's Notebook",
				"showType": "OVA",
				"slug": "attack-on-titan-ilses-notebook",
				"startDate": "2013-12-09"
			}
		}
	],
	"links": {
		"first": "https://kitsu.io/api/edge/anime?page[limit]=10&page[offset]=0",
		"next": "https://kitsu.io/api/edge/anime?page[limit]=10&page[offset]=10"
	}
}`
