package kitsu

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnimeRoundTrip(t *testing.T) {
	var res Response[Anime]
	require.NoError(t, json.Unmarshal([]byte(animeFixture), &res))

	out, err := json.Marshal(res)
	require.NoError(t, err)

	var again Response[Anime]
	require.NoError(t, json.Unmarshal(out, &again))
	assert.Equal(t, res, again)
}

func TestUserDecode(t *testing.T) {
	var res Response[User]
	require.NoError(t, json.Unmarshal([]byte(userFixture), &res))

	user := res.Data
	assert.Equal(t, KindUser, user.Kind)
	assert.Equal(t, "chitanda", user.Attributes.Name)
	assert.Equal(t, "https://kitsu.io/users/chitanda", user.URL())
	assert.Equal(t, []string{"eru"}, user.Attributes.PastNames)
	require.NotNil(t, user.Attributes.Gender)
	assert.Equal(t, GenderFemale, *user.Attributes.Gender)
	require.NotNil(t, user.Attributes.WaifuOrHusbando)
	assert.Equal(t, Waifu, *user.Attributes.WaifuOrHusbando)
	assert.Equal(t,
		"https://kitsu.io/api/edge/users/42603/waifu",
		user.Relationships.Waifu.Links.Related)
}

func TestAiringStatus(t *testing.T) {
	end := "2013-09-28"

	anime := AnimeAttributes{EndDate: &end}
	assert.Equal(t, AiringStatusFinished, anime.AiringStatus())
	anime.EndDate = nil
	assert.Equal(t, AiringStatusAiring, anime.AiringStatus())

	manga := MangaAttributes{EndDate: &end}
	assert.Equal(t, AiringStatusFinished, manga.PublishingStatus())
	manga.EndDate = nil
	assert.Equal(t, AiringStatusAiring, manga.PublishingStatus())
}

func TestResourceURLs(t *testing.T) {
	anime := &Anime{Attributes: AnimeAttributes{Slug: "attack-on-titan"}}
	assert.Equal(t, "https://kitsu.io/anime/attack-on-titan", anime.URL())
	assert.Nil(t, anime.YouTubeURL())

	videoID := "n4Nj6Y_SNYI"
	anime.Attributes.YouTubeVideoID = &videoID
	require.NotNil(t, anime.YouTubeURL())
	assert.Equal(t, "https://www.youtube.com/watch?v=n4Nj6Y_SNYI", *anime.YouTubeURL())

	manga := &Manga{Attributes: MangaAttributes{Slug: "horimiya"}}
	assert.Equal(t, "https://kitsu.io/manga/horimiya", manga.URL())
	assert.Nil(t, manga.YouTubeURL())
}

func TestImageLargest(t *testing.T) {
	original := "original.png"
	large := "large.png"
	tiny := "tiny.png"

	assert.Nil(t, Image{}.Largest())
	assert.Equal(t, &tiny, Image{Tiny: &tiny}.Largest())
	assert.Equal(t, &large, Image{Large: &large, Tiny: &tiny}.Largest())
	assert.Equal(t, &original, Image{Original: &original, Large: &large}.Largest())

	assert.Nil(t, CoverImage{}.Largest())
	assert.Equal(t, &original, CoverImage{Original: &original, Large: &large}.Largest())
	assert.Equal(t, &large, CoverImage{Large: &large}.Largest())
}

func TestEnumDecode(t *testing.T) {
	t.Run("known tags", func(t *testing.T) {
		var rating AgeRating
		require.NoError(t, json.Unmarshal([]byte(`"PG-13"`), &rating))
		assert.Equal(t, AgeRatingPG13, rating)

		var subtype AnimeSubtype
		require.NoError(t, json.Unmarshal([]byte(`"ONA"`), &subtype))
		assert.Equal(t, AnimeSubtypeONA, subtype)

		var mangaSubtype MangaSubtype
		require.NoError(t, json.Unmarshal([]byte(`"doujin"`), &mangaSubtype))
		assert.Equal(t, MangaSubtypeDoujin, mangaSubtype)

		var kind Kind
		require.NoError(t, json.Unmarshal([]byte(`"users"`), &kind))
		assert.Equal(t, KindUser, kind)
	})

	t.Run("unknown tags fail", func(t *testing.T) {
		var rating AgeRating
		err := json.Unmarshal([]byte(`"NC-17"`), &rating)
		assert.ErrorContains(t, err, `unknown age rating "NC-17"`)

		var subtype AnimeSubtype
		err = json.Unmarshal([]byte(`"tv"`), &subtype)
		assert.ErrorContains(t, err, "unknown anime subtype")

		var gender Gender
		err = json.Unmarshal([]byte(`"other"`), &gender)
		assert.ErrorContains(t, err, "unknown gender")

		var kind Kind
		err = json.Unmarshal([]byte(`"episodes"`), &kind)
		assert.ErrorContains(t, err, "unknown resource kind")
	})

	t.Run("non-string tags fail", func(t *testing.T) {
		var rating AgeRating
		assert.Error(t, json.Unmarshal([]byte(`13`), &rating))
	})
}

func TestRatingFrequenciesTags(t *testing.T) {
	var freq RatingFrequencies
	require.NoError(t, json.Unmarshal([]byte(`{"0.5": 3, "5.0": 7}`), &freq))
	assert.Equal(t, int64(3), freq.Rating0_5)
	assert.Equal(t, int64(7), freq.Rating5_0)
	assert.Zero(t, freq.Rating4_5)
}
