package kitsu

// Anime is a single anime resource, retrieved via Client.GetAnime or
// Client.SearchAnime.
type Anime struct {
	// ID of the anime. The edge API delivers ids as opaque strings.
	ID string `json:"id"`

	// Kind of the resource. Should always be KindAnime.
	Kind Kind `json:"type"`

	// Links related to the anime itself.
	Links map[string]string `json:"links,omitempty"`

	// Attributes of the anime.
	Attributes AnimeAttributes `json:"attributes"`

	// Relationships of the anime.
	Relationships AnimeRelationships `json:"relationships,omitempty"`
}

// AiringStatus is the current airing status of the anime.
func (a *Anime) AiringStatus() AiringStatus {
	return a.Attributes.AiringStatus()
}

// URL is the kitsu.io page of the anime.
func (a *Anime) URL() string {
	return a.Attributes.URL()
}

// YouTubeURL is the URL to the anime's PV on YouTube, if it has one.
func (a *Anime) YouTubeURL() *string {
	return a.Attributes.YouTubeURL()
}

// AnimeAttributes is information about an Anime.
type AnimeAttributes struct {
	// Shortened nicknames for the anime.
	AbbreviatedTitles []string `json:"abbreviatedTitles,omitempty"`

	// Age rating for the anime, e.g. AgeRatingR.
	AgeRating *AgeRating `json:"ageRating,omitempty"`

	// Description of the age rating, e.g. "Violence, Profanity".
	AgeRatingGuide *string `json:"ageRatingGuide,omitempty"`

	// The average of all user ratings, e.g. 4.26984658306698.
	AverageRating *float64 `json:"averageRating,omitempty"`

	// Canonical title for the anime, e.g. "Attack on Titan".
	CanonicalTitle string `json:"canonicalTitle"`

	// The URL templates for the cover.
	CoverImage *CoverImage `json:"coverImage,omitempty"`

	// The cover's offset from the top, e.g. 263.
	CoverImageTopOffset int `json:"coverImageTopOffset,omitempty"`

	// Date the anime finished airing, e.g. "2013-09-28".
	EndDate *string `json:"endDate,omitempty"`

	// How many episodes the anime has, e.g. 25.
	EpisodeCount *int `json:"episodeCount,omitempty"`

	// How many minutes long each episode is, e.g. 24.
	EpisodeLength *int `json:"episodeLength,omitempty"`

	// How many favorites the anime has, e.g. 209.
	FavoritesCount *int `json:"favoritesCount,omitempty"`

	// Whether the anime is Not Safe For Work.
	NSFW bool `json:"nsfw,omitempty"`

	// The rank based on the popularity of the anime, e.g. 2.
	PopularityRank *int `json:"popularityRank,omitempty"`

	// The URL templates for the poster.
	PosterImage Image `json:"posterImage,omitempty"`

	// How many times each rating has been given to the anime.
	RatingFrequencies RatingFrequencies `json:"ratingFrequencies,omitempty"`

	// The rank of the anime based on its overall rating, e.g. 5.
	RatingRank *int `json:"ratingRank,omitempty"`

	// Show format of the anime, e.g. AnimeSubtypeTV.
	ShowType AnimeSubtype `json:"showType,omitempty"`

	// Unique slug used for page URLs, e.g. "attack-on-titan".
	Slug string `json:"slug"`

	// Date the anime started airing, e.g. "2013-04-07".
	StartDate string `json:"startDate,omitempty"`

	// The sub type of the anime.
	SubType *string `json:"subType,omitempty"`

	// Synopsis of the anime.
	Synopsis string `json:"synopsis,omitempty"`

	// The titles of the anime, keyed by language.
	Titles Titles `json:"titles,omitempty"`

	// The number of users who have marked the anime, e.g. 3232532.
	UserCount *int `json:"userCount,omitempty"`

	// YouTube video id for the PV, e.g. "n4Nj6Y_SNYI".
	YouTubeVideoID *string `json:"youtubeVideoId,omitempty"`
}

// AiringStatus is the current airing status of the anime: finished once
// an end date is known, airing otherwise.
func (a AnimeAttributes) AiringStatus() AiringStatus {
	if a.EndDate != nil {
		return AiringStatusFinished
	}
	return AiringStatusAiring
}

// URL is the kitsu.io page of the anime.
func (a AnimeAttributes) URL() string {
	return "https://kitsu.io/anime/" + a.Slug
}

// YouTubeURL is the URL to the anime's PV on YouTube, if it has one.
func (a AnimeAttributes) YouTubeURL() *string {
	if a.YouTubeVideoID == nil {
		return nil
	}
	u := youtubeURL(*a.YouTubeVideoID)
	return &u
}

// AnimeRelationships is the named link groups of an Anime.
type AnimeRelationships struct {
	Castings       Relationship `json:"castings,omitempty"`
	Episodes       Relationship `json:"episodes,omitempty"`
	Genres         Relationship `json:"genres,omitempty"`
	Installments   Relationship `json:"installments,omitempty"`
	Mappings       Relationship `json:"mappings,omitempty"`
	Reviews        Relationship `json:"reviews,omitempty"`
	StreamingLinks Relationship `json:"streamingLinks,omitempty"`
}

// AgeRating is the age rating of an Anime.
type AgeRating string

const (
	AgeRatingG       AgeRating = "G"
	AgeRatingPG      AgeRating = "PG"
	AgeRatingPG13    AgeRating = "PG-13"
	AgeRatingR       AgeRating = "R"
	AgeRatingR17     AgeRating = "R17"
	AgeRatingR17Plus AgeRating = "R17+"
	AgeRatingR18     AgeRating = "R18"
	AgeRatingR18Plus AgeRating = "R18+"
	AgeRatingTVY7    AgeRating = "TV-Y7"
)

func (r *AgeRating) UnmarshalJSON(data []byte) error {
	return decodeTag(data, r, "age rating",
		AgeRatingG, AgeRatingPG, AgeRatingPG13, AgeRatingR, AgeRatingR17,
		AgeRatingR17Plus, AgeRatingR18, AgeRatingR18Plus, AgeRatingTVY7)
}

// AnimeSubtype is the show format of an Anime.
type AnimeSubtype string

const (
	AnimeSubtypeMovie   AnimeSubtype = "movie"
	AnimeSubtypeMusic   AnimeSubtype = "music"
	AnimeSubtypeONA     AnimeSubtype = "ONA"
	AnimeSubtypeOVA     AnimeSubtype = "OVA"
	AnimeSubtypeSpecial AnimeSubtype = "special"
	AnimeSubtypeTV      AnimeSubtype = "TV"
)

func (t *AnimeSubtype) UnmarshalJSON(data []byte) error {
	return decodeTag(data, t, "anime subtype",
		AnimeSubtypeMovie, AnimeSubtypeMusic, AnimeSubtypeONA,
		AnimeSubtypeOVA, AnimeSubtypeSpecial, AnimeSubtypeTV)
}
