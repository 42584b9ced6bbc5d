package kitsu

// Manga is a single manga resource, retrieved via Client.GetManga or
// Client.SearchManga.
type Manga struct {
	// ID of the manga. The edge API delivers ids as opaque strings.
	ID string `json:"id"`

	// Kind of the resource. Should always be KindManga.
	Kind Kind `json:"type"`

	// Links related to the manga itself.
	Links map[string]string `json:"links,omitempty"`

	// Attributes of the manga.
	Attributes MangaAttributes `json:"attributes"`
}

// PublishingStatus is the current publishing status of the manga.
func (m *Manga) PublishingStatus() AiringStatus {
	return m.Attributes.PublishingStatus()
}

// URL is the kitsu.io page of the manga.
func (m *Manga) URL() string {
	return m.Attributes.URL()
}

// YouTubeURL is the URL to the manga's related YouTube video, if it has
// one.
func (m *Manga) YouTubeURL() *string {
	return m.Attributes.YouTubeURL()
}

// MangaAttributes is information about a Manga.
type MangaAttributes struct {
	// Shortened nicknames for the manga.
	AbbreviatedTitles []string `json:"abbreviatedTitles,omitempty"`

	// The average of all user ratings, e.g. 4.34926964198231.
	AverageRating *float64 `json:"averageRating,omitempty"`

	// Canonical title for the manga, e.g. "Horimiya".
	CanonicalTitle string `json:"canonicalTitle"`

	// The number of chapters released.
	ChapterCount *int `json:"chapterCount,omitempty"`

	// The URL templates for the cover.
	CoverImage *CoverImage `json:"coverImage,omitempty"`

	// The cover's offset from the top, e.g. 60.
	CoverImageTopOffset int `json:"coverImageTopOffset,omitempty"`

	// Date the manga finished, e.g. "2013-09-28".
	EndDate *string `json:"endDate,omitempty"`

	// Publication format of the manga, e.g. MangaSubtypeNovel.
	MangaType MangaSubtype `json:"mangaType,omitempty"`

	// The rank based on the popularity of the manga, e.g. 10.
	PopularityRank *int `json:"popularityRank,omitempty"`

	// The URL templates for the poster.
	PosterImage Image `json:"posterImage,omitempty"`

	// How many times each rating has been given to the manga.
	RatingFrequencies RatingFrequencies `json:"ratingFrequencies,omitempty"`

	// The rank of the manga based on its overall rating, e.g. 13.
	RatingRank *int `json:"ratingRank,omitempty"`

	// Name of media of serialization.
	Serialization *string `json:"serialization,omitempty"`

	// Unique slug used for page URLs, e.g. "horimiya".
	Slug string `json:"slug"`

	// Date the manga started serialization, e.g. "2013-04-07".
	StartDate *string `json:"startDate,omitempty"`

	// Synopsis of the manga.
	Synopsis string `json:"synopsis,omitempty"`

	// The titles of the manga, keyed by language.
	Titles Titles `json:"titles,omitempty"`

	// The number of volumes released for the manga.
	VolumeCount *int `json:"volumeCount,omitempty"`

	// The id of the related YouTube video.
	YouTubeVideoID *string `json:"youtubeVideoId,omitempty"`
}

// PublishingStatus is the current publishing status of the manga:
// finished once an end date is known, airing otherwise.
func (m MangaAttributes) PublishingStatus() AiringStatus {
	if m.EndDate != nil {
		return AiringStatusFinished
	}
	return AiringStatusAiring
}

// URL is the kitsu.io page of the manga.
func (m MangaAttributes) URL() string {
	return "https://kitsu.io/manga/" + m.Slug
}

// YouTubeURL is the URL to the manga's related YouTube video, if it has
// one.
func (m MangaAttributes) YouTubeURL() *string {
	if m.YouTubeVideoID == nil {
		return nil
	}
	u := youtubeURL(*m.YouTubeVideoID)
	return &u
}

// MangaSubtype is the publication format of a Manga.
type MangaSubtype string

const (
	MangaSubtypeDoujin  MangaSubtype = "doujin"
	MangaSubtypeManga   MangaSubtype = "manga"
	MangaSubtypeManhua  MangaSubtype = "manhua"
	MangaSubtypeNovel   MangaSubtype = "novel"
	MangaSubtypeOneshot MangaSubtype = "oneshot"
)

func (t *MangaSubtype) UnmarshalJSON(data []byte) error {
	return decodeTag(data, t, "manga subtype",
		MangaSubtypeDoujin, MangaSubtypeManga, MangaSubtypeManhua,
		MangaSubtypeNovel, MangaSubtypeOneshot)
}
