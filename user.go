package kitsu

// User is a single user resource, retrieved via Client.GetUser or
// Client.SearchUsers.
type User struct {
	// ID of the user. The edge API delivers ids as opaque strings.
	ID string `json:"id"`

	// Kind of the resource. Should always be KindUser.
	Kind Kind `json:"type"`

	// Links related to the user itself.
	Links map[string]string `json:"links,omitempty"`

	// Attributes of the user.
	Attributes UserAttributes `json:"attributes"`

	// Relationships of the user.
	Relationships UserRelationships `json:"relationships,omitempty"`
}

// URL is the kitsu.io profile page of the user.
func (u *User) URL() string {
	return u.Attributes.URL()
}

// UserAttributes is information about a User.
type UserAttributes struct {
	// The raw markdown of the user's long-form about text.
	About string `json:"about,omitempty"`

	// The sanitized HTML of the user's long-form about text.
	AboutFormatted *string `json:"aboutFormatted,omitempty"`

	// Links to the user's avatar.
	Avatar *Image `json:"avatar,omitempty"`

	// A short biographical blurb about the user.
	Bio string `json:"bio,omitempty"`

	// The user's birthday, e.g. "1985-07-26".
	Birthday *string `json:"birthday,omitempty"`

	// Number of comments the user has submitted.
	CommentsCount int `json:"commentsCount,omitempty"`

	// Links to the user's cover image.
	CoverImage *Image `json:"coverImage,omitempty"`

	// When the user signed up, e.g. "1985-07-26T22:13:20.223Z".
	CreatedAt string `json:"createdAt,omitempty"`

	// The user's Facebook id if they have signed in with Facebook.
	FacebookID *string `json:"facebookId,omitempty"`

	// The number of media items the user has favorited.
	FavoritesCount int `json:"favoritesCount,omitempty"`

	// Whether the user's feed is completed.
	FeedCompleted bool `json:"feedCompleted,omitempty"`

	// Number of people following this user.
	FollowersCount int `json:"followersCount,omitempty"`

	// Number of people this user is following.
	FollowingCount int `json:"followingCount,omitempty"`

	// The user's gender, if provided.
	Gender *Gender `json:"gender,omitempty"`

	// Number of minutes of anime watched.
	LifeSpentOnAnime int `json:"lifeSpentOnAnime,omitempty"`

	// Number of posts the user has liked.
	LikesGivenCount int `json:"likesGivenCount,omitempty"`

	// Number of likes the user's posts have received.
	LikesReceivedCount int `json:"likesReceivedCount,omitempty"`

	// A user-provided location, e.g. "The Internet".
	Location *string `json:"location,omitempty"`

	// The user's current username, e.g. "chitanda".
	Name string `json:"name"`

	// Previous names the user has gone by, most recent first.
	PastNames []string `json:"pastNames,omitempty"`

	// Number of posts the user has submitted.
	PostsCount int `json:"postsCount,omitempty"`

	// Whether the user has finished completing their profile.
	ProfileCompleted bool `json:"profileCompleted,omitempty"`

	// When the user's pro subscription expires.
	ProExpiresAt *string `json:"proExpiresAt,omitempty"`

	// Number of media the user has rated.
	RatingsCount int `json:"ratingsCount,omitempty"`

	// The number of reviews the user has posted.
	ReviewsCount int `json:"reviewsCount,omitempty"`

	// The user's title.
	Title *string `json:"title,omitempty"`

	// When the user last updated their profile. Can equal CreatedAt,
	// which means the profile was never updated after creation.
	UpdatedAt string `json:"updatedAt,omitempty"`

	// Whether the user has a waifu or husbando.
	WaifuOrHusbando *WaifuOrHusbando `json:"waifuOrHusbando,omitempty"`

	// The user's website.
	Website *string `json:"website,omitempty"`
}

// URL is the kitsu.io profile page of the user.
func (u UserAttributes) URL() string {
	return "https://kitsu.io/users/" + u.Name
}

// UserRelationships is the named link groups of a User.
type UserRelationships struct {
	Blocks         Relationship `json:"blocks,omitempty"`
	Favorites      Relationship `json:"favorites,omitempty"`
	Followers      Relationship `json:"followers,omitempty"`
	Following      Relationship `json:"following,omitempty"`
	LibraryEntries Relationship `json:"libraryEntries,omitempty"`
	LinkedProfiles Relationship `json:"profileLinks,omitempty"`
	MediaFollows   Relationship `json:"mediaFollows,omitempty"`
	PinnedPost     Relationship `json:"pinnedPost,omitempty"`
	Reviews        Relationship `json:"reviews,omitempty"`
	UserRoles      Relationship `json:"userRoles,omitempty"`
	Waifu          Relationship `json:"waifu,omitempty"`
}

// Gender is the gender of a User, when they chose to provide it.
type Gender string

const (
	GenderFemale Gender = "female"
	GenderMale   Gender = "male"
)

func (g *Gender) UnmarshalJSON(data []byte) error {
	return decodeTag(data, g, "gender", GenderFemale, GenderMale)
}

// WaifuOrHusbando indicates whether a User has a waifu or husbando.
type WaifuOrHusbando string

const (
	Husbando WaifuOrHusbando = "husbando"
	Waifu    WaifuOrHusbando = "waifu"
)

func (w *WaifuOrHusbando) UnmarshalJSON(data []byte) error {
	return decodeTag(data, w, "waifu or husbando", Husbando, Waifu)
}
