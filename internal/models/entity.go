package models

// Entity is anything kept in an id-addressed collection.
type Entity interface {
	GetID() string
}

// Patch is a typed, partial update for an entity of kind T.
type Patch[T any] interface {
	Apply(T) T
}

// Collection names, used in change events and confirmation tickets.
const (
	CollectionSections = "sections"
	CollectionServices = "services"
	CollectionStyles   = "styles"
	CollectionAds      = "ads"
	CollectionBundles  = "bundles"
	CollectionUsers    = "users"
	CollectionPosts    = "posts"
	CollectionCourses  = "courses"
	CollectionSite     = "site"
)
