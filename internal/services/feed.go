package services

import "arabyprompts/internal/models"

// FeedAdInterval is the number of posts between two native ad injections.
const FeedAdInterval = 6

// FeedItemKind tags a composed feed entry.
type FeedItemKind string

const (
	FeedItemPost FeedItemKind = "post"
	FeedItemAd   FeedItemKind = "ad"
)

// FeedItem is one entry of the community feed: either a post or a native ad.
type FeedItem struct {
	Kind FeedItemKind       `json:"kind"`
	Post *models.PromptPost `json:"post,omitempty"`
	Ad   *models.Ad         `json:"ad,omitempty"`
}

// ActiveNativeAds keeps the ads eligible for feed injection, in order.
func ActiveNativeAds(ads []models.Ad) []models.Ad {
	out := make([]models.Ad, 0, len(ads))
	for _, ad := range ads {
		if ad.IsActiveNative() {
			out = append(out, ad)
		}
	}
	return out
}

// ComposeFeed interleaves posts with the active native ads: one ad after every
// FeedAdInterval-th post, cycling through the ads round-robin. Inactive and
// banner ads are ignored; with none left the feed is just the posts.
func ComposeFeed(posts []models.PromptPost, ads []models.Ad) []FeedItem {
	native := ActiveNativeAds(ads)
	items := make([]FeedItem, 0, len(posts)+len(posts)/FeedAdInterval)

	injected := 0
	for i := range posts {
		post := posts[i]
		items = append(items, FeedItem{Kind: FeedItemPost, Post: &post})

		if len(native) == 0 || (i+1)%FeedAdInterval != 0 {
			continue
		}
		ad := native[injected%len(native)]
		items = append(items, FeedItem{Kind: FeedItemAd, Ad: &ad})
		injected++
	}
	return items
}
