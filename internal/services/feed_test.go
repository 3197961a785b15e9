package services_test

import (
	"fmt"
	"testing"

	"arabyprompts/internal/models"
	"arabyprompts/internal/services"

	"github.com/stretchr/testify/assert"
)

func makePosts(n int) []models.PromptPost {
	posts := make([]models.PromptPost, n)
	for i := range posts {
		posts[i] = models.PromptPost{ID: fmt.Sprintf("P%d", i+1)}
	}
	return posts
}

func nativeAd(id string) models.Ad {
	return models.Ad{ID: id, Type: models.AdNative, Label: id, IsActive: true}
}

func feedIDs(items []services.FeedItem) []string {
	ids := make([]string, len(items))
	for i, it := range items {
		if it.Kind == services.FeedItemAd {
			ids[i] = it.Ad.ID
		} else {
			ids[i] = it.Post.ID
		}
	}
	return ids
}

func TestComposeFeed_InjectsAfterSixthPost(t *testing.T) {
	out := services.ComposeFeed(makePosts(7), []models.Ad{nativeAd("A1")})

	assert.Equal(t, []string{"P1", "P2", "P3", "P4", "P5", "P6", "A1", "P7"}, feedIDs(out))
	assert.Equal(t, services.FeedItemAd, out[6].Kind)
}

func TestComposeFeed_NoActiveNativeAds(t *testing.T) {
	want := []string{"P1", "P2", "P3", "P4", "P5", "P6", "P7"}

	assert.Equal(t, want, feedIDs(services.ComposeFeed(makePosts(7), nil)))

	inactive := nativeAd("A1")
	inactive.IsActive = false
	banner := models.Ad{ID: "B1", Type: models.AdBanner, IsActive: true}
	assert.Equal(t, want, feedIDs(services.ComposeFeed(makePosts(7), []models.Ad{inactive, banner})))
}

func TestComposeFeed_RoundRobin(t *testing.T) {
	out := services.ComposeFeed(makePosts(13), []models.Ad{nativeAd("A1"), nativeAd("A2")})

	assert.Equal(t, []string{
		"P1", "P2", "P3", "P4", "P5", "P6", "A1",
		"P7", "P8", "P9", "P10", "P11", "P12", "A2",
		"P13",
	}, feedIDs(out))
}

func TestComposeFeed_WrapsWhenMoreSlotsThanAds(t *testing.T) {
	out := services.ComposeFeed(makePosts(18), []models.Ad{nativeAd("A1"), nativeAd("A2")})

	var ads []string
	for _, it := range out {
		if it.Kind == services.FeedItemAd {
			ads = append(ads, it.Ad.ID)
		}
	}
	assert.Equal(t, []string{"A1", "A2", "A1"}, ads)
	assert.Equal(t, services.FeedItemAd, out[len(out)-1].Kind, "18th post is followed by an ad")
}

func TestComposeFeed_Deterministic(t *testing.T) {
	posts := makePosts(13)
	ads := []models.Ad{nativeAd("A1"), nativeAd("A2")}

	first := services.ComposeFeed(posts, ads)
	second := services.ComposeFeed(posts, ads)

	assert.Equal(t, first, second)
	assert.Equal(t, "P1", posts[0].ID)
}

func TestComposeFeed_FewerThanInterval(t *testing.T) {
	out := services.ComposeFeed(makePosts(5), []models.Ad{nativeAd("A1")})
	assert.Equal(t, []string{"P1", "P2", "P3", "P4", "P5"}, feedIDs(out))
	assert.Empty(t, services.ComposeFeed(nil, []models.Ad{nativeAd("A1")}))
}
