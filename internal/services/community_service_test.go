package services_test

import (
	"testing"

	"arabyprompts/internal/models"
	"arabyprompts/internal/repositories"
	"arabyprompts/internal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCommunityFixture() (*services.CommunityService, *repositories.EntityStore) {
	store := repositories.NewEntityStore()
	store.Sections.Replace([]models.Section{
		{ID: "home", Label: "Home", IsVisible: true},
		{ID: "learn", Label: "Learn", IsVisible: false},
		{ID: "community", Label: "Community", IsVisible: true},
	})
	store.Ads.Replace([]models.Ad{
		{ID: "b-off", Type: models.AdBanner, Label: "Off", Placement: models.PlacementFooter, IsActive: false},
		{ID: "b-1", Type: models.AdBanner, Label: "First", Placement: models.PlacementFooter, IsActive: true},
		{ID: "b-2", Type: models.AdBanner, Label: "Second", Placement: models.PlacementFooter, IsActive: true},
		{ID: "n-1", Type: models.AdNative, Label: "Native", Placement: models.PlacementBelowServices, IsActive: true},
	})
	store.Services.Replace(sampleServices())
	return services.NewCommunityService(store), store
}

func TestCommunityService_VisibleSectionsKeepOrder(t *testing.T) {
	community, _ := newCommunityFixture()
	assert.Equal(t, []string{"home", "community"}, sectionIDs(community.VisibleSections()))
}

func TestCommunityService_BannerFor(t *testing.T) {
	community, store := newCommunityFixture()

	ad, ok := community.BannerFor(models.PlacementFooter)
	require.True(t, ok)
	assert.Equal(t, "b-1", ad.ID)

	_, ok = community.BannerFor(models.PlacementBelowServices)
	assert.False(t, ok, "native ads are never served as banners")

	store.Ads.Replace(nil)
	_, ok = community.BannerFor(models.PlacementFooter)
	assert.False(t, ok)
}

func TestCommunityService_Leaderboard(t *testing.T) {
	community, store := newCommunityFixture()
	store.Users.Replace([]models.User{
		{ID: "a", Points: 1}, {ID: "b", Points: 9}, {ID: "c", Points: 5},
		{ID: "d", Points: 7}, {ID: "e", Points: 3}, {ID: "f", Points: 8},
	})

	top := community.Leaderboard(services.LeaderboardSize)
	require.Len(t, top, 5)
	assert.Equal(t, "b", top[0].ID)
	assert.Equal(t, "e", top[4].ID)
	assert.Equal(t, "a", store.Users.List()[0].ID, "ranking must not reorder the collection")
}

func TestCommunityService_FeedUsesActiveNativeAds(t *testing.T) {
	community, store := newCommunityFixture()
	store.Posts.Replace(makePosts(6))

	feed := community.Feed()
	require.Len(t, feed, 7)
	assert.Equal(t, services.FeedItemAd, feed[6].Kind)
	assert.Equal(t, "n-1", feed[6].Ad.ID)
}

func TestCommunityService_ActiveServices(t *testing.T) {
	community, _ := newCommunityFixture()
	for _, svc := range community.ActiveServices() {
		assert.Equal(t, models.ServiceActive, svc.Status)
	}
}
