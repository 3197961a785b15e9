package services

import (
	"arabyprompts/internal/models"
	"arabyprompts/internal/repositories"
)

// CommunityService serves the public, read-only projection of the store.
type CommunityService struct {
	store *repositories.EntityStore
}

func NewCommunityService(store *repositories.EntityStore) *CommunityService {
	return &CommunityService{store: store}
}

// Feed returns the posts interleaved with active native ads.
func (s *CommunityService) Feed() []FeedItem {
	return ComposeFeed(s.store.Posts.List(), s.store.Ads.List())
}

// Leaderboard returns the n highest-scoring users.
func (s *CommunityService) Leaderboard(n int) []models.User {
	return TopN(RankUsers(s.store.Users.List()), n)
}

// VisibleSections returns navigation entries flagged visible, in order.
func (s *CommunityService) VisibleSections() []models.Section {
	all := s.store.Sections.List()
	out := make([]models.Section, 0, len(all))
	for _, sec := range all {
		if sec.IsVisible {
			out = append(out, sec)
		}
	}
	return out
}

// BannerFor returns the first active banner ad for placement.
func (s *CommunityService) BannerFor(placement models.AdPlacement) (models.Ad, bool) {
	for _, ad := range s.store.Ads.List() {
		if ad.IsActive && ad.Type == models.AdBanner && ad.Placement == placement {
			return ad, true
		}
	}
	return models.Ad{}, false
}

func (s *CommunityService) Styles() []models.PromptStyle { return s.store.Styles.List() }

func (s *CommunityService) Bundles() []models.PromptBundle { return s.store.Bundles.List() }

func (s *CommunityService) Courses() []models.Course { return s.store.Courses.List() }

// ActiveServices returns the services currently on offer.
func (s *CommunityService) ActiveServices() []models.Service {
	all := s.store.Services.List()
	out := make([]models.Service, 0, len(all))
	for _, svc := range all {
		if svc.Status == models.ServiceActive {
			out = append(out, svc)
		}
	}
	return out
}

func (s *CommunityService) SiteConfig() models.SiteConfig { return s.store.SiteConfig() }

func (s *CommunityService) ContentConfig() models.ContentConfig { return s.store.ContentConfig() }
