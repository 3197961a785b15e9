package services

import (
	"log"

	"arabyprompts/internal/models"
	"arabyprompts/internal/repositories"
)

// Overview is the headline numbers on the admin dashboard.
type Overview struct {
	TotalUsers  int `json:"total_users"`
	ProMembers  int `json:"pro_members"`
	ActiveAds   int `json:"active_ads"`
	Services    int `json:"services"`
	Bundles     int `json:"bundles"`
	VisibleNavs int `json:"visible_sections"`
}

// AdminService handles the back-office operations over the entity store.
// Every method assumes the caller already passed CanAccessAdmin.
type AdminService struct {
	store         *repositories.EntityStore
	confirmations *Confirmations

	Sections *CollectionAdmin[models.Section, models.SectionPatch]
	Services *CollectionAdmin[models.Service, models.ServicePatch]
	Styles   *CollectionAdmin[models.PromptStyle, models.PromptStylePatch]
	Ads      *CollectionAdmin[models.Ad, models.AdPatch]
	Bundles  *CollectionAdmin[models.PromptBundle, models.PromptBundlePatch]
	Users    *CollectionAdmin[models.User, models.UserPatch]
}

// NewAdminService creates an AdminService and registers the delete actions of
// every managed collection with confirmations.
func NewAdminService(store *repositories.EntityStore, confirmations *Confirmations) *AdminService {
	s := &AdminService{
		store:         store,
		confirmations: confirmations,
		Sections:      NewCollectionAdmin[models.Section, models.SectionPatch](models.CollectionSections, store.Sections, NewSection),
		Services:      NewCollectionAdmin[models.Service, models.ServicePatch](models.CollectionServices, store.Services, NewService),
		Styles:        NewCollectionAdmin[models.PromptStyle, models.PromptStylePatch](models.CollectionStyles, store.Styles, NewPromptStyle),
		Ads:           NewCollectionAdmin[models.Ad, models.AdPatch](models.CollectionAds, store.Ads, NewAd),
		Bundles:       NewCollectionAdmin[models.PromptBundle, models.PromptBundlePatch](models.CollectionBundles, store.Bundles, NewPromptBundle),
		Users:         NewCollectionAdmin[models.User, models.UserPatch](models.CollectionUsers, store.Users, nil),
	}

	confirmations.Register(models.CollectionSections, func(id string) { s.Sections.Delete(id) })
	confirmations.Register(models.CollectionServices, func(id string) { s.Services.Delete(id) })
	confirmations.Register(models.CollectionStyles, func(id string) { s.Styles.Delete(id) })
	confirmations.Register(models.CollectionAds, func(id string) { s.Ads.Delete(id) })
	confirmations.Register(models.CollectionBundles, func(id string) { s.Bundles.Delete(id) })
	confirmations.Register(models.CollectionUsers, func(id string) { s.Users.Delete(id) })
	return s
}

// Overview counts the dashboard statistics.
func (s *AdminService) Overview() Overview {
	users := s.store.Users.List()
	ov := Overview{
		TotalUsers: len(users),
		Services:   len(s.store.Services.List()),
		Bundles:    len(s.store.Bundles.List()),
	}
	for _, u := range users {
		if u.Plan == models.PlanPro {
			ov.ProMembers++
		}
	}
	for _, ad := range s.store.Ads.List() {
		if ad.IsActive {
			ov.ActiveAds++
		}
	}
	for _, sec := range s.store.Sections.List() {
		if sec.IsVisible {
			ov.VisibleNavs++
		}
	}
	return ov
}

// MoveSection shifts the section at index one step in direction.
func (s *AdminService) MoveSection(index int, direction Direction) []models.Section {
	return s.store.Sections.UpdateIf(func(current []models.Section) ([]models.Section, bool) {
		next := MoveAdjacent(current, index, direction)
		return next, !sameOrder(current, next)
	})
}

// ToggleUserPlan flips a user between Free and Pro. Unknown ids are a no-op.
func (s *AdminService) ToggleUserPlan(id string) []models.User {
	return s.store.Users.UpdateIf(func(current []models.User) ([]models.User, bool) {
		matched := false
		next := UpdateByID(current, id, func(u models.User) models.User {
			matched = true
			if u.Plan == models.PlanFree {
				u.Plan = models.PlanPro
			} else {
				u.Plan = models.PlanFree
			}
			return u
		})
		return next, matched
	})
}

func (s *AdminService) SiteConfig() models.SiteConfig { return s.store.SiteConfig() }

func (s *AdminService) ContentConfig() models.ContentConfig { return s.store.ContentConfig() }

func (s *AdminService) UpdateSiteConfig(cfg models.SiteConfig) error {
	if err := validateStruct(cfg); err != nil {
		return err
	}
	s.store.ReplaceSiteConfig(cfg)
	return nil
}

func (s *AdminService) UpdateContentConfig(cfg models.ContentConfig) error {
	if err := validateStruct(cfg); err != nil {
		return err
	}
	s.store.ReplaceContentConfig(cfg)
	return nil
}

// RequestDelete starts the two-step delete of collection/id.
func (s *AdminService) RequestDelete(collection, id string) (Ticket, error) {
	t, err := s.confirmations.RequestDelete(collection, id)
	if err != nil {
		return Ticket{}, err
	}
	log.Printf("Delete of %s/%s awaiting confirmation (ticket %s)", collection, id, t.ID)
	return t, nil
}

// ConfirmDelete performs the delete held by ticket.
func (s *AdminService) ConfirmDelete(ticket string) bool {
	return s.confirmations.Confirm(ticket)
}

// CancelDelete drops ticket; nothing is deleted.
func (s *AdminService) CancelDelete(ticket string) bool {
	return s.confirmations.Cancel(ticket)
}
