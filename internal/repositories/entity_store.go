package repositories

import (
	"sync"
	"time"

	"arabyprompts/internal/models"
)

// EntityStore owns every admin-managed collection plus the signed-in user slot.
// It lives for the lifetime of the process.
type EntityStore struct {
	Sections *Collection[models.Section]
	Services *Collection[models.Service]
	Styles   *Collection[models.PromptStyle]
	Ads      *Collection[models.Ad]
	Bundles  *Collection[models.PromptBundle]
	Users    *Collection[models.User]
	Posts    *Collection[models.PromptPost]
	Courses  *Collection[models.Course]

	site    models.SiteConfig
	content models.ContentConfig

	currentUserID string
	listeners     []ChangeListener
	siteVersion   uint64
	mu            sync.RWMutex
}

// NewEntityStore creates an empty store.
func NewEntityStore() *EntityStore {
	s := &EntityStore{}
	s.Sections = NewCollection[models.Section](models.CollectionSections, s.emit)
	s.Services = NewCollection[models.Service](models.CollectionServices, s.emit)
	s.Styles = NewCollection[models.PromptStyle](models.CollectionStyles, s.emit)
	s.Ads = NewCollection[models.Ad](models.CollectionAds, s.emit)
	s.Bundles = NewCollection[models.PromptBundle](models.CollectionBundles, s.emit)
	s.Users = NewCollection[models.User](models.CollectionUsers, s.emit)
	s.Posts = NewCollection[models.PromptPost](models.CollectionPosts, s.emit)
	s.Courses = NewCollection[models.Course](models.CollectionCourses, s.emit)
	return s
}

// Subscribe registers a listener notified after every snapshot replacement.
func (s *EntityStore) Subscribe(l ChangeListener) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listeners = append(s.listeners, l)
}

func (s *EntityStore) emit(ev ChangeEvent) {
	s.mu.RLock()
	listeners := make([]ChangeListener, len(s.listeners))
	copy(listeners, s.listeners)
	s.mu.RUnlock()

	for _, l := range listeners {
		l(ev)
	}
}

// SiteConfig returns the current site identity.
func (s *EntityStore) SiteConfig() models.SiteConfig {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.site
}

// ContentConfig returns the current home page copy.
func (s *EntityStore) ContentConfig() models.ContentConfig {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.content
}

// ReplaceSiteConfig installs cfg.
func (s *EntityStore) ReplaceSiteConfig(cfg models.SiteConfig) {
	s.mu.Lock()
	s.site = cfg
	ev := s.siteEventLocked()
	s.mu.Unlock()
	s.emit(ev)
}

// ReplaceContentConfig installs cfg.
func (s *EntityStore) ReplaceContentConfig(cfg models.ContentConfig) {
	s.mu.Lock()
	s.content = cfg
	ev := s.siteEventLocked()
	s.mu.Unlock()
	s.emit(ev)
}

func (s *EntityStore) siteEventLocked() ChangeEvent {
	s.siteVersion++
	return ChangeEvent{
		Collection: models.CollectionSite,
		Size:       1,
		Version:    s.siteVersion,
		At:         time.Now().UTC(),
	}
}

// CurrentUser resolves the signed-in user against the users collection, so
// edits to the canonical record (role, plan) are visible immediately.
// It returns nil when nobody is signed in or the user no longer exists.
func (s *EntityStore) CurrentUser() *models.User {
	s.mu.RLock()
	id := s.currentUserID
	s.mu.RUnlock()

	if id == "" {
		return nil
	}
	for _, u := range s.Users.List() {
		if u.ID == id {
			user := u
			return &user
		}
	}
	return nil
}

// SetCurrentUser makes id the signed-in user, replacing any previous one.
func (s *EntityStore) SetCurrentUser(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.currentUserID = id
}

// ClearCurrentUser signs the current user out.
func (s *EntityStore) ClearCurrentUser() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.currentUserID = ""
}
