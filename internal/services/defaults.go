package services

import (
	"arabyprompts/internal/models"

	"github.com/google/uuid"
)

func newID(prefix string) string {
	return prefix + "-" + uuid.New().String()
}

// NewAd returns an inactive banner campaign with placeholder creative.
func NewAd() models.Ad {
	return models.Ad{
		ID:        newID("ad"),
		Type:      models.AdBanner,
		Label:     "New Campaign",
		ImageURL:  "https://via.placeholder.com/1200x200",
		LinkURL:   "#",
		Placement: models.PlacementBelowServices,
		IsActive:  false,
	}
}

// NewService returns an inactive, free service.
func NewService() models.Service {
	return models.Service{
		ID:          newID("svc"),
		Name:        "New Service",
		Description: "Description here...",
		Status:      models.ServiceInactive,
		Price:       "$0.00",
	}
}

func NewPromptStyle() models.PromptStyle {
	return models.PromptStyle{
		ID:     newID("style"),
		Label:  "New Style",
		Value:  "new-style",
		Suffix: "artistic style",
	}
}

func NewPromptBundle() models.PromptBundle {
	return models.PromptBundle{
		ID:           newID("bundle"),
		Title:        "New Bundle",
		Description:  "Bundle description",
		CoverImage:   "https://via.placeholder.com/300x200",
		Price:        "Free",
		PromptsCount: 10,
		Tags:         []string{},
	}
}

// NewSection returns a hidden navigation entry.
func NewSection() models.Section {
	return models.Section{
		ID:        newID("section"),
		Label:     "New Section",
		Icon:      models.IconHome,
		IsVisible: false,
	}
}
