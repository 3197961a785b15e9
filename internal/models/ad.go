package models

// AdType selects how an advertisement is rendered.
type AdType string

const (
	AdBanner AdType = "banner"
	AdNative AdType = "native"
)

// AdPlacement is the fixed page slot of a banner ad.
type AdPlacement string

const (
	PlacementBelowServices    AdPlacement = "below-services"
	PlacementBelowBestPrompts AdPlacement = "below-best-prompts"
	PlacementFooter           AdPlacement = "footer"
)

// Ad is an advertisement. Placement only matters for banners,
// Title and Description only for native ads.
type Ad struct {
	ID       string `json:"id"`
	Type     AdType `json:"type" validate:"oneof=banner native"`
	Label    string `json:"label" validate:"required,max=100"`
	ImageURL string `json:"image_url"`
	LinkURL  string `json:"link_url"`
	IsActive bool   `json:"is_active"`

	Placement AdPlacement `json:"placement,omitempty" validate:"omitempty,oneof=below-services below-best-prompts footer"`

	Title       string `json:"title,omitempty" validate:"max=120"`
	Description string `json:"description,omitempty" validate:"max=500"`
}

func (a Ad) GetID() string { return a.ID }

// IsActiveNative reports whether the ad can be injected into the feed.
func (a Ad) IsActiveNative() bool {
	return a.IsActive && a.Type == AdNative
}

// DisplayTitle is the public headline of a native ad, falling back to the label.
func (a Ad) DisplayTitle() string {
	if a.Title != "" {
		return a.Title
	}
	return a.Label
}

type AdPatch struct {
	Type        *AdType      `json:"type,omitempty"`
	Label       *string      `json:"label,omitempty"`
	ImageURL    *string      `json:"image_url,omitempty"`
	LinkURL     *string      `json:"link_url,omitempty"`
	IsActive    *bool        `json:"is_active,omitempty"`
	Placement   *AdPlacement `json:"placement,omitempty"`
	Title       *string      `json:"title,omitempty"`
	Description *string      `json:"description,omitempty"`
}

func (p AdPatch) Apply(a Ad) Ad {
	setIf(&a.Type, p.Type)
	setIf(&a.Label, p.Label)
	setIf(&a.ImageURL, p.ImageURL)
	setIf(&a.LinkURL, p.LinkURL)
	setIf(&a.IsActive, p.IsActive)
	setIf(&a.Placement, p.Placement)
	setIf(&a.Title, p.Title)
	setIf(&a.Description, p.Description)
	return a
}
