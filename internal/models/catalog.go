package models

// SectionIcon is a symbolic icon key resolved by the presentation layer.
type SectionIcon string

const (
	IconHome      SectionIcon = "home"
	IconGenerator SectionIcon = "generator"
	IconCommunity SectionIcon = "community"
	IconLearn     SectionIcon = "learn"
	IconAITools   SectionIcon = "ai-tools"
	IconPackage   SectionIcon = "package"
)

// Section is a navigation entry. Order in the collection is display order.
type Section struct {
	ID        string      `json:"id"`
	Label     string      `json:"label" validate:"required,max=64"`
	Icon      SectionIcon `json:"icon,omitempty" validate:"omitempty,oneof=home generator community learn ai-tools package"`
	IsVisible bool        `json:"is_visible"`
}

func (s Section) GetID() string { return s.ID }

type SectionPatch struct {
	Label     *string      `json:"label,omitempty"`
	Icon      *SectionIcon `json:"icon,omitempty"`
	IsVisible *bool        `json:"is_visible,omitempty"`
}

func (p SectionPatch) Apply(s Section) Section {
	setIf(&s.Label, p.Label)
	setIf(&s.Icon, p.Icon)
	setIf(&s.IsVisible, p.IsVisible)
	return s
}

// ServiceStatus is whether a paid service is currently offered.
type ServiceStatus string

const (
	ServiceActive   ServiceStatus = "Active"
	ServiceInactive ServiceStatus = "Inactive"
)

// Service is a paid offering. Price is a display string.
type Service struct {
	ID          string        `json:"id"`
	Name        string        `json:"name" validate:"required,max=100"`
	Description string        `json:"description" validate:"max=500"`
	Status      ServiceStatus `json:"status" validate:"oneof=Active Inactive"`
	Price       string        `json:"price" validate:"max=32"`
}

func (s Service) GetID() string { return s.ID }

type ServicePatch struct {
	Name        *string        `json:"name,omitempty"`
	Description *string        `json:"description,omitempty"`
	Status      *ServiceStatus `json:"status,omitempty"`
	Price       *string        `json:"price,omitempty"`
}

func (p ServicePatch) Apply(s Service) Service {
	setIf(&s.Name, p.Name)
	setIf(&s.Description, p.Description)
	setIf(&s.Status, p.Status)
	setIf(&s.Price, p.Price)
	return s
}

// PromptStyle is a generator style; Suffix is appended to generation requests.
type PromptStyle struct {
	ID     string `json:"id"`
	Label  string `json:"label" validate:"required,max=64"`
	Value  string `json:"value" validate:"required,max=64"`
	Suffix string `json:"suffix" validate:"max=500"`
}

func (s PromptStyle) GetID() string { return s.ID }

type PromptStylePatch struct {
	Label  *string `json:"label,omitempty"`
	Value  *string `json:"value,omitempty"`
	Suffix *string `json:"suffix,omitempty"`
}

func (p PromptStylePatch) Apply(s PromptStyle) PromptStyle {
	setIf(&s.Label, p.Label)
	setIf(&s.Value, p.Value)
	setIf(&s.Suffix, p.Suffix)
	return s
}

// PromptBundle is a sellable pack of prompts.
type PromptBundle struct {
	ID           string   `json:"id"`
	Title        string   `json:"title" validate:"required,max=100"`
	Description  string   `json:"description" validate:"max=500"`
	CoverImage   string   `json:"cover_image"`
	Price        string   `json:"price" validate:"max=32"`
	PromptsCount int      `json:"prompts_count" validate:"gte=0"`
	Tags         []string `json:"tags"`
}

func (b PromptBundle) GetID() string { return b.ID }

type PromptBundlePatch struct {
	Title        *string   `json:"title,omitempty"`
	Description  *string   `json:"description,omitempty"`
	CoverImage   *string   `json:"cover_image,omitempty"`
	Price        *string   `json:"price,omitempty"`
	PromptsCount *int      `json:"prompts_count,omitempty"`
	Tags         *[]string `json:"tags,omitempty"`
}

func (p PromptBundlePatch) Apply(b PromptBundle) PromptBundle {
	setIf(&b.Title, p.Title)
	setIf(&b.Description, p.Description)
	setIf(&b.CoverImage, p.CoverImage)
	setIf(&b.Price, p.Price)
	setIf(&b.PromptsCount, p.PromptsCount)
	if p.Tags != nil {
		b.Tags = append([]string(nil), (*p.Tags)...)
	}
	return b
}

// SiteConfig is the site identity shown in the navbar.
type SiteConfig struct {
	Name        string `json:"name" validate:"required,max=64"`
	Description string `json:"description" validate:"max=255"`
}

// ContentConfig is the editable home page copy.
type ContentConfig struct {
	HeroTitle    string `json:"hero_title" validate:"required,max=120"`
	HeroSubtitle string `json:"hero_subtitle" validate:"max=255"`
}

// CourseLevel is the difficulty of a course.
type CourseLevel string

const (
	LevelBeginner     CourseLevel = "Beginner"
	LevelIntermediate CourseLevel = "Intermediate"
	LevelAdvanced     CourseLevel = "Advanced"
)

// Course is an entry of the Learn catalog.
type Course struct {
	ID        string      `json:"id"`
	Title     string      `json:"title"`
	Level     CourseLevel `json:"level"`
	Duration  string      `json:"duration"`
	Students  int         `json:"students"`
	Thumbnail string      `json:"thumbnail"`
	Progress  int         `json:"progress"`
}

func (c Course) GetID() string { return c.ID }
