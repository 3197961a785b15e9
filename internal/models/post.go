package models

import "time"

// Category is the visual style a community post belongs to.
type Category string

const (
	CategoryCinematic Category = "Cinematic"
	CategoryAnime     Category = "Anime"
	Category3D        Category = "3D"
	CategoryRealistic Category = "Realistic"
	CategoryCyberpunk Category = "Cyberpunk"
)

// Comment is a reply on a post. User is a snapshot taken when it was written.
type Comment struct {
	ID        string    `json:"id"`
	User      User      `json:"user"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"created_at"`
}

// PromptPost is a shared prompt in the community feed.
// Author is a snapshot and does not follow later edits of the user.
type PromptPost struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Author      User      `json:"author"`
	Likes       int       `json:"likes"`
	Views       int       `json:"views"`
	Tags        []string  `json:"tags"`
	ImageURL    string    `json:"image_url"`
	CreatedAt   time.Time `json:"created_at"`
	Category    Category  `json:"category"`
	Comments    []Comment `json:"comments"`
}

func (p PromptPost) GetID() string { return p.ID }

// HistoryItem records one generation run.
type HistoryItem struct {
	ID              string    `json:"id"`
	Timestamp       time.Time `json:"timestamp"`
	OriginalIdea    string    `json:"original_idea"`
	GeneratedPrompt string    `json:"generated_prompt"`
	ModelUsed       string    `json:"model_used"`
}

func (h HistoryItem) GetID() string { return h.ID }
