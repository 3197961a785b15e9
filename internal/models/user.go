package models

import "time"

// Role is the permission level of a user.
type Role string

const (
	RoleUser  Role = "USER"
	RoleAdmin Role = "ADMIN"
	RolePro   Role = "PRO"
)

// Plan is the subscription plan of a user.
type Plan string

const (
	PlanFree Plan = "Free"
	PlanPro  Plan = "Pro"
)

// UserStats holds the usage counters shown on profiles.
type UserStats struct {
	Prompts   int `json:"prompts" validate:"gte=0"`
	Likes     int `json:"likes" validate:"gte=0"`
	Followers int `json:"followers" validate:"gte=0"`
}

// SocialLinks are the optional profile links.
type SocialLinks struct {
	LinkedIn  string `json:"linkedin,omitempty" validate:"omitempty,max=255"`
	Twitter   string `json:"twitter,omitempty" validate:"omitempty,max=255"`
	Instagram string `json:"instagram,omitempty" validate:"omitempty,max=255"`
}

// User represents a member of the platform.
type User struct {
	ID        string    `json:"id"`
	Name      string    `json:"name" validate:"required,max=100"`
	Email     string    `json:"email" validate:"required,email"`
	Avatar    string    `json:"avatar"`
	Role      Role      `json:"role" validate:"oneof=USER ADMIN PRO"`
	Plan      Plan      `json:"plan" validate:"oneof=Free Pro"`
	Stats     UserStats `json:"stats"`
	Points    int       `json:"points" validate:"gte=0"`
	RankTitle string    `json:"rank_title"`

	Bio      string       `json:"bio,omitempty" validate:"omitempty,max=500"`
	Phone    string       `json:"phone,omitempty" validate:"omitempty,max=32"`
	Country  string       `json:"country,omitempty" validate:"omitempty,max=64"`
	JobTitle string       `json:"job_title,omitempty" validate:"omitempty,max=100"`
	Socials  *SocialLinks `json:"socials,omitempty"`

	JoinedAt     time.Time `json:"joined_at"`
	LastActiveAt time.Time `json:"last_active_at"`
}

func (u User) GetID() string { return u.ID }

// IsAdmin reports whether the user holds the administrator role.
func (u *User) IsAdmin() bool {
	return u != nil && u.Role == RoleAdmin
}

// UserPatch is the set of user fields an administrator may edit.
type UserPatch struct {
	Name      *string `json:"name,omitempty"`
	Email     *string `json:"email,omitempty"`
	Avatar    *string `json:"avatar,omitempty"`
	Role      *Role   `json:"role,omitempty"`
	Plan      *Plan   `json:"plan,omitempty"`
	Points    *int    `json:"points,omitempty"`
	RankTitle *string `json:"rank_title,omitempty"`
}

// Apply returns u with every non-nil patch field set.
func (p UserPatch) Apply(u User) User {
	setIf(&u.Name, p.Name)
	setIf(&u.Email, p.Email)
	setIf(&u.Avatar, p.Avatar)
	setIf(&u.Role, p.Role)
	setIf(&u.Plan, p.Plan)
	setIf(&u.Points, p.Points)
	setIf(&u.RankTitle, p.RankTitle)
	return u
}

// ProfilePatch holds the self-service profile fields.
type ProfilePatch struct {
	Bio      *string      `json:"bio,omitempty"`
	Phone    *string      `json:"phone,omitempty"`
	Country  *string      `json:"country,omitempty"`
	JobTitle *string      `json:"job_title,omitempty"`
	Socials  *SocialLinks `json:"socials,omitempty"`
}

func (p ProfilePatch) Apply(u User) User {
	setIf(&u.Bio, p.Bio)
	setIf(&u.Phone, p.Phone)
	setIf(&u.Country, p.Country)
	setIf(&u.JobTitle, p.JobTitle)
	if p.Socials != nil {
		s := *p.Socials
		u.Socials = &s
	}
	return u
}

func setIf[T any](dst *T, v *T) {
	if v != nil {
		*dst = *v
	}
}
