package services

import (
	"fmt"
	"log"
	"net/url"
	"strings"
	"time"

	"arabyprompts/internal/models"
	"arabyprompts/internal/repositories"

	"github.com/dgrijalva/jwt-go"
)

// LoginRequest is the simulated sign-in form. No password is checked.
type LoginRequest struct {
	Email  string `json:"email" validate:"required,email"`
	Name   string `json:"name" validate:"omitempty,max=100"`
	Avatar string `json:"avatar" validate:"omitempty,max=500"`
}

// SessionService simulates identity: it owns the store's single signed-in slot
// and issues tokens naming the signed-in user.
type SessionService struct {
	store         *repositories.EntityStore
	jwtSecret     []byte
	tokenDuration time.Duration
	now           func() time.Time
}

// NewSessionService creates a SessionService.
func NewSessionService(store *repositories.EntityStore, jwtSecret string, tokenDuration time.Duration) *SessionService {
	if tokenDuration <= 0 {
		tokenDuration = 24 * time.Hour
	}
	return &SessionService{
		store:         store,
		jwtSecret:     []byte(jwtSecret),
		tokenDuration: tokenDuration,
		now:           time.Now,
	}
}

// Login signs in the user with req.Email, registering a new free account when
// none exists, and returns a token for the session.
func (s *SessionService) Login(req LoginRequest) (string, models.User, error) {
	if err := validateStruct(req); err != nil {
		return "", models.User{}, err
	}
	email := strings.ToLower(strings.TrimSpace(req.Email))

	var user models.User
	s.store.Users.UpdateIf(func(current []models.User) ([]models.User, bool) {
		for _, u := range current {
			if strings.EqualFold(u.Email, email) {
				user = u
				return current, false
			}
		}
		user = s.newMember(email, req.Name, req.Avatar)
		log.Printf("Registered new member %s (%s)", user.ID, user.Email)
		return append(current, user), true
	})

	s.store.SetCurrentUser(user.ID)

	token, err := s.issueToken(user)
	if err != nil {
		return "", models.User{}, err
	}
	return token, user, nil
}

func (s *SessionService) newMember(email, name, avatar string) models.User {
	if name == "" {
		name = strings.SplitN(email, "@", 2)[0]
	}
	if avatar == "" {
		avatar = "https://ui-avatars.com/api/?name=" + url.QueryEscape(name)
	}
	role := models.RoleUser
	if strings.Contains(email, "admin") {
		role = models.RoleAdmin
	}
	now := s.now().UTC()
	return models.User{
		ID:           newID("u"),
		Name:         name,
		Email:        email,
		Avatar:       avatar,
		Role:         role,
		Plan:         models.PlanFree,
		RankTitle:    "Newcomer",
		JoinedAt:     now,
		LastActiveAt: now,
	}
}

// Logout empties the signed-in slot.
func (s *SessionService) Logout() {
	s.store.ClearCurrentUser()
}

// Current returns the signed-in user or nil.
func (s *SessionService) Current() *models.User {
	return s.store.CurrentUser()
}

func (s *SessionService) issueToken(user models.User) (string, error) {
	now := s.now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": user.ID,
		"email":   user.Email,
		"exp":     now.Add(s.tokenDuration).Unix(),
		"iat":     now.Unix(),
	})
	signed, err := token.SignedString(s.jwtSecret)
	if err != nil {
		return "", fmt.Errorf("failed to generate token: %w", err)
	}
	return signed, nil
}

// ValidateToken parses and validates a token, returning its claims.
func (s *SessionService) ValidateToken(tokenString string) (jwt.MapClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.jwtSecret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("invalid token: %w", err)
	}
	if claims, ok := token.Claims.(jwt.MapClaims); ok && token.Valid {
		return claims, nil
	}
	return nil, fmt.Errorf("invalid token")
}

// Resolve returns the signed-in user when tokenString names them, and nil
// otherwise. A token issued to someone who has since been replaced in the
// slot, or who logged out, resolves to nil.
func (s *SessionService) Resolve(tokenString string) *models.User {
	claims, err := s.ValidateToken(tokenString)
	if err != nil {
		return nil
	}
	id, _ := claims["user_id"].(string)
	current := s.store.CurrentUser()
	if current == nil || id == "" || current.ID != id {
		return nil
	}
	return current
}

// UpdateProfile edits the signed-in user's own profile fields.
func (s *SessionService) UpdateProfile(p models.ProfilePatch) (models.User, error) {
	current := s.store.CurrentUser()
	if current == nil {
		return models.User{}, ErrNotSignedIn
	}

	var (
		updated  models.User
		patchErr error
	)
	s.store.Users.UpdateIf(func(users []models.User) ([]models.User, bool) {
		next := UpdateByID(users, current.ID, func(u models.User) models.User {
			edited := p.Apply(u)
			if err := validateStruct(edited); err != nil {
				patchErr = err
				return u
			}
			edited.LastActiveAt = s.now().UTC()
			updated = edited
			return edited
		})
		if patchErr != nil || updated.ID == "" {
			return users, false
		}
		return next, true
	})
	if patchErr != nil {
		return models.User{}, patchErr
	}
	if updated.ID == "" {
		return models.User{}, ErrNotSignedIn
	}
	return updated, nil
}
