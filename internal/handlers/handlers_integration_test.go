package handlers_test

import (
	"bytes"
	"encoding/json"
	"io"
	"log"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"os"
	"testing"
	"time"

	"arabyprompts/internal/handlers"
	"arabyprompts/internal/middleware"
	"arabyprompts/internal/models"
	"arabyprompts/internal/repositories"
	"arabyprompts/internal/services"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const publicEntry = "/"

// setupApp sets up a Fiber app over an in-memory store with every handler mounted.
func setupApp() (*fiber.App, *repositories.EntityStore) {
	store := repositories.NewEntityStore()
	seedStoreForTest(store)

	sessionService := services.NewSessionService(store, "test_jwt_secret", time.Hour)
	communityService := services.NewCommunityService(store)
	adminService := services.NewAdminService(store, services.NewConfirmations(time.Minute))
	generatorService := services.NewGeneratorService(nil, store)

	app := fiber.New()
	app.Use(middleware.Session(sessionService))

	apiV1 := app.Group("/api/v1")
	handlers.NewPublicHandler(communityService).RegisterRoutes(apiV1)
	handlers.NewSessionHandler(sessionService, publicEntry).RegisterRoutes(apiV1)
	handlers.NewGeneratorHandler(generatorService).RegisterRoutes(apiV1)

	adminRoutes := apiV1.Group("/admin", middleware.AdminRequired(publicEntry))
	handlers.NewAdminHandler(adminService).RegisterRoutes(adminRoutes)

	return app, store
}

func seedStoreForTest(store *repositories.EntityStore) {
	store.Users.Replace([]models.User{
		{ID: "u1", Name: "Admin User", Email: "admin@araby.com", Role: models.RoleAdmin, Plan: models.PlanPro, Points: 5000},
		{ID: "u2", Name: "Demo User", Email: "user@demo.com", Role: models.RoleUser, Plan: models.PlanFree, Points: 50},
	})
	store.Sections.Replace([]models.Section{
		{ID: "home", Label: "Home", Icon: models.IconHome, IsVisible: true},
		{ID: "generator", Label: "Generator", Icon: models.IconGenerator, IsVisible: true},
		{ID: "learn", Label: "Learn", Icon: models.IconLearn, IsVisible: false},
	})
	store.Ads.Replace([]models.Ad{
		{ID: "ad-1", Type: models.AdBanner, Label: "Summer Sale", Placement: models.PlacementBelowServices, IsActive: true},
		{ID: "ad-native-1", Type: models.AdNative, Label: "Tool Promo", Title: "Enhance Your Workflow", IsActive: true},
	})
	posts := make([]models.PromptPost, 7)
	for i := range posts {
		posts[i] = models.PromptPost{ID: string(rune('1' + i)), Title: "post"}
	}
	store.Posts.Replace(posts)
	store.ReplaceSiteConfig(models.SiteConfig{Name: "ArabyPrompts"})
	store.ReplaceContentConfig(models.ContentConfig{HeroTitle: "Hero"})
}

// TestMain runs setup and teardown for all tests
func TestMain(m *testing.M) {
	// Suppress logging during tests for cleaner output
	log.SetOutput(io.Discard)
	os.Exit(m.Run())
}

func doJSON(t *testing.T, app *fiber.App, method, path, token string, body interface{}) *http.Response {
	t.Helper()
	var reader io.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(jsonBody)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decode(t *testing.T, resp *http.Response, out interface{}) {
	t.Helper()
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
}

func login(t *testing.T, app *fiber.App, email string) string {
	t.Helper()
	resp := doJSON(t, app, http.MethodPost, "/api/v1/session/login", "", map[string]string{"email": email})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var body struct {
		Token string `json:"token"`
	}
	decode(t, resp, &body)
	require.NotEmpty(t, body.Token)
	return body.Token
}

func TestAdminGate(t *testing.T) {
	app, _ := setupApp()

	resp := doJSON(t, app, http.MethodGet, "/api/v1/admin/ads", "", nil)
	assert.Equal(t, http.StatusSeeOther, resp.StatusCode)
	assert.Equal(t, publicEntry, resp.Header.Get("Location"))

	userToken := login(t, app, "user@demo.com")
	resp = doJSON(t, app, http.MethodGet, "/api/v1/admin/ads", userToken, nil)
	assert.Equal(t, http.StatusSeeOther, resp.StatusCode)

	adminToken := login(t, app, "admin@araby.com")
	resp = doJSON(t, app, http.MethodGet, "/api/v1/admin/ads", adminToken, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var ads []models.Ad
	decode(t, resp, &ads)
	assert.Len(t, ads, 2)
}

func TestAdminGate_RoleChangeAppliesImmediately(t *testing.T) {
	app, store := setupApp()
	adminToken := login(t, app, "admin@araby.com")

	store.Users.Update(func(users []models.User) []models.User {
		return services.UpdateByID(users, "u1", func(u models.User) models.User {
			u.Role = models.RoleUser
			return u
		})
	})

	resp := doJSON(t, app, http.MethodGet, "/api/v1/admin/overview", adminToken, nil)
	assert.Equal(t, http.StatusSeeOther, resp.StatusCode)
}

func TestLogoutRedirectsAndClosesAdmin(t *testing.T) {
	app, _ := setupApp()
	adminToken := login(t, app, "admin@araby.com")

	resp := doJSON(t, app, http.MethodPost, "/api/v1/session/logout", adminToken, nil)
	assert.Equal(t, http.StatusSeeOther, resp.StatusCode)
	assert.Equal(t, publicEntry, resp.Header.Get("Location"))

	resp = doJSON(t, app, http.MethodGet, "/api/v1/admin/overview", adminToken, nil)
	assert.Equal(t, http.StatusSeeOther, resp.StatusCode)

	resp = doJSON(t, app, http.MethodGet, "/api/v1/me", adminToken, nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestLogoutWithoutSessionKeepsAdminSignedIn(t *testing.T) {
	app, store := setupApp()
	staleToken := login(t, app, "user@demo.com")
	adminToken := login(t, app, "admin@araby.com")

	resp := doJSON(t, app, http.MethodPost, "/api/v1/session/logout", "", nil)
	assert.Equal(t, http.StatusSeeOther, resp.StatusCode)
	assert.Equal(t, publicEntry, resp.Header.Get("Location"))

	resp = doJSON(t, app, http.MethodPost, "/api/v1/session/logout", staleToken, nil)
	assert.Equal(t, http.StatusSeeOther, resp.StatusCode)

	require.NotNil(t, store.CurrentUser())
	assert.Equal(t, "u1", store.CurrentUser().ID)
	resp = doJSON(t, app, http.MethodGet, "/api/v1/admin/overview", adminToken, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestAdminCollectionFlow(t *testing.T) {
	app, store := setupApp()
	token := login(t, app, "admin@araby.com")

	// Add with defaults
	resp := doJSON(t, app, http.MethodPost, "/api/v1/admin/services", token, nil)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var created models.Service
	decode(t, resp, &created)
	assert.Equal(t, models.ServiceInactive, created.Status)

	// Typed patch
	resp = doJSON(t, app, http.MethodPatch, "/api/v1/admin/services/"+created.ID, token, map[string]string{"status": "Active", "price": "$1"})
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	// Field edit
	resp = doJSON(t, app, http.MethodPatch, "/api/v1/admin/services/"+created.ID+"/field", token, map[string]interface{}{"field": "name", "value": "Renamed"})
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	list := store.Services.List()
	require.Len(t, list, 1)
	assert.Equal(t, "Renamed", list[0].Name)
	assert.Equal(t, models.ServiceActive, list[0].Status)

	// Unknown field
	resp = doJSON(t, app, http.MethodPatch, "/api/v1/admin/services/"+created.ID+"/field", token, map[string]interface{}{"field": "owner", "value": "x"})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	resp.Body.Close()

	// Invalid patch result
	resp = doJSON(t, app, http.MethodPatch, "/api/v1/admin/services/"+created.ID, token, map[string]string{"status": "Paused"})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	var verr map[string]interface{}
	decode(t, resp, &verr)
	assert.Equal(t, "Validation failed", verr["message"])

	// Users cannot be added
	resp = doJSON(t, app, http.MethodPost, "/api/v1/admin/users", token, nil)
	assert.Equal(t, http.StatusMethodNotAllowed, resp.StatusCode)
	resp.Body.Close()
}

func TestAdminDeleteConfirmation(t *testing.T) {
	app, store := setupApp()
	token := login(t, app, "admin@araby.com")

	resp := doJSON(t, app, http.MethodPost, "/api/v1/admin/ads/ad-1/delete", token, nil)
	require.Equal(t, http.StatusAccepted, resp.StatusCode)
	var ticket services.Ticket
	decode(t, resp, &ticket)
	assert.Len(t, store.Ads.List(), 2)

	resp = doJSON(t, app, http.MethodPost, "/api/v1/admin/confirmations/"+ticket.ID+"/confirm", token, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()
	assert.Len(t, store.Ads.List(), 1)

	resp = doJSON(t, app, http.MethodPost, "/api/v1/admin/confirmations/"+ticket.ID+"/confirm", token, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	resp.Body.Close()

	resp = doJSON(t, app, http.MethodPost, "/api/v1/admin/users/u2/delete", token, nil)
	decode(t, resp, &ticket)
	resp = doJSON(t, app, http.MethodPost, "/api/v1/admin/confirmations/"+ticket.ID+"/cancel", token, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()
	assert.Len(t, store.Users.List(), 2)
}

func TestAdminSectionsAndPlans(t *testing.T) {
	app, store := setupApp()
	token := login(t, app, "admin@araby.com")

	resp := doJSON(t, app, http.MethodPost, "/api/v1/admin/sections/0/move/down", token, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()
	assert.Equal(t, "generator", store.Sections.List()[0].ID)

	resp = doJSON(t, app, http.MethodPost, "/api/v1/admin/sections/0/move/sideways", token, nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	resp.Body.Close()

	resp = doJSON(t, app, http.MethodPost, "/api/v1/admin/users/u2/plan/toggle", token, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()
	assert.Equal(t, models.PlanPro, store.Users.List()[1].Plan)

	resp = doJSON(t, app, http.MethodGet, "/api/v1/admin/overview", token, nil)
	var ov services.Overview
	decode(t, resp, &ov)
	assert.Equal(t, 2, ov.ProMembers)
	assert.Equal(t, 2, ov.VisibleNavs)
}

func TestPublicEndpoints(t *testing.T) {
	app, _ := setupApp()

	resp := doJSON(t, app, http.MethodGet, "/api/v1/feed", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var feed []services.FeedItem
	decode(t, resp, &feed)
	require.Len(t, feed, 8)
	assert.Equal(t, services.FeedItemAd, feed[6].Kind)
	assert.Equal(t, "ad-native-1", feed[6].Ad.ID)

	resp = doJSON(t, app, http.MethodGet, "/api/v1/sections", "", nil)
	var sections []models.Section
	decode(t, resp, &sections)
	assert.Len(t, sections, 2)

	resp = doJSON(t, app, http.MethodGet, "/api/v1/ads/banner/below-services", "", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()
	resp = doJSON(t, app, http.MethodGet, "/api/v1/ads/banner/footer", "", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	resp.Body.Close()

	resp = doJSON(t, app, http.MethodGet, "/api/v1/leaderboard?limit=1", "", nil)
	var leaders []models.User
	decode(t, resp, &leaders)
	require.Len(t, leaders, 1)
	assert.Equal(t, "u1", leaders[0].ID)
}

func TestProfileUpdate(t *testing.T) {
	app, store := setupApp()
	token := login(t, app, "user@demo.com")

	resp := doJSON(t, app, http.MethodPatch, "/api/v1/me", token, map[string]string{"bio": "hello"})
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()
	assert.Equal(t, "hello", store.Users.List()[1].Bio)
}

func TestGeneratorEndpoints(t *testing.T) {
	app, _ := setupApp()

	resp := doJSON(t, app, http.MethodPost, "/api/v1/generator/prompt", "", map[string]string{"topic": ""})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	resp.Body.Close()

	resp = doJSON(t, app, http.MethodPost, "/api/v1/generator/prompt", "", map[string]string{"topic": "قطة"})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var res services.GenerateResult
	decode(t, resp, &res)
	assert.Equal(t, services.FallbackMissingKey, res.Prompt)

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", `form-data; name="image"; filename="a.png"`)
	h.Set("Content-Type", "image/png")
	part, err := w.CreatePart(h)
	require.NoError(t, err)
	_, _ = part.Write([]byte{0x89, 0x50, 0x4e, 0x47})
	require.NoError(t, w.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/v1/generator/image", &buf)
	req.Header.Set("Content-Type", w.FormDataContentType())
	resp, err = app.Test(req, -1)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	decode(t, resp, &res)
	assert.Equal(t, services.FallbackImageNoKey, res.Prompt)
}
