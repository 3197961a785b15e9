package services_test

import (
	"testing"

	"arabyprompts/internal/models"
	"arabyprompts/internal/services"

	"github.com/stretchr/testify/assert"
)

func TestRankUsers(t *testing.T) {
	users := []models.User{
		{ID: "a", Points: 10},
		{ID: "b", Points: 50},
		{ID: "c", Points: 5},
	}

	ranked := services.RankUsers(users)

	assert.Equal(t, []string{"b", "a", "c"}, []string{ranked[0].ID, ranked[1].ID, ranked[2].ID})
	assert.Equal(t, "a", users[0].ID, "input must not be reordered")

	top := services.TopN(ranked, 2)
	assert.Equal(t, ranked[:2], top)
}

func TestRankUsers_TiesKeepCollectionOrder(t *testing.T) {
	users := []models.User{
		{ID: "x", Points: 7},
		{ID: "y", Points: 9},
		{ID: "z", Points: 7},
	}
	ranked := services.RankUsers(users)
	assert.Equal(t, []string{"y", "x", "z"}, []string{ranked[0].ID, ranked[1].ID, ranked[2].ID})
}

func TestTopN_Bounds(t *testing.T) {
	items := []int{1, 2, 3}
	assert.Equal(t, []int{1, 2, 3}, services.TopN(items, 10))
	assert.Empty(t, services.TopN(items, 0))
	assert.Empty(t, services.TopN(items, -1))
	assert.Empty(t, services.TopN([]int{}, 5))
}

func TestCanAccessAdmin(t *testing.T) {
	assert.False(t, services.CanAccessAdmin(nil))
	assert.False(t, services.CanAccessAdmin(&models.User{Role: models.RoleUser}))
	assert.False(t, services.CanAccessAdmin(&models.User{Role: models.RolePro, Plan: models.PlanPro, Points: 9999}))
	assert.True(t, services.CanAccessAdmin(&models.User{Role: models.RoleAdmin}))
	assert.True(t, services.CanAccessAdmin(&models.User{Role: models.RoleAdmin, Email: "someone@example.com", Plan: models.PlanFree}))
}
