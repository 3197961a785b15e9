package services

import (
	"sort"

	"arabyprompts/internal/models"
)

// LeaderboardSize is how many users the community page shows.
const LeaderboardSize = 5

// RankUsers returns a copy of users ordered by points, highest first.
// Ties keep their original collection order.
func RankUsers(users []models.User) []models.User {
	ranked := make([]models.User, len(users))
	copy(ranked, users)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Points > ranked[j].Points
	})
	return ranked
}

// TopN returns at most n leading items.
func TopN[T any](items []T, n int) []T {
	if n <= 0 {
		return []T{}
	}
	if n > len(items) {
		n = len(items)
	}
	out := make([]T, n)
	copy(out, items[:n])
	return out
}
