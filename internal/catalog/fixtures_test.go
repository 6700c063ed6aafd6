// internal/catalog/fixtures_test.go
package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"democracy-score/internal/score"
)

func TestDefaultCatalogScoresInRange(t *testing.T) {
	for _, cat := range Default() {
		require.NotEmpty(t, cat.Companies, "category %s has no companies", cat.ID)
		for _, c := range cat.Companies {
			assert.NoError(t, score.Validate(c.Score), "company %s", c.ID)
		}
	}
}

func TestDefaultCatalogCompanyCategoryMatchesParent(t *testing.T) {
	for _, cat := range Default() {
		for _, c := range cat.Companies {
			assert.Equal(t, cat.ID, c.CategoryID, "company %s", c.ID)
		}
	}
}

func TestDefaultCatalogUniqueCompanyIDs(t *testing.T) {
	seen := make(map[string]bool)
	for _, cat := range Default() {
		for _, c := range cat.Companies {
			assert.False(t, seen[c.ID], "duplicate company id %s", c.ID)
			seen[c.ID] = true
		}
	}
}

func TestDefaultNotificationsConsistent(t *testing.T) {
	notifications := DefaultNotifications()
	require.NotEmpty(t, notifications)
	for _, n := range notifications {
		assert.True(t, n.Consistent(), "notification %s: trend does not match score delta", n.ID)
	}
}

func TestTemplateUserReferencesCatalog(t *testing.T) {
	catalogIDs := make(map[string]bool)
	companyIDs := make(map[string]bool)
	for _, cat := range Default() {
		catalogIDs[cat.ID] = true
		for _, c := range cat.Companies {
			companyIDs[c.ID] = true
		}
	}

	user := TemplateUser()
	for id := range user.CategoryScores {
		assert.True(t, catalogIDs[id], "category score for unknown category %s", id)
	}
	for _, id := range user.CategoryOrder {
		assert.True(t, catalogIDs[id], "order lists unknown category %s", id)
	}
	for _, rec := range user.Spending {
		assert.True(t, companyIDs[rec.CompanyID], "spending for unknown company %s", rec.CompanyID)
		assert.True(t, catalogIDs[rec.CategoryID], "spending for unknown category %s", rec.CategoryID)
	}
}

func TestTemplateUserIsIndependentPerCall(t *testing.T) {
	a := TemplateUser()
	b := TemplateUser()

	a.CategoryVisibility["grocery"] = false
	a.CategoryOrder[0] = "mutated"

	assert.True(t, b.CategoryVisibility["grocery"])
	assert.Equal(t, "grocery", b.CategoryOrder[0])
}
