// internal/score/score_test.go
package score

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"democracy-score/internal/domain"
)

func TestClassifyBoundaries(t *testing.T) {
	assert.Equal(t, TierHigh, Classify(100))
	assert.Equal(t, TierHigh, Classify(70))
	assert.Equal(t, TierMedium, Classify(69))
	assert.Equal(t, TierMedium, Classify(40))
	assert.Equal(t, TierLow, Classify(39))
	assert.Equal(t, TierLow, Classify(0))
}

func TestLabelMatchesTier(t *testing.T) {
	assert.Equal(t, "Strong alignment with democratic values", Label(92))
	assert.Equal(t, "Mixed record on democratic values", Label(44))
	assert.Equal(t, "Significant concerns about democratic values", Label(22))
}

func TestValidateRange(t *testing.T) {
	assert.NoError(t, Validate(0))
	assert.NoError(t, Validate(100))
	assert.Error(t, Validate(-1))
	assert.Error(t, Validate(101))
}

func grocery() []domain.Company {
	return []domain.Company{
		{ID: "whole-foods", CategoryID: "grocery", Score: 72},
		{ID: "walmart", CategoryID: "grocery", Score: 35},
		{ID: "trader-joes", CategoryID: "grocery", Score: 68},
		{ID: "kroger", CategoryID: "grocery", Score: 45},
	}
}

func TestCategoryAverage(t *testing.T) {
	// round(mean(72, 35, 68, 45)) = round(55.0) = 55
	assert.Equal(t, 55, CategoryAverage(grocery()))
}

func TestCategoryAverageRoundsHalfUp(t *testing.T) {
	companies := []domain.Company{{Score: 50}, {Score: 51}}
	assert.Equal(t, 51, CategoryAverage(companies))
}

func TestCategoryAverageEmpty(t *testing.T) {
	assert.Equal(t, 0, CategoryAverage(nil))
}

func TestNeedsAlternatives(t *testing.T) {
	assert.True(t, NeedsAlternatives(49))
	assert.False(t, NeedsAlternatives(50))
}

func TestAlternativesStrictlyBetterSameCategory(t *testing.T) {
	companies := grocery()
	target := companies[1] // walmart, 35

	alts := Alternatives(target, companies, 3)
	require.Len(t, alts, 3)
	assert.Equal(t, "whole-foods", alts[0].ID)
	assert.Equal(t, "trader-joes", alts[1].ID)
	assert.Equal(t, "kroger", alts[2].ID)
}

func TestAlternativesExcludesOtherCategories(t *testing.T) {
	companies := append(grocery(), domain.Company{ID: "patagonia", CategoryID: "apparel", Score: 92})
	target := companies[1] // walmart

	alts := Alternatives(target, companies, 3)
	for _, a := range alts {
		assert.Equal(t, "grocery", a.CategoryID)
	}
}

func TestAlternativesNoneBetter(t *testing.T) {
	companies := grocery()
	target := companies[0] // whole-foods, 72 — лучший в категории

	assert.Empty(t, Alternatives(target, companies, 3))
}

func TestAlternativesLimit(t *testing.T) {
	companies := grocery()
	target := companies[1] // walmart

	alts := Alternatives(target, companies, 2)
	require.Len(t, alts, 2)
	assert.Equal(t, "whole-foods", alts[0].ID)

	// limit <= 0 — дефолтные 3
	assert.Len(t, Alternatives(target, companies, 0), 3)
}

func TestTopCompaniesDoesNotMutateInput(t *testing.T) {
	companies := grocery()
	top := TopCompanies(companies, 2)

	require.Len(t, top, 2)
	assert.Equal(t, "whole-foods", top[0].ID)
	assert.Equal(t, "trader-joes", top[1].ID)
	// исходный порядок каталога не тронут
	assert.Equal(t, "whole-foods", companies[0].ID)
	assert.Equal(t, "walmart", companies[1].ID)
}
