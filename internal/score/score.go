// internal/score/score.go
package score

import (
	"fmt"
	"math"
	"sort"

	"democracy-score/internal/domain"
)

// Пороговые значения Democracy Score
const (
	HighMin   = 70 // score >= 70 — высокий
	MediumMin = 40 // score >= 40 — средний, иначе низкий

	// Ниже этого порога компании предлагаются альтернативы
	RecommendBelow = 50

	// Сколько альтернатив показываем максимум
	DefaultAlternatives = 3
)

type Tier string

const (
	TierHigh   Tier = "high"
	TierMedium Tier = "medium"
	TierLow    Tier = "low"
)

// Classify раскладывает score по трём уровням
func Classify(score int) Tier {
	switch {
	case score >= HighMin:
		return TierHigh
	case score >= MediumMin:
		return TierMedium
	default:
		return TierLow
	}
}

// Label — текстовая расшифровка уровня для карточки компании
func Label(score int) string {
	switch Classify(score) {
	case TierHigh:
		return "Strong alignment with democratic values"
	case TierMedium:
		return "Mixed record on democratic values"
	default:
		return "Significant concerns about democratic values"
	}
}

// Validate проверяет диапазон 0..100. Вся раскраска и progress-бары
// на него рассчитывают, поэтому падаем сразу
func Validate(score int) error {
	if score < 0 || score > 100 {
		return fmt.Errorf("score %d out of range [0, 100]", score)
	}
	return nil
}

// CategoryAverage — средний score компаний категории, округлённый
// до целого. Для пустой категории 0, чтобы не делить на ноль
func CategoryAverage(companies []domain.Company) int {
	if len(companies) == 0 {
		return 0
	}
	sum := 0
	for _, c := range companies {
		sum += c.Score
	}
	return int(math.Round(float64(sum) / float64(len(companies))))
}

// NeedsAlternatives — нужно ли предлагать альтернативы
func NeedsAlternatives(score int) bool {
	return score < RecommendBelow
}

// Alternatives возвращает до limit компаний той же категории
// со строго большим score, по убыванию. Пустой список — не ошибка
func Alternatives(target domain.Company, all []domain.Company, limit int) []domain.Company {
	if limit <= 0 {
		limit = DefaultAlternatives
	}

	alts := make([]domain.Company, 0, limit)
	for _, c := range all {
		if c.CategoryID == target.CategoryID && c.ID != target.ID && c.Score > target.Score {
			alts = append(alts, c)
		}
	}

	// Стабильная сортировка: при равных score сохраняем порядок каталога
	sort.SliceStable(alts, func(i, j int) bool {
		return alts[i].Score > alts[j].Score
	})

	if len(alts) > limit {
		alts = alts[:limit]
	}
	return alts
}

// TopCompanies — лучшие компании по всему каталогу, по убыванию score
func TopCompanies(all []domain.Company, limit int) []domain.Company {
	top := make([]domain.Company, len(all))
	copy(top, all)
	sort.SliceStable(top, func(i, j int) bool {
		return top[i].Score > top[j].Score
	})
	if limit > 0 && len(top) > limit {
		top = top[:limit]
	}
	return top
}
