// internal/catalog/resolver.go
package catalog

import "democracy-score/internal/domain"

// MissingPolicy — что делать с категориями каталога, которых нет
// в пользовательском categoryOrder
type MissingPolicy int

const (
	// MissingAppend — дописать их в конец в порядке каталога (по умолчанию).
	// Так категория не пропадает из выдачи при неполном списке порядка
	MissingAppend MissingPolicy = iota
	// MissingDrop — молча выбросить, как делал исходный мок
	MissingDrop
)

// ResolveOrder переставляет канонический список по order.
// Id из order, которых больше нет в каталоге, отбрасываются
func ResolveOrder(categories []domain.Category, order []string, policy MissingPolicy) []domain.Category {
	if len(order) == 0 {
		result := make([]domain.Category, len(categories))
		copy(result, categories)
		return result
	}

	byID := make(map[string]int, len(categories))
	for i, cat := range categories {
		byID[cat.ID] = i
	}

	result := make([]domain.Category, 0, len(categories))
	listed := make(map[string]bool, len(order))
	for _, id := range order {
		if idx, ok := byID[id]; ok && !listed[id] {
			result = append(result, categories[idx])
			listed[id] = true
		}
	}

	if policy == MissingAppend {
		for _, cat := range categories {
			if !listed[cat.ID] {
				result = append(result, cat)
			}
		}
	}
	return result
}

// Partition делит упорядоченный список на видимые и скрытые.
// Отсутствие ключа в visibility означает «видимо».
// Ничего не удаляется — только фильтруются представления
func Partition(categories []domain.Category, visibility map[string]bool) (visible, hidden []domain.Category) {
	visible = make([]domain.Category, 0, len(categories))
	hidden = make([]domain.Category, 0)
	for _, cat := range categories {
		if v, ok := visibility[cat.ID]; ok && !v {
			hidden = append(hidden, cat)
			continue
		}
		visible = append(visible, cat)
	}
	return visible, hidden
}
