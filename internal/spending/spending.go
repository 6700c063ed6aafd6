// internal/spending/spending.go
package spending

import (
	"sort"

	"democracy-score/internal/domain"
)

// AllCategories — агрегировать по всем категориям сразу
const AllCategories = "all"

// CompanyTotal — сумма трат по компании внутри категории
type CompanyTotal struct {
	CompanyID   string `json:"companyId"`
	CompanyName string `json:"companyName"`
	Total       int    `json:"totalAmount"`
}

// CategoryTotal — сумма трат и число РАЗНЫХ магазинов по категории
type CategoryTotal struct {
	CategoryID string `json:"categoryId"`
	Total      int    `json:"totalAmount"`
	StoreCount int    `json:"storeCount"`
}

// TopCompanies группирует журнал по companyId внутри categoryID
// (или по всем категориям при AllCategories/""), суммирует amount и
// возвращает топ-n по убыванию. Имя компании берём из первой записи.
// Журнал не меняется; при равных суммах порядок журнала сохраняется.
// n <= 0 — вернуть все группы
func TopCompanies(ledger []domain.SpendingRecord, categoryID string, n int) []CompanyTotal {
	byCompany := make(map[string]int) // companyId -> индекс в totals
	totals := make([]CompanyTotal, 0)

	for _, rec := range ledger {
		if categoryID != "" && categoryID != AllCategories && rec.CategoryID != categoryID {
			continue
		}
		idx, ok := byCompany[rec.CompanyID]
		if !ok {
			byCompany[rec.CompanyID] = len(totals)
			totals = append(totals, CompanyTotal{
				CompanyID:   rec.CompanyID,
				CompanyName: rec.CompanyName,
				Total:       rec.Amount,
			})
			continue
		}
		totals[idx].Total += rec.Amount
	}

	sort.SliceStable(totals, func(i, j int) bool {
		return totals[i].Total > totals[j].Total
	})

	if n > 0 && len(totals) > n {
		totals = totals[:n]
	}
	return totals
}

// TopCategories группирует журнал по categoryId: сумма amount и число
// уникальных companyId (не записей!). Топ-n по убыванию суммы
func TopCategories(ledger []domain.SpendingRecord, n int) []CategoryTotal {
	byCategory := make(map[string]int)         // categoryId -> индекс в totals
	stores := make(map[string]map[string]bool) // categoryId -> множество companyId
	totals := make([]CategoryTotal, 0)

	for _, rec := range ledger {
		idx, ok := byCategory[rec.CategoryID]
		if !ok {
			byCategory[rec.CategoryID] = len(totals)
			stores[rec.CategoryID] = map[string]bool{rec.CompanyID: true}
			totals = append(totals, CategoryTotal{
				CategoryID: rec.CategoryID,
				Total:      rec.Amount,
				StoreCount: 1,
			})
			continue
		}
		totals[idx].Total += rec.Amount
		if !stores[rec.CategoryID][rec.CompanyID] {
			stores[rec.CategoryID][rec.CompanyID] = true
			totals[idx].StoreCount++
		}
	}

	sort.SliceStable(totals, func(i, j int) bool {
		return totals[i].Total > totals[j].Total
	})

	if n > 0 && len(totals) > n {
		totals = totals[:n]
	}
	return totals
}

// Total — сумма всего журнала. Пустой журнал — 0
func Total(ledger []domain.SpendingRecord) int {
	sum := 0
	for _, rec := range ledger {
		sum += rec.Amount
	}
	return sum
}

// UniqueCompanies — сколько разных компаний встречается в журнале
func UniqueCompanies(ledger []domain.SpendingRecord) int {
	seen := make(map[string]bool)
	for _, rec := range ledger {
		seen[rec.CompanyID] = true
	}
	return len(seen)
}
