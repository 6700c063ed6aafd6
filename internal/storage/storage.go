// internal/storage/storage.go
package storage

import (
	"context"

	"democracy-score/internal/domain"
)

// CatalogStorage — read-only доступ к каталогу категорий и компаний.
// Каталог общий для всех пользователей
type CatalogStorage interface {
	ListCategories(ctx context.Context) ([]domain.Category, error)
	FindCategory(ctx context.Context, categoryID string) (*domain.Category, error)
	FindCompany(ctx context.Context, companyID string) (*domain.Company, error)
	ListCompanies(ctx context.Context) ([]domain.Company, error)
}

// UserStorage — пользовательские профили и вся персонализация.
// Мутации не должны отдавать наружу внутренние слайсы/мапы
type UserStorage interface {
	CreateUser(ctx context.Context, name, email string, guest bool) (*domain.User, error)
	GetUser(ctx context.Context, userID string) (*domain.User, error)
	DeleteUser(ctx context.Context, userID string) error

	AddSpending(ctx context.Context, userID string, rec domain.SpendingRecord) error
	ToggleCategoryVisibility(ctx context.Context, userID, categoryID string) (bool, error)
	SetCategoryOrder(ctx context.Context, userID string, order []string) error
	AddUserStore(ctx context.Context, userID, categoryID, store string) error
	RemoveUserStore(ctx context.Context, userID, categoryID, store string) error
	UpdateWhiteLabel(ctx context.Context, userID string, settings domain.WhiteLabelSettings) error
	UpdatePreferences(ctx context.Context, userID string, prefs domain.Preferences) error
	ListNotifications(ctx context.Context, userID string) ([]domain.Notification, error)
}

// Storage — то, что нужно хендлерам целиком
type Storage interface {
	CatalogStorage
	UserStorage
}
