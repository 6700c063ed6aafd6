// internal/storage/memory/memory.go
package memory

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"github.com/google/uuid"

	"democracy-score/internal/catalog"
	"democracy-score/internal/domain"
)

var ErrUserNotFound = errors.New("user not found")

// Storage — in-memory реализация. Каталог иммутабелен после старта,
// пользователи живут в map под RWMutex. Персистентности нет:
// перезапуск процесса сбрасывает все сессии
type Storage struct {
	mu         sync.RWMutex
	categories []domain.Category
	companies  map[string]*domain.Company // companyId -> указатель в categories
	users      map[string]*domain.User
}

func NewStorage(categories []domain.Category) *Storage {
	s := &Storage{
		categories: categories,
		companies:  make(map[string]*domain.Company),
		users:      make(map[string]*domain.User),
	}
	for i := range s.categories {
		for j := range s.categories[i].Companies {
			c := &s.categories[i].Companies[j]
			s.companies[c.ID] = c
		}
	}
	return s
}

// ---------- CatalogStorage ----------

func (s *Storage) ListCategories(ctx context.Context) ([]domain.Category, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]domain.Category, len(s.categories))
	copy(result, s.categories)
	return result, nil
}

func (s *Storage) FindCategory(ctx context.Context, categoryID string) (*domain.Category, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, cat := range s.categories {
		if cat.ID == categoryID {
			found := cat
			return &found, nil
		}
	}
	return nil, nil
}

func (s *Storage) FindCompany(ctx context.Context, companyID string) (*domain.Company, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	c, ok := s.companies[companyID]
	if !ok {
		return nil, nil
	}
	found := *c
	return &found, nil
}

func (s *Storage) ListCompanies(ctx context.Context) ([]domain.Company, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	all := make([]domain.Company, 0, len(s.companies))
	for _, cat := range s.categories {
		all = append(all, cat.Companies...)
	}
	return all, nil
}

// ---------- UserStorage ----------

// CreateUser собирает пользователя из шаблонного профиля.
// Каждый вход — новая сессия со своим uuid
func (s *Storage) CreateUser(ctx context.Context, name, email string, guest bool) (*domain.User, error) {
	user := catalog.TemplateUser()
	user.ID = uuid.NewString()
	user.Name = name
	user.Email = email
	user.IsGuest = guest

	s.mu.Lock()
	s.users[user.ID] = &user
	s.mu.Unlock()

	slog.Info("👤 user session created", "user_id", user.ID, "guest", guest)
	snapshot := cloneUser(&user)
	return snapshot, nil
}

func (s *Storage) GetUser(ctx context.Context, userID string) (*domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	user, ok := s.users[userID]
	if !ok {
		return nil, nil
	}
	return cloneUser(user), nil
}

func (s *Storage) DeleteUser(ctx context.Context, userID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.users[userID]; !ok {
		return ErrUserNotFound
	}
	delete(s.users, userID)
	slog.Info("👤 user session deleted", "user_id", userID)
	return nil
}

// AddSpending дописывает запись в журнал. Журнал append-only
func (s *Storage) AddSpending(ctx context.Context, userID string, rec domain.SpendingRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	user, ok := s.users[userID]
	if !ok {
		return ErrUserNotFound
	}
	user.Spending = append(user.Spending, rec)
	return nil
}

// ToggleCategoryVisibility переключает видимость и возвращает новое
// значение. Отсутствие ключа считается true, первый toggle даёт false
func (s *Storage) ToggleCategoryVisibility(ctx context.Context, userID, categoryID string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	user, ok := s.users[userID]
	if !ok {
		return false, ErrUserNotFound
	}
	if user.CategoryVisibility == nil {
		user.CategoryVisibility = make(map[string]bool)
	}
	current := true
	if v, ok := user.CategoryVisibility[categoryID]; ok {
		current = v
	}
	user.CategoryVisibility[categoryID] = !current
	return !current, nil
}

// SetCategoryOrder заменяет порядок целиком и атомарно.
// Слайс копируем: вызывающий может менять свой после возврата
func (s *Storage) SetCategoryOrder(ctx context.Context, userID string, order []string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	user, ok := s.users[userID]
	if !ok {
		return ErrUserNotFound
	}
	next := make([]string, len(order))
	copy(next, order)
	user.CategoryOrder = next
	return nil
}

func (s *Storage) AddUserStore(ctx context.Context, userID, categoryID, store string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	user, ok := s.users[userID]
	if !ok {
		return ErrUserNotFound
	}
	if user.UserStores == nil {
		user.UserStores = make(map[string][]string)
	}
	for _, existing := range user.UserStores[categoryID] {
		if existing == store {
			return nil // уже добавлен, не дублируем
		}
	}
	user.UserStores[categoryID] = append(user.UserStores[categoryID], store)
	return nil
}

func (s *Storage) RemoveUserStore(ctx context.Context, userID, categoryID, store string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	user, ok := s.users[userID]
	if !ok {
		return ErrUserNotFound
	}
	stores := user.UserStores[categoryID]
	next := make([]string, 0, len(stores))
	for _, existing := range stores {
		if existing != store {
			next = append(next, existing)
		}
	}
	user.UserStores[categoryID] = next
	return nil
}

func (s *Storage) UpdateWhiteLabel(ctx context.Context, userID string, settings domain.WhiteLabelSettings) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	user, ok := s.users[userID]
	if !ok {
		return ErrUserNotFound
	}
	user.WhiteLabel = settings
	return nil
}

func (s *Storage) UpdatePreferences(ctx context.Context, userID string, prefs domain.Preferences) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	user, ok := s.users[userID]
	if !ok {
		return ErrUserNotFound
	}
	user.Preferences = prefs
	return nil
}

func (s *Storage) ListNotifications(ctx context.Context, userID string) ([]domain.Notification, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	user, ok := s.users[userID]
	if !ok {
		return nil, ErrUserNotFound
	}
	result := make([]domain.Notification, len(user.Notifications))
	copy(result, user.Notifications)
	return result, nil
}

// cloneUser — глубокая копия: наружу не должны утекать внутренние
// map и слайсы, иначе чтение без мьютекса станет гонкой
func cloneUser(u *domain.User) *domain.User {
	clone := *u

	clone.CategoryScores = make(map[string]int, len(u.CategoryScores))
	for k, v := range u.CategoryScores {
		clone.CategoryScores[k] = v
	}
	clone.CategoryVisibility = make(map[string]bool, len(u.CategoryVisibility))
	for k, v := range u.CategoryVisibility {
		clone.CategoryVisibility[k] = v
	}
	clone.CategoryOrder = make([]string, len(u.CategoryOrder))
	copy(clone.CategoryOrder, u.CategoryOrder)
	clone.Spending = make([]domain.SpendingRecord, len(u.Spending))
	copy(clone.Spending, u.Spending)
	clone.Notifications = make([]domain.Notification, len(u.Notifications))
	copy(clone.Notifications, u.Notifications)
	if u.UserStores != nil {
		clone.UserStores = make(map[string][]string, len(u.UserStores))
		for k, v := range u.UserStores {
			stores := make([]string, len(v))
			copy(stores, v)
			clone.UserStores[k] = stores
		}
	}
	return &clone
}
