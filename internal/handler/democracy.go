// internal/handler/democracy.go
package handler

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"democracy-score/internal/catalog"
	"democracy-score/internal/domain"
	"democracy-score/internal/score"
	"democracy-score/internal/spending"
	"democracy-score/internal/storage"
	val "democracy-score/internal/validator"
)

type DemocracyHandler struct {
	store storage.Storage
}

func NewDemocracyHandler(store storage.Storage) *DemocracyHandler {
	return &DemocracyHandler{store: store}
}

// userID достаёт user_id, положенный auth-middleware.
// Отсутствие — всегда ошибка программиста, не клиента
func userID(c *gin.Context) (string, bool) {
	userIDVal, ok := c.Get("user_id")
	if !ok {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "user_id missing"})
		return "", false
	}
	id, ok := userIDVal.(string)
	if !ok || id == "" {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "invalid user_id"})
		return "", false
	}
	return id, true
}

// getUser загружает профиль по токену. nil без ошибки — сессия
// удалена (logout), токен при этом ещё может быть валиден
func (h *DemocracyHandler) getUser(c *gin.Context) (*domain.User, bool) {
	id, ok := userID(c)
	if !ok {
		return nil, false
	}
	user, err := h.store.GetUser(context.Background(), id)
	if err != nil {
		slog.Error("GetUser failed", "error", err, "user_id", id)
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Internal error"})
		return nil, false
	}
	if user == nil {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Session expired, please log in again"})
		return nil, false
	}
	return user, true
}

type categorySummary struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Icon         string   `json:"icon"`
	AverageScore int      `json:"averageScore"`
	CompanyCount int      `json:"companyCount"`
	UserStores   []string `json:"userStores,omitempty"`
}

func summarize(cat domain.Category, user *domain.User) categorySummary {
	return categorySummary{
		ID:           cat.ID,
		Name:         cat.Name,
		Icon:         cat.Icon,
		AverageScore: score.CategoryAverage(cat.Companies),
		CompanyCount: len(cat.Companies),
		UserStores:   user.UserStores[cat.ID],
	}
}

// ListCategories godoc
// @Summary List categories in the user's order
// @Description Returns visible categories reordered per user, hidden ones separately
// @Tags catalog
// @Produce json
// @Success 200 {object} map[string]any
// @Router /api/v1/categories [get]
func (h *DemocracyHandler) ListCategories(c *gin.Context) {
	user, ok := h.getUser(c)
	if !ok {
		return
	}

	categories, err := h.store.ListCategories(context.Background())
	if err != nil {
		slog.Error("ListCategories failed", "error", err, "user_id", user.ID)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal error"})
		return
	}

	// Сначала порядок, потом видимость: скрытая категория сохраняет
	// своё место и вернётся туда же после повторного toggle
	ordered := catalog.ResolveOrder(categories, user.CategoryOrder, catalog.MissingAppend)
	visible, hidden := catalog.Partition(ordered, user.CategoryVisibility)

	visibleOut := make([]categorySummary, 0, len(visible))
	for _, cat := range visible {
		visibleOut = append(visibleOut, summarize(cat, user))
	}
	hiddenOut := make([]categorySummary, 0, len(hidden))
	for _, cat := range hidden {
		hiddenOut = append(hiddenOut, summarize(cat, user))
	}

	c.JSON(http.StatusOK, gin.H{
		"categories": visibleOut,
		"hidden":     hiddenOut,
	})
}

// GetCategory godoc
// @Summary Category detail with companies sorted by score
// @Param id path string true "Category ID"
// @Success 200 {object} map[string]any
// @Failure 404 {object} map[string]string
// @Router /api/v1/categories/{id} [get]
func (h *DemocracyHandler) GetCategory(c *gin.Context) {
	user, ok := h.getUser(c)
	if !ok {
		return
	}
	categoryID := c.Param("id")

	cat, err := h.store.FindCategory(context.Background(), categoryID)
	if err != nil {
		slog.Error("FindCategory failed", "error", err, "category", categoryID)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal error"})
		return
	}
	if cat == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Category not found"})
		return
	}

	companies := score.TopCompanies(cat.Companies, 0) // по убыванию, без лимита
	c.JSON(http.StatusOK, gin.H{
		"id":           cat.ID,
		"name":         cat.Name,
		"icon":         cat.Icon,
		"averageScore": score.CategoryAverage(cat.Companies),
		"companies":    companies,
		"userStores":   user.UserStores[cat.ID],
		"userSpending": spending.TopCompanies(user.Spending, cat.ID, 0),
	})
}

// GetCompany godoc
// @Summary Company detail with score tier and alternatives
// @Description Alternatives are suggested only when the score is below 50
// @Param id path string true "Company ID"
// @Success 200 {object} map[string]any
// @Failure 404 {object} map[string]string
// @Router /api/v1/companies/{id} [get]
func (h *DemocracyHandler) GetCompany(c *gin.Context) {
	if _, ok := h.getUser(c); !ok {
		return
	}
	companyID := c.Param("id")

	company, err := h.store.FindCompany(context.Background(), companyID)
	if err != nil {
		slog.Error("FindCompany failed", "error", err, "company", companyID)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal error"})
		return
	}
	if company == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Company not found"})
		return
	}

	resp := gin.H{
		"company":    company,
		"scoreTier":  score.Classify(company.Score),
		"scoreLabel": score.Label(company.Score),
	}

	if score.NeedsAlternatives(company.Score) {
		cat, err := h.store.FindCategory(context.Background(), company.CategoryID)
		if err != nil {
			slog.Error("FindCategory failed", "error", err, "category", company.CategoryID)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal error"})
			return
		}
		alts := []domain.Company{}
		if cat != nil {
			alts = score.Alternatives(*company, cat.Companies, score.DefaultAlternatives)
		}
		resp["alternatives"] = alts
	}

	c.JSON(http.StatusOK, resp)
}

// TopCompanies godoc
// @Summary Best-scoring companies across the whole catalog
// @Param limit query int false "Max companies to return (default 10)"
// @Success 200 {array} domain.Company
// @Router /api/v1/companies/top [get]
func (h *DemocracyHandler) TopCompanies(c *gin.Context) {
	if _, ok := h.getUser(c); !ok {
		return
	}

	limit := 10
	if limitStr := c.Query("limit"); limitStr != "" {
		n, err := strconv.Atoi(limitStr)
		if err != nil || n <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "limit must be a positive integer"})
			return
		}
		limit = n
	}

	all, err := h.store.ListCompanies(context.Background())
	if err != nil {
		slog.Error("ListCompanies failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal error"})
		return
	}
	c.JSON(http.StatusOK, score.TopCompanies(all, limit))
}

// ListNotifications godoc
// @Summary Score change notifications for the user
// @Success 200 {array} domain.Notification
// @Router /api/v1/notifications [get]
func (h *DemocracyHandler) ListNotifications(c *gin.Context) {
	id, ok := userID(c)
	if !ok {
		return
	}
	notifications, err := h.store.ListNotifications(context.Background(), id)
	if err != nil {
		slog.Error("ListNotifications failed", "error", err, "user_id", id)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal error"})
		return
	}
	c.JSON(http.StatusOK, notifications)
}

func validateStruct(v any) error {
	if err := val.Validate.Struct(v); err != nil {
		var errs []string
		for _, e := range err.(validator.ValidationErrors) {
			errs = append(errs, fieldErrorToString(e))
		}
		return fmt.Errorf("invalid input: %s", strings.Join(errs, "; "))
	}
	return nil
}

func fieldErrorToString(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", e.Field())
	case "dateonly":
		return fmt.Sprintf("%s must be in YYYY-MM-DD format", e.Field())
	case "notblank":
		return fmt.Sprintf("%s must not be blank", e.Field())
	case "hexcolor":
		return fmt.Sprintf("%s must be a hex color like #14b8a6", e.Field())
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", e.Field(), e.Param())
	case "min":
		if e.Param() == "1" {
			return fmt.Sprintf("%s must not be empty", e.Field())
		}
		return fmt.Sprintf("%s is too short", e.Field())
	case "gt", "gte", "lte":
		return fmt.Sprintf("%s is out of range", e.Field())
	default:
		return fmt.Sprintf("%s is invalid", e.Field())
	}
}
