// internal/handler/profile.go
package handler

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"democracy-score/internal/charts"
	"democracy-score/internal/domain"
	"democracy-score/internal/spending"
)

// GetProfile godoc
// @Summary User profile with spending overview
// @Success 200 {object} map[string]any
// @Router /api/v1/profile [get]
func (h *DemocracyHandler) GetProfile(c *gin.Context) {
	user, ok := h.getUser(c)
	if !ok {
		return
	}

	// Разбивка по категориям: сумма, число магазинов и топ-5 компаний
	totals := spending.TopCategories(user.Spending, 0)
	breakdown := make([]gin.H, 0, len(totals))
	for _, t := range totals {
		breakdown = append(breakdown, gin.H{
			"categoryId":   t.CategoryID,
			"totalAmount":  t.Total,
			"storeCount":   t.StoreCount,
			"topCompanies": spending.TopCompanies(user.Spending, t.CategoryID, 5),
		})
	}

	c.JSON(http.StatusOK, gin.H{
		"user":              user,
		"totalSpending":     spending.Total(user.Spending),
		"uniqueCompanies":   spending.UniqueCompanies(user.Spending),
		"categoriesEngaged": len(totals),
		"spendingBreakdown": breakdown,
	})
}

// TopSpending godoc
// @Summary Top spending categories with distinct store counts
// @Param n query int false "How many categories (default 3)"
// @Success 200 {array} spending.CategoryTotal
// @Router /api/v1/profile/spending/top [get]
func (h *DemocracyHandler) TopSpending(c *gin.Context) {
	user, ok := h.getUser(c)
	if !ok {
		return
	}

	n := 3
	if nStr := c.Query("n"); nStr != "" {
		parsed, err := strconv.Atoi(nStr)
		if err != nil || parsed <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "n must be a positive integer"})
			return
		}
		n = parsed
	}

	c.JSON(http.StatusOK, spending.TopCategories(user.Spending, n))
}

// SpendingChart godoc
// @Summary Bar chart of spending by category (PNG)
// @Produce png
// @Success 200 {file} png
// @Router /api/v1/profile/spending/chart [get]
func (h *DemocracyHandler) SpendingChart(c *gin.Context) {
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
	names := make(map[string]string, len(categories))
	for _, cat := range categories {
		names[cat.ID] = cat.Name
	}

	png, err := charts.SpendingByCategory(spending.TopCategories(user.Spending, 0), names)
	if err != nil {
		slog.Error("Chart render failed", "error", err, "user_id", user.ID)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to render chart"})
		return
	}
	c.Data(http.StatusOK, "image/png", png)
}

// AddSpending godoc
// @Summary Append a spending record to the user's ledger
// @Param request body AddSpendingRequest true "Spending record"
// @Success 200 {object} map[string]string{"status":"ok"}
// @Failure 400 {object} map[string]string
// @Router /api/v1/profile/spending [post]
func (h *DemocracyHandler) AddSpending(c *gin.Context) {
	slog.Info("AddSpending request received")
	var req AddSpendingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON"})
		return
	}

	if err := validateStruct(req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	id, ok := userID(c)
	if !ok {
		return
	}

	// Категорию и имя берём из каталога, клиенту не доверяем
	company, err := h.store.FindCompany(context.Background(), req.CompanyID)
	if err != nil {
		slog.Error("FindCompany failed", "error", err, "company", req.CompanyID)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal error"})
		return
	}
	if company == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown company"})
		return
	}

	rec := domain.SpendingRecord{
		CompanyID:   company.ID,
		CategoryID:  company.CategoryID,
		Amount:      req.Amount,
		Date:        req.Date,
		CompanyName: company.Name,
	}
	if err := h.store.AddSpending(context.Background(), id, rec); err != nil {
		slog.Error("AddSpending failed", "error", err, "user_id", id, "company", company.ID)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save spending"})
		return
	}

	slog.Info("Spending saved", "user_id", id, "company", company.ID, "amount", req.Amount)
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// ToggleVisibility godoc
// @Summary Toggle a category's visibility for the user
// @Param id path string true "Category ID"
// @Success 200 {object} map[string]any
// @Failure 404 {object} map[string]string
// @Router /api/v1/categories/{id}/visibility [post]
func (h *DemocracyHandler) ToggleVisibility(c *gin.Context) {
	id, ok := userID(c)
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

	visible, err := h.store.ToggleCategoryVisibility(context.Background(), id, categoryID)
	if err != nil {
		slog.Error("ToggleCategoryVisibility failed", "error", err, "user_id", id, "category", categoryID)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to toggle visibility"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"categoryId": categoryID, "visible": visible})
}

// SetOrder godoc
// @Summary Replace the user's category order atomically
// @Param request body SetOrderRequest true "Full ordered list of category IDs"
// @Success 200 {object} map[string]string{"status":"ok"}
// @Failure 400 {object} map[string]string
// @Router /api/v1/categories/order [put]
func (h *DemocracyHandler) SetOrder(c *gin.Context) {
	var req SetOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON"})
		return
	}

	if err := validateStruct(req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	id, ok := userID(c)
	if !ok {
		return
	}

	// Список заменяется целиком — частичных перестановок нет
	if err := h.store.SetCategoryOrder(context.Background(), id, req.Order); err != nil {
		slog.Error("SetCategoryOrder failed", "error", err, "user_id", id)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save order"})
		return
	}

	slog.Info("Category order updated", "user_id", id, "count", len(req.Order))
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// AddStore godoc
// @Summary Add a custom store to a category
// @Param id path string true "Category ID"
// @Param request body StoreRequest true "Store name"
// @Success 200 {object} map[string]string{"status":"ok"}
// @Failure 400 {object} map[string]string
// @Router /api/v1/categories/{id}/stores [post]
func (h *DemocracyHandler) AddStore(c *gin.Context) {
	var req StoreRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON"})
		return
	}

	if err := validateStruct(req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	id, ok := userID(c)
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

	if err := h.store.AddUserStore(context.Background(), id, categoryID, req.Store); err != nil {
		slog.Error("AddUserStore failed", "error", err, "user_id", id, "category", categoryID)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add store"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// RemoveStore godoc
// @Summary Remove a custom store from a category
// @Param id path string true "Category ID"
// @Param store query string true "Store name"
// @Success 200 {object} map[string]string{"status":"ok"}
// @Failure 400 {object} map[string]string
// @Router /api/v1/categories/{id}/stores [delete]
func (h *DemocracyHandler) RemoveStore(c *gin.Context) {
	store := c.Query("store")
	if store == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "store query param required"})
		return
	}

	id, ok := userID(c)
	if !ok {
		return
	}
	categoryID := c.Param("id")

	if err := h.store.RemoveUserStore(context.Background(), id, categoryID, store); err != nil {
		slog.Error("RemoveUserStore failed", "error", err, "user_id", id, "category", categoryID)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to remove store"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// UpdateWhiteLabel godoc
// @Summary Update white-label branding settings
// @Param request body WhiteLabelRequest true "Branding settings"
// @Success 200 {object} map[string]string{"status":"ok"}
// @Failure 400 {object} map[string]string
// @Router /api/v1/white-label [put]
func (h *DemocracyHandler) UpdateWhiteLabel(c *gin.Context) {
	var req WhiteLabelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON"})
		return
	}

	if err := validateStruct(req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	id, ok := userID(c)
	if !ok {
		return
	}

	settings := domain.WhiteLabelSettings{
		Mantra:   req.Mantra,
		Template: req.Template,
		Title:    req.Title,
		Color:    req.Color,
		Logo:     req.Logo,
	}
	if err := h.store.UpdateWhiteLabel(context.Background(), id, settings); err != nil {
		slog.Error("UpdateWhiteLabel failed", "error", err, "user_id", id)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save settings"})
		return
	}

	slog.Info("White-label settings updated", "user_id", id, "template", req.Template)
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// UpdatePreferences godoc
// @Summary Update the user's preference lists
// @Param request body PreferencesRequest true "Preference lists"
// @Success 200 {object} map[string]string{"status":"ok"}
// @Failure 400 {object} map[string]string
// @Router /api/v1/preferences [put]
func (h *DemocracyHandler) UpdatePreferences(c *gin.Context) {
	var req PreferencesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON"})
		return
	}

	if err := validateStruct(req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	id, ok := userID(c)
	if !ok {
		return
	}

	prefs := domain.Preferences{
		Labels:  req.Labels,
		Values:  req.Values,
		Logos:   req.Logos,
		Mantras: req.Mantras,
	}
	if err := h.store.UpdatePreferences(context.Background(), id, prefs); err != nil {
		slog.Error("UpdatePreferences failed", "error", err, "user_id", id)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save preferences"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// === DTO ===

type AddSpendingRequest struct {
	CompanyID string `json:"companyId" validate:"required,notblank"`
	Amount    int    `json:"amount" validate:"required,gt=0"`
	Date      string `json:"date" validate:"required,dateonly"`
}

type SetOrderRequest struct {
	Order []string `json:"order" validate:"required,min=1,dive,notblank"`
}

type StoreRequest struct {
	Store string `json:"store" validate:"required,notblank"`
}

type WhiteLabelRequest struct {
	Mantra   string `json:"mantra" validate:"required,notblank"`
	Template string `json:"template" validate:"required,oneof=modern classic minimal"`
	Title    string `json:"title" validate:"required,notblank"`
	Color    string `json:"color" validate:"required,hexcolor"`
	Logo     string `json:"logo"`
}

type PreferencesRequest struct {
	Labels  []string `json:"labels" validate:"dive,notblank"`
	Values  []string `json:"values" validate:"dive,notblank"`
	Logos   []string `json:"logos" validate:"dive,notblank"`
	Mantras []string `json:"mantras" validate:"dive,notblank"`
}
