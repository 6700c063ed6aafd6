// internal/handler/democracy_test.go
package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"democracy-score/internal/catalog"
	"democracy-score/internal/storage/memory"
)

// тестовый роутер с подменой auth: user_id кладётся напрямую,
// без JWT
func newTestRouter(t *testing.T) (*gin.Engine, *memory.Storage, string) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	store := memory.NewStorage(catalog.Default())
	user, err := store.CreateUser(context.Background(), "Alex", "alex@example.com", false)
	require.NoError(t, err)

	h := NewDemocracyHandler(store)
	router := gin.New()
	router.Use(func(c *gin.Context) {
		c.Set("user_id", user.ID)
		c.Next()
	})

	router.GET("/api/v1/categories", h.ListCategories)
	router.PUT("/api/v1/categories/order", h.SetOrder)
	router.GET("/api/v1/categories/:id", h.GetCategory)
	router.POST("/api/v1/categories/:id/visibility", h.ToggleVisibility)
	router.POST("/api/v1/categories/:id/stores", h.AddStore)
	router.DELETE("/api/v1/categories/:id/stores", h.RemoveStore)
	router.GET("/api/v1/companies/top", h.TopCompanies)
	router.GET("/api/v1/companies/:id", h.GetCompany)
	router.GET("/api/v1/profile", h.GetProfile)
	router.POST("/api/v1/profile/spending", h.AddSpending)
	router.GET("/api/v1/profile/spending/top", h.TopSpending)
	router.GET("/api/v1/notifications", h.ListNotifications)
	router.PUT("/api/v1/white-label", h.UpdateWhiteLabel)
	router.PUT("/api/v1/preferences", h.UpdatePreferences)

	return router, store, user.ID
}

func doJSON(router *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestListCategoriesOrderedAndPartitioned(t *testing.T) {
	router, _, _ := newTestRouter(t)

	w := doJSON(router, http.MethodGet, "/api/v1/categories", "")
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Categories []struct {
			ID           string `json:"id"`
			AverageScore int    `json:"averageScore"`
		} `json:"categories"`
		Hidden []struct {
			ID string `json:"id"`
		} `json:"hidden"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	// порядок шаблонного профиля: grocery первым, streaming последним
	require.Len(t, resp.Categories, 11)
	assert.Equal(t, "grocery", resp.Categories[0].ID)
	assert.Equal(t, "streaming", resp.Categories[10].ID)
	assert.Equal(t, 55, resp.Categories[0].AverageScore)
	assert.Empty(t, resp.Hidden)
}

func TestToggleVisibilityMovesCategoryToHidden(t *testing.T) {
	router, _, _ := newTestRouter(t)

	w := doJSON(router, http.MethodPost, "/api/v1/categories/gas/visibility", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"visible":false`)

	w = doJSON(router, http.MethodGet, "/api/v1/categories", "")
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Categories []struct {
			ID string `json:"id"`
		} `json:"categories"`
		Hidden []struct {
			ID string `json:"id"`
		} `json:"hidden"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Hidden, 1)
	assert.Equal(t, "gas", resp.Hidden[0].ID)
}

func TestToggleVisibilityUnknownCategory(t *testing.T) {
	router, _, _ := newTestRouter(t)
	w := doJSON(router, http.MethodPost, "/api/v1/categories/nope/visibility", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestSetOrderAppliedToListing(t *testing.T) {
	router, _, _ := newTestRouter(t)

	w := doJSON(router, http.MethodPut, "/api/v1/categories/order", `{"order":["streaming","gas"]}`)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(router, http.MethodGet, "/api/v1/categories", "")
	var resp struct {
		Categories []struct {
			ID string `json:"id"`
		} `json:"categories"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Categories, 11)
	assert.Equal(t, "streaming", resp.Categories[0].ID)
	assert.Equal(t, "gas", resp.Categories[1].ID)
	// остальные дописаны в порядке каталога
	assert.Equal(t, "grocery", resp.Categories[2].ID)
}

func TestSetOrderRejectsEmptyList(t *testing.T) {
	router, _, _ := newTestRouter(t)
	w := doJSON(router, http.MethodPut, "/api/v1/categories/order", `{"order":[]}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetCategorySortsCompaniesByScore(t *testing.T) {
	router, _, _ := newTestRouter(t)

	w := doJSON(router, http.MethodGet, "/api/v1/categories/grocery", "")
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		AverageScore int `json:"averageScore"`
		Companies    []struct {
			ID    string `json:"id"`
			Score int    `json:"score"`
		} `json:"companies"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 55, resp.AverageScore)
	require.Len(t, resp.Companies, 4)
	assert.Equal(t, "whole-foods", resp.Companies[0].ID)
	assert.Equal(t, "walmart", resp.Companies[3].ID)
}

func TestGetCompanyLowScoreSuggestsAlternatives(t *testing.T) {
	router, _, _ := newTestRouter(t)

	w := doJSON(router, http.MethodGet, "/api/v1/companies/walmart", "")
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		ScoreTier    string `json:"scoreTier"`
		ScoreLabel   string `json:"scoreLabel"`
		Alternatives []struct {
			ID string `json:"id"`
		} `json:"alternatives"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "low", resp.ScoreTier)
	require.Len(t, resp.Alternatives, 3)
	assert.Equal(t, "whole-foods", resp.Alternatives[0].ID)
	assert.Equal(t, "trader-joes", resp.Alternatives[1].ID)
	assert.Equal(t, "kroger", resp.Alternatives[2].ID)
}

func TestGetCompanyHighScoreNoAlternatives(t *testing.T) {
	router, _, _ := newTestRouter(t)

	w := doJSON(router, http.MethodGet, "/api/v1/companies/patagonia", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.NotContains(t, w.Body.String(), "alternatives")
	assert.Contains(t, w.Body.String(), `"scoreTier":"high"`)
}

func TestGetCompanyNotFound(t *testing.T) {
	router, _, _ := newTestRouter(t)
	w := doJSON(router, http.MethodGet, "/api/v1/companies/nope", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestTopCompaniesLimit(t *testing.T) {
	router, _, _ := newTestRouter(t)

	w := doJSON(router, http.MethodGet, "/api/v1/companies/top?limit=2", "")
	require.Equal(t, http.StatusOK, w.Code)

	var resp []struct {
		ID    string `json:"id"`
		Score int    `json:"score"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp, 2)
	assert.Equal(t, "patagonia", resp[0].ID)
	assert.Equal(t, "aspiration", resp[1].ID)
}

func TestProfileTotals(t *testing.T) {
	router, _, _ := newTestRouter(t)

	w := doJSON(router, http.MethodGet, "/api/v1/profile", "")
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		TotalSpending     int `json:"totalSpending"`
		UniqueCompanies   int `json:"uniqueCompanies"`
		CategoriesEngaged int `json:"categoriesEngaged"`
		SpendingBreakdown []struct {
			CategoryID   string `json:"categoryId"`
			TotalAmount  int    `json:"totalAmount"`
			TopCompanies []struct {
				CompanyID string `json:"companyId"`
			} `json:"topCompanies"`
		} `json:"spendingBreakdown"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 11675, resp.TotalSpending)
	assert.Equal(t, 10, resp.UniqueCompanies)
	assert.Equal(t, 6, resp.CategoriesEngaged)

	require.NotEmpty(t, resp.SpendingBreakdown)
	first := resp.SpendingBreakdown[0]
	assert.Equal(t, "grocery", first.CategoryID)
	assert.Equal(t, 5200, first.TotalAmount)
	require.Len(t, first.TopCompanies, 3)
	assert.Equal(t, "whole-foods", first.TopCompanies[0].CompanyID)
}

func TestTopSpendingDefaultThree(t *testing.T) {
	router, _, _ := newTestRouter(t)

	w := doJSON(router, http.MethodGet, "/api/v1/profile/spending/top", "")
	require.Equal(t, http.StatusOK, w.Code)

	var resp []struct {
		CategoryID string `json:"categoryId"`
		Total      int    `json:"totalAmount"`
		StoreCount int    `json:"storeCount"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp, 3)
	assert.Equal(t, "grocery", resp[0].CategoryID)
	assert.Equal(t, 5200, resp[0].Total)
	assert.Equal(t, 3, resp[0].StoreCount)
	assert.Equal(t, "banking", resp[1].CategoryID)
	// online-retail ($450) обгоняет coffee ($425)
	assert.Equal(t, "online-retail", resp[2].CategoryID)
	assert.Equal(t, 450, resp[2].Total)
}

func TestAddSpendingValidation(t *testing.T) {
	router, _, _ := newTestRouter(t)

	// пропущена дата
	w := doJSON(router, http.MethodPost, "/api/v1/profile/spending", `{"companyId":"etsy","amount":100}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// кривой формат даты
	w = doJSON(router, http.MethodPost, "/api/v1/profile/spending", `{"companyId":"etsy","amount":100,"date":"20-10-2025"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// неизвестная компания
	w = doJSON(router, http.MethodPost, "/api/v1/profile/spending", `{"companyId":"nope","amount":100,"date":"2025-10-20"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAddSpendingFillsFromCatalog(t *testing.T) {
	router, store, userID := newTestRouter(t)

	w := doJSON(router, http.MethodPost, "/api/v1/profile/spending", `{"companyId":"etsy","amount":100,"date":"2025-10-20"}`)
	require.Equal(t, http.StatusOK, w.Code)

	user, err := store.GetUser(context.Background(), userID)
	require.NoError(t, err)
	last := user.Spending[len(user.Spending)-1]
	assert.Equal(t, "online-retail", last.CategoryID)
	assert.Equal(t, "Etsy", last.CompanyName)
	assert.Equal(t, 100, last.Amount)
}

func TestUserStoresEndpoints(t *testing.T) {
	router, store, userID := newTestRouter(t)

	w := doJSON(router, http.MethodPost, "/api/v1/categories/grocery/stores", `{"store":"Corner Market"}`)
	require.Equal(t, http.StatusOK, w.Code)

	user, err := store.GetUser(context.Background(), userID)
	require.NoError(t, err)
	assert.Equal(t, []string{"Corner Market"}, user.UserStores["grocery"])

	w = doJSON(router, http.MethodDelete, "/api/v1/categories/grocery/stores?store=Corner+Market", "")
	require.Equal(t, http.StatusOK, w.Code)

	user, err = store.GetUser(context.Background(), userID)
	require.NoError(t, err)
	assert.Empty(t, user.UserStores["grocery"])
}

func TestNotificationsListed(t *testing.T) {
	router, _, _ := newTestRouter(t)

	w := doJSON(router, http.MethodGet, "/api/v1/notifications", "")
	require.Equal(t, http.StatusOK, w.Code)

	var resp []struct {
		ID    string `json:"id"`
		Trend string `json:"trend"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp, 3)
	assert.Equal(t, "notif-1", resp[0].ID)
	assert.Equal(t, "down", resp[0].Trend)
}

func TestWhiteLabelValidation(t *testing.T) {
	router, store, userID := newTestRouter(t)

	// неизвестный шаблон
	w := doJSON(router, http.MethodPut, "/api/v1/white-label",
		`{"mantra":"m","template":"fancy","title":"t","color":"#fff"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// не hex-цвет
	w = doJSON(router, http.MethodPut, "/api/v1/white-label",
		`{"mantra":"m","template":"classic","title":"t","color":"teal"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(router, http.MethodPut, "/api/v1/white-label",
		`{"mantra":"Buy better.","template":"classic","title":"My Shop","color":"#ff0000"}`)
	require.Equal(t, http.StatusOK, w.Code)

	user, err := store.GetUser(context.Background(), userID)
	require.NoError(t, err)
	assert.Equal(t, "classic", user.WhiteLabel.Template)
	assert.Equal(t, "#ff0000", user.WhiteLabel.Color)
}

func TestUpdatePreferences(t *testing.T) {
	router, store, userID := newTestRouter(t)

	w := doJSON(router, http.MethodPut, "/api/v1/preferences",
		`{"labels":["Local"],"values":["Environmental"],"logos":[],"mantras":["Shop consciously"]}`)
	require.Equal(t, http.StatusOK, w.Code)

	user, err := store.GetUser(context.Background(), userID)
	require.NoError(t, err)
	assert.Equal(t, []string{"Local"}, user.Preferences.Labels)
}
