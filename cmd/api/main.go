// cmd/api/main.go
package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"democracy-score/internal/auth"
	"democracy-score/internal/catalog"
	"democracy-score/internal/config"
	"democracy-score/internal/domain"
	"democracy-score/internal/handler"
	"democracy-score/internal/middleware"
	"democracy-score/internal/storage/memory"
)

func main() {
	_ = godotenv.Load()

	// Настройка логгера
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	cfg := config.MustLoad()

	// Каталог: из YAML-файла, если задан, иначе встроенный
	var categories []domain.Category
	if cfg.CatalogFile != "" {
		loaded, err := catalog.Load(cfg.CatalogFile)
		if err != nil {
			slog.Error("Не удалось загрузить каталог", "error", err, "file", cfg.CatalogFile)
			os.Exit(1)
		}
		categories = loaded
		slog.Info("📚 Каталог загружен из файла", "file", cfg.CatalogFile, "categories", len(categories))
	} else {
		categories = catalog.Default()
		slog.Info("📚 Используется встроенный каталог", "categories", len(categories))
	}

	// Санити-проверка уведомлений: trend обязан совпадать со сдвигом score
	for _, n := range catalog.DefaultNotifications() {
		if !n.Consistent() {
			slog.Error("Противоречивое уведомление", "id", n.ID, "old", n.OldScore, "new", n.NewScore, "trend", n.Trend)
			os.Exit(1)
		}
	}

	store := memory.NewStorage(categories)

	// JWT
	tokenService := auth.NewTokenService(cfg)

	// Gin
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Logger(), gin.Recovery())

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Логин: имя/почта или гостевой вход. Каждый логин — новая
	// сессия из шаблонного профиля
	router.POST("/api/v1/login", func(c *gin.Context) {
		var req struct {
			Name  string `json:"name"`
			Email string `json:"email"`
			Guest bool   `json:"guest"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON"})
			return
		}
		if !req.Guest && (req.Name == "" || req.Email == "") {
			c.JSON(http.StatusBadRequest, gin.H{"error": "name and email required (or guest: true)"})
			return
		}
		if req.Guest {
			req.Name = "Guest"
			req.Email = ""
		}

		user, err := store.CreateUser(context.Background(), req.Name, req.Email, req.Guest)
		if err != nil {
			slog.Error("CreateUser failed", "error", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal error"})
			return
		}
		token, err := tokenService.GenerateToken(user.ID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "token generation failed"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"token": token, "user": user})
	})

	authMiddleware := middleware.NewAuthMiddleware(tokenService)
	h := handler.NewDemocracyHandler(store)

	v1 := router.Group("/api/v1")
	v1.Use(authMiddleware.RequireAuth())
	{
		// Выход: сессия удаляется вместе со всей персонализацией
		v1.POST("/logout", func(c *gin.Context) {
			userIDVal, _ := c.Get("user_id")
			id, _ := userIDVal.(string)
			if err := store.DeleteUser(context.Background(), id); err != nil {
				c.JSON(http.StatusOK, gin.H{"status": "already logged out"})
				return
			}
			c.JSON(http.StatusOK, gin.H{"status": "ok"})
		})

		v1.GET("/categories", h.ListCategories)
		v1.PUT("/categories/order", h.SetOrder)
		v1.GET("/categories/:id", h.GetCategory)
		v1.POST("/categories/:id/visibility", h.ToggleVisibility)
		v1.POST("/categories/:id/stores", h.AddStore)
		v1.DELETE("/categories/:id/stores", h.RemoveStore)

		v1.GET("/companies/top", h.TopCompanies)
		v1.GET("/companies/:id", h.GetCompany)

		v1.GET("/profile", h.GetProfile)
		v1.POST("/profile/spending", h.AddSpending)
		v1.GET("/profile/spending/top", h.TopSpending)
		v1.GET("/profile/spending/chart", h.SpendingChart)

		v1.GET("/notifications", h.ListNotifications)

		v1.PUT("/white-label", h.UpdateWhiteLabel)
		v1.PUT("/preferences", h.UpdatePreferences)
	}

	// Запуск сервера
	slog.Info("🚀 Сервер запущен", "addr", cfg.ServerPort)
	if err := router.Run(cfg.ServerPort); err != nil {
		slog.Error("Сервер завершил работу с ошибкой", "error", err)
	}
}
