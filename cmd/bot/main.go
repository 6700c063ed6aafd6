// cmd/bot/main.go
package main

import (
	"context"
	"fmt"
	"log"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/joho/godotenv"

	"democracy-score/internal/catalog"
	"democracy-score/internal/config"
	"democracy-score/internal/charts"
	"democracy-score/internal/domain"
	"democracy-score/internal/score"
	"democracy-score/internal/spending"
	"democracy-score/internal/storage/memory"
)

func main() {
	_ = godotenv.Load()

	cfg := config.MustLoad()
	if cfg.BotToken == "" {
		log.Fatal("TELEGRAM_BOT_TOKEN not set")
	}

	// Каталог общий с API: файл, если задан, иначе встроенный
	categories := catalog.Default()
	if cfg.CatalogFile != "" {
		loaded, err := catalog.Load(cfg.CatalogFile)
		if err != nil {
			log.Fatal("Failed to load catalog: ", err)
		}
		categories = loaded
	}
	store := memory.NewStorage(categories)

	bot, err := tgbotapi.NewBotAPI(cfg.BotToken)
	if err != nil {
		log.Panic(err)
	}

	log.Printf("Bot started: @%s", bot.Self.UserName)

	// Сессия на чат: первый запрос создаёт профиль из шаблона
	sessions := make(map[int64]string)

	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60
	updates := bot.GetUpdatesChan(u)

	for update := range updates {
		if update.Message == nil {
			continue
		}

		chatID := update.Message.Chat.ID
		text := strings.TrimSpace(update.Message.Text)
		log.Printf("📥 Received: %q", text)

		userID, ok := sessions[chatID]
		if !ok {
			user, err := store.CreateUser(context.Background(), update.Message.From.FirstName, "", true)
			if err != nil {
				log.Printf("create session failed: %v", err)
				continue
			}
			sessions[chatID] = user.ID
			userID = user.ID
		}

		var msgText string
		var err error

		switch {
		case text == "/start" || text == "/help":
			msgText = "🗳 *Democracy Score*\n\n" +
				"Команды:\n" +
				"`/score` — твой общий score и разбивка по категориям\n" +
				"`/top` — лучшие компании каталога\n" +
				"`/category Coffee` — компании категории по score\n" +
				"`/company Starbucks` — карточка компании с альтернативами\n" +
				"`/spending` — твои траты по категориям"

		case text == "/score":
			msgText, err = handleScore(store, userID)

		case text == "/top":
			msgText, err = handleTop(store)

		case strings.HasPrefix(text, "/category "):
			name := strings.TrimSpace(text[10:])
			msgText, err = handleCategory(store, name)

		case strings.HasPrefix(text, "/company "):
			name := strings.TrimSpace(text[9:])
			msgText, err = handleCompany(store, name)

		case text == "/spending":
			msgText, err = handleSpending(store, userID)
			if err == nil {
				sendSpendingChart(bot, store, chatID, userID)
			}

		default:
			msgText = "Неизвестная команда. Напиши /help"
		}

		if err != nil {
			msgText = "❌ Ошибка: " + err.Error()
		}

		msg := tgbotapi.NewMessage(chatID, msgText)
		msg.ParseMode = "Markdown"
		bot.Send(msg)
	}
}

func scoreEmoji(s int) string {
	switch score.Classify(s) {
	case score.TierHigh:
		return "🟢"
	case score.TierMedium:
		return "🟡"
	default:
		return "🔴"
	}
}

func handleScore(store *memory.Storage, userID string) (string, error) {
	user, err := store.GetUser(context.Background(), userID)
	if err != nil {
		return "", err
	}
	if user == nil {
		return "📭 Сессия не найдена, напиши /start", nil
	}

	categories, err := store.ListCategories(context.Background())
	if err != nil {
		return "", err
	}

	var lines []string
	lines = append(lines, fmt.Sprintf("🗳 *Твой Democracy Score: %d*", user.OverallScore))
	ordered := catalog.ResolveOrder(categories, user.CategoryOrder, catalog.MissingAppend)
	for _, cat := range ordered {
		if !user.VisibleCategory(cat.ID) {
			continue
		}
		if s, ok := user.CategoryScores[cat.ID]; ok {
			lines = append(lines, fmt.Sprintf("%s %s %s: %d", scoreEmoji(s), cat.Icon, cat.Name, s))
		}
	}
	return strings.Join(lines, "\n"), nil
}

func handleTop(store *memory.Storage) (string, error) {
	all, err := store.ListCompanies(context.Background())
	if err != nil {
		return "", err
	}

	var lines []string
	lines = append(lines, "🏆 *Лучшие компании*")
	for _, c := range score.TopCompanies(all, 10) {
		lines = append(lines, fmt.Sprintf("%s %s — %d", scoreEmoji(c.Score), c.Name, c.Score))
	}
	return strings.Join(lines, "\n"), nil
}

func handleCategory(store *memory.Storage, name string) (string, error) {
	if name == "" {
		return "❌ Укажи название категории", nil
	}

	categories, err := store.ListCategories(context.Background())
	if err != nil {
		return "", err
	}

	var target *domain.Category
	for _, cat := range categories {
		if strings.EqualFold(cat.Name, name) || strings.EqualFold(cat.ID, name) {
			found := cat
			target = &found
			break
		}
	}
	if target == nil {
		return fmt.Sprintf("📭 Категория *%s* не найдена", name), nil
	}

	var lines []string
	lines = append(lines, fmt.Sprintf("%s *%s* (средний score: %d)", target.Icon, target.Name, score.CategoryAverage(target.Companies)))
	for _, c := range score.TopCompanies(target.Companies, 0) {
		lines = append(lines, fmt.Sprintf("%s %s — %d", scoreEmoji(c.Score), c.Name, c.Score))
	}
	return strings.Join(lines, "\n"), nil
}

func handleCompany(store *memory.Storage, name string) (string, error) {
	if name == "" {
		return "❌ Укажи название компании", nil
	}

	all, err := store.ListCompanies(context.Background())
	if err != nil {
		return "", err
	}

	var target *domain.Company
	for _, c := range all {
		if strings.EqualFold(c.Name, name) || strings.EqualFold(c.ID, name) {
			found := c
			target = &found
			break
		}
	}
	if target == nil {
		return fmt.Sprintf("📭 Компания *%s* не найдена", name), nil
	}

	var lines []string
	lines = append(lines, fmt.Sprintf("%s *%s* — %d", scoreEmoji(target.Score), target.Name, target.Score))
	lines = append(lines, score.Label(target.Score))
	if target.Description != "" {
		lines = append(lines, target.Description)
	}

	if score.NeedsAlternatives(target.Score) {
		cat, err := store.FindCategory(context.Background(), target.CategoryID)
		if err != nil {
			return "", err
		}
		if cat != nil {
			alts := score.Alternatives(*target, cat.Companies, score.DefaultAlternatives)
			if len(alts) > 0 {
				lines = append(lines, "\n💡 *Альтернативы:*")
				for _, a := range alts {
					lines = append(lines, fmt.Sprintf("%s %s — %d", scoreEmoji(a.Score), a.Name, a.Score))
				}
			}
		}
	}
	return strings.Join(lines, "\n"), nil
}

func handleSpending(store *memory.Storage, userID string) (string, error) {
	user, err := store.GetUser(context.Background(), userID)
	if err != nil {
		return "", err
	}
	if user == nil {
		return "📭 Сессия не найдена, напиши /start", nil
	}
	if len(user.Spending) == 0 {
		return "📭 Журнал трат пуст", nil
	}

	var lines []string
	lines = append(lines, fmt.Sprintf("💸 *Траты: $%d всего, %d компаний*", spending.Total(user.Spending), spending.UniqueCompanies(user.Spending)))
	for _, t := range spending.TopCategories(user.Spending, 3) {
		lines = append(lines, fmt.Sprintf("- %s: $%d (%d магазинов)", t.CategoryID, t.Total, t.StoreCount))
	}
	return strings.Join(lines, "\n"), nil
}

func sendSpendingChart(bot *tgbotapi.BotAPI, store *memory.Storage, chatID int64, userID string) {
	user, err := store.GetUser(context.Background(), userID)
	if err != nil || user == nil || len(user.Spending) == 0 {
		return
	}

	categories, err := store.ListCategories(context.Background())
	if err != nil {
		return
	}
	names := make(map[string]string, len(categories))
	for _, cat := range categories {
		names[cat.ID] = cat.Name
	}

	png, err := charts.SpendingByCategory(spending.TopCategories(user.Spending, 0), names)
	if err != nil {
		log.Printf("chart render failed: %v", err)
		return
	}

	photo := tgbotapi.NewPhoto(chatID, tgbotapi.FileBytes{Name: "spending.png", Bytes: png})
	photo.Caption = "Траты по категориям"
	bot.Send(photo)
}
