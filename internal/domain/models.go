// internal/domain/models.go
package domain

// CompanyStatus — редакционная метка, задаётся вручную, не выводится из score
type CompanyStatus string

const (
	StatusSupport CompanyStatus = "support"
	StatusBoycott CompanyStatus = "boycott"
	StatusNeutral CompanyStatus = "neutral"
)

type Donation struct {
	Recipient string `json:"recipient"`
	Amount    string `json:"amount"`
	Year      string `json:"year"`
}

type Lobbying struct {
	Issue  string `json:"issue"`
	Amount string `json:"amount"`
	Year   string `json:"year"`
}

// PoliticalInfo — политическое досье компании. Score здесь нет:
// единственный источник — Company.Score
type PoliticalInfo struct {
	Donations  []Donation `json:"donations"`
	Lobbying   []Lobbying `json:"lobbying"`
	Statements []string   `json:"statements"`
}

type Company struct {
	ID            string        `json:"id"`
	Name          string        `json:"name"`
	CategoryID    string        `json:"categoryId"`
	Score         int           `json:"score"`
	Status        CompanyStatus `json:"status"`
	Description   string        `json:"description,omitempty"`
	Website       string        `json:"website,omitempty"`
	PoliticalInfo PoliticalInfo `json:"politicalInfo"`
}

type Category struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Icon      string    `json:"icon"`
	Companies []Company `json:"companies"`
	// Магазины, добавленные пользователем сверх каталога (id компаний)
	UserStores []string `json:"userStores,omitempty"`
}

// SpendingRecord — запись журнала трат. Только добавляется, никогда не меняется
type SpendingRecord struct {
	CompanyID   string `json:"companyId"`
	CategoryID  string `json:"categoryId"`
	Amount      int    `json:"amount"`
	Date        string `json:"date"` // YYYY-MM-DD
	CompanyName string `json:"companyName"`
}

type Trend string

const (
	TrendUp   Trend = "up"
	TrendDown Trend = "down"
)

type Notification struct {
	ID          string `json:"id"`
	CompanyID   string `json:"companyId"`
	CompanyName string `json:"companyName"`
	CategoryID  string `json:"categoryId"`
	OldScore    int    `json:"oldScore"`
	NewScore    int    `json:"newScore"`
	Date        string `json:"date"`
	Reason      string `json:"reason"`
	Trend       Trend  `json:"trend"`
	NewsURL     string `json:"newsUrl,omitempty"`
}

// Consistent проверяет инвариант: trend == up <=> newScore > oldScore
func (n Notification) Consistent() bool {
	if n.NewScore > n.OldScore {
		return n.Trend == TrendUp
	}
	return n.Trend == TrendDown
}

type WhiteLabelSettings struct {
	Mantra   string `json:"mantra"`
	Template string `json:"template"` // modern | classic | minimal
	Title    string `json:"title"`
	Color    string `json:"color"`
	Logo     string `json:"logo,omitempty"`
}

type Preferences struct {
	Labels  []string `json:"labels"`
	Values  []string `json:"values"`
	Logos   []string `json:"logos"`
	Mantras []string `json:"mantras"`
}

// User — единственный мутируемый корень персонализации.
// Живёт только в рамках сессии, при выходе удаляется
type User struct {
	ID                 string             `json:"id"`
	Name               string             `json:"name"`
	Email              string             `json:"email"`
	OverallScore       int                `json:"overallScore"`
	IsGuest            bool               `json:"isGuest"`
	CategoryScores     map[string]int     `json:"categoryScores"`
	Spending           []SpendingRecord   `json:"userSpending"`
	CategoryVisibility map[string]bool    `json:"categoryVisibility"`
	CategoryOrder      []string           `json:"categoryOrder"`
	// Магазины, добавленные пользователем: categoryId -> имена
	UserStores map[string][]string `json:"userStores,omitempty"`
	Notifications      []Notification     `json:"notifications"`
	WhiteLabel         WhiteLabelSettings `json:"whiteLabelSettings"`
	Preferences        Preferences        `json:"preferences"`
}

// VisibleCategory — видимость по умолчанию true, скрыто только явное false
func (u *User) VisibleCategory(categoryID string) bool {
	v, ok := u.CategoryVisibility[categoryID]
	if !ok {
		return true
	}
	return v
}
