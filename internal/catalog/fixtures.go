// internal/catalog/fixtures.go
package catalog

import "democracy-score/internal/domain"

// Default — статический каталог категорий и компаний.
// Это исходные данные приложения; пользовательские правки
// (userStores, порядок, видимость) живут отдельно
func Default() []domain.Category {
	return []domain.Category{
		{
			ID:   "grocery",
			Name: "Grocery Shopping",
			Icon: "🛒",
			Companies: []domain.Company{
				{
					ID: "whole-foods", Name: "Whole Foods Market", CategoryID: "grocery",
					Score: 72, Status: domain.StatusSupport,
					Description: "Organic and natural foods supermarket chain",
					PoliticalInfo: domain.PoliticalInfo{
						Donations: []domain.Donation{
							{Recipient: "Environmental Defense Fund", Amount: "$500,000", Year: "2024"},
							{Recipient: "Worker Rights Coalition", Amount: "$250,000", Year: "2024"},
						},
						Lobbying: []domain.Lobbying{
							{Issue: "Organic farming standards", Amount: "$150,000", Year: "2024"},
						},
						Statements: []string{"Committed to carbon neutrality by 2030", "Supports fair labor practices"},
					},
				},
				{
					ID: "walmart", Name: "Walmart", CategoryID: "grocery",
					Score: 35, Status: domain.StatusBoycott,
					Description: "Multinational retail corporation",
					PoliticalInfo: domain.PoliticalInfo{
						Donations: []domain.Donation{
							{Recipient: "Anti-union PACs", Amount: "$2,500,000", Year: "2024"},
							{Recipient: "Conservative political groups", Amount: "$1,800,000", Year: "2024"},
						},
						Lobbying: []domain.Lobbying{
							{Issue: "Against minimum wage increase", Amount: "$3,200,000", Year: "2024"},
							{Issue: "Environmental regulation rollbacks", Amount: "$1,500,000", Year: "2024"},
						},
						Statements: []string{"Opposes union organizing efforts", "Lobbied against paid sick leave"},
					},
				},
				{
					ID: "trader-joes", Name: "Trader Joe's", CategoryID: "grocery",
					Score: 68, Status: domain.StatusSupport,
					Description: "Specialty grocery store chain",
					PoliticalInfo: domain.PoliticalInfo{
						Donations: []domain.Donation{
							{Recipient: "Local food banks", Amount: "$400,000", Year: "2024"},
						},
						Statements: []string{"Supports sustainable sourcing", "Committed to employee welfare"},
					},
				},
				{
					ID: "kroger", Name: "Kroger", CategoryID: "grocery",
					Score: 45, Status: domain.StatusNeutral,
					Description: "American retail company",
					PoliticalInfo: domain.PoliticalInfo{
						Donations: []domain.Donation{
							{Recipient: "Mixed political contributions", Amount: "$1,200,000", Year: "2024"},
						},
						Lobbying: []domain.Lobbying{
							{Issue: "Food safety regulations", Amount: "$800,000", Year: "2024"},
						},
						Statements: []string{"Mixed record on labor relations"},
					},
				},
			},
		},
		{
			ID:   "streaming",
			Name: "Streaming Services",
			Icon: "📺",
			Companies: []domain.Company{
				{
					ID: "netflix", Name: "Netflix", CategoryID: "streaming",
					Score: 58, Status: domain.StatusNeutral,
					Description: "Streaming entertainment service",
					PoliticalInfo: domain.PoliticalInfo{
						Donations: []domain.Donation{
							{Recipient: "Democratic campaigns", Amount: "$800,000", Year: "2024"},
							{Recipient: "LGBTQ+ advocacy groups", Amount: "$500,000", Year: "2024"},
						},
						Lobbying: []domain.Lobbying{
							{Issue: "Net neutrality", Amount: "$600,000", Year: "2024"},
						},
						Statements: []string{"Supports diversity and inclusion", "Advocates for net neutrality"},
					},
				},
				{
					ID: "disney-plus", Name: "Disney+", CategoryID: "streaming",
					Score: 42, Status: domain.StatusNeutral,
					Description: "Disney streaming platform",
					PoliticalInfo: domain.PoliticalInfo{
						Donations: []domain.Donation{
							{Recipient: "Both political parties", Amount: "$2,100,000", Year: "2024"},
						},
						Lobbying: []domain.Lobbying{
							{Issue: "Copyright extension", Amount: "$1,800,000", Year: "2024"},
						},
						Statements: []string{"Mixed political stance", "Focus on family content"},
					},
				},
				{
					ID: "hulu", Name: "Hulu", CategoryID: "streaming",
					Score: 55, Status: domain.StatusNeutral,
					Description: "Streaming service with live TV",
					PoliticalInfo: domain.PoliticalInfo{
						Donations: []domain.Donation{
							{Recipient: "Media advocacy groups", Amount: "$300,000", Year: "2024"},
						},
						Statements: []string{"Supports content creator rights"},
					},
				},
			},
		},
		{
			ID:   "banking",
			Name: "Banking",
			Icon: "🏦",
			Companies: []domain.Company{
				{
					ID: "chase", Name: "JPMorgan Chase", CategoryID: "banking",
					Score: 28, Status: domain.StatusBoycott,
					Description: "Major American banking institution",
					PoliticalInfo: domain.PoliticalInfo{
						Donations: []domain.Donation{
							{Recipient: "Republican PACs", Amount: "$5,200,000", Year: "2024"},
							{Recipient: "Democratic PACs", Amount: "$3,800,000", Year: "2024"},
						},
						Lobbying: []domain.Lobbying{
							{Issue: "Financial deregulation", Amount: "$8,500,000", Year: "2024"},
							{Issue: "Against consumer protections", Amount: "$3,200,000", Year: "2024"},
						},
						Statements: []string{"Lobbied against climate disclosure requirements", "Opposes financial transaction tax"},
					},
				},
				{
					ID: "aspiration", Name: "Aspiration", CategoryID: "banking",
					Score: 85, Status: domain.StatusSupport,
					Description: "Sustainable and ethical banking",
					PoliticalInfo: domain.PoliticalInfo{
						Donations: []domain.Donation{
							{Recipient: "Environmental groups", Amount: "$1,000,000", Year: "2024"},
							{Recipient: "Social justice organizations", Amount: "$750,000", Year: "2024"},
						},
						Lobbying: []domain.Lobbying{
							{Issue: "Climate action advocacy", Amount: "$400,000", Year: "2024"},
						},
						Statements: []string{"Divests from fossil fuels", "Plants trees with every purchase", "B-Corp certified"},
					},
				},
				{
					ID: "bank-of-america", Name: "Bank of America", CategoryID: "banking",
					Score: 32, Status: domain.StatusBoycott,
					Description: "Major American banking corporation",
					PoliticalInfo: domain.PoliticalInfo{
						Donations: []domain.Donation{
							{Recipient: "Political PACs (mixed)", Amount: "$6,500,000", Year: "2024"},
						},
						Lobbying: []domain.Lobbying{
							{Issue: "Financial regulation reform", Amount: "$7,200,000", Year: "2024"},
						},
						Statements: []string{"Significant fossil fuel financing", "Mixed labor relations record"},
					},
				},
			},
		},
		{
			ID:   "apparel",
			Name: "Clothes Shopping",
			Icon: "👕",
			Companies: []domain.Company{
				{
					ID: "patagonia", Name: "Patagonia", CategoryID: "apparel",
					Score: 92, Status: domain.StatusSupport,
					Description: "Outdoor clothing and gear company",
					PoliticalInfo: domain.PoliticalInfo{
						Donations: []domain.Donation{
							{Recipient: "Environmental nonprofits", Amount: "$10,000,000", Year: "2024"},
							{Recipient: "Grassroots activism", Amount: "$5,000,000", Year: "2024"},
						},
						Lobbying: []domain.Lobbying{
							{Issue: "Public lands protection", Amount: "$800,000", Year: "2024"},
						},
						Statements: []string{"1% for the Planet member", "Fair Trade Certified", "B-Corp certified", "Donates 100% of profits to climate action"},
					},
				},
				{
					ID: "nike", Name: "Nike", CategoryID: "apparel",
					Score: 48, Status: domain.StatusNeutral,
					Description: "Athletic footwear and apparel",
					PoliticalInfo: domain.PoliticalInfo{
						Donations: []domain.Donation{
							{Recipient: "Social justice initiatives", Amount: "$1,200,000", Year: "2024"},
						},
						Lobbying: []domain.Lobbying{
							{Issue: "Trade agreements", Amount: "$2,100,000", Year: "2024"},
						},
						Statements: []string{"Improved labor practices", "History of sweatshop controversies"},
					},
				},
				{
					ID: "gap", Name: "Gap Inc.", CategoryID: "apparel",
					Score: 52, Status: domain.StatusNeutral,
					Description: "American clothing and accessories retailer",
					PoliticalInfo: domain.PoliticalInfo{
						Donations: []domain.Donation{
							{Recipient: "Various political groups", Amount: "$800,000", Year: "2024"},
						},
						Statements: []string{"Committed to sustainable sourcing", "Working on supply chain transparency"},
					},
				},
			},
		},
		{
			ID:   "online-retail",
			Name: "Online Retailers",
			Icon: "📦",
			Companies: []domain.Company{
				{
					ID: "amazon", Name: "Amazon", CategoryID: "online-retail",
					Score: 22, Status: domain.StatusBoycott,
					Description: "E-commerce and cloud computing giant",
					PoliticalInfo: domain.PoliticalInfo{
						Donations: []domain.Donation{
							{Recipient: "Political PACs (both parties)", Amount: "$4,200,000", Year: "2024"},
						},
						Lobbying: []domain.Lobbying{
							{Issue: "Anti-union campaigns", Amount: "$14,200,000", Year: "2024"},
							{Issue: "Against corporate tax increases", Amount: "$8,500,000", Year: "2024"},
							{Issue: "Labor law reform opposition", Amount: "$6,300,000", Year: "2024"},
						},
						Statements: []string{"Aggressive anti-union stance", "Controversial workplace conditions", "Minimal effective tax rate"},
					},
				},
				{
					ID: "etsy", Name: "Etsy", CategoryID: "online-retail",
					Score: 76, Status: domain.StatusSupport,
					Description: "E-commerce focused on handmade and vintage items",
					PoliticalInfo: domain.PoliticalInfo{
						Donations: []domain.Donation{
							{Recipient: "Small business advocacy", Amount: "$500,000", Year: "2024"},
							{Recipient: "Progressive causes", Amount: "$300,000", Year: "2024"},
						},
						Lobbying: []domain.Lobbying{
							{Issue: "Small business protection", Amount: "$200,000", Year: "2024"},
						},
						Statements: []string{"B-Corp certified", "Supports independent creators", "Carbon neutral shipping"},
					},
				},
				{
					ID: "ebay", Name: "eBay", CategoryID: "online-retail",
					Score: 54, Status: domain.StatusNeutral,
					Description: "Online marketplace and auction site",
					PoliticalInfo: domain.PoliticalInfo{
						Donations: []domain.Donation{
							{Recipient: "Mixed political contributions", Amount: "$1,500,000", Year: "2024"},
						},
						Lobbying: []domain.Lobbying{
							{Issue: "Internet commerce regulations", Amount: "$900,000", Year: "2024"},
						},
						Statements: []string{"Supports small sellers", "Mixed environmental record"},
					},
				},
			},
		},
		{
			ID:   "restaurants",
			Name: "Restaurants",
			Icon: "🍔",
			Companies: []domain.Company{
				{
					ID: "chipotle", Name: "Chipotle", CategoryID: "restaurants",
					Score: 64, Status: domain.StatusSupport,
					Description: "Mexican-inspired fast casual restaurant",
					PoliticalInfo: domain.PoliticalInfo{
						Donations: []domain.Donation{
							{Recipient: "Sustainable agriculture groups", Amount: "$600,000", Year: "2024"},
						},
						Statements: []string{"Food with integrity mission", "Supports local farmers", "No antibiotics in meat"},
					},
				},
				{
					ID: "chick-fil-a", Name: "Chick-fil-A", CategoryID: "restaurants",
					Score: 18, Status: domain.StatusBoycott,
					Description: "Fast food chicken restaurant chain",
					PoliticalInfo: domain.PoliticalInfo{
						Donations: []domain.Donation{
							{Recipient: "Conservative Christian groups", Amount: "$1,800,000", Year: "2024"},
							{Recipient: "Anti-LGBTQ+ organizations", Amount: "$900,000", Year: "2023"},
						},
						Lobbying: []domain.Lobbying{
							{Issue: "Religious liberty laws", Amount: "$500,000", Year: "2024"},
						},
						Statements: []string{"History of donations to anti-LGBTQ+ groups", "Conservative political stance"},
					},
				},
				{
					ID: "panera", Name: "Panera Bread", CategoryID: "restaurants",
					Score: 61, Status: domain.StatusSupport,
					Description: "Bakery-café chain",
					PoliticalInfo: domain.PoliticalInfo{
						Donations: []domain.Donation{
							{Recipient: "Food security initiatives", Amount: "$400,000", Year: "2024"},
						},
						Statements: []string{"Clean food commitment", "No artificial additives", "Food donation program"},
					},
				},
			},
		},
		{
			ID:   "coffee",
			Name: "Coffee Shops",
			Icon: "☕",
			Companies: []domain.Company{
				{
					ID: "starbucks", Name: "Starbucks", CategoryID: "coffee",
					Score: 44, Status: domain.StatusNeutral,
					Description: "Global coffeehouse chain",
					PoliticalInfo: domain.PoliticalInfo{
						Donations: []domain.Donation{
							{Recipient: "Mixed political contributions", Amount: "$1,200,000", Year: "2024"},
						},
						Lobbying: []domain.Lobbying{
							{Issue: "Anti-union activities", Amount: "$2,500,000", Year: "2024"},
						},
						Statements: []string{"Aggressive anti-union stance", "Diversity initiatives", "Mixed labor practices"},
					},
				},
				{
					ID: "blue-bottle", Name: "Blue Bottle Coffee", CategoryID: "coffee",
					Score: 71, Status: domain.StatusSupport,
					Description: "Specialty coffee roaster",
					PoliticalInfo: domain.PoliticalInfo{
						Donations: []domain.Donation{
							{Recipient: "Sustainable farming initiatives", Amount: "$300,000", Year: "2024"},
						},
						Statements: []string{"Direct trade with farmers", "Organic certification", "B-Corp certified"},
					},
				},
				{
					ID: "dunkin", Name: "Dunkin", CategoryID: "coffee",
					Score: 38, Status: domain.StatusNeutral,
					Description: "Coffee and donut chain",
					PoliticalInfo: domain.PoliticalInfo{
						Donations: []domain.Donation{
							{Recipient: "Various PACs", Amount: "$800,000", Year: "2024"},
						},
						Statements: []string{"Franchise model with variable labor practices"},
					},
				},
			},
		},
		{
			ID:   "hardware",
			Name: "Hardware Stores",
			Icon: "🔨",
			Companies: []domain.Company{
				{
					ID: "home-depot", Name: "Home Depot", CategoryID: "hardware",
					Score: 36, Status: domain.StatusNeutral,
					Description: "Home improvement retailer",
					PoliticalInfo: domain.PoliticalInfo{
						Donations: []domain.Donation{
							{Recipient: "Republican PACs", Amount: "$3,200,000", Year: "2024"},
						},
						Lobbying: []domain.Lobbying{
							{Issue: "Labor regulations", Amount: "$1,800,000", Year: "2024"},
						},
						Statements: []string{"History of conservative donations", "Mixed environmental record"},
					},
				},
				{
					ID: "lowes", Name: "Lowe's", CategoryID: "hardware",
					Score: 42, Status: domain.StatusNeutral,
					Description: "Home improvement chain",
					PoliticalInfo: domain.PoliticalInfo{
						Donations: []domain.Donation{
							{Recipient: "Bipartisan contributions", Amount: "$2,100,000", Year: "2024"},
						},
						Lobbying: []domain.Lobbying{
							{Issue: "Building codes and regulations", Amount: "$1,200,000", Year: "2024"},
						},
						Statements: []string{"Veteran hiring initiatives", "Energy efficiency programs"},
					},
				},
				{
					ID: "ace-hardware", Name: "Ace Hardware", CategoryID: "hardware",
					Score: 68, Status: domain.StatusSupport,
					Description: "Cooperative of locally owned hardware stores",
					PoliticalInfo: domain.PoliticalInfo{
						Donations: []domain.Donation{
							{Recipient: "Small business advocacy", Amount: "$400,000", Year: "2024"},
						},
						Statements: []string{"Locally owned cooperative model", "Community focused", "Supports independent retailers"},
					},
				},
			},
		},
		{
			ID:   "gas",
			Name: "Gas Stations",
			Icon: "⛽",
			Companies: []domain.Company{
				{
					ID: "exxon", Name: "ExxonMobil", CategoryID: "gas",
					Score: 15, Status: domain.StatusBoycott,
					Description: "Major oil and gas corporation",
					PoliticalInfo: domain.PoliticalInfo{
						Donations: []domain.Donation{
							{Recipient: "Climate denial organizations", Amount: "$5,000,000", Year: "2024"},
							{Recipient: "Republican PACs", Amount: "$8,200,000", Year: "2024"},
						},
						Lobbying: []domain.Lobbying{
							{Issue: "Against climate legislation", Amount: "$12,500,000", Year: "2024"},
							{Issue: "Fossil fuel subsidies", Amount: "$9,300,000", Year: "2024"},
						},
						Statements: []string{"History of climate denial", "Significant carbon emissions", "Lobbies against renewable energy"},
					},
				},
				{
					ID: "shell", Name: "Shell", CategoryID: "gas",
					Score: 25, Status: domain.StatusBoycott,
					Description: "Global energy company",
					PoliticalInfo: domain.PoliticalInfo{
						Donations: []domain.Donation{
							{Recipient: "Various political groups", Amount: "$6,500,000", Year: "2024"},
						},
						Lobbying: []domain.Lobbying{
							{Issue: "Energy policy", Amount: "$10,200,000", Year: "2024"},
						},
						Statements: []string{"Renewable energy investments (minimal)", "Continued fossil fuel expansion"},
					},
				},
				{
					ID: "costco-gas", Name: "Costco Gas", CategoryID: "gas",
					Score: 58, Status: domain.StatusNeutral,
					Description: "Costco warehouse gas stations",
					PoliticalInfo: domain.PoliticalInfo{
						Donations: []domain.Donation{
							{Recipient: "Employee advocacy groups", Amount: "$800,000", Year: "2024"},
						},
						Statements: []string{"Fair wages for employees", "Member-focused pricing"},
					},
				},
			},
		},
		{
			ID:   "telecom",
			Name: "Phone/Internet",
			Icon: "📱",
			Companies: []domain.Company{
				{
					ID: "verizon", Name: "Verizon", CategoryID: "telecom",
					Score: 34, Status: domain.StatusNeutral,
					Description: "Telecommunications company",
					PoliticalInfo: domain.PoliticalInfo{
						Donations: []domain.Donation{
							{Recipient: "Political PACs (mixed)", Amount: "$5,200,000", Year: "2024"},
						},
						Lobbying: []domain.Lobbying{
							{Issue: "Against net neutrality", Amount: "$6,800,000", Year: "2024"},
							{Issue: "Telecommunications regulation", Amount: "$4,200,000", Year: "2024"},
						},
						Statements: []string{"Opposes net neutrality", "Data privacy concerns"},
					},
				},
				{
					ID: "att", Name: "AT&T", CategoryID: "telecom",
					Score: 29, Status: domain.StatusBoycott,
					Description: "Telecommunications corporation",
					PoliticalInfo: domain.PoliticalInfo{
						Donations: []domain.Donation{
							{Recipient: "Republican PACs", Amount: "$4,800,000", Year: "2024"},
							{Recipient: "Democratic PACs", Amount: "$2,100,000", Year: "2024"},
						},
						Lobbying: []domain.Lobbying{
							{Issue: "Media consolidation", Amount: "$8,200,000", Year: "2024"},
							{Issue: "Against consumer protections", Amount: "$3,500,000", Year: "2024"},
						},
						Statements: []string{"Significant conservative donations", "Lobbies against consumer privacy"},
					},
				},
				{
					ID: "t-mobile", Name: "T-Mobile", CategoryID: "telecom",
					Score: 52, Status: domain.StatusNeutral,
					Description: "Wireless network provider",
					PoliticalInfo: domain.PoliticalInfo{
						Donations: []domain.Donation{
							{Recipient: "Bipartisan contributions", Amount: "$2,800,000", Year: "2024"},
						},
						Lobbying: []domain.Lobbying{
							{Issue: "5G infrastructure", Amount: "$2,100,000", Year: "2024"},
						},
						Statements: []string{"Consumer-friendly pricing", "Mixed record on privacy"},
					},
				},
			},
		},
		{
			ID:   "auto",
			Name: "Auto Services",
			Icon: "🚗",
			Companies: []domain.Company{
				{
					ID: "jiffy-lube", Name: "Jiffy Lube", CategoryID: "auto",
					Score: 41, Status: domain.StatusNeutral,
					Description: "Oil change and automotive service",
					PoliticalInfo: domain.PoliticalInfo{
						Donations: []domain.Donation{
							{Recipient: "Various PACs", Amount: "$600,000", Year: "2024"},
						},
						Statements: []string{"Franchise model", "Standard automotive practices"},
					},
				},
				{
					ID: "pep-boys", Name: "Pep Boys", CategoryID: "auto",
					Score: 46, Status: domain.StatusNeutral,
					Description: "Automotive aftermarket service",
					PoliticalInfo: domain.PoliticalInfo{
						Donations: []domain.Donation{
							{Recipient: "Mixed contributions", Amount: "$400,000", Year: "2024"},
						},
						Statements: []string{"Community involvement programs"},
					},
				},
				{
					ID: "local-mechanic", Name: "Local Independent Mechanics", CategoryID: "auto",
					Score: 75, Status: domain.StatusSupport,
					Description: "Small business auto repair shops",
					PoliticalInfo: domain.PoliticalInfo{
						Statements: []string{"Supports local economy", "Small business ownership", "Community focused"},
					},
				},
			},
		},
	}
}

// DefaultNotifications — заготовленные уведомления об изменении score
func DefaultNotifications() []domain.Notification {
	return []domain.Notification{
		{
			ID: "notif-1", CompanyID: "starbucks", CompanyName: "Starbucks", CategoryID: "coffee",
			OldScore: 48, NewScore: 44, Date: "2025-10-15",
			Reason:  "Increased anti-union spending following labor disputes in multiple states",
			Trend:   domain.TrendDown,
			NewsURL: "https://www.reuters.com/business/retail-consumer/starbucks-union-labor-2025",
		},
		{
			ID: "notif-2", CompanyID: "patagonia", CompanyName: "Patagonia", CategoryID: "apparel",
			OldScore: 90, NewScore: 92, Date: "2025-10-14",
			Reason:  "Announced additional $5M donation to climate action organizations",
			Trend:   domain.TrendUp,
			NewsURL: "https://www.patagonia.com/actionworks/campaigns/climate-commitment",
		},
		{
			ID: "notif-3", CompanyID: "amazon", CompanyName: "Amazon", CategoryID: "online-retail",
			OldScore: 25, NewScore: 22, Date: "2025-10-13",
			Reason:  "Renewed opposition to unionization efforts in warehouse facilities",
			Trend:   domain.TrendDown,
			NewsURL: "https://www.theguardian.com/technology/amazon-union-warehouse",
		},
	}
}

// TemplateUser — шаблон профиля, из которого собирается
// пользователь при входе. ID, имя и почта заполняются при логине
func TemplateUser() domain.User {
	return domain.User{
		OverallScore: 67,
		CategoryScores: map[string]int{
			"grocery":       72,
			"streaming":     58,
			"banking":       85,
			"apparel":       92,
			"online-retail": 76,
			"restaurants":   64,
			"coffee":        71,
			"hardware":      68,
			"gas":           58,
			"telecom":       52,
			"auto":          75,
		},
		Spending: []domain.SpendingRecord{
			{CompanyID: "whole-foods", CategoryID: "grocery", Amount: 2450, Date: "2025-09-30", CompanyName: "Whole Foods Market"},
			{CompanyID: "trader-joes", CategoryID: "grocery", Amount: 1800, Date: "2025-09-28", CompanyName: "Trader Joe's"},
			{CompanyID: "kroger", CategoryID: "grocery", Amount: 950, Date: "2025-09-15", CompanyName: "Kroger"},
			{CompanyID: "aspiration", CategoryID: "banking", Amount: 5000, Date: "2025-09-25", CompanyName: "Aspiration"},
			{CompanyID: "patagonia", CategoryID: "apparel", Amount: 380, Date: "2025-09-20", CompanyName: "Patagonia"},
			{CompanyID: "blue-bottle", CategoryID: "coffee", Amount: 185, Date: "2025-10-10", CompanyName: "Blue Bottle Coffee"},
			{CompanyID: "starbucks", CategoryID: "coffee", Amount: 145, Date: "2025-10-08", CompanyName: "Starbucks"},
			{CompanyID: "dunkin", CategoryID: "coffee", Amount: 95, Date: "2025-10-05", CompanyName: "Dunkin"},
			{CompanyID: "ace-hardware", CategoryID: "hardware", Amount: 220, Date: "2025-09-18", CompanyName: "Ace Hardware"},
			{CompanyID: "etsy", CategoryID: "online-retail", Amount: 450, Date: "2025-09-22", CompanyName: "Etsy"},
		},
		CategoryVisibility: map[string]bool{
			"grocery":       true,
			"streaming":     true,
			"banking":       true,
			"apparel":       true,
			"online-retail": true,
			"restaurants":   true,
			"coffee":        true,
			"hardware":      true,
			"gas":           true,
			"telecom":       true,
			"auto":          true,
		},
		CategoryOrder: []string{
			"grocery", "coffee", "banking", "apparel", "online-retail",
			"restaurants", "hardware", "gas", "telecom", "auto", "streaming",
		},
		Notifications: DefaultNotifications(),
		WhiteLabel: domain.WhiteLabelSettings{
			Mantra:   "Shop your politics. Spend your values.",
			Template: "modern",
			Title:    "My Political Shopping",
			Color:    "#14b8a6",
		},
		Preferences: domain.Preferences{
			Labels:  []string{"Eco-Friendly", "Fair Trade", "Local"},
			Values:  []string{"Environmental", "Workers Rights", "Social Justice"},
			Logos:   []string{"Certified B-Corp", "Rainforest Alliance"},
			Mantras: []string{"Shop consciously", "Vote with your wallet"},
		},
	}
}
