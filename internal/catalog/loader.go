// internal/catalog/loader.go
package catalog

import (
	"fmt"
	"os"

	"github.com/goccy/go-yaml"

	"democracy-score/internal/domain"
	"democracy-score/internal/score"
)

// YAML-представление каталога. Отдельные DTO, чтобы не вешать
// yaml-теги на доменные модели
type catalogFile struct {
	Categories []categoryYAML `yaml:"categories"`
}

type categoryYAML struct {
	ID        string        `yaml:"id"`
	Name      string        `yaml:"name"`
	Icon      string        `yaml:"icon"`
	Companies []companyYAML `yaml:"companies"`
}

type companyYAML struct {
	ID          string   `yaml:"id"`
	Name        string   `yaml:"name"`
	Score       int      `yaml:"score"`
	Status      string   `yaml:"status"`
	Description string   `yaml:"description"`
	Website     string   `yaml:"website"`
	Donations   []struct {
		Recipient string `yaml:"recipient"`
		Amount    string `yaml:"amount"`
		Year      string `yaml:"year"`
	} `yaml:"donations"`
	Lobbying []struct {
		Issue  string `yaml:"issue"`
		Amount string `yaml:"amount"`
		Year   string `yaml:"year"`
	} `yaml:"lobbying"`
	Statements []string `yaml:"statements"`
}

// Load читает каталог из YAML-файла. Каждый score проверяется на
// диапазон сразу при загрузке: лучше упасть на старте, чем отдавать
// клиенту мусорные проценты
func Load(path string) ([]domain.Category, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog file: %w", err)
	}

	var file catalogFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse catalog file: %w", err)
	}

	categories := make([]domain.Category, 0, len(file.Categories))
	for _, cy := range file.Categories {
		cat := domain.Category{
			ID:        cy.ID,
			Name:      cy.Name,
			Icon:      cy.Icon,
			Companies: make([]domain.Company, 0, len(cy.Companies)),
		}
		for _, co := range cy.Companies {
			if err := score.Validate(co.Score); err != nil {
				return nil, fmt.Errorf("company %q: %w", co.ID, err)
			}
			company := domain.Company{
				ID:          co.ID,
				Name:        co.Name,
				CategoryID:  cy.ID, // категория компании всегда совпадает с родителем
				Score:       co.Score,
				Status:      domain.CompanyStatus(co.Status),
				Description: co.Description,
				Website:     co.Website,
			}
			for _, d := range co.Donations {
				company.PoliticalInfo.Donations = append(company.PoliticalInfo.Donations, domain.Donation{
					Recipient: d.Recipient, Amount: d.Amount, Year: d.Year,
				})
			}
			for _, l := range co.Lobbying {
				company.PoliticalInfo.Lobbying = append(company.PoliticalInfo.Lobbying, domain.Lobbying{
					Issue: l.Issue, Amount: l.Amount, Year: l.Year,
				})
			}
			company.PoliticalInfo.Statements = co.Statements
			cat.Companies = append(cat.Companies, company)
		}
		categories = append(categories, cat)
	}
	return categories, nil
}
