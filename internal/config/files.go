package config

import (
	"fmt"
	"os"

	"github.com/Dan9191/underwriting-service/internal/models"
	"github.com/Dan9191/underwriting-service/internal/underwriting"
	"gopkg.in/yaml.v3"
)

// LoadAssumptions returns the default rate table overlaid with the YAML file at path.
// Keys absent from the file keep their defaults; an empty path yields the defaults.
func LoadAssumptions(path string, referenceYear int) (models.FinancialAssumptions, error) {
	a := underwriting.DefaultAssumptions()
	a.ReferenceYear = referenceYear

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return models.FinancialAssumptions{}, fmt.Errorf("failed to read assumptions file: %w", err)
		}
		if err := yaml.Unmarshal(data, &a); err != nil {
			return models.FinancialAssumptions{}, fmt.Errorf("failed to parse assumptions file: %w", err)
		}
	}

	if err := underwriting.ValidateAssumptions(a); err != nil {
		return models.FinancialAssumptions{}, fmt.Errorf("invalid assumptions: %w", err)
	}
	return a, nil
}

// catalogFile is the on-disk shape of an action catalog
type catalogFile struct {
	Actions []models.OptimizationAction `yaml:"actions"`
}

// LoadCatalog reads an optimization action catalog. An empty path returns nil,
// which lets callers fall back to the per-property default catalog.
func LoadCatalog(path string) ([]models.OptimizationAction, error) {
	if path == "" {
		return nil, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog file: %w", err)
	}
	var f catalogFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse catalog file: %w", err)
	}
	for i, action := range f.Actions {
		if action.Cost < 0 {
			return nil, fmt.Errorf("catalog action %d (%s): cost must not be negative", i, action.Title)
		}
		switch action.Category {
		case models.CategoryRevenue, models.CategoryExpense, models.CategoryImprovement, models.CategoryOperational:
		default:
			return nil, fmt.Errorf("catalog action %d (%s): unknown category %q", i, action.Title, action.Category)
		}
	}
	return f.Actions, nil
}

// PortfolioFile is a set of properties underwritten against one client requirement
type PortfolioFile struct {
	Requirement models.ClientRequirement `yaml:"requirement"`
	Properties  []models.Property        `yaml:"properties"`
}

// LoadPortfolio reads a portfolio file
func LoadPortfolio(path string) (*PortfolioFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read portfolio file: %w", err)
	}
	var f PortfolioFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse portfolio file: %w", err)
	}
	if len(f.Properties) == 0 {
		return nil, fmt.Errorf("portfolio file %s lists no properties", path)
	}
	return &f, nil
}
