package pages

import (
	"strings"

	"synapsetalk/internal/models"
	"synapsetalk/internal/navigation"
	"synapsetalk/internal/services"
)

// Search lists catalog models and configured repositories matching a query.
// Results are filtered, never ranked.
type Search struct {
	catalog services.ModelCatalogService
}

func NewSearch(catalog services.ModelCatalogService) *Search {
	return &Search{catalog: catalog}
}

func (s *Search) ID() navigation.PageID { return navigation.PageSearch }
func (s *Search) Title() string         { return "Model Search" }
func (s *Search) Icon() string          { return "assets/search.svg" }

// Catalog returns the catalog models grouped by provider, in catalog order.
func (s *Search) Catalog() []models.LLMModelGroup {
	return s.catalog.ListModelGroups()
}

// Search returns catalog models first, then repositories, each in stored
// order. The match is a case-insensitive substring; an empty query matches all.
func (s *Search) Search(query string) []models.SearchResult {
	needle := strings.ToLower(strings.TrimSpace(query))
	matches := func(fields ...string) bool {
		if needle == "" {
			return true
		}
		for _, f := range fields {
			if strings.Contains(strings.ToLower(f), needle) {
				return true
			}
		}
		return false
	}

	results := []models.SearchResult{}
	for _, mdl := range s.catalog.ListModels() {
		if !matches(mdl.APIName, mdl.DisplayName, mdl.ProviderName) {
			continue
		}
		results = append(results, models.SearchResult{
			Kind:     models.SearchKindModel,
			ID:       mdl.Key,
			Name:     mdl.DisplayName,
			Provider: mdl.ProviderName,
		})
	}
	for _, repo := range s.catalog.Repositories() {
		if !matches(repo) {
			continue
		}
		results = append(results, models.SearchResult{
			Kind: models.SearchKindRepository,
			ID:   repo,
			Name: repo,
		})
	}
	return results
}
